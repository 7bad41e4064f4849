// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/models"
)

// runRepository is the PostgreSQL-backed implementation of [RunRepository].
// It executes all archive operations against the "resolution_runs" table
// using the embedded [*DB] connection.
//
// Methods log through the logger carried in the request context, which
// keeps run_id and trace fields attached to every query they report.
type runRepository struct {
	*DB
}

// NewRunRepository constructs a [RunRepository] backed by the provided
// database connection.
func NewRunRepository(db *DB) RunRepository {
	return &runRepository{DB: db}
}

// SaveRun persists a single run record. Transient failures (connection
// loss, deadlock) are retried via the error classifier; a zero-row insert
// maps to [ErrRunNotSaved].
func (p *runRepository) SaveRun(ctx context.Context, record models.RunRecord) error {
	log := logger.FromContext(ctx)

	err := p.withRetry(ctx, func() error {
		result, execErr := p.DB.ExecContext(ctx, saveRunQuery,
			record.ID,
			record.CreatedAt,
			record.Source,
			record.Status,
			record.Digest,
			record.Patients,
			record.Issues,
			record.Document,
		)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}

		affected, _ := result.RowsAffected()
		if affected == 0 {
			return ErrRunNotSaved
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "runRepository.SaveRun").
			Str("run_id", record.ID).
			Str("pg_code", postgresError(err)).
			Msg("failed to save run record")
		return err
	}

	log.Debug().
		Str("func", "runRepository.SaveRun").
		Str("run_id", record.ID).
		Str("status", record.Status).
		Msg("saved run record")

	return nil
}

// GetRun returns the run with the given id. A missing row maps to
// [ErrRunNotFound].
func (p *runRepository) GetRun(ctx context.Context, id string) (models.RunRecord, error) {
	log := logger.FromContext(ctx)

	var record models.RunRecord
	err := p.DB.QueryRowContext(ctx, getRunQuery, id).Scan(
		&record.ID,
		&record.CreatedAt,
		&record.Source,
		&record.Status,
		&record.Digest,
		&record.Patients,
		&record.Issues,
		&record.Document,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "runRepository.GetRun").
			Str("run_id", id).
			Msg("run record not found")
		return models.RunRecord{}, ErrRunNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "runRepository.GetRun").
			Str("run_id", id).
			Msg("failed to query run record")
		return models.RunRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// ListRuns returns archive entries matching filter, newest first.
func (p *runRepository) ListRuns(ctx context.Context, filter models.RunFilter) ([]models.RunRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRunsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "runRepository.ListRuns").
			Msg("failed to build list query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "runRepository.ListRuns").
			Str("status_filter", filter.Status).
			Str("source_filter", filter.Source).
			Msg("failed to execute query for listing run records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.RunRecord, 0, 50)

	for rows.Next() {
		var record models.RunRecord

		scanErr := rows.Scan(
			&record.ID,
			&record.CreatedAt,
			&record.Source,
			&record.Status,
			&record.Digest,
			&record.Patients,
			&record.Issues,
			&record.Document,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "runRepository.ListRuns").
				Msg("failed to scan run record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "runRepository.ListRuns").
			Msg("failed to iterate run record rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// DeleteRun removes the run with the given id. A zero-row delete maps to
// [ErrRunNotFound].
func (p *runRepository) DeleteRun(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteRunQuery, id)
	if err != nil {
		log.Err(err).
			Str("func", "runRepository.DeleteRun").
			Str("run_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		log.Warn().
			Str("func", "runRepository.DeleteRun").
			Str("run_id", id).
			Msg("run record not found")
		return ErrRunNotFound
	}

	log.Info().
		Str("func", "runRepository.DeleteRun").
		Str("run_id", id).
		Msg("deleted run record")

	return nil
}

// Ping reports whether the database is reachable.
func (p *runRepository) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (p *runRepository) Close() error {
	return p.DB.DB.Close()
}
