// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/models"
)

// historySchema is applied on every open. The table is tiny and local, so
// an idempotent CREATE is simpler than carrying a migration tool into the
// command line binary.
const historySchema = `CREATE TABLE IF NOT EXISTS resolve_history (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    run_at   TIMESTAMP NOT NULL,
    source   TEXT NOT NULL,
    status   TEXT NOT NULL,
    digest   TEXT NOT NULL,
    patients INTEGER NOT NULL DEFAULT 0,
    issues   INTEGER NOT NULL DEFAULT 0
);`

const (
	appendHistoryQuery = `INSERT INTO resolve_history (run_at, source, status, digest, patients, issues)
    VALUES (?, ?, ?, ?, ?, ?);`

	recentHistoryQuery = `SELECT id, run_at, source, status, digest, patients, issues
    FROM resolve_history
    ORDER BY id DESC
    LIMIT ?;`

	getHistoryQuery = `SELECT id, run_at, source, status, digest, patients, issues
    FROM resolve_history
    WHERE id = ?;`

	clearHistoryQuery = `DELETE FROM resolve_history;`
)

// defaultRecentLimit caps history listings when the caller passes no limit.
const defaultRecentLimit = 20

// historyRepository is the SQLite-backed implementation of
// [HistoryRepository]. It records local resolve attempts in a single-table
// database under the user's home directory.
type historyRepository struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewHistoryRepository opens (creating if necessary) the local history
// database at cfg.Path and ensures its schema exists.
func NewHistoryRepository(ctx context.Context, cfg settings.History, log *logger.Logger) (HistoryRepository, error) {
	if err := createHistoryFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewHistoryRepository").Msg("error creating history file")
		return nil, fmt.Errorf("error creating history file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewHistoryRepository").Msg("error opening history database")
		return nil, fmt.Errorf("error opening history database: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewHistoryRepository").Msg("error connecting history database (ping)")
		conn.Close()
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, historySchema); err != nil {
		log.Err(err).Str("func", "NewHistoryRepository").Msg("error ensuring history schema")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "NewHistoryRepository").Str("path", cfg.Path).Msg("history database ready")

	return &historyRepository{
		db:     conn,
		logger: log,
	}, nil
}

func createHistoryFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating history dir: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating history file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// Append records one resolve attempt and fills entry.ID from the inserted
// row.
func (h *historyRepository) Append(ctx context.Context, entry *models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	result, err := h.db.ExecContext(ctx, appendHistoryQuery,
		entry.RunAt,
		entry.Source,
		entry.Status,
		entry.Digest,
		entry.Patients,
		entry.Issues,
	)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Append").
			Str("source", entry.Source).
			Msg("failed to append history entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if id, idErr := result.LastInsertId(); idErr == nil {
		entry.ID = id
	}

	return nil
}

// Recent returns the latest entries, newest first. A non-positive limit
// falls back to [defaultRecentLimit].
func (h *historyRepository) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := h.db.QueryContext(ctx, recentHistoryQuery, limit)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Recent").
			Msg("failed to query history entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)

	for rows.Next() {
		var entry models.HistoryEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.RunAt,
			&entry.Source,
			&entry.Status,
			&entry.Digest,
			&entry.Patients,
			&entry.Issues,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.Recent").
				Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "historyRepository.Recent").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// Get returns the entry with the given id, or [ErrHistoryEntryNotFound].
func (h *historyRepository) Get(ctx context.Context, id int64) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.HistoryEntry

	err := h.db.QueryRowContext(ctx, getHistoryQuery, id).Scan(
		&entry.ID,
		&entry.RunAt,
		&entry.Source,
		&entry.Status,
		&entry.Digest,
		&entry.Patients,
		&entry.Issues,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HistoryEntry{}, ErrHistoryEntryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "historyRepository.Get").
			Int64("id", id).
			Msg("failed to query history entry")
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// Clear deletes every entry and reports how many rows were removed.
func (h *historyRepository) Clear(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := h.db.ExecContext(ctx, clearHistoryQuery)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Clear").
			Msg("failed to clear history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}

// Close closes the history database.
func (h *historyRepository) Close() error {
	return h.db.Close()
}
