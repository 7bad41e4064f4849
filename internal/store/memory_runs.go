// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package store

import (
	"context"
	"sync"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/models"
)

// memoryRunRepository is the in-memory implementation of [RunRepository].
//
// It is selected when no database DSN is configured and keeps the run
// registry in a mutex-guarded map for the lifetime of the process. Records
// survive nothing: a restart starts with an empty registry. Insertion order
// is tracked separately so listings can be returned newest first without
// sorting on every call.
type memoryRunRepository struct {
	mu sync.RWMutex

	// records maps run ID to the stored record.
	records map[string]models.RunRecord

	// order holds run IDs oldest first, in insertion order.
	order []string
}

// NewMemoryRunRepository constructs an empty in-memory [RunRepository].
func NewMemoryRunRepository() RunRepository {
	return &memoryRunRepository{
		records: make(map[string]models.RunRecord),
	}
}

// SaveRun stores a run record. A duplicate ID maps to [ErrRunNotSaved],
// mirroring the primary-key violation the database backend would report.
func (m *memoryRunRepository) SaveRun(ctx context.Context, record models.RunRecord) error {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		log.Warn().
			Str("func", "memoryRunRepository.SaveRun").
			Str("run_id", record.ID).
			Msg("duplicate run id")
		return ErrRunNotSaved
	}

	m.records[record.ID] = record
	m.order = append(m.order, record.ID)

	log.Debug().
		Str("func", "memoryRunRepository.SaveRun").
		Str("run_id", record.ID).
		Str("status", record.Status).
		Msg("saved run record")

	return nil
}

// GetRun returns the run with the given id. A missing record maps to
// [ErrRunNotFound].
func (m *memoryRunRepository) GetRun(ctx context.Context, id string) (models.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[id]
	if !exists {
		return models.RunRecord{}, ErrRunNotFound
	}
	return record, nil
}

// ListRuns returns matching records newest first. The filter semantics
// match the database backend: empty fields add no constraint and a
// positive limit caps the result set.
func (m *memoryRunRepository) ListRuns(ctx context.Context, filter models.RunFilter) ([]models.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.RunRecord, 0, len(m.order))

	for i := len(m.order) - 1; i >= 0; i-- {
		record := m.records[m.order[i]]

		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		if filter.Source != "" && record.Source != filter.Source {
			continue
		}

		records = append(records, record)
		if filter.Limit > 0 && len(records) == filter.Limit {
			break
		}
	}

	return records, nil
}

// DeleteRun removes the run with the given id. A missing record maps to
// [ErrRunNotFound].
func (m *memoryRunRepository) DeleteRun(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[id]; !exists {
		return ErrRunNotFound
	}

	delete(m.records, id)
	for i, id2 := range m.order {
		if id2 == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return nil
}

// Ping always succeeds: the map is the process.
func (m *memoryRunRepository) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op; held records are released with the process.
func (m *memoryRunRepository) Close() error {
	return nil
}
