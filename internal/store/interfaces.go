package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"

	"github.com/pimmuno/protectconf/models"
)

// RunRepository is the archive of resolution runs kept by protectconfd.
type RunRepository interface {
	// SaveRun persists a new run record.
	SaveRun(ctx context.Context, record models.RunRecord) error
	// GetRun returns the run with the given id, or [ErrRunNotFound].
	GetRun(ctx context.Context, id string) (models.RunRecord, error)
	// ListRuns returns runs matching filter, newest first.
	ListRuns(ctx context.Context, filter models.RunFilter) ([]models.RunRecord, error)
	// DeleteRun removes the run with the given id, or returns
	// [ErrRunNotFound] when it does not exist.
	DeleteRun(ctx context.Context, id string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying resources.
	Close() error
}

// HistoryRepository is the local record of resolutions run from the CLI.
type HistoryRepository interface {
	// Append stores one history entry and fills in its assigned ID.
	Append(ctx context.Context, entry *models.HistoryEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	// Get returns the entry with the given id.
	Get(ctx context.Context, id int64) (models.HistoryEntry, error)
	// Clear deletes every entry and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
	// Close releases the underlying resources.
	Close() error
}
