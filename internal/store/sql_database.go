package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/migrations"
)

// DB wraps the raw connection with the error classifier and a logger. All
// SQL-backed repositories embed it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate runs the embedded goose migrations against the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// maxRetryAttempts bounds retries of operations that failed with an error
// the classifier deems transient.
const maxRetryAttempts = 3

// withRetry runs op, retrying up to [maxRetryAttempts] times when the error
// classifier reports the failure as retryable (connection loss, deadlock,
// serialization failure). Non-retryable errors are returned immediately.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxRetryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}
	return err
}
