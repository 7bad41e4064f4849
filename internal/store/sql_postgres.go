package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"
)

// Pool bounds for the run registry. Resolution traffic is light; a handful
// of connections covers bursts from CI launchers.
const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// NewConnectPostgres opens the run registry database through the pgx stdlib
// driver, verifies the connection with a ping, and attaches the PostgreSQL
// error classifier used by the retry wrapper.
func NewConnectPostgres(ctx context.Context, cfg settings.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening run registry database: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("run registry ping failed")
		return nil, fmt.Errorf("pinging run registry database: %w", err)
	}
	log.Info().Msg("connected to the run registry database")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresError extracts the PostgreSQL error code from err, or "" when err
// did not come from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
