// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package store

import (
	"context"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"
)

// Repositories groups every persistence backend the daemon wires into its
// service layer.
type Repositories struct {
	// Runs is the resolution run registry.
	Runs RunRepository
}

// NewRepositories selects and connects the run registry backend.
//
// With a configured DSN the registry lives in PostgreSQL and schema
// migrations run before the repository is handed out. With an empty DSN
// the daemon falls back to the in-memory registry, which is sufficient for
// single-node and throwaway deployments.
func NewRepositories(ctx context.Context, cfg settings.Storage, log *logger.Logger) (*Repositories, error) {
	if cfg.DB.DSN == "" {
		log.Info().
			Str("func", "NewRepositories").
			Msg("no database DSN configured; using in-memory run registry")
		return &Repositories{
			Runs: NewMemoryRunRepository(),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error connecting to database")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error applying migrations")
		return nil, err
	}

	return &Repositories{
		Runs: NewRunRepository(db),
	}, nil
}
