// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package service

import (
	"context"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// historyService implements [HistoryService] over the local history
// database.
type historyService struct {
	history store.HistoryRepository
	logger  *logger.Logger
}

// NewHistoryService constructs a [HistoryService].
func NewHistoryService(history store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		history: history,
		logger:  logger,
	}
}

// List returns up to limit entries, newest first.
func (s *historyService) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	return s.history.Recent(ctx, limit)
}

// Show returns the entry with the given id.
func (s *historyService) Show(ctx context.Context, id int64) (models.HistoryEntry, error) {
	return s.history.Get(ctx, id)
}

// Clear deletes the whole history and reports how many entries went.
func (s *historyService) Clear(ctx context.Context) (int64, error) {
	removed, err := s.history.Clear(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Str("func", "historyService.Clear").
		Int64("removed", removed).
		Msg("history cleared")

	return removed, nil
}
