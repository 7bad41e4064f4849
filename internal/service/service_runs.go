package service

import (
	"context"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// defaultListLimit caps registry listings when the caller passes none.
const defaultListLimit = 100

type runsService struct {
	runs store.RunRepository

	logger *logger.Logger
}

// NewRunsService constructs a [RunsService] over the given registry.
func NewRunsService(runs store.RunRepository, logger *logger.Logger) RunsService {
	return &runsService{
		runs:   runs,
		logger: logger,
	}
}

func (s *runsService) List(ctx context.Context, filter models.RunFilter) ([]models.RunRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return s.runs.ListRuns(ctx, filter)
}

func (s *runsService) Get(ctx context.Context, id string) (models.RunRecord, error) {
	return s.runs.GetRun(ctx, id)
}

func (s *runsService) Delete(ctx context.Context, id string) error {
	return s.runs.DeleteRun(ctx, id)
}
