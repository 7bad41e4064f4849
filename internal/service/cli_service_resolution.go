// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package service

import (
	"context"
	"time"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// ResolveSourceOptions tunes one command line resolution.
type ResolveSourceOptions struct {
	// MaxCoresPerJob overrides the configured per-job core cap when
	// positive.
	MaxCoresPerJob int

	// RecordHistory appends the outcome to the local history database.
	RecordHistory bool
}

// cliResolutionService implements [CLIResolutionService].
type cliResolutionService struct {
	resolver *resolver.Resolver
	fetcher  DocumentFetcher
	history  store.HistoryRepository

	maxCoresPerJob int

	logger *logger.Logger
}

// NewCLIResolutionService constructs a [CLIResolutionService] around the
// given resolver, document fetcher, and history database.
func NewCLIResolutionService(res *resolver.Resolver, fetcher DocumentFetcher, history store.HistoryRepository, cfg settings.Resolver, logger *logger.Logger) CLIResolutionService {
	return &cliResolutionService{
		resolver:       res,
		fetcher:        fetcher,
		history:        history,
		maxCoresPerJob: cfg.MaxCoresPerJob,
		logger:         logger,
	}
}

// ResolveSource fetches, resolves, and (optionally) records one document.
//
// History failures do not fail the resolve; like the daemon's run
// registry, the history is an audit trail, not a gate.
func (s *cliResolutionService) ResolveSource(ctx context.Context, source string, opts ResolveSourceOptions) (models.ResolveResult, error) {
	log := logger.FromContext(ctx)

	document, err := s.fetchDocument(ctx, source)
	if err != nil {
		return models.ResolveResult{}, err
	}

	coresCap := opts.MaxCoresPerJob
	if coresCap <= 0 {
		coresCap = s.maxCoresPerJob
	}

	result, err := runResolve(s.resolver, document, coresCap)
	if err != nil {
		return models.ResolveResult{}, err
	}

	if opts.RecordHistory {
		s.recordHistory(ctx, source, result)
	}

	log.Info().
		Str("func", "cliResolutionService.ResolveSource").
		Str("source", historySource(source)).
		Str("digest", result.Digest).
		Str("status", result.Status()).
		Int("patients", result.Patients).
		Int("issues", len(result.Report.Issues)).
		Msg("configuration resolved")

	return result, nil
}

// ValidateSource fetches and resolves the document, returning only the
// validation report.
func (s *cliResolutionService) ValidateSource(ctx context.Context, source string) (models.ValidationReport, error) {
	document, err := s.fetchDocument(ctx, source)
	if err != nil {
		return models.ValidationReport{}, err
	}

	result, err := runResolve(s.resolver, document, s.maxCoresPerJob)
	if err != nil {
		return models.ValidationReport{}, err
	}

	return result.Report, nil
}

// fetchDocument retrieves the document bytes; an empty source means the
// defaults resolve alone.
func (s *cliResolutionService) fetchDocument(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, nil
	}
	return s.fetcher.Fetch(ctx, source)
}

func (s *cliResolutionService) recordHistory(ctx context.Context, source string, result models.ResolveResult) {
	log := logger.FromContext(ctx)

	entry := &models.HistoryEntry{
		RunAt:    time.Now().UTC(),
		Source:   historySource(source),
		Status:   result.Status(),
		Digest:   result.Digest,
		Patients: result.Patients,
		Issues:   len(result.Report.Issues),
	}

	if err := s.history.Append(ctx, entry); err != nil {
		log.Warn().
			Err(err).
			Str("func", "cliResolutionService.recordHistory").
			Str("source", entry.Source).
			Msg("failed to record history entry; continuing")
	}
}

// historySource names a defaults-only resolve in history listings.
func historySource(source string) string {
	if source == "" {
		return "defaults"
	}
	return source
}
