// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/internal/utils"
	"github.com/pimmuno/protectconf/internal/validate"
	"github.com/pimmuno/protectconf/models"
)

// resolutionService implements [ResolutionService]. It owns the resolver
// (defaults + protected paths) and writes completed runs to the registry.
type resolutionService struct {
	resolver *resolver.Resolver
	runs     store.RunRepository
	ids      *utils.UUIDGenerator

	// maxCoresPerJob is the configured cap applied when a request does
	// not carry its own.
	maxCoresPerJob int

	logger *logger.Logger
}

// NewResolutionService constructs a [ResolutionService] around the given
// resolver and run registry.
func NewResolutionService(res *resolver.Resolver, runs store.RunRepository, cfg settings.Resolver, logger *logger.Logger) ResolutionService {
	return &resolutionService{
		resolver:       res,
		runs:           runs,
		ids:            utils.NewUUIDGenerator(),
		maxCoresPerJob: cfg.MaxCoresPerJob,
		logger:         logger,
	}
}

// Resolve runs the full pipeline: parse → merge over defaults → finalize
// derived values → validate → digest → record.
//
// Registry failures do not fail the resolve; the registry is an audit
// trail, not a gate. The returned result carries an empty RunID when the
// record could not be written.
func (s *resolutionService) Resolve(ctx context.Context, req models.ResolveRequest) (models.ResolveResult, error) {
	log := logger.FromContext(ctx)

	result, err := runResolve(s.resolver, req.Document, s.coresCap(req))
	if err != nil {
		return models.ResolveResult{}, err
	}

	if req.Persist {
		result.RunID = s.record(ctx, req, result)
	}

	log.Info().
		Str("func", "resolutionService.Resolve").
		Str("digest", result.Digest).
		Str("status", result.Status()).
		Int("patients", result.Patients).
		Int("issues", len(result.Report.Issues)).
		Msg("configuration resolved")

	return result, nil
}

// Validate runs the same pipeline as Resolve but skips encoding and
// registry writes; only the report is returned.
func (s *resolutionService) Validate(ctx context.Context, req models.ResolveRequest) (models.ValidationReport, error) {
	user, err := loadUserDocument(s.resolver, req.Document)
	if err != nil {
		return models.ValidationReport{}, err
	}

	merged, err := s.resolver.Resolve(user)
	if err != nil {
		return models.ValidationReport{}, err
	}

	final := validate.Finalize(merged, s.coresCap(req))
	return validate.Check(final), nil
}

// runResolve is the resolution pipeline shared by the daemon and the
// command line: parse → merge over defaults → finalize derived values →
// validate → canonical encoding → digest. Persistence is the caller's
// business.
func runResolve(res *resolver.Resolver, document []byte, coresCap int) (models.ResolveResult, error) {
	user, err := loadUserDocument(res, document)
	if err != nil {
		return models.ResolveResult{}, err
	}

	merged, err := res.Resolve(user)
	if err != nil {
		return models.ResolveResult{}, err
	}

	final := validate.Finalize(merged, coresCap)
	report := validate.Check(final)

	doc, err := configtree.EncodeBytes(final)
	if err != nil {
		return models.ResolveResult{}, err
	}

	sum := sha256.Sum256(doc)

	return models.ResolveResult{
		Tree:     final,
		Origins:  resolver.Origins(res.Defaults(), user, final),
		Report:   report,
		Document: doc,
		Digest:   hex.EncodeToString(sum[:]),
		Patients: countPatients(final),
	}, nil
}

// loadUserDocument parses a raw user document; an empty document resolves
// the defaults alone, expressed as an empty user tree.
func loadUserDocument(res *resolver.Resolver, document []byte) (*configtree.Tree, error) {
	if len(document) == 0 {
		return configtree.NewTree(), nil
	}
	return res.LoadUser(bytes.NewReader(document))
}

func (s *resolutionService) coresCap(req models.ResolveRequest) int {
	if req.MaxCoresPerJob > 0 {
		return req.MaxCoresPerJob
	}
	return s.maxCoresPerJob
}

// record writes the run to the registry and returns the assigned ID, or
// an empty string when the write failed.
func (s *resolutionService) record(ctx context.Context, req models.ResolveRequest, result models.ResolveResult) string {
	log := logger.FromContext(ctx)

	record := models.RunRecord{
		ID:        s.ids.Generate(),
		CreatedAt: time.Now().UTC(),
		Source:    req.Source,
		Status:    result.Status(),
		Digest:    result.Digest,
		Patients:  result.Patients,
		Issues:    len(result.Report.Issues),
		Document:  result.Document,
	}

	if err := s.runs.SaveRun(ctx, record); err != nil {
		log.Warn().
			Err(err).
			Str("func", "resolutionService.record").
			Str("run_id", record.ID).
			Msg("failed to record run; continuing")
		return ""
	}

	return record.ID
}

func countPatients(tree *configtree.Tree) int {
	sub, ok := tree.Subtree("patients")
	if !ok {
		return 0
	}
	return sub.Len()
}
