package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/models"
)

// ResolutionService runs the full resolution pipeline: parse the user
// document, merge it over the shipped defaults, finalize derived values,
// validate, and (optionally) record the run in the registry.
type ResolutionService interface {
	Resolve(ctx context.Context, req models.ResolveRequest) (models.ResolveResult, error)
	Validate(ctx context.Context, req models.ResolveRequest) (models.ValidationReport, error)
}

// DefaultsService exposes the shipped baseline documents.
type DefaultsService interface {
	// Raw returns the bundled defaults exactly as shipped.
	Raw(ctx context.Context) []byte

	// Template returns the annotated starter document for new projects.
	Template(ctx context.Context) []byte

	// Tree returns the parsed defaults. The result is shared; callers
	// needing to mutate it must clone first.
	Tree(ctx context.Context) *configtree.Tree
}

// RunsService reads and prunes the resolution run registry.
type RunsService interface {
	List(ctx context.Context, filter models.RunFilter) ([]models.RunRecord, error)
	Get(ctx context.Context, id string) (models.RunRecord, error)
	Delete(ctx context.Context, id string) error
}

// AppInfoService reports build metadata for version surfaces.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
