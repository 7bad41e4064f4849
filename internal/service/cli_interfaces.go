package service

//go:generate mockgen -source=cli_interfaces.go -destination=../mock/cli_service_mocks.go -package=mock

import (
	"context"

	"github.com/pimmuno/protectconf/models"
)

// DocumentFetcher retrieves a user document from a file path, an http(s)
// URL, or stdin ("-").
type DocumentFetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// CLIResolutionService resolves user documents for the protectconf command
// line: it owns source retrieval and the local history record, while the
// resolution pipeline itself is shared with the daemon.
type CLIResolutionService interface {
	// ResolveSource fetches the document named by source (empty means
	// "defaults only") and resolves it.
	ResolveSource(ctx context.Context, source string, opts ResolveSourceOptions) (models.ResolveResult, error)

	// ValidateSource fetches and resolves like ResolveSource but returns
	// only the validation report; nothing is recorded.
	ValidateSource(ctx context.Context, source string) (models.ValidationReport, error)
}

// HistoryService reads and prunes the local resolve history.
type HistoryService interface {
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	Show(ctx context.Context, id int64) (models.HistoryEntry, error)
	Clear(ctx context.Context) (int64, error)
}
