package service

import (
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// CLIServices bundles every service the protectconf command line depends
// on.
type CLIServices struct {
	Resolution CLIResolutionService
	History    HistoryService
	Defaults   DefaultsService
	AppInfo    AppInfoService
}

// NewCLIServices wires the command line service layer from its
// dependencies.
func NewCLIServices(history store.HistoryRepository, res *resolver.Resolver, fetcher DocumentFetcher, cfg settings.CLISettings, buildInfo models.AppBuildInfo, logger *logger.Logger) (*CLIServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &CLIServices{
		Resolution: NewCLIResolutionService(res, fetcher, history, cfg.Resolver, logger),
		History:    NewHistoryService(history, logger),
		Defaults:   NewDefaultsService(res, logger),
		AppInfo:    appInfo,
	}, nil
}
