package service

import (
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// Services bundles every service the transports depend on.
type Services struct {
	Resolution ResolutionService
	Defaults   DefaultsService
	Runs       RunsService
	AppInfo    AppInfoService
}

// NewServices wires the service layer from its dependencies.
func NewServices(repos *store.Repositories, res *resolver.Resolver, cfg settings.Settings, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Resolution: NewResolutionService(res, repos.Runs, cfg.Resolver, logger),
		Defaults:   NewDefaultsService(res, logger),
		Runs:       NewRunsService(repos.Runs, logger),
		AppInfo:    appInfo,
	}, nil
}
