package service

import (
	"context"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/internal/defaults"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
)

type defaultsService struct {
	resolver *resolver.Resolver

	logger *logger.Logger
}

// NewDefaultsService constructs a [DefaultsService] serving the bundled
// baseline documents.
func NewDefaultsService(res *resolver.Resolver, logger *logger.Logger) DefaultsService {
	return &defaultsService{
		resolver: res,
		logger:   logger,
	}
}

func (s *defaultsService) Raw(ctx context.Context) []byte {
	return defaults.Raw()
}

func (s *defaultsService) Template(ctx context.Context) []byte {
	return defaults.Template()
}

func (s *defaultsService) Tree(ctx context.Context) *configtree.Tree {
	return s.resolver.Defaults()
}
