// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/internal/fetch"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// container carries the dependencies shared by the subcommands. Everything
// is built lazily so cheap commands (version, generate, sse-key) never load
// settings or open the history database.
type container struct {
	buildInfo models.AppBuildInfo
	verbose   bool

	cfg      *settings.CLISettings
	log      *logger.Logger
	services *service.CLIServices
	history  store.HistoryRepository
}

// NewRootCommand builds the protectconf command tree. Subcommands receive
// the shared container and resolve their dependencies through it.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &container{buildInfo: buildInfo}

	rootCmd := &cobra.Command{
		Use:   "protectconf",
		Short: "Resolve and inspect ProTECT pipeline configuration",
		Long: `protectconf merges a user configuration document over the defaults
shipped with the ProTECT immunotherapy pipeline, validates the merged
result, and renders it for launch, inspection, or scripting.

A user document only states what differs from the defaults. Scalars in
the user document win; subtrees merge recursively; the patients section
is never defined by the defaults and always comes from the user.`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			c.close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newResolveCommand(c),
		newValidateCommand(c),
		newGenerateCommand(),
		newGetCommand(c),
		newBrowseCommand(c),
		newHistoryCommand(c),
		newSSEKeyCommand(),
		newVersionCommand(c),
	)

	return rootCmd
}

// settings loads the CLI settings once per invocation.
func (c *container) settings() (*settings.CLISettings, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	cfg, err := settings.ForCLI()
	if err != nil {
		return nil, err
	}

	c.cfg = cfg
	return cfg, nil
}

// logger builds the console logger once. The CLI stays at warn so resolved
// documents on stdout are not interleaved with log noise; --verbose drops
// the threshold to debug.
func (c *container) logger() *logger.Logger {
	if c.log != nil {
		return c.log
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	_ = logger.ApplyLevel(level)

	c.log = logger.NewCLILogger("protectconf")
	return c.log
}

// buildServices wires the CLI service layer on first use: resolver with
// the configured protected keys, document fetcher, and the local history
// database.
func (c *container) buildServices(ctx context.Context) (*service.CLIServices, error) {
	if c.services != nil {
		return c.services, nil
	}

	cfg, err := c.settings()
	if err != nil {
		return nil, err
	}
	log := c.logger()

	res, err := resolver.New(cfg.Resolver.ProtectedKeys...)
	if err != nil {
		return nil, err
	}

	history, err := store.NewHistoryRepository(ctx, cfg.History, log)
	if err != nil {
		return nil, err
	}

	fetcher := fetch.New(fetch.Config{
		Timeout:      cfg.Fetch.Timeout,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		Retries:      cfg.Fetch.Retries,
		UserAgent:    "protectconf/" + c.buildInfo.BuildVersion(),
	})

	services, err := service.NewCLIServices(history, res, fetcher, *cfg, c.buildInfo, log)
	if err != nil {
		history.Close()
		return nil, err
	}

	c.history = history
	c.services = services
	return services, nil
}

// close releases whatever buildServices opened.
func (c *container) close() {
	if c.history != nil {
		_ = c.history.Close()
		c.history = nil
	}
}
