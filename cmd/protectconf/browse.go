// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/tui"
)

type browseFlags struct {
	file string
}

func newBrowseCommand(c *container) *cobra.Command {
	flags := &browseFlags{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the resolved configuration interactively",
		Long: `Browse opens the resolved document in an interactive terminal
browser: sections, then individual values, each with a provenance badge
showing whether it came from the defaults, the user document, or a user
override of a default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, c, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "user document: path, URL, or - for stdin")

	return cmd
}

func runBrowse(cmd *cobra.Command, c *container, flags *browseFlags) error {
	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	result, err := services.Resolution.ResolveSource(cmd.Context(), flags.file, service.ResolveSourceOptions{})
	if err != nil {
		return err
	}

	title := flags.file
	if title == "" {
		title = "shipped defaults"
	}

	browser, err := tui.New(title, result, c.logger())
	if err != nil {
		return err
	}

	return browser.Browse()
}
