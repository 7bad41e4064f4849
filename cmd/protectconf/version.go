// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.buildInfo.BuildCommit())
			return nil
		},
	}
}
