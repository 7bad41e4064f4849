// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/internal/defaults"
)

type generateFlags struct {
	output string
	force  bool
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a starter configuration document",
		Long: `Generate writes the annotated starter document to the current
directory. The starter lists every section with its defaults commented,
plus an empty patients skeleton to fill in.

An existing file is never overwritten unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", defaults.TemplateFileName, "where to write the starter document")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing file")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	if err := defaults.WriteTemplate(flags.output, flags.force); err != nil {
		if errors.Is(err, defaults.ErrTemplateExists) {
			return fmt.Errorf("refusing to overwrite %s (use --force)", flags.output)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.output)
	return nil
}
