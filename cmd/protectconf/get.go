// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/internal/service"
)

type getFlags struct {
	file   string
	origin bool
}

func newGetCommand(c *container) *cobra.Command {
	flags := &getFlags{}

	cmd := &cobra.Command{
		Use:   "get <dotted.path>",
		Short: "Print one resolved value",
		Long: `Get resolves the document and prints the value at a dotted key path,
for use in scripts and run books. A path naming a subtree prints that
subtree as YAML.

With --origin the value's provenance is printed instead: default, user,
or override.`,
		Example: `  # Which reference build does this run use?
  protectconf get -f ProTECT_config.yaml Universal_Options.reference_build

  # Did the user change it, or is it the shipped default?
  protectconf get -f ProTECT_config.yaml Universal_Options.reference_build --origin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, c, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "user document: path, URL, or - for stdin")
	cmd.Flags().BoolVar(&flags.origin, "origin", false, "print where the value came from instead of the value")

	return cmd
}

func runGet(cmd *cobra.Command, c *container, flags *getFlags, dotted string) error {
	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	result, err := services.Resolution.ResolveSource(cmd.Context(), flags.file, service.ResolveSourceOptions{})
	if err != nil {
		return err
	}

	if flags.origin {
		origin, ok := result.Origins[dotted]
		if !ok {
			return fmt.Errorf("no single value at %q", dotted)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(origin))
		return err
	}

	value, ok := result.Tree.Lookup(configtree.SplitPath(dotted)...)
	if !ok {
		return fmt.Errorf("no value at %q", dotted)
	}

	switch v := value.(type) {
	case configtree.Scalar:
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v.AsString())
		return err
	case *configtree.Tree:
		encoded, encErr := configtree.EncodeBytes(v)
		if encErr != nil {
			return encErr
		}
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	default:
		return fmt.Errorf("no value at %q", dotted)
	}
}
