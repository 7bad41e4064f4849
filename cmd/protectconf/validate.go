// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/internal/keys"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/models"
)

const formatText = "text"

type validateFlags struct {
	file        string
	format      string
	checkSSEKey bool
}

func newValidateCommand(c *container) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a user document against the merged result",
		Long: `Validate merges the user document over the shipped defaults and checks
the merged result: required values present, paths and enums well formed,
patient entries complete.

With --check-sse-key the key file referenced by Universal_Options.sse_key
is also opened and parsed, so a broken key is caught before a pipeline
launch ever depends on it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, c, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "user document: path, URL, or - for stdin")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text or json")
	cmd.Flags().BoolVar(&flags.checkSSEKey, "check-sse-key", false, "also open and parse the configured sse key file")

	return cmd
}

func runValidate(cmd *cobra.Command, c *container, flags *validateFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return fmt.Errorf("unsupported format %q (want text or json)", flags.format)
	}

	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	var report models.ValidationReport
	if flags.checkSSEKey {
		// The key file path lives in the merged tree, so this path runs a
		// full resolve instead of the report-only variant.
		result, resolveErr := services.Resolution.ResolveSource(cmd.Context(), flags.file, service.ResolveSourceOptions{})
		if resolveErr != nil {
			return resolveErr
		}
		report = appendSSEKeyIssues(result.Report, result.Tree)
	} else {
		report, err = services.Resolution.ValidateSource(cmd.Context(), flags.file)
		if err != nil {
			return err
		}
	}

	if err := writeReport(cmd, report, flags.format); err != nil {
		return err
	}

	if !report.OK {
		return fmt.Errorf("%d validation issue(s) found", len(report.Issues))
	}
	return nil
}

func writeReport(cmd *cobra.Command, report models.ValidationReport, format string) error {
	out := cmd.OutOrStdout()

	if format == formatJSON {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode validation report: %w", err)
		}
		_, err = fmt.Fprintln(out, string(encoded))
		return err
	}

	if report.OK {
		_, err := fmt.Fprintln(out, "configuration is valid")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tPROBLEM")
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "%s\t%s\n", issue.Path, issue.Problem)
	}
	return w.Flush()
}

// appendSSEKeyIssues probes the key file named by the merged document. A
// missing or malformed key file becomes one more validation issue; an
// unset sse_key is left to the base rules, which already require it for
// aws storage.
func appendSSEKeyIssues(report models.ValidationReport, tree *configtree.Tree) models.ValidationReport {
	keyPath := models.DecodeUniversalOptions(tree).SSEKey
	if keyPath == "" {
		return report
	}

	if _, err := keys.Load(keyPath); err != nil {
		return models.NewValidationReport(append(report.Issues, models.Issue{
			Path:    "Universal_Options.sse_key",
			Problem: err.Error(),
		}))
	}

	return report
}
