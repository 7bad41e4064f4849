// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/internal/service"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type resolveFlags struct {
	file           string
	output         string
	format         string
	maxCoresPerJob int
	strict         bool
	noHistory      bool
}

func newResolveCommand(c *container) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Merge a user document over the shipped defaults",
		Long: `Resolve merges the user configuration document over the defaults
shipped with the pipeline and prints the complete merged document.

The user document may come from a file path, an http(s) URL, or stdin
("-f -"). Without -f the shipped defaults are resolved alone. Every
resolve is recorded in the local history unless --no-history is given.`,
		Example: `  # Resolve a local document and print the merged YAML
  protectconf resolve -f ProTECT_config.yaml

  # Fetch the document from a config server and write the result
  protectconf resolve -f https://config.example.org/protect.yaml -o resolved.yaml

  # Fail when the merged document does not validate
  protectconf resolve -f ProTECT_config.yaml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, c, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "user document: path, URL, or - for stdin")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the merged document to this file instead of stdout")
	cmd.Flags().StringVar(&flags.format, "format", formatYAML, "output format: yaml or json")
	cmd.Flags().IntVar(&flags.maxCoresPerJob, "max-cores-per-job", 0, "cap the per-job core count stamped into the result")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when the merged document fails validation")
	cmd.Flags().BoolVar(&flags.noHistory, "no-history", false, "do not record this resolve in the local history")

	return cmd
}

func runResolve(cmd *cobra.Command, c *container, flags *resolveFlags) error {
	if flags.format != formatYAML && flags.format != formatJSON {
		return fmt.Errorf("unsupported format %q (want yaml or json)", flags.format)
	}

	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	result, err := services.Resolution.ResolveSource(cmd.Context(), flags.file, service.ResolveSourceOptions{
		MaxCoresPerJob: flags.maxCoresPerJob,
		RecordHistory:  !flags.noHistory,
	})
	if err != nil {
		return err
	}

	if !result.Report.OK {
		if flags.strict {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Report.Summarize())
			return fmt.Errorf("validation failed with %d issue(s)", len(result.Report.Issues))
		}
		c.logger().Warn().
			Int("issues", len(result.Report.Issues)).
			Msg("merged document has validation issues; run protectconf validate for details")
	}

	document := result.Document
	if flags.format == formatJSON {
		document, err = json.MarshalIndent(result.Tree, "", "  ")
		if err != nil {
			return fmt.Errorf("encode merged document as json: %w", err)
		}
		document = append(document, '\n')
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, document, 0o644); err != nil {
			return fmt.Errorf("write merged document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (digest %s)\n", flags.output, result.Digest)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(document)
	return err
}
