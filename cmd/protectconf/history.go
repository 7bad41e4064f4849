// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// digestDisplayLen shortens digests in listings; the full digest is shown
// by "history show".
const digestDisplayLen = 12

func newHistoryCommand(c *container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the local resolve history",
		Long: `History lists the resolutions run from this machine. Every resolve
records its source, outcome, document digest, and patient count in a
local SQLite database.`,
	}

	cmd.AddCommand(
		newHistoryListCommand(c),
		newHistoryShowCommand(c),
		newHistoryClearCommand(c),
	)

	return cmd
}

func newHistoryListCommand(c *container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent resolutions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryList(cmd, c, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show")

	return cmd
}

func newHistoryShowCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one history entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid history id %q", args[0])
			}
			return runHistoryShow(cmd, c, id)
		},
	}
}

func newHistoryClearCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole resolve history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryClear(cmd, c)
		},
	}
}

func runHistoryList(cmd *cobra.Command, c *container, limit int) error {
	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	entries, err := services.History.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRUN AT\tSOURCE\tSTATUS\tPATIENTS\tISSUES\tDIGEST")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			e.ID,
			e.RunAt.Local().Format(time.DateTime),
			e.Source,
			e.Status,
			e.Patients,
			e.Issues,
			shortDigest(e.Digest),
		)
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, c *container, id int64) error {
	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	entry, err := services.History.Show(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %d\n", entry.ID)
	fmt.Fprintf(out, "Run at:   %s\n", entry.RunAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "Source:   %s\n", entry.Source)
	fmt.Fprintf(out, "Status:   %s\n", entry.Status)
	fmt.Fprintf(out, "Patients: %d\n", entry.Patients)
	fmt.Fprintf(out, "Issues:   %d\n", entry.Issues)
	fmt.Fprintf(out, "Digest:   %s\n", entry.Digest)
	return nil
}

func runHistoryClear(cmd *cobra.Command, c *container) error {
	services, err := c.buildServices(cmd.Context())
	if err != nil {
		return err
	}

	removed, err := services.History.Clear(cmd.Context())
	if err != nil {
		return err
	}

	noun := "entries"
	if removed == 1 {
		noun = "entry"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d history %s\n", removed, noun)
	return err
}

func shortDigest(digest string) string {
	if len(digest) <= digestDisplayLen {
		return digest
	}
	return digest[:digestDisplayLen]
}
