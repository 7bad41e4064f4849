// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package models

import (
	"fmt"
	"strings"
)

// Issue is a single validation finding against a resolved configuration.
type Issue struct {
	// Path is the dotted key path the finding refers to
	// (e.g. "Universal_Options.output_folder").
	Path string `json:"path"`

	// Problem describes what is wrong with the value at Path.
	Problem string `json:"problem"`
}

// String renders the issue for terminal output.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Problem)
}

// ValidationReport collects every finding from one validation pass. All
// rules are evaluated before reporting, so a single pass surfaces the full
// set of problems rather than the first one hit.
type ValidationReport struct {
	// OK is true when no issues were found.
	OK bool `json:"ok"`

	// Issues lists the findings in rule-evaluation order. Empty when OK.
	Issues []Issue `json:"issues"`
}

// NewValidationReport builds a report from the collected issues.
func NewValidationReport(issues []Issue) ValidationReport {
	return ValidationReport{OK: len(issues) == 0, Issues: issues}
}

// Summarize renders the report as terminal text: one line per issue plus a
// closing count, or a single all-clear line.
func (r ValidationReport) Summarize() string {
	if r.OK {
		return "configuration is valid"
	}
	var b strings.Builder
	for _, issue := range r.Issues {
		b.WriteString(issue.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d issue(s) found", len(r.Issues))
	return b.String()
}
