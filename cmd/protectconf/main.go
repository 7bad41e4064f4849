// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Command protectconf is the command line for the ProTECT configuration
// resolver: it merges user documents over the shipped pipeline defaults,
// validates the result, and offers provenance tooling around it.
package main

import (
	"os"

	"github.com/pimmuno/protectconf/models"
)

// Populated at build time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	rootCmd := NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
