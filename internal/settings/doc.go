// Package settings provides runtime configuration loading, merging, and
// validation for the protectconf binaries.
//
// Settings are assembled from multiple sources. Earlier sources win for
// non-zero fields, and built-in defaults fill whatever remains unset:
//  1. Environment variables (PROTECTCONF_ prefix)
//  2. Command-line flags
//  3. JSON settings file
//  4. Built-in defaults
//
// The main entry points are [Load] for the protectconfd daemon and [ForCLI]
// for the protectconf command-line client. The pipeline configuration that
// protectconf resolves for users is a separate concern and lives in the
// resolver packages; this package only configures the tooling itself.
package settings
