// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package models

import "fmt"

// AppBuildInfo carries immutable build-time metadata embedded into the
// protectconf binaries. Values are injected through linker flags during
// release builds and surface in version output and the /api/version
// endpoint.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build
// metadata. Empty fields are normalized to "N/A" so version output stays
// readable for local, un-flagged builds.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// BuildVersion reports the version stamped into the binary.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate reports when the binary was built.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit reports the VCS revision the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the build info as a single version line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("protectconf %s (commit %s, built %s)",
		a.buildVersion, a.buildCommit, a.buildDate)
}
