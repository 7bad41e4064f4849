// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package models

import (
	"github.com/pimmuno/protectconf/configtree"
)

// ResolveRequest describes one resolution job handed to the resolution
// service: a user document (possibly empty for a defaults-only resolve)
// plus bookkeeping for the run registry.
type ResolveRequest struct {
	// Document is the raw user YAML. Empty means "resolve the shipped
	// defaults only".
	Document []byte

	// Source records which surface submitted the job: RunSourceCLI or
	// RunSourceHTTP.
	Source string

	// SourceRef is the human-readable origin of the document (file path,
	// URL, "-" for stdin, or "inline" for request bodies). Stored in the
	// local history, not in the registry.
	SourceRef string

	// MaxCoresPerJob caps the per-job core count stamped during
	// finalization. Zero means no cap beyond the host CPU count.
	MaxCoresPerJob int

	// Persist controls whether the run is recorded in the registry.
	Persist bool
}

// ResolveResult is the outcome of one resolution: the merged tree together
// with everything the surfaces render from it.
type ResolveResult struct {
	// Tree is the finalized merged configuration.
	Tree *configtree.Tree

	// Origins maps every leaf path to where its value came from.
	Origins OriginSet

	// Report is the validation outcome for the merged document.
	Report ValidationReport

	// Document is the canonical YAML rendering of Tree. The digest is
	// computed over exactly these bytes.
	Document []byte

	// Digest is the hex SHA-256 of Document.
	Digest string

	// RunID is the registry ID assigned to this run. Empty when the run
	// was not persisted.
	RunID string

	// Patients is the number of patient entries in the merged document.
	Patients int
}

// Status reports the registry status string for the result:
// RunStatusResolved when validation passed, RunStatusInvalid otherwise.
func (r ResolveResult) Status() string {
	if r.Report.OK {
		return RunStatusResolved
	}
	return RunStatusInvalid
}
