// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package models

import "time"

// Resolution run statuses stored in the registry.
const (
	// RunStatusResolved marks a run whose merged configuration passed
	// validation.
	RunStatusResolved = "resolved"

	// RunStatusInvalid marks a run that merged cleanly but failed one or
	// more validation rules. The merged document is still recorded so the
	// operator can inspect what was wrong.
	RunStatusInvalid = "invalid"
)

// Run sources stored in the registry.
const (
	// RunSourceCLI marks runs recorded by the protectconf command line.
	RunSourceCLI = "cli"

	// RunSourceHTTP marks runs recorded by the protectconfd API.
	RunSourceHTTP = "http"
)

// RunRecord is one entry of the resolution registry: a single attempt to
// resolve a run configuration, together with the merged document it
// produced.
//
// Records are written by the resolution service after every resolve and are
// never updated afterwards; the registry is an append-only audit trail.
type RunRecord struct {
	// ID is the UUID assigned when the record is created.
	ID string `json:"id"`

	// CreatedAt is the server-side creation timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`

	// Source records which surface produced the run: "cli" or "http".
	Source string `json:"source"`

	// Status is RunStatusResolved or RunStatusInvalid.
	Status string `json:"status"`

	// Digest is the hex SHA-256 of the canonical YAML rendering of the
	// merged document. Two runs with equal digests resolved to identical
	// configuration.
	Digest string `json:"digest"`

	// Patients is the number of patient entries in the merged document.
	Patients int `json:"patients"`

	// Issues is the number of validation issues found (zero for resolved
	// runs).
	Issues int `json:"issues"`

	// Document is the canonical YAML rendering of the merged configuration.
	// Omitted from listings; populated on single-record fetches when
	// requested.
	Document []byte `json:"document,omitempty"`
}

// RunFilter narrows registry listings. Zero fields mean "no constraint".
type RunFilter struct {
	// Status filters by run status when non-empty.
	Status string

	// Source filters by run source when non-empty.
	Source string

	// Limit caps the number of returned records; zero leaves the listing
	// uncapped. The service layer substitutes its own default before
	// querying.
	Limit int
}
