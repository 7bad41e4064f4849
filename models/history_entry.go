package models

import "time"

// HistoryEntry is one line of the local CLI history: a resolution performed
// on this machine, remembered so that `protectconf history` can show what
// was resolved, from where, and with what outcome.
type HistoryEntry struct {
	// ID is the local auto-assigned identifier.
	ID int64 `json:"id"`

	// RunAt is when the resolution ran.
	RunAt time.Time `json:"run_at"`

	// Source is the user document source as given on the command line:
	// a file path, an http(s) URL, or "-" for stdin.
	Source string `json:"source"`

	// Status is [RunStatusResolved] or [RunStatusInvalid].
	Status string `json:"status"`

	// Digest is the SHA-256 digest of the resolved document.
	Digest string `json:"digest"`

	// Patients is the number of patient entries in the resolved document.
	Patients int `json:"patients"`

	// Issues is the number of validation issues found.
	Issues int `json:"issues"`
}
