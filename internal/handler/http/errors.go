// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package http

import "errors"

// Sentinels for the Authorization header checks in withAuth. Their messages
// become 401 response bodies, telling callers which part of the header was
// wrong without leaking any claim detail.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

// apiError is the JSON error envelope returned to API consumers for every
// failed request.
type apiError struct {
	// Error is a human-readable description of what went wrong. Internal
	// failures are masked behind the generic 500 text.
	Error string `json:"error"`

	// Path locates the configuration key the failure refers to, when the
	// underlying error carries one (shape conflicts, protected keys).
	Path string `json:"path,omitempty"`
}
