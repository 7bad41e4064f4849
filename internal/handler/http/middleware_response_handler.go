// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package http

import "net/http"

// responseWriter wraps [http.ResponseWriter] so the access log can report
// the status code and body size after the handler returns, without
// buffering the response.
//
// WriteHeader is forwarded at most once; later calls are dropped the same
// way the standard library drops superfluous ones.
type responseWriter struct {
	http.ResponseWriter

	status      int
	size        int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write counts bytes as they pass through and fills in the implicit 200
// when the handler never called WriteHeader itself.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
