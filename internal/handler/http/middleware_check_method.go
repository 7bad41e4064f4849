// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// notFoundOnUnknownMethod replaces chi's default 405 Method Not Allowed
// response with a plain 404, so a caller probing a known path with the wrong
// method learns nothing about which routes exist. Requests whose method is
// actually registered for the matched pattern are handed back to the mux.
//
// Register it as the router's MethodNotAllowed handler:
//
//	router.MethodNotAllowed(notFoundOnUnknownMethod(router))
//
// Patterns are compared verbatim against the request path, so routes with
// URL parameters always fall through to 404 here.
func notFoundOnUnknownMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
