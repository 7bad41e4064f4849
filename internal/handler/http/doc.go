// Package http implements protectconfd's REST surface.
//
// routes.go wires the chi router. Handlers decode configuration documents
// and call into the service layer, mapping domain errors onto HTTP status
// codes. Middleware in this package covers request tracing, access logging,
// gzip in both directions, token auth on destructive routes, and the 404
// masking of unregistered methods.
package http
