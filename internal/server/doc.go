// Package server runs protectconfd's transports as one unit.
//
// NewServer builds whichever of the HTTP and gRPC listeners are configured.
// Run serves them until a termination signal arrives, then drains both
// through their graceful shutdown paths.
package server
