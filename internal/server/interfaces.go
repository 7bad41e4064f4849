package server

// Server runs protectconfd's transport set as a unit.
//
// Run blocks until a termination signal arrives and every transport has shut
// down. Shutdown stops the transports early and unblocks Run.
type Server interface {
	Run()
	Shutdown()
}
