package utils

import "github.com/google/uuid"

// UUIDGenerator produces run identifiers for the resolution registry.
// Version 7 UUIDs are time-ordered, so registry rows sort by ID in creation
// order. A random V4 stands in when the clock or entropy source makes V7
// generation fail.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns the next run identifier.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}

	return uuid.NewString()
}
