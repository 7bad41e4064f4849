package resolver

import (
	"errors"
	"fmt"

	"github.com/pimmuno/protectconf/configtree"
)

// Sentinel errors for the three failure kinds of configuration resolution.
// The concrete errors ([LoadError], [SchemaError], [ProtectedKeyError])
// carry details; callers branch with [errors.Is] against these values.
var (
	// ErrLoad matches any document that could not be located or parsed.
	ErrLoad = errors.New("configuration cannot be loaded")

	// ErrSchema matches scalar/mapping shape conflicts between the user
	// document and the defaults.
	ErrSchema = errors.New("configuration shape conflict")

	// ErrProtectedKey matches collisions on protected key paths.
	ErrProtectedKey = errors.New("protected configuration key")
)

// LoadError reports a defaults or user document that could not be read or
// parsed. No partial tree is ever returned alongside it.
type LoadError struct {
	// Source names the document: "defaults" or "user".
	Source string

	// Err is the underlying parse or read failure.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s configuration: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// SchemaError reports a path where the user document and the defaults
// disagree about shape: one side holds a mapping, the other a scalar.
type SchemaError struct {
	// Path locates the conflict from the document root.
	Path []string

	// DefaultIsTree records which side held the mapping.
	DefaultIsTree bool
}

func (e *SchemaError) Error() string {
	if e.DefaultIsTree {
		return fmt.Sprintf("%s: user value is a scalar where defaults hold a mapping",
			configtree.JoinPath(e.Path))
	}
	return fmt.Sprintf("%s: user value is a mapping where defaults hold a scalar",
		configtree.JoinPath(e.Path))
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ProtectedKeyError reports a protected key path where the defaults define
// a value and the user document collides with it. The merge is aborted
// rather than letting either side win silently.
type ProtectedKeyError struct {
	// Path is the protected path from the document root.
	Path []string
}

func (e *ProtectedKeyError) Error() string {
	return fmt.Sprintf("%s: protected key cannot be overridden",
		configtree.JoinPath(e.Path))
}

func (e *ProtectedKeyError) Is(target error) bool { return target == ErrProtectedKey }
