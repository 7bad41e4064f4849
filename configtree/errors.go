package configtree

import "errors"

// Structural errors returned by [Decode] and [Parse] when a document cannot
// be represented as a nested mapping of scalars. Callers should use
// [errors.Is] to match against these values; the wrapping error names the
// offending path and source line.
var (
	// ErrNotMapping is returned when the document root is not a mapping
	// (for example a bare scalar or a sequence document).
	ErrNotMapping = errors.New("document root is not a mapping")

	// ErrDuplicateKey is returned when one mapping level defines the same
	// key twice.
	ErrDuplicateKey = errors.New("duplicate mapping key")

	// ErrBadKey is returned when a mapping key is not a plain scalar
	// (YAML complex keys are not part of the configuration model).
	ErrBadKey = errors.New("mapping key is not a plain scalar")

	// ErrUnsupportedNode is returned when a document contains a node the
	// configuration model cannot hold, such as a sequence value, a merge
	// key, or an explicitly tagged non-standard scalar.
	ErrUnsupportedNode = errors.New("unsupported document node")
)
