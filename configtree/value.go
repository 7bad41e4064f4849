// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package configtree

import "strconv"

// Value is a single node of a configuration document: either a [Scalar] leaf
// or a [*Tree] of named children. The interface is sealed; no implementations
// exist outside this package.
type Value interface {
	isValue()
}

type scalarKind uint8

const (
	kindNull scalarKind = iota
	kindBool
	kindInt
	kindFloat
	kindString
)

// Scalar is an immutable leaf value: a boolean, an integer, a float, a
// string, or null. The zero value is null.
//
// Scalar is comparable: two scalars are equal exactly when they hold the
// same kind and payload. Integer and float scalars never compare equal to
// each other, mirroring the merge rule that numbers keep their parsed width.
type Scalar struct {
	kind scalarKind
	b    bool
	i    int64
	f    float64
	s    string
}

func (Scalar) isValue() {}

// Null returns the null scalar (an empty YAML value, `~`, or `null`).
func Null() Scalar { return Scalar{} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{kind: kindBool, b: b} }

// Int returns an integer scalar.
func Int(i int64) Scalar { return Scalar{kind: kindInt, i: i} }

// Float returns a floating-point scalar.
func Float(f float64) Scalar { return Scalar{kind: kindFloat, f: f} }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{kind: kindString, s: s} }

// IsNull reports whether the scalar is null.
func (s Scalar) IsNull() bool { return s.kind == kindNull }

// BoolVal returns the boolean payload. ok is false for non-boolean scalars.
func (s Scalar) BoolVal() (v, ok bool) { return s.b, s.kind == kindBool }

// IntVal returns the integer payload. ok is false for non-integer scalars.
func (s Scalar) IntVal() (int64, bool) { return s.i, s.kind == kindInt }

// FloatVal returns the floating-point payload. ok is false for non-float
// scalars; integers are not widened. Use [Scalar.NumberVal] when either
// numeric kind is acceptable.
func (s Scalar) FloatVal() (float64, bool) { return s.f, s.kind == kindFloat }

// NumberVal returns the numeric payload as float64 for integer and float
// scalars alike.
func (s Scalar) NumberVal() (float64, bool) {
	switch s.kind {
	case kindInt:
		return float64(s.i), true
	case kindFloat:
		return s.f, true
	default:
		return 0, false
	}
}

// StringVal returns the string payload. ok is false for non-string scalars.
func (s Scalar) StringVal() (string, bool) { return s.s, s.kind == kindString }

// Interface returns the payload as a plain Go value: nil, bool, int64,
// float64, or string.
func (s Scalar) Interface() any {
	switch s.kind {
	case kindBool:
		return s.b
	case kindInt:
		return s.i
	case kindFloat:
		return s.f
	case kindString:
		return s.s
	default:
		return nil
	}
}

// AsString renders the scalar for display: "null" for null, "true"/"false"
// for booleans, decimal notation for numbers, and the raw payload for
// strings.
func (s Scalar) AsString() string {
	switch s.kind {
	case kindBool:
		return strconv.FormatBool(s.b)
	case kindInt:
		return strconv.FormatInt(s.i, 10)
	case kindFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case kindString:
		return s.s
	default:
		return "null"
	}
}

// TypeName names the scalar kind for diagnostics: "null", "bool", "int",
// "float", or "string".
func (s Scalar) TypeName() string {
	switch s.kind {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindString:
		return "string"
	default:
		return "null"
	}
}
