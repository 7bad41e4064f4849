// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package configtree

import "strings"

// Tree is an ordered mapping from string keys to [Value] nodes. Key order is
// insertion order and is preserved by the YAML codec, so documents
// round-trip in the order the author wrote them.
//
// The zero value is not usable; construct trees with [NewTree], [Decode], or
// [Parse].
type Tree struct {
	keys []string
	vals map[string]Value
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{vals: make(map[string]Value)}
}

func (*Tree) isValue() {}

// Len returns the number of direct children.
func (t *Tree) Len() int { return len(t.keys) }

// Keys returns the child keys in insertion order. The returned slice is a
// copy the caller may modify freely.
func (t *Tree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the direct child stored under key.
func (t *Tree) Get(key string) (Value, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Set stores v under key. A new key is appended to the order; an existing
// key keeps its position.
func (t *Tree) Set(key string, v Value) {
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = v
}

// Delete removes the direct child stored under key, if any.
func (t *Tree) Delete(key string) {
	if _, ok := t.vals[key]; !ok {
		return
	}
	delete(t.vals, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Lookup descends the tree along path and returns the value at its end.
// An empty path is not addressable and reports ok == false.
func (t *Tree) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var cur Value = t
	for _, key := range path {
		sub, ok := cur.(*Tree)
		if !ok {
			return nil, false
		}
		if cur, ok = sub.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Subtree returns the nested tree at path. ok is false when the path is
// absent or ends at a scalar.
func (t *Tree) Subtree(path ...string) (*Tree, bool) {
	v, ok := t.Lookup(path...)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Tree)
	return sub, ok
}

// Scalar returns the scalar at path. ok is false when the path is absent or
// ends at a subtree.
func (t *Tree) Scalar(path ...string) (Scalar, bool) {
	v, ok := t.Lookup(path...)
	if !ok {
		return Scalar{}, false
	}
	s, ok := v.(Scalar)
	return s, ok
}

// Clone returns a deep copy of the tree. Scalars are immutable and copied by
// value; subtrees are cloned recursively.
func (t *Tree) Clone() *Tree {
	out := &Tree{
		keys: make([]string, len(t.keys)),
		vals: make(map[string]Value, len(t.vals)),
	}
	copy(out.keys, t.keys)
	for k, v := range t.vals {
		if sub, ok := v.(*Tree); ok {
			out.vals[k] = sub.Clone()
			continue
		}
		out.vals[k] = v
	}
	return out
}

// Equal reports deep structural equality. Key order is a presentation
// detail and does not participate: {a, b} equals {b, a} when the children
// match.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.vals) != len(other.vals) {
		return false
	}
	for k, v := range t.vals {
		ov, ok := other.vals[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && av == bv
	case *Tree:
		bv, ok := b.(*Tree)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

// Walk visits every leaf scalar depth-first in key order, passing the full
// path from the root. The path slice is freshly allocated per call and may
// be retained. Returning an error from fn stops the walk and propagates it.
func (t *Tree) Walk(fn func(path []string, s Scalar) error) error {
	return t.walk(nil, fn)
}

func (t *Tree) walk(prefix []string, fn func([]string, Scalar) error) error {
	for _, k := range t.keys {
		path := make([]string, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = k

		switch v := t.vals[k].(type) {
		case *Tree:
			if err := v.walk(path, fn); err != nil {
				return err
			}
		case Scalar:
			if err := fn(path, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// JoinPath renders a key path in dotted form ("Universal_Options.java_Xmx").
func JoinPath(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, ".")
}

// SplitPath splits a dotted path back into its keys. Keys themselves must
// not contain dots; the configuration documents this package handles never
// do.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
