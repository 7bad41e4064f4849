// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Package resolver layers a user-supplied run configuration over the
// bundled pipeline defaults.
//
// The merge is deep and pure: documents are combined key by key, user
// values win on leaf conflicts, and neither input is ever mutated. A small
// set of protected key paths (`patients`) is refused any silent collision
// with shipped defaults; see [Merge].
package resolver

import (
	"io"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/internal/defaults"
)

// LoadDefaults parses the bundled defaults document into a fresh tree.
// The returned error, if any, is a [*LoadError]; it indicates a broken
// build rather than an operator mistake.
func LoadDefaults() (*configtree.Tree, error) {
	t, err := defaults.Tree()
	if err != nil {
		return nil, &LoadError{Source: "defaults", Err: err}
	}
	return t, nil
}

// LoadUser parses a user-supplied document from r. Empty input decodes to
// an empty tree; unreadable or malformed input is a [*LoadError].
//
// LoadUser performs no shape checking; pair it with [Resolver.LoadUser]
// when the document should be verified against the defaults.
func LoadUser(r io.Reader) (*configtree.Tree, error) {
	t, err := configtree.Decode(r)
	if err != nil {
		return nil, &LoadError{Source: "user", Err: err}
	}
	return t, nil
}

// Merge deep-merges user over defaults and returns a new tree:
//
//   - keys present only in defaults keep their default value;
//   - keys present only in user pass through unchanged (this is how
//     `patients` enters the result);
//   - mappings on both sides merge recursively;
//   - any other collision resolves to the user value, shape mismatches
//     included.
//
// Before merging, every protected path that the defaults define a value
// for must be untouched by the user document; a collision aborts with
// [*ProtectedKeyError] and no tree is returned. Protection stays dormant
// while the defaults carry nothing at the path.
//
// Neither input is mutated. The result may share unchanged subtrees with
// both inputs; callers that need a private copy clone it.
func Merge(defaults, user *configtree.Tree, protected [][]string) (*configtree.Tree, error) {
	for _, path := range protected {
		if _, ok := defaults.Lookup(path...); !ok {
			continue
		}
		if userTouches(user, path) {
			return nil, &ProtectedKeyError{Path: path}
		}
	}
	return mergeTrees(defaults, user), nil
}

func mergeTrees(defaults, user *configtree.Tree) *configtree.Tree {
	out := configtree.NewTree()
	for _, k := range defaults.Keys() {
		dv, _ := defaults.Get(k)
		uv, ok := user.Get(k)
		if !ok {
			out.Set(k, dv)
			continue
		}
		dt, dIsTree := dv.(*configtree.Tree)
		ut, uIsTree := uv.(*configtree.Tree)
		if dIsTree && uIsTree {
			out.Set(k, mergeTrees(dt, ut))
			continue
		}
		out.Set(k, uv)
	}
	for _, k := range user.Keys() {
		if _, ok := defaults.Get(k); !ok {
			uv, _ := user.Get(k)
			out.Set(k, uv)
		}
	}
	return out
}

// userTouches reports whether the user document collides with path: it
// either defines a value at the path itself or truncates it by replacing
// an ancestor mapping with a scalar, which would make the protected
// subtree vanish from the merge.
func userTouches(user *configtree.Tree, path []string) bool {
	cur := configtree.Value(user)
	for _, key := range path {
		t, ok := cur.(*configtree.Tree)
		if !ok {
			return true
		}
		v, ok := t.Get(key)
		if !ok {
			return false
		}
		cur = v
	}
	return true
}

// Resolver binds the bundled defaults and the protected key set into the
// strict resolution flow used by the CLI and the API: user documents are
// shape-checked on load, then merged.
type Resolver struct {
	defaults  *configtree.Tree
	protected [][]string
}

// New builds a Resolver over the bundled defaults. Extra protected key
// paths, given in dotted form, extend the built-in set.
func New(extraProtected ...string) (*Resolver, error) {
	d, err := LoadDefaults()
	if err != nil {
		return nil, err
	}
	protected := defaults.ProtectedKeys()
	for _, p := range extraProtected {
		if path := configtree.SplitPath(p); len(path) > 0 {
			protected = append(protected, path)
		}
	}
	return &Resolver{defaults: d, protected: protected}, nil
}

// NewWithDefaults builds a Resolver over a caller-supplied baseline.
// Used by tests and by tooling that resolves against historic defaults.
func NewWithDefaults(d *configtree.Tree, protected [][]string) *Resolver {
	return &Resolver{defaults: d, protected: protected}
}

// Defaults returns the resolver's baseline document. The result is shared;
// callers needing to mutate it must clone first.
func (r *Resolver) Defaults() *configtree.Tree { return r.defaults }

// LoadUser parses a user document from rd and verifies its shape against
// the defaults: a path holding a mapping on one side and a scalar on the
// other is a [*SchemaError] naming the path.
func (r *Resolver) LoadUser(rd io.Reader) (*configtree.Tree, error) {
	user, err := LoadUser(rd)
	if err != nil {
		return nil, err
	}
	if err := shapeConflict(r.defaults, user, nil); err != nil {
		return nil, err
	}
	return user, nil
}

// Resolve merges user over the resolver's defaults. See [Merge].
func (r *Resolver) Resolve(user *configtree.Tree) (*configtree.Tree, error) {
	return Merge(r.defaults, user, r.protected)
}

// ResolveDocument loads, shape-checks, and merges a user document in one
// call.
func (r *Resolver) ResolveDocument(rd io.Reader) (*configtree.Tree, error) {
	user, err := r.LoadUser(rd)
	if err != nil {
		return nil, err
	}
	return r.Resolve(user)
}

// shapeConflict walks the user document alongside the defaults and returns
// a *SchemaError for the first path where exactly one side is a mapping.
func shapeConflict(defaults, user *configtree.Tree, prefix []string) error {
	for _, k := range user.Keys() {
		dv, ok := defaults.Get(k)
		if !ok {
			continue
		}
		uv, _ := user.Get(k)

		path := append(prefix[:len(prefix):len(prefix)], k)
		dt, dIsTree := dv.(*configtree.Tree)
		ut, uIsTree := uv.(*configtree.Tree)
		switch {
		case dIsTree && uIsTree:
			if err := shapeConflict(dt, ut, path); err != nil {
				return err
			}
		case dIsTree != uIsTree:
			return &SchemaError{Path: path, DefaultIsTree: dIsTree}
		}
	}
	return nil
}
