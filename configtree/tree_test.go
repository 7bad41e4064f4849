package configtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func mustParse(t *testing.T, doc string) *Tree {
	t.Helper()
	tree, err := Parse([]byte(doc))
	require.NoError(t, err)
	return tree
}

// ── Set / Get / Keys ──────────────────────────────────────────────────────────

// TestTree_SetPreservesInsertionOrder verifies that Keys reports children in
// the order they were first inserted, and that overwriting keeps position.
func TestTree_SetPreservesInsertionOrder(t *testing.T) {
	tree := NewTree()
	tree.Set("zeta", Int(1))
	tree.Set("alpha", Int(2))
	tree.Set("mid", Int(3))
	tree.Set("alpha", Int(4)) // overwrite must not reorder

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, tree.Keys())
	v, ok := tree.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, Int(4), v)
}

// TestTree_KeysReturnsCopy verifies that mutating the returned slice does not
// affect the tree.
func TestTree_KeysReturnsCopy(t *testing.T) {
	tree := NewTree()
	tree.Set("a", Int(1))
	tree.Set("b", Int(2))

	keys := tree.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, tree.Keys())
}

// TestTree_Delete verifies that Delete removes the value and its order slot,
// and is a no-op for absent keys.
func TestTree_Delete(t *testing.T) {
	tree := NewTree()
	tree.Set("a", Int(1))
	tree.Set("b", Int(2))
	tree.Set("c", Int(3))

	tree.Delete("b")
	tree.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, tree.Keys())
	_, ok := tree.Get("b")
	assert.False(t, ok)
}

// ── Lookup / Subtree / Scalar ─────────────────────────────────────────────────

// TestTree_Lookup verifies nested descent, absent paths, and descent through
// a scalar reporting false.
func TestTree_Lookup(t *testing.T) {
	tree := mustParse(t, `
alignment:
  star:
    version: 2.5.2b
`)

	v, ok := tree.Lookup("alignment", "star", "version")
	require.True(t, ok)
	assert.Equal(t, String("2.5.2b"), v)

	_, ok = tree.Lookup("alignment", "bwa")
	assert.False(t, ok)

	_, ok = tree.Lookup("alignment", "star", "version", "deeper")
	assert.False(t, ok)

	_, ok = tree.Lookup()
	assert.False(t, ok)
}

// TestTree_SubtreeAndScalar verifies the typed accessors distinguish leaf
// and mapping endpoints.
func TestTree_SubtreeAndScalar(t *testing.T) {
	tree := mustParse(t, "a:\n  b: 1\n")

	sub, ok := tree.Subtree("a")
	require.True(t, ok)
	assert.Equal(t, 1, sub.Len())

	_, ok = tree.Subtree("a", "b")
	assert.False(t, ok)

	s, ok := tree.Scalar("a", "b")
	require.True(t, ok)
	assert.Equal(t, Int(1), s)

	_, ok = tree.Scalar("a")
	assert.False(t, ok)
}

// ── Clone / Equal ─────────────────────────────────────────────────────────────

// TestTree_CloneIsDeep verifies that mutating a clone leaves the original
// untouched at every level.
func TestTree_CloneIsDeep(t *testing.T) {
	orig := mustParse(t, `
a:
  x: 1
  y: 2
b: keep
`)

	clone := orig.Clone()
	sub, ok := clone.Subtree("a")
	require.True(t, ok)
	sub.Set("x", Int(99))
	clone.Set("b", String("changed"))

	s, _ := orig.Scalar("a", "x")
	assert.Equal(t, Int(1), s)
	s, _ = orig.Scalar("b")
	assert.Equal(t, String("keep"), s)
}

// TestTree_EqualIgnoresKeyOrder verifies that equality is structural, not
// presentational.
func TestTree_EqualIgnoresKeyOrder(t *testing.T) {
	a := mustParse(t, "x: 1\ny: 2\n")
	b := mustParse(t, "y: 2\nx: 1\n")

	assert.True(t, a.Equal(b))
}

// TestTree_EqualDistinguishesShapeAndKind verifies that scalar/tree shape and
// numeric width both participate in equality.
func TestTree_EqualDistinguishesShapeAndKind(t *testing.T) {
	a := mustParse(t, "n: 2\n")
	b := mustParse(t, "n: 2.0\n")
	assert.False(t, a.Equal(b), "int and float must not compare equal")

	c := mustParse(t, "n:\n  sub: 2\n")
	assert.False(t, a.Equal(c))

	d := mustParse(t, "n: 2\nextra: 1\n")
	assert.False(t, a.Equal(d))
}

// ── Walk ──────────────────────────────────────────────────────────────────────

// TestTree_WalkVisitsLeavesInOrder verifies depth-first key-order traversal
// with full paths.
func TestTree_WalkVisitsLeavesInOrder(t *testing.T) {
	tree := mustParse(t, `
b:
  two: 2
  one: 1
a: solo
`)

	var got []string
	err := tree.Walk(func(path []string, s Scalar) error {
		got = append(got, JoinPath(path)+"="+s.AsString())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.two=2", "b.one=1", "a=solo"}, got)
}

// TestTree_WalkStopsOnError verifies that a callback error aborts traversal.
func TestTree_WalkStopsOnError(t *testing.T) {
	tree := mustParse(t, "a: 1\nb: 2\nc: 3\n")

	var visited int
	err := tree.Walk(func([]string, Scalar) error {
		visited++
		if visited == 2 {
			return assert.AnError
		}
		return nil
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, visited)
}

// ── path helpers ──────────────────────────────────────────────────────────────

// TestJoinSplitPath verifies dotted-path rendering and parsing round-trip.
func TestJoinSplitPath(t *testing.T) {
	assert.Equal(t, "a.b.c", JoinPath([]string{"a", "b", "c"}))
	assert.Equal(t, "(root)", JoinPath(nil))
	assert.Equal(t, []string{"a", "b"}, SplitPath("a.b"))
	assert.Nil(t, SplitPath(""))
}
