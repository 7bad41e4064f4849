// Package configtree models configuration documents as ordered trees of
// string-keyed values.
//
// The model is deliberately narrow: a document is a mapping whose values are
// scalars (string, integer, float, boolean, or null) or further mappings.
// Sequences and complex keys are rejected at decode time. Key order is
// preserved from source to output so emitted documents stay diffable against
// what the author wrote.
//
// [Decode] and [Parse] build trees from YAML; [Encode] renders them back.
// Trees are not safe for concurrent mutation; resolved configuration is
// meant to be built once and treated as read-only afterwards.
package configtree
