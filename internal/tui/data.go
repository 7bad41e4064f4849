package tui

import (
	"strings"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/models"
)

// section is one top-level key of the resolved document together with the
// number of leaf values below it.
type section struct {
	name   string
	leaves int
}

// entry is one leaf of the resolved document as rendered by the entries
// and detail screens.
type entry struct {
	path   string
	value  string
	typ    string
	origin models.Origin
}

// buildSections lists the top-level keys of the resolved tree in document
// order. A top-level scalar becomes a section with a single leaf.
func buildSections(result models.ResolveResult) []section {
	if result.Tree == nil {
		return nil
	}

	sections := make([]section, 0, result.Tree.Len())
	for _, name := range result.Tree.Keys() {
		sections = append(sections, section{
			name:   name,
			leaves: len(buildEntries(result, name)),
		})
	}

	return sections
}

// buildEntries flattens the leaves below one top-level key in document
// order, resolving each leaf's origin badge from the result.
func buildEntries(result models.ResolveResult, sectionName string) []entry {
	if result.Tree == nil {
		return nil
	}

	value, ok := result.Tree.Get(sectionName)
	if !ok {
		return nil
	}

	if scalar, isScalar := value.(configtree.Scalar); isScalar {
		return []entry{newEntry(result, []string{sectionName}, scalar)}
	}

	sub, isTree := value.(*configtree.Tree)
	if !isTree {
		return nil
	}

	var entries []entry
	_ = sub.Walk(func(path []string, s configtree.Scalar) error {
		full := append([]string{sectionName}, path...)
		entries = append(entries, newEntry(result, full, s))
		return nil
	})

	return entries
}

func newEntry(result models.ResolveResult, path []string, s configtree.Scalar) entry {
	dotted := configtree.JoinPath(path)
	return entry{
		path:   dotted,
		value:  s.AsString(),
		typ:    s.TypeName(),
		origin: result.Origins[dotted],
	}
}

// filterEntries keeps the entries whose dotted path contains the query,
// compared case-insensitively. An empty query keeps everything.
func filterEntries(entries []entry, query string) []entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	filtered := make([]entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.path), query) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
