package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

// browseResult builds a small resolved document with one leaf per origin
// kind.
func browseResult() models.ResolveResult {
	uni := configtree.NewTree()
	uni.Set("java_Xmx", configtree.String("20G"))
	uni.Set("reference_build", configtree.String("hg19"))

	star := configtree.NewTree()
	star.Set("version", configtree.String("2.5.2b"))
	alignment := configtree.NewTree()
	alignment.Set("star", star)

	tree := configtree.NewTree()
	tree.Set("Universal_Options", uni)
	tree.Set("alignment", alignment)

	return models.ResolveResult{
		Tree: tree,
		Origins: models.OriginSet{
			"Universal_Options.java_Xmx":        models.OriginOverride,
			"Universal_Options.reference_build": models.OriginDefault,
			"alignment.star.version":            models.OriginUser,
		},
	}
}

func pressKey(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()

	updated, _ := m.Update(msg)
	next, ok := updated.(appModel)
	require.True(t, ok)

	return next
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ─────────────────────────────────────────────
// data building
// ─────────────────────────────────────────────

// TestBuildSections verifies that top-level keys become sections in
// document order with their leaf counts.
func TestBuildSections(t *testing.T) {
	sections := buildSections(browseResult())

	require.Len(t, sections, 2)
	assert.Equal(t, section{name: "Universal_Options", leaves: 2}, sections[0])
	assert.Equal(t, section{name: "alignment", leaves: 1}, sections[1])
}

// TestBuildSections_NilTree verifies that a result without a tree renders
// as an empty document instead of panicking.
func TestBuildSections_NilTree(t *testing.T) {
	assert.Empty(t, buildSections(models.ResolveResult{}))
}

// TestBuildEntries verifies leaf flattening: dotted paths, rendered
// values, and origins resolved per leaf.
func TestBuildEntries(t *testing.T) {
	entries := buildEntries(browseResult(), "Universal_Options")

	require.Len(t, entries, 2)
	assert.Equal(t, entry{
		path:   "Universal_Options.java_Xmx",
		value:  "20G",
		typ:    "string",
		origin: models.OriginOverride,
	}, entries[0])
	assert.Equal(t, "Universal_Options.reference_build", entries[1].path)
	assert.Equal(t, models.OriginDefault, entries[1].origin)
}

// TestBuildEntries_TopLevelScalar verifies that a scalar sitting directly
// at the document root becomes a single-entry section.
func TestBuildEntries_TopLevelScalar(t *testing.T) {
	tree := configtree.NewTree()
	tree.Set("mock_mode", configtree.Bool(true))
	result := models.ResolveResult{
		Tree:    tree,
		Origins: models.OriginSet{"mock_mode": models.OriginUser},
	}

	entries := buildEntries(result, "mock_mode")

	require.Len(t, entries, 1)
	assert.Equal(t, "mock_mode", entries[0].path)
	assert.Equal(t, "true", entries[0].value)
	assert.Equal(t, models.OriginUser, entries[0].origin)
}

func TestBuildEntries_UnknownSection(t *testing.T) {
	assert.Empty(t, buildEntries(browseResult(), "no_such_section"))
}

// ─────────────────────────────────────────────
// filtering
// ─────────────────────────────────────────────

func TestFilterEntries(t *testing.T) {
	entries := []entry{
		{path: "alignment.star.version"},
		{path: "alignment.bwa.version"},
		{path: "expression.rsem.version"},
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "EmptyQueryKeepsAll", query: "", want: 3},
		{name: "SubstringMatch", query: "star", want: 1},
		{name: "CaseInsensitive", query: "STAR", want: 1},
		{name: "SharedPrefix", query: "alignment.", want: 2},
		{name: "NoMatch", query: "patients", want: 0},
		{name: "WhitespaceOnlyKeepsAll", query: "   ", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, filterEntries(entries, tt.query), tt.want)
		})
	}
}

// ─────────────────────────────────────────────
// navigation
// ─────────────────────────────────────────────

// TestAppModel_DrillDownToDetail verifies the sections → entries → detail
// path using key presses alone.
func TestAppModel_DrillDownToDetail(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())
	require.Equal(t, screenSections, m.currentScreen)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenEntries, m.currentScreen)
	assert.Equal(t, "Universal_Options", m.entries.section)

	m = pressKey(t, m, keyRune('j'))
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, "Universal_Options.reference_build", m.detail.entry.path)
}

// TestAppModel_EscWalksBack verifies that esc returns one level at a time
// and quits from the sections screen.
func TestAppModel_EscWalksBack(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.currentScreen)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenEntries, m.currentScreen)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenSections, m.currentScreen)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// TestAppModel_CursorClamping verifies that the cursor stays inside the
// section list at both edges.
func TestAppModel_CursorClamping(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())

	m = pressKey(t, m, keyRune('k'))
	assert.Equal(t, 0, m.sections.idx)

	for range 5 {
		m = pressKey(t, m, keyRune('j'))
	}
	assert.Equal(t, 1, m.sections.idx)
}

// TestAppModel_FilterNarrowsEntries verifies the "/" filter flow: focus,
// type, match, esc to clear.
func TestAppModel_FilterNarrowsEntries(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.entries.visible, 2)

	m = pressKey(t, m, keyRune('/'))
	require.True(t, m.entries.filtering)

	for _, r := range "java" {
		m = pressKey(t, m, keyRune(r))
	}
	require.Len(t, m.entries.visible, 1)
	assert.Equal(t, "Universal_Options.java_Xmx", m.entries.visible[0].path)

	// Enter keeps the filter applied but returns control to the list.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.entries.filtering)
	assert.Len(t, m.entries.visible, 1)

	// Esc from the list goes back to sections; re-entering the section
	// starts with a fresh filter.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, m.entries.visible, 2)
}

// TestAppModel_FilterEscClears verifies that esc while typing clears the
// query and restores the full list.
func TestAppModel_FilterEscClears(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressKey(t, m, keyRune('/'))
	m = pressKey(t, m, keyRune('x'))
	require.Empty(t, m.entries.visible)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.entries.filtering)
	assert.Len(t, m.entries.visible, 2)
}

// TestAppModel_StatusLifecycle verifies that a copy result sets the status
// line and clearStatusMsg removes it.
func TestAppModel_StatusLifecycle(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = pressKey(t, m, copiedMsg{what: "value"})
	assert.Equal(t, "Copied value", m.entries.status)

	m = pressKey(t, m, clearStatusMsg{})
	assert.Empty(t, m.entries.status)
}

// ─────────────────────────────────────────────
// views
// ─────────────────────────────────────────────

// TestViews_RenderWithoutTTY exercises every screen's View to guard
// against indexing mistakes; exact layout is not asserted.
func TestViews_RenderWithoutTTY(t *testing.T) {
	m := newAppModel("protect.yaml", browseResult())

	out := m.View()
	assert.Contains(t, out, "protect.yaml")
	assert.Contains(t, out, "Universal_Options")
	assert.Contains(t, out, "2 values")

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	out = m.View()
	assert.Contains(t, out, "Universal_Options.java_Xmx")
	assert.Contains(t, out, "20G")

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	out = m.View()
	assert.Contains(t, out, "Origin:")
	assert.Contains(t, out, "override")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "exactly-te", fitText("exactly-te", 10))
	assert.Equal(t, "very-lo...", fitText("very-long-value", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "unbounded", fitText("unbounded", 0))
	assert.Equal(t, "naïve-m...", fitText("naïve-merge-behaviour", 10), "truncation counts runes, not bytes")
}
