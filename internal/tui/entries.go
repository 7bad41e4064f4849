package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/pimmuno/protectconf/models"
)

// maxValueWidth keeps long scalar values from wrapping list rows.
const maxValueWidth = 40

type entriesModel struct {
	section   string
	all       []entry
	visible   []entry
	idx       int
	filter    textinput.Model
	filtering bool
	status    string
	help      help.Model
}

func newEntriesModel(sectionName string, entries []entry) entriesModel {
	filter := textinput.New()
	filter.Placeholder = "filter paths"
	filter.Prompt = "/"
	filter.CharLimit = 64

	return entriesModel{
		section: sectionName,
		all:     entries,
		visible: entries,
		filter:  filter,
		help:    help.New(),
	}
}

func (m entriesModel) current() (entry, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return entry{}, false
	}
	return m.visible[m.idx], true
}

// applyFilter recomputes the visible rows and clamps the cursor.
func (m entriesModel) applyFilter() entriesModel {
	m.visible = filterEntries(m.all, m.filter.Value())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func originBadge(o models.Origin) string {
	switch o {
	case models.OriginDefault:
		return badgeStyle.Render("[d]")
	case models.OriginUser:
		return userStyle.Render("[u]")
	case models.OriginOverride:
		return overrideStyle.Render("[o]")
	default:
		return badgeStyle.Render("[?]")
	}
}

func renderEntryValue(e entry) string {
	v := fitText(e.value, maxValueWidth)
	if e.origin == models.OriginOverride {
		return overrideStyle.Render(v)
	}
	return v
}

func (m entriesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.section))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case len(m.all) == 0:
		b.WriteString("No values in this section\n")
	case len(m.visible) == 0:
		b.WriteString("No matches\n")
	}

	for i, e := range m.visible {
		cursor := "  "
		if i == m.idx && !m.filtering {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %-44s %s\n",
			cursor, originBadge(e.origin), fitText(e.path, 44), renderEntryValue(e)))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(entriesKeyMap{keys}.ShortHelp())))

	return b.String()
}
