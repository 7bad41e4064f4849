package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

type sectionsModel struct {
	title    string
	sections []section
	idx      int
	help     help.Model
}

func newSectionsModel(title string, sections []section) sectionsModel {
	return sectionsModel{
		title:    title,
		sections: sections,
		help:     help.New(),
	}
}

func (m sectionsModel) current() (section, bool) {
	if len(m.sections) == 0 || m.idx < 0 || m.idx >= len(m.sections) {
		return section{}, false
	}
	return m.sections[m.idx], true
}

func (m sectionsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.sections) == 0 {
		b.WriteString("Empty document\n")
	}

	for i, s := range m.sections {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		noun := "values"
		if s.leaves == 1 {
			noun = "value"
		}

		b.WriteString(fmt.Sprintf("%s%-28s %s\n",
			cursor, s.name, badgeStyle.Render(fmt.Sprintf("%d %s", s.leaves, noun))))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(keys.ShortHelp())))

	return b.String()
}
