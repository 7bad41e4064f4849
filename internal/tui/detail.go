package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/pimmuno/protectconf/models"
)

type detailModel struct {
	entry  entry
	status string
	help   help.Model
}

func newDetailModel(e entry) detailModel {
	return detailModel{entry: e, help: help.New()}
}

func originName(o models.Origin) string {
	switch o {
	case models.OriginDefault:
		return "default (shipped baseline)"
	case models.OriginUser:
		return "user (introduced by the user document)"
	case models.OriginOverride:
		return "override (user replaced a default)"
	default:
		return string(o)
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(pathStyle.Render(m.entry.path))
	b.WriteString("\n\n")

	value := m.entry.value
	if m.entry.origin == models.OriginOverride {
		value = overrideStyle.Render(value)
	}

	b.WriteString(fmt.Sprintf("Value:   %s\n", value))
	b.WriteString(fmt.Sprintf("Type:    %s\n", m.entry.typ))
	b.WriteString(fmt.Sprintf("Origin:  %s\n", originName(m.entry.origin)))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(detailKeyMap{keys}.ShortHelp())))

	return b.String()
}
