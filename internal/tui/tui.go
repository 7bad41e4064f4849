// Package tui is the interactive browser behind "protectconf browse". It
// presents a resolved configuration as sections, drillable to individual
// values with their provenance.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/models"
)

type TUI struct {
	title  string
	result models.ResolveResult
}

func New(title string, result models.ResolveResult, _ *logger.Logger) (*TUI, error) {
	return &TUI{title: title, result: result}, nil
}

// Browse runs the browser until the user quits.
func (t *TUI) Browse() error {
	model := newAppModel(t.title, t.result)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
