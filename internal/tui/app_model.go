package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pimmuno/protectconf/models"
)

type screen int

const (
	screenSections screen = iota
	screenEntries
	screenDetail
)

// appModel routes between the three browse screens. The resolved document
// is immutable for the lifetime of the program; every screen renders a
// view over the same result.
type appModel struct {
	result models.ResolveResult

	currentScreen screen
	sections      sectionsModel
	entries       entriesModel
	detail        detailModel
}

func newAppModel(title string, result models.ResolveResult) appModel {
	return appModel{
		result:        result,
		currentScreen: screenSections,
		sections:      newSectionsModel(title, buildSections(result)),
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		status := "Copied " + msg.what
		if msg.err != nil {
			status = "Copy failed: " + msg.err.Error()
		}
		m.entries.status = status
		m.detail.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.entries.status = ""
		m.detail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenSections:
		return m.updateSections(msg)
	case screenEntries:
		return m.updateEntries(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenSections:
		body = m.sections.View()
	case screenEntries:
		body = m.entries.View()
	case screenDetail:
		body = m.detail.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateSections(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.sections.idx > 0 {
			m.sections.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.sections.idx < len(m.sections.sections)-1 {
			m.sections.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		s, ok := m.sections.current()
		if !ok {
			return m, nil
		}
		m.entries = newEntriesModel(s.name, buildEntries(m.result, s.name))
		m.currentScreen = screenEntries
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEntries(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	// While the filter input is focused every key except the control keys
	// below belongs to the input.
	if m.entries.filtering {
		if isKey {
			switch {
			case keyMsg.Type == tea.KeyCtrlC:
				return m, tea.Quit
			case key.Matches(keyMsg, keys.esc):
				m.entries.filtering = false
				m.entries.filter.Blur()
				m.entries.filter.SetValue("")
				m.entries = m.entries.applyFilter()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				m.entries.filtering = false
				m.entries.filter.Blur()
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.entries.filter, cmd = m.entries.filter.Update(msg)
		m.entries = m.entries.applyFilter()
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.entries.idx > 0 {
			m.entries.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.entries.idx < len(m.entries.visible)-1 {
			m.entries.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		e, ok := m.entries.current()
		if !ok {
			return m, nil
		}
		m.detail = newDetailModel(e)
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.filter):
		m.entries.filtering = true
		return m, m.entries.filter.Focus()
	case key.Matches(keyMsg, keys.copyVal):
		e, ok := m.entries.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard("value", e.value)
	case key.Matches(keyMsg, keys.copyPath):
		e, ok := m.entries.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard("path", e.path)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSections
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenEntries
	case key.Matches(keyMsg, keys.copyVal):
		return m, cmdCopyToClipboard("value", m.detail.entry.value)
	case key.Matches(keyMsg, keys.copyPath):
		return m, cmdCopyToClipboard("path", m.detail.entry.path)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func cmdCopyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
