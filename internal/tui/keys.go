package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	filter   key.Binding
	copyVal  key.Binding
	copyPath key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	copyVal:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy value")),
	copyPath: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
}

// ShortHelp satisfies help.KeyMap for the footer of the sections screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.enter, k.esc, k.quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.esc},
		{k.filter, k.copyVal, k.copyPath, k.quit},
	}
}

// entriesKeyMap narrows the footer to what the entries screen answers to.
type entriesKeyMap struct{ keyMap }

func (k entriesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.enter, k.filter, k.copyVal, k.copyPath, k.esc}
}

// detailKeyMap narrows the footer to what the detail screen answers to.
type detailKeyMap struct{ keyMap }

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.copyVal, k.copyPath, k.esc, k.quit}
}
