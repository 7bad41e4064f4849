package tui

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
