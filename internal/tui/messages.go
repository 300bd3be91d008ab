package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"draftboard/internal/draft"
	"draftboard/internal/source"
)

// loadDoneMsg carries the outcome of one load attempt. The token ties the
// result to the attempt that produced it; a result whose token no longer
// matches the model's current token is discarded without touching state.
type loadDoneMsg struct {
	token string
	doc   draft.Document
	err   error
}

func loadCmd(src source.Source, token string) tea.Cmd {
	return func() tea.Msg {
		doc, err := src.Load(context.Background())
		return loadDoneMsg{token: token, doc: doc, err: err}
	}
}
