package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"navrail-cli/internal/model"
	"navrail-cli/internal/store"
)

// Run starts the interactive sidebar editor. Edits stay in memory until the
// user saves; quitting without saving discards the draft.
func Run(st store.Store, cfg *model.ModuleConfig) error {
	m := newAppModel(st, cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
