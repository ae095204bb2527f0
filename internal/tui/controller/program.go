package controller

import (
	"cinematch/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the recommender. Extra
// options are appended to the defaults.
func NewProgram(cfg model.TUIConfig, opts ...tea.ProgramOption) *tea.Program {
	app := NewAppModel(model.InitialModel(cfg))
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(app, options...)
}
