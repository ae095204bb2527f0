package controller

import (
	"cinematch/internal/tui/design"
	"cinematch/internal/tui/model"
	"cinematch/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const minInputWidth = 10

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// resizes the input and the log viewport to match.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	// Prompt, cursor and the input box frame all take cells from the text.
	inputWidth := msg.Width - design.InputStyle.GetHorizontalFrameSize() - lipgloss.Width(m.Input.Prompt) - 1
	m.Input.Width = max(inputWidth, minInputWidth)

	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(msg.Width, msg.Height)
	return m, nil
}
