package controller

import (
	"cinematch/internal/tui/model"
	"cinematch/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg picks a suggestion on click, and closes the panel when the
// click lands anywhere else but the input. In the log overlay the wheel
// scrolls the viewport.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if idx, ok := view.SuggestionIndexAt(m, msg.Y); ok {
		pickSuggestion(m, m.Suggestions[idx].Title)
		return m, nil
	}
	if !view.InputRowAt(msg.Y) {
		m.ClosePanel()
	}
	return m, nil
}
