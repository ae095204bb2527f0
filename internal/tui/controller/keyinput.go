package controller

import (
	"cinematch/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgMain processes key presses on the main screen. Bound keys are
// matched first; everything else goes to the text input and recomputes the
// suggestions when the text changed.
func handleKeyMsgMain(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Reload):
		return reloadTitles(m)

	case key.Matches(keyMsg, m.Keys.Copy):
		return copyResults(m)

	case key.Matches(keyMsg, m.Keys.Up):
		moveHighlight(m, -1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		moveHighlight(m, 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Pick):
		if !m.PanelOpen() {
			return m, nil
		}
		if m.Highlight == model.NoHighlight {
			m.Highlight = 0
		}
		title, _ := m.HighlightedTitle()
		pickSuggestion(m, title)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Submit):
		if title, ok := m.HighlightedTitle(); ok {
			pickSuggestion(m, title)
			return m, nil
		}
		return submit(m)

	case key.Matches(keyMsg, m.Keys.Close):
		m.ClosePanel()
		return m, nil
	}

	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(keyMsg)
	if m.Input.Value() != before {
		m.RefreshSuggestions()
	}
	return m, cmd
}

// handleKeyMsgLogOverlay scrolls the log viewport and closes the overlay.
func handleKeyMsgLogOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Close):
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		return copyLog(m)
	}

	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return m, cmd
}

// moveHighlight steps through the suggestions, wrapping at both ends.
func moveHighlight(m *model.Model, delta int) {
	n := len(m.Suggestions)
	if n == 0 {
		return
	}
	if m.Highlight == model.NoHighlight {
		if delta > 0 {
			m.Highlight = 0
		} else {
			m.Highlight = n - 1
		}
		return
	}
	m.Highlight = (m.Highlight + delta + n) % n
}

// pickSuggestion puts title in the input and closes the panel.
func pickSuggestion(m *model.Model, title string) {
	m.PickTitle(title)
	LogDebug(m, controllerSubsystem, "Picked suggestion %q", title)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye!"
	return m, tea.Quit
}
