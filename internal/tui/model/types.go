package model

import (
	"time"

	"cinematch/internal/api"
	"cinematch/internal/recommend"
	"cinematch/internal/suggest"
	"cinematch/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// TUIConfig carries the collaborators the TUI is built with.
type TUIConfig struct {
	Service         api.Service
	SuggestionLimit int
	DebugMode       bool
	LogChannel      <-chan logging.LogEntry
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

const (
	MaxActivityLogLines = 1000
	// NoHighlight means no suggestion row is highlighted.
	NoHighlight = -1
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Pick      key.Binding
	Submit    key.Binding
	Close     key.Binding
	Reload    key.Binding
	Copy      key.Binding
	ToggleLog key.Binding
	Quit      key.Binding
}

// ShortHelp is shown under the results.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Pick, k.Reload, k.Copy, k.ToggleLog, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick, k.Close},
		{k.Submit, k.Reload, k.Copy},
		{k.ToggleLog, k.Quit},
	}
}

// Model holds all TUI state. Controller handlers mutate it in place.
type Model struct {
	Width  int
	Height int

	CurrentAppMode  AppMode
	DebugMode       bool
	QuittingMessage string

	Service         api.Service
	SuggestionLimit int

	// Titles is replaced wholesale on each load and never edited in place.
	Titles        []string
	TitlesLoading bool

	Input       textinput.Model
	Suggestions []suggest.Match
	Highlight   int

	// pickedTitle is the last picked suggestion verbatim; pickedShown is how
	// the input displays it.
	pickedTitle string
	pickedShown string

	Flow   recommend.Flow
	Banner string

	Spinner spinner.Model
	Keys    KeyMap
	Help    help.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	LogChannel           <-chan logging.LogEntry
}

// PanelOpen reports whether the suggestion panel is showing.
func (m *Model) PanelOpen() bool {
	return len(m.Suggestions) > 0
}

// ClosePanel empties the suggestion set.
func (m *Model) ClosePanel() {
	m.Suggestions = nil
	m.Highlight = NoHighlight
}

// RefreshSuggestions recomputes the suggestions for the current input.
func (m *Model) RefreshSuggestions() {
	m.Suggestions = suggest.Collect(m.Titles, m.Input.Value(), m.SuggestionLimit)
	m.Highlight = NoHighlight
}

// PickTitle puts title in the input and closes the panel. The input rewrites
// tabs and newlines, so the title is also kept verbatim for SubmitValue.
func (m *Model) PickTitle(title string) {
	m.Input.SetValue(title)
	m.Input.CursorEnd()
	m.pickedTitle = title
	m.pickedShown = m.Input.Value()
	m.ClosePanel()
}

// SubmitValue is the text to send for a recommendation: the picked title when
// the input still shows it unedited, the input text otherwise.
func (m *Model) SubmitValue() string {
	value := m.Input.Value()
	if m.pickedTitle != "" && value == m.pickedShown {
		return m.pickedTitle
	}
	return value
}

// HighlightedTitle returns the highlighted suggestion, if any.
func (m *Model) HighlightedTitle() (string, bool) {
	if m.Highlight < 0 || m.Highlight >= len(m.Suggestions) {
		return "", false
	}
	return m.Suggestions[m.Highlight].Title, true
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
