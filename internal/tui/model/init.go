package model

import (
	"cinematch/internal/suggest"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
// Printable keys are left to the text input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous suggestion"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next suggestion"),
		),
		Pick: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "pick suggestion"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "recommend"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close suggestions"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload titles"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy results"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "activity log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(cfg TUIConfig) *Model {
	ti := textinput.New()
	ti.Placeholder = "Start typing a movie title..."
	ti.Prompt = "🎬 "
	ti.CharLimit = 0
	ti.Width = 50
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	limit := cfg.SuggestionLimit
	if limit <= 0 {
		limit = suggest.DefaultLimit
	}

	return &Model{
		CurrentAppMode:   ModeMain,
		DebugMode:        cfg.DebugMode,
		Service:          cfg.Service,
		SuggestionLimit:  limit,
		TitlesLoading:    cfg.Service != nil,
		Input:            ti,
		Highlight:        NoHighlight,
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		LogChannel:       cfg.LogChannel,
	}
}

// Init implements tea.Model and starts the title fetch, the spinner and the
// log listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.Spinner.Tick}

	if m.Service != nil {
		cmds = append(cmds, FetchTitlesCmd(m.Service))
	}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}

	return tea.Batch(cmds...)
}
