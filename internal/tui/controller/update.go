package controller

import (
	"fmt"
	"time"

	"cinematch/internal/recommend"
	"cinematch/internal/tui/model"
	"cinematch/internal/tui/view"
	"cinematch/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerDispatchSubsystem = "ControllerDispatch"
	statusTimeout               = 3 * time.Second
)

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m, cmd = handleKeyMsgLogOverlay(m, msg)
		} else {
			m, cmd = handleKeyMsgMain(m, msg)
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		m, cmd = handleMouseMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.TitlesLoadedMsg:
		m, cmd = handleTitlesLoadedMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.RecommendationResultMsg:
		m, cmd = handleRecommendationResultMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		// Cursor blink and other component-internal messages.
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

// refreshLogViewport re-renders the log overlay content when new lines
// arrived or its width changed.
func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func handleTitlesLoadedMsg(m *model.Model, msg model.TitlesLoadedMsg) (*model.Model, tea.Cmd) {
	m.TitlesLoading = false

	if msg.Err != nil {
		m.Titles = nil
		m.ClosePanel()
		m.Banner = recommend.MsgCatalogFailed
		LogError(catalogSubsystem, msg.Err, "Error fetching movie titles")
		return m, nil
	}

	m.Titles = msg.Titles
	if m.Banner == recommend.MsgCatalogFailed {
		m.Banner = ""
	}
	if m.Input.Value() != "" {
		m.RefreshSuggestions()
	}
	if len(msg.Titles) == 0 {
		LogWarn(catalogSubsystem, "Service returned no movie titles")
		return m, m.SetStatusMessage("No titles available", model.StatusBarWarning, statusTimeout)
	}
	LogInfo(catalogSubsystem, "Loaded %d movie titles", len(msg.Titles))
	return m, m.SetStatusMessage(fmt.Sprintf("Loaded %d titles", len(msg.Titles)), model.StatusBarSuccess, statusTimeout)
}

func handleRecommendationResultMsg(m *model.Model, msg model.RecommendationResultMsg) (*model.Model, tea.Cmd) {
	if !m.Flow.Complete(msg.Seq, msg.Recs, msg.Err) {
		LogDebug(m, recommendSubsystem, "Discarding stale response for request %d (latest %d)", msg.Seq, m.Flow.Seq())
		return m, nil
	}
	m.Banner = m.Flow.Message()

	if msg.Err != nil {
		LogError(recommendSubsystem, msg.Err, "Error fetching recommendations")
		return m, nil
	}
	LogInfo(recommendSubsystem, "Received %d recommendations", len(msg.Recs))
	return m, nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, logging.FormatEntry(msg.Entry))
	}
	return m
}
