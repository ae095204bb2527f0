package controller

import (
	"errors"
	"fmt"
	"strings"

	"cinematch/internal/tui/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

var errNoService = errors.New("no recommendation service configured")

// submit starts a recommendation request for the current input. Blank input
// fails validation and issues no call.
func submit(m *model.Model) (*model.Model, tea.Cmd) {
	m.ClosePanel()

	req, ok := m.Flow.Begin(m.SubmitValue())
	m.Banner = m.Flow.Message()
	if !ok {
		LogDebug(m, recommendSubsystem, "Rejected blank submission")
		return m, nil
	}

	if m.Service == nil {
		m.Flow.Complete(req.Seq, nil, errNoService)
		m.Banner = m.Flow.Message()
		return m, nil
	}

	LogInfo(recommendSubsystem, "Requesting recommendations for %q (request %d)", req.Title, req.Seq)
	return m, model.RecommendCmd(m.Service, req)
}

// reloadTitles starts over: the title list is fetched again and any
// outstanding request is forgotten.
func reloadTitles(m *model.Model) (*model.Model, tea.Cmd) {
	m.Flow.Reset()
	m.Banner = ""
	m.ClosePanel()

	if m.Service == nil {
		return m, nil
	}
	m.TitlesLoading = true
	LogInfo(catalogSubsystem, "Reloading movie titles")
	return m, model.FetchTitlesCmd(m.Service)
}

func copyResults(m *model.Model) (*model.Model, tea.Cmd) {
	results := m.Flow.Results()
	if len(results) == 0 {
		return m, m.SetStatusMessage("No recommendations to copy", model.StatusBarWarning, statusTimeout)
	}
	if err := clipboardWriteAll(strings.Join(results, "\n")); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy recommendations")
		return m, m.SetStatusMessage("Copy failed", model.StatusBarError, statusTimeout)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Copied %d recommendations", len(results)), model.StatusBarSuccess, statusTimeout)
}

func copyLog(m *model.Model) (*model.Model, tea.Cmd) {
	if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy logs")
		return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusTimeout)
	}
	return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusTimeout)
}
