package model

import (
	"context"

	"cinematch/internal/api"
	"cinematch/internal/recommend"
	"cinematch/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchTitlesCmd loads the title list in the background. Deadlines are the
// client's concern.
func FetchTitlesCmd(svc api.Service) tea.Cmd {
	return func() tea.Msg {
		titles, err := svc.ListTitles(context.Background())
		return TitlesLoadedMsg{Titles: titles, Err: err}
	}
}

// RecommendCmd issues the recommendation call for req.
func RecommendCmd(svc api.Service, req recommend.Request) tea.Cmd {
	return func() tea.Msg {
		recs, err := svc.Recommend(context.Background(), req.Title)
		return RecommendationResultMsg{Seq: req.Seq, Recs: recs, Err: err}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It yields nil once
// the channel is closed, which ends the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
