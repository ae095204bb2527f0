package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"cinematch/internal/recommend"
	"cinematch/internal/suggest"
	"cinematch/pkg/logging"
)

type stubService struct {
	titles    []string
	titlesErr error
	recs      []string
	recErr    error
	lastTitle string
}

func (s *stubService) ListTitles(ctx context.Context) ([]string, error) {
	return s.titles, s.titlesErr
}

func (s *stubService) Recommend(ctx context.Context, title string) ([]string, error) {
	s.lastTitle = title
	return s.recs, s.recErr
}

func TestInitialModel(t *testing.T) {
	logChan := make(chan logging.LogEntry, 1)
	svc := &stubService{}
	m := InitialModel(TUIConfig{Service: svc, LogChannel: logChan, DebugMode: true})

	if m.CurrentAppMode != ModeMain {
		t.Errorf("CurrentAppMode = %v, want Main", m.CurrentAppMode)
	}
	if m.SuggestionLimit != suggest.DefaultLimit {
		t.Errorf("SuggestionLimit = %d, want %d", m.SuggestionLimit, suggest.DefaultLimit)
	}
	if !m.TitlesLoading {
		t.Error("expected titles to be loading when a service is configured")
	}
	if m.Highlight != NoHighlight {
		t.Errorf("Highlight = %d, want NoHighlight", m.Highlight)
	}
	if !m.Input.Focused() {
		t.Error("expected the text input to be focused")
	}
	if m.Flow.Phase() != recommend.Idle {
		t.Errorf("Flow phase = %v, want Idle", m.Flow.Phase())
	}
	if !m.DebugMode {
		t.Error("expected DebugMode to be carried over")
	}
	if m.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestInitialModel_CustomLimit(t *testing.T) {
	m := InitialModel(TUIConfig{SuggestionLimit: 3})
	if m.SuggestionLimit != 3 {
		t.Errorf("SuggestionLimit = %d, want 3", m.SuggestionLimit)
	}
	if m.TitlesLoading {
		t.Error("no service means nothing to load")
	}
}

func TestSetStatusMessage(t *testing.T) {
	m := &Model{Width: 100}

	cmd1 := m.SetStatusMessage("First message", StatusBarSuccess, time.Second)
	if m.StatusBarMessage != "First message" || m.StatusBarMessageType != StatusBarSuccess {
		t.Errorf("unexpected status bar state: %q %v", m.StatusBarMessage, m.StatusBarMessageType)
	}
	if cmd1 == nil {
		t.Error("Expected a non-nil tea.Cmd from SetStatusMessage")
	}
	cancelChan1 := m.StatusBarClearCancel

	m.SetStatusMessage("Second message", StatusBarError, time.Second)
	if m.StatusBarClearCancel == cancelChan1 {
		t.Error("Expected StatusBarClearCancel to be a new channel after second call")
	}
	select {
	case <-cancelChan1:
	default:
		t.Error("Expected first StatusBarClearCancel channel to be closed")
	}
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	if len(m.ActivityLog) != MaxActivityLogLines {
		t.Fatalf("len(ActivityLog) = %d, want %d", len(m.ActivityLog), MaxActivityLogLines)
	}
	if m.ActivityLog[0] != "line 5" {
		t.Errorf("oldest kept line = %q, want %q", m.ActivityLog[0], "line 5")
	}
	if !m.ActivityLogDirty {
		t.Error("expected dirty flag to be set")
	}
}

func TestRefreshSuggestions(t *testing.T) {
	m := InitialModel(TUIConfig{})
	m.Titles = []string{"Inception", "The Matrix", "Matrix Reloaded"}
	m.Input.SetValue("matrix")
	m.RefreshSuggestions()

	if len(m.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(m.Suggestions))
	}
	if _, ok := m.HighlightedTitle(); ok {
		t.Error("nothing should be highlighted after a refresh")
	}

	m.Highlight = 1
	title, ok := m.HighlightedTitle()
	if !ok || title != "Matrix Reloaded" {
		t.Errorf("HighlightedTitle = %q, %v", title, ok)
	}

	m.ClosePanel()
	if m.PanelOpen() {
		t.Error("panel should be closed")
	}
}

func TestFetchTitlesCmd(t *testing.T) {
	svc := &stubService{titles: []string{"Heat"}}
	msg := FetchTitlesCmd(svc)()
	loaded, ok := msg.(TitlesLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want TitlesLoadedMsg", msg)
	}
	if len(loaded.Titles) != 1 || loaded.Err != nil {
		t.Errorf("unexpected result: %+v", loaded)
	}
}

func TestRecommendCmd(t *testing.T) {
	svc := &stubService{recErr: errors.New("model unavailable")}
	msg := RecommendCmd(svc, recommend.Request{Seq: 4, Title: "Heat"})()
	res, ok := msg.(RecommendationResultMsg)
	if !ok {
		t.Fatalf("got %T, want RecommendationResultMsg", msg)
	}
	if res.Seq != 4 || res.Err == nil || svc.lastTitle != "Heat" {
		t.Errorf("unexpected result: %+v (title %q)", res, svc.lastTitle)
	}
}

func TestListenForLogEntriesCmd(t *testing.T) {
	if ListenForLogEntriesCmd(nil) != nil {
		t.Error("a nil channel has nothing to listen to")
	}

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entry, ok := msg.(NewLogEntryMsg)
	if !ok || entry.Entry.Message != "hello" {
		t.Errorf("got %#v", msg)
	}

	close(ch)
	if msg := ListenForLogEntriesCmd(ch)(); msg != nil {
		t.Errorf("closed channel should yield nil, got %#v", msg)
	}
}

func TestAppModeString(t *testing.T) {
	if ModeLogOverlay.String() != "LogOverlay" {
		t.Errorf("got %q", ModeLogOverlay.String())
	}
	if AppMode(42).String() != "Unknown" {
		t.Errorf("got %q", AppMode(42).String())
	}
}

func TestPickTitle_KeepsLongTitleVerbatim(t *testing.T) {
	m := InitialModel(TUIConfig{})
	long := "Night of the Living " + strings.Repeat("Dead and ", 30) + "Then Some"
	if n := utf8.RuneCountInString(long); n <= 200 {
		t.Fatalf("test title too short: %d runes", n)
	}
	m.Titles = []string{long}
	m.Input.SetValue("night")
	m.RefreshSuggestions()

	m.PickTitle(long)
	if m.Input.Value() != long {
		t.Errorf("input holds %d runes, want %d", utf8.RuneCountInString(m.Input.Value()), utf8.RuneCountInString(long))
	}
	if m.PanelOpen() {
		t.Error("expected the panel to close")
	}
	if got := m.SubmitValue(); got != long {
		t.Errorf("SubmitValue() = %q, want the picked title", got)
	}
}

func TestSubmitValue_ControlCharactersAndEdits(t *testing.T) {
	m := InitialModel(TUIConfig{})
	title := "Night\tShift"

	m.PickTitle(title)
	if got := m.SubmitValue(); got != title {
		t.Errorf("SubmitValue() = %q, want %q", got, title)
	}

	m.Input.SetValue("Night Shift 2")
	if got := m.SubmitValue(); got != "Night Shift 2" {
		t.Errorf("SubmitValue() after editing = %q", got)
	}
}
