package view

import (
	"fmt"

	"cinematch/internal/suggest"
	"cinematch/internal/tui/design"
	"cinematch/internal/tui/model"
)

// Fixed row layout of the main screen. Mouse hit-testing relies on it.
const (
	headerRows    = 1
	inputRows     = 3
	suggestionTop = headerRows + inputRows

	maxCardWidth = 72
	appTitle     = "cinematch"
)

// SuggestionLine is one row of the suggestion panel.
type SuggestionLine struct {
	Title       string
	Segments    []suggest.Segment
	Highlighted bool
}

// Frame is everything the main screen shows, derived from model state alone.
type Frame struct {
	Mode     model.AppMode
	Quitting string

	TitlesLoading bool
	TitleCount    int

	Suggestions []SuggestionLine

	Loading bool
	Banner  string
	// Cards holds the recommendations in order, untruncated.
	Cards     []string
	CardWidth int

	Status     string
	StatusType model.MessageType
}

// Plan computes the Frame for m. It does not modify m.
func Plan(m *model.Model) Frame {
	f := Frame{
		Mode:          m.CurrentAppMode,
		Quitting:      m.QuittingMessage,
		TitlesLoading: m.TitlesLoading,
		TitleCount:    len(m.Titles),
		Loading:       m.Flow.Loading(),
		Banner:        m.Banner,
		CardWidth:     cardWidth(m.Width),
		Status:        m.StatusBarMessage,
		StatusType:    m.StatusBarMessageType,
	}

	for i, match := range m.Suggestions {
		f.Suggestions = append(f.Suggestions, SuggestionLine{
			Title:       match.Title,
			Segments:    match.Segments(),
			Highlighted: i == m.Highlight,
		})
	}

	if !f.Loading {
		if results := m.Flow.Results(); len(results) > 0 {
			f.Cards = append([]string(nil), results...)
		}
	}
	return f
}

// Summary is the right-hand status bar text.
func (f Frame) Summary() string {
	if f.TitlesLoading {
		return "loading titles..."
	}
	return fmt.Sprintf("%d titles", f.TitleCount)
}

func cardWidth(screenWidth int) int {
	if screenWidth <= 0 {
		return maxCardWidth
	}
	return min(max(screenWidth, design.MinCardWidth), maxCardWidth)
}

// InputRowAt reports whether screen row y belongs to the input box.
func InputRowAt(y int) bool {
	return y >= headerRows && y < headerRows+inputRows
}

// SuggestionIndexAt maps screen row y to a suggestion index.
func SuggestionIndexAt(m *model.Model, y int) (int, bool) {
	if m.CurrentAppMode != model.ModeMain {
		return 0, false
	}
	idx := y - suggestionTop
	if idx < 0 || idx >= len(m.Suggestions) {
		return 0, false
	}
	return idx, true
}
