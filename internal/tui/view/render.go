package view

import (
	"strings"

	"cinematch/internal/tui/components"
	"cinematch/internal/tui/design"
	"cinematch/internal/tui/model"
	"cinematch/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	f := Plan(m)
	switch f.Mode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(f.Quitting)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, m.Width, m.Height)
	default:
		return renderMain(m, f)
	}
}

func renderMain(m *model.Model, f Frame) string {
	parts := []string{
		renderHeader(m, f),
		renderInput(m),
	}
	for _, line := range f.Suggestions {
		parts = append(parts, renderSuggestion(line, m.Width))
	}

	parts = append(parts, "")
	if f.Loading {
		parts = append(parts, design.LoaderStyle.Render(m.Spinner.View()+" Finding recommendations..."))
	}
	if f.Banner != "" {
		parts = append(parts, design.BannerErrorStyle.Render(utils.TruncateString(f.Banner, bannerWidth(m.Width))))
	}
	for _, text := range f.Cards {
		parts = append(parts, components.Card{Text: text, Width: f.CardWidth}.Render())
	}

	helpView := m.Help
	if m.Width > 0 {
		helpView.Width = m.Width - design.HelpBarStyle.GetHorizontalFrameSize()
	}
	parts = append(parts,
		design.HelpBarStyle.Render(helpView.View(m.Keys)),
		components.NewStatusBar(m.Width).
			WithMessage(f.Status, f.StatusType).
			WithLeftText(appTitle).
			WithRightText(f.Summary()).
			Render(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(m *model.Model, f Frame) string {
	title := appTitle + " · find movies like the one you love"
	if f.TitlesLoading {
		title = m.Spinner.View() + " " + title
	}
	if m.Width > 0 {
		title = utils.TruncateString(title, m.Width-design.HeaderStyle.GetHorizontalFrameSize())
	}
	return design.HeaderStyle.Render(title)
}

func renderInput(m *model.Model) string {
	style := design.InputStyle
	if m.Input.Focused() {
		style = design.InputFocusedStyle
	}
	if m.Width > 0 {
		style = style.Width(m.Width - style.GetHorizontalBorderSize())
	}
	return style.Render(m.Input.View())
}

func renderSuggestion(line SuggestionLine, width int) string {
	var b strings.Builder
	for _, seg := range line.Segments {
		if seg.Emphasized {
			b.WriteString(design.SuggestionMatchStyle.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}

	style := design.SuggestionStyle
	if line.Highlighted {
		style = design.SuggestionHighlightedStyle
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(b.String())
}

func bannerWidth(screenWidth int) int {
	if screenWidth <= 0 {
		return 1 << 16
	}
	return screenWidth - design.BannerErrorStyle.GetHorizontalFrameSize()
}
