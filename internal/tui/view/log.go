package view

import (
	"strings"

	"cinematch/internal/tui/design"
	"cinematch/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  Esc close)"

// LogViewportSize is the viewport size that fits the log overlay on a
// screen of the given size.
func LogViewportSize(width, height int) (int, int) {
	title := lipgloss.Height(design.LogPanelTitleStyle.Render(logOverlayTitle))
	w := width - design.LogOverlayStyle.GetHorizontalFrameSize()
	h := height - design.LogOverlayStyle.GetVerticalFrameSize() - title
	return max(w, 0), max(h, 0)
}

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render(logOverlayTitle)
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())

	style := design.LogOverlayStyle
	if width > 0 && height > 0 {
		style = style.
			Width(width - design.LogOverlayStyle.GetHorizontalBorderSize()).
			Height(height - design.LogOverlayStyle.GetVerticalBorderSize())
	}
	return style.Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
