package components

import (
	"strings"
	"testing"

	"cinematch/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_RenderMessage(t *testing.T) {
	out := NewStatusBar(40).WithMessage("Loaded 3 titles", model.StatusBarSuccess).Render()
	assert.Contains(t, out, "Loaded 3 titles")
	assert.LessOrEqual(t, lipgloss.Width(out), 40)
}

func TestStatusBar_LeftRight(t *testing.T) {
	out := NewStatusBar(60).WithLeftText("cinematch").WithRightText("42 titles").Render()
	assert.Contains(t, out, "cinematch")
	assert.Contains(t, out, "42 titles")
}

func TestStatusBar_EdgeWidths(t *testing.T) {
	for _, width := range []int{-5, 0, 1, 3} {
		assert.NotPanics(t, func() {
			NewStatusBar(width).WithLeftText("a long left text").WithRightText("right").Render()
		})
	}
}

func TestCard_TruncatesToWidth(t *testing.T) {
	out := Card{Text: strings.Repeat("x", 100), Width: 30}.Render()
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
	assert.Contains(t, out, "…")

	short := Card{Text: "Heat", Width: 30}.Render()
	assert.Contains(t, short, "Heat")
}

func TestInnerWidth(t *testing.T) {
	assert.Equal(t, 1, InnerWidth(0))
	assert.Greater(t, InnerWidth(30), 20)
}
