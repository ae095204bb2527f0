package components

import (
	"cinematch/internal/tui/design"
	"cinematch/internal/tui/utils"
)

// Card renders one recommendation in a bordered box.
type Card struct {
	Text  string
	Width int
}

// InnerWidth is the number of cells available for text in a card of the
// given outer width.
func InnerWidth(outer int) int {
	inner := outer - design.CardStyle.GetHorizontalFrameSize()
	if inner < 1 {
		return 1
	}
	return inner
}

func (c Card) Render() string {
	inner := InnerWidth(c.Width)
	return design.CardStyle.Width(inner + design.CardStyle.GetHorizontalPadding()).
		Render(utils.TruncateString(c.Text, inner))
}
