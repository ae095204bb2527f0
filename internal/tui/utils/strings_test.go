package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Heat", TruncateString("Heat", 10))
	assert.Equal(t, "", TruncateString("Heat", 0))

	out := TruncateString("The Lord of the Rings", 10)
	assert.Equal(t, 10, runewidth.StringWidth(out))
	assert.Equal(t, "The Lord …", out)
}

func TestTruncateString_WideRunes(t *testing.T) {
	out := TruncateString("千と千尋の神隠し", 7)
	assert.LessOrEqual(t, runewidth.StringWidth(out), 7)
	assert.Contains(t, out, "…")
}
