package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []string{
	"Inception",
	"The Matrix",
	"Matrix Reloaded",
	"Interstellar",
	"The Prestige",
	"Insomnia",
	"Into the Wild",
	"In Bruges",
	"Inside Out",
	"Insidious",
	"Ingrid Goes West",
}

func TestFilter_MatrixScenario(t *testing.T) {
	matches := Collect([]string{"Inception", "The Matrix", "Matrix Reloaded"}, "matrix", DefaultLimit)
	require.Len(t, matches, 2)
	assert.Equal(t, []string{"The Matrix", "Matrix Reloaded"}, Titles(matches))

	for _, m := range matches {
		var emphasized []string
		for _, seg := range m.Segments() {
			if seg.Emphasized {
				emphasized = append(emphasized, seg.Text)
			}
		}
		assert.Equal(t, []string{"Matrix"}, emphasized, m.Title)
	}
}

func TestFilter_EmptyQueryYieldsNothing(t *testing.T) {
	assert.Empty(t, Collect(catalog, "", DefaultLimit))
}

func TestFilter_WhitespaceIsLiteral(t *testing.T) {
	matches := Collect(catalog, " ", DefaultLimit)
	for _, m := range matches {
		assert.Contains(t, m.Title, " ")
	}
	assert.NotEmpty(t, matches)
	assert.Empty(t, Collect([]string{"Inception"}, " ", DefaultLimit))
}

func TestFilter_Properties(t *testing.T) {
	for _, query := range []string{"in", "IN", "e", "the", "x", "s o"} {
		matches := Collect(catalog, query, DefaultLimit)
		assert.LessOrEqual(t, len(matches), DefaultLimit, query)
		for _, m := range matches {
			assert.Contains(t, catalog, m.Title, query)
			assert.Contains(t, strings.ToLower(m.Title), strings.ToLower(query), query)
		}
	}
}

func TestFilter_StopsAtLimitInListOrder(t *testing.T) {
	matches := Collect(catalog, "in", DefaultLimit)
	require.Len(t, matches, DefaultLimit)
	assert.Equal(t, []string{
		"Inception",
		"Interstellar",
		"Insomnia",
		"Into the Wild",
		"In Bruges",
		"Inside Out",
		"Insidious",
	}, Titles(matches))
}

func TestFilter_IsRestartable(t *testing.T) {
	seq := Filter(catalog, "the", 3)
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
	assert.Equal(t, 3, first)
}

func TestFilter_EarlyBreak(t *testing.T) {
	var seen []string
	for m := range Filter(catalog, "in", DefaultLimit) {
		seen = append(seen, m.Title)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"Inception", "Interstellar"}, seen)
}

func TestFilter_NoRegexSemantics(t *testing.T) {
	titles := []string{"Mission: Impossible (1996)", "Se7en", "What.Ever"}
	assert.Equal(t, []string{"Mission: Impossible (1996)"}, Titles(Collect(titles, "(19", DefaultLimit)))
	assert.Empty(t, Collect(titles, "s.7", DefaultLimit))
	assert.Equal(t, []string{"What.Ever"}, Titles(Collect(titles, "t.e", DefaultLimit)))
}

func TestFilter_SpansCrossWordBoundaries(t *testing.T) {
	matches := Collect([]string{"The Matrix"}, "e ma", DefaultLimit)
	require.Len(t, matches, 1)
	assert.Equal(t, []Span{{Start: 2, End: 6}}, matches[0].Spans)
}

func TestMatch_SegmentsNonOverlapping(t *testing.T) {
	matches := Collect([]string{"Banana"}, "ana", DefaultLimit)
	require.Len(t, matches, 1)
	assert.Equal(t, []Span{{Start: 1, End: 4}}, matches[0].Spans)
	assert.Equal(t, []Segment{
		{Text: "B"},
		{Text: "ana", Emphasized: true},
		{Text: "na"},
	}, matches[0].Segments())
}

func TestMatch_SegmentsRepeatedOccurrences(t *testing.T) {
	matches := Collect([]string{"Tora! Tora! Tora!"}, "tora", DefaultLimit)
	require.Len(t, matches, 1)
	segs := matches[0].Segments()
	var joined strings.Builder
	emphasized := 0
	for _, s := range segs {
		joined.WriteString(s.Text)
		if s.Emphasized {
			emphasized++
			assert.Equal(t, "Tora", s.Text)
		}
	}
	assert.Equal(t, 3, emphasized)
	assert.Equal(t, "Tora! Tora! Tora!", joined.String())
}

func TestMatch_SegmentsUnicode(t *testing.T) {
	matches := Collect([]string{"Amélie", "Léon"}, "ÉL", DefaultLimit)
	require.Len(t, matches, 1)
	assert.Equal(t, []Segment{
		{Text: "Am"},
		{Text: "él", Emphasized: true},
		{Text: "ie"},
	}, matches[0].Segments())
}

func TestFilter_NonPositiveLimit(t *testing.T) {
	assert.Empty(t, Collect(catalog, "in", 0))
	assert.Empty(t, Collect(catalog, "in", -1))
}
