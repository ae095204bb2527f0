// Package suggest implements the autocomplete filter over the title list.
//
// Matching is a case-insensitive substring test. There is no tokenization and
// no pattern syntax: a query that spans a word boundary still matches, and
// characters that would be special in a regular expression are literal.
package suggest

import (
	"iter"
	"strings"
	"unicode"
)

// DefaultLimit is the number of suggestions shown when no limit is configured.
const DefaultLimit = 7

// Span is a half-open range of rune offsets into a title.
type Span struct {
	Start int
	End   int
}

// Match is a title accepted by the filter together with the ranges to emphasize.
type Match struct {
	Title string
	Spans []Span
}

// Segment is a piece of a title, emphasized when it is part of a match.
type Segment struct {
	Text       string
	Emphasized bool
}

// Filter yields the titles containing query, ignoring case, in list order,
// and stops after limit matches. An empty query yields nothing. The returned
// sequence can be ranged over any number of times.
func Filter(titles []string, query string, limit int) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if query == "" || limit <= 0 {
			return
		}
		needle := []rune(strings.ToLower(query))
		found := 0
		for _, title := range titles {
			spans := findAll(title, needle)
			if len(spans) == 0 {
				continue
			}
			if !yield(Match{Title: title, Spans: spans}) {
				return
			}
			found++
			if found == limit {
				return
			}
		}
	}
}

// Collect materializes Filter into a slice.
func Collect(titles []string, query string, limit int) []Match {
	var matches []Match
	for m := range Filter(titles, query, limit) {
		matches = append(matches, m)
	}
	return matches
}

// Titles returns only the titles of matches.
func Titles(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Title
	}
	return out
}

// Segments splits the title into alternating plain and emphasized pieces.
func (m Match) Segments() []Segment {
	runes := []rune(m.Title)
	segments := make([]Segment, 0, 2*len(m.Spans)+1)
	pos := 0
	for _, span := range m.Spans {
		if span.Start > pos {
			segments = append(segments, Segment{Text: string(runes[pos:span.Start])})
		}
		segments = append(segments, Segment{Text: string(runes[span.Start:span.End]), Emphasized: true})
		pos = span.End
	}
	if pos < len(runes) || len(segments) == 0 {
		segments = append(segments, Segment{Text: string(runes[pos:])})
	}
	return segments
}

// findAll returns every non-overlapping occurrence of needle (already
// lowercased) in title, scanning left to right. Offsets are in runes of the
// original title; lowering is done per rune so offsets line up.
func findAll(title string, needle []rune) []Span {
	if len(needle) == 0 {
		return nil
	}
	hay := []rune(title)
	for i, r := range hay {
		hay[i] = unicode.ToLower(r)
	}

	var spans []Span
	for i := 0; i+len(needle) <= len(hay); {
		if equalRunes(hay[i:i+len(needle)], needle) {
			spans = append(spans, Span{Start: i, End: i + len(needle)})
			i += len(needle)
			continue
		}
		i++
	}
	return spans
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
