// Package recommend tracks the lifecycle of a recommendation request:
// validation of the chosen title, the in-flight request and its outcome.
//
// A Flow is plain state with no I/O. Callers issue the network call for the
// Request returned by Begin and report back through Complete.
package recommend

import (
	"strings"
)

// Phase is the state of the request lifecycle.
type Phase int

const (
	Idle Phase = iota
	Validating
	Loading
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case Loading:
		return "Loading"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// User-facing messages.
const (
	MsgSelectMovie       = "Please select a movie from the list."
	MsgNoRecommendations = "No recommendations found for this movie."
	MsgCatalogFailed     = "Could not load movie suggestions. Please try refreshing."
	errorPrefix          = "Error: "
)

// Request is one recommendation call to issue.
type Request struct {
	Seq   uint64
	Title string
}

// Flow holds the current request state. The zero value is Idle.
type Flow struct {
	phase   Phase
	seq     uint64
	loading bool
	results []string
	message string
}

// Begin validates input and, if it is not blank, starts a new request.
// Any earlier request still in flight becomes stale. Blank input only sets
// the validation message; earlier results stay.
func (f *Flow) Begin(input string) (Request, bool) {
	f.phase = Validating
	title := strings.TrimSpace(input)
	if title == "" {
		f.phase = Failed
		f.message = MsgSelectMovie
		return Request{}, false
	}

	f.results = nil
	f.message = ""
	f.seq++
	f.loading = true
	f.phase = Loading
	return Request{Seq: f.seq, Title: title}, true
}

// Complete records the outcome of request seq. It returns false and leaves
// the state untouched when seq is not the latest request issued.
func (f *Flow) Complete(seq uint64, titles []string, err error) bool {
	if seq != f.seq || !f.loading {
		return false
	}
	f.loading = false

	switch {
	case err != nil:
		f.phase = Failed
		f.results = nil
		f.message = errorPrefix + err.Error()
	case len(titles) == 0:
		f.phase = Failed
		f.results = nil
		f.message = MsgNoRecommendations
	default:
		f.phase = Succeeded
		f.results = append([]string(nil), titles...)
		f.message = ""
	}
	return true
}

// Reset returns to Idle. In-flight requests are invalidated.
func (f *Flow) Reset() {
	if f.loading {
		f.seq++
	}
	f.phase = Idle
	f.loading = false
	f.results = nil
	f.message = ""
}

func (f *Flow) Phase() Phase { return f.phase }

// Loading reports whether the latest request is still outstanding.
func (f *Flow) Loading() bool { return f.loading }

// Results returns the recommendations of the last successful request.
func (f *Flow) Results() []string { return f.results }

// Message is the banner text, empty when there is nothing to report.
func (f *Flow) Message() string { return f.message }

// Seq is the sequence number of the latest request issued.
func (f *Flow) Seq() uint64 { return f.seq }
