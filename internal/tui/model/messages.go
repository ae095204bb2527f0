package model

import "cinematch/pkg/logging"

// TitlesLoadedMsg carries the outcome of a title list fetch.
type TitlesLoadedMsg struct {
	Titles []string
	Err    error
}

// RecommendationResultMsg carries the outcome of request Seq.
type RecommendationResultMsg struct {
	Seq  uint64
	Recs []string
	Err  error
}

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}
