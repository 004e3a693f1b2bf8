package tui

import "github.com/KevinNatera/l2assessment/internal/model"

// analysisDoneMsg carries the outcome of an analysis run. The run sequence
// number lets the session drop responses that belong to a superseded run.
type analysisDoneMsg struct {
	err    error
	result *model.AnalysisResult
	run    uint64
}

// clipboardDoneMsg reports the outcome of copying the reply.
type clipboardDoneMsg struct {
	err error
}
