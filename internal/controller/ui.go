// Package controller provides the output surfaces that display translations,
// analysis reports and stored run results.
package controller

import (
	"errors"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// ErrNotInteractive is returned by Edit when the UI cannot host an editor.
var ErrNotInteractive = errors.New("interactive editing requires a terminal")

// ErrEditAborted is returned by Edit when the user leaves without saving.
var ErrEditAborted = errors.New("edit aborted")

// TranslateFunc translates one snippet on behalf of an interactive surface.
type TranslateFunc func(source string) m.Result

// RunInfo summarizes the work a run is about to do.
type RunInfo struct {
	Snippets   int
	Changed    int
	Parallel   int
	ShardIndex int
	ShardCount int
}

// UI defines the interface for displaying transpiler output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayTranslation(result m.Result, ids []m.Target) error
	DisplayAnalysis(report m.AnalysisReport) error
	DisplayRunInfo(info RunInfo)
	DisplayReports(reports []m.Report) error
	// Edit hosts a live editor seeded with initial and returns the accepted
	// source.
	Edit(initial string, translate TranslateFunc) (string, error)
}
