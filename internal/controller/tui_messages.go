package controller

import (
	"time"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// Message types.
type tickMsg time.Time

type retranslateMsg struct {
	revision int
}

// List item types.
type reportItem struct {
	path       string
	confidence int
	report     m.Report
}

func (r reportItem) FilterValue() string {
	return r.path
}
