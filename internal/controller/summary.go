package controller

import (
	"strings"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// reportTargets returns the targets present in reports, in canonical order.
func reportTargets(reports []m.Report) []m.Target {
	seen := make(map[m.Target]bool)

	for _, report := range reports {
		for _, tr := range report.Targets {
			seen[tr.Target] = true
		}
	}

	ids := make([]m.Target, 0, len(seen))

	for _, id := range m.Targets {
		if seen[id] {
			ids = append(ids, id)
		}
	}

	return ids
}

func targetReport(report m.Report, id m.Target) (m.TargetReport, bool) {
	for _, tr := range report.Targets {
		if tr.Target == id {
			return tr, true
		}
	}

	return m.TargetReport{}, false
}

// meanConfidence averages the confidence of every target in report; a report
// without targets scores zero.
func meanConfidence(report m.Report) int {
	if len(report.Targets) == 0 {
		return 0
	}

	total := 0
	for _, tr := range report.Targets {
		total += tr.Confidence
	}

	return total / len(report.Targets)
}

// resultReports converts a live result into the per-target shape used by the
// stored reports.
func resultReports(result m.Result, ids []m.Target) []m.TargetReport {
	out := make([]m.TargetReport, 0, len(ids))

	for _, id := range ids {
		text, ok := result.Translations[id]
		if !ok {
			continue
		}

		out = append(out, m.TargetReport{
			Target:      id,
			Translation: text,
			Warnings:    result.Warnings[id],
			Confidence:  result.Confidence(id),
		})
	}

	return out
}

func withTrailingNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}

	return text + "\n"
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}

	return strings.Join(items, ", ")
}

func libraryNames(libs []m.Library) []string {
	names := make([]string, 0, len(libs))
	for _, lib := range libs {
		names = append(names, string(lib))
	}

	return names
}
