package domain

import (
	"sort"

	"github.com/mouse-blink/transpyle/internal/domain/targets"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// BuildAnalysisReport flattens ctx into sorted, display ready pairs and
// resolves the equivalent of every detected library for each of ids.
func BuildAnalysisReport(ctx m.Context, ids []m.Target) m.AnalysisReport {
	report := m.AnalysisReport{
		Variables:          make([]m.VariableEntry, 0, len(ctx.Variables)),
		Functions:          ctx.FunctionNames(),
		DetectedLibraries:  ctx.LibraryNames(),
		DataStructureHints: make([]m.HintEntry, 0, len(ctx.DataStructureHints)),
		HasBasicOperations: ctx.HasBasicOperations,
	}

	for name, kind := range ctx.Variables {
		report.Variables = append(report.Variables, m.VariableEntry{Name: name, Kind: kind})
	}

	sort.Slice(report.Variables, func(i, j int) bool {
		return report.Variables[i].Name < report.Variables[j].Name
	})

	for idiom, kind := range ctx.DataStructureHints {
		report.DataStructureHints = append(report.DataStructureHints, m.HintEntry{Idiom: idiom, Kind: kind})
	}

	sort.Slice(report.DataStructureHints, func(i, j int) bool {
		return report.DataStructureHints[i].Idiom < report.DataStructureHints[j].Idiom
	})

	if len(report.DetectedLibraries) > 0 {
		report.LibraryEquivalents = make(map[m.Library]map[m.Target]string, len(report.DetectedLibraries))

		for _, lib := range report.DetectedLibraries {
			equivalents := make(map[m.Target]string, len(ids))
			for _, id := range ids {
				equivalents[id] = targets.LibraryEquivalent(lib, id)
			}

			report.LibraryEquivalents[lib] = equivalents
		}
	}

	return report
}

// BuildReport assembles the stored form of one translated snippet.
func BuildReport(snippet m.Snippet, result m.Result, ids []m.Target) m.Report {
	report := m.Report{
		Source:   snippet,
		Analysis: BuildAnalysisReport(result.Context, ids),
		Targets:  make([]m.TargetReport, 0, len(ids)),
	}

	for _, id := range ids {
		translation, ok := result.Translations[id]
		if !ok {
			continue
		}

		warnings := result.Warnings[id]
		if warnings == nil {
			warnings = []m.Warning{}
		}

		report.Targets = append(report.Targets, m.TargetReport{
			Target:      id,
			Translation: translation,
			Warnings:    warnings,
			Confidence:  result.Confidence(id),
		})
	}

	return report
}
