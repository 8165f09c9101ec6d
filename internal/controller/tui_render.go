package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/transpyle/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	targetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	codeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// confidenceColor grades a score: green from 80, yellow from 50, red below.
func confidenceColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return lipgloss.Color("2")
	case score >= 50:
		return lipgloss.Color("11")
	default:
		return lipgloss.Color("1")
	}
}

func renderConfidence(score int) string {
	return lipgloss.NewStyle().
		Foreground(confidenceColor(score)).
		Bold(true).
		Render(fmt.Sprintf("%3d%%", score))
}

func renderTargetReport(tr m.TargetReport) string {
	header := fmt.Sprintf("%s  %s", targetStyle.Render(tr.Target.DisplayName()), renderConfidence(tr.Confidence))

	parts := []string{header, codeStyle.Render(strings.TrimRight(tr.Translation, "\n"))}
	for _, warning := range tr.Warnings {
		parts = append(parts, warningStyle.Render("⚠ "+string(warning)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTargetReports(reports []m.TargetReport) string {
	blocks := make([]string, 0, len(reports))
	for _, tr := range reports {
		blocks = append(blocks, renderTargetReport(tr))
	}

	return strings.Join(blocks, "\n\n")
}

func renderAnalysis(report m.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Snippet Analysis") + "\n\n")

	b.WriteString(labelStyle.Render("Variables") + "\n")

	if len(report.Variables) == 0 {
		b.WriteString("  none\n")
	}

	for _, v := range report.Variables {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", v.Name, targetStyle.Render(string(v.Kind))))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Functions") + "  " + joinOrNone(report.Functions) + "\n")
	b.WriteString(labelStyle.Render("Libraries") + "  " + joinOrNone(libraryNames(report.DetectedLibraries)) + "\n")
	b.WriteString(labelStyle.Render("Basic operations") + "  " + fmt.Sprintf("%t", report.HasBasicOperations) + "\n")

	for _, hint := range report.DataStructureHints {
		b.WriteString(labelStyle.Render("Hint") + "  " + hint.Idiom + " → " + string(hint.Kind) + "\n")
	}

	for _, lib := range report.DetectedLibraries {
		equivalents := report.LibraryEquivalents[lib]
		if len(equivalents) == 0 {
			continue
		}

		b.WriteString("\n" + labelStyle.Render(string(lib)+" equivalents") + "\n")

		for _, id := range m.Targets {
			if eq, ok := equivalents[id]; ok {
				b.WriteString(fmt.Sprintf("  %-12s %s\n", id.DisplayName(), eq))
			}
		}
	}

	return b.String()
}
