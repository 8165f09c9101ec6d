package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTranslation prints every translation followed by its warnings and a
// confidence table.
func (s *SimpleUI) DisplayTranslation(result m.Result, ids []m.Target) error {
	reports := resultReports(result, ids)

	for _, tr := range reports {
		s.printf("== %s ==\n", tr.Target)
		s.printf("%s", withTrailingNewline(tr.Translation))

		for _, warning := range tr.Warnings {
			s.printf("warning: %s\n", warning)
		}

		s.printf("\n")
	}

	var tableBuffer bytes.Buffer

	table := s.newTable(&tableBuffer, []string{"Target", "Confidence", "Warnings"})
	for _, tr := range reports {
		table.Append([]string{string(tr.Target), fmt.Sprintf("%d%%", tr.Confidence), fmt.Sprintf("%d", len(tr.Warnings))})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayAnalysis prints the analysis report.
func (s *SimpleUI) DisplayAnalysis(report m.AnalysisReport) error {
	var tableBuffer bytes.Buffer

	table := s.newTable(&tableBuffer, []string{"Variable", "Kind"})
	for _, v := range report.Variables {
		table.Append([]string{v.Name, string(v.Kind)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(report.Variables)), ""})
	table.Render()
	s.printf("%s\n", tableBuffer.String())

	s.printf("Functions: %s\n", joinOrNone(report.Functions))
	s.printf("Libraries: %s\n", joinOrNone(libraryNames(report.DetectedLibraries)))
	s.printf("Basic operations: %t\n", report.HasBasicOperations)

	for _, hint := range report.DataStructureHints {
		s.printf("Hint: %s -> %s\n", hint.Idiom, hint.Kind)
	}

	if len(report.LibraryEquivalents) == 0 {
		return nil
	}

	ids := make([]m.Target, 0, len(m.Targets))

	for _, id := range m.Targets {
		for _, equivalents := range report.LibraryEquivalents {
			if _, ok := equivalents[id]; ok {
				ids = append(ids, id)
				break
			}
		}
	}

	header := []string{"Library"}
	for _, id := range ids {
		header = append(header, string(id))
	}

	tableBuffer.Reset()

	table = s.newTable(&tableBuffer, header)

	for _, lib := range report.DetectedLibraries {
		row := []string{string(lib)}
		for _, id := range ids {
			row = append(row, report.LibraryEquivalents[lib][id])
		}

		table.Append(row)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRunInfo prints the run settings.
func (s *SimpleUI) DisplayRunInfo(info RunInfo) {
	s.printf("Translating %d of %d snippet(s) with %d worker(s)", info.Changed, info.Snippets, info.Parallel)

	if info.ShardCount > 1 {
		s.printf(" [shard %d/%d]", info.ShardIndex, info.ShardCount)
	}

	s.printf("\n")
}

// DisplayReports prints a confidence table with one row per report.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found.\n")
		return nil
	}

	ids := reportTargets(reports)

	header := []string{"Path"}
	for _, id := range ids {
		header = append(header, string(id))
	}

	var tableBuffer bytes.Buffer

	table := s.newTable(&tableBuffer, header)
	totals := make([]int, len(ids))
	counts := make([]int, len(ids))

	for _, report := range reports {
		row := []string{string(report.Source.Path)}

		for i, id := range ids {
			tr, ok := targetReport(report, id)
			if !ok {
				row = append(row, "-")
				continue
			}

			totals[i] += tr.Confidence
			counts[i]++

			row = append(row, fmt.Sprintf("%d%%", tr.Confidence))
		}

		table.Append(row)
	}

	footer := []string{fmt.Sprintf("Total Files %d", len(reports))}

	for i := range ids {
		if counts[i] == 0 {
			footer = append(footer, "-")
			continue
		}

		footer = append(footer, fmt.Sprintf("%d%%", totals[i]/counts[i]))
	}

	table.SetFooter(footer)
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Edit is not supported without a terminal.
func (s *SimpleUI) Edit(_ string, _ TranslateFunc) (string, error) {
	return "", ErrNotInteractive
}

func (s *SimpleUI) newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_CENTER
	}

	alignment[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignment)

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
