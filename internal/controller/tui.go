package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// TUI implements UI using lipgloss rendering and Bubble Tea programs for the
// interactive views.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// DisplayTranslation renders every translation with its confidence and
// warnings.
func (t *TUI) DisplayTranslation(result m.Result, ids []m.Target) error {
	_, _ = fmt.Fprintln(t.output, renderTargetReports(resultReports(result, ids)))

	return nil
}

// DisplayAnalysis renders the analysis report.
func (t *TUI) DisplayAnalysis(report m.AnalysisReport) error {
	_, _ = fmt.Fprint(t.output, renderAnalysis(report))

	return nil
}

// DisplayRunInfo shows concurrency settings.
func (t *TUI) DisplayRunInfo(info RunInfo) {
	shard := ""
	if info.ShardCount > 1 {
		shard = fmt.Sprintf(" [shard %d/%d]", info.ShardIndex, info.ShardCount)
	}

	_, _ = fmt.Fprintf(t.output, "%s %d of %d snippet(s) with %d worker(s)%s\n",
		targetStyle.Render("Translating"), info.Changed, info.Snippets, info.Parallel, shard)
}

// DisplayReports opens the interactive report browser.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(t.output, "No reports found.")
		return nil
	}

	_, err := t.run(newReportsModel(reports))

	return err
}

// Edit runs the live editor until the user saves or quits.
func (t *TUI) Edit(initial string, translate TranslateFunc) (string, error) {
	final, err := t.run(newEditorModel(initial, translate))
	if err != nil {
		return "", err
	}

	editor, ok := final.(editorModel)
	if !ok || !editor.saved {
		return "", ErrEditAborted
	}

	return editor.input.Value(), nil
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run terminal UI: %w", err)
	}

	return final, nil
}
