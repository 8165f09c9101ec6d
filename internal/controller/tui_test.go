package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/transpyle/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func newTestTUI() (*TUI, *bytes.Buffer) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.input = &bytes.Buffer{}

	return tui, &buf
}

func TestTUI_Run_ReturnsFinalModel(t *testing.T) {
	tui, _ := newTestTUI()

	done := make(chan struct{})

	var (
		final tea.Model
		err   error
	)

	go func() {
		final, err = tui.run(quitModel{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run() timed out")
	}

	require.NoError(t, err)
	assert.IsType(t, quitModel{}, final)
}

func TestTUI_DisplayTranslation(t *testing.T) {
	tui, buf := newTestTUI()

	if err := tui.DisplayTranslation(sampleResult(), m.Targets); err != nil {
		t.Fatalf("DisplayTranslation() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"Go", "PHP", "x := 5", "$x = 5;", "95%", "80%", "variable assigned without the $ sigil"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	assert.NotContains(t, output, "C#")
}

func TestTUI_DisplayAnalysis(t *testing.T) {
	tui, buf := newTestTUI()

	report := m.AnalysisReport{
		Variables:         []m.VariableEntry{{Name: "values", Kind: m.KindArray}},
		DetectedLibraries: []m.Library{m.LibraryNumpy},
		LibraryEquivalents: map[m.Library]map[m.Target]string{
			m.LibraryNumpy: {m.TargetJavaScript: "mathjs"},
		},
	}

	if err := tui.DisplayAnalysis(report); err != nil {
		t.Fatalf("DisplayAnalysis() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"Snippet Analysis", "values", "array", "Functions  none", "numpy equivalents", "JavaScript", "mathjs"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayRunInfo(t *testing.T) {
	tui, buf := newTestTUI()

	tui.DisplayRunInfo(RunInfo{Snippets: 3, Changed: 1, Parallel: 2, ShardIndex: 0, ShardCount: 2})

	assert.Contains(t, buf.String(), "1 of 3 snippet(s) with 2 worker(s) [shard 0/2]")
}

func TestTUI_DisplayReports_Empty(t *testing.T) {
	tui, buf := newTestTUI()

	require.NoError(t, tui.DisplayReports(nil))
	assert.Equal(t, "No reports found.\n", buf.String())
}

func TestConfidenceColor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "2"},
		{80, "2"},
		{65, "11"},
		{50, "11"},
		{35, "1"},
		{0, "1"},
	}

	for _, tt := range tests {
		if got := confidenceColor(tt.score); string(got) != tt.want {
			t.Fatalf("confidenceColor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
