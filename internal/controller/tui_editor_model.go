package controller

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/transpyle/internal/model"
)

const editorDebounce = 150 * time.Millisecond

// editorModel edits a snippet on the left and shows one target of the live
// translation on the right. tab cycles the target.
type editorModel struct {
	width     int
	height    int
	input     textarea.Model
	preview   viewport.Model
	translate TranslateFunc
	targets   []m.Target
	current   int
	result    m.Result
	revision  int
	saved     bool
	aborted   bool
}

func newEditorModel(initial string, translate TranslateFunc) editorModel {
	input := textarea.New()
	input.Placeholder = "Type a snippet…"
	input.ShowLineNumbers = true
	input.CharLimit = 0
	input.SetValue(initial)
	input.Focus()

	em := editorModel{
		input:     input,
		preview:   viewport.New(40, 20),
		translate: translate,
	}

	em = em.retranslate()

	return em
}

// retranslate refreshes the result and the preview from the current input.
func (em editorModel) retranslate() editorModel {
	em.result = em.translate(em.input.Value())

	em.targets = make([]m.Target, 0, len(m.Targets))
	for _, id := range m.Targets {
		if _, ok := em.result.Translations[id]; ok {
			em.targets = append(em.targets, id)
		}
	}

	if em.current >= len(em.targets) {
		em.current = 0
	}

	em.preview.SetContent(em.previewContent())

	return em
}

func (em editorModel) currentTarget() (m.Target, bool) {
	if len(em.targets) == 0 {
		return "", false
	}

	return em.targets[em.current], true
}

func (em editorModel) previewContent() string {
	id, ok := em.currentTarget()
	if !ok {
		return "no target selected"
	}

	reports := resultReports(em.result, []m.Target{id})

	return renderTargetReports(reports)
}

func (em editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height

		half := max(msg.Width/2-2, 10)
		em.input.SetWidth(half)
		em.input.SetHeight(max(msg.Height-4, 3))
		em.preview.Width = half
		em.preview.Height = max(msg.Height-4, 3)

		return em, nil

	case retranslateMsg:
		if msg.revision != em.revision {
			return em, nil
		}

		return em.retranslate(), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			em.aborted = true
			return em, tea.Quit
		case "ctrl+s":
			em.saved = true
			return em, tea.Quit
		case "tab":
			if len(em.targets) > 0 {
				em.current = (em.current + 1) % len(em.targets)
				em.preview.SetContent(em.previewContent())
			}

			return em, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd

			em.preview, cmd = em.preview.Update(msg)

			return em, cmd
		}
	}

	before := em.input.Value()

	var cmd tea.Cmd

	em.input, cmd = em.input.Update(msg)

	if em.input.Value() == before {
		return em, cmd
	}

	em.revision++
	revision := em.revision

	return em, tea.Batch(cmd, tea.Tick(editorDebounce, func(time.Time) tea.Msg {
		return retranslateMsg{revision: revision}
	}))
}

func (em editorModel) View() string {
	title := "Live translation"
	if id, ok := em.currentTarget(); ok {
		title += " · " + id.DisplayName() + " " + renderConfidence(em.result.Confidence(id))
	}

	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Render(em.input.View())

	right := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Render(em.preview.View())

	footer := footerStyle.Render("tab next target • pgup/pgdown scroll • ctrl+s save • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		targetStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		footer,
	)
}
