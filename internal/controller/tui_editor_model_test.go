package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// echoTranslate produces one translation per target that quotes the source.
func echoTranslate(calls *int) TranslateFunc {
	return func(source string) m.Result {
		*calls++

		result := m.Result{
			Source:       source,
			Translations: map[m.Target]string{},
			Warnings:     map[m.Target][]m.Warning{},
		}

		for _, id := range []m.Target{m.TargetGo, m.TargetPHP} {
			result.Translations[id] = string(id) + ": " + source
		}

		return result
	}
}

func TestEditorModel_InitialTranslation(t *testing.T) {
	calls := 0
	em := newEditorModel("x = 1", echoTranslate(&calls))

	assert.Equal(t, 1, calls)
	assert.Equal(t, []m.Target{m.TargetGo, m.TargetPHP}, em.targets)
	assert.Contains(t, em.View(), "go: x = 1")
	assert.NotNil(t, em.Init())
}

func TestEditorModel_TabCyclesTargets(t *testing.T) {
	calls := 0
	em := newEditorModel("x = 1", echoTranslate(&calls))

	model, _ := em.Update(tea.KeyMsg{Type: tea.KeyTab})
	em = model.(editorModel)

	id, ok := em.currentTarget()
	require.True(t, ok)
	assert.Equal(t, m.TargetPHP, id)
	assert.Contains(t, em.View(), "php: x = 1")

	model, _ = em.Update(tea.KeyMsg{Type: tea.KeyTab})
	em = model.(editorModel)

	id, _ = em.currentTarget()
	assert.Equal(t, m.TargetGo, id)
}

func TestEditorModel_EditSchedulesRetranslation(t *testing.T) {
	calls := 0
	em := newEditorModel("", echoTranslate(&calls))

	model, cmd := em.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	em = model.(editorModel)

	require.NotNil(t, cmd)
	assert.Equal(t, "y", em.input.Value())
	assert.Equal(t, 1, em.revision)
	assert.Equal(t, 1, calls, "translation runs after the debounce, not per key")

	model, _ = em.Update(retranslateMsg{revision: 0})
	em = model.(editorModel)
	assert.Equal(t, 1, calls, "stale revisions are ignored")

	model, _ = em.Update(retranslateMsg{revision: 1})
	em = model.(editorModel)
	assert.Equal(t, 2, calls)
	assert.True(t, strings.Contains(em.previewContent(), "go: y"))
}

func TestEditorModel_SaveAndAbort(t *testing.T) {
	calls := 0

	model, cmd := newEditorModel("x = 1", echoTranslate(&calls)).Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, model.(editorModel).saved)

	model, cmd = newEditorModel("x = 1", echoTranslate(&calls)).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, model.(editorModel).aborted)
	assert.False(t, model.(editorModel).saved)
}

func TestEditorModel_NoTargets(t *testing.T) {
	em := newEditorModel("", func(string) m.Result { return m.Result{} })

	_, ok := em.currentTarget()
	assert.False(t, ok)
	assert.Equal(t, "no target selected", em.previewContent())

	model, _ := em.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, model.(editorModel).current)

	model, _ = em.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, 120, model.(editorModel).width)
}
