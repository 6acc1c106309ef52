package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/kostrykin/repype/internal/engine"
	"github.com/kostrykin/repype/internal/model"
)

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func key(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestUpdate_TracksRunCompletion(t *testing.T) {
	m := NewModel([]string{"alpha", "beta"}, nil)

	m = apply(t, m, RunEventMsg{RunID: "alpha", Event: model.Pending()})
	m = apply(t, m, RunEventMsg{RunID: "alpha", Event: model.Processing("blur")})
	require.Equal(t, 0, m.CompletedRuns())

	m = apply(t, m, RunEventMsg{RunID: "alpha", Event: model.Success()})
	require.Equal(t, 1, m.CompletedRuns())
	require.False(t, m.IsFinished())

	m = apply(t, m, RunEventMsg{RunID: "beta", Event: model.Error(errors.New("boom"))})
	require.Equal(t, 2, m.CompletedRuns())
}

func TestUpdate_DuplicateTerminalCountsOnce(t *testing.T) {
	m := NewModel([]string{"alpha"}, nil)
	m = apply(t, m, RunEventMsg{RunID: "alpha", Event: model.Success()})
	m = apply(t, m, RunEventMsg{RunID: "alpha", Event: model.Success()})
	require.Equal(t, 1, m.CompletedRuns())
}

func TestUpdate_BatchDoneFinishes(t *testing.T) {
	m := NewModel([]string{"alpha"}, nil)
	updated, cmd := m.Update(BatchDoneMsg{Result: engine.BatchResult{}})
	m = updated.(Model)
	require.True(t, m.IsFinished())
	require.NotNil(t, cmd)
}

func TestUpdate_CtrlCOpensConfirmation(t *testing.T) {
	m := NewModel([]string{"alpha"}, nil)
	m = apply(t, m, key("ctrl+c"))
	require.NotNil(t, m.confirm)
	require.False(t, m.IsCancelled())
}

func TestUpdate_ConfirmYesCancelsBatch(t *testing.T) {
	cancelled := false
	m := NewModel([]string{"alpha"}, func() { cancelled = true })

	m = apply(t, m, key("ctrl+c"))
	m = apply(t, m, key("y"))

	require.Nil(t, m.confirm)
	require.True(t, m.IsCancelled())
	require.True(t, cancelled)
}

func TestUpdate_ConfirmNoKeepsRunning(t *testing.T) {
	cancelled := false
	m := NewModel([]string{"alpha"}, func() { cancelled = true })

	m = apply(t, m, key("ctrl+c"))
	m = apply(t, m, key("n"))

	require.Nil(t, m.confirm)
	require.False(t, m.IsCancelled())
	require.False(t, cancelled)
}

func TestUpdate_DefaultButtonIsNo(t *testing.T) {
	m := NewModel([]string{"alpha"}, nil)
	m = apply(t, m, key("ctrl+c"))
	m = apply(t, m, key("enter"))

	require.Nil(t, m.confirm)
	require.False(t, m.IsCancelled(), "a stray enter must not confirm cancellation")
}

func TestUpdate_CtrlCAfterFinishQuits(t *testing.T) {
	m := NewModel([]string{"alpha"}, nil)
	m = apply(t, m, RunEventMsg{RunID: "alpha", Event: model.Success()})
	updated, _ := m.Update(BatchDoneMsg{})
	m = updated.(Model)

	_, cmd := m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
}

func TestUpdate_UnknownRunIsAdopted(t *testing.T) {
	m := NewModel(nil, nil)
	m = apply(t, m, RunEventMsg{RunID: "surprise", Event: model.Pending()})
	require.Contains(t, m.runs, "surprise")
}
