package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kostrykin/repype/internal/engine"
	"github.com/kostrykin/repype/internal/model"
)

// RunEventMsg delivers one status event of one run to the screen.
type RunEventMsg struct {
	RunID string
	Event model.StatusEvent
}

// BatchDoneMsg reports that every run of the batch has finished.
type BatchDoneMsg struct {
	Result engine.BatchResult
}

// Model contains the Bubbletea state for the run screen: one section per
// run, a styled line per status event, and an optional confirmation dialog
// guarding cancellation.
type Model struct {
	runs   []string
	events map[string][]model.StatusEvent
	final  map[string]model.StatusEvent

	total     int
	completed int
	finished  bool
	cancelled bool

	confirm   *Confirmation
	cancelRun func()
}

// NewModel constructs the run screen for the given run ids. cancelRun is
// invoked when the user confirms cancellation; it may be nil.
func NewModel(runIDs []string, cancelRun func()) Model {
	m := Model{
		runs:      append([]string(nil), runIDs...),
		events:    make(map[string][]model.StatusEvent, len(runIDs)),
		final:     make(map[string]model.StatusEvent, len(runIDs)),
		total:     len(runIDs),
		cancelRun: cancelRun,
	}
	for _, id := range m.runs {
		m.events[id] = nil
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// CompletedRuns returns the number of runs that reached a terminal state.
func (m Model) CompletedRuns() int {
	return m.completed
}

// IsFinished reports whether the whole batch has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// IsCancelled reports whether the user confirmed cancellation.
func (m Model) IsCancelled() bool {
	return m.cancelled
}

func (m *Model) ensureRun(id string) {
	if id == "" {
		return
	}
	if _, exists := m.events[id]; !exists {
		m.runs = append(m.runs, id)
		m.events[id] = nil
		m.total++
	}
}
