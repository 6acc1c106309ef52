package monitor

import (
	"github.com/kostrykin/repype/internal/model"
)

// Monitor is the consumer-facing side of one run's status stream. It holds
// only the receive ends: it observes the run but never controls its
// lifecycle. Exactly one consumer may use a Monitor.
type Monitor struct {
	events <-chan model.StatusEvent
	result <-chan model.RunResult

	final    model.RunResult
	resolved bool
}

// New wraps the channels produced by a run executor.
func New(events <-chan model.StatusEvent, result <-chan model.RunResult) *Monitor {
	return &Monitor{events: events, result: result}
}

// Events yields the run's status events in the order produced. The channel
// is closed after the terminal event.
func (m *Monitor) Events() <-chan model.StatusEvent {
	return m.events
}

// Wait discards any remaining events and blocks until the run reaches a
// terminal state, returning the terminal event.
func (m *Monitor) Wait() model.StatusEvent {
	for range m.events {
	}
	return m.Result().Final
}

// Collect drains the stream and returns every remaining event in order. The
// last element is the run's terminal event.
func (m *Monitor) Collect() []model.StatusEvent {
	var events []model.StatusEvent
	for event := range m.events {
		events = append(events, event)
	}
	return events
}

// Result blocks until the run has finished and returns its summary. It does
// not consume pending events; calling it again returns the same summary.
func (m *Monitor) Result() model.RunResult {
	if !m.resolved {
		m.final = <-m.result
		m.resolved = true
	}
	return m.final
}
