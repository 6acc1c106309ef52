package model

import (
	"time"
)

// EventKind enumerates the discrete status transitions of a run.
type EventKind string

const (
	// EventPending indicates a run has been accepted but no stage started yet.
	EventPending EventKind = "pending"
	// EventProcessing indicates a stage is actively executing.
	EventProcessing EventKind = "processing"
	// EventSuccess marks a run whose stages all completed.
	EventSuccess EventKind = "success"
	// EventError marks a run stopped by a stage failure.
	EventError EventKind = "error"
	// EventTimedOut marks a run aborted by the watchdog.
	EventTimedOut EventKind = "timed_out"
)

// Kinds lists every event kind. Consumers mapping events to a presentation
// must cover all of them.
func Kinds() []EventKind {
	return []EventKind{EventPending, EventProcessing, EventSuccess, EventError, EventTimedOut}
}

// StatusEvent is a single status transition of one run. Events of a run are
// delivered in the order produced, at most once each, and end with exactly
// one terminal event.
type StatusEvent struct {
	Kind      EventKind
	Stage     string // set for EventProcessing
	Message   string
	Err       error // set for EventError and EventTimedOut
	Timestamp time.Time
}

// Terminal reports whether the event ends its run's sequence.
func (e StatusEvent) Terminal() bool {
	switch e.Kind {
	case EventSuccess, EventError, EventTimedOut:
		return true
	default:
		return false
	}
}

// Pending constructs the initial event of a run.
func Pending() StatusEvent {
	return StatusEvent{Kind: EventPending, Timestamp: time.Now()}
}

// Processing constructs the event emitted when a stage starts.
func Processing(stage string) StatusEvent {
	return StatusEvent{Kind: EventProcessing, Stage: stage, Timestamp: time.Now()}
}

// Success constructs the terminal event of a completed run.
func Success() StatusEvent {
	return StatusEvent{Kind: EventSuccess, Message: "completed", Timestamp: time.Now()}
}

// Error constructs the terminal event of a failed run.
func Error(err error) StatusEvent {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return StatusEvent{Kind: EventError, Message: message, Err: err, Timestamp: time.Now()}
}

// TimedOut constructs the terminal event of a watchdog-aborted run.
func TimedOut(err error) StatusEvent {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return StatusEvent{Kind: EventTimedOut, Message: message, Err: err, Timestamp: time.Now()}
}

// RunResult summarises a finished run.
type RunResult struct {
	RunID    string
	Final    StatusEvent
	Timings  map[string]time.Duration
	Duration time.Duration
}

// Success reports whether the run completed without failure or abort.
func (r RunResult) Success() bool {
	return r.Final.Kind == EventSuccess
}
