package errors

import (
	"fmt"
	"time"
)

// ConfigurationError reports an invalid pipeline definition or run request.
// It is raised before execution starts and is never partially applied.
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(field, message string, err error) error {
	return &ConfigurationError{Field: field, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StageError represents a failure while processing a pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

// NewStageError constructs a StageError for the given stage.
func NewStageError(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("stage failed: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TimeoutError indicates the watchdog aborted a run. It is not a stage
// failure and renders distinctly from one.
type TimeoutError struct {
	Timeout time.Duration
}

// NewTimeoutError constructs a TimeoutError for the configured timeout.
func NewTimeoutError(timeout time.Duration) error {
	return &TimeoutError{Timeout: timeout}
}

func (e *TimeoutError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("run aborted by watchdog after %s", e.Timeout)
}
