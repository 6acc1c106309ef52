package engine

import (
	"fmt"
	"time"

	"github.com/kostrykin/repype/internal/config"
	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

// RunRequest binds one pipeline definition to a watchdog timeout for a
// single run. The executor owns the request for the run's lifetime; the
// definition itself is shared and read-only.
type RunRequest struct {
	ID       string
	Pipeline *config.Pipeline
	Timeout  time.Duration
}

// NewRunRequest constructs a run request. A zero or negative timeout is
// rejected here, before execution starts; it is never treated as "no
// timeout". An empty id defaults to the pipeline name.
func NewRunRequest(id string, pipeline *config.Pipeline, timeout time.Duration) (*RunRequest, error) {
	if pipeline == nil {
		return nil, repypeerrors.NewConfigurationError("pipeline", "pipeline is required", nil)
	}
	if timeout <= 0 {
		return nil, repypeerrors.NewConfigurationError("timeout", fmt.Sprintf("watchdog timeout must be positive, got %s", timeout), nil)
	}
	if id == "" {
		id = pipeline.Name
	}

	return &RunRequest{ID: id, Pipeline: pipeline, Timeout: timeout}, nil
}
