package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

const (
	// WatchdogTimeoutEnv overrides the default watchdog timeout, in whole
	// seconds. CI and test environments set it to a short value such as 1.
	WatchdogTimeoutEnv = "REPYPE_WATCHDOG_TIMEOUT"

	// DefaultWatchdogTimeout bounds a run's wall-clock duration when neither
	// the environment nor the pipeline settings specify one.
	DefaultWatchdogTimeout = 300 * time.Second

	// DefaultParallel bounds how many pipelines of a batch run concurrently.
	DefaultParallel = 4
)

// RuntimeSettings holds process-wide defaults resolved once at startup and
// threaded into the executor explicitly. Nothing reads the environment after
// LoadSettings returns.
type RuntimeSettings struct {
	WatchdogTimeout time.Duration
	Parallel        int
}

// LoadSettings resolves runtime settings from the environment. A present but
// unparsable or non-positive override is rejected rather than silently
// replaced by the default.
func LoadSettings() (RuntimeSettings, error) {
	settings := RuntimeSettings{
		WatchdogTimeout: DefaultWatchdogTimeout,
		Parallel:        DefaultParallel,
	}

	if raw := os.Getenv(WatchdogTimeoutEnv); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return RuntimeSettings{}, repypeerrors.NewConfigurationError(WatchdogTimeoutEnv, fmt.Sprintf("invalid value %q", raw), err)
		}
		if seconds <= 0 {
			return RuntimeSettings{}, repypeerrors.NewConfigurationError(WatchdogTimeoutEnv, fmt.Sprintf("must be positive, got %d", seconds), nil)
		}
		settings.WatchdogTimeout = time.Duration(seconds) * time.Second
	}

	return settings, nil
}

// TimeoutFor returns the effective watchdog timeout for a pipeline, letting
// per-pipeline settings override the process-wide default.
func (s RuntimeSettings) TimeoutFor(pipeline *Pipeline) time.Duration {
	if pipeline != nil && pipeline.Settings.WatchdogTimeout > 0 {
		return time.Duration(pipeline.Settings.WatchdogTimeout) * time.Second
	}
	return s.WatchdogTimeout
}

// ParallelFor returns the effective batch parallelism for a pipeline.
func (s RuntimeSettings) ParallelFor(pipeline *Pipeline) int {
	if pipeline != nil && pipeline.Settings.Parallel > 0 {
		return pipeline.Settings.Parallel
	}
	if s.Parallel > 0 {
		return s.Parallel
	}
	return DefaultParallel
}
