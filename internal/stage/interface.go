package stage

import (
	"context"

	"github.com/kostrykin/repype/internal/config"
)

// Runner is the processing operation behind one stage type. Implementations
// must honour context cancellation so the watchdog can stop a run at the
// earliest cooperative point, and must not retain the stage definition after
// Run returns.
type Runner interface {
	// Name identifies the stage type handled by this runner.
	Name() string

	// Run executes the stage against its configuration payload. A non-nil
	// error stops the run; earlier stages' side effects are not undone.
	Run(ctx context.Context, stage *config.Stage) error
}
