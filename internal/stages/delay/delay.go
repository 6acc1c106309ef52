package delaystage

import (
	"context"
	"time"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/stage"
	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

type delayRunner struct{}

// New creates the runner for delay stages.
func New() stage.Runner {
	return &delayRunner{}
}

var _ stage.Runner = (*delayRunner)(nil)

func (r *delayRunner) Name() string {
	return "delay"
}

func (r *delayRunner) Run(ctx context.Context, st *config.Stage) error {
	cfg := st.Delay
	if cfg == nil {
		return repypeerrors.NewConfigurationError(st.ID, "delay configuration missing", nil)
	}

	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return repypeerrors.NewConfigurationError(st.ID, "invalid duration", err)
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return repypeerrors.NewStageError(st.ID, ctx.Err())
	}
}
