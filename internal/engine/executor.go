package engine

import (
	"context"
	"errors"
	"time"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/logger"
	"github.com/kostrykin/repype/internal/model"
	"github.com/kostrykin/repype/internal/monitor"
	"github.com/kostrykin/repype/internal/stage"
	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

// Executor drives pipeline runs. One executor can serve many concurrent
// runs; each run gets its own goroutine, watchdog, and event stream.
type Executor struct {
	registry *stage.Registry
	log      *logger.Logger
}

// New creates an executor backed by the given stage registry.
func New(registry *stage.Registry, log *logger.Logger) *Executor {
	return &Executor{registry: registry, log: log}
}

// Execute starts one run and returns its monitor. The event sequence is
// lazy, finite, and non-restartable: Pending, then Processing per stage in
// definition order, terminated by exactly one of Success, Error, TimedOut.
// Cancelling ctx stops the run at the next stage boundary; cancelling an
// already-terminal run is a no-op.
func (e *Executor) Execute(ctx context.Context, req *RunRequest) *monitor.Monitor {
	// Capacity covers the longest possible sequence, so the run goroutine
	// finishes even if the consumer walks away.
	events := make(chan model.StatusEvent, len(req.Pipeline.Stages)+2)
	result := make(chan model.RunResult, 1)

	go e.run(ctx, req, events, result)

	return monitor.New(events, result)
}

func (e *Executor) run(ctx context.Context, req *RunRequest, events chan<- model.StatusEvent, result chan<- model.RunResult) {
	start := time.Now()
	timings := make(map[string]time.Duration, len(req.Pipeline.Stages))

	var final model.StatusEvent
	defer func() {
		events <- final
		close(events)
		result <- model.RunResult{
			RunID:    req.ID,
			Final:    final,
			Timings:  timings,
			Duration: time.Since(start),
		}
		close(result)
	}()

	log := e.log.WithRun(req.ID)
	log.Debug("run started")

	events <- model.Pending()

	watchdog := StartWatchdog(req.Timeout)
	defer watchdog.Cancel()

	// Stages receive a context that is cancelled when the watchdog fires,
	// so cooperative stages stop early. The terminal kind is still decided
	// only at stage boundaries.
	stageCtx, cancelStages := context.WithCancel(ctx)
	defer cancelStages()
	go func() {
		select {
		case <-watchdog.Expired():
			cancelStages()
		case <-stageCtx.Done():
		}
	}()

	for i := range req.Pipeline.Stages {
		st := &req.Pipeline.Stages[i]

		// First-wins checkpoint: whichever of run progress and watchdog
		// expiry is observed here decides the outcome, and the other
		// signal is discarded.
		select {
		case <-watchdog.Expired():
			final = model.TimedOut(repypeerrors.NewTimeoutError(watchdog.Timeout()))
			log.Warn("run aborted by watchdog")
			return
		default:
		}

		if err := ctx.Err(); err != nil {
			final = model.Error(err)
			log.Warn("run cancelled")
			return
		}

		events <- model.Processing(st.ID)

		runner, err := e.registry.Get(st.Type)
		if err != nil {
			final = model.Error(err)
			log.Error(err, "no runner for stage")
			return
		}

		stageStart := time.Now()
		err = runner.Run(stageCtx, st)
		timings[st.ID] = time.Since(stageStart)

		select {
		case <-watchdog.Expired():
			final = model.TimedOut(repypeerrors.NewTimeoutError(watchdog.Timeout()))
			log.Warn("run aborted by watchdog")
			return
		default:
		}

		if err != nil {
			final = model.Error(stageFailure(st, err))
			log.Error(err, "stage failed")
			return
		}
	}

	watchdog.Cancel()
	final = model.Success()
	log.Debug("run completed")
}

func stageFailure(st *config.Stage, err error) error {
	var stageErr *repypeerrors.StageError
	var cfgErr *repypeerrors.ConfigurationError
	if errors.As(err, &stageErr) || errors.As(err, &cfgErr) {
		return err
	}
	return repypeerrors.NewStageError(st.ID, err)
}
