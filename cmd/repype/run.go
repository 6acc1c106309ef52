package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/engine"
	"github.com/kostrykin/repype/internal/logger"
	"github.com/kostrykin/repype/internal/model"
	"github.com/kostrykin/repype/internal/stage"
	"github.com/kostrykin/repype/internal/tui"
)

type runOptions struct {
	Timeout        int
	Parallel       int
	NonInteractive bool
	Verbose        bool
	Paths          []string
}

var runCmdRunner = runPipelines

func newRunCmd(root *rootFlags, settings config.RuntimeSettings, registry *stage.Registry, log *logger.Logger) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run <pipeline.yaml> [pipeline.yaml...]",
		Short: "Execute one or more pipelines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			opts.Verbose = root.verbose
			if !opts.NonInteractive {
				opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))
			}

			if err := validateRunOptions(opts); err != nil {
				return err
			}

			return runCmdRunner(opts, settings, registry, log)
		},
	}

	cmd.Flags().IntVarP(&opts.Timeout, "timeout", "t", 0, "Watchdog timeout in seconds (overrides pipeline and environment settings)")
	cmd.Flags().IntVarP(&opts.Parallel, "parallel", "p", 0, "How many pipelines run concurrently")
	cmd.Flags().BoolVar(&opts.NonInteractive, "no-interactive", false, "Disable the interactive run screen")

	return cmd
}

func runPipelines(opts runOptions, settings config.RuntimeSettings, registry *stage.Registry, log *logger.Logger) error {
	if opts.Verbose {
		verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return err
		}
		log = verbose
	}

	parallel := settings.Parallel
	if opts.Parallel > 0 {
		parallel = opts.Parallel
	}

	requests := make([]*engine.RunRequest, 0, len(opts.Paths))
	runIDs := make([]string, 0, len(opts.Paths))
	for _, path := range opts.Paths {
		pipeline, err := config.ParsePipeline(path)
		if err != nil {
			return err
		}

		timeout := settings.TimeoutFor(pipeline)
		if opts.Timeout > 0 {
			timeout = time.Duration(opts.Timeout) * time.Second
		}

		req, err := engine.NewRunRequest(path, pipeline, timeout)
		if err != nil {
			return err
		}

		requests = append(requests, req)
		runIDs = append(runIDs, req.ID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := engine.New(registry, log)
	modelState := tui.NewModel(runIDs, cancel)

	var batch engine.BatchResult

	if opts.NonInteractive {
		// Events arrive from concurrent runs; the model is not safe for
		// concurrent mutation, so serialize here.
		var mu sync.Mutex
		batch = exec.ExecuteBatch(ctx, requests, parallel, func(runID string, event model.StatusEvent) {
			mu.Lock()
			defer mu.Unlock()
			updated, _ := modelState.Update(tui.RunEventMsg{RunID: runID, Event: event})
			if m, ok := updated.(tui.Model); ok {
				modelState = m
			}
		})
		updated, _ := modelState.Update(tui.BatchDoneMsg{Result: batch})
		if m, ok := updated.(tui.Model); ok {
			modelState = m
		}
		fmt.Fprintln(os.Stdout, modelState.View())
	} else {
		program := tea.NewProgram(modelState)
		done := make(chan engine.BatchResult, 1)

		go func() {
			result := exec.ExecuteBatch(ctx, requests, parallel, func(runID string, event model.StatusEvent) {
				program.Send(tui.RunEventMsg{RunID: runID, Event: event})
			})
			program.Send(tui.BatchDoneMsg{Result: result})
			done <- result
		}()

		if _, err := program.Run(); err != nil {
			return err
		}
		cancel()
		batch = <-done
	}

	if !batch.Success() {
		return fmt.Errorf("%d of %d runs did not complete", failedRuns(batch), len(batch.Runs))
	}

	return nil
}

func failedRuns(batch engine.BatchResult) int {
	failed := 0
	for _, run := range batch.Runs {
		if !run.Success() {
			failed++
		}
	}
	return failed
}
