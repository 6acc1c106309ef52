package engine

import (
	"context"
	"sync"

	"github.com/kostrykin/repype/internal/model"
)

// BatchObserver receives every status event of a batch, tagged with the id
// of the run that produced it. Events of one run arrive in order; across
// runs there is no ordering guarantee. The observer may be called from
// multiple goroutines concurrently.
type BatchObserver func(runID string, event model.StatusEvent)

// BatchResult aggregates the outcomes of a batch of independent runs.
type BatchResult struct {
	Runs []model.RunResult
}

// Success reports whether every run of the batch completed.
func (b BatchResult) Success() bool {
	for _, run := range b.Runs {
		if !run.Success() {
			return false
		}
	}
	return true
}

// ExecuteBatch runs independent requests with bounded parallelism. Results
// are returned in request order regardless of completion order.
func (e *Executor) ExecuteBatch(ctx context.Context, requests []*RunRequest, parallel int, observe BatchObserver) BatchResult {
	if parallel <= 0 {
		parallel = 1
	}

	sem := make(chan struct{}, parallel)
	runs := make([]model.RunResult, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *RunRequest) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			mon := e.Execute(ctx, req)
			for event := range mon.Events() {
				if observe != nil {
					observe(req.ID, event)
				}
			}
			runs[i] = mon.Result()
		}(i, req)
	}
	wg.Wait()

	return BatchResult{Runs: runs}
}
