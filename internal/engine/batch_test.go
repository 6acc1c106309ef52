package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/model"
)

// trackingRunner reports stage entry and exit so tests can measure
// concurrency.
type trackingRunner struct {
	enter func()
	exit  func()
}

func (r *trackingRunner) Name() string { return "fake" }

func (r *trackingRunner) Run(ctx context.Context, st *config.Stage) error {
	r.enter()
	defer r.exit()
	time.Sleep(20 * time.Millisecond)
	return nil
}

func TestExecuteBatch_ResultsInRequestOrder(t *testing.T) {
	runner := &fakeRunner{delay: 30 * time.Millisecond}
	exec := newTestExecutor(t, runner)

	var requests []*RunRequest
	for _, id := range []string{"alpha", "beta", "gamma"} {
		req, err := NewRunRequest(id, fakePipeline("stage1", "stage2"), time.Second)
		require.NoError(t, err)
		requests = append(requests, req)
	}

	batch := exec.ExecuteBatch(context.Background(), requests, 2, nil)
	require.True(t, batch.Success())
	require.Len(t, batch.Runs, 3)
	require.Equal(t, "alpha", batch.Runs[0].RunID)
	require.Equal(t, "beta", batch.Runs[1].RunID)
	require.Equal(t, "gamma", batch.Runs[2].RunID)
}

func TestExecuteBatch_PerRunOrderingPreserved(t *testing.T) {
	runner := &fakeRunner{delay: 10 * time.Millisecond}
	exec := newTestExecutor(t, runner)

	var requests []*RunRequest
	for _, id := range []string{"alpha", "beta"} {
		req, err := NewRunRequest(id, fakePipeline("stage1", "stage2"), time.Second)
		require.NoError(t, err)
		requests = append(requests, req)
	}

	var mu sync.Mutex
	perRun := make(map[string][]model.EventKind)
	observe := func(runID string, event model.StatusEvent) {
		mu.Lock()
		defer mu.Unlock()
		perRun[runID] = append(perRun[runID], event.Kind)
	}

	batch := exec.ExecuteBatch(context.Background(), requests, 2, observe)
	require.True(t, batch.Success())

	expected := []model.EventKind{
		model.EventPending,
		model.EventProcessing,
		model.EventProcessing,
		model.EventSuccess,
	}
	require.Equal(t, expected, perRun["alpha"])
	require.Equal(t, expected, perRun["beta"])
}

func TestExecuteBatch_ReportsFailures(t *testing.T) {
	runner := &fakeRunner{failOn: map[string]error{"stage1": context.DeadlineExceeded}}
	exec := newTestExecutor(t, runner)

	req, err := NewRunRequest("alpha", fakePipeline("stage1"), time.Second)
	require.NoError(t, err)

	batch := exec.ExecuteBatch(context.Background(), []*RunRequest{req}, 0, nil)
	require.False(t, batch.Success())
	require.Equal(t, model.EventError, batch.Runs[0].Final.Kind)
}

func TestExecuteBatch_BoundsParallelism(t *testing.T) {
	var mu sync.Mutex
	active, peak := 0, 0

	runner := &trackingRunner{
		enter: func() {
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()
		},
		exit: func() {
			mu.Lock()
			active--
			mu.Unlock()
		},
	}
	exec := newTestExecutor(t, runner)

	var requests []*RunRequest
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		req, err := NewRunRequest(id, fakePipeline("stage1"), time.Second)
		require.NoError(t, err)
		requests = append(requests, req)
	}

	batch := exec.ExecuteBatch(context.Background(), requests, 2, nil)
	require.True(t, batch.Success())

	mu.Lock()
	defer mu.Unlock()
	require.LessOrEqual(t, peak, 2)
}
