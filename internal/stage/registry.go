package stage

import (
	"fmt"
	"sync"

	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

// Registry maps stage types to their runners. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	runners map[string]Runner
}

// NewRegistry creates an empty stage registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]Runner)}
}

// Register adds a runner for its stage type.
func (r *Registry) Register(runner Runner) error {
	if runner == nil {
		return repypeerrors.NewConfigurationError("registry", "runner is nil", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := runner.Name()
	if _, exists := r.runners[name]; exists {
		return repypeerrors.NewConfigurationError(name, "stage type already registered", nil)
	}

	r.runners[name] = runner
	return nil
}

// Get retrieves the runner for a stage type.
func (r *Registry) Get(stageType string) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.runners[stageType]
	if !ok {
		return nil, repypeerrors.NewConfigurationError(stageType, fmt.Sprintf("no runner registered for stage type %q", stageType), nil)
	}

	return runner, nil
}

// Types returns the registered stage types.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.runners))
	for name := range r.runners {
		types = append(types, name)
	}
	return types
}

// Reset clears all registrations (for tests).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runners = make(map[string]Runner)
}
