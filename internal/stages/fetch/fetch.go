package fetchstage

import (
	"context"
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/stage"
	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

type fetchRunner struct{}

// New creates the runner for fetch stages, which provide a pipeline's input
// sources by cloning or updating a git repository.
func New() stage.Runner {
	return &fetchRunner{}
}

var _ stage.Runner = (*fetchRunner)(nil)

func (r *fetchRunner) Name() string {
	return "fetch"
}

func (r *fetchRunner) Run(ctx context.Context, st *config.Stage) error {
	cfg := st.Fetch
	if cfg == nil {
		return repypeerrors.NewConfigurationError(st.ID, "fetch configuration missing", nil)
	}

	if _, err := os.Stat(cfg.Destination); err == nil {
		return r.update(ctx, st, cfg)
	} else if !os.IsNotExist(err) {
		return repypeerrors.NewStageError(st.ID, fmt.Errorf("cannot access destination: %w", err))
	}

	return r.clone(ctx, st, cfg)
}

func (r *fetchRunner) clone(ctx context.Context, st *config.Stage, cfg *config.FetchStage) error {
	opts := &git.CloneOptions{URL: cfg.URL}
	if cfg.Depth > 0 {
		opts.Depth = cfg.Depth
	}
	if cfg.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(cfg.Branch)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, cfg.Destination, false, opts); err != nil {
		return repypeerrors.NewStageError(st.ID, fmt.Errorf("clone %s: %w", cfg.URL, err))
	}

	return nil
}

func (r *fetchRunner) update(ctx context.Context, st *config.Stage, cfg *config.FetchStage) error {
	repo, err := git.PlainOpen(cfg.Destination)
	if err != nil {
		return repypeerrors.NewStageError(st.ID, fmt.Errorf("destination exists but is not a repository: %w", err))
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return repypeerrors.NewStageError(st.ID, err)
	}

	pullOpts := &git.PullOptions{RemoteName: "origin"}
	if cfg.Branch != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(cfg.Branch)
	}

	if err := worktree.PullContext(ctx, pullOpts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return repypeerrors.NewStageError(st.ID, fmt.Errorf("pull %s: %w", cfg.URL, err))
	}

	return nil
}
