package commandstage

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/kostrykin/repype/internal/config"
	"github.com/kostrykin/repype/internal/stage"
	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

type commandRunner struct{}

// New creates the runner for command stages.
func New() stage.Runner {
	return &commandRunner{}
}

var _ stage.Runner = (*commandRunner)(nil)

func (r *commandRunner) Name() string {
	return "command"
}

func (r *commandRunner) Run(ctx context.Context, st *config.Stage) error {
	cfg := st.Command
	if cfg == nil {
		return repypeerrors.NewConfigurationError(st.ID, "command configuration missing", nil)
	}

	shell, shellArgs, err := determineShell(cfg.Shell)
	if err != nil {
		return repypeerrors.NewStageError(st.ID, err)
	}

	args := append(shellArgs, cfg.Command)
	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Env = buildEnv(cfg.Env)
	if cfg.WorkDir != "" {
		cmd.Dir = cfg.WorkDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if len(output) > 0 {
			err = fmt.Errorf("%w: %s", err, string(output))
		}
		return repypeerrors.NewStageError(st.ID, err)
	}

	return nil
}

func determineShell(explicit string) (string, []string, error) {
	if explicit != "" {
		return explicit, []string{"-c"}, nil
	}

	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}, nil
	}

	if path, err := exec.LookPath("bash"); err == nil {
		return path, []string{"-c"}, nil
	}

	if path, err := exec.LookPath("sh"); err == nil {
		return path, []string{"-c"}, nil
	}

	return "", nil, fmt.Errorf("no suitable shell found")
}

func buildEnv(custom map[string]string) []string {
	env := os.Environ()
	for k, v := range custom {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	return env
}
