package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

func writePipeline(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParsePipeline_Valid(t *testing.T) {
	path := writePipeline(t, `
version: "1.0"
name: segmentation
settings:
  watchdog_timeout: 120
  parallel: 2
stages:
  - id: fetch_inputs
    type: fetch
    url: https://example.com/inputs.git
    destination: ./inputs
  - id: segment
    type: command
    command: ./segment.sh
    env:
      SEED: "42"
  - id: settle
    type: delay
    duration: 100ms
`)

	pipeline, err := ParsePipeline(path)
	require.NoError(t, err)
	require.Equal(t, "segmentation", pipeline.Name)
	require.Equal(t, 120, pipeline.Settings.WatchdogTimeout)
	require.Len(t, pipeline.Stages, 3)

	require.NotNil(t, pipeline.Stages[0].Fetch)
	require.Equal(t, "https://example.com/inputs.git", pipeline.Stages[0].Fetch.URL)
	require.NotNil(t, pipeline.Stages[1].Command)
	require.Equal(t, "42", pipeline.Stages[1].Command.Env["SEED"])
	require.NotNil(t, pipeline.Stages[2].Delay)
	require.Equal(t, "100ms", pipeline.Stages[2].Delay.Duration)
}

func TestParsePipeline_MissingFile(t *testing.T) {
	_, err := ParsePipeline(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cfgErr *repypeerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParsePipeline_InvalidYAML(t *testing.T) {
	path := writePipeline(t, "version: [broken")
	_, err := ParsePipeline(path)
	require.Error(t, err)

	var cfgErr *repypeerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParsePipeline_DuplicateStageIDs(t *testing.T) {
	path := writePipeline(t, `
version: "1.0"
name: duplicated
stages:
  - id: blur
    type: command
    command: echo one
  - id: blur
    type: command
    command: echo two
`)

	_, err := ParsePipeline(path)
	require.Error(t, err)

	var cfgErr *repypeerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, cfgErr.Message, "duplicate stage id")
}
