package errors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigurationError_Error(t *testing.T) {
	err := NewConfigurationError("stages[1].id", "duplicate stage id \"blur\"", nil)
	require.EqualError(t, err, "configuration error: stages[1].id: duplicate stage id \"blur\"")

	err = NewConfigurationError("", "timeout must be positive", nil)
	require.EqualError(t, err, "configuration error: timeout must be positive")
}

func TestStageError_Unwrap(t *testing.T) {
	root := errors.New("exit status 1")
	err := NewStageError("segment", root)
	require.EqualError(t, err, "stage segment failed: exit status 1")
	require.ErrorIs(t, err, root)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, "segment", stageErr.Stage)
}

func TestTimeoutError_Error(t *testing.T) {
	err := NewTimeoutError(time.Second)
	require.EqualError(t, err, "run aborted by watchdog after 1s")

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)

	var stageErr *StageError
	require.False(t, errors.As(err, &stageErr))
}
