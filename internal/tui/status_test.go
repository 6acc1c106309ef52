package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kostrykin/repype/internal/model"
)

func TestStatusClass_TotalOverVariantSet(t *testing.T) {
	for _, kind := range model.Kinds() {
		class := StatusClass(kind)
		require.Contains(t, []string{ClassProcess, ClassSuccess, ClassError}, class, "kind %s", kind)
	}
}

func TestStatusClass_TerminalKinds(t *testing.T) {
	require.Equal(t, ClassSuccess, StatusClass(model.EventSuccess))
	require.Equal(t, ClassError, StatusClass(model.EventError))
	require.Equal(t, ClassError, StatusClass(model.EventTimedOut))
	require.Equal(t, ClassProcess, StatusClass(model.EventPending))
	require.Equal(t, ClassProcess, StatusClass(model.EventProcessing))
}

func TestStatusIcon_DistinguishesTimeoutFromError(t *testing.T) {
	require.NotEqual(t, StatusIcon(model.EventTimedOut), StatusIcon(model.EventError))
}

func TestStatusIcon_CoversVariantSet(t *testing.T) {
	for _, kind := range model.Kinds() {
		require.NotEmpty(t, StatusIcon(kind))
	}
}
