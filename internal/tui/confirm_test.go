package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirmation_EnterAcceptsFocusedButton(t *testing.T) {
	c := NewConfirmation("Discard unsaved changes?")

	c = c.Update(key("enter"))
	resolved, accepted := c.Resolved()
	require.True(t, resolved)
	require.False(t, accepted, "default focus is the no button")

	c = NewConfirmation("Discard unsaved changes?")
	c = c.Update(key("left"))
	c = c.Update(key("enter"))
	resolved, accepted = c.Resolved()
	require.True(t, resolved)
	require.True(t, accepted)
}

func TestConfirmation_Shortcuts(t *testing.T) {
	c := NewConfirmation("Proceed?").Update(key("y"))
	resolved, accepted := c.Resolved()
	require.True(t, resolved)
	require.True(t, accepted)

	c = NewConfirmation("Proceed?").Update(key("n"))
	resolved, accepted = c.Resolved()
	require.True(t, resolved)
	require.False(t, accepted)

	c = NewConfirmation("Proceed?").Update(key("esc"))
	resolved, accepted = c.Resolved()
	require.True(t, resolved)
	require.False(t, accepted)
}

func TestGateFunc_ImplementsGate(t *testing.T) {
	var gate Gate = GateFunc(func(prompt string) bool {
		return prompt == "ok?"
	})
	require.True(t, gate.Confirm("ok?"))
	require.False(t, gate.Confirm("no?"))
}
