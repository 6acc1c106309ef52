package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Gate is a yes/no interaction point guarding destructive actions. Confirm
// blocks the caller until the interaction resolves, regardless of how the
// front end implements it.
type Gate interface {
	Confirm(prompt string) bool
}

// GateFunc adapts a plain function to the Gate interface.
type GateFunc func(prompt string) bool

// Confirm calls the wrapped function.
func (f GateFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Confirmation is the modal yes/no dialog state of the run screen.
type Confirmation struct {
	Prompt  string
	YesText string
	NoText  string

	yesFocused bool
	resolved   bool
	accepted   bool
}

// NewConfirmation creates a dialog with the given prompt. The "no" button
// holds the initial focus so a stray enter never confirms a destructive
// action.
func NewConfirmation(prompt string) Confirmation {
	return Confirmation{
		Prompt:  prompt,
		YesText: "Yes",
		NoText:  "No",
	}
}

// Resolved reports whether the dialog has been answered, and with what.
func (c Confirmation) Resolved() (resolved, accepted bool) {
	return c.resolved, c.accepted
}

// Update handles a key press while the dialog is open.
func (c Confirmation) Update(msg tea.KeyMsg) Confirmation {
	switch msg.String() {
	case "left", "right", "tab":
		c.yesFocused = !c.yesFocused
	case "y":
		c.resolved = true
		c.accepted = true
	case "n", "esc":
		c.resolved = true
		c.accepted = false
	case "enter":
		c.resolved = true
		c.accepted = c.yesFocused
	}
	return c
}

// View renders the dialog.
func (c Confirmation) View() string {
	yes := blurStyle.Render(c.YesText)
	no := focusStyle.Render(c.NoText)
	if c.yesFocused {
		yes = focusStyle.Render(c.YesText)
		no = blurStyle.Render(c.NoText)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Center, c.Prompt, "", buttons))
}
