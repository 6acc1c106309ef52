package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kostrykin/repype/internal/model"
)

// Visual classes for status lines. Timed-out runs share the error class but
// keep their own icon and text so an abort never reads as a stage failure.
const (
	ClassProcess = "status-process"
	ClassSuccess = "status-success"
	ClassError   = "status-error"
)

// StatusClass maps an event kind to its visual class. Total over the event
// variant set; extending model.EventKind requires extending this switch.
func StatusClass(kind model.EventKind) string {
	switch kind {
	case model.EventPending:
		return ClassProcess
	case model.EventProcessing:
		return ClassProcess
	case model.EventSuccess:
		return ClassSuccess
	case model.EventError:
		return ClassError
	case model.EventTimedOut:
		return ClassError
	default:
		return ClassError
	}
}

func statusStyle(kind model.EventKind) lipgloss.Style {
	switch StatusClass(kind) {
	case ClassSuccess:
		return successStyle
	case ClassError:
		return errorStyle
	default:
		return processStyle
	}
}

// StatusIcon returns the glyph representing an event kind.
func StatusIcon(kind model.EventKind) string {
	switch kind {
	case model.EventPending:
		return pendingStyle.Render("…")
	case model.EventProcessing:
		return processStyle.Render("⏳")
	case model.EventSuccess:
		return successStyle.Render("✓")
	case model.EventError:
		return errorStyle.Render("✗")
	case model.EventTimedOut:
		return errorStyle.Render("⏱")
	default:
		return pendingStyle.Render("?")
	}
}
