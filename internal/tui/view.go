package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kostrykin/repype/internal/model"
	"github.com/kostrykin/repype/internal/tui/components"
)

// View renders the current state of the run screen.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("repype • Run pipelines"))

	progress := components.NewProgress(m.total).View(m.completed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	for _, id := range m.runs {
		sections = append(sections, sectionStyle.Render(id))
		if lines := renderEvents(m.events[id]); lines != "" {
			sections = append(sections, lines)
		}
	}

	if summary := m.summary(); summary != "" {
		sections = append(sections, summaryStyle.Render(summary))
	}

	if m.confirm != nil {
		sections = append(sections, m.confirm.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderEvents(events []model.StatusEvent) string {
	var lines []string
	for _, event := range events {
		line := fmt.Sprintf(" %s %s", StatusIcon(event.Kind), statusStyle(event.Kind).Render(statusText(event)))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func statusText(event model.StatusEvent) string {
	switch event.Kind {
	case model.EventPending:
		return "Waiting to start"
	case model.EventProcessing:
		return fmt.Sprintf("Processing stage: %s", event.Stage)
	case model.EventSuccess:
		return "Results have been stored"
	case model.EventError:
		return fmt.Sprintf("An error occurred: %s", event.Message)
	case model.EventTimedOut:
		return fmt.Sprintf("Run aborted by watchdog: %s", event.Message)
	default:
		return event.Message
	}
}

func (m Model) summary() string {
	if m.cancelled {
		return errorStyle.Render("Batch run interrupted")
	}
	if !m.finished {
		return ""
	}

	failed := 0
	for _, final := range m.final {
		if final.Kind != model.EventSuccess {
			failed++
		}
	}
	if failed > 0 {
		return errorStyle.Render(fmt.Sprintf("%d of %d runs failed", failed, m.total))
	}
	return successStyle.Render(fmt.Sprintf("All %d runs completed", m.total))
}
