package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var countStyle = lipgloss.NewStyle().Bold(true)

// Progress summarises how many runs of a batch have reached a terminal
// status.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates the batch progress component for total runs.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return Progress{bar: bar, total: total}
}

// View renders the bar for the given number of finished runs. Counts beyond
// the total clamp to a full bar.
func (p Progress) View(finished int) string {
	ratio := 1.0
	if p.total > 0 {
		ratio = float64(finished) / float64(p.total)
	}
	if ratio > 1.0 {
		ratio = 1.0
	}

	count := countStyle.Render(fmt.Sprintf("%d/%d runs", finished, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, count, " ", p.bar.ViewAs(ratio))
}
