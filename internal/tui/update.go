package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates the run screen state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RunEventMsg:
		m.ensureRun(msg.RunID)
		m.events[msg.RunID] = append(m.events[msg.RunID], msg.Event)
		if msg.Event.Terminal() {
			if _, done := m.final[msg.RunID]; !done {
				m.final[msg.RunID] = msg.Event
				m.completed++
			}
		}
		return m, nil

	case BatchDoneMsg:
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.confirm != nil {
			confirm := m.confirm.Update(msg)
			m.confirm = &confirm
			if resolved, accepted := confirm.Resolved(); resolved {
				m.confirm = nil
				if accepted {
					m.cancelled = true
					if m.cancelRun != nil {
						m.cancelRun()
					}
				}
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			if m.finished {
				return m, tea.Quit
			}
			confirm := NewConfirmation("Cancel the unfinished runs?")
			m.confirm = &confirm
			return m, nil
		case "esc", "q":
			if m.finished {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
