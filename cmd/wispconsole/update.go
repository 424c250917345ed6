package main

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusMsg clears a transient status line after a short delay.
type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := m.width
		if m.showSidebar {
			contentWidth -= sidebarWidth
		}
		m.scrollback.Width = contentWidth - 2
		m.scrollback.Height = m.height - 6
		m.input.Width = contentWidth - 4
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Stats):
			m.showSidebar = !m.showSidebar
			return m, nil

		case key.Matches(msg, m.keys.Yank):
			if m.lastValue == "" {
				m.statusMessage = "nothing to yank yet"
			} else if err := clipboard.WriteAll(m.lastValue); err != nil {
				m.statusMessage = "copy failed: " + err.Error()
			} else {
				m.statusMessage = "copied last result to clipboard"
			}
			return m, clearStatusAfter(2 * time.Second)

		case m.showHelp:
			// Any other key dismisses the help overlay.
			m.showHelp = false
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			m.submit()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.scrollback, cmd = m.scrollback.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
