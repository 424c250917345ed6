package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI.
func (m Model) View() string {
	mainView := m.renderMain()

	if m.showHelp {
		help := m.renderHelpOverlay()
		composed := overlay.New(
			stringerView(help),
			stringerView(mainView),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return composed.View()
	}
	return mainView
}

func (m Model) renderMain() string {
	header := headerStyle.Width(m.width - 2).Render("wispconsole")

	body := scrollbackStyle.Width(m.scrollback.Width).Height(m.scrollback.Height).Render(m.scrollback.View())
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderSidebar())
	}

	status := m.statusLine()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		m.input.View(),
		status,
	)
}

func (m Model) statusLine() string {
	msg := m.statusMessage
	if msg == "" {
		msg = "ready"
	}
	return statusStyle.Width(m.width - 2).Render(
		fmt.Sprintf("%s  %s", msg, statusCountStyle.Render(fmt.Sprintf("%d live", m.stats.LiveObjects))),
	)
}

// stringerView adapts an already-rendered string into a tea.Model so it can
// be handed to overlay.New as a static foreground or background pane; the
// console re-renders and re-wraps on every View call, so Init/Update are
// no-ops here.
type stringerView string

func (s stringerView) Init() tea.Cmd                           { return nil }
func (s stringerView) Update(tea.Msg) (tea.Model, tea.Cmd)      { return s, nil }
func (s stringerView) View() string                            { return string(s) }
