// Command wispconsole is a full-screen interactive console wrapping the
// same interpreter cmd/wisp drives from a line-oriented REPL: a scrollback
// viewport of evaluated forms and their results, a live heap/environment
// stats sidebar, and a keybinding help overlay.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkeller/wisp/pkg/eval"
)

const sidebarWidth = 28

// Model is the console's bubbletea model.
type Model struct {
	runtime *Runtime

	scrollback viewport.Model
	input      textinput.Model
	keys       KeyMap

	width  int
	height int

	history   []string // rendered scrollback lines
	lastValue string    // last printed result, for the yank command
	stats     Stats

	showHelp bool
	showSidebar bool

	statusMessage string
	err           error
}

// NewModel builds a fresh console model with its own interpreter runtime.
func NewModel() (Model, error) {
	rt, err := NewRuntime(eval.DefaultLimits())
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "(+ 1 2)"
	ti.Prompt = "> "
	ti.Focus()

	vp := viewport.New(80, 20)

	return Model{
		runtime:     rt,
		scrollback:  vp,
		input:       ti,
		keys:        DefaultKeyMap(),
		showSidebar: true,
		stats:       rt.Stats(),
	}, nil
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close releases the console's interpreter resources. There is nothing to
// release today (the heap is purely in-memory); main calls it on the final
// model once the program has exited.
func (m Model) Close() error {
	return nil
}

func (m *Model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	m.scrollback.SetContent(strings.Join(m.history, "\n"))
	m.scrollback.GotoBottom()
}

func (m *Model) submit() {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return
	}
	m.input.SetValue("")

	m.appendHistory(promptStyle.Render("> ") + line)

	res := m.runtime.Eval([]byte(line + "\n"))
	m.stats = res.stats
	for _, p := range res.printed {
		m.appendHistory(strings.TrimRight(p, "\n"))
	}
	if res.err != nil {
		m.err = res.err
		m.appendHistory(errorStyle.Render(res.err.Error()))
		m.statusMessage = "raised; environment reset"
		return
	}
	m.err = nil
	m.lastValue = res.result
	m.appendHistory(resultStyle.Render(res.result))
	m.statusMessage = ""
}

func (m Model) renderSidebar() string {
	lines := []string{
		sidebarHeaderStyle.Render("stats"),
		"",
		fmt.Sprintf("live objects  %d", m.stats.LiveObjects),
		fmt.Sprintf("heap bytes    %d", m.stats.TotalBytes),
		fmt.Sprintf("env depth     %d", m.stats.EnvDepth),
		fmt.Sprintf("call depth    %d", m.stats.CallDepth),
		"",
		sidebarHeaderStyle.Render("keys"),
		"",
		"ctrl+y  yank result",
		"ctrl+s  toggle sidebar",
		"?       help",
		"ctrl+c  quit",
	}
	return sidebarStyle.Width(sidebarWidth - 2).Height(m.height - 6).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelpOverlay() string {
	lines := []string{
		helpTitleStyle.Render("wispconsole help"),
		"",
		helpKeyStyle.Render("enter") + helpDescStyle.Render("evaluate the current line"),
		helpKeyStyle.Render("ctrl+y") + helpDescStyle.Render("copy the last result to the clipboard"),
		helpKeyStyle.Render("ctrl+s") + helpDescStyle.Render("toggle the stats sidebar"),
		helpKeyStyle.Render("up/down") + helpDescStyle.Render("scroll the scrollback"),
		helpKeyStyle.Render("?") + helpDescStyle.Render("toggle this help"),
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render("quit"),
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
