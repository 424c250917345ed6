package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkeller/wisp/internal/wisplog"
)

func main() {
	if err := wisplog.Init(wisplog.Options{Enabled: os.Getenv("WISP_VERBOSE") != ""}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to init logging: %v\n", err)
	}

	m, err := NewModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if fm, ok := finalModel.(Model); ok {
		_ = fm.Close()
	}
}
