//go:build windows

package main

import "golang.org/x/sys/windows"

// isTerminal reports whether fd refers to a console, using the same
// GetConsoleMode probe golang.org/x/term uses under the hood.
func isTerminal(fd int) bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(fd), &mode)
	return err == nil
}
