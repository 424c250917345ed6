//go:build linux

package main

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a terminal, mirroring the
// teacher's platform-specific build-tag split for syscall-backed checks
// (hive/dirty's flush_unix.go/flush_windows.go/flush_darwin.go).
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}
