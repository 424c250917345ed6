//go:build darwin || freebsd

package main

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a terminal. BSD-family kernels
// (including Darwin) expose the terminal attributes ioctl as TIOCGETA
// rather than Linux's TCGETS.
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err == nil
}
