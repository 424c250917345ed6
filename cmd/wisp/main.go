// Command wisp is the REPL/file-evaluation driver for the wisp Lisp
// interpreter: `-f <path>` evaluates a file (`-` for stdin), `-i` forces
// the REPL even alongside `-f`, and with neither flag it starts the REPL
// directly.
package main

import (
	"fmt"
	"os"

	"github.com/mkeller/wisp/pkg/eval"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if status, ok := eval.ExitStatus(r); ok {
				os.Exit(status)
			}
			panic(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
