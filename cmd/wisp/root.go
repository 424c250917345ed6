package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkeller/wisp/internal/wisplog"
	"github.com/mkeller/wisp/pkg/eval"
	"github.com/mkeller/wisp/pkg/printer"
	"github.com/mkeller/wisp/pkg/reader"
)

var (
	flagFile        string
	flagInteractive bool
	flagVerbose     bool
	flagNoColor     bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wisp",
		Short: "A small Lisp interpreter",
		RunE:  runRoot,
	}
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "evaluate a file (- for stdin)")
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "force the REPL, even with -f")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable diagnostic logging")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI prompt coloring")
	return cmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if err := wisplog.Init(wisplog.Options{Enabled: flagVerbose}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to init logging: %v\n", err)
	}

	rt, err := NewRuntime(os.Stdout, eval.DefaultLimits())
	if err != nil {
		return err
	}

	if flagFile != "" {
		src, err := readFileOrStdin(flagFile)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if _, evalErr := rt.EvalSource(src); evalErr != nil {
			fmt.Fprintln(os.Stderr, evalErr)
			if !flagInteractive {
				os.Exit(2)
			}
			rt.Reset()
		}
		if !flagInteractive {
			return nil
		}
	}

	return repl(rt, os.Stdin, os.Stdout)
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// repl is the interactive read-eval-print loop: it accumulates input
// lines until the reader produces a complete form (or a genuine syntax
// error), evaluates it, prints the result, and recovers from an uncaught
// raise by resetting the environment and call stacks to their starting
// depth, per spec.md §7.
func repl(rt *Runtime, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := promptFor(out)

	var pending []byte
	fmt.Fprint(out, prompt("> "))
	for scanner.Scan() {
		pending = append(pending, scanner.Text()...)
		pending = append(pending, '\n')

		rd := reader.New(rt.Symbols, rt.Interp.Track, pending)
		form, err := rd.Read()
		switch {
		case err == reader.ErrIncomplete:
			fmt.Fprint(out, prompt("... "))
			continue
		case err == reader.ErrEOF:
			fmt.Fprint(out, prompt("> "))
			continue
		case err != nil:
			fmt.Fprintln(out, err)
			pending = nil
			fmt.Fprint(out, prompt("> "))
			continue
		}

		pending = nil
		result, evalErr := rt.Interp.Eval(form)
		if evalErr != nil {
			fmt.Fprintln(out, evalErr)
			rt.Reset()
		} else {
			rendered, rerr := printer.Render(result)
			if rerr != nil {
				rendered = result.String()
			}
			fmt.Fprintln(out, rendered)
			rt.Interp.Collect()
		}
		fmt.Fprint(out, prompt("> "))
	}
	return scanner.Err()
}

func promptFor(out io.Writer) func(string) string {
	if flagNoColor {
		return func(s string) string { return s }
	}
	f, ok := out.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return func(string) string { return "" }
	}
	return func(s string) string { return "\x1b[1;32m" + s + "\x1b[0m" }
}
