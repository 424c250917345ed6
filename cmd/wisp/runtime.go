package main

import (
	"fmt"
	"io"

	"github.com/mkeller/wisp/internal/builtin"
	"github.com/mkeller/wisp/internal/wisplog"
	"github.com/mkeller/wisp/pkg/eval"
	"github.com/mkeller/wisp/pkg/heap"
	"github.com/mkeller/wisp/pkg/printer"
	"github.com/mkeller/wisp/pkg/reader"
	"github.com/mkeller/wisp/pkg/value"
)

// Runtime bundles the heap, symbol table, and interpreter that a single
// process instance needs.
type Runtime struct {
	Heap    *heap.Heap
	Symbols *value.SymbolTable
	Interp  *eval.Interp
}

// NewRuntime builds a fresh interpreter with every builtin registered.
func NewRuntime(out io.Writer, limits eval.Limits) (*Runtime, error) {
	h := heap.New(wisplog.L)
	symbols := value.NewSymbolTable()
	interp := eval.New(h, symbols, out, wisplog.L, limits)
	if err := builtin.Register(interp, symbols); err != nil {
		return nil, fmt.Errorf("registering builtins: %w", err)
	}
	return &Runtime{Heap: h, Symbols: symbols, Interp: interp}, nil
}

// EvalSource reads and evaluates every top-level form in src in order,
// collecting garbage between forms, and returns the last result. On a
// raise, it reports the error together with a stack trace of the
// callables that were live on the call stack, and leaves the environment
// and call stacks exactly as they were (the caller decides whether to
// reset them).
func (rt *Runtime) EvalSource(src []byte) (value.Value, error) {
	rd := reader.New(rt.Symbols, rt.Interp.Track, src)
	var result value.Value = value.Nil
	for {
		form, err := rd.Read()
		if err == reader.ErrEOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result, err = rt.Interp.Eval(form)
		if err != nil {
			return nil, rt.annotate(err)
		}
		rt.Interp.Collect()
	}
}

// annotate wraps err with a rendered stack trace, outermost callable
// first, matching spec.md §7's uncaught-raise diagnostic.
func (rt *Runtime) annotate(err error) error {
	depth := rt.Interp.CallStack.Len()
	if depth == 0 {
		return err
	}
	trace := ""
	for i := 0; i < depth; i++ {
		callable, gerr := rt.Interp.CallStack.Get(i)
		if gerr != nil {
			continue
		}
		rendered, rerr := printer.Render(callable)
		if rerr != nil {
			rendered = callable.String()
		}
		trace += fmt.Sprintf("\n  at %s", rendered)
	}
	return fmt.Errorf("%w%s", err, trace)
}

// Reset truncates the environment and call stacks back to the global
// frame and an empty call stack, as the REPL's outermost catch point does
// after printing an uncaught raise (spec.md §7).
func (rt *Runtime) Reset() {
	rt.Interp.Env.TruncateTo(1)
	for rt.Interp.CallStack.Len() > 0 {
		_ = rt.Interp.CallStack.Remove(-1)
	}
}
