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

// Runtime bundles the heap, symbol table, and interpreter a console session
// evaluates against. It mirrors cmd/wisp's runtime of the same name, but
// lives in its own module and reports results instead of writing them to
// an io.Writer directly, so the bubbletea model can route them into the
// scrollback viewport.
type Runtime struct {
	Heap    *heap.Heap
	Symbols *value.SymbolTable
	Interp  *eval.Interp
	out     *lineBuffer
}

// lineBuffer is the io.Writer the interpreter's print builtin writes to;
// the model drains it into the scrollback after every evaluation.
type lineBuffer struct {
	lines []string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	b.lines = append(b.lines, string(p))
	return len(p), nil
}

func (b *lineBuffer) drain() []string {
	lines := b.lines
	b.lines = nil
	return lines
}

// NewRuntime builds a fresh interpreter with every builtin registered.
func NewRuntime(limits eval.Limits) (*Runtime, error) {
	out := &lineBuffer{}
	h := heap.New(wisplog.L)
	symbols := value.NewSymbolTable()
	interp := eval.New(h, symbols, out, wisplog.L, limits)
	if err := builtin.Register(interp, symbols); err != nil {
		return nil, fmt.Errorf("registering builtins: %w", err)
	}
	return &Runtime{Heap: h, Symbols: symbols, Interp: interp, out: out}, nil
}

// evalResult is what one interactive evaluation produces: the printed
// side-output (if any builtin wrote via print), the rendered result (or an
// error), and the stats snapshot taken right after.
type evalResult struct {
	printed []string
	result  string
	err     error
	stats   Stats
}

// Eval reads and evaluates every complete form in src (one submitted input
// line; a form left unclosed at its end is reported as an error), printing a stack trace alongside an uncaught raise the same way
// cmd/wisp's Runtime.EvalSource does, and resets the environment/call
// stacks on error so the console stays usable after a raise.
func (rt *Runtime) Eval(src []byte) evalResult {
	rd := reader.New(rt.Symbols, rt.Interp.Track, src)
	var last value.Value = value.Nil
	var err error
	for {
		var form value.Value
		form, err = rd.Read()
		if err == reader.ErrEOF {
			err = nil
			break
		}
		if err != nil {
			break
		}
		last, err = rt.Interp.Eval(form)
		if err != nil {
			err = rt.annotate(err)
			break
		}
		rt.Interp.Collect()
	}

	res := evalResult{printed: rt.out.drain()}
	if err != nil {
		res.err = err
		rt.reset()
	} else {
		rendered, rerr := printer.Render(last)
		if rerr != nil {
			rendered = last.String()
		}
		res.result = rendered
	}
	res.stats = rt.Stats()
	return res
}

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

func (rt *Runtime) reset() {
	rt.Interp.Env.TruncateTo(1)
	for rt.Interp.CallStack.Len() > 0 {
		_ = rt.Interp.CallStack.Remove(-1)
	}
}

// Stats is the heap/env/call-stack snapshot the sidebar renders.
type Stats struct {
	LiveObjects int
	TotalBytes  int
	EnvDepth    int
	CallDepth   int
}

func (rt *Runtime) Stats() Stats {
	return Stats{
		LiveObjects: rt.Heap.Len(),
		TotalBytes:  rt.Heap.TotalBytes(),
		EnvDepth:    rt.Interp.Env.Depth(),
		CallDepth:   rt.Interp.CallStack.Len(),
	}
}

var _ io.Writer = (*lineBuffer)(nil)
