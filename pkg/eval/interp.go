// Package eval implements the tree-walking evaluator: form evaluation,
// the function/macro/builtin application protocol, and the try-catch
// non-local exit built directly on Go's own error propagation.
package eval

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mkeller/wisp/pkg/env"
	"github.com/mkeller/wisp/pkg/heap"
	"github.com/mkeller/wisp/pkg/value"
)

// Interp is the concrete evaluator. It satisfies value.Interp implicitly,
// which is how internal/builtin's BuiltinFunc implementations call back
// into evaluation without pkg/value importing this package.
type Interp struct {
	Heap      *heap.Heap
	Symbols   *value.SymbolTable
	Env       *env.Stack
	CallStack *value.Vector
	Out       io.Writer
	Logger    *slog.Logger
	Limits    Limits
}

// New builds a ready-to-use interpreter: a fresh environment stack (global
// frame only) and an empty call stack, both registered with h so the
// collector can find them as roots.
func New(h *heap.Heap, symbols *value.SymbolTable, out io.Writer, logger *slog.Logger, limits Limits) *Interp {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interp{
		Heap:      h,
		Symbols:   symbols,
		Env:       env.NewStack(h),
		CallStack: heap.Track(h, value.NewVector()),
		Out:       out,
		Logger:    logger,
		Limits:    limits,
	}
}

// Roots is the GC root set for this interpreter: the environment-stack
// vector and the call-stack vector, both themselves heap objects (spec.md
// §3's Lifecycle). The interned-symbol pool and static singletons need no
// explicit rooting since the collector never sweeps static values.
func (it *Interp) Roots() []value.Value {
	return []value.Value{it.Env.Vector(), it.CallStack}
}

// Collect runs one mark-sweep cycle rooted at this interpreter's state.
func (it *Interp) Collect() {
	it.Heap.Collect(it.Roots()...)
}

// Track registers a freshly allocated value with the heap.
func (it *Interp) Track(v value.Value) value.Value {
	return heap.Track(it.Heap, v)
}

// Define, Lookup, and Assign operate on the current top chain's frames.
func (it *Interp) Define(sym *value.Symbol, val value.Value) error {
	return it.Env.Define(sym, val)
}

func (it *Interp) Lookup(sym *value.Symbol) (value.Value, error) {
	return it.Env.Lookup(sym)
}

func (it *Interp) Assign(sym *value.Symbol, val value.Value) error {
	return it.Env.Assign(sym, val)
}

// CurrentEnv returns the active environment chain (the environment stack's
// top entry). The invariant that the stack is never empty means the error
// return is only possible if that invariant has already been violated
// elsewhere, in which case CurrentEnv returns Nil (an empty chain).
func (it *Interp) CurrentEnv() value.Value {
	top, err := it.Env.Top()
	if err != nil {
		return value.Nil
	}
	return top
}

// DumpEnvironment renders every chain on the environment stack, for the
// show-symbol-table builtin.
func (it *Interp) DumpEnvironment() string {
	return it.Env.Render()
}

// Print renders vs space-separated with a trailing newline to Out,
// returning the last value printed or Nil if vs is empty, per spec.md §9's
// explicit note on print's return value.
func (it *Interp) Print(vs []value.Value) (value.Value, error) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	if _, err := fmt.Fprintln(it.Out, strings.Join(parts, " ")); err != nil {
		return nil, value.Errorf(value.ErrIO, "print: %v", err)
	}
	if len(vs) == 0 {
		return value.Nil, nil
	}
	return vs[len(vs)-1], nil
}

// OSExit is what Exit calls. The default panics with an exitRequest
// carrying status, which cmd/wisp's main recovers and turns into
// os.Exit(status). It is a var so tests can substitute a stub.
var OSExit = func(status int) {
	panic(exitRequest{status})
}

// exitRequest lets the top-level driver distinguish a deliberate `exit`
// call from an evaluator bug without pulling os.Exit into this package
// directly (and, more importantly, without it firing mid-test).
type exitRequest struct{ status int }

// ExitStatus reports the status carried by a recovered exitRequest panic,
// and whether r was one.
func ExitStatus(r any) (int, bool) {
	e, ok := r.(exitRequest)
	return e.status, ok
}

func (it *Interp) Exit(status int) {
	OSExit(status)
}
