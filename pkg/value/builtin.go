package value

import "fmt"

// Interp is the subset of the evaluator's behavior a builtin needs. It is
// declared here, on the consumer side, so that pkg/value never has to
// import pkg/eval: pkg/eval's concrete interpreter type satisfies this
// interface implicitly.
type Interp interface {
	// Eval evaluates a single form in the current environment.
	Eval(v Value) (Value, error)
	// Do evaluates a proper list of forms in order, returning the last
	// result, or Nil if the list is empty.
	Do(forms Value) (Value, error)
	// Apply applies a callable to a raw (unevaluated) argument list.
	Apply(fn Value, rawArgs Value) (Value, error)
	// Define, Lookup, and Assign operate on the current environment
	// chain's frames.
	Define(sym *Symbol, val Value) error
	Lookup(sym *Symbol) (Value, error)
	Assign(sym *Symbol, val Value) error
	// CurrentEnv returns the environment chain a newly constructed
	// function closure should capture (fn) or a macro frame should be
	// prepended to at expansion time (macro/try-catch's callers).
	CurrentEnv() Value
	// TryCatch evaluates tryForm, recovering into catchForm on error and
	// truncating the environment/call stacks back to their depth at
	// entry.
	TryCatch(tryForm, catchForm Value) (Value, error)
	// Track registers a freshly constructed value with the heap so the
	// collector can find and trace it; atomic/static values may be
	// passed through untouched.
	Track(v Value) Value
	// Print renders vs space-separated with a trailing newline to the
	// interpreter's configured output, returning the last value (or Nil).
	Print(vs []Value) (Value, error)
	// DumpEnvironment renders the current environment stack for
	// show-symbol-table.
	DumpEnvironment() string
	// Exit terminates the process with the given status.
	Exit(status int)
}

// BuiltinFunc is the signature every primitive operation implements. args
// is the raw, unevaluated argument list exactly as written in the call
// form; each builtin decides for itself whether and when to evaluate its
// arguments via interp.Eval.
type BuiltinFunc func(interp Interp, args Value) (Value, error)

// Builtin is a non-movable, named reference to a host-implemented
// operation. Builtins are static: never collected, never entered into the
// heap's allocation index.
type Builtin struct {
	id   uint64
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin registers a new named builtin.
func NewBuiltin(name string, fn BuiltinFunc) *Builtin {
	return &Builtin{id: nextID(), Name: name, Fn: fn}
}

func (b *Builtin) Kind() Kind               { return KindBuiltin }
func (b *Builtin) TypeDesc() *TypeDescriptor { return BuiltinType }
func (b *Builtin) ID() uint64                { return b.id }
func (b *Builtin) IsStatic() bool            { return true }
func (b *Builtin) Size() int                 { return 0 }
func (b *Builtin) Trace(func(Value))         {}
func (b *Builtin) String() string            { return renderToString(b) }

func (b *Builtin) Render(buf []byte) int {
	return copyTrunc(buf, fmt.Sprintf("Builtin function %s", b.Name))
}
