package value

import "fmt"

// ErrKind classifies the taxonomy of errors the evaluator can raise, so
// callers can branch on intent (errors.As) rather than matching message
// text.
type ErrKind int

const (
	ErrType      ErrKind = iota // safe-cast failure: expected variant X, got Y
	ErrArity                    // wrong argument count to a builtin or closure
	ErrUnbound                  // symbol lookup failure
	ErrRedefined                // def of a symbol already bound in the innermost frame
	ErrIndex                    // out-of-range vector/string/list access
	ErrShape                    // improper list, or mismatched list lengths to dict
	ErrResource                 // symbol pool full, dict schedule exhausted, out of memory
	ErrIO                       // file does not exist, or similar I/O failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrType:
		return "type error"
	case ErrArity:
		return "arity error"
	case ErrUnbound:
		return "unbound symbol"
	case ErrRedefined:
		return "redefinition error"
	case ErrIndex:
		return "index error"
	case ErrShape:
		return "shape error"
	case ErrResource:
		return "resource error"
	case ErrIO:
		return "I/O error"
	default:
		return "error"
	}
}

// Error is the typed error every raise carries. A raise is an ordinary Go
// error return: Eval, Apply and the builtins return an *Error and every
// caller forwards it until try-catch or the top-level driver handles it.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapTypeError reports that obj was expected to be of variant want.
func WrapTypeError(obj Value, want *TypeDescriptor) *Error {
	return Errorf(ErrType, "found object of type %s where %s was expected", obj.TypeDesc().Name, want.Name)
}

// Cast safe-casts obj to T, returning a typed error if the underlying
// variant doesn't match. T must be a concrete pointer type implementing
// Value (e.g. *Cons, *Vector).
func Cast[T Value](obj Value, want *TypeDescriptor) (T, error) {
	v, ok := obj.(T)
	if !ok {
		var zero T
		return zero, WrapTypeError(obj, want)
	}
	return v, nil
}
