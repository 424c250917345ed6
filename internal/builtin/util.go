// Package builtin implements the initial set of primitive operations
// exposed to programs: control flow, arithmetic, collection access, and
// I/O, each a value.BuiltinFunc registered into the global environment at
// startup by Register.
package builtin

import "github.com/mkeller/wisp/pkg/value"

// evalArgs reads args as a proper list of raw forms and evaluates each one
// in order, left to right.
func evalArgs(interp value.Interp, args value.Value) ([]value.Value, error) {
	forms, err := value.ListToSlice(args)
	if err != nil {
		return nil, err
	}
	vals := make([]value.Value, len(forms))
	for i, f := range forms {
		v, err := interp.Eval(f)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// rawForms reads args as a proper list of raw (unevaluated) forms, for
// builtins that decide per-argument whether and when to evaluate.
func rawForms(args value.Value) ([]value.Value, error) {
	return value.ListToSlice(args)
}

func requireArity(n int, want int, name string) error {
	if n != want {
		return value.Errorf(value.ErrArity, "%s: expected %d argument(s), got %d", name, want, n)
	}
	return nil
}

func requireAtLeast(n int, want int, name string) error {
	if n < want {
		return value.Errorf(value.ErrArity, "%s: expected at least %d argument(s), got %d", name, want, n)
	}
	return nil
}
