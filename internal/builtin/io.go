package builtin

import "github.com/mkeller/wisp/pkg/value"

// printBuiltin evaluates every argument, writes them space-separated with
// a trailing newline, and returns the last value printed (or nil if none).
func printBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	return interp.Print(vals)
}

// showSymbolTableBuiltin prints every frame of every chain currently on
// the environment stack. Recovered from the original's builtins.c; not
// part of spec.md's distilled builtin list but not excluded by any
// Non-goal either.
func showSymbolTableBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	dump := interp.DumpEnvironment()
	s := interp.Track(value.NewStrFromBytes([]byte(dump)))
	return interp.Print([]value.Value{s})
}

// exitBuiltin terminates the process with an integer status, defaulting
// to 0. Recovered from the original's exit_.
func exitBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	status := 0
	switch len(vals) {
	case 0:
	case 1:
		status, err = value.AsInt(vals[0])
		if err != nil {
			return nil, err
		}
	default:
		return nil, value.Errorf(value.ErrArity, "exit: expected 0 or 1 argument(s), got %d", len(vals))
	}
	interp.Exit(status)
	return value.Nil, nil
}
