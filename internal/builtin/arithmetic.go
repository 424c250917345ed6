package builtin

import "github.com/mkeller/wisp/pkg/value"

// plusBuiltin sums all arguments, 0 if empty.
func plusBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, v := range vals {
		n, err := value.AsInt(v)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return interp.Track(value.NewInteger(sum)), nil
}

// minusBuiltin: zero args yields 0, one arg yields its negation, more
// yields first - sum(rest).
func minusBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return interp.Track(value.NewInteger(0)), nil
	case 1:
		n, err := value.AsInt(vals[0])
		if err != nil {
			return nil, err
		}
		return interp.Track(value.NewInteger(-n)), nil
	default:
		first, err := value.AsInt(vals[0])
		if err != nil {
			return nil, err
		}
		rest := 0
		for _, v := range vals[1:] {
			n, err := value.AsInt(v)
			if err != nil {
				return nil, err
			}
			rest += n
		}
		return interp.Track(value.NewInteger(first - rest)), nil
	}
}

// eqBuiltin implements `=`: t if same variant and (equal integers or same
// identity), nil otherwise.
func eqBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 2, "="); err != nil {
		return nil, err
	}
	return value.Bool(value.Equal(vals[0], vals[1])), nil
}
