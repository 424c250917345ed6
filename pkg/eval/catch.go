package eval

import "github.com/mkeller/wisp/pkg/value"

// TryCatch evaluates tryForm. On error, it truncates the environment stack
// and call stack back to the depths recorded at entry — discarding any
// frames tryForm's evaluation left pushed — then evaluates catchForm and
// returns its result. Dict mutations made before the error are not
// reverted (spec.md §5/§9).
//
// This recursive Eval call is itself the "installed catch point"; no
// separate bounded catch-point stack is needed; see SPEC_FULL.md §4.4.
func (it *Interp) TryCatch(tryForm, catchForm value.Value) (value.Value, error) {
	envDepth := it.Env.Depth()
	callDepth := it.CallStack.Len()

	result, err := it.Eval(tryForm)
	if err == nil {
		return result, nil
	}

	it.Env.TruncateTo(envDepth)
	truncateCallStack(it.CallStack, callDepth)

	return it.Eval(catchForm)
}

func truncateCallStack(cs *value.Vector, depth int) {
	for cs.Len() > depth {
		_ = cs.Remove(-1)
	}
}
