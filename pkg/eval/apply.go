package eval

import (
	"github.com/mkeller/wisp/pkg/env"
	"github.com/mkeller/wisp/pkg/value"
)

// Apply applies fn to rawArgs (the unevaluated argument list exactly as
// written in the call form) per spec.md §4.5's application protocol.
//
// Deliberately not a `defer`: the call-stack frame pushed below, and any
// environment frame pushed during a closure's application, are popped only
// on the success path. On an error return they are left exactly as they
// were when the error occurred, so an uncaught raise's stack trace shows
// every frame that was live, and try-catch/the REPL can truncate both
// stacks back to a recorded depth instead of having them silently unwound
// out from under the error before it is handled. See SPEC_FULL.md §4.4.
func (it *Interp) Apply(fn value.Value, rawArgs value.Value) (value.Value, error) {
	if it.CallStack.Len() >= it.Limits.MaxCallDepth {
		return nil, value.Errorf(value.ErrResource, "call stack depth exceeded (max %d)", it.Limits.MaxCallDepth)
	}
	it.CallStack.Append(fn)

	switch callee := fn.(type) {
	case *value.Builtin:
		result, err := callee.Fn(it, rawArgs)
		if err != nil {
			return nil, err
		}
		_ = it.CallStack.Remove(-1)
		return result, nil

	case *value.Closure:
		return it.applyClosure(callee, rawArgs)

	default:
		return nil, value.Errorf(value.ErrType, "cannot apply value of type %s", fn.TypeDesc().Name)
	}
}

func (it *Interp) applyClosure(callee *value.Closure, rawArgs value.Value) (value.Value, error) {
	args, err := value.ListToSlice(rawArgs)
	if err != nil {
		return nil, err
	}
	if len(args) != callee.Arity {
		return nil, value.Errorf(value.ErrArity, "expected %d argument(s), got %d", callee.Arity, len(args))
	}

	if callee.IsFunction {
		evaluated := make([]value.Value, len(args))
		for i, a := range args {
			v, err := it.Eval(a)
			if err != nil {
				return nil, err
			}
			evaluated[i] = v
		}
		frame := it.pushFrame(callee.Env, callee.Args, evaluated)
		it.Env.Push(frame)

		result, err := it.Do(callee.Body)
		if err != nil {
			return nil, err
		}
		if err := it.Env.Pop(); err != nil {
			return nil, err
		}
		_ = it.CallStack.Remove(-1)
		return result, nil
	}

	// Macro: bind the raw, unevaluated arguments into a fresh frame
	// prepended to the *caller's* current top chain, not the macro's own
	// (nonexistent) captured environment.
	callerChain, err := it.Env.Top()
	if err != nil {
		return nil, err
	}
	frame := it.pushFrame(callerChain, callee.Args, args)
	it.Env.Push(frame)

	expansion, err := it.Do(callee.Body)
	if err != nil {
		return nil, err
	}
	if err := it.Env.Pop(); err != nil {
		return nil, err
	}

	result, err := it.Eval(expansion)
	if err != nil {
		return nil, err
	}
	_ = it.CallStack.Remove(-1)
	return result, nil
}

// pushFrame builds a fresh chain node binding params positionally to vals,
// prepended to parent.
func (it *Interp) pushFrame(parent value.Value, params *value.Cons, vals []value.Value) value.Value {
	chain := env.NewFrame(it.Heap, parent)
	dict := chain.(*value.Cons).Car.(*value.Dict)
	node := params
	for i := 0; node != value.Nil; i++ {
		sym := node.Car.(*value.Symbol)
		_ = dict.Set(sym, vals[i])
		node = node.Cdr.(*value.Cons)
	}
	return chain
}
