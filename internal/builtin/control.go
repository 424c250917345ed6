package builtin

import "github.com/mkeller/wisp/pkg/value"

// doBuiltin evaluates its forms in order, returning the last value, or nil
// if there were none.
func doBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	return interp.Do(args)
}

// quoteBuiltin returns its single argument unevaluated.
func quoteBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 1, "quote"); err != nil {
		return nil, err
	}
	return forms[0], nil
}

// ifBuiltin evaluates the test; if the result is not nil, evaluates and
// returns the consequent, otherwise the alternative. Exactly three forms.
func ifBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 3, "if"); err != nil {
		return nil, err
	}
	test, err := interp.Eval(forms[0])
	if err != nil {
		return nil, err
	}
	if value.Truthy(test) {
		return interp.Eval(forms[1])
	}
	return interp.Eval(forms[2])
}

// whileBuiltin repeatedly evaluates the test form; while it is not nil, it
// evaluates the remaining forms as an implicit do.
func whileBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireAtLeast(len(forms), 1, "while"); err != nil {
		return nil, err
	}
	testForm := forms[0]
	body := args.(*value.Cons).Cdr
	for {
		t, err := interp.Eval(testForm)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(t) {
			return value.Nil, nil
		}
		if _, err := interp.Do(body); err != nil {
			return nil, err
		}
	}
}

// defBuiltin binds its first (symbol) argument in the innermost frame to
// its evaluated second argument. If the value is a closure without a
// bound name, the closure's name is set to this symbol.
func defBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 2, "def"); err != nil {
		return nil, err
	}
	sym, ok := forms[0].(*value.Symbol)
	if !ok {
		return nil, value.Errorf(value.ErrType, "def: first argument must be a symbol")
	}
	val, err := interp.Eval(forms[1])
	if err != nil {
		return nil, err
	}
	if cl, ok := val.(*value.Closure); ok && cl.Name == nil {
		cl.Name = sym
	}
	if err := interp.Define(sym, val); err != nil {
		return nil, err
	}
	return val, nil
}

// setBuiltin assigns to an existing binding, raising if absent.
func setBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 2, "set"); err != nil {
		return nil, err
	}
	sym, ok := forms[0].(*value.Symbol)
	if !ok {
		return nil, value.Errorf(value.ErrType, "set: first argument must be a symbol")
	}
	val, err := interp.Eval(forms[1])
	if err != nil {
		return nil, err
	}
	if err := interp.Assign(sym, val); err != nil {
		return nil, err
	}
	return val, nil
}

// tryCatchBuiltin installs a catch point around the first form; on raise,
// evaluates and returns the second form.
func tryCatchBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 2, "try-catch"); err != nil {
		return nil, err
	}
	return interp.TryCatch(forms[0], forms[1])
}

// evalBuiltin evaluates its argument twice: once to obtain a form, and
// again to evaluate that form. Preserved verbatim per the source's open
// question on whether this double evaluation is intentional.
func evalBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 1, "eval"); err != nil {
		return nil, err
	}
	form, err := interp.Eval(forms[0])
	if err != nil {
		return nil, err
	}
	return interp.Eval(form)
}

// applyBuiltin evaluates its first argument to a callable and its second
// to a list, then applies the callable to that list as raw arguments.
func applyBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	forms, err := rawForms(args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(forms), 2, "apply"); err != nil {
		return nil, err
	}
	fn, err := interp.Eval(forms[0])
	if err != nil {
		return nil, err
	}
	rawArgs, err := interp.Eval(forms[1])
	if err != nil {
		return nil, err
	}
	return interp.Apply(fn, rawArgs)
}

// fnBuiltin and macroBuiltin build the one callable variant, differing
// only in the isFunction flag: functions capture their defining
// environment eagerly and evaluate arguments; macros capture nothing and
// splice a frame onto the caller's chain at expansion time instead.
func fnBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	return makeClosure(interp, args, true)
}

func macroBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	return makeClosure(interp, args, false)
}

func makeClosure(interp value.Interp, args value.Value, isFunction bool) (value.Value, error) {
	cell, ok := args.(*value.Cons)
	if !ok || cell == value.Nil {
		kind := "macro"
		if isFunction {
			kind = "fn"
		}
		return nil, value.Errorf(value.ErrShape, "%s: expected a parameter list and a body", kind)
	}
	params, ok := cell.Car.(*value.Cons)
	if !ok {
		return nil, value.Errorf(value.ErrShape, "parameter list must be a proper list of symbols")
	}
	body, ok := cell.Cdr.(*value.Cons)
	if !ok {
		return nil, value.Errorf(value.ErrShape, "body must be a proper list of forms")
	}
	scopeContext := value.Value(value.Nil)
	if isFunction {
		scopeContext = interp.CurrentEnv()
	}
	closure, err := value.NewClosure(params, body, scopeContext, isFunction)
	if err != nil {
		return nil, err
	}
	return interp.Track(closure), nil
}
