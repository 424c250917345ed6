package eval

import "github.com/mkeller/wisp/pkg/value"

// Eval reduces a single form to a value, per spec.md §4.5:
//   - an integer, string, vector, dict, closure, builtin, or type
//     descriptor evaluates to itself;
//   - nil and t evaluate to themselves;
//   - a symbol evaluates to its binding in the current environment chain;
//   - any other cons cell (head . args) is an application: head is
//     evaluated to obtain a callable, and it is applied to the
//     unevaluated args.
func (it *Interp) Eval(v value.Value) (value.Value, error) {
	switch form := v.(type) {
	case *value.Symbol:
		return it.Lookup(form)
	case *value.Cons:
		if form == value.Nil || form == value.T {
			return form, nil
		}
		head, err := it.Eval(form.Car)
		if err != nil {
			return nil, err
		}
		return it.Apply(head, form.Cdr)
	default:
		return v, nil
	}
}

// Do evaluates a proper list of forms in order, returning the last result,
// or Nil if forms is empty. It is the implicit sequencing rule used by
// function/macro bodies and the `do` builtin alike.
func (it *Interp) Do(forms value.Value) (value.Value, error) {
	result := value.Value(value.Nil)
	cur := forms
	for cur != value.Value(value.Nil) {
		cell, ok := cur.(*value.Cons)
		if !ok {
			return nil, value.Errorf(value.ErrShape, "improper list of forms")
		}
		v, err := it.Eval(cell.Car)
		if err != nil {
			return nil, err
		}
		result = v
		cur = cell.Cdr
	}
	return result, nil
}
