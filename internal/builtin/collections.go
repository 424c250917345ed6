package builtin

import "github.com/mkeller/wisp/pkg/value"

// consBuiltin builds a fresh ordered pair.
func consBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 2, "cons"); err != nil {
		return nil, err
	}
	return interp.Track(value.NewCons(vals[0], vals[1])), nil
}

// listBuiltin evaluates every argument and collects them into a fresh
// proper list.
func listBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	return value.SliceToList(vals, func(v value.Value) value.Value { return interp.Track(v) }), nil
}

// carBuiltin returns the car of a cons cell, raising on nil (the empty
// list has no car).
func carBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 1, "car"); err != nil {
		return nil, err
	}
	cell, err := value.Cast[*value.Cons](vals[0], value.ConsType)
	if err != nil {
		return nil, err
	}
	if cell == value.Nil {
		return nil, value.Errorf(value.ErrIndex, "car: nil has no car")
	}
	return cell.Car, nil
}

// cdrBuiltin returns the cdr of a cons cell, raising on nil.
func cdrBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 1, "cdr"); err != nil {
		return nil, err
	}
	cell, err := value.Cast[*value.Cons](vals[0], value.ConsType)
	if err != nil {
		return nil, err
	}
	if cell == value.Nil {
		return nil, value.Errorf(value.ErrIndex, "cdr: nil has no cdr")
	}
	return cell.Cdr, nil
}

// vectorBuiltin evaluates every argument and appends them, in order, to a
// fresh vector.
func vectorBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	vec := value.NewVector()
	for _, v := range vals {
		vec.Append(v)
	}
	return interp.Track(vec), nil
}

// nthBuiltin indexes a vector, accepting negative indices.
func nthBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 2, "nth"); err != nil {
		return nil, err
	}
	vec, err := value.Cast[*value.Vector](vals[0], value.VectorType)
	if err != nil {
		return nil, err
	}
	idx, err := value.AsInt(vals[1])
	if err != nil {
		return nil, err
	}
	return vec.Get(idx)
}

// insertBuiltin inserts into a vector at a (possibly negative) index,
// returning the vector.
func insertBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 3, "insert"); err != nil {
		return nil, err
	}
	vec, err := value.Cast[*value.Vector](vals[0], value.VectorType)
	if err != nil {
		return nil, err
	}
	idx, err := value.AsInt(vals[1])
	if err != nil {
		return nil, err
	}
	if err := vec.Insert(idx, vals[2]); err != nil {
		return nil, err
	}
	return vec, nil
}

// appendBuiltin appends to the end of a vector, returning the vector.
func appendBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 2, "append"); err != nil {
		return nil, err
	}
	vec, err := value.Cast[*value.Vector](vals[0], value.VectorType)
	if err != nil {
		return nil, err
	}
	vec.Append(vals[1])
	return vec, nil
}

// dictBuiltin evaluates an even number of arguments as alternating
// key/value pairs and builds a fresh dict from them.
func dictBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if len(vals)%2 != 0 {
		return nil, value.Errorf(value.ErrShape, "dict: expected an even number of key/value arguments, got %d", len(vals))
	}
	d := value.NewDict()
	for i := 0; i < len(vals); i += 2 {
		if err := d.Set(vals[i], vals[i+1]); err != nil {
			return nil, err
		}
	}
	return interp.Track(d), nil
}

// getitemBuiltin looks up key in a dict, raising an index error if absent.
func getitemBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 2, "getitem"); err != nil {
		return nil, err
	}
	d, err := value.Cast[*value.Dict](vals[0], value.DictType)
	if err != nil {
		return nil, err
	}
	v, found := d.Get(vals[1])
	if !found {
		return nil, value.Errorf(value.ErrIndex, "getitem: key not found")
	}
	return v, nil
}

// setitemBuiltin stores val under key in a dict, returning val.
func setitemBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 3, "setitem"); err != nil {
		return nil, err
	}
	d, err := value.Cast[*value.Dict](vals[0], value.DictType)
	if err != nil {
		return nil, err
	}
	if err := d.Set(vals[1], vals[2]); err != nil {
		return nil, err
	}
	return vals[2], nil
}

// sliceBuiltin returns a fresh substring.
func sliceBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	if err := requireArity(len(vals), 3, "slice"); err != nil {
		return nil, err
	}
	s, err := value.Cast[*value.Str](vals[0], value.StringType)
	if err != nil {
		return nil, err
	}
	start, err := value.AsInt(vals[1])
	if err != nil {
		return nil, err
	}
	length, err := value.AsInt(vals[2])
	if err != nil {
		return nil, err
	}
	out, err := s.Slice(start, length)
	if err != nil {
		return nil, err
	}
	return interp.Track(out), nil
}

// concatBuiltin folds zero or more strings together.
func concatBuiltin(interp value.Interp, args value.Value) (value.Value, error) {
	vals, err := evalArgs(interp, args)
	if err != nil {
		return nil, err
	}
	strs := make([]*value.Str, len(vals))
	for i, v := range vals {
		s, err := value.Cast[*value.Str](v, value.StringType)
		if err != nil {
			return nil, err
		}
		strs[i] = s
	}
	return interp.Track(value.Concat(strs...)), nil
}
