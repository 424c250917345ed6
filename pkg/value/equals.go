package value

// Equal implements the `=` semantics: true if both values share the same
// Kind and are either equal-valued integers or the same object by
// identity.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if ai, ok := a.(*Integer); ok {
		bi := b.(*Integer)
		return ai.N == bi.N
	}
	return a.ID() == b.ID()
}

// Truthy reports whether v counts as "true" in a conditional: everything
// except Nil does.
func Truthy(v Value) bool {
	return v != Value(Nil)
}

// Bool converts a Go bool to the canonical Lisp truth values.
func Bool(b bool) Value {
	if b {
		return T
	}
	return Nil
}
