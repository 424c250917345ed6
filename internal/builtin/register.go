package builtin

import "github.com/mkeller/wisp/pkg/value"

// Register interns every builtin's name and defines it in interp's current
// (global, at startup) frame. It is meant to be called once, immediately
// after constructing a fresh interpreter and before evaluating any
// program forms.
func Register(interp value.Interp, symbols *value.SymbolTable) error {
	table := []struct {
		name string
		fn   value.BuiltinFunc
	}{
		{"do", doBuiltin},
		{"quote", quoteBuiltin},
		{"if", ifBuiltin},
		{"while", whileBuiltin},
		{"def", defBuiltin},
		{"set", setBuiltin},
		{"try-catch", tryCatchBuiltin},
		{"eval", evalBuiltin},
		{"apply", applyBuiltin},
		{"fn", fnBuiltin},
		{"macro", macroBuiltin},

		{"+", plusBuiltin},
		{"-", minusBuiltin},
		{"=", eqBuiltin},

		{"cons", consBuiltin},
		{"list", listBuiltin},
		{"car", carBuiltin},
		{"cdr", cdrBuiltin},
		{"vector", vectorBuiltin},
		{"nth", nthBuiltin},
		{"insert", insertBuiltin},
		{"append", appendBuiltin},
		{"dict", dictBuiltin},
		{"getitem", getitemBuiltin},
		{"setitem", setitemBuiltin},
		{"slice", sliceBuiltin},
		{"concat", concatBuiltin},

		{"print", printBuiltin},
		{"show-symbol-table", showSymbolTableBuiltin},
		{"exit", exitBuiltin},
	}

	for _, entry := range table {
		sym, err := symbols.Intern(entry.name)
		if err != nil {
			return err
		}
		if err := interp.Define(sym, value.NewBuiltin(entry.name, entry.fn)); err != nil {
			return err
		}
	}

	// "nil" and "t" are ordinary symbols from the reader's point of view
	// (a bare token not starting with a digit); bind them globally to the
	// canonical singletons so the two self-evaluating constants spec.md
	// §3 describes are reachable by name, not just via the empty-list
	// literal `()`.
	constants := []struct {
		name string
		val  value.Value
	}{
		{"nil", value.Nil},
		{"t", value.T},
	}
	for _, c := range constants {
		sym, err := symbols.Intern(c.name)
		if err != nil {
			return err
		}
		if err := interp.Define(sym, c.val); err != nil {
			return err
		}
	}
	return nil
}
