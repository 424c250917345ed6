package reader

import (
	"testing"

	"github.com/mkeller/wisp/pkg/value"
)

func noopTrack(v value.Value) value.Value { return v }

func readOne(t *testing.T, src string) value.Value {
	t.Helper()
	symbols := value.NewSymbolTable()
	r := New(symbols, noopTrack, []byte(src))
	v, err := r.Read()
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	return v
}

func Test_Read_Integer(t *testing.T) {
	v := readOne(t, "42")
	n, err := value.AsInt(v)
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}
}

func Test_Read_SignedIntegers(t *testing.T) {
	n, err := value.AsInt(readOne(t, "-5"))
	if err != nil {
		t.Fatal(err)
	}
	if n != -5 {
		t.Fatalf("expected -5, got %d", n)
	}

	n, err = value.AsInt(readOne(t, "+5"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}
}

func Test_Read_BareSignIsASymbol(t *testing.T) {
	// "-" and "+" with no digit following are the arithmetic builtins'
	// names, not integer literals.
	v := readOne(t, "-")
	sym, ok := v.(*value.Symbol)
	if !ok {
		t.Fatalf("expected a symbol, got %T", v)
	}
	if sym.Name != "-" {
		t.Fatalf("expected symbol named %q, got %q", "-", sym.Name)
	}

	v = readOne(t, "+")
	sym, ok = v.(*value.Symbol)
	if !ok {
		t.Fatalf("expected a symbol, got %T", v)
	}
	if sym.Name != "+" {
		t.Fatalf("expected symbol named %q, got %q", "+", sym.Name)
	}
}

func Test_Read_SymbolWithLeadingSignAndNonDigit(t *testing.T) {
	v := readOne(t, "-foo")
	if _, ok := v.(*value.Symbol); !ok {
		t.Fatalf("expected -foo to read as a symbol, got %T", v)
	}
}

func Test_Read_Symbol(t *testing.T) {
	v := readOne(t, "foo-bar")
	sym, ok := v.(*value.Symbol)
	if !ok {
		t.Fatalf("expected a symbol, got %T", v)
	}
	if sym.Name != "foo-bar" {
		t.Fatalf("expected name foo-bar, got %q", sym.Name)
	}
}

func Test_Read_List(t *testing.T) {
	v := readOne(t, "(1 2 3)")
	elems, err := value.ListToSlice(v)
	if err != nil {
		t.Fatal(err)
	}
	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elems))
	}
}

func Test_Read_NestedLists(t *testing.T) {
	v := readOne(t, "(1 (2 3) 4)")
	elems, err := value.ListToSlice(v)
	if err != nil {
		t.Fatal(err)
	}
	if len(elems) != 3 {
		t.Fatalf("expected 3 top-level elements, got %d", len(elems))
	}
	inner, err := value.ListToSlice(elems[1])
	if err != nil {
		t.Fatal(err)
	}
	if len(inner) != 2 {
		t.Fatalf("expected 2 nested elements, got %d", len(inner))
	}
}

func Test_Read_EmptyListIsNil(t *testing.T) {
	v := readOne(t, "()")
	if v != value.Value(value.Nil) {
		t.Fatal("expected () to read as the Nil singleton")
	}
}

func Test_Read_StringEscapes(t *testing.T) {
	v := readOne(t, `"a\nb\\c\"d"`)
	s, ok := v.(*value.Str)
	if !ok {
		t.Fatalf("expected a string, got %T", v)
	}
	want := "a\nb\\c\"d"
	if string(s.Bytes()) != want {
		t.Fatalf("expected %q, got %q", want, string(s.Bytes()))
	}
}

func Test_Read_OctalEscape(t *testing.T) {
	v := readOne(t, `"\101"`)
	s, ok := v.(*value.Str)
	if !ok {
		t.Fatalf("expected a string, got %T", v)
	}
	if string(s.Bytes()) != "A" {
		t.Fatalf("expected octal escape \\101 to decode to 'A', got %q", string(s.Bytes()))
	}
}

func Test_Read_UnrecognizedEscapeKeepsBackslash(t *testing.T) {
	v := readOne(t, `"\q"`)
	s, ok := v.(*value.Str)
	if !ok {
		t.Fatalf("expected a string, got %T", v)
	}
	if string(s.Bytes()) != "\\q" {
		t.Fatalf("expected the backslash preserved verbatim, got %q", string(s.Bytes()))
	}
}

func Test_Read_EOFBetweenForms(t *testing.T) {
	symbols := value.NewSymbolTable()
	r := New(symbols, noopTrack, []byte("  \n  "))
	if _, err := r.Read(); err != ErrEOF {
		t.Fatalf("expected ErrEOF on whitespace-only input, got %v", err)
	}
}

func Test_Read_IncompleteList(t *testing.T) {
	symbols := value.NewSymbolTable()
	r := New(symbols, noopTrack, []byte("(1 2"))
	if _, err := r.Read(); err != ErrIncomplete {
		t.Fatalf("expected ErrIncomplete for an unclosed list, got %v", err)
	}
}

func Test_Read_IncompleteString(t *testing.T) {
	symbols := value.NewSymbolTable()
	r := New(symbols, noopTrack, []byte(`"abc`))
	if _, err := r.Read(); err != ErrIncomplete {
		t.Fatalf("expected ErrIncomplete for an unclosed string, got %v", err)
	}
}

func Test_Read_MultipleFormsInSequence(t *testing.T) {
	symbols := value.NewSymbolTable()
	r := New(symbols, noopTrack, []byte("1 2 3"))
	for _, want := range []int{1, 2, 3} {
		v, err := r.Read()
		if err != nil {
			t.Fatal(err)
		}
		n, _ := value.AsInt(v)
		if n != want {
			t.Fatalf("expected %d, got %d", want, n)
		}
	}
	if _, err := r.Read(); err != ErrEOF {
		t.Fatalf("expected ErrEOF after the last form, got %v", err)
	}
}

func Test_Read_SymbolInterningIsSharedAcrossForms(t *testing.T) {
	symbols := value.NewSymbolTable()
	r := New(symbols, noopTrack, []byte("foo foo"))
	a, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("expected the same symbol name to intern to the same *Symbol across forms")
	}
}
