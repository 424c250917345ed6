package value

import "testing"

func Test_Equal_IntegersByValue(t *testing.T) {
	a := NewInteger(3)
	b := NewInteger(3)
	if !Equal(a, b) {
		t.Fatal("expected equal-valued integers to be Equal")
	}
	if Equal(a, NewInteger(4)) {
		t.Fatal("expected different-valued integers to not be Equal")
	}
}

func Test_Equal_ConsByIdentity(t *testing.T) {
	a := NewCons(NewInteger(1), Nil)
	b := NewCons(NewInteger(1), Nil)
	if Equal(a, b) {
		t.Fatal("expected distinct cons cells to not be Equal, even with equal contents")
	}
	if !Equal(a, a) {
		t.Fatal("expected a cons cell to be Equal to itself")
	}
}

func Test_Truthy(t *testing.T) {
	if Truthy(Nil) {
		t.Fatal("Nil must not be truthy")
	}
	if !Truthy(T) {
		t.Fatal("T must be truthy")
	}
	if !Truthy(NewInteger(0)) {
		t.Fatal("everything except Nil counts as truthy, including integer 0")
	}
}

func Test_SymbolTable_InternIsIdempotent(t *testing.T) {
	st := NewSymbolTable()
	a, err := st.Intern("foo")
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Intern("foo")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("expected interning the same name twice to return the same *Symbol")
	}
}

func Test_SymbolTable_TruncatesLongNames(t *testing.T) {
	st := NewSymbolTable()
	long := ""
	for i := 0; i < MaxSymbolLen+10; i++ {
		long += "x"
	}
	sym, err := st.Intern(long)
	if err != nil {
		t.Fatal(err)
	}
	if len(sym.Name) != MaxSymbolLen {
		t.Fatalf("expected truncation to %d chars, got %d", MaxSymbolLen, len(sym.Name))
	}
}

func Test_SymbolTable_ExhaustionRaisesErrResource(t *testing.T) {
	st := NewSymbolTable()
	for i := 0; i < MaxSymbols; i++ {
		if _, err := st.Intern(itoaForTest(i)); err != nil {
			t.Fatalf("unexpected error filling the pool: %v", err)
		}
	}
	if _, err := st.Intern("one-too-many"); err == nil {
		t.Fatal("expected ErrResource once the symbol pool is exhausted")
	}
}

func itoaForTest(n int) string {
	if n == 0 {
		return "s0"
	}
	digits := []byte("s")
	start := len(digits)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := start, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func Test_ListToSlice_And_SliceToList_RoundTrip(t *testing.T) {
	vals := []Value{NewInteger(1), NewInteger(2), NewInteger(3)}
	list := SliceToList(vals, func(v Value) Value { return v })
	got, err := ListToSlice(list)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(got))
	}
	for i, v := range got {
		n, _ := AsInt(v)
		if n != i+1 {
			t.Fatalf("element %d: expected %d, got %d", i, i+1, n)
		}
	}
}

func Test_ListToSlice_ImproperListRaisesErrShape(t *testing.T) {
	improper := NewCons(NewInteger(1), NewInteger(2))
	if _, err := ListToSlice(improper); err == nil {
		t.Fatal("expected ErrShape for an improper list")
	}
}

func Test_IsProperList(t *testing.T) {
	if !IsProperList(Nil) {
		t.Fatal("Nil is the empty proper list")
	}
	proper := NewCons(NewInteger(1), NewCons(NewInteger(2), Nil))
	if !IsProperList(proper) {
		t.Fatal("expected a Nil-terminated chain to be a proper list")
	}
	improper := NewCons(NewInteger(1), NewInteger(2))
	if IsProperList(improper) {
		t.Fatal("expected a non-Nil-terminated chain to not be a proper list")
	}
}

func Test_Vector_AppendAndNegativeIndex(t *testing.T) {
	v := NewVector()
	v.Append(NewInteger(1))
	v.Append(NewInteger(2))
	v.Append(NewInteger(3))

	last, err := v.Get(-1)
	if err != nil {
		t.Fatal(err)
	}
	n, _ := AsInt(last)
	if n != 3 {
		t.Fatalf("expected nth -1 to be the last element (3), got %d", n)
	}
}

func Test_Vector_InsertShiftsElements(t *testing.T) {
	v := NewVector()
	v.Append(NewInteger(1))
	v.Append(NewInteger(3))
	if err := v.Insert(1, NewInteger(2)); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 {
		t.Fatalf("expected length 3, got %d", v.Len())
	}
	for i, want := range []int{1, 2, 3} {
		got, err := v.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		n, _ := AsInt(got)
		if n != want {
			t.Fatalf("index %d: expected %d, got %d", i, want, n)
		}
	}
}

func Test_Vector_OutOfRangeRaisesErrIndex(t *testing.T) {
	v := NewVector()
	v.Append(NewInteger(1))
	if _, err := v.Get(5); err == nil {
		t.Fatal("expected ErrIndex for an out-of-range index")
	}
}

func Test_Dict_SetGetAndMissingKey(t *testing.T) {
	d := NewDict()
	key := NewInteger(1)
	val := NewInteger(100)
	if err := d.Set(key, val); err != nil {
		t.Fatal(err)
	}
	got, ok := d.Get(key)
	if !ok {
		t.Fatal("expected Get to find the key just Set")
	}
	if got != val {
		t.Fatal("expected Get to return the value just Set under the same key identity")
	}

	if _, ok := d.Get(NewInteger(2)); ok {
		t.Fatal("expected Get to report not-found for a key that was never Set")
	}
}
