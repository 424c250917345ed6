package printer

import (
	"testing"

	"github.com/mkeller/wisp/pkg/value"
)

func Test_Render_Integer(t *testing.T) {
	got, err := Render(value.NewInteger(42))
	if err != nil {
		t.Fatal(err)
	}
	if got != "42" {
		t.Fatalf("expected %q, got %q", "42", got)
	}
}

func Test_Render_NilAndT(t *testing.T) {
	if got, _ := Render(value.Nil); got != "nil" {
		t.Fatalf("expected nil to render as %q, got %q", "nil", got)
	}
	if got, _ := Render(value.T); got != "t" {
		t.Fatalf("expected t to render as %q, got %q", "t", got)
	}
}

func Test_Render_ConsPair(t *testing.T) {
	pair := value.NewCons(value.NewInteger(1), value.NewInteger(2))
	got, err := Render(pair)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(1 . 2)" {
		t.Fatalf("expected %q, got %q", "(1 . 2)", got)
	}
}

func Test_Render_Str_PreservesQuotes(t *testing.T) {
	s := value.NewStrFromBytes([]byte("hello"))
	got, err := Render(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != `"hello"` {
		t.Fatalf("expected a quote-wrapped string, got %q", got)
	}
}

func Test_Render_Str_TranscodesNonUTF8Bytes(t *testing.T) {
	// \101 in an octal string escape decodes to the raw byte 0x41 ('A'),
	// but a high byte like 0xFF is not valid UTF-8 on its own and must be
	// transcoded through ISO-8859-1 rather than rendered as a broken
	// multi-byte sequence or replacement character.
	s := value.NewStrFromBytes([]byte{0xFF})
	got, err := Render(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "\"ÿ\"" {
		t.Fatalf("expected the high byte transcoded via ISO-8859-1, got %q", got)
	}
}
