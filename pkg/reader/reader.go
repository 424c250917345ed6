// Package reader turns a character stream into value trees, per spec.md
// §6's grammar: whitespace-delimited tokens, parenthesized lists, and
// double-quoted strings with a small escape set.
package reader

import (
	"errors"
	"strconv"

	"github.com/mkeller/wisp/pkg/value"
)

// ErrEOF is returned by Read once the input is exhausted (after any
// trailing whitespace), letting a REPL driver distinguish "no more forms"
// from a genuine syntax error.
var ErrEOF = errors.New("reader: end of input")

// ErrIncomplete is returned when the input ends in the middle of a form
// (an unclosed list or string) rather than between forms. A REPL driver
// can use this, as opposed to ErrEOF or a genuine syntax error, to decide
// whether to prompt for a continuation line instead of reporting failure.
var ErrIncomplete = errors.New("reader: incomplete form")

// Reader reads successive forms from a fixed byte slice. It is not
// reentrant-safe across goroutines; callers use one Reader per input
// source.
type Reader struct {
	symbols *value.SymbolTable
	track   func(value.Value) value.Value
	src     []byte
	pos     int
}

// New builds a reader over src. track registers every freshly constructed
// cons cell, string, and integer with the heap (see pkg/heap.Track);
// symbols are interned through symbols and never need tracking (they are
// static).
func New(symbols *value.SymbolTable, track func(value.Value) value.Value, src []byte) *Reader {
	return &Reader{symbols: symbols, track: track, src: src}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isWhitespace(c) || c == '(' || c == ')' || c == 0
}

func (r *Reader) peek() (byte, bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	return r.src[r.pos], true
}

func (r *Reader) skipWhitespace() {
	for {
		c, ok := r.peek()
		if !ok || !isWhitespace(c) {
			return
		}
		r.pos++
	}
}

// Read parses and returns the next top-level form, or ErrEOF if the input
// (after skipping trailing whitespace) is exhausted.
func (r *Reader) Read() (value.Value, error) {
	r.skipWhitespace()
	if _, ok := r.peek(); !ok {
		return nil, ErrEOF
	}
	return r.readForm()
}

func (r *Reader) readForm() (value.Value, error) {
	r.skipWhitespace()
	c, ok := r.peek()
	if !ok {
		return nil, ErrIncomplete
	}
	switch {
	case c == '(':
		return r.readList()
	case c == '"':
		return r.readString()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readList() (value.Value, error) {
	r.pos++ // consume '('
	var elems []value.Value
	for {
		r.skipWhitespace()
		c, ok := r.peek()
		if !ok {
			return nil, ErrIncomplete
		}
		if c == ')' {
			r.pos++
			return value.SliceToList(elems, r.track), nil
		}
		v, err := r.readForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

func (r *Reader) readString() (value.Value, error) {
	r.pos++ // consume opening quote
	var buf []byte
	for {
		c, ok := r.peek()
		if !ok {
			return nil, ErrIncomplete
		}
		r.pos++
		if c == '"' {
			return r.track(value.NewStrFromBytes(buf)), nil
		}
		if c != '\\' {
			buf = append(buf, c)
			continue
		}
		esc, ok := r.peek()
		if !ok {
			return nil, ErrIncomplete
		}
		switch esc {
		case 'n':
			r.pos++
			buf = append(buf, '\n')
		case '\\':
			r.pos++
			buf = append(buf, '\\')
		case '"':
			r.pos++
			buf = append(buf, '"')
		default:
			if esc >= '0' && esc <= '7' {
				n := 0
				digits := 0
				for digits < 3 {
					d, ok := r.peek()
					if !ok || d < '0' || d > '7' {
						break
					}
					n = n*8 + int(d-'0')
					r.pos++
					digits++
				}
				buf = append(buf, byte(n))
			} else {
				// Unrecognized escape: keep the backslash verbatim, matching
				// the original's lenient handling of unknown sequences.
				buf = append(buf, '\\')
			}
		}
	}
}

func (r *Reader) readAtom() (value.Value, error) {
	start := r.pos
	for {
		c, ok := r.peek()
		if !ok || isDelimiter(c) {
			break
		}
		r.pos++
	}
	token := string(r.src[start:r.pos])
	if token == "" {
		return nil, value.Errorf(value.ErrIO, "empty token")
	}
	if isIntegerToken(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, value.Errorf(value.ErrIO, "malformed integer literal %q", token)
		}
		return r.track(value.NewInteger(n)), nil
	}
	sym, err := r.symbols.Intern(token)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// isIntegerToken reports whether token is a signed decimal integer literal:
// an optional leading '+'/'-' followed by at least one digit. A bare sign
// with no digit after it (e.g. the "-" and "+" arithmetic builtins) is a
// symbol, not a number.
func isIntegerToken(token string) bool {
	digits := token
	if token[0] == '+' || token[0] == '-' {
		digits = token[1:]
	}
	if digits == "" {
		return false
	}
	return digits[0] >= '0' && digits[0] <= '9'
}
