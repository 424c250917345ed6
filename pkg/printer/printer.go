// Package printer renders values to their textual form. Every variant
// already knows how to render itself into a bounded buffer (value.Value's
// Render method); this package owns the one encoding concern rendering
// can't handle on its own: raw Str values may contain non-UTF-8 bytes
// (the reader's \ooo octal escape can produce any byte 0-255), which Go's
// terminal output needs transcoded rather than emitted verbatim.
package printer

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/mkeller/wisp/pkg/value"
)

const renderBufSize = 64 * 1024

// Print writes v's textual rendering to w, transcoding raw string bytes
// through ISO-8859-1 so any byte value produces a valid, displayable UTF-8
// sequence instead of corrupting the terminal.
func Print(w io.Writer, v value.Value) error {
	s, err := Render(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Render returns v's textual form as a Go string, safe to write to any
// UTF-8 consumer.
func Render(v value.Value) (string, error) {
	buf := make([]byte, renderBufSize)
	n := v.Render(buf)
	raw := buf[:n]

	// A Str renders as a quoted form wrapped around its raw payload bytes,
	// which may not be valid UTF-8 (the reader's \ooo octal escape can
	// produce any byte 0-255); the same risk applies to a Str nested
	// anywhere inside a list, vector, or dict rendering. Either way, an
	// invalid-UTF-8 rendering is transcoded wholesale rather than picked
	// apart, since every byte is still a valid ISO-8859-1 code point.
	if !utf8.Valid(raw) {
		return transcode(raw)
	}
	return string(raw), nil
}

// transcode decodes raw ISO-8859-1 bytes (every byte 0-255 is a valid
// code point in that charset) into UTF-8, the textbook use of
// golang.org/x/text/encoding for byte-safe terminal output.
func transcode(raw []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
