// Package html provides the canonical encoded-writer transform for
// obelizmo, HTML entity escaping, together with a kind type for the
// common inline tags and a reader which recovers marks from inline HTML.
package html

import (
	"io"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Escaper wraps a byte sink so that literal text written through
// WriteEncoded is HTML-entity escaped while markup written through Write
// passes raw. It implements obelizmo.EncodedWriter; handing an Escaper to
// WriteTree or WriteStream yields output safe to embed in an HTML
// document.
type Escaper struct {
	w   io.Writer
	buf []byte
}

// NewEscaper wraps w.
func NewEscaper(w io.Writer) *Escaper {
	return &Escaper{w: w}
}

// Write passes p through unmodified.
func (e *Escaper) Write(p []byte) (int, error) {
	return e.w.Write(p)
}

// WriteEncoded writes p with '<', '>' and '&' escaped. An '&' that begins
// a recognizable entity reference is passed through verbatim, so text
// which already contains entities is not double-escaped. n reports the
// bytes of p consumed.
func (e *Escaper) WriteEncoded(p []byte) (int, error) {
	e.buf = AppendEscaped(e.buf[:0], p)
	if _, err := e.w.Write(e.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

// AppendEscaped appends the escaped form of p to dst and returns the
// extended buffer. The escaper is byte-oriented and makes no UTF-8
// validity claims: every byte other than '<', '>' and '&' passes through
// unchanged.
func AppendEscaped(dst, p []byte) []byte {
	start := 0
	for i := 0; i < len(p); i++ {
		var repl string
		switch p[i] {
		case '<':
			repl = "&lt;"
		case '>':
			repl = "&gt;"
		case '&':
			if IsEntityRef(p[i:]) {
				continue
			}
			repl = "&amp;"
		default:
			continue
		}
		dst = append(dst, p[start:i]...)
		dst = append(dst, repl...)
		start = i + 1
	}
	return append(dst, p[start:]...)
}

// EscapeString escapes s as AppendEscaped does.
func EscapeString(s string) string {
	return string(AppendEscaped(nil, []byte(s)))
}

// IsEntityRef reports whether p begins with a recognizable HTML entity
// reference: an ampersand followed by either a name of ASCII letters, a
// '#' and decimal digits, or "#x"/"#X" and hex digits, terminated by a
// semicolon within p. The shortest recognizable reference is three bytes.
func IsEntityRef(p []byte) bool {
	if len(p) < 3 || p[0] != '&' {
		return false
	}
	i := 1
	switch {
	case p[i] == '#' && i+1 < len(p) && (p[i+1] == 'x' || p[i+1] == 'X'):
		i += 2
		start := i
		for i < len(p) && isHex(p[i]) {
			i++
		}
		if i == start {
			return false
		}
	case p[i] == '#':
		i++
		start := i
		for i < len(p) && isDigit(p[i]) {
			i++
		}
		if i == start {
			return false
		}
	default:
		start := i
		for i < len(p) && isAlpha(p[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i < len(p) && p[i] == ';'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
