package rtf

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf16"

	"golang.org/x/text/encoding"
)

// writer accumulates control-word output. It keeps track of group depth and
// of the delimiter a preceding control word may need before text.
type writer struct {
	buf       bytes.Buffer
	depth     int
	unmatched bool
	needSpace bool
	enc       *encoding.Encoder
	cache     map[rune]string
}

func newWriter(enc encoding.Encoding) *writer {
	w := &writer{cache: make(map[rune]string)}
	if enc != nil {
		w.enc = enc.NewEncoder()
	}
	return w
}

func (w *writer) open() {
	w.buf.WriteByte('{')
	w.depth++
	w.needSpace = false
}

func (w *writer) close() {
	if w.depth == 0 {
		w.unmatched = true
	}
	w.buf.WriteByte('}')
	w.depth--
	w.needSpace = false
}

// word writes control word without parameter, name without backslash.
func (w *writer) word(name string) {
	w.buf.WriteByte('\\')
	w.buf.WriteString(name)
	w.needSpace = true
}

// num writes control word with numeric parameter.
func (w *writer) num(name string, n int) {
	w.buf.WriteByte('\\')
	w.buf.WriteString(name)
	w.buf.WriteString(strconv.Itoa(n))
	w.needSpace = true
}

// toggle writes "\name" when on is true, "\name0" otherwise.
func (w *writer) toggle(name string, on bool) {
	if on {
		w.word(name)
		return
	}
	w.num(name, 0)
}

// destination opens group starting with an optional destination "\*\name".
func (w *writer) destination(name string) {
	w.open()
	w.buf.WriteString(`\*`)
	w.word(name)
}

func (w *writer) destinationNum(name string, n int) {
	w.open()
	w.buf.WriteString(`\*`)
	w.num(name, n)
}

// hex writes byte as "\'hh".
func (w *writer) hex(b byte) {
	fmt.Fprintf(&w.buf, `\'%02x`, b)
	w.needSpace = false
}

// symbol writes control symbol such as "\~" which is never followed by a
// delimiter.
func (w *writer) symbol(c byte) {
	w.buf.WriteByte('\\')
	w.buf.WriteByte(c)
	w.needSpace = false
}

// raw writes pre-formatted bytes (hex picture data) on a line of their own.
func (w *writer) raw(data []byte) {
	w.buf.WriteByte('\n')
	w.buf.Write(data)
	w.needSpace = false
}

// text writes escaped text.
func (w *writer) text(s string) {
	for _, r := range s {
		w.char(r)
	}
}

func (w *writer) char(r rune) {
	switch {
	case r == '\\' || r == '{' || r == '}':
		w.buf.WriteByte('\\')
		w.buf.WriteRune(r)
		w.needSpace = false
	case r == '\t':
		w.word("tab")
	case r == '\n':
		w.word("line")
	case r < 0x20:
		fmt.Fprintf(&w.buf, `\'%02x`, r)
		w.needSpace = false
	case r < 0x80:
		if w.needSpace && fuses(byte(r)) {
			w.buf.WriteByte(' ')
		}
		w.buf.WriteByte(byte(r))
		w.needSpace = false
	default:
		w.unicode(r)
	}
}

// fuses reports characters which would be read as a part of preceding
// control word or eaten as its delimiter.
func fuses(c byte) bool {
	return c == ' ' || c == '-' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// unicode writes "\uN" with signed 16 bit N, characters outside of the
// basic plane are written as surrogate pairs.
func (w *writer) unicode(r rune) {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		fmt.Fprintf(&w.buf, `\u%d?\u%d?`, int16(r1), int16(r2))
	} else {
		fmt.Fprintf(&w.buf, `\u%d%s`, int16(r), w.placeholder(r))
	}
	w.needSpace = false
}

// placeholder returns fallback for readers without unicode support: the
// character in the document code page or "?".
func (w *writer) placeholder(r rune) string {
	if p, ok := w.cache[r]; ok {
		return p
	}
	p := "?"
	if w.enc != nil {
		if b, err := w.enc.Bytes([]byte(string(r))); err == nil && len(b) == 1 && b[0] >= 0x80 {
			p = fmt.Sprintf(`\'%02x`, b[0])
		}
	}
	w.cache[r] = p
	return p
}

// balanced reports whether every group opened was closed.
func (w *writer) balanced() bool {
	return w.depth == 0 && !w.unmatched
}

func (w *writer) bytes() []byte {
	return w.buf.Bytes()
}
