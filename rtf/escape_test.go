package rtf

import (
	"strconv"
	"testing"
	"unicode/utf16"

	"golang.org/x/text/encoding"
)

// unescapeText reads back text produced by writer.text: escaped symbols,
// "\'hh", "\tab", "\line" and "\uN" followed by one fallback character
// (\uc1). "\plain" is skipped, groups or other control words are not
// expected.
func unescapeText(t *testing.T, data string) string {
	t.Helper()

	var (
		out     []rune
		skip    bool // next character is \uN fallback
		pending rune // high surrogate waiting for its pair
	)
	emit := func(r rune) {
		switch {
		case utf16.IsSurrogate(r) && pending == 0:
			pending = r
		case utf16.IsSurrogate(r):
			out = append(out, utf16.DecodeRune(pending, r))
			pending = 0
		default:
			out = append(out, r)
		}
	}
	character := func(r rune) {
		if skip {
			skip = false
			return
		}
		emit(r)
	}
	isLetter := func(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }

	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == '{' || c == '}':
			t.Fatalf("unescaped group delimiter at %d in %q", i, data)
		case c >= 0x80:
			t.Fatalf("non ASCII byte %#x at %d in %q", c, i, data)
		case c != '\\':
			character(rune(c))
			i++
			continue
		}

		i++
		if i >= len(data) {
			t.Fatalf("dangling backslash in %q", data)
		}
		switch c = data[i]; {
		case c == '\\' || c == '{' || c == '}':
			character(rune(c))
			i++
		case c == '\'':
			if i+3 > len(data) {
				t.Fatalf("short hex escape in %q", data)
			}
			b, err := strconv.ParseUint(data[i+1:i+3], 16, 8)
			if err != nil {
				t.Fatalf("bad hex escape in %q: %v", data, err)
			}
			i += 3
			if skip {
				skip = false
				continue
			}
			if b >= 0x80 {
				t.Fatalf("code page byte %#x outside of \\u fallback in %q", b, data)
			}
			emit(rune(b))
		case isLetter(c):
			j := i
			for j < len(data) && isLetter(data[j]) {
				j++
			}
			name := data[i:j]
			k := j
			if k < len(data) && data[k] == '-' {
				k++
			}
			for k < len(data) && isDigit(data[k]) {
				k++
			}
			param := data[j:k]
			i = k
			// single space delimits control word
			if i < len(data) && data[i] == ' ' {
				i++
			}
			switch name {
			case "plain":
			case "tab":
				character('\t')
			case "line":
				character('\n')
			case "u":
				n, err := strconv.Atoi(param)
				if err != nil {
					t.Fatalf("bad \\u parameter %q in %q", param, data)
				}
				emit(rune(uint16(int16(n))))
				skip = true
			default:
				t.Fatalf("unexpected control word %q in %q", name, data)
			}
		default:
			t.Fatalf("unexpected control symbol %q in %q", c, data)
		}
	}
	if pending != 0 {
		t.Fatalf("unpaired surrogate in %q", data)
	}
	return string(out)
}

func TestWriterTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain words",
		`back\slash and \\ double`,
		"{braces} } {",
		`\{mixed}\`,
		"tab\tthen\nnew line",
		"\t123 digits after tab",
		"\n-dash after line",
		"control \x01\x1f\r bytes",
		"Latin é, euro €, Cyrillic Жук",
		"astral 😀 and 𝄞 clef",
		"�￿ edge of plane",
		"broken \xff utf-8 \xc3(",
	}
	encodings := map[string]encoding.Encoding{
		"no code page": nil,
		"1252":         codePageEncoding(1252),
		"1251":         codePageEncoding(1251),
	}
	for name, enc := range encodings {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				w := newWriter(enc)
				// preceding control word exercises delimiter handling
				w.word("plain")
				w.text(in)
				out := string(w.bytes())

				got := unescapeText(t, out)
				// invalid bytes are written as U+FFFD, one per byte
				if want := string([]rune(in)); got != want {
					t.Errorf("text(%q) = %q, reads back as %q", in, out, got)
				}
			}
		})
	}
}
