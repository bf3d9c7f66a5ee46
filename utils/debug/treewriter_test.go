package debug

import (
	"testing"
	"time"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "%s=%d", []any{"n", 42}, "  n=42\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tw := NewTreeWriter()
	tw.TextBlock(1, "text", "a\tb")
	tw.TextBlock(0, "empty", "")
	want := "  text: \"a\\tb\"\nempty: \n"
	if got := tw.String(); got != want {
		t.Errorf("TextBlock() = %q, want %q", got, want)
	}
}

type opt struct {
	v   int
	set bool
}

func (o opt) Any() any {
	if !o.set {
		return nil
	}
	return o.v
}

type sample struct {
	Name    string
	Count   int
	Enabled bool
	Limit   opt
	Stamp   time.Duration
	hidden  int
}

func TestTreeWriter_Fields(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"zero", sample{}, ""},
		{"nil pointer", (*sample)(nil), ""},
		{"not a struct", 5, ""},
		{"set fields", sample{Name: "x", Enabled: true, hidden: 1}, "  s: Name=\"x\" Enabled=true\n"},
		{"optional", &sample{Limit: opt{v: 3, set: true}, Stamp: time.Second}, "  s: Limit=3 Stamp=1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Fields(1, "s", tt.v)
			if got := tw.String(); got != tt.want {
				t.Errorf("Fields() = %q, want %q", got, tt.want)
			}
		})
	}
}
