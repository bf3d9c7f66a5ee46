package registry

import (
	"errors"
	"testing"
)

type rgb struct{ r, g, b uint8 }

type level struct{ items []string }

func TestRegisterDeduplicatesEqualValues(t *testing.T) {
	reg := New("color", "c", Comparable[rgb])

	red := reg.Register(rgb{255, 0, 0}, "red")
	crimson := reg.Register(rgb{255, 0, 0}, "crimson")
	blue := reg.Register(rgb{0, 0, 255}, "blue")

	if red == crimson {
		t.Fatalf("aliases must be kept as given, got %q and %q", red, crimson)
	}
	if reg.Index(red) != reg.Index(crimson) {
		t.Errorf("equal values must share index: %d != %d", reg.Index(red), reg.Index(crimson))
	}
	if reg.Index(blue) != 1 {
		t.Errorf("Index(blue) = %d, want 1", reg.Index(blue))
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if got := reg.AliasesOf(0); len(got) != 2 {
		t.Errorf("AliasesOf(0) = %v, want two aliases", got)
	}
}

func TestRegisterDistinctNeverDeduplicates(t *testing.T) {
	reg := New("list", "l", Distinct[*level])

	a := reg.Register(&level{items: []string{"%1."}}, "")
	b := reg.Register(&level{items: []string{"%1."}}, "")

	if reg.Index(a) == reg.Index(b) {
		t.Fatalf("distinct registry reused index %d", reg.Index(a))
	}
	if a != "l1" || b != "l2" {
		t.Errorf("generated aliases = %q, %q, want l1, l2", a, b)
	}
}

func TestRegisterGeneratedAliasSkipsTaken(t *testing.T) {
	reg := New("font", "f", Comparable[string])
	reg.Register("Arial", "f2")
	got := reg.Register("Courier", "")
	if got != "f3" {
		t.Errorf("generated alias = %q, want f3", got)
	}
	// equal value without alias returns primary alias
	if again := reg.Register("Arial", ""); again != "f2" {
		t.Errorf("Register(existing) = %q, want f2", again)
	}
}

func TestRegisterOverwriteKeepsIndex(t *testing.T) {
	reg := New("variable", "v", Comparable[string])
	reg.Register("one", "a")
	reg.Register("two", "b")
	reg.Register("three", "a")

	e, err := reg.Get("a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if e.Index != 0 || e.Value != "three" {
		t.Errorf("Get(a) = %+v, want index 0 value three", e)
	}
}

func TestRegisterOverwriteSharedAlias(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantIndex int
		wantLen   int
	}{
		{"new value", 2, 2, 3},
		{"value of other entry", 5, 1, 2},
		{"same value", 1, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New("number", "n", Comparable[int])
			reg.Register(1, "red")
			reg.Register(5, "five")
			reg.Register(1, "accent")

			reg.Register(tt.value, "accent")

			if e := reg.MustGet("red"); e.Index != 0 || e.Value != 1 {
				t.Errorf("red = %+v, must stay untouched", e)
			}
			e := reg.MustGet("accent")
			if e.Index != tt.wantIndex || e.Value != tt.value {
				t.Errorf("accent = %+v, want index %d value %d", e, tt.wantIndex, tt.value)
			}
			if reg.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", reg.Len(), tt.wantLen)
			}
		})
	}
}

func TestRegisterOverwritePrimaryAlias(t *testing.T) {
	reg := New("number", "n", Comparable[int])
	reg.Register(1, "red")
	reg.Register(1, "accent")
	reg.Register(7, "red")

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() = %+v, want two entries", entries)
	}
	if entries[0].Alias != "accent" || entries[0].Value != 1 {
		t.Errorf("entry 0 = %+v, want accent with value 1", entries[0])
	}
	if entries[1].Alias != "red" || entries[1].Value != 7 {
		t.Errorf("entry 1 = %+v, want red with value 7", entries[1])
	}
}

func TestGetNotFound(t *testing.T) {
	reg := New("style", "s", Comparable[string])
	_, err := reg.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Alias != "missing" || nf.Registry != "style" {
		t.Errorf("unexpected error details: %#v", err)
	}
	if reg.Has("missing") || reg.Index("missing") != -1 {
		t.Error("Has/Index report unknown alias")
	}
}

func TestEntriesOrder(t *testing.T) {
	reg := New("color", "c", Comparable[rgb])
	reg.Register(rgb{1, 1, 1}, "x")
	reg.Register(rgb{2, 2, 2}, "y")
	reg.Register(rgb{1, 1, 1}, "z")

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(entries))
	}
	if entries[0].Alias != "x" || entries[1].Alias != "y" {
		t.Errorf("Entries() = %+v", entries)
	}
	if got := reg.Aliases(); len(got) != 3 || got[2] != "z" {
		t.Errorf("Aliases() = %v", got)
	}
}

func TestCopyFromIsDeep(t *testing.T) {
	src := New("list", "l", Distinct[*level])
	src.Register(&level{items: []string{"a"}}, "first")
	src.Register(&level{items: []string{"b"}}, "second")

	dst := New[*level]("other", "x", Distinct[*level])
	dst.CopyFrom(src, func(l *level) *level {
		return &level{items: append([]string(nil), l.items...)}
	})

	if dst.Index("second") != 1 {
		t.Errorf("index not preserved: %d", dst.Index("second"))
	}
	e, _ := dst.Get("first")
	e.Value.items[0] = "changed"

	orig, _ := src.Get("first")
	if orig.Value.items[0] != "a" {
		t.Error("copy shares data with source")
	}

	src.Register(&level{}, "third")
	if dst.Has("third") {
		t.Error("copy shares alias map with source")
	}
}
