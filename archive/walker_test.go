package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testParts() []Part {
	return []Part{
		{Name: "[Content_Types].xml", Data: []byte("<Types/>")},
		{Name: "_rels/.rels", Data: []byte("<Relationships/>")},
		{Name: "word/document.xml", Data: []byte("<w:document/>")},
		{Name: "word/media/image1.png", Data: []byte{0x89, 'P', 'N', 'G'}, Store: true},
	}
}

func packToFile(t *testing.T, parts []Part, fix bool) string {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := Pack(buf, parts, fix); err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	name := filepath.Join(t.TempDir(), "test.zip")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}
	return name
}

func TestPackOrderAndContent(t *testing.T) {
	for _, fix := range []bool{false, true} {
		name := packToFile(t, testParts(), fix)

		var visited []string
		err := Walk(name, "", func(archive string, file *zip.File) error {
			if archive != name {
				t.Errorf("archive = %s, want %s", archive, name)
			}
			visited = append(visited, file.Name)
			if file.Name == "word/media/image1.png" && file.Method != zip.Store {
				t.Errorf("fix=%v: media must be stored, method %d", fix, file.Method)
			}
			if fix && file.Flags&0x8 != 0 {
				t.Errorf("fix=%v: %s still has data descriptor", fix, file.Name)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		want := []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/media/image1.png"}
		if len(visited) != len(want) {
			t.Fatalf("fix=%v: visited %v, want %v", fix, visited, want)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Errorf("fix=%v: entry %d = %s, want %s", fix, i, visited[i], want[i])
			}
		}
	}
}

func TestPackIsDeterministic(t *testing.T) {
	a, b := new(bytes.Buffer), new(bytes.Buffer)
	if err := Pack(a, testParts(), false); err != nil {
		t.Fatal(err)
	}
	if err := Pack(b, testParts(), false); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("same parts produced different archives")
	}
}

func TestPackRejects(t *testing.T) {
	tests := []struct {
		name  string
		parts []Part
		dup   bool
	}{
		{"duplicate", []Part{{Name: "a.xml"}, {Name: "a.xml"}}, true},
		{"traversal", []Part{{Name: "../a.xml"}}, false},
		{"absolute", []Part{{Name: "/a.xml"}}, false},
		{"empty", []Part{{Name: ""}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Pack(new(bytes.Buffer), tt.parts, false)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrDuplicate) != tt.dup {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Pack(buf, testParts(), true); err != nil {
		t.Fatal(err)
	}
	files, err := ReadAll(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got := string(files["word/document.xml"]); got != "<w:document/>" {
		t.Errorf("document.xml = %q", got)
	}
	if len(files) != 4 {
		t.Errorf("got %d files, want 4", len(files))
	}
}

func TestWalkPrefix(t *testing.T) {
	name := packToFile(t, testParts(), false)

	tests := []struct {
		prefix string
		want   int
	}{
		{"word/", 2},
		{"word/media/", 1},
		{"", 4},
		{"Word/", 0},
		{"nonexistent/", 0},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			var n int
			err := Walk(name, tt.prefix, func(string, *zip.File) error {
				n++
				return nil
			})
			if err != nil {
				t.Errorf("Walk() error = %v", err)
			}
			if n != tt.want {
				t.Errorf("visited %d files, want %d", n, tt.want)
			}
		})
	}
}

func TestWalkStopsOnError(t *testing.T) {
	name := packToFile(t, testParts(), false)
	stop := errors.New("stop")

	var n int
	err := Walk(name, "", func(string, *zip.File) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if n != 2 {
		t.Errorf("visited %d files, want 2", n)
	}
}

func TestWalkInvalidArchive(t *testing.T) {
	if err := Walk("/nonexistent/file.zip", "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for nonexistent file")
	}
	if err := WalkBytes([]byte("not a zip file"), "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for invalid zip data")
	}
}

func TestWalkUnsafeEntry(t *testing.T) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	if _, err := w.Create("../evil.txt"); err != nil {
		t.Fatal(err)
	}
	w.Close()

	err := WalkBytes(buf.Bytes(), "", func(string, *zip.File) error { return nil })
	if err == nil {
		t.Error("expected error for path traversal entry")
	}
}
