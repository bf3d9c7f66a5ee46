package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rtdoc/archive"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "report.zip"))
	if err != nil {
		t.Fatalf("failed to create report file: %v", err)
	}
	return &Report{entries: make(map[string]entry), file: f}
}

func TestReportClose_PacksEverything(t *testing.T) {
	r := newTestReport(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(t.TempDir(), "source.yaml")
	if err := os.WriteFile(file, []byte("version: 1"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("work", dir)
	r.Store("source", file)
	r.Store("missing", filepath.Join(dir, "nope"))
	r.StoreData("config/actual.yaml", []byte("data"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(r.Name())
	if err != nil {
		t.Fatal(err)
	}
	parts, err := archive.ReadAll(data)
	if err != nil {
		t.Fatalf("report is not a valid archive: %v", err)
	}
	want := map[string]string{
		"work/sub/a.txt":     "a",
		"source":             "version: 1",
		"config/actual.yaml": "data",
	}
	for name, content := range want {
		if got := string(parts[name]); got != content {
			t.Errorf("%s = %q, want %q", name, got, content)
		}
	}
	if _, ok := parts["missing"]; ok {
		t.Error("absent file must be skipped")
	}
	manifest := string(parts["MANIFEST"])
	for _, name := range []string{"work", "source", "missing", "config/actual.yaml"} {
		if !strings.Contains(manifest, "\t"+name+"\t") {
			t.Errorf("manifest does not list %s:\n%s", name, manifest)
		}
	}
}

func TestReportStore_Overwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/tmp/a")
	r.Store("a", "/tmp/a")

	defer func() {
		if recover() == nil {
			t.Error("storing different path under the same name must panic")
		}
	}()
	r.Store("a", "/tmp/b")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("c", nil)
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report has no name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
