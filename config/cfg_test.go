package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rtdoc/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	doc := cfg.Document
	if doc.Format != common.OutputFmtRtf || !doc.Validate || doc.FixZip {
		t.Errorf("unexpected document defaults: %+v", doc)
	}
	if doc.Generator != "rtdoc" {
		t.Errorf("Generator = %q", doc.Generator)
	}
	if doc.Pictures.JPEGQuality != 90 {
		t.Errorf("JPEGQuality = %d", doc.Pictures.JPEGQuality)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  format: docx
  fix_zip: true
  output_name_template: "{{ .Author }}/{{ .Title }}"
  pictures:
    max_size: 2048
    prefer_jpeg: true
    jpeg_quality: 75
    optimize: true
logging:
  console:
    level: debug
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	doc := cfg.Document
	if doc.Format != common.OutputFmtDocx || !doc.FixZip {
		t.Errorf("document values were not loaded: %+v", doc)
	}
	if doc.OutputNameTemplate != "{{ .Author }}/{{ .Title }}" {
		t.Errorf("output name template must not be expanded, got %q", doc.OutputNameTemplate)
	}
	if doc.Pictures != (PicturesConfig{MaxSize: 2048, PreferJPEG: true, JPEGQuality: 75, Optimize: true}) {
		t.Errorf("Pictures = %+v", doc.Pictures)
	}
	if !doc.Validate || doc.Generator != "rtdoc" {
		t.Error("values absent from the file must keep defaults")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "version: 1\ndocument:\n  colour: red\n"},
		{"unknown format", "version: 1\ndocument:\n  format: pdf\n"},
		{"wrong version", "version: 2\n"},
		{"jpeg quality", "version: 1\ndocument:\n  pictures:\n    jpeg_quality: 10\n"},
		{"log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfiguration() expected error")
			}
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error for absent file")
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Error("default configuration must carry version")
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Document.Format = common.OutputFmtDocx
	out, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(out), "format: docx") {
		t.Errorf("dumped configuration does not carry format:\n%s", out)
	}

	// dumped configuration must be loadable
	path := writeConfig(t, string(out))
	again, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() of dumped config error = %v", err)
	}
	if again.Document != cfg.Document {
		t.Errorf("document section changed after dump: %+v", again.Document)
	}
}

func TestCleanFileName(t *testing.T) {
	if got := CleanFileName(""); got != "_bad_file_name_" {
		t.Errorf("CleanFileName(\"\") = %q", got)
	}
	in := "a" + string(os.PathSeparator) + "b"
	if got := CleanFileName(in); strings.ContainsRune(got, os.PathSeparator) {
		t.Errorf("CleanFileName(%q) = %q", in, got)
	}
}
