package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	cli "github.com/urfave/cli/v3"

	"rtdoc/archive"
	"rtdoc/config"
	"rtdoc/state"
)

const simpleDescription = `
info:
  title: Simple
sections:
  - body:
      - paragraph:
          text: Hello
`

const invalidDescription = `
sections:
  - body:
      - paragraph:
          style: missing
          text: Hello
`

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = setupTestLogger(t)
	return ctx
}

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func runCommand(ctx context.Context, action cli.ActionFunc, args ...string) error {
	cmd := &cli.Command{
		Name:   "test",
		Action: action,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to"},
			&cli.BoolFlag{Name: "overwrite"},
		},
	}
	return cmd.Run(ctx, append([]string{"test"}, args...))
}

func TestRun_SingleFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "simple.yaml")
	writeTestFile(t, src, []byte(simpleDescription))
	dst := t.TempDir()

	ctx := testContext(t)
	if err := runCommand(ctx, Run, "--to", "docx", src, dst); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "simple.docx"))
	if err != nil {
		t.Fatalf("output was not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output is not a zip package")
	}

	// second run must not overwrite
	if err := runCommand(testContext(t), Run, "--to", "docx", src, dst); err == nil {
		t.Error("Run() expected error for existing output")
	}
	if err := runCommand(testContext(t), Run, "--to", "docx", "--overwrite", src, dst); err != nil {
		t.Errorf("Run() with overwrite error = %v", err)
	}
}

func TestRun_ConfiguredFormat(t *testing.T) {
	src := filepath.Join(t.TempDir(), "simple.yaml")
	writeTestFile(t, src, []byte(simpleDescription))
	dst := t.TempDir()

	if err := runCommand(testContext(t), Run, src, dst); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "simple.rtf"))
	if err != nil {
		t.Fatalf("output was not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte(`{\rtf1`)) {
		t.Errorf("output is not rtf: %q", data[:min(len(data), 16)])
	}
}

func TestRun_Directory(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.yaml"), []byte(simpleDescription))
	writeTestFile(t, filepath.Join(src, "sub", "b.yml"), []byte(simpleDescription))
	writeTestFile(t, filepath.Join(src, "notes.txt"), []byte("ignored"))
	dst := t.TempDir()

	if err := runCommand(testContext(t), Run, "--to", "rtf", src, dst); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, name := range []string{"a.rtf", filepath.Join("sub", "b.rtf")} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("%s was not written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dst, "notes.rtf")); err == nil {
		t.Error("non description file must be skipped")
	}
}

func TestRun_Bundle(t *testing.T) {
	var buf bytes.Buffer
	err := archive.Pack(&buf, []archive.Part{
		{Name: "docs/simple.yaml", Data: []byte(simpleDescription)},
		{Name: "docs/readme.txt", Data: []byte("ignored")},
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(t.TempDir(), "bundle.zip")
	writeTestFile(t, src, buf.Bytes())
	dst := t.TempDir()

	if err := runCommand(testContext(t), Run, "--to", "rtf", src, dst); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "docs", "simple.rtf")); err != nil {
		t.Errorf("bundle document was not rendered: %v", err)
	}
}

func TestRun_InvalidDocument(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bad.yaml")
	writeTestFile(t, src, []byte(invalidDescription))
	dst := t.TempDir()

	if err := runCommand(testContext(t), Run, src, dst); err == nil {
		t.Fatal("Run() expected error for invalid document")
	}
	if _, err := os.Stat(filepath.Join(dst, "bad.rtf")); err == nil {
		t.Error("invalid document must not be written")
	}

	// validation may be switched off in configuration
	ctx := testContext(t)
	state.EnvFromContext(ctx).Cfg.Document.Validate = false
	if err := runCommand(ctx, Run, src, dst); err != nil {
		t.Errorf("Run() without validation error = %v", err)
	}
}

func TestRun_NoSource(t *testing.T) {
	if err := runCommand(testContext(t), Run); err == nil {
		t.Error("Run() expected error without source")
	}
	if err := runCommand(testContext(t), Run, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Run() expected error for absent source")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "good.yaml"), []byte(simpleDescription))

	if err := runCommand(testContext(t), Check, dir); err != nil {
		t.Errorf("Check() error = %v", err)
	}

	writeTestFile(t, filepath.Join(dir, "bad.yaml"), []byte(invalidDescription))
	writeTestFile(t, filepath.Join(dir, "broken.yaml"), []byte("unknown: field\n"))
	if err := runCommand(testContext(t), Check, dir); err == nil {
		t.Error("Check() expected error for invalid documents")
	}
}
