package state

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rtdoc/archive"
	"rtdoc/config"
)

func TestEnvFromContext(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env.start.IsZero() {
		t.Error("start time not set")
	}
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() must return the same environment")
	}

	// derived contexts share environment
	child, cancel := context.WithCancel(ctx)
	defer cancel()
	if EnvFromContext(child) != env {
		t.Error("derived context lost environment")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for context without environment")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	time.Sleep(10 * time.Millisecond)
	if up := env.Uptime(); up < 10*time.Millisecond || up > 10*time.Second {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("through standard logger")
	env.RestoreStdLog()

	if n := logs.FilterMessage("through standard logger").Len(); n != 1 {
		t.Errorf("redirected entries = %d, want 1", n)
	}

	// without logger both calls are no-ops
	empty := &LocalEnv{}
	empty.RedirectStdLog()
	empty.RestoreStdLog()
}

func TestLocalEnv_LoadStylesheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.css")
	if err := os.WriteFile(path, []byte("p { font-weight: bold }"), 0644); err != nil {
		t.Fatal(err)
	}

	env := &LocalEnv{Cfg: &config.Config{}}
	if err := env.LoadStylesheet(); err != nil || env.Stylesheet != nil {
		t.Fatalf("nothing configured, got %q, %v", env.Stylesheet, err)
	}

	env.Cfg.Document.StylesheetPath = path
	if err := env.LoadStylesheet(); err != nil {
		t.Fatalf("LoadStylesheet() error = %v", err)
	}
	if string(env.Stylesheet) != "p { font-weight: bold }" {
		t.Errorf("Stylesheet = %q", env.Stylesheet)
	}

	env.Cfg.Document.StylesheetPath = filepath.Join(t.TempDir(), "absent.css")
	if err := env.LoadStylesheet(); err == nil {
		t.Error("expected error for absent stylesheet")
	}
}

func TestLocalEnv_StylesheetInReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.css")
	if err := os.WriteFile(path, []byte("h1 { font-size: 20pt }"), 0644); err != nil {
		t.Fatal(err)
	}

	rc := config.ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	rpt, err := rc.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	env := &LocalEnv{Cfg: &config.Config{}, Rpt: rpt}
	env.Cfg.Document.StylesheetPath = path
	if err := env.LoadStylesheet(); err != nil {
		t.Fatalf("LoadStylesheet() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(rpt.Name())
	if err != nil {
		t.Fatal(err)
	}
	parts, err := archive.ReadAll(data)
	if err != nil {
		t.Fatalf("report is not a valid archive: %v", err)
	}
	if got := string(parts["stylesheet.css"]); got != "h1 { font-size: 20pt }" {
		t.Errorf("stylesheet.css = %q", got)
	}
}
