// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"rtdoc/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by render and check subcommands
	Overwrite  bool
	Stylesheet []byte

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// LoadStylesheet reads stylesheet configured for all documents, if any, and
// stores it in the debug report.
func (e *LocalEnv) LoadStylesheet() error {
	if e.Cfg == nil || e.Cfg.Document.StylesheetPath == "" {
		return nil
	}
	data, err := os.ReadFile(e.Cfg.Document.StylesheetPath)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet from %q: %w", e.Cfg.Document.StylesheetPath, err)
	}
	e.Stylesheet = data
	e.Rpt.Store("stylesheet.css", e.Cfg.Document.StylesheetPath)
	return nil
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
