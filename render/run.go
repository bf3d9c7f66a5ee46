package render

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/h2non/filetype"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rtdoc/archive"
	"rtdoc/common"
	"rtdoc/loader"
	"rtdoc/state"
	"rtdoc/utils/images"
	"rtdoc/validate"
)

// Run is "render" command action. SOURCE is a description file, a directory
// or a zip bundle holding descriptions with their pictures.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("run")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Document.Format
	if cmd.IsSet("to") {
		if format, err = common.ParseOutputFmt(cmd.String("to")); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Cfg.Document.Format), zap.Error(err))
			format = env.Cfg.Document.Format
		}
	}

	if err := env.LoadStylesheet(); err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	failed := 0
	err = walkSources(ctx, src, log, func(path, rel string) error {
		if err := processDescription(ctx, path, rel, dst, format, log); err != nil {
			failed++
			log.Error("Unable to process document description", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("unable to render %d document(s)", failed)
	}
	return nil
}

// Check is "check" command action. It reports every violation and advisory
// of each document found under SOURCE.
func Check(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if err := env.LoadStylesheet(); err != nil {
		return err
	}

	checked, invalid := 0, 0
	err = walkSources(ctx, src, log, func(path, rel string) error {
		checked++
		doc, err := loader.LoadFile(path, env.Stylesheet, log)
		if err != nil {
			invalid++
			log.Error("Unable to load document description", zap.String("file", rel), zap.Error(err))
			return nil
		}
		advisories, err := validate.CheckAll(doc, log)
		for _, a := range advisories {
			log.Info("Advisory", zap.String("file", rel), zap.String("path", a.Path), zap.String("advice", a.Message))
		}
		if err != nil {
			invalid++
			for _, e := range multierr.Errors(err) {
				log.Error("Violation", zap.String("file", rel), zap.Error(e))
			}
			return nil
		}
		log.Info("Document is valid", zap.String("file", rel), zap.Int("advisories", len(advisories)))
		return nil
	})
	if err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d document(s) are invalid", invalid, checked)
	}
	return nil
}

// walkSources calls fn for every description found at src. rel is the path
// of the description relative to src (base name for a single file).
func walkSources(ctx context.Context, src string, log *zap.Logger, fn func(path, rel string) error) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	switch {
	case fi.IsDir():
		return walkDir(ctx, src, log, fn)
	case !fi.Mode().IsRegular():
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	bundle, err := isBundle(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if !bundle {
		return fn(src, filepath.Base(src))
	}

	tmp, err := os.MkdirTemp("", "rtdoc-bundle-")
	if err != nil {
		return fmt.Errorf("unable to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	if err := extract(src, tmp); err != nil {
		return fmt.Errorf("unable to unpack bundle: %w", err)
	}
	return walkDir(ctx, tmp, log, fn)
}

func walkDir(ctx context.Context, dir string, log *zap.Logger, fn func(path, rel string) error) error {
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() || !isDescription(path) {
			return nil
		}
		count++
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return fn(path, rel)
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

func isDescription(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func isBundle(path string) (bool, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return false, err
	}
	return kind.Extension == "zip", nil
}

// extract unpacks every file of the archive under dir.
func extract(path, dir string) error {
	return archive.Walk(path, "", func(_ string, f *zip.File) error {
		target := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		r, err := f.Open()
		if err != nil {
			return err
		}
		defer r.Close()

		w, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, r); err != nil {
			return multierr.Append(err, w.Close())
		}
		return w.Close()
	})
}

// processDescription loads, renders and writes a single document. rel keeps
// directory structure of the source under dst.
func processDescription(ctx context.Context, path, rel, dst string, format common.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)
	cfg := &env.Cfg.Document

	var outputName string
	log.Info("Rendering starting", zap.String("from", rel))
	defer func(start time.Time) {
		// picture decoders may panic on broken data, other documents still
		// have to be processed
		if r := recover(); r != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
		} else if rerr == nil {
			log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	doc, err := loader.LoadFile(path, env.Stylesheet, log)
	if err != nil {
		return err
	}

	outputName, err = OutputPath(doc, path, filepath.Join(dst, filepath.Dir(rel)), format, cfg)
	if err != nil {
		log.Warn("Unable to use output name template, using source name", zap.Error(err))
	}

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	var stamp time.Time
	if fi, err := os.Stat(path); err == nil {
		stamp = fi.ModTime().UTC()
	}
	data, err := Render(doc, Options{
		Format:       format,
		SkipValidate: !cfg.Validate,
		Generator:    cfg.Generator,
		Creator:      cfg.Creator,
		Title:        strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Created:      stamp,
		Modified:     stamp,
		FixZip:       cfg.FixZip,
		Pictures: images.Options{
			MaxSize:     cfg.Pictures.MaxSize,
			PreferJPEG:  cfg.Pictures.PreferJPEG,
			JPEGQuality: cfg.Pictures.JPEGQuality,
			Optimize:    cfg.Pictures.Optimize,
		},
		Log: log,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store everything needed to reproduce the result
	if env.Rpt != nil {
		name := filepath.ToSlash(rel)
		// bundles are unpacked into temporary directory which is gone by
		// the time report is finalized
		if src, err := os.ReadFile(path); err == nil {
			env.Rpt.StoreData("source/"+name, src)
		}
		env.Rpt.StoreData("model/"+name+".txt", []byte(Dump(doc)))
		env.Rpt.Store("result/"+name+format.Ext(), outputName)
	}
	return nil
}
