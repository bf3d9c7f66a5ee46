// Package render is the single entry point turning a document model into
// bytes of the requested format.
package render

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"rtdoc/common"
	"rtdoc/docx"
	"rtdoc/model"
	"rtdoc/rtf"
	"rtdoc/utils/images"
	"rtdoc/validate"
)

// Options select output format and carry document level values emitters
// use when the document itself does not provide them.
type Options struct {
	Format common.OutputFmt
	// SkipValidate renders document without checking it first.
	SkipValidate bool

	Generator string
	Creator   string
	Title     string
	Subject   string
	Created   time.Time
	Modified  time.Time

	// FixZip rewrites archive based formats without data descriptors.
	FixZip   bool
	Pictures images.Options

	Log *zap.Logger
}

// Render validates the document (unless told otherwise) and serializes it.
// Validation failure is returned as is, so errors.Is(err,
// validate.ErrInvalid) holds.
func Render(doc *model.Document, opts Options) ([]byte, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("render")

	if !opts.SkipValidate {
		advisories, err := validate.Check(doc, log)
		if err != nil {
			return nil, err
		}
		log.Debug("Document validated", zap.Int("advisories", len(advisories)))
	}

	start := time.Now()
	var (
		out []byte
		err error
	)
	switch opts.Format {
	case common.OutputFmtRtf:
		out, err = rtf.Render(doc, rtf.Options{
			Generator: opts.Generator,
			Creator:   opts.Creator,
			Title:     opts.Title,
			Subject:   opts.Subject,
			Created:   opts.Created,
			Modified:  opts.Modified,
			Pictures:  opts.Pictures,
		}, log)
	case common.OutputFmtDocx:
		out, err = docx.Render(doc, docx.Options{
			Generator: opts.Generator,
			Creator:   opts.Creator,
			Title:     opts.Title,
			Subject:   opts.Subject,
			Created:   opts.Created,
			Modified:  opts.Modified,
			Pictures:  opts.Pictures,
			FixZip:    opts.FixZip,
		}, log)
	default:
		return nil, fmt.Errorf("unsupported output format %s", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to render %s: %w", opts.Format, err)
	}
	log.Debug("Document rendered", zap.Stringer("format", opts.Format), zap.Int("size", len(out)), zap.Duration("elapsed", time.Since(start)))
	return out, nil
}
