package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"rtdoc/common"
	"rtdoc/config"
	"rtdoc/model"
)

// NameValues are made available to output name template.
type NameValues struct {
	Context    string
	Title      string
	Subject    string
	Author     string
	Company    string
	Category   string
	Keywords   []string
	Created    string
	Format     string
	SourceFile string
}

func nameValues(doc *model.Document, src string, format common.OutputFmt) NameValues {
	info := doc.Info
	v := NameValues{
		Context:    string(config.OutputNameTemplateFieldName),
		Title:      info.Title,
		Subject:    info.Subject,
		Author:     info.Author,
		Company:    info.Company,
		Category:   info.Category,
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}
	for _, k := range strings.FieldsFunc(info.Keywords, func(r rune) bool { return r == ',' || r == ';' }) {
		if k = strings.TrimSpace(k); k != "" {
			v.Keywords = append(v.Keywords, k)
		}
	}
	if !info.Created.IsZero() {
		v.Created = info.Created.Format("2006-01-02")
	}
	return v
}

// ExpandNameTemplate executes output name template for the document.
func ExpandNameTemplate(doc *model.Document, tmplText, src string, format common.OutputFmt) (string, error) {
	tmpl, err := template.New(string(config.OutputNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", config.OutputNameTemplateFieldName, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, nameValues(doc, src, format)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OutputPath returns path of the rendered document inside directory dst.
// Without template (or when its expansion fails or is empty) name of the
// source description is used. Template result may contain subdirectories,
// every path segment is cleaned and, when requested, transliterated.
func OutputPath(doc *model.Document, src, dst string, format common.OutputFmt, cfg *config.DocumentConfig) (string, error) {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if cfg.OutputNameTemplate == "" {
		return filepath.Join(dst, cleanPathSegment(name, cfg.FileNameTransliterate)+format.Ext()), nil
	}

	expanded, err := ExpandNameTemplate(doc, cfg.OutputNameTemplate, src, format)
	if err != nil {
		return filepath.Join(dst, cleanPathSegment(name, cfg.FileNameTransliterate)+format.Ext()), err
	}
	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		return filepath.Join(dst, cleanPathSegment(name, cfg.FileNameTransliterate)+format.Ext()), nil
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dst)
	for _, s := range segments[:len(segments)-1] {
		parts = append(parts, cleanPathSegment(s, cfg.FileNameTransliterate))
	}
	parts = append(parts, cleanPathSegment(segments[len(segments)-1], cfg.FileNameTransliterate)+format.Ext())
	return filepath.Join(parts...), nil
}

// splitPath returns non-empty path segments, "." and ".." are dropped so the
// result never leaves the destination directory.
func splitPath(path string) []string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == os.PathSeparator })
	return slices.DeleteFunc(segments, func(s string) bool { return s == "." || s == ".." })
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(strings.TrimSpace(segment))
}
