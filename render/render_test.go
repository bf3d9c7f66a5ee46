package render

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"rtdoc/common"
	"rtdoc/config"
	"rtdoc/model"
	"rtdoc/validate"
)

func setupTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
}

func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.SetInfo(model.Info{
		Title:    "Annual: Report?",
		Author:   "Jane Doe",
		Keywords: "alpha, beta;gamma",
		Created:  time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
	})
	doc.AddSection(model.SectionFormat{}).Add(model.NewParagraph(model.ParagraphFormat{}, "Hello"))
	return doc
}

func TestRender_Formats(t *testing.T) {
	tests := []struct {
		format common.OutputFmt
		prefix []byte
	}{
		{common.OutputFmtRtf, []byte(`{\rtf1`)},
		{common.OutputFmtDocx, []byte("PK")},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			out, err := Render(sampleDocument(), Options{Format: tt.format, Generator: "rtdoc", Log: setupTestLogger(t)})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.HasPrefix(out, tt.prefix) {
				t.Errorf("output starts with %q, want %q", out[:min(len(out), 8)], tt.prefix)
			}
		})
	}
}

func TestRender_ValidationFailure(t *testing.T) {
	doc := sampleDocument()
	doc.Sections[0].Add(model.NewParagraph(model.ParagraphFormat{Style: "missing"}, "x"))

	_, err := Render(doc, Options{Format: common.OutputFmtRtf, Log: setupTestLogger(t)})
	if !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("Render() error = %v, want validation error", err)
	}

	if _, err := Render(doc, Options{Format: common.OutputFmtRtf, SkipValidate: true, Log: setupTestLogger(t)}); err != nil {
		t.Errorf("Render() without validation error = %v", err)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	if _, err := Render(sampleDocument(), Options{Format: common.OutputFmt(42)}); err == nil {
		t.Error("Render() expected error for unknown format")
	}
}

func TestExpandNameTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"fields", "{{ .Author }} - {{ .Title }}", "Jane Doe - Annual: Report?"},
		{"created", "{{ .Created }}", "2024-05-06"},
		{"keywords", `{{ join "+" .Keywords }}`, "alpha+beta+gamma"},
		{"source", "{{ .SourceFile }}.{{ .Format }}", "report.docx"},
		{"sprig", "{{ .Author | upper }}", "JANE DOE"},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandNameTemplate(sampleDocument(), tt.tmpl, "/in/report.yaml", common.OutputFmtDocx)
			if err != nil {
				t.Fatalf("ExpandNameTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandNameTemplate() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ExpandNameTemplate(sampleDocument(), "{{ .Author", "a.yaml", common.OutputFmtRtf); err == nil {
		t.Error("ExpandNameTemplate() expected parse error")
	}
}

func TestOutputPath(t *testing.T) {
	dst := filepath.Join("out", "dir")
	tests := []struct {
		name string
		cfg  config.DocumentConfig
		want string
	}{
		{"default", config.DocumentConfig{}, filepath.Join(dst, "report.rtf")},
		{"template", config.DocumentConfig{OutputNameTemplate: "{{ .Author }}"}, filepath.Join(dst, "Jane Doe.rtf")},
		{"subdirectories", config.DocumentConfig{OutputNameTemplate: "{{ .Author }}/{{ .Created }}"}, filepath.Join(dst, "Jane Doe", "2024-05-06.rtf")},
		{"transliterate", config.DocumentConfig{OutputNameTemplate: "{{ .Author }}", FileNameTransliterate: true}, filepath.Join(dst, "jane-doe.rtf")},
		{"never leaves destination", config.DocumentConfig{OutputNameTemplate: "../../{{ .Created }}"}, filepath.Join(dst, "2024-05-06.rtf")},
		{"empty expansion", config.DocumentConfig{OutputNameTemplate: "{{ .Subject }}"}, filepath.Join(dst, "report.rtf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputPath(sampleDocument(), "/in/report.yaml", dst, common.OutputFmtRtf, &tt.cfg)
			if err != nil {
				t.Fatalf("OutputPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputPath_BadTemplate(t *testing.T) {
	cfg := config.DocumentConfig{OutputNameTemplate: "{{ .Nope }}"}
	got, err := OutputPath(sampleDocument(), "report.yaml", "out", common.OutputFmtDocx, &cfg)
	if err == nil {
		t.Error("OutputPath() expected error")
	}
	if got != filepath.Join("out", "report.docx") {
		t.Errorf("OutputPath() fallback = %q", got)
	}
}

func TestDump(t *testing.T) {
	doc := sampleDocument()
	doc.AddColor(model.Color{R: 255}, "red")
	doc.Sections[0].Add(&model.Table{
		Columns: []model.Column{{}},
		Rows: []*model.Row{{Cells: []*model.Cell{{
			Content: []model.Element{model.NewParagraph(model.ParagraphFormat{}, "cell")},
		}}}},
	})

	out := Dump(doc)
	for _, want := range []string{
		"document: charset=ansi codepage=1252",
		"color 0 [red]: #FF0000",
		"section 0",
		"table columns=1 rows=1",
		`text: "Hello"`,
		`text: "cell"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() does not contain %q:\n%s", want, out)
		}
	}
}
