// Package rtf renders document model as Rich Text Format: a single stream of
// control words, groups and escaped text.
package rtf

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"rtdoc/layout"
	"rtdoc/model"
	"rtdoc/style"
	"rtdoc/utils/images"
)

// Options control rendering. Document info fields take precedence over
// Title, Subject and Creator, zero timestamps are not written.
type Options struct {
	Generator string
	Creator   string
	Title     string
	Subject   string
	Created   time.Time
	Modified  time.Time
	Pictures  images.Options
}

// renderer keeps per-render state, nothing survives between Render calls.
type renderer struct {
	doc  *model.Document
	opts Options
	log  *zap.Logger
	w    *writer

	res      *style.Resolver
	lists    *layout.ListInstances
	counters map[int]*listCounter

	section   int // index of the section being rendered
	available int // text width of the current section
}

// Render produces RTF text of the document. The model is expected to be
// valid, see validate package.
func Render(doc *model.Document, opts Options, log *zap.Logger) ([]byte, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &renderer{
		doc:      doc,
		opts:     opts,
		log:      log.Named("rtf"),
		w:        newWriter(codePageEncoding(codePage(doc))),
		res:      style.NewResolver(doc.Styles),
		lists:    layout.NumberLists(doc),
		counters: make(map[int]*listCounter),
	}

	r.header()
	if err := r.sections(); err != nil {
		return nil, err
	}
	r.w.close()

	if !r.w.balanced() {
		return nil, &model.StructuralError{Where: "rtf", Detail: fmt.Sprintf("unbalanced groups, depth %d", r.w.depth)}
	}
	r.log.Debug("RTF rendered", zap.Int("sections", len(doc.Sections)), zap.Int("bytes", len(r.w.bytes())))
	return r.w.bytes(), nil
}

// codePage returns code page used for non unicode placeholders.
func codePage(doc *model.Document) int {
	switch doc.Charset {
	case model.CharsetMac:
		return 10000
	case model.CharsetPc:
		return 437
	case model.CharsetPca:
		return 850
	}
	return doc.CodePage
}

func (r *renderer) sections() error {
	secs := r.doc.Sections
	if len(secs) == 0 {
		secs = []*model.Section{{}}
	}
	for i, s := range secs {
		r.section = i
		if i > 0 {
			r.w.word("sect")
		}
		if err := r.renderSection(s); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

func (r *renderer) renderSection(s *model.Section) error {
	w := r.w
	f := r.res.ResolveSection(s)
	r.available = layout.AvailableWidth(r.doc, f)

	w.word("sectd")
	if idx := r.doc.Styles.Index(s.Style); idx >= 0 {
		w.num("ds", idx)
	}
	if len(s.Header.First) > 0 || len(s.Footer.First) > 0 {
		f.TitlePage = true
	}
	r.sectionControls(f)

	if err := r.headerFooter("header", s.Header); err != nil {
		return err
	}
	if err := r.headerFooter("footer", s.Footer); err != nil {
		return err
	}

	body := model.Flatten(s.Body)
	if len(body) == 0 {
		body = []model.Element{&model.Paragraph{}}
	}
	if _, ok := body[len(body)-1].(*model.Table); ok {
		// section break needs a paragraph after the last row
		body = append(body, &model.Paragraph{})
	}
	return r.elements(body, scope{})
}

func (r *renderer) headerFooter(name string, hf model.HeaderFooter) error {
	odd := name
	if len(hf.Even) > 0 {
		odd = name + "r"
	}
	for _, part := range []struct {
		name     string
		elements []model.Element
	}{
		{name + "f", hf.First},
		{odd, hf.Odd},
		{name + "l", hf.Even},
	} {
		if len(part.elements) == 0 {
			continue
		}
		r.w.open()
		r.w.word(part.name)
		if err := r.elements(model.Flatten(part.elements), scope{}); err != nil {
			return fmt.Errorf("%s: %w", part.name, err)
		}
		r.w.close()
	}
	return nil
}

// scope is traversal context of an element.
type scope struct {
	depth int // table nesting, 0 outside tables
}

func (r *renderer) elements(elements []model.Element, sc scope) error {
	for _, e := range elements {
		if err := r.element(e, sc, "par"); err != nil {
			return err
		}
	}
	return nil
}

// element renders single element, paragraphs are ended with term.
func (r *renderer) element(e model.Element, sc scope, term string) error {
	switch v := e.(type) {
	case *model.Paragraph:
		return r.paragraph(v, sc, paraEnd{term: term})
	case *model.Table:
		return r.table(v, sc, r.available)
	case *model.Container:
		return r.elements(model.Flatten(v.Content), sc)
	case model.ColumnBreak:
		r.w.word("pard")
		r.w.word("plain")
		r.w.word("column")
		r.w.word(term)
		return nil
	default:
		return model.UnknownElement("rtf body", e)
	}
}
