package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"rtdoc/layout"
	"rtdoc/model"
)

func (r *renderer) body() error {
	body := w(r.document.root, "body")

	secs := r.doc.Sections
	if len(secs) == 0 {
		secs = []*model.Section{{}}
	}
	for i, s := range secs {
		r.section = i
		f := r.res.ResolveSection(s)
		r.available = layout.AvailableWidth(r.doc, f)

		elements := model.Flatten(s.Body)
		if len(elements) == 0 {
			elements = []model.Element{&model.Paragraph{}}
		}
		if _, ok := elements[len(elements)-1].(*model.Paragraph); !ok {
			// section properties are carried by the last paragraph
			elements = append(elements, &model.Paragraph{})
		}
		last, err := r.elements(body, elements, 0, r.available)
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}

		sectPr, err := r.sectionProperties(s, f)
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		if i == len(secs)-1 {
			body.AddChild(sectPr)
			continue
		}
		pPr := last.SelectElement("w:pPr")
		if pPr == nil {
			pPr = etree.NewElement("w:pPr")
			last.InsertChildAt(0, pPr)
		}
		pPr.AddChild(sectPr)
	}
	return nil
}

var breakValues = map[model.SectionBreak]string{
	model.SectionBreakPage:   "nextPage",
	model.SectionBreakNone:   "continuous",
	model.SectionBreakColumn: "nextColumn",
	model.SectionBreakEven:   "evenPage",
	model.SectionBreakOdd:    "oddPage",
}

var vAlignValues = map[model.VAlign]string{
	model.VAlignTop:    "top",
	model.VAlignCenter: "center",
	model.VAlignBottom: "bottom",
}

func (r *renderer) sectionProperties(s *model.Section, f model.SectionFormat) (*etree.Element, error) {
	sectPr := etree.NewElement("w:sectPr")
	if err := r.headerFooter(sectPr, "header", s.Header); err != nil {
		return nil, err
	}
	if err := r.headerFooter(sectPr, "footer", s.Footer); err != nil {
		return nil, err
	}

	val(sectPr, "type", breakValues[f.Break])

	g := r.doc.Geometry(f)
	size := w(sectPr, "pgSz")
	size.CreateAttr("w:w", strconv.Itoa(g.Width))
	size.CreateAttr("w:h", strconv.Itoa(g.Height))
	if g.Landscape {
		size.CreateAttr("w:orient", "landscape")
	}
	margins := w(sectPr, "pgMar")
	for _, m := range []struct {
		name  string
		value int
	}{
		{"w:top", g.MarginTop},
		{"w:right", g.MarginRight},
		{"w:bottom", g.MarginBottom},
		{"w:left", g.MarginLeft},
		{"w:header", g.HeaderDistance},
		{"w:footer", g.FooterDistance},
		{"w:gutter", g.Gutter},
	} {
		margins.CreateAttr(m.name, strconv.Itoa(m.value))
	}

	if f.PageNumberStart.IsSet() || f.PageNumberFormat.IsSet() {
		pg := w(sectPr, "pgNumType")
		if v, ok := f.PageNumberFormat.Get(); ok {
			pg.CreateAttr("w:fmt", numberFormatValues[v])
		}
		if v, ok := f.PageNumberStart.Get(); ok {
			pg.CreateAttr("w:start", strconv.Itoa(v))
		}
	}

	cols := w(sectPr, "cols")
	cols.CreateAttr("w:space", strconv.Itoa(g.ColumnSpacing))
	if g.Columns > 1 {
		cols.CreateAttr("w:num", strconv.Itoa(g.Columns))
		if f.ColumnLine {
			cols.CreateAttr("w:sep", "1")
		}
	}
	if f.VAlign != model.VAlignTop {
		val(sectPr, "vAlign", vAlignValues[f.VAlign])
	}
	if f.TitlePage || len(s.Header.First) > 0 || len(s.Footer.First) > 0 {
		w(sectPr, "titlePg")
	}
	return sectPr, nil
}

// headerFooter creates parts for every non-empty header or footer variant
// and references them from section properties.
func (r *renderer) headerFooter(sectPr *etree.Element, kind string, hf model.HeaderFooter) error {
	if len(hf.Even) > 0 {
		r.evenHeaders = true
	}
	for _, v := range []struct {
		typ      string
		elements []model.Element
	}{
		{"first", hf.First},
		{"default", hf.Odd},
		{"even", hf.Even},
	} {
		if len(v.elements) == 0 {
			continue
		}
		n := len(r.headers) + 1
		name := kind + strconv.Itoa(n) + ".xml"
		contentType, rel, root := ctHeader, relHeader, "w:hdr"
		if kind == "footer" {
			contentType, rel, root = ctFooter, relFooter, "w:ftr"
		}
		part := newContentPart("word/"+name, contentType, root)
		r.headers = append(r.headers, part)

		err := r.within(part, func() error {
			elements := model.Flatten(v.elements)
			if _, ok := elements[len(elements)-1].(*model.Paragraph); !ok {
				elements = append(elements, &model.Paragraph{})
			}
			_, err := r.elements(part.root, elements, 0, r.available)
			return err
		})
		if err != nil {
			return fmt.Errorf("%s %s: %w", v.typ, kind, err)
		}

		ref := w(sectPr, kind+"Reference")
		ref.CreateAttr("w:type", v.typ)
		ref.CreateAttr("r:id", r.document.rels.add(rel, name, false))
	}
	return nil
}

// elements renders block elements into parent and returns the last top level
// paragraph element. Depth is table nesting level, width is available to
// tables.
func (r *renderer) elements(parent *etree.Element, elements []model.Element, depth, width int) (*etree.Element, error) {
	var last *etree.Element
	for _, e := range elements {
		switch v := e.(type) {
		case *model.Paragraph:
			p, err := r.paragraph(parent, v, nil)
			if err != nil {
				return nil, err
			}
			last = p
		case *model.Table:
			if err := r.table(parent, v, depth, width); err != nil {
				return nil, err
			}
		case *model.Container:
			p, err := r.elements(parent, model.Flatten(v.Content), depth, width)
			if err != nil {
				return nil, err
			}
			if p != nil {
				last = p
			}
		case model.ColumnBreak:
			p := w(parent, "p")
			w(w(p, "r"), "br").CreateAttr("w:type", "column")
			last = p
		default:
			return nil, model.UnknownElement("docx body", e)
		}
	}
	return last, nil
}

// paragraph renders paragraph into parent. Lead adds content before the
// first run (note and comment marks).
func (r *renderer) paragraph(parent *etree.Element, p *model.Paragraph, lead func(p *etree.Element)) (*etree.Element, error) {
	el := w(parent, "p")

	para, char := r.res.ResolveParagraph(p.Format)
	pp := paraProps{style: r.styleID(p.Format.Style, model.StyleKindParagraph), format: para}
	if ref, ok := p.Format.List.Get(); ok {
		if e, err := r.doc.Lists.Get(ref.List); err == nil {
			if _, ok := e.Value.Level(ref.Level); ok {
				pp.num, pp.level = r.lists.Lookup(e.Index, r.section), ref.Level
			}
		}
	}
	var base model.CharFormat
	if pp.style != "" {
		base = r.res.StyleChar(p.Format.Style)
	}

	pPr := r.paraProperties(el, pp)
	if mark := char.Diff(base); !mark.IsEmpty() {
		if pPr == nil {
			pPr = w(el, "pPr")
		}
		r.runProperties(pPr, "", mark)
	}

	if lead != nil {
		lead(el)
	}
	for i, run := range p.Runs {
		if err := r.run(el, run, char, base); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
	}
	return el, nil
}

func (r *renderer) run(p *etree.Element, run *model.Run, paraChar, base model.CharFormat) error {
	rb := &runBuilder{
		r:      r,
		parent: p,
		style:  r.styleID(run.Style, model.StyleKindCharacter),
		props:  r.res.ResolveRun(paraChar, run).Diff(base),
	}

	var bookmark string
	if run.Bookmark != "" {
		r.bookmarkID++
		bookmark = strconv.Itoa(r.bookmarkID)
		el := w(p, "bookmarkStart")
		el.CreateAttr("w:id", bookmark)
		el.CreateAttr("w:name", r.doc.BookmarkName(run.Bookmark))
	}

	comment, cidx := r.comment(run.Comment)
	if comment != nil {
		w(p, "commentRangeStart").CreateAttr("w:id", strconv.Itoa(cidx))
	}
	if run.Link != nil {
		rb.parent = r.hyperlink(p, run.Link)
	}

	head, tail := run.Items, []model.Inline(nil)
	if comment != nil && comment.Scope == model.CommentScopeWord {
		head, tail = model.SplitFirstWord(run.Items)
	}
	if err := rb.items(head); err != nil {
		return err
	}
	if comment != nil && tail != nil {
		if err := r.commentReference(rb.parent, comment, cidx); err != nil {
			return err
		}
		comment = nil
		if err := rb.items(tail); err != nil {
			return err
		}
	}
	if comment != nil {
		if err := r.commentReference(p, comment, cidx); err != nil {
			return err
		}
	}
	if bookmark != "" {
		w(p, "bookmarkEnd").CreateAttr("w:id", bookmark)
	}
	return nil
}

func (r *renderer) hyperlink(p *etree.Element, l *model.Hyperlink) *etree.Element {
	el := w(p, "hyperlink")
	switch l.Kind {
	case model.LinkKindBookmark:
		el.CreateAttr("w:anchor", r.doc.BookmarkName(l.Target))
	case model.LinkKindEmail:
		addr := l.Target
		if !strings.HasPrefix(addr, "mailto:") {
			addr = "mailto:" + addr
		}
		el.CreateAttr("r:id", r.cur.rels.add(relHyperlink, addr, true))
	default:
		el.CreateAttr("r:id", r.cur.rels.add(relHyperlink, l.Target, true))
	}
	if l.Tooltip != "" {
		el.CreateAttr("w:tooltip", l.Tooltip)
	}
	el.CreateAttr("w:history", "1")
	return el
}

// runBuilder turns inline items into runs sharing the same properties.
// Consecutive text goes into a single run.
type runBuilder struct {
	r      *renderer
	parent *etree.Element
	style  string
	props  model.CharFormat
	open   *etree.Element // run accepting text, nil after non text content
}

// newRun starts a run with the builder properties, extra properties are laid
// over them.
func (rb *runBuilder) newRun(extra model.CharFormat) *etree.Element {
	el := w(rb.parent, "r")
	rb.r.runProperties(el, rb.style, extra.Over(rb.props))
	return el
}

func (rb *runBuilder) textRun() *etree.Element {
	if rb.open == nil {
		rb.open = rb.newRun(model.CharFormat{})
	}
	return rb.open
}

func (rb *runBuilder) items(items []model.Inline) error {
	for _, it := range items {
		switch v := it.(type) {
		case model.Text:
			rb.text(string(v))
		case model.Special:
			rb.special(v.Kind)
		case *model.Footnote:
			rb.open = nil
			if err := rb.r.note(rb, v); err != nil {
				return err
			}
		case *model.Picture:
			rb.open = nil
			if err := rb.r.picture(rb.newRun(model.CharFormat{}), v); err != nil {
				return err
			}
		default:
			return model.UnknownElement("docx run", it)
		}
	}
	rb.open = nil
	return nil
}

// text splits s on tabs and line feeds, characters not allowed in XML are
// dropped.
func (rb *runBuilder) text(s string) {
	if s == "" {
		return
	}
	run := rb.textRun()
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		t := w(run, "t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(b.String())
		b.Reset()
	}
	for _, c := range s {
		switch {
		case c == '\t':
			flush()
			w(run, "tab")
		case c == '\n':
			flush()
			w(run, "br")
		case c < 0x20, c == 0xFFFE, c == 0xFFFF:
		default:
			b.WriteRune(c)
		}
	}
	flush()
}

var fieldInstructions = map[model.SpecialKind]struct{ instr, result string }{
	model.SpecialKindPageNumber: {"PAGE", "1"},
	model.SpecialKindTotalPages: {"NUMPAGES", "1"},
	model.SpecialKindDate:       {"DATE", ""},
	model.SpecialKindTime:       {"TIME", ""},
}

func (rb *runBuilder) special(k model.SpecialKind) {
	if k.IsField() {
		rb.open = nil
		f := fieldInstructions[k]
		fld := w(rb.parent, "fldSimple")
		fld.CreateAttr("w:instr", " "+f.instr+" ")
		saved := rb.parent
		rb.parent = fld
		run := rb.newRun(model.CharFormat{})
		if f.result != "" {
			t := w(run, "t")
			t.SetText(f.result)
		}
		rb.parent = saved
		return
	}

	run := rb.textRun()
	switch k {
	case model.SpecialKindPageBreak:
		w(run, "br").CreateAttr("w:type", "page")
	case model.SpecialKindLineBreak:
		w(run, "br")
	case model.SpecialKindColumnBreak:
		w(run, "br").CreateAttr("w:type", "column")
	case model.SpecialKindTab:
		w(run, "tab")
	case model.SpecialKindNonBreakingSpace:
		w(run, "t").SetText("\u00a0")
	case model.SpecialKindNonBreakingHyphen:
		w(run, "noBreakHyphen")
	case model.SpecialKindOptionalHyphen:
		w(run, "softHyphen")
	}
}
