// Package validate checks a document model before it is rendered. Ranges are
// declared with struct tags on model types, referential and structural rules
// are checked by walking the document.
package validate

import (
	"fmt"
	"maps"
	"slices"

	validator "github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"rtdoc/layout"
	"rtdoc/model"
	"rtdoc/units"
	"rtdoc/utils/images"
)

// MaxTableNesting is the deepest allowed table nesting level.
const MaxTableNesting = 8

// Check validates the document and returns the first violation. Advisories
// are logged and returned in both cases.
func Check(doc *model.Document, log *zap.Logger) ([]Advisory, error) {
	c := run(doc, log)
	if len(c.errs) > 0 {
		return c.adv, c.errs[0]
	}
	return c.adv, nil
}

// CheckAll validates the document and returns all violations combined.
func CheckAll(doc *model.Document, log *zap.Logger) ([]Advisory, error) {
	c := run(doc, log)
	return c.adv, multierr.Combine(c.errs...)
}

type checker struct {
	doc  *model.Document
	sv   *validator.Validate
	log  *zap.Logger
	errs []error
	adv  []Advisory

	attached map[int]string // comment index -> path of the run using it
}

func run(doc *model.Document, log *zap.Logger) *checker {
	if log == nil {
		log = zap.NewNop()
	}
	c := &checker{doc: doc, sv: newStructValidator(), log: log.Named("validate"), attached: make(map[int]string)}
	c.document()
	for _, a := range c.adv {
		c.log.Warn("Discouraged document setting", zap.String("path", a.Path), zap.String("advice", a.Message))
	}
	return c
}

func (c *checker) fail(path string, value any, rule, msg string) {
	c.errs = append(c.errs, &Error{Path: path, Value: value, Rule: rule, Message: msg})
}

func (c *checker) advise(path, msg string) {
	c.adv = append(c.adv, Advisory{Path: path, Message: msg})
}

func (c *checker) structure(path string, v any) {
	c.errs = append(c.errs, structErrors(path, c.sv.Struct(v))...)
}

func (c *checker) document() {
	doc := c.doc

	if !doc.Charset.IsValid() {
		c.fail("charset", doc.Charset, "enum", "unknown character set")
	}
	if doc.CodePage <= 0 || doc.CodePage > 65535 {
		c.fail("code_page", doc.CodePage, "range", "must be a valid code page number")
	}
	c.structure("info", doc.Info)
	c.page()
	c.view()
	c.typography()

	for _, name := range slices.Sorted(maps.Keys(doc.Variables)) {
		if msg, ok := safeName(name); !ok {
			c.fail(fmt.Sprintf("variables[%q]", name), name, "name", msg)
		}
	}

	c.fonts()
	c.styles()
	c.lists()
	c.bookmarks()
	c.comments()

	for i, s := range doc.Sections {
		c.section(fmt.Sprintf("sections[%d]", i), s)
	}
}

func (c *checker) page() {
	p := c.doc.Page
	c.structure("page", p)
	if !p.Footnotes.Format.IsValid() || !p.Endnotes.Format.IsValid() {
		c.fail("page.footnotes", p.Footnotes.Format, "enum", "unknown note number format")
	}
	if p.Gutter.Twips() > 0 && !p.FacingPages {
		c.advise("page.gutter", "gutter is set but facing pages are off")
	}
	g := c.doc.Geometry(model.SectionFormat{})
	if g.TextWidth() <= 0 {
		c.fail("page", g.Width, "geometry", "margins and gutter leave no room for text")
	}
}

func (c *checker) view() {
	v := c.doc.View
	c.structure("view", v)
	if !v.Kind.IsValid() || !v.Zoom.IsValid() {
		c.fail("view.kind", v.Kind, "enum", "unknown view or zoom kind")
	}
	if v.Scale >= 10 && v.Scale <= 500 && (v.Scale < 25 || v.Scale > 400) {
		c.advise("view.scale", fmt.Sprintf("unusual zoom level %d%%", v.Scale))
	}
	if v.Zoom != model.ZoomKindNone && v.Scale != 100 {
		c.advise("view.zoom", "zoom kind overrides explicit scale")
	}
}

func (c *checker) typography() {
	t := c.doc.Typography
	c.structure("typography", t)
	c.languageTag("typography.language", t.Language)
}

func (c *checker) languageTag(path, tag string) {
	if tag == "" {
		return
	}
	if _, err := language.Parse(tag); err != nil {
		c.fail(path, tag, "language", "not a valid BCP 47 language tag")
	}
}

func (c *checker) fonts() {
	for _, alias := range c.doc.Fonts.Aliases() {
		path := fmt.Sprintf("fonts[%s]", alias)
		f := c.doc.Fonts.MustGet(alias).Value
		if msg, ok := safeName(f.Name); !ok {
			c.fail(path+".name", f.Name, "name", msg)
		}
		c.structure(path, f)
	}
}

func (c *checker) styles() {
	for _, alias := range c.doc.Styles.Aliases() {
		path := fmt.Sprintf("styles[%s]", alias)
		st := c.doc.Styles.MustGet(alias).Value
		if msg, ok := safeName(st.Name); !ok {
			c.fail(path+".name", st.Name, "name", msg)
		}
		if !st.Kind.IsValid() {
			c.fail(path+".kind", st.Kind, "enum", "unknown style kind")
		}
		if a, ok := st.Base.Get(); ok && a != alias && !c.doc.Styles.Has(a) {
			c.fail(path+".base", a, "ref", "unknown style")
		}
		if a, ok := st.Next.Get(); ok && !c.doc.Styles.Has(a) {
			c.fail(path+".next", a, "ref", "unknown style")
		}
		c.structure(path, st)
		c.charRefs(path+".char", st.Char)
		c.paraRefs(path+".para", st.Para)
	}
}

func (c *checker) lists() {
	for _, alias := range c.doc.Lists.Aliases() {
		path := fmt.Sprintf("lists[%s]", alias)
		l := c.doc.Lists.MustGet(alias).Value
		if l == nil {
			c.fail(path, nil, "required", "list is nil")
			continue
		}
		c.structure(path, l)
		if l.Type == model.ListTypeSimple && len(l.Levels) > 1 {
			c.advise(path, "simple list defines more than one level, only the first is used")
		}
		for i, lvl := range l.Levels {
			lpath := fmt.Sprintf("%s.levels[%d]", path, i)
			if !lvl.Format.IsValid() || !lvl.Follow.IsValid() || !lvl.Justify.IsValid() {
				c.fail(lpath, lvl.Format, "enum", "unknown level format, follow or justification")
			}
			for _, part := range model.ParseTemplate(lvl.Text) {
				if part.Level > i+1 {
					c.fail(lpath+".text", lvl.Text, "template", fmt.Sprintf("refers to level %d below itself", part.Level))
				}
			}
			c.charRefs(lpath+".char", lvl.Char)
		}
	}
}

func (c *checker) bookmarks() {
	for _, alias := range c.doc.Bookmarks.Aliases() {
		name := c.doc.Bookmarks.MustGet(alias).Value
		if msg, ok := safeBookmark(name); !ok {
			c.fail(fmt.Sprintf("bookmarks[%s]", alias), name, "bookmark", msg)
		}
	}
}

func (c *checker) comments() {
	for _, alias := range c.doc.Comments.Aliases() {
		path := fmt.Sprintf("comments[%s]", alias)
		cm := c.doc.Comments.MustGet(alias).Value
		if cm == nil {
			c.fail(path, nil, "required", "comment is nil")
			continue
		}
		if cm.Author != "" {
			if msg, ok := safeName(cm.Author); !ok {
				c.fail(path+".author", cm.Author, "name", msg)
			}
		}
		if !cm.Scope.IsValid() {
			c.fail(path+".scope", cm.Scope, "enum", "unknown comment scope")
		}
		if cm.IsEmpty() {
			c.advise(path, "comment has no content and will be dropped")
		}
		for i, p := range cm.Body {
			c.paragraph(fmt.Sprintf("%s.body[%d]", path, i), p, context{inComment: true})
		}
	}
}

// context of a paragraph being checked.
type context struct {
	depth      int // table nesting
	inNote     bool
	inComment  bool
	inHeadFoot bool
}

func (c *checker) section(path string, s *model.Section) {
	if s == nil {
		c.fail(path, nil, "required", "section is nil")
		return
	}
	c.structure(path+".format", s.Format)
	if !s.Format.Break.IsValid() || !s.Format.VAlign.IsValid() {
		c.fail(path+".format.break", s.Format.Break, "enum", "unknown section break or alignment")
	}
	if s.Style != "" {
		c.styleRef(path+".style", s.Style, model.StyleKindSection)
	}

	c.notZero(path+".format.width", twips(s.Format.Width), 1440)
	c.notZero(path+".format.height", twips(s.Format.Height), 1440)

	g := c.doc.Geometry(s.Format)
	if g.TextWidth() <= 0 {
		c.fail(path+".format", g.Width, "geometry", "margins and gutter leave no room for text")
	} else if g.Columns > 1 && g.ColumnWidth() <= 0 {
		c.advise(path+".format.columns", "columns and spacing are wider than page text")
	}

	c.headerFooter(path+".header", s.Header)
	c.headerFooter(path+".footer", s.Footer)
	c.elements(path+".body", s.Body, context{})
}

func (c *checker) headerFooter(path string, hf model.HeaderFooter) {
	ctx := context{inHeadFoot: true}
	c.elements(path+".first", hf.First, ctx)
	c.elements(path+".odd", hf.Odd, ctx)
	c.elements(path+".even", hf.Even, ctx)
}

func (c *checker) elements(path string, elements []model.Element, ctx context) {
	for i, e := range elements {
		epath := fmt.Sprintf("%s[%d]", path, i)
		switch v := e.(type) {
		case *model.Paragraph:
			c.paragraph(epath, v, ctx)
		case *model.Table:
			c.table(epath, v, ctx)
		case *model.Container:
			if v == nil {
				c.fail(epath, nil, "required", "container is nil")
				continue
			}
			c.elements(epath+".content", v.Content, ctx)
		case model.ColumnBreak:
			if ctx.depth > 0 || ctx.inHeadFoot {
				c.fail(epath, "column break", "structure", "column break is allowed in section body only")
			}
		default:
			c.fail(epath, fmt.Sprintf("%T", e), "structure", "unsupported element")
		}
	}
}

func (c *checker) styleRef(path, alias string, kind model.StyleKind) {
	e, err := c.doc.Styles.Get(alias)
	if err != nil {
		c.fail(path, alias, "ref", "unknown style")
		return
	}
	if e.Value.Kind != kind {
		c.fail(path, alias, "kind", fmt.Sprintf("must refer to a %s style", kind))
	}
}

func (c *checker) colorRef(path string, ref model.Opt[string]) {
	if a, ok := ref.Get(); ok && !c.doc.Colors.Has(a) {
		c.fail(path, a, "ref", "unknown color")
	}
}

func (c *checker) charRefs(path string, f model.CharFormat) {
	if a, ok := f.Font.Get(); ok && !c.doc.Fonts.Has(a) {
		c.fail(path+".font", a, "ref", "unknown font")
	}
	c.notZero(path+".size", twips(f.Size), 20)
	c.notZero(path+".scaling", f.Scaling, 20)
	if !f.Underline.Value().IsValid() || !f.Position.Value().IsValid() {
		c.fail(path, f.Underline.Value(), "enum", "unknown underline or position")
	}
	c.colorRef(path+".color", f.Color)
	c.colorRef(path+".background", f.Background)
	if lang, ok := f.Language.Get(); ok {
		c.languageTag(path+".language", lang)
	}
}

func (c *checker) borderRefs(path string, b model.Borders) {
	b.Each(func(edge string, border model.Border) {
		epath := path + "." + edge
		if !border.Style.IsValid() {
			c.fail(epath+".style", border.Style, "enum", "unknown border style")
		}
		if w := border.Width.Twips(); w < 0 || w > 1440 {
			c.fail(epath+".width", w, "range", "must be between 0 and 1440")
		}
		if border.Color != "" && !c.doc.Colors.Has(border.Color) {
			c.fail(epath+".color", border.Color, "ref", "unknown color")
		}
	})
}

func (c *checker) paraRefs(path string, f model.ParaFormat) {
	if !f.Align.Value().IsValid() || !f.LineRule.Value().IsValid() {
		c.fail(path, f.Align.Value(), "enum", "unknown alignment or line rule")
	}
	c.colorRef(path+".shading", f.Shading)
	c.borderRefs(path+".borders", f.Borders)
}

func (c *checker) paragraph(path string, p *model.Paragraph, ctx context) {
	if p == nil {
		c.fail(path, nil, "required", "paragraph is nil")
		return
	}
	pf := p.Format
	c.structure(path, pf)
	if pf.Style != "" {
		c.styleRef(path+".style", pf.Style, model.StyleKindParagraph)
	}
	c.paraRefs(path+".para", pf.Para)
	c.charRefs(path+".char", pf.Char)

	if ref, ok := pf.List.Get(); ok {
		e, err := c.doc.Lists.Get(ref.List)
		switch {
		case err != nil:
			c.fail(path+".list", ref.List, "ref", "unknown list")
		case e.Value != nil && (ref.Level < 0 || ref.Level >= len(e.Value.Levels)):
			c.fail(path+".list.level", ref.Level, "range", fmt.Sprintf("list defines %d levels", len(e.Value.Levels)))
		}
	}

	for i, r := range p.Runs {
		c.run(fmt.Sprintf("%s.runs[%d]", path, i), r, ctx)
	}
}

func (c *checker) run(path string, r *model.Run, ctx context) {
	if r == nil {
		c.fail(path, nil, "required", "run is nil")
		return
	}
	if r.Style != "" {
		c.styleRef(path+".style", r.Style, model.StyleKindCharacter)
	}
	c.structure(path+".char", r.Format)
	c.charRefs(path+".char", r.Format)

	if r.Bookmark != "" && !c.doc.Bookmarks.Has(r.Bookmark) {
		c.fail(path+".bookmark", r.Bookmark, "ref", "unknown bookmark")
	}
	if l := r.Link; l != nil {
		switch {
		case !l.Kind.IsValid():
			c.fail(path+".link.kind", l.Kind, "enum", "unknown link kind")
		case l.Target == "":
			c.fail(path+".link.target", l.Target, "required", "link target must not be empty")
		case l.Kind == model.LinkKindBookmark && !c.doc.Bookmarks.Has(l.Target):
			c.fail(path+".link.target", l.Target, "ref", "unknown bookmark")
		}
	}
	if r.Comment != "" {
		if ctx.inComment || ctx.inNote || ctx.inHeadFoot {
			c.fail(path+".comment", r.Comment, "structure", "comments are not allowed here")
		} else if !c.doc.Comments.Has(r.Comment) {
			c.fail(path+".comment", r.Comment, "ref", "unknown comment")
		} else if idx := c.doc.Comments.Index(r.Comment); c.attached[idx] != "" {
			c.fail(path+".comment", r.Comment, "unique", "comment is already attached to "+c.attached[idx])
		} else {
			c.attached[idx] = path
		}
	}

	for i, it := range r.Items {
		ipath := fmt.Sprintf("%s.items[%d]", path, i)
		switch v := it.(type) {
		case model.Text:
		case model.Special:
			if !v.Kind.IsValid() {
				c.fail(ipath, v.Kind, "enum", "unknown special content")
			}
			if v.Kind == model.SpecialKindColumnBreak && (ctx.depth > 0 || ctx.inHeadFoot) {
				c.fail(ipath, v.Kind, "structure", "column break is allowed in section body only")
			}
		case *model.Footnote:
			c.footnote(ipath, v, ctx)
		case *model.Picture:
			c.picture(ipath, v)
		default:
			c.fail(ipath, fmt.Sprintf("%T", it), "structure", "unsupported run content")
		}
	}
}

func (c *checker) footnote(path string, n *model.Footnote, ctx context) {
	switch {
	case n == nil:
		c.fail(path, nil, "required", "footnote is nil")
		return
	case ctx.inNote || ctx.inComment || ctx.inHeadFoot:
		c.fail(path, "footnote", "structure", "notes are not allowed here")
		return
	case !n.Body.HasContent():
		c.fail(path+".body", nil, "required", "note body must not be empty")
		return
	}
	if n.Mark != "" {
		if msg, ok := safeName(n.Mark); !ok {
			c.fail(path+".mark", n.Mark, "name", msg)
		}
	}
	ctx.inNote = true
	c.paragraph(path+".body", n.Body, ctx)
}

func (c *checker) picture(path string, p *model.Picture) {
	if p == nil {
		c.fail(path, nil, "required", "picture is nil")
		return
	}
	if _, err := images.Inspect(p.Data); err != nil {
		c.fail(path+".data", len(p.Data), "picture", err.Error())
	}
	c.inRange(path+".scale_x", p.ScaleX, 1, 1000)
	c.inRange(path+".scale_y", p.ScaleY, 1, 1000)
	c.inRange(path+".width", twips(p.Width), 1, 31680)
	c.inRange(path+".height", twips(p.Height), 1, 31680)
}

// notZero catches optional values set to zero where the lower bound is
// above zero, "omitempty" in struct rules skips them.
func (c *checker) notZero(path string, o model.Opt[int], lo int) {
	if v, ok := o.Get(); ok && v == 0 {
		c.fail(path, v, fmt.Sprintf("min=%d", lo), fmt.Sprintf("must be at least %d", lo))
	}
}

func (c *checker) inRange(path string, o model.Opt[int], lo, hi int) {
	if v, ok := o.Get(); ok && (v < lo || v > hi) {
		c.fail(path, v, "range", fmt.Sprintf("must be between %d and %d", lo, hi))
	}
}

func twips(o model.Opt[units.Size]) model.Opt[int] {
	if s, ok := o.Get(); ok {
		return model.Some(s.Twips())
	}
	return model.Opt[int]{}
}

func (c *checker) table(path string, t *model.Table, ctx context) {
	if t == nil {
		c.fail(path, nil, "required", "table is nil")
		return
	}
	ctx.depth++
	if ctx.depth > MaxTableNesting {
		c.fail(path, ctx.depth, "nesting", fmt.Sprintf("tables may be nested at most %d levels deep", MaxTableNesting))
		return
	}
	if len(t.Rows) == 0 {
		c.fail(path+".rows", 0, "min", "table must have at least one row")
		return
	}
	c.structure(path, t.Format)
	c.colorRef(path+".shading", t.Format.Shading)
	c.borderRefs(path+".borders", t.Format.Borders.Borders)
	inside := model.Borders{Top: t.Format.Borders.InsideH, Left: t.Format.Borders.InsideV}
	c.borderRefs(path+".borders.inside", inside)

	for i, col := range t.Columns {
		if col.Weight < 0 {
			c.fail(fmt.Sprintf("%s.columns[%d].weight", path, i), col.Weight, "min", "must not be negative")
		}
		if w, ok := col.Width.Get(); ok && w.Twips() < 0 {
			c.fail(fmt.Sprintf("%s.columns[%d].width", path, i), w, "min", "must not be negative")
		}
	}

	for r, row := range t.Rows {
		rpath := fmt.Sprintf("%s.rows[%d]", path, r)
		if row == nil {
			c.fail(rpath, nil, "required", "row is nil")
			return
		}
		if row.Format.Header && row.Format.Last {
			c.fail(rpath, "header+last", "structure", "row cannot be both repeating header and last row")
		}
		if len(t.Columns) > 0 && len(row.Cells) > len(t.Columns) {
			c.fail(rpath+".cells", len(row.Cells), "max", fmt.Sprintf("table defines %d columns", len(t.Columns)))
		}
		c.structure(rpath, row.Format)
		c.colorRef(rpath+".shading", row.Format.Shading)
		c.borderRefs(rpath+".borders", row.Format.Borders)
		for i, cell := range row.Cells {
			cpath := fmt.Sprintf("%s.cells[%d]", rpath, i)
			if cell == nil {
				c.fail(cpath, nil, "required", "cell is nil")
				return
			}
			f := cell.Format
			if !f.HSpan.IsValid() || !f.VSpan.IsValid() || !f.VAlign.IsValid() {
				c.fail(cpath, f.HSpan, "enum", "unknown merge state or alignment")
			}
			c.structure(cpath, f)
			c.colorRef(cpath+".shading", f.Shading)
			c.borderRefs(cpath+".borders", f.Borders)
			c.elements(cpath+".content", cell.Content, ctx)
		}
	}

	// merge runs are checked on the computed grid
	g := layout.Analyze(t, 0)
	for r, gr := range g.Rows {
		for _, gc := range gr.Cells {
			if gc.Cell == nil {
				continue
			}
			cpath := fmt.Sprintf("%s.rows[%d].cells[%d]", path, r, slices.Index(gr.Row.Cells, gc.Cell))
			if gc.Format.HSpan == model.SpanNext {
				c.fail(cpath+".hspan", "next", "merge", "horizontal merge continuation without start")
			}
			if gc.Cell.Format.VSpan == model.SpanNext && !gc.Continuation {
				c.fail(cpath+".vspan", "next", "merge", "vertical merge continuation without start above")
			}
		}
	}
}
