package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
	"golang.org/x/text/language"

	"rtdoc/model"
	"rtdoc/registry"
)

// defaultFontSize is the document default font size in half-points.
const defaultFontSize = 24

// styleIDs assigns style sheet identifiers derived from style names. Names
// which produce nothing usable or collide get a positional identifier.
func styleIDs(styles *registry.Registry[model.Style]) []string {
	ids := make([]string, styles.Len())
	taken := make(map[string]bool)
	for _, e := range styles.Entries() {
		id := strings.ReplaceAll(slug.Make(firstNonEmpty(e.Value.Name, e.Alias)), "-", "")
		if id == "" || taken[id] {
			id = "Style" + strconv.Itoa(e.Index)
		}
		taken[id] = true
		ids[e.Index] = id
	}
	return ids
}

// styleID returns identifier of style alias of the requested kind or empty
// string.
func (r *renderer) styleID(alias string, kind model.StyleKind) string {
	e, err := r.doc.Styles.Get(alias)
	if err != nil || e.Value.Kind != kind {
		return ""
	}
	return r.styleIDs[e.Index]
}

func (r *renderer) stylesPart() *xmlPart {
	p := newContentPart("word/styles.xml", ctStyles, "w:styles")

	defaults := w(p.root, "docDefaults")
	rPr := w(w(defaults, "rPrDefault"), "rPr")
	if fonts := r.doc.Fonts.Entries(); len(fonts) > 0 {
		r.fontRef(rPr, fonts[0].Value.Name)
	}
	if k, ok := r.doc.Typography.Kerning.Get(); ok {
		valInt(rPr, "kern", k.HalfPoints())
	}
	valInt(rPr, "sz", defaultFontSize)
	valInt(rPr, "szCs", defaultFontSize)
	if lang := r.doc.Typography.Language; lang != "" {
		val(rPr, "lang", languageTag(lang))
	}
	pPr := w(w(defaults, "pPrDefault"), "pPr")
	toggle(pPr, "widowControl", r.doc.Typography.WidowControl)

	for _, e := range r.doc.Styles.Entries() {
		st := e.Value
		var typ string
		switch st.Kind {
		case model.StyleKindParagraph:
			typ = "paragraph"
		case model.StyleKindCharacter:
			typ = "character"
		default:
			// section formatting is applied to section properties directly
			continue
		}

		el := w(p.root, "style")
		el.CreateAttr("w:type", typ)
		el.CreateAttr("w:styleId", r.styleIDs[e.Index])
		if e.Index == 0 && st.Kind == model.StyleKindParagraph {
			el.CreateAttr("w:default", "1")
		}
		val(el, "name", firstNonEmpty(st.Name, e.Alias))
		if base, ok := st.Base.Get(); ok {
			if b, err := r.doc.Styles.Get(base); err == nil && b.Index < e.Index && b.Value.Kind == st.Kind {
				val(el, "basedOn", r.styleIDs[b.Index])
			}
		}
		if next, ok := st.Next.Get(); ok && st.Kind == model.StyleKindParagraph {
			if id := r.styleID(next, model.StyleKindParagraph); id != "" {
				val(el, "next", id)
			}
		}
		if st.Hidden {
			w(el, "hidden")
		}
		if st.QuickFormat {
			w(el, "qFormat")
		}

		// inherited values are flattened, base references are informative
		if st.Kind == model.StyleKindParagraph {
			para, char := r.res.ResolveParagraph(model.ParagraphFormat{Style: e.Alias})
			r.paraProperties(el, paraProps{format: para})
			r.runProperties(el, "", char)
			continue
		}
		r.runProperties(el, "", r.res.StyleChar(e.Alias))
	}
	return p
}

func (r *renderer) fontRef(rPr *etree.Element, name string) {
	el := w(rPr, "rFonts")
	for _, attr := range []string{"w:ascii", "w:hAnsi", "w:eastAsia", "w:cs"} {
		el.CreateAttr(attr, name)
	}
}

func (r *renderer) colorHex(alias string) (string, bool) {
	e, err := r.doc.Colors.Get(alias)
	if err != nil {
		return "", false
	}
	return e.Value.Hex(), true
}

var underlineValues = map[model.Underline]string{
	model.UnderlineNone:   "none",
	model.UnderlineSingle: "single",
	model.UnderlineDouble: "double",
	model.UnderlineDotted: "dotted",
	model.UnderlineDash:   "dash",
	model.UnderlineWord:   "words",
	model.UnderlineWave:   "wave",
	model.UnderlineThick:  "thick",
}

// runProperties writes w:rPr under parent when there is anything to write.
func (r *renderer) runProperties(parent *etree.Element, styleID string, f model.CharFormat) {
	if styleID == "" && f.IsEmpty() {
		return
	}
	rPr := w(parent, "rPr")
	if styleID != "" {
		val(rPr, "rStyle", styleID)
	}
	if alias, ok := f.Font.Get(); ok {
		if e, err := r.doc.Fonts.Get(alias); err == nil {
			r.fontRef(rPr, e.Value.Name)
		}
	}
	if v, ok := f.Bold.Get(); ok {
		toggle(rPr, "b", v)
		toggle(rPr, "bCs", v)
	}
	if v, ok := f.Italic.Get(); ok {
		toggle(rPr, "i", v)
		toggle(rPr, "iCs", v)
	}
	if v, ok := f.Caps.Get(); ok {
		toggle(rPr, "caps", v)
	}
	if v, ok := f.SmallCaps.Get(); ok {
		toggle(rPr, "smallCaps", v)
	}
	if v, ok := f.Strike.Get(); ok {
		toggle(rPr, "strike", v)
	}
	if v, ok := f.DoubleStrike.Get(); ok {
		toggle(rPr, "dstrike", v)
	}
	if v, ok := f.Hidden.Get(); ok {
		toggle(rPr, "vanish", v)
	}
	if alias, ok := f.Color.Get(); ok {
		if hex, ok := r.colorHex(alias); ok {
			val(rPr, "color", hex)
		}
	}
	if v, ok := f.Spacing.Get(); ok {
		valInt(rPr, "spacing", v.Twips())
	}
	if v, ok := f.Scaling.Get(); ok {
		valInt(rPr, "w", v)
	}
	if v, ok := f.Size.Get(); ok {
		valInt(rPr, "sz", v.HalfPoints())
		valInt(rPr, "szCs", v.HalfPoints())
	}
	if v, ok := f.Underline.Get(); ok {
		val(rPr, "u", underlineValues[v])
	}
	if alias, ok := f.Background.Get(); ok {
		if hex, ok := r.colorHex(alias); ok {
			shading(rPr, hex)
		}
	}
	if v, ok := f.Position.Get(); ok {
		switch v {
		case model.VertPosSuperscript:
			val(rPr, "vertAlign", "superscript")
		case model.VertPosSubscript:
			val(rPr, "vertAlign", "subscript")
		default:
			val(rPr, "vertAlign", "baseline")
		}
	}
	if v, ok := f.Language.Get(); ok {
		val(rPr, "lang", languageTag(v))
	}
}

func shading(parent *etree.Element, fill string) {
	el := w(parent, "shd")
	el.CreateAttr("w:val", "clear")
	el.CreateAttr("w:color", "auto")
	el.CreateAttr("w:fill", fill)
}

var alignValues = map[model.Align]string{
	model.AlignLeft:       "left",
	model.AlignCenter:     "center",
	model.AlignRight:      "right",
	model.AlignJustify:    "both",
	model.AlignDistribute: "distribute",
}

var lineRuleValues = map[model.LineRule]string{
	model.LineRuleAuto:    "auto",
	model.LineRuleAtLeast: "atLeast",
	model.LineRuleExact:   "exact",
}

// paraProps is everything paragraph properties may carry.
type paraProps struct {
	style  string
	num    int // numbering instance, 0 when paragraph is not in a list
	level  int
	format model.ParaFormat
}

// paraProperties writes w:pPr under parent when there is anything to write
// and returns it.
func (r *renderer) paraProperties(parent *etree.Element, pp paraProps) *etree.Element {
	f := pp.format
	if pp.style == "" && pp.num == 0 && f == (model.ParaFormat{}) {
		return nil
	}
	pPr := w(parent, "pPr")
	if pp.style != "" {
		val(pPr, "pStyle", pp.style)
	}
	if v, ok := f.KeepWithNext.Get(); ok {
		toggle(pPr, "keepNext", v)
	}
	if v, ok := f.KeepTogether.Get(); ok {
		toggle(pPr, "keepLines", v)
	}
	if v, ok := f.PageBreakBefore.Get(); ok {
		toggle(pPr, "pageBreakBefore", v)
	}
	if v, ok := f.WidowControl.Get(); ok {
		toggle(pPr, "widowControl", v)
	}
	if pp.num > 0 {
		numPr := w(pPr, "numPr")
		valInt(numPr, "ilvl", pp.level)
		valInt(numPr, "numId", pp.num)
	}
	r.borders(pPr, "pBdr", f.Borders)
	if alias, ok := f.Shading.Get(); ok {
		if hex, ok := r.colorHex(alias); ok {
			shading(pPr, hex)
		}
	}
	if v, ok := f.RightToLeft.Get(); ok {
		toggle(pPr, "bidi", v)
	}

	if f.SpaceBefore.IsSet() || f.SpaceAfter.IsSet() || f.LineSpacing.IsSet() {
		el := w(pPr, "spacing")
		if v, ok := f.SpaceBefore.Get(); ok {
			el.CreateAttr("w:before", strconv.Itoa(v.Twips()))
		}
		if v, ok := f.SpaceAfter.Get(); ok {
			el.CreateAttr("w:after", strconv.Itoa(v.Twips()))
		}
		if v, ok := f.LineSpacing.Get(); ok {
			el.CreateAttr("w:line", strconv.Itoa(v.Twips()))
			el.CreateAttr("w:lineRule", lineRuleValues[f.LineRule.Value()])
		}
	}
	if f.IndentLeft.IsSet() || f.IndentRight.IsSet() || f.IndentFirst.IsSet() {
		el := w(pPr, "ind")
		if v, ok := f.IndentLeft.Get(); ok {
			el.CreateAttr("w:left", strconv.Itoa(v.Twips()))
		}
		if v, ok := f.IndentRight.Get(); ok {
			el.CreateAttr("w:right", strconv.Itoa(v.Twips()))
		}
		if v, ok := f.IndentFirst.Get(); ok {
			if t := v.Twips(); t < 0 {
				el.CreateAttr("w:hanging", strconv.Itoa(-t))
			} else {
				el.CreateAttr("w:firstLine", strconv.Itoa(t))
			}
		}
	}
	if v, ok := f.Align.Get(); ok {
		val(pPr, "jc", alignValues[v])
	}
	if v, ok := f.OutlineLevel.Get(); ok {
		valInt(pPr, "outlineLvl", v)
	}
	return pPr
}

var borderValues = map[model.BorderStyle]string{
	model.BorderStyleNone:   "none",
	model.BorderStyleSingle: "single",
	model.BorderStyleDouble: "double",
	model.BorderStyleDotted: "dotted",
	model.BorderStyleDashed: "dashed",
	model.BorderStyleThick:  "thick",
}

// borders writes set edges into container element tag, nothing when no edge
// is set.
func (r *renderer) borders(parent *etree.Element, tag string, b model.Borders) {
	if b == (model.Borders{}) {
		return
	}
	el := w(parent, tag)
	b.Each(func(edge string, border model.Border) {
		r.border(el, edge, border)
	})
}

func (r *renderer) border(parent *etree.Element, edge string, b model.Border) {
	el := w(parent, edge)
	el.CreateAttr("w:val", borderValues[b.Style])
	if b.Style == model.BorderStyleNone {
		return
	}
	// line width is measured in eighths of a point
	el.CreateAttr("w:sz", strconv.Itoa(min(max(b.Width.Twips()*2/5, 2), 96)))
	el.CreateAttr("w:space", strconv.Itoa(min(int(b.Space.Points()), 31)))
	color := "auto"
	if hex, ok := r.colorHex(b.Color); ok {
		color = hex
	}
	el.CreateAttr("w:color", color)
}

// languageTag normalizes BCP 47 tag, unparsable tags are kept verbatim.
func languageTag(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}
