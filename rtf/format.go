package rtf

import (
	"rtdoc/model"
	"rtdoc/units"
)

// color returns color table number of a color alias, 0 (auto) when unknown.
func (r *renderer) color(alias string) int {
	return r.doc.Colors.Index(alias) + 1
}

var underlineWords = map[model.Underline]string{
	model.UnderlineNone:   "ulnone",
	model.UnderlineSingle: "ul",
	model.UnderlineDouble: "uldb",
	model.UnderlineDotted: "uld",
	model.UnderlineDash:   "uldash",
	model.UnderlineWord:   "ulw",
	model.UnderlineWave:   "ulwave",
	model.UnderlineThick:  "ulth",
}

// charControls writes controls for every set field of f.
func (r *renderer) charControls(f model.CharFormat) {
	w := r.w
	if font, ok := f.Font.Get(); ok {
		if idx := r.doc.Fonts.Index(font); idx >= 0 {
			w.num("f", idx)
		}
	}
	if s, ok := f.Size.Get(); ok {
		w.num("fs", s.HalfPoints())
	}
	if v, ok := f.Bold.Get(); ok {
		w.toggle("b", v)
	}
	if v, ok := f.Italic.Get(); ok {
		w.toggle("i", v)
	}
	if v, ok := f.Underline.Get(); ok {
		w.word(underlineWords[v])
	}
	if v, ok := f.Strike.Get(); ok {
		w.toggle("strike", v)
	}
	if v, ok := f.DoubleStrike.Get(); ok {
		w.num("striked", boolInt(v))
	}
	if v, ok := f.Caps.Get(); ok {
		w.toggle("caps", v)
	}
	if v, ok := f.SmallCaps.Get(); ok {
		w.toggle("scaps", v)
	}
	if v, ok := f.Hidden.Get(); ok {
		w.toggle("v", v)
	}
	if c, ok := f.Color.Get(); ok {
		w.num("cf", r.color(c))
	}
	if c, ok := f.Background.Get(); ok {
		w.num("highlight", r.color(c))
	}
	if v, ok := f.Position.Get(); ok {
		switch v {
		case model.VertPosSuperscript:
			w.word("super")
		case model.VertPosSubscript:
			w.word("sub")
		default:
			w.word("nosupersub")
		}
	}
	if v, ok := f.Scaling.Get(); ok {
		w.num("charscalex", v)
	}
	if s, ok := f.Spacing.Get(); ok {
		w.num("expndtw", s.Twips())
	}
	if l, ok := f.Language.Get(); ok {
		w.num("lang", LCID(l))
	}
}

var alignWords = map[model.Align]string{
	model.AlignLeft:       "ql",
	model.AlignCenter:     "qc",
	model.AlignRight:      "qr",
	model.AlignJustify:    "qj",
	model.AlignDistribute: "qd",
}

func (r *renderer) paraControls(f model.ParaFormat) {
	w := r.w
	if a, ok := f.Align.Get(); ok {
		w.word(alignWords[a])
	}
	if s, ok := f.IndentLeft.Get(); ok {
		w.num("li", s.Twips())
	}
	if s, ok := f.IndentRight.Get(); ok {
		w.num("ri", s.Twips())
	}
	if s, ok := f.IndentFirst.Get(); ok {
		w.num("fi", s.Twips())
	}
	if s, ok := f.SpaceBefore.Get(); ok {
		w.num("sb", s.Twips())
	}
	if s, ok := f.SpaceAfter.Get(); ok {
		w.num("sa", s.Twips())
	}
	if s, ok := f.LineSpacing.Get(); ok {
		switch f.LineRule.Value() {
		case model.LineRuleExact:
			w.num("sl", -s.Twips())
			w.num("slmult", 0)
		case model.LineRuleAtLeast:
			w.num("sl", s.Twips())
			w.num("slmult", 0)
		default:
			w.num("sl", s.Twips())
			w.num("slmult", 1)
		}
	}
	if f.KeepTogether.Value() {
		w.word("keep")
	}
	if f.KeepWithNext.Value() {
		w.word("keepn")
	}
	if f.PageBreakBefore.Value() {
		w.word("pagebb")
	}
	if v, ok := f.WidowControl.Get(); ok {
		if v {
			w.word("widctlpar")
		} else {
			w.word("nowidctlpar")
		}
	}
	if v, ok := f.OutlineLevel.Get(); ok {
		w.num("outlinelevel", v)
	}
	if c, ok := f.Shading.Get(); ok {
		w.num("cbpat", r.color(c))
	}
	r.borders("brdr", f.Borders)
	if v, ok := f.RightToLeft.Get(); ok {
		if v {
			w.word("rtlpar")
		} else {
			w.word("ltrpar")
		}
	}
}

var borderEdges = map[string]string{"top": "t", "left": "l", "bottom": "b", "right": "r"}

var borderStyles = map[model.BorderStyle]string{
	model.BorderStyleNone:   "brdrnone",
	model.BorderStyleSingle: "brdrs",
	model.BorderStyleDouble: "brdrdb",
	model.BorderStyleDotted: "brdrdot",
	model.BorderStyleDashed: "brdrdash",
	model.BorderStyleThick:  "brdrth",
}

// maxBorderWidth is the largest pen width readers accept in \brdrw.
const maxBorderWidth = 255

// borders writes edges with prefix "brdr" for paragraphs, "clbrdr" for
// cells and "trbrdr" for rows.
func (r *renderer) borders(prefix string, b model.Borders) {
	b.Each(func(edge string, border model.Border) {
		r.w.word(prefix + borderEdges[edge])
		r.border(border)
	})
}

func (r *renderer) border(b model.Border) {
	w := r.w
	w.word(borderStyles[b.Style])
	if b.Style == model.BorderStyleNone {
		return
	}
	w.num("brdrw", min(b.Width.Twips(), maxBorderWidth))
	if sp := b.Space.Twips(); sp > 0 {
		w.num("brsp", sp)
	}
	if b.Color != "" {
		w.num("brdrcf", r.color(b.Color))
	}
}

var sectionBreakWords = map[model.SectionBreak]string{
	model.SectionBreakNone:   "sbknone",
	model.SectionBreakPage:   "sbkpage",
	model.SectionBreakColumn: "sbkcol",
	model.SectionBreakEven:   "sbkeven",
	model.SectionBreakOdd:    "sbkodd",
}

var pageNumberWords = map[model.NumberFormat]string{
	model.NumberFormatUpperRoman:  "pgnucrm",
	model.NumberFormatLowerRoman:  "pgnlcrm",
	model.NumberFormatUpperLetter: "pgnucltr",
	model.NumberFormatLowerLetter: "pgnlcltr",
}

var vertAlignWords = map[model.VAlign]string{
	model.VAlignTop:    "vertalt",
	model.VAlignCenter: "vertalc",
	model.VAlignBottom: "vertalb",
}

// sectionControls writes overrides set in f, section geometry inherited from
// the document is not repeated.
func (r *renderer) sectionControls(f model.SectionFormat) {
	w := r.w
	w.word(sectionBreakWords[f.Break])
	for _, s := range []struct {
		name string
		v    model.Opt[units.Size]
	}{
		{"pgwsxn", f.Width},
		{"pghsxn", f.Height},
		{"marglsxn", f.MarginLeft},
		{"margrsxn", f.MarginRight},
		{"margtsxn", f.MarginTop},
		{"margbsxn", f.MarginBottom},
		{"guttersxn", f.Gutter},
	} {
		if v, ok := s.v.Get(); ok {
			w.num(s.name, v.Twips())
		}
	}
	if f.Landscape.Value() {
		w.word("lndscpsxn")
	}
	if f.Columns > 1 {
		w.num("cols", f.Columns)
		if s, ok := f.ColumnSpacing.Get(); ok {
			w.num("colsx", s.Twips())
		}
		if f.ColumnLine {
			w.word("linebetcol")
		}
	}
	if n, ok := f.PageNumberStart.Get(); ok {
		w.num("pgnstarts", n)
		w.word("pgnrestart")
	}
	if nf, ok := f.PageNumberFormat.Get(); ok {
		if word, ok := pageNumberWords[nf]; ok {
			w.word(word)
		} else {
			w.word("pgndec")
		}
	}
	if f.VAlign != model.VAlignTop {
		w.word(vertAlignWords[f.VAlign])
	}
	if f.TitlePage {
		w.word("titlepg")
	}
	if s, ok := f.HeaderDistance.Get(); ok {
		w.num("headery", s.Twips())
	}
	if s, ok := f.FooterDistance.Get(); ok {
		w.num("footery", s.Twips())
	}
}
