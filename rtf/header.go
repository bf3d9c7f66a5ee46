package rtf

import (
	"maps"
	"slices"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/maruel/natural"

	"rtdoc/model"
)

func (r *renderer) header() {
	w := r.w
	w.open()
	w.num("rtf", 1)
	w.word(r.doc.Charset.String())
	if r.doc.Charset == model.CharsetAnsi {
		w.num("ansicpg", r.doc.CodePage)
	}
	w.num("uc", 1)
	w.num("deff", 0)
	w.num("deflang", LCID(r.doc.Typography.Language))

	r.fontTable()
	r.colorTable()
	r.styleSheet()
	r.listTable()
	r.listOverrideTable()

	if r.opts.Generator != "" {
		w.destination("generator")
		w.text(r.opts.Generator + ";")
		w.close()
	}
	r.info()
	r.variables()
	r.pageSetup()
	r.typography()
	r.view()
}

func (r *renderer) fontTable() {
	entries := r.doc.Fonts.Entries()
	if len(entries) == 0 {
		return
	}
	w := r.w
	w.open()
	w.word("fonttbl")
	for _, e := range entries {
		f := e.Value
		w.open()
		w.num("f", e.Index)
		w.word("f" + f.Family.String())
		w.num("fcharset", f.Charset)
		w.num("fprq", int(f.Pitch))
		w.text(f.Name)
		if f.AltName != "" {
			w.destination("falt")
			w.text(f.AltName)
			w.close()
		}
		w.text(";")
		w.close()
	}
	w.close()
}

// colorTable starts with the empty "auto" entry, registry index i is written
// as color number i+1.
func (r *renderer) colorTable() {
	entries := r.doc.Colors.Entries()
	if len(entries) == 0 {
		return
	}
	w := r.w
	w.open()
	w.word("colortbl")
	w.text(";")
	for _, e := range entries {
		w.num("red", int(e.Value.R))
		w.num("green", int(e.Value.G))
		w.num("blue", int(e.Value.B))
		w.text(";")
	}
	w.close()
}

func (r *renderer) styleSheet() {
	entries := r.doc.Styles.Entries()
	if len(entries) == 0 {
		return
	}
	w := r.w
	w.open()
	w.word("stylesheet")
	for _, e := range entries {
		st := e.Value
		switch st.Kind {
		case model.StyleKindCharacter:
			w.destinationNum("cs", e.Index)
			w.word("additive")
			r.charControls(r.res.StyleChar(e.Alias))
		case model.StyleKindSection:
			w.destinationNum("ds", e.Index)
			r.sectionControls(r.res.ResolveSection(&model.Section{Style: e.Alias}))
		default:
			w.open()
			w.num("s", e.Index)
			para, char := r.res.ResolveParagraph(model.ParagraphFormat{Style: e.Alias})
			r.paraControls(para)
			r.charControls(char)
		}
		if base, ok := st.Base.Get(); ok {
			if idx := r.doc.Styles.Index(base); idx >= 0 && idx < e.Index {
				w.num("sbasedon", idx)
			}
		}
		if next, ok := st.Next.Get(); ok && st.Kind == model.StyleKindParagraph {
			if idx := r.doc.Styles.Index(next); idx >= 0 {
				w.num("snext", idx)
			}
		}
		if st.Hidden {
			w.word("shidden")
		}
		if st.QuickFormat {
			w.word("sqformat")
		}
		name := st.Name
		if name == "" {
			name = e.Alias
		}
		w.text(name + ";")
		w.close()
	}
	w.close()
}

func (r *renderer) listTable() {
	entries := r.doc.Lists.Entries()
	if len(entries) == 0 {
		return
	}
	w := r.w
	w.destination("listtable")
	for _, e := range entries {
		l := e.Value
		w.open()
		w.word("list")
		w.num("listtemplateid", e.Index+1)
		switch l.Type {
		case model.ListTypeSimple:
			w.num("listsimple", 1)
		case model.ListTypeHybrid:
			w.word("listhybrid")
		}
		for i, lvl := range l.Levels {
			r.listLevel(i, lvl)
		}
		if l.Name != "" {
			w.open()
			w.word("listname")
			w.text(l.Name + ";")
			w.close()
		}
		w.num("listid", e.Index+1)
		w.close()
	}
	w.close()
}

var numberFormatCodes = map[model.NumberFormat]int{
	model.NumberFormatArabic:      0,
	model.NumberFormatUpperRoman:  1,
	model.NumberFormatLowerRoman:  2,
	model.NumberFormatUpperLetter: 3,
	model.NumberFormatLowerLetter: 4,
	model.NumberFormatOrdinal:     5,
	model.NumberFormatCardinal:    6,
	model.NumberFormatOrdinalText: 7,
	model.NumberFormatBullet:      23,
	model.NumberFormatNone:        255,
}

func justifyCode(a model.Align) int {
	switch a {
	case model.AlignCenter:
		return 1
	case model.AlignRight:
		return 2
	}
	return 0
}

func (r *renderer) listLevel(idx int, lvl model.ListLevel) {
	w := r.w
	w.open()
	w.word("listlevel")
	w.num("levelnfc", numberFormatCodes[lvl.Format])
	w.num("levelnfcn", numberFormatCodes[lvl.Format])
	w.num("leveljc", justifyCode(lvl.Justify))
	w.num("leveljcn", justifyCode(lvl.Justify))
	w.num("levelfollow", int(lvl.Follow))
	w.num("levelstartat", lvl.StartAt)

	// leveltext is length prefixed, level references are placeholder bytes
	// whose positions are listed in levelnumbers.
	var (
		length    int
		positions []int
	)
	parts := model.ParseTemplate(lvl.LevelText(idx))
	for _, p := range parts {
		if p.Level > 0 {
			length++
			positions = append(positions, length)
			continue
		}
		length += utf8.RuneCountInString(p.Literal)
	}
	w.open()
	w.word("leveltext")
	w.hex(byte(length))
	for _, p := range parts {
		if p.Level > 0 {
			w.hex(byte(p.Level - 1))
			continue
		}
		w.text(p.Literal)
	}
	w.text(";")
	w.close()

	w.open()
	w.word("levelnumbers")
	for _, pos := range positions {
		w.hex(byte(pos))
	}
	w.text(";")
	w.close()

	r.charControls(lvl.Char)
	w.num("fi", -lvl.Hanging.Twips())
	w.num("li", lvl.Indent.Twips())
	w.close()
}

func (r *renderer) listOverrideTable() {
	all := r.lists.All()
	if len(all) == 0 {
		return
	}
	w := r.w
	w.open()
	w.word("listoverridetable")
	for _, inst := range all {
		w.open()
		w.word("listoverride")
		w.num("listid", inst.List+1)
		if inst.Restart() {
			levels := r.doc.Lists.Entries()[inst.List].Value.Levels
			w.num("listoverridecount", len(levels))
			for _, lvl := range levels {
				w.open()
				w.word("lfolevel")
				w.word("listoverridestartat")
				w.num("levelstartat", lvl.StartAt)
				w.close()
			}
		} else {
			w.num("listoverridecount", 0)
		}
		w.num("ls", inst.Number)
		w.close()
	}
	w.close()
}

func (r *renderer) info() {
	info := r.doc.Info
	title := firstNonEmpty(info.Title, r.opts.Title)
	subject := firstNonEmpty(info.Subject, r.opts.Subject)
	author := firstNonEmpty(info.Author, r.opts.Creator)
	created := firstTime(info.Created, r.opts.Created)
	revised := firstTime(info.Revised, r.opts.Modified)

	w := r.w
	w.open()
	w.word("info")
	for _, f := range []struct{ name, value string }{
		{"title", title},
		{"subject", subject},
		{"author", author},
		{"manager", info.Manager},
		{"company", info.Company},
		{"operator", info.Operator},
		{"category", info.Category},
		{"keywords", info.Keywords},
		{"doccomm", info.Comment},
		{"hlinkbase", info.BaseAddress},
	} {
		if f.value == "" {
			continue
		}
		w.open()
		w.word(f.name)
		w.text(f.value)
		w.close()
	}
	r.timestamp("creatim", created)
	r.timestamp("revtim", revised)
	r.timestamp("printim", info.Printed)
	if info.Version > 0 {
		w.open()
		w.num("version", info.Version)
		w.close()
	}
	if info.Revision > 0 {
		w.open()
		w.num("vern", info.Revision)
		w.close()
	}
	w.close()
}

func (r *renderer) timestamp(name string, t time.Time) {
	if t.IsZero() {
		return
	}
	w := r.w
	w.open()
	w.word(name)
	w.num("yr", t.Year())
	w.num("mo", int(t.Month()))
	w.num("dy", t.Day())
	w.num("hr", t.Hour())
	w.num("min", t.Minute())
	w.num("sec", t.Second())
	w.close()
}

func (r *renderer) variables() {
	if len(r.doc.Variables) == 0 {
		return
	}
	names := slices.Collect(maps.Keys(r.doc.Variables))
	sort.Sort(natural.StringSlice(names))

	w := r.w
	for _, name := range names {
		w.destination("docvar")
		w.open()
		w.text(name)
		w.close()
		w.open()
		w.text(r.doc.Variables[name])
		w.close()
		w.close()
	}
}

func (r *renderer) pageSetup() {
	p, w := r.doc.Page, r.w
	w.num("paperw", p.Width.Twips())
	w.num("paperh", p.Height.Twips())
	w.num("margl", p.MarginLeft.Twips())
	w.num("margr", p.MarginRight.Twips())
	w.num("margt", p.MarginTop.Twips())
	w.num("margb", p.MarginBottom.Twips())
	if g := p.Gutter.Twips(); g > 0 {
		w.num("gutter", g)
	}
	if p.FacingPages {
		w.word("facingp")
	}
	if p.MirrorMargins {
		w.word("margmirror")
	}
	if p.Landscape {
		w.word("landscape")
	}

	fn, en := p.Footnotes, p.Endnotes
	w.num("fet", 2)
	if fn.Position == model.FootnotePositionBeneathText {
		w.word("ftntj")
	} else {
		w.word("ftnbj")
	}
	if en.Position == model.EndnotePositionSectionEnd {
		w.word("aendnotes")
	} else {
		w.word("aenddoc")
	}
	w.num("ftnstart", max(fn.Start, 1))
	w.num("aftnstart", max(en.Start, 1))
	switch fn.Restart {
	case model.NoteRestartEachSection:
		w.word("ftnrestart")
	case model.NoteRestartEachPage:
		w.word("ftnrstpg")
	default:
		w.word("ftnrstcont")
	}
	w.word("ftnn" + noteFormat(fn.Format))
	w.word("aftnn" + noteFormat(en.Format))
}

func noteFormat(f model.NumberFormat) string {
	switch f {
	case model.NumberFormatLowerLetter:
		return "alc"
	case model.NumberFormatUpperLetter:
		return "auc"
	case model.NumberFormatLowerRoman:
		return "rlc"
	case model.NumberFormatUpperRoman:
		return "ruc"
	case model.NumberFormatBullet:
		return "chi"
	}
	return "ar"
}

func (r *renderer) typography() {
	t, w := r.doc.Typography, r.w
	w.num("deftab", t.DefaultTab.Twips())
	w.num("hyphauto", boolInt(t.AutoHyphenation))
	if z, ok := t.HyphenationZone.Get(); ok {
		w.num("hyphhotz", z.Twips())
	}
	if t.ConsecutiveHyphens > 0 {
		w.num("hyphconsec", t.ConsecutiveHyphens)
	}
	w.num("hyphcaps", boolInt(t.HyphenateCaps))
	if t.WidowControl {
		w.word("widowctrl")
	}
	if k, ok := t.Kerning.Get(); ok {
		w.destination("defchp")
		w.num("kerning", k.HalfPoints())
		w.close()
	}
}

func (r *renderer) view() {
	v, w := r.doc.View, r.w
	w.num("viewkind", int(v.Kind))
	if v.Scale > 0 {
		w.num("viewscale", v.Scale)
	}
	if v.Zoom != model.ZoomKindNone {
		w.num("viewzk", int(v.Zoom))
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstTime(values ...time.Time) time.Time {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return time.Time{}
}
