package rtf

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"rtdoc/model"
	"rtdoc/units"
	"rtdoc/utils/images"
)

// paraEnd describes how paragraph is finished: term is the terminating
// control word ("par", "cell", "nestcell" or nothing), lead writes content
// preceding the first run (note marks).
type paraEnd struct {
	term string
	lead func()
}

func (r *renderer) paragraph(p *model.Paragraph, sc scope, end paraEnd) error {
	w := r.w
	w.word("pard")
	w.word("plain")
	if sc.depth > 0 {
		w.word("intbl")
		if sc.depth > 1 {
			w.num("itap", sc.depth)
		}
	}
	if idx := r.doc.Styles.Index(p.Format.Style); idx >= 0 {
		w.num("s", idx)
	}

	para, char := r.res.ResolveParagraph(p.Format)
	if ref, ok := p.Format.List.Get(); ok {
		if e, err := r.doc.Lists.Get(ref.List); err == nil {
			if lvl, ok := e.Value.Level(ref.Level); ok {
				inst := r.lists.Lookup(e.Index, r.section)
				r.listText(r.counter(inst).next(e.Value, ref.Level), lvl, char)
				w.num("ls", inst)
				w.num("ilvl", ref.Level)
				para = para.Over(model.ParaFormat{
					IndentLeft:  model.Some(lvl.Indent),
					IndentFirst: model.Some(units.Twips(-lvl.Hanging.Twips())),
				})
			}
		}
	}
	r.paraControls(para)
	r.charControls(char)

	if end.lead != nil {
		end.lead()
	}
	for i, run := range p.Runs {
		if err := r.run(run, char); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	if end.term != "" {
		w.word(end.term)
	}
	return nil
}

// listText writes number text for readers which do not understand list
// tables.
func (r *renderer) listText(text string, lvl model.ListLevel, char model.CharFormat) {
	w := r.w
	w.open()
	w.word("listtext")
	w.word("pard")
	w.word("plain")
	r.charControls(lvl.Char.Over(char))
	w.text(text)
	switch lvl.Follow {
	case model.FollowTab:
		w.word("tab")
	case model.FollowSpace:
		w.text(" ")
	}
	w.close()
}

// listCounter tracks current numbers of every level of a list instance.
type listCounter struct {
	cur     [model.MaxListLevels]int
	started [model.MaxListLevels]bool
}

func (r *renderer) counter(inst int) *listCounter {
	c, ok := r.counters[inst]
	if !ok {
		c = &listCounter{}
		r.counters[inst] = c
	}
	return c
}

// next advances level counter, restarts deeper levels and returns number
// text of the level.
func (c *listCounter) next(l *model.List, level int) string {
	if c.started[level] {
		c.cur[level]++
	} else {
		c.cur[level], c.started[level] = l.Levels[level].StartAt, true
	}
	for k := level + 1; k < len(c.started); k++ {
		c.started[k] = false
	}

	var b strings.Builder
	for _, p := range model.ParseTemplate(l.Levels[level].LevelText(level)) {
		if p.Level == 0 {
			b.WriteString(p.Literal)
			continue
		}
		k := p.Level - 1
		if k >= len(l.Levels) {
			continue
		}
		n := c.cur[k]
		if !c.started[k] {
			n = l.Levels[k].StartAt
		}
		b.WriteString(model.FormatNumber(n, l.Levels[k].Format))
	}
	return b.String()
}

func (r *renderer) run(run *model.Run, paraChar model.CharFormat) error {
	w := r.w
	diff := r.res.ResolveRun(paraChar, run).Diff(paraChar)

	if run.Bookmark != "" {
		w.destination("bkmkstart")
		w.text(r.doc.BookmarkName(run.Bookmark))
		w.close()
	}

	comment, cidx := r.comment(run.Comment)
	if comment != nil {
		w.destination("atrfstart")
		w.text(strconv.Itoa(cidx))
		w.close()
	}

	if run.Link != nil {
		w.open()
		w.word("field")
		w.destination("fldinst")
		w.text(r.hyperlink(run.Link))
		w.close()
		w.open()
		w.word("fldrslt")
	}

	grouped := !diff.IsEmpty()
	if grouped {
		w.open()
		if e, err := r.doc.Styles.Get(run.Style); err == nil && e.Value.Kind == model.StyleKindCharacter {
			w.num("cs", e.Index)
		}
		r.charControls(diff)
	}

	head, tail := run.Items, []model.Inline(nil)
	if comment != nil && comment.Scope == model.CommentScopeWord {
		head, tail = model.SplitFirstWord(run.Items)
	}
	if err := r.items(head); err != nil {
		return err
	}
	if comment != nil && tail != nil {
		if err := r.annotation(comment, cidx); err != nil {
			return err
		}
		comment = nil
		if err := r.items(tail); err != nil {
			return err
		}
	}

	if grouped {
		w.close()
	}
	if run.Link != nil {
		w.close()
		w.close()
	}
	if comment != nil {
		if err := r.annotation(comment, cidx); err != nil {
			return err
		}
	}
	if run.Bookmark != "" {
		w.destination("bkmkend")
		w.text(r.doc.BookmarkName(run.Bookmark))
		w.close()
	}
	return nil
}

func (r *renderer) hyperlink(l *model.Hyperlink) string {
	var target string
	switch l.Kind {
	case model.LinkKindBookmark:
		target = `\l "` + r.doc.BookmarkName(l.Target) + `"`
	case model.LinkKindEmail:
		addr := l.Target
		if !strings.HasPrefix(addr, "mailto:") {
			addr = "mailto:" + addr
		}
		target = `"` + strings.ReplaceAll(addr, `"`, "%22") + `"`
	default:
		target = `"` + strings.ReplaceAll(l.Target, `"`, "%22") + `"`
	}
	s := "HYPERLINK " + target
	if l.Tooltip != "" {
		s += ` \o "` + strings.ReplaceAll(l.Tooltip, `"`, "'") + `"`
	}
	return s
}

func (r *renderer) items(items []model.Inline) error {
	w := r.w
	for _, it := range items {
		switch v := it.(type) {
		case model.Text:
			w.text(string(v))
		case model.Special:
			r.special(v.Kind)
		case *model.Footnote:
			if err := r.footnote(v); err != nil {
				return err
			}
		case *model.Picture:
			if err := r.picture(v); err != nil {
				return err
			}
		default:
			return model.UnknownElement("rtf run", it)
		}
	}
	return nil
}

func (r *renderer) special(k model.SpecialKind) {
	w := r.w
	switch k {
	case model.SpecialKindPageBreak:
		w.word("page")
	case model.SpecialKindLineBreak:
		w.word("line")
	case model.SpecialKindColumnBreak:
		w.word("column")
	case model.SpecialKindTab:
		w.word("tab")
	case model.SpecialKindNonBreakingSpace:
		w.symbol('~')
	case model.SpecialKindNonBreakingHyphen:
		w.symbol('_')
	case model.SpecialKindOptionalHyphen:
		w.symbol('-')
	case model.SpecialKindPageNumber:
		r.field("PAGE", "1")
	case model.SpecialKindTotalPages:
		r.field("NUMPAGES", "1")
	case model.SpecialKindDate:
		w.word("chdate")
	case model.SpecialKindTime:
		w.word("chtime")
	}
}

// field writes computed field with a precalculated result.
func (r *renderer) field(instruction, result string) {
	w := r.w
	w.open()
	w.word("field")
	w.destination("fldinst")
	w.text(instruction)
	w.close()
	w.open()
	w.word("fldrslt")
	w.text(result)
	w.close()
	w.close()
}

func (r *renderer) footnote(fn *model.Footnote) error {
	w := r.w
	mark := func() {
		w.open()
		w.word("super")
		if fn.Mark == "" {
			w.word("chftn")
		} else {
			w.text(fn.Mark)
		}
		w.close()
	}
	mark()

	w.open()
	w.word("footnote")
	if fn.Endnote {
		w.word("ftnalt")
	}
	body := fn.Body
	if body == nil {
		body = &model.Paragraph{}
	}
	if err := r.paragraph(body, scope{}, paraEnd{lead: func() {
		mark()
		w.text(" ")
	}}); err != nil {
		return fmt.Errorf("note body: %w", err)
	}
	w.close()
	return nil
}

// comment returns comment referenced by alias with its number, nil when
// there is nothing to emit.
func (r *renderer) comment(alias string) (*model.Comment, int) {
	if alias == "" {
		return nil, 0
	}
	e, err := r.doc.Comments.Get(alias)
	if err != nil || e.Value.IsEmpty() {
		return nil, 0
	}
	return e.Value, e.Index
}

func (r *renderer) annotation(c *model.Comment, n int) error {
	w := r.w
	w.destination("atrfend")
	w.text(strconv.Itoa(n))
	w.close()
	w.destination("atnid")
	w.text(c.AuthorInitials())
	w.close()
	w.destination("atnauthor")
	w.text(c.Author)
	w.close()
	w.word("chatn")

	w.destination("annotation")
	if t := firstTime(c.Time, r.opts.Modified); !t.IsZero() {
		w.destination("atndate")
		w.text(strconv.Itoa(dttm(t)))
		w.close()
	}
	w.destination("atnref")
	w.text(strconv.Itoa(n))
	w.close()

	var body []*model.Paragraph
	for _, p := range c.Body {
		if p != nil {
			body = append(body, p)
		}
	}
	for i, p := range body {
		end := paraEnd{term: "par"}
		if i == len(body)-1 {
			end.term = ""
		}
		if i == 0 {
			end.lead = func() {
				w.open()
				w.word("chatn")
				w.close()
			}
		}
		if err := r.paragraph(p, scope{}, end); err != nil {
			return fmt.Errorf("comment %d: %w", n, err)
		}
	}
	w.close()
	return nil
}

// dttm packs time the way annotation dates are stored: minutes, hours, day,
// month, years since 1900 and weekday in consecutive bit fields.
func dttm(t time.Time) int {
	v := uint32(t.Minute()) |
		uint32(t.Hour())<<6 |
		uint32(t.Day())<<11 |
		uint32(t.Month())<<16 |
		uint32(t.Year()-1900)<<20 |
		uint32(t.Weekday())<<29
	return int(int32(v))
}

// hexLineLength is the number of hex digits per line of picture data.
const hexLineLength = 128

func (r *renderer) picture(p *model.Picture) error {
	pic, err := images.Normalize(p.Data, r.opts.Pictures)
	if err != nil {
		return fmt.Errorf("unable to embed picture: %w", err)
	}
	if pic.Converted {
		r.log.Debug("Picture normalized", zap.String("format", string(pic.Format)), zap.Int("width", pic.Width), zap.Int("height", pic.Height))
	}
	width, height := p.DisplaySize(pic.Width, pic.Height)

	w := r.w
	w.open()
	w.word("pict")
	if p.Description != "" {
		w.destination("picprop")
		w.open()
		w.word("sp")
		w.open()
		w.word("sn")
		w.text("wzDescription")
		w.close()
		w.open()
		w.word("sv")
		w.text(p.Description)
		w.close()
		w.close()
		w.close()
	}
	if pic.Format == images.FormatJPEG {
		w.word("jpegblip")
	} else {
		w.word("pngblip")
	}
	w.num("picw", pic.Width)
	w.num("pich", pic.Height)
	w.num("picwgoal", width)
	w.num("pichgoal", height)
	if v, ok := p.ScaleX.Get(); ok {
		w.num("picscalex", v)
	}
	if v, ok := p.ScaleY.Get(); ok {
		w.num("picscaley", v)
	}
	for _, c := range []struct {
		name string
		v    units.Size
	}{
		{"piccropl", p.CropLeft},
		{"piccropt", p.CropTop},
		{"piccropr", p.CropRight},
		{"piccropb", p.CropBottom},
	} {
		if t := c.v.Twips(); t != 0 {
			w.num(c.name, t)
		}
	}

	enc := make([]byte, hex.EncodedLen(len(pic.Data)))
	hex.Encode(enc, pic.Data)
	for len(enc) > 0 {
		n := min(len(enc), hexLineLength)
		w.raw(enc[:n])
		enc = enc[n:]
	}
	w.close()
	return nil
}
