package model

import (
	"math"
	"strings"
	"time"
	"unicode"

	"rtdoc/units"
)

// Element is a block level node of section content: *Paragraph, *Table,
// *Container or ColumnBreak. The set is closed.
type Element interface {
	element()
}

// Paragraph is a block of runs.
type Paragraph struct {
	Format ParagraphFormat
	Runs   []*Run
}

// NewParagraph creates paragraph out of plain text runs.
func NewParagraph(format ParagraphFormat, texts ...string) *Paragraph {
	p := &Paragraph{Format: format}
	for _, t := range texts {
		p.Runs = append(p.Runs, &Run{Items: []Inline{Text(t)}})
	}
	return p
}

// Add appends runs and returns paragraph for chaining.
func (p *Paragraph) Add(runs ...*Run) *Paragraph {
	p.Runs = append(p.Runs, runs...)
	return p
}

// HasContent reports whether any run carries at least one content item that
// produces output (non-empty text, picture, note or special).
func (p *Paragraph) HasContent() bool {
	if p == nil {
		return false
	}
	for _, r := range p.Runs {
		if r.HasContent() {
			return true
		}
	}
	return false
}

// PlainText returns concatenated text of all runs.
func (p *Paragraph) PlainText() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.PlainText())
	}
	return b.String()
}

// Table is a grid of rows. Columns define the grid, rows may hold fewer
// cells than there are columns.
type Table struct {
	Format  TableFormat
	Columns []Column
	Rows    []*Row
}

// Column is a grid column. Width, when set, is used verbatim, remaining space
// is shared by the other columns proportionally to Weight (0 means 1).
type Column struct {
	Width  Opt[units.Size]
	Weight float64
}

type Row struct {
	Format RowFormat
	Cells  []*Cell
}

type Cell struct {
	Format  CellFormat
	Content []Element
}

// Elements returns cell content, one empty paragraph when nothing was added.
func (c *Cell) Elements() []Element {
	if len(c.Content) == 0 {
		return []Element{&Paragraph{}}
	}
	return c.Content
}

// Container groups elements, emitters flatten it.
type Container struct {
	Content []Element
}

// ColumnBreak forces text to continue in the next text column.
type ColumnBreak struct{}

func (*Paragraph) element()  {}
func (*Table) element()      {}
func (*Container) element()  {}
func (ColumnBreak) element() {}

// Run is a sequence of inline content sharing character formatting.
type Run struct {
	Style    string
	Format   CharFormat
	Bookmark string
	Link     *Hyperlink
	Comment  string
	Items    []Inline
}

// NewRun creates run with text content.
func NewRun(format CharFormat, text string) *Run {
	return &Run{Format: format, Items: []Inline{Text(text)}}
}

func (r *Run) HasContent() bool {
	for _, it := range r.Items {
		if t, ok := it.(Text); ok && len(t) == 0 {
			continue
		}
		return true
	}
	return false
}

func (r *Run) PlainText() string {
	var b strings.Builder
	for _, it := range r.Items {
		if t, ok := it.(Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// Hyperlink target of a run. For bookmark links Target is bookmark alias.
type Hyperlink struct {
	Kind    LinkKind
	Target  string
	Tooltip string
}

// Inline is run content: Text, *Picture, *Footnote or Special. The set is
// closed.
type Inline interface {
	inline()
}

type Text string

// Special is non textual inline content (breaks, fields, special chars).
type Special struct {
	Kind SpecialKind
}

// Footnote is a footnote or endnote reference with its body. Empty Mark
// means automatic numbering.
type Footnote struct {
	Endnote bool
	Mark    string
	Body    *Paragraph
}

// Picture is an embedded image. Display size defaults to the pixel size of
// the image at 96 dpi.
type Picture struct {
	Data        []byte
	Width       Opt[units.Size]
	Height      Opt[units.Size]
	CropLeft    units.Size
	CropTop     units.Size
	CropRight   units.Size
	CropBottom  units.Size
	ScaleX      Opt[int]
	ScaleY      Opt[int]
	Description string
}

// DisplaySize returns display size in twips for a picture of the given pixel
// size. A single set dimension keeps the aspect ratio.
func (p *Picture) DisplaySize(pxWidth, pxHeight int) (int, int) {
	w, h := units.Pixels(pxWidth).Twips(), units.Pixels(pxHeight).Twips()
	sw, wok := p.Width.Get()
	sh, hok := p.Height.Get()
	switch {
	case wok && hok:
		return sw.Twips(), sh.Twips()
	case wok && w > 0:
		return sw.Twips(), int(math.Round(float64(h) * float64(sw.Twips()) / float64(w)))
	case hok && h > 0:
		return int(math.Round(float64(w) * float64(sh.Twips()) / float64(h))), sh.Twips()
	}
	return w, h
}

// SplitFirstWord splits items after the first word of the first text item.
// Tail is nil when there is nothing after the word.
func SplitFirstWord(items []Inline) ([]Inline, []Inline) {
	for i, it := range items {
		t, ok := it.(Text)
		if !ok {
			continue
		}
		s := string(t)
		start := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
		end := strings.IndexFunc(s[start:], unicode.IsSpace)
		if end < 0 {
			if i+1 == len(items) {
				return items, nil
			}
			return items[:i+1], items[i+1:]
		}
		end += start
		head := append(append([]Inline(nil), items[:i]...), Text(s[:end]))
		tail := append([]Inline{Text(s[end:])}, items[i+1:]...)
		return head, tail
	}
	return items, nil
}

func (Text) inline()      {}
func (Special) inline()   {}
func (*Footnote) inline() {}
func (*Picture) inline()  {}

// Comment is an annotation attached to a run.
type Comment struct {
	Author   string
	Initials string
	Time     time.Time
	Scope    CommentScope
	Body     []*Paragraph
}

// IsEmpty reports comment without a single non-empty paragraph. Such
// comments are not emitted.
func (c *Comment) IsEmpty() bool {
	for _, p := range c.Body {
		if p.HasContent() {
			return false
		}
	}
	return true
}

// AuthorInitials returns Initials or initials derived from Author.
func (c *Comment) AuthorInitials() string {
	if c.Initials != "" {
		return c.Initials
	}
	var b strings.Builder
	for _, w := range strings.Fields(c.Author) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

// Flatten returns elements with containers expanded in place.
func Flatten(elements []Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if c, ok := e.(*Container); ok {
			out = append(out, Flatten(c.Content)...)
			continue
		}
		out = append(out, e)
	}
	return out
}

// WalkParagraphs calls fn for every paragraph reachable from elements,
// descending into containers and table cells. Footnote bodies are not
// visited.
func WalkParagraphs(elements []Element, fn func(p *Paragraph)) {
	for _, e := range elements {
		switch v := e.(type) {
		case *Paragraph:
			fn(v)
		case *Container:
			WalkParagraphs(v.Content, fn)
		case *Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					WalkParagraphs(cell.Content, fn)
				}
			}
		}
	}
}
