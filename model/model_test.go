package model

import (
	"testing"

	yaml "gopkg.in/yaml.v3"

	"rtdoc/units"
)

func TestStructurallyEqualValuesShareIndex(t *testing.T) {
	doc := NewDocument()

	red := doc.AddColor(Color{R: 255}, "red")
	crimson := doc.AddColor(Color{R: 255}, "crimson")
	if doc.Colors.Index(red) != doc.Colors.Index(crimson) {
		t.Errorf("colors: %d != %d", doc.Colors.Index(red), doc.Colors.Index(crimson))
	}

	f1 := doc.AddFont(Font{Name: "Arial", Family: FontFamilySwiss}, "sans")
	f2 := doc.AddFont(Font{Name: "Arial", Family: FontFamilySwiss}, "")
	if f1 != f2 {
		t.Errorf("font without alias must return existing alias, got %q", f2)
	}

	st := Style{Name: "Heading", Char: CharFormat{Bold: Some(true)}, Para: ParaFormat{OutlineLevel: Some(0)}}
	h1 := doc.AddStyle(st, "h1")
	title := doc.AddStyle(st, "title")
	if doc.Styles.Index(h1) != doc.Styles.Index(title) {
		t.Error("equal styles must share index")
	}
	if doc.Styles.Len() != 1 {
		t.Errorf("Styles.Len() = %d, want 1", doc.Styles.Len())
	}
}

func TestIdenticalListsAreDistinct(t *testing.T) {
	doc := NewDocument()
	levels := []ListLevel{{Format: NumberFormatArabic, StartAt: 1}}

	a := doc.AddList(&List{Levels: levels}, "")
	b := doc.AddList(&List{Levels: levels}, "")
	if doc.Lists.Index(a) == doc.Lists.Index(b) {
		t.Fatal("identical lists must get different indices")
	}
}

func TestCopyFromIsDeep(t *testing.T) {
	src := NewDocument()
	src.SetVariable("version", "1")
	src.AddColor(Color{G: 128}, "green")
	src.AddList(&List{Levels: []ListLevel{{Text: "%1."}}}, "numbers")
	src.AddComment(&Comment{Author: "Ann Lee", Body: []*Paragraph{NewParagraph(ParagraphFormat{}, "note")}}, "c")

	pic := &Picture{Data: []byte{1, 2, 3}}
	note := &Footnote{Body: NewParagraph(ParagraphFormat{}, "foot")}
	sec := src.AddSection(SectionFormat{})
	sec.Add(
		&Paragraph{Runs: []*Run{{Items: []Inline{Text("a"), pic, note}, Link: &Hyperlink{Target: "x"}}}},
		&Table{Rows: []*Row{{Cells: []*Cell{{Content: []Element{NewParagraph(ParagraphFormat{}, "cell")}}}}}},
		&Container{Content: []Element{ColumnBreak{}}},
	)

	dst := NewDocument()
	dst.CopyFrom(src)

	// mutate source after copying
	src.SetVariable("version", "2")
	src.AddColor(Color{B: 1}, "blue")
	list, _ := src.Lists.Get("numbers")
	list.Value.Levels[0].Text = "changed"
	cm, _ := src.Comments.Get("c")
	cm.Value.Body[0].Runs[0].Items[0] = Text("changed")
	pic.Data[0] = 9
	note.Body.Runs[0].Items[0] = Text("changed")
	sec.Body[0].(*Paragraph).Runs[0].Link.Target = "y"
	sec.Body[1].(*Table).Rows[0].Cells[0].Content = nil

	if dst.Variables["version"] != "1" {
		t.Error("variables are shared")
	}
	if dst.Colors.Has("blue") || dst.Colors.Index("green") != 0 {
		t.Error("color registry is shared or index changed")
	}
	if l, _ := dst.Lists.Get("numbers"); l.Value.Levels[0].Text != "%1." {
		t.Error("lists are shared")
	}
	if c, _ := dst.Comments.Get("c"); c.Value.Body[0].PlainText() != "note" {
		t.Error("comments are shared")
	}

	p := dst.Sections[0].Body[0].(*Paragraph)
	if p.Runs[0].Items[1].(*Picture).Data[0] != 1 {
		t.Error("picture data is shared")
	}
	if p.Runs[0].Items[2].(*Footnote).Body.PlainText() != "foot" {
		t.Error("footnote body is shared")
	}
	if p.Runs[0].Link.Target != "x" {
		t.Error("hyperlink is shared")
	}
	if len(dst.Sections[0].Body[1].(*Table).Rows[0].Cells[0].Content) != 1 {
		t.Error("table cells are shared")
	}
	if _, ok := dst.Sections[0].Body[2].(*Container).Content[0].(ColumnBreak); !ok {
		t.Error("container content lost")
	}
}

func TestOptYAML(t *testing.T) {
	var f CharFormat
	in := "bold: true\nsize: 12pt\nunderline: double\n"
	if err := yaml.Unmarshal([]byte(in), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v, ok := f.Bold.Get(); !ok || !v {
		t.Error("bold not set")
	}
	if f.Size != Some(units.Points(12)) {
		t.Errorf("size = %v", f.Size.Value())
	}
	if f.Underline != Some(UnderlineDouble) {
		t.Errorf("underline = %v", f.Underline.Value())
	}
	if f.Italic.IsSet() {
		t.Error("italic must stay unset")
	}
}

func TestCharFormatOverAndDiff(t *testing.T) {
	base := CharFormat{Bold: Some(true), Font: Some("f1")}
	run := CharFormat{Bold: Some(false), Italic: Some(true)}

	eff := run.Over(base)
	if eff.Bold != Some(false) || eff.Font != Some("f1") || eff.Italic != Some(true) {
		t.Errorf("Over() = %+v", eff)
	}

	d := eff.Diff(base)
	if d.Font.IsSet() {
		t.Error("unchanged field reported by Diff")
	}
	if d.Bold != Some(false) || d.Italic != Some(true) {
		t.Errorf("Diff() = %+v", d)
	}
	if !base.Diff(base).IsEmpty() {
		t.Error("Diff of equal formats must be empty")
	}
}

func TestParseTemplate(t *testing.T) {
	parts := ParseTemplate("%1.%2) 100%%")
	want := []TemplatePart{{Level: 1}, {Literal: "."}, {Level: 2}, {Literal: ") 100%"}}
	if len(parts) != len(want) {
		t.Fatalf("ParseTemplate() = %+v", parts)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d = %+v, want %+v", i, parts[i], want[i])
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n      int
		format NumberFormat
		want   string
	}{
		{4, NumberFormatArabic, "4"},
		{14, NumberFormatUpperRoman, "XIV"},
		{9, NumberFormatLowerRoman, "ix"},
		{3, NumberFormatUpperLetter, "C"},
		{27, NumberFormatLowerLetter, "aa"},
		{2, NumberFormatOrdinal, "2nd"},
		{12, NumberFormatOrdinal, "12th"},
		{3, NumberFormatCardinal, "Three"},
		{1, NumberFormatOrdinalText, "First"},
		{5, NumberFormatNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := FormatNumber(tt.n, tt.format); got != tt.want {
				t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestLevelTextDefaults(t *testing.T) {
	if got := (ListLevel{}).LevelText(2); got != "%3." {
		t.Errorf("numbered default = %q", got)
	}
	if got := (ListLevel{Format: NumberFormatBullet}).LevelText(0); got != "•" {
		t.Errorf("bullet default = %q", got)
	}
	if got := (ListLevel{Text: "(%1)"}).LevelText(0); got != "(%1)" {
		t.Errorf("explicit text = %q", got)
	}
}

func TestGeometryInheritsDocumentPage(t *testing.T) {
	doc := NewDocument()
	s := doc.AddSection(SectionFormat{MarginLeft: Some(units.Inches(2)), Landscape: Some(true), Columns: 2})

	g := doc.Geometry(s.Format)
	if g.Width != DefaultPageHeight || g.Height != DefaultPageWidth {
		t.Errorf("landscape not applied: %dx%d", g.Width, g.Height)
	}
	if g.MarginLeft != 2880 || g.MarginRight != DefaultMargin {
		t.Errorf("margins = %d/%d", g.MarginLeft, g.MarginRight)
	}
	if got, want := g.TextWidth(), DefaultPageHeight-2880-DefaultMargin; got != want {
		t.Errorf("TextWidth() = %d, want %d", got, want)
	}
	if got, want := g.ColumnWidth(), (g.TextWidth()-DefaultTab)/2; got != want {
		t.Errorf("ColumnWidth() = %d, want %d", got, want)
	}
}

func TestCommentHelpers(t *testing.T) {
	c := &Comment{Author: "john ronald tolkien"}
	if got := c.AuthorInitials(); got != "JRT" {
		t.Errorf("AuthorInitials() = %q", got)
	}
	if !c.IsEmpty() {
		t.Error("comment without body must be empty")
	}
	c.Body = []*Paragraph{NewParagraph(ParagraphFormat{}, "")}
	if !c.IsEmpty() {
		t.Error("comment with blank paragraph must be empty")
	}
	c.Body = append(c.Body, NewParagraph(ParagraphFormat{}, "x"))
	if c.IsEmpty() {
		t.Error("comment with text is not empty")
	}
}

func TestFlatten(t *testing.T) {
	p1, p2, p3 := &Paragraph{}, &Paragraph{}, &Paragraph{}
	got := Flatten([]Element{p1, &Container{Content: []Element{p2, &Container{Content: []Element{p3}}}}})
	if len(got) != 3 || got[0] != p1 || got[1] != p2 || got[2] != p3 {
		t.Errorf("Flatten() = %v", got)
	}
}

func TestSplitFirstWord(t *testing.T) {
	pic := &Picture{}
	tests := []struct {
		name       string
		items      []Inline
		head, tail string
		tailNil    bool
	}{
		{"two words", []Inline{Text("first word")}, "first", " word", false},
		{"leading space", []Inline{Text("  lead rest")}, "  lead", " rest", false},
		{"single word", []Inline{Text("alone")}, "alone", "", true},
		{"word then picture", []Inline{Text("alone"), pic}, "alone", "", false},
		{"no text", []Inline{pic}, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, tail := SplitFirstWord(tt.items)
			if got := (&Run{Items: head}).PlainText(); got != tt.head {
				t.Errorf("head = %q, want %q", got, tt.head)
			}
			if (tail == nil) != tt.tailNil {
				t.Fatalf("tail = %v", tail)
			}
			if got := (&Run{Items: tail}).PlainText(); got != tt.tail {
				t.Errorf("tail = %q, want %q", got, tt.tail)
			}
		})
	}
}

func TestBookmarkName(t *testing.T) {
	doc := NewDocument()
	doc.AddBookmark("chapter")
	if got := doc.BookmarkName("chapter"); got != "chapter" {
		t.Errorf("BookmarkName() = %q", got)
	}
	if got := doc.BookmarkName("unknown"); got != "unknown" {
		t.Errorf("unknown alias must be returned as is, got %q", got)
	}
}
