package validate

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"rtdoc/model"
	"rtdoc/units"
)

func setupTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
}

func validDocument() *model.Document {
	doc := model.NewDocument()
	doc.AddFont(model.Font{Name: "Times New Roman", Family: model.FontFamilyRoman}, "serif")
	doc.AddColor(model.Color{R: 200}, "red")
	doc.AddStyle(model.Style{Name: "Normal", Kind: model.StyleKindParagraph, Char: model.CharFormat{Font: model.Some("serif")}}, "normal")
	doc.AddStyle(model.Style{Name: "Strong", Kind: model.StyleKindCharacter, Char: model.CharFormat{Bold: model.Some(true)}}, "strong")
	doc.AddList(&model.List{Levels: []model.ListLevel{{Format: model.NumberFormatArabic, StartAt: 1, Text: "%1."}}}, "numbers")
	doc.AddBookmark("top")

	sec := doc.AddSection(model.SectionFormat{})
	p := model.NewParagraph(model.ParagraphFormat{Style: "normal"}, "Hello ")
	p.Add(&model.Run{Style: "strong", Bookmark: "top", Items: []model.Inline{model.Text("world")}})
	sec.Add(p, &model.Paragraph{
		Format: model.ParagraphFormat{List: model.Some(model.ListRef{List: "numbers"})},
		Runs:   []*model.Run{{Link: &model.Hyperlink{Kind: model.LinkKindBookmark, Target: "top"}, Items: []model.Inline{model.Text("back")}}},
	})
	return doc
}

func errorPath(t *testing.T, err error) string {
	t.Helper()
	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	return ve.Path
}

func TestValidDocument(t *testing.T) {
	adv, err := Check(validDocument(), setupTestLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(adv) != 0 {
		t.Errorf("unexpected advisories: %v", adv)
	}
}

func TestPageWidthBelowMinimum(t *testing.T) {
	doc := validDocument()
	doc.Page.Width = units.Twips(1000)

	_, err := Check(doc, setupTestLogger(t))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if path := errorPath(t, err); path != "page.width" {
		t.Errorf("path = %q, want page.width", path)
	}
	var ve *Error
	errors.As(err, &ve)
	if ve.Rule != "min=1440" {
		t.Errorf("rule = %q", ve.Rule)
	}
}

func TestViolations(t *testing.T) {
	tests := []struct {
		name   string
		modify func(doc *model.Document)
		path   string
	}{
		{
			name: "unknown paragraph style",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Format.Style = "missing"
			},
			path: "sections[0].body[0].style",
		},
		{
			name: "character style used for paragraph",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Format.Style = "strong"
			},
			path: "sections[0].body[0].style",
		},
		{
			name: "list level out of range",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[1].(*model.Paragraph).Format.List = model.Some(model.ListRef{List: "numbers", Level: 3})
			},
			path: "sections[0].body[1].list.level",
		},
		{
			name: "link to unknown bookmark",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[1].(*model.Paragraph).Runs[0].Link.Target = "bottom"
			},
			path: "sections[0].body[1].runs[0].link.target",
		},
		{
			name: "unknown font",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Runs[0].Format.Font = model.Some("mono")
			},
			path: "sections[0].body[0].runs[0].char.font",
		},
		{
			name: "zero font size",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Runs[0].Format.Size = model.Some(units.Twips(0))
			},
			path: "sections[0].body[0].runs[0].char.size",
		},
		{
			name: "font size too large",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Runs[0].Format.Size = model.Some(units.Points(2000))
			},
			path: "sections[0].body[0].runs[0].char.size",
		},
		{
			name: "zero horizontal scaling",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Runs[0].Format.Scaling = model.Some(0)
			},
			path: "sections[0].body[0].runs[0].char.scaling",
		},
		{
			name: "horizontal scaling below minimum",
			modify: func(doc *model.Document) {
				doc.Sections[0].Body[0].(*model.Paragraph).Runs[0].Format.Scaling = model.Some(10)
			},
			path: "sections[0].body[0].runs[0].char.scaling",
		},
		{
			name: "zero section width",
			modify: func(doc *model.Document) {
				doc.Sections[0].Format.Width = model.Some(units.Twips(0))
			},
			path: "sections[0].format.width",
		},
		{
			name: "empty footnote",
			modify: func(doc *model.Document) {
				run := doc.Sections[0].Body[0].(*model.Paragraph).Runs[0]
				run.Items = append(run.Items, &model.Footnote{Body: &model.Paragraph{}})
			},
			path: "sections[0].body[0].runs[0].items[1].body",
		},
		{
			name: "undecodable picture",
			modify: func(doc *model.Document) {
				run := doc.Sections[0].Body[0].(*model.Paragraph).Runs[0]
				run.Items = append(run.Items, &model.Picture{Data: []byte("not a picture")})
			},
			path: "sections[0].body[0].runs[0].items[1].data",
		},
		{
			name: "list template refers to deeper level",
			modify: func(doc *model.Document) {
				doc.AddList(&model.List{Levels: []model.ListLevel{{Text: "%2."}}}, "bad")
			},
			path: "lists[bad].levels[0].text",
		},
		{
			name: "list without levels",
			modify: func(doc *model.Document) {
				doc.AddList(&model.List{}, "empty")
			},
			path: "lists[empty].levels",
		},
		{
			name: "bookmark with spaces",
			modify: func(doc *model.Document) {
				doc.AddBookmark("two words")
			},
			path: "bookmarks[two words]",
		},
		{
			name: "unknown base style",
			modify: func(doc *model.Document) {
				doc.AddStyle(model.Style{Name: "Quote", Base: model.Some("nothing")}, "quote")
			},
			path: "styles[quote].base",
		},
		{
			name: "bad language tag",
			modify: func(doc *model.Document) {
				doc.Typography.Language = "not a language"
			},
			path: "typography.language",
		},
		{
			name: "comment attached twice",
			modify: func(doc *model.Document) {
				doc.AddComment(&model.Comment{Author: "Ann", Body: []*model.Paragraph{model.NewParagraph(model.ParagraphFormat{}, "note")}}, "c1")
				doc.Sections[0].Body[0].(*model.Paragraph).Runs[0].Comment = "c1"
				doc.Sections[0].Body[1].(*model.Paragraph).Runs[0].Comment = "c1"
			},
			path: "sections[0].body[1].runs[0].comment",
		},
		{
			name: "margins wider than page",
			modify: func(doc *model.Document) {
				doc.Sections[0].Format.MarginLeft = model.Some(units.Inches(5))
				doc.Sections[0].Format.MarginRight = model.Some(units.Inches(4))
			},
			path: "sections[0].format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.modify(doc)
			_, err := Check(doc, setupTestLogger(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if path := errorPath(t, err); path != tt.path {
				t.Errorf("path = %q, want %q (%v)", path, tt.path, err)
			}
		})
	}
}

func cellsRow(spans ...[2]model.Span) *model.Row {
	row := &model.Row{}
	for _, s := range spans {
		row.Cells = append(row.Cells, &model.Cell{Format: model.CellFormat{HSpan: s[0], VSpan: s[1]}})
	}
	return row
}

func TestTableStructure(t *testing.T) {
	none := model.SpanNone
	tests := []struct {
		name  string
		table *model.Table
		path  string
	}{
		{
			name:  "no rows",
			table: &model.Table{},
			path:  "sections[0].body[2].rows",
		},
		{
			name:  "horizontal continuation without start",
			table: &model.Table{Rows: []*model.Row{cellsRow([2]model.Span{none, none}, [2]model.Span{model.SpanNext, none})}},
			path:  "sections[0].body[2].rows[0].cells[1].hspan",
		},
		{
			name: "vertical continuation without start",
			table: &model.Table{Rows: []*model.Row{
				cellsRow([2]model.Span{none, none}),
				cellsRow([2]model.Span{none, model.SpanNext}),
			}},
			path: "sections[0].body[2].rows[1].cells[0].vspan",
		},
		{
			name: "vertical run broken by merged cell",
			table: &model.Table{Rows: []*model.Row{
				cellsRow([2]model.Span{none, none}, [2]model.Span{none, model.SpanFirst}),
				cellsRow([2]model.Span{model.SpanFirst, none}, [2]model.Span{model.SpanNext, none}),
				cellsRow([2]model.Span{none, none}, [2]model.Span{none, model.SpanNext}),
			}},
			path: "sections[0].body[2].rows[2].cells[1].vspan",
		},
		{
			name: "header and last row",
			table: &model.Table{Rows: []*model.Row{{
				Format: model.RowFormat{Header: true, Last: true},
				Cells:  []*model.Cell{{}},
			}}},
			path: "sections[0].body[2].rows[0]",
		},
		{
			name: "more cells than columns",
			table: &model.Table{
				Columns: []model.Column{{Weight: 1}},
				Rows:    []*model.Row{cellsRow([2]model.Span{none, none}, [2]model.Span{none, none})},
			},
			path: "sections[0].body[2].rows[0].cells",
		},
		{
			name: "negative weight",
			table: &model.Table{
				Columns: []model.Column{{Weight: -1}},
				Rows:    []*model.Row{cellsRow([2]model.Span{none, none})},
			},
			path: "sections[0].body[2].columns[0].weight",
		},
		{
			name: "unknown shading color",
			table: &model.Table{
				Format: model.TableFormat{Shading: model.Some("blue")},
				Rows:   []*model.Row{cellsRow([2]model.Span{none, none})},
			},
			path: "sections[0].body[2].shading",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			doc.Sections[0].Add(tt.table)
			_, err := Check(doc, setupTestLogger(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if path := errorPath(t, err); path != tt.path {
				t.Errorf("path = %q, want %q (%v)", path, tt.path, err)
			}
		})
	}
}

func TestVerticalMergeAccepted(t *testing.T) {
	doc := validDocument()
	doc.Sections[0].Add(&model.Table{Rows: []*model.Row{
		cellsRow([2]model.Span{model.SpanFirst, model.SpanFirst}, [2]model.Span{model.SpanNext, model.SpanFirst}),
		cellsRow([2]model.Span{model.SpanFirst, model.SpanNext}, [2]model.Span{model.SpanNext, model.SpanNext}),
	}})
	if _, err := Check(doc, setupTestLogger(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func nestedTable(depth int) *model.Table {
	t := &model.Table{Rows: []*model.Row{{Cells: []*model.Cell{{}}}}}
	if depth > 1 {
		t.Rows[0].Cells[0].Content = []model.Element{nestedTable(depth - 1)}
	}
	return t
}

func TestTableNesting(t *testing.T) {
	doc := validDocument()
	doc.Sections[0].Add(nestedTable(MaxTableNesting))
	if _, err := Check(doc, setupTestLogger(t)); err != nil {
		t.Fatalf("nesting of %d must be accepted: %v", MaxTableNesting, err)
	}

	doc = validDocument()
	doc.Sections[0].Add(nestedTable(MaxTableNesting + 1))
	_, err := Check(doc, setupTestLogger(t))
	if err == nil {
		t.Fatal("expected nesting error")
	}
	var ve *Error
	if !errors.As(err, &ve) || ve.Rule != "nesting" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNotesAndCommentsPlacement(t *testing.T) {
	doc := validDocument()
	inner := &model.Footnote{Body: model.NewParagraph(model.ParagraphFormat{}, "inner")}
	body := model.NewParagraph(model.ParagraphFormat{}, "outer")
	body.Runs[0].Items = append(body.Runs[0].Items, inner)
	run := doc.Sections[0].Body[0].(*model.Paragraph).Runs[0]
	run.Items = append(run.Items, &model.Footnote{Body: body})

	_, err := Check(doc, setupTestLogger(t))
	if err == nil || !strings.Contains(err.Error(), "notes are not allowed here") {
		t.Fatalf("expected nested note error, got %v", err)
	}

	doc = validDocument()
	doc.Sections[0].Header.Odd = []model.Element{model.ColumnBreak{}}
	if _, err := Check(doc, setupTestLogger(t)); err == nil {
		t.Fatal("column break in header must be rejected")
	}
}

func TestAdvisories(t *testing.T) {
	doc := validDocument()
	doc.View.Scale = 20
	doc.Page.Gutter = units.Twips(360)
	doc.AddComment(&model.Comment{Author: "Ann"}, "empty")
	doc.AddList(&model.List{Type: model.ListTypeSimple, Levels: make([]model.ListLevel, 2)}, "simple")

	adv, err := Check(doc, setupTestLogger(t))
	if err != nil {
		t.Fatalf("advisories must not fail validation: %v", err)
	}
	want := map[string]bool{"view.scale": false, "page.gutter": false, "comments[empty]": false, "lists[simple]": false}
	for _, a := range adv {
		if _, ok := want[a.Path]; ok {
			want[a.Path] = true
		}
	}
	for path, seen := range want {
		if !seen {
			t.Errorf("missing advisory for %s in %v", path, adv)
		}
	}
}

func TestCheckAllCollectsEverything(t *testing.T) {
	doc := validDocument()
	doc.Page.Width = units.Twips(1000)
	doc.Sections[0].Body[0].(*model.Paragraph).Format.Style = "missing"
	doc.AddBookmark("two words")

	_, first := Check(doc, setupTestLogger(t))
	_, all := CheckAll(doc, setupTestLogger(t))
	if first == nil || all == nil {
		t.Fatal("expected errors")
	}
	errs := multierr.Errors(all)
	if len(errs) < 3 {
		t.Fatalf("CheckAll returned %d errors: %v", len(errs), all)
	}
	if errs[0].Error() != first.Error() {
		t.Errorf("first errors differ: %v vs %v", errs[0], first)
	}
	for _, e := range errs {
		if !errors.Is(e, ErrInvalid) {
			t.Errorf("error %v does not wrap ErrInvalid", e)
		}
	}
}
