package layout

import (
	"testing"

	"rtdoc/model"
	"rtdoc/units"
)

func TestColumnWidthsFixedAndWeighted(t *testing.T) {
	tests := []struct {
		name      string
		available int
		fixed     int
	}{
		{"divisible", 9000, 1500},
		{"remainder", 9001, 1440},
		{"odd", 10007, 2000},
		{"tiny", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := []model.Column{
				{Width: model.Some(units.Twips(tt.fixed))},
				{Weight: 1},
				{Weight: 2},
			}
			w := ColumnWidths(cols, tt.available)
			if w[0] != tt.fixed {
				t.Errorf("fixed = %d, want %d", w[0], tt.fixed)
			}
			if w[1]+w[2] > tt.available-tt.fixed {
				t.Errorf("flex sum %d exceeds %d", w[1]+w[2], tt.available-tt.fixed)
			}
			if d := w[2] - 2*w[1]; d < -1 || d > 1 {
				t.Errorf("flex2 = %d is not about 2*flex1 = %d", w[2], 2*w[1])
			}
		})
	}
}

func TestColumnWidthsLeftoverToLastFlexible(t *testing.T) {
	w := ColumnWidths([]model.Column{{}, {}, {}}, 1000)
	if w[0] != 333 || w[1] != 333 || w[2] != 334 {
		t.Errorf("ColumnWidths() = %v", w)
	}
}

func TestColumnWidthsNeverNegative(t *testing.T) {
	w := ColumnWidths([]model.Column{{Width: model.Some(units.Inches(10))}, {}}, 1440)
	if w[1] != 0 {
		t.Errorf("flexible width = %d, want 0", w[1])
	}
}

func cell(h, v model.Span) *model.Cell {
	return &model.Cell{Format: model.CellFormat{HSpan: h, VSpan: v}}
}

func TestAnalyzeHorizontalMerge(t *testing.T) {
	tbl := &model.Table{
		Columns: []model.Column{{}, {}, {}},
		Rows: []*model.Row{
			{Cells: []*model.Cell{
				cell(model.SpanFirst, model.SpanNone),
				cell(model.SpanNext, model.SpanNone),
				cell(model.SpanNext, model.SpanNone),
			}},
			{Cells: []*model.Cell{cell(model.SpanNone, model.SpanNone)}},
		},
	}
	g := Analyze(tbl, 9000)

	first := g.Rows[0].Cells
	if len(first) != 1 || first[0].Span != 3 || first[0].Width != 9000 {
		t.Fatalf("merged row = %+v", first)
	}
	second := g.Rows[1].Cells
	if len(second) != 3 || !second[1].Placeholder() || !second[2].Placeholder() {
		t.Errorf("short row not padded: %+v", second)
	}
	if second[2].Right != 9000 {
		t.Errorf("right boundary = %d, want 9000", second[2].Right)
	}
}

func TestAnalyzeVerticalMerge(t *testing.T) {
	tbl := &model.Table{
		Columns: []model.Column{{}, {}},
		Rows: []*model.Row{
			{Cells: []*model.Cell{cell(model.SpanNone, model.SpanFirst), cell(model.SpanNone, model.SpanNone)}},
			{Cells: []*model.Cell{cell(model.SpanNone, model.SpanNext), cell(model.SpanNone, model.SpanNext)}},
		},
	}
	tbl.Rows[1].Cells[0].Content = []model.Element{model.NewParagraph(model.ParagraphFormat{}, "hidden")}
	g := Analyze(tbl, 2000)

	c := g.Rows[1].Cells[0]
	if !c.Continuation {
		t.Error("cell below vspan=first must be continuation")
	}
	if p := c.Elements()[0].(*model.Paragraph); p.HasContent() {
		t.Error("continuation cell must not carry content")
	}
	if orphan := g.Rows[1].Cells[1]; orphan.Continuation || orphan.VMerge != model.SpanNone {
		t.Errorf("orphan continuation = %+v", orphan)
	}
}

func TestAnalyzeVerticalMergeBrokenByWideCell(t *testing.T) {
	tests := []struct {
		name   string
		middle []*model.Cell
		want   bool
	}{
		{
			name:   "merged cell covers the column",
			middle: []*model.Cell{cell(model.SpanFirst, model.SpanNone), cell(model.SpanNext, model.SpanNone)},
			want:   false,
		},
		{
			name:   "run continues in the column",
			middle: []*model.Cell{cell(model.SpanNone, model.SpanNone), cell(model.SpanNone, model.SpanNext)},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := &model.Table{
				Columns: []model.Column{{}, {}},
				Rows: []*model.Row{
					{Cells: []*model.Cell{cell(model.SpanNone, model.SpanNone), cell(model.SpanNone, model.SpanFirst)}},
					{Cells: tt.middle},
					{Cells: []*model.Cell{cell(model.SpanNone, model.SpanNone), cell(model.SpanNone, model.SpanNext)}},
				},
			}
			g := Analyze(tbl, 2000)

			last, ok := g.CellAt(2, 1)
			if !ok {
				t.Fatal("no cell at row 2 column 1")
			}
			if last.Continuation != tt.want {
				t.Errorf("Continuation = %v, want %v", last.Continuation, tt.want)
			}
		})
	}
}

func TestBorderPrecedence(t *testing.T) {
	thin := model.Border{Style: model.BorderStyleSingle, Width: units.Twips(10)}
	thick := model.Border{Style: model.BorderStyleThick, Width: units.Twips(40)}
	dotted := model.Border{Style: model.BorderStyleDotted, Width: units.Twips(20)}

	tbl := &model.Table{
		Format: model.TableFormat{Borders: model.TableBorders{
			Borders: model.Borders{Top: model.Some(thin), Left: model.Some(thin), Bottom: model.Some(thin), Right: model.Some(thin)},
			InsideH: model.Some(dotted),
			InsideV: model.Some(dotted),
		}},
		Columns: []model.Column{{}, {}},
		Rows: []*model.Row{
			{Format: model.RowFormat{Borders: model.Borders{Bottom: model.Some(thick)}}, Cells: []*model.Cell{{}, {}}},
			{Cells: []*model.Cell{{Format: model.CellFormat{Borders: model.Borders{Top: model.Some(thin)}}}, {}}},
		},
	}
	g := Analyze(tbl, 2000)

	tests := []struct {
		name string
		got  model.Opt[model.Border]
		want model.Border
	}{
		{"outer top from table", g.Rows[0].Cells[0].Borders.Top, thin},
		{"row bottom wins over insideH", g.Rows[0].Cells[1].Borders.Bottom, thick},
		{"interior vertical uses insideV", g.Rows[0].Cells[0].Borders.Right, dotted},
		{"outer left from table", g.Rows[1].Cells[0].Borders.Left, thin},
		{"cell wins over insideH", g.Rows[1].Cells[0].Borders.Top, thin},
		{"insideH for interior edge", g.Rows[1].Cells[1].Borders.Top, dotted},
		{"outer bottom from table", g.Rows[1].Cells[1].Borders.Bottom, thin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != model.Some(tt.want) {
				t.Errorf("got %+v, want %+v", tt.got.Value(), tt.want)
			}
		})
	}

	// 1000 + (10 + 20)/2
	if r := g.Rows[0].Cells[0].Right; r != 1015 {
		t.Errorf("first boundary = %d, want 1015", r)
	}
	// 2000 + (10 + 20 + 20 + 10)/2
	if r := g.Rows[0].Cells[1].Right; r != 2030 {
		t.Errorf("second boundary = %d, want 2030", r)
	}
}

func TestAvailableWidth(t *testing.T) {
	doc := model.NewDocument()
	doc.Page.Gutter = units.Twips(360)
	got := AvailableWidth(doc, model.SectionFormat{})
	if want := model.DefaultPageWidth - 2*model.DefaultMargin - 360; got != want {
		t.Errorf("AvailableWidth() = %d, want %d", got, want)
	}
}

func TestNumberListsRestartPerSection(t *testing.T) {
	doc := model.NewDocument()
	restart := doc.AddList(&model.List{RestartEachSection: true, Levels: []model.ListLevel{{}}}, "steps")
	shared := doc.AddList(&model.List{Levels: []model.ListLevel{{}}}, "notes")

	item := func(list string) *model.Paragraph {
		return &model.Paragraph{Format: model.ParagraphFormat{List: model.Some(model.ListRef{List: list})}}
	}
	doc.AddSection(model.SectionFormat{}).Add(item(restart), item(shared))
	doc.AddSection(model.SectionFormat{}).Add(&model.Container{Content: []model.Element{item(restart), item(shared)}})

	li := NumberLists(doc)
	if n := li.Lookup(0, 0); n != 1 {
		t.Errorf("first section instance = %d, want 1", n)
	}
	if n := li.Lookup(0, 1); n != 3 {
		t.Errorf("restarted instance = %d, want 3", n)
	}
	if n := li.Lookup(1, 1); n != 2 {
		t.Errorf("shared instance = %d, want 2", n)
	}
	all := li.All()
	if len(all) != 3 || !all[2].Restart() || all[0].Restart() {
		t.Errorf("All() = %+v", all)
	}

	// pure function of the model
	if again := NumberLists(doc).All(); len(again) != len(all) {
		t.Error("second computation differs")
	}
}
