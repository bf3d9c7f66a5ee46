package layout

import (
	"rtdoc/model"
)

// Grid is a table mapped onto its column grid.
type Grid struct {
	Table   *model.Table
	Widths  []int // column widths in twips
	Indent  int
	Rows    []GridRow
	Columns int
}

type GridRow struct {
	Row   *model.Row
	Cells []GridCell
}

// GridCell is a logical cell after horizontal merging. Cell is nil for
// placeholders padding rows shorter than the grid.
type GridCell struct {
	Cell   *model.Cell
	Format model.CellFormat
	Column int // first grid column
	Span   int
	Width  int
	// VMerge is vertical merge role, Continuation cells are rendered as
	// empty merged placeholders.
	VMerge       model.Span
	Continuation bool
	Borders      model.Borders
	Right        int // right boundary, x from the table origin
}

// Placeholder reports padding cell added for missing row cells.
func (c GridCell) Placeholder() bool {
	return c.Cell == nil
}

// Elements returns cell content to render, nothing for continuation cells.
func (c GridCell) Elements() []model.Element {
	if c.Continuation || c.Cell == nil {
		return []model.Element{&model.Paragraph{}}
	}
	return c.Cell.Elements()
}

// Analyze maps table rows onto the column grid for the given available
// width.
func Analyze(t *model.Table, available int) *Grid {
	cols := Columns(t)
	if w, ok := t.Format.Width.Get(); ok {
		available = w.Twips()
	}
	g := &Grid{
		Table:   t,
		Widths:  ColumnWidths(cols, available),
		Indent:  t.Format.Indent.Twips(),
		Columns: len(cols),
		Rows:    make([]GridRow, len(t.Rows)),
	}
	for r, row := range t.Rows {
		g.Rows[r] = GridRow{Row: row, Cells: g.mergeRow(row)}
	}
	g.markVertical()
	for r := range g.Rows {
		g.composeBorders(r)
		g.boundaries(r)
	}
	return g
}

// mergeRow collapses horizontal merge runs and pads row to the grid width.
func (g *Grid) mergeRow(row *model.Row) []GridCell {
	var cells []GridCell
	col := 0
	for i := 0; i < len(row.Cells) && col < g.Columns; i++ {
		c := row.Cells[i]
		gc := GridCell{Cell: c, Format: c.Format, Column: col, Span: 1, VMerge: c.Format.VSpan}
		if c.Format.HSpan == model.SpanFirst {
			for i+1 < len(row.Cells) && row.Cells[i+1].Format.HSpan == model.SpanNext && col+gc.Span < g.Columns {
				gc.Span++
				i++
			}
		}
		col += gc.Span
		cells = append(cells, gc)
	}
	for ; col < g.Columns; col++ {
		cells = append(cells, GridCell{Column: col, Span: 1})
	}
	for i := range cells {
		for k := range cells[i].Span {
			cells[i].Width += g.Widths[cells[i].Column+k]
		}
	}
	return cells
}

// markVertical flags cells continuing a vertical merge started by a cell in
// the same grid column of a row above.
func (g *Grid) markVertical() {
	open := make(map[int]bool) // grid column -> merge run active
	for r := range g.Rows {
		for i := range g.Rows[r].Cells {
			c := &g.Rows[r].Cells[i]
			continues := open[c.Column]
			// a merge run is keyed by the first column of the cell, every
			// column the cell covers ends runs open above it
			for k := c.Column; k < c.Column+max(c.Span, 1); k++ {
				open[k] = false
			}
			switch c.VMerge {
			case model.SpanFirst:
				open[c.Column] = true
			case model.SpanNext:
				if continues {
					c.Continuation = true
					open[c.Column] = true
				} else {
					// nothing to continue, render as regular cell
					c.VMerge = model.SpanNone
				}
			}
		}
	}
}

// CellAt returns logical cell covering grid column col in row r.
func (g *Grid) CellAt(r, col int) (GridCell, bool) {
	if r < 0 || r >= len(g.Rows) {
		return GridCell{}, false
	}
	for _, c := range g.Rows[r].Cells {
		if col >= c.Column && col < c.Column+c.Span {
			return c, true
		}
	}
	return GridCell{}, false
}

// composeBorders applies edge precedence cell > row > table. Table outer
// borders apply to edges on the table boundary, insideH and insideV to the
// interior ones. Row left and right borders apply to the row ends only.
func (g *Grid) composeBorders(r int) {
	row := g.Rows[r]
	tb := g.Table.Format.Borders
	var rb model.Borders
	if row.Row != nil {
		rb = row.Row.Format.Borders
	}

	top, bottom := tb.InsideH, tb.InsideH
	if r == 0 {
		top = tb.Top
	}
	if r == len(g.Rows)-1 {
		bottom = tb.Bottom
	}

	for i := range row.Cells {
		c := &row.Cells[i]
		left, right := tb.InsideV, tb.InsideV
		if c.Column == 0 {
			left = rb.Left.Over(tb.Left)
		}
		if c.Column+c.Span >= g.Columns {
			right = rb.Right.Over(tb.Right)
		}
		own := c.Format.Borders
		c.Borders = model.Borders{
			Top:    own.Top.Over(rb.Top).Over(top),
			Left:   own.Left.Over(left),
			Bottom: own.Bottom.Over(rb.Bottom).Over(bottom),
			Right:  own.Right.Over(right),
		}
	}
}

// boundaries computes right edge coordinates: indent plus cumulative widths
// plus half of the left and right border widths of every cell crossed so
// far, keeping borders centered on grid lines.
func (g *Grid) boundaries(r int) {
	cells := g.Rows[r].Cells
	x, borders := g.Indent, 0
	for i := range cells {
		x += cells[i].Width
		borders += BorderWidth(cells[i].Borders.Left) + BorderWidth(cells[i].Borders.Right)
		cells[i].Right = x + borders/2
	}
}

// BorderWidth returns width of a border edge in twips, 0 when edge is unset
// or has no line.
func BorderWidth(b model.Opt[model.Border]) int {
	v, ok := b.Get()
	if !ok || v.Style == model.BorderStyleNone {
		return 0
	}
	return v.Width.Twips()
}

// InnerWidth returns width available to the content of cell: cell width minus
// its horizontal padding (falling back to the table default padding).
func (g *Grid) InnerWidth(c GridCell) int {
	pad := c.Format.Padding.Over(g.Table.Format.Padding)
	return max(c.Width-pad.Left.Value().Twips()-pad.Right.Value().Twips(), 0)
}
