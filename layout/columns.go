// Package layout computes table geometry and list numbering instances shared
// by all emitters. Everything here is a pure function of the model.
package layout

import (
	"math"

	"rtdoc/model"
)

// ColumnWidths distributes available width (twips) over columns. Columns with
// explicit width take it verbatim, the rest of the space is split between
// the remaining columns proportionally to their weights and floored.
// Rounding leftovers go to the last flexible column, so flexible widths add
// up to the remaining space exactly. Widths are never negative.
func ColumnWidths(cols []model.Column, available int) []int {
	widths := make([]int, len(cols))

	remaining := available
	var (
		totalWeight float64
		flexible    []int
	)
	for i, c := range cols {
		if w, ok := c.Width.Get(); ok {
			widths[i] = max(w.Twips(), 0)
			remaining -= widths[i]
			continue
		}
		flexible = append(flexible, i)
		totalWeight += weight(c)
	}
	if len(flexible) == 0 || remaining <= 0 {
		return widths
	}

	used := 0
	for _, i := range flexible {
		widths[i] = int(math.Floor(float64(remaining) * weight(cols[i]) / totalWeight))
		used += widths[i]
	}
	widths[flexible[len(flexible)-1]] += remaining - used
	return widths
}

func weight(c model.Column) float64 {
	if c.Weight <= 0 {
		return 1
	}
	return c.Weight
}

// Columns returns table grid columns. Tables without explicit columns get
// one equally weighted column per cell of the widest row.
func Columns(t *model.Table) []model.Column {
	if len(t.Columns) > 0 {
		return t.Columns
	}
	n := 0
	for _, row := range t.Rows {
		n = max(n, len(row.Cells))
	}
	return make([]model.Column, max(n, 1))
}

// AvailableWidth returns width of a single text column of a section with
// resolved formatting f: page width minus margins and gutter, shared by the
// text columns.
func AvailableWidth(doc *model.Document, f model.SectionFormat) int {
	return doc.Geometry(f).ColumnWidth()
}
