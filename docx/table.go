package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"rtdoc/layout"
	"rtdoc/model"
	"rtdoc/units"
)

var tableAlignValues = map[model.Align]string{
	model.AlignCenter: "center",
	model.AlignRight:  "right",
}

// table renders table with cell borders composed by the layout engine, table
// level borders are not written.
func (r *renderer) table(parent *etree.Element, t *model.Table, depth, available int) error {
	g := layout.Analyze(t, available)
	r.log.Debug("Table laid out", zap.Int("depth", depth+1), zap.Int("rows", len(g.Rows)), zap.Ints("widths", g.Widths))

	tf := t.Format
	tbl := w(parent, "tbl")
	tblPr := w(tbl, "tblPr")

	total := 0
	for _, width := range g.Widths {
		total += width
	}
	twips(tblPr, "tblW", total)
	if v, ok := tableAlignValues[tf.Align]; ok {
		val(tblPr, "jc", v)
	} else {
		val(tblPr, "jc", "left")
	}
	if sp := tf.CellSpacing.Twips(); sp > 0 {
		twips(tblPr, "tblCellSpacing", sp)
	}
	if g.Indent != 0 {
		twips(tblPr, "tblInd", g.Indent)
	}
	if alias, ok := tf.Shading.Get(); ok {
		if hex, ok := r.colorHex(alias); ok {
			shading(tblPr, hex)
		}
	}
	layoutType := "fixed"
	if tf.Autofit {
		layoutType = "autofit"
	}
	w(tblPr, "tblLayout").CreateAttr("w:type", layoutType)
	padding(tblPr, "tblCellMar", tf.Padding)

	grid := w(tbl, "tblGrid")
	for _, width := range g.Widths {
		w(grid, "gridCol").CreateAttr("w:w", strconv.Itoa(width))
	}

	for ri, gr := range g.Rows {
		tr := w(tbl, "tr")
		rowProperties(tr, gr.Row.Format)
		for ci, gc := range gr.Cells {
			if err := r.cell(tr, g, gc, gr.Row.Format, depth); err != nil {
				return fmt.Errorf("row %d cell %d: %w", ri, ci, err)
			}
		}
	}
	return nil
}

func rowProperties(tr *etree.Element, rf model.RowFormat) {
	h, hasHeight := rf.Height.Get()
	if !hasHeight && !rf.Header && !rf.KeepTogether {
		return
	}
	trPr := w(tr, "trPr")
	if rf.KeepTogether {
		w(trPr, "cantSplit")
	}
	if hasHeight {
		el := valInt(trPr, "trHeight", h.Twips())
		if rf.HeightRule == model.HeightRuleExact {
			el.CreateAttr("w:hRule", "exact")
		} else {
			el.CreateAttr("w:hRule", "atLeast")
		}
	}
	if rf.Header {
		w(trPr, "tblHeader")
	}
}

func (r *renderer) cell(tr *etree.Element, g *layout.Grid, gc layout.GridCell, rf model.RowFormat, depth int) error {
	tc := w(tr, "tc")
	tcPr := w(tc, "tcPr")
	twips(tcPr, "tcW", gc.Width)
	if gc.Span > 1 {
		valInt(tcPr, "gridSpan", gc.Span)
	}
	switch {
	case gc.Continuation:
		w(tcPr, "vMerge")
	case gc.VMerge == model.SpanFirst:
		val(tcPr, "vMerge", "restart")
	}
	r.borders(tcPr, "tcBorders", gc.Borders)

	if alias, ok := gc.Format.Shading.Over(rf.Shading).Over(g.Table.Format.Shading).Get(); ok {
		if hex, ok := r.colorHex(alias); ok {
			shading(tcPr, hex)
		}
	}
	padding(tcPr, "tcMar", gc.Format.Padding)
	if gc.Format.VAlign != model.VAlignTop {
		val(tcPr, "vAlign", vAlignValues[gc.Format.VAlign])
	}

	elements := model.Flatten(gc.Elements())
	if _, ok := elements[len(elements)-1].(*model.Paragraph); !ok {
		// cell must end with a paragraph
		elements = append(elements, &model.Paragraph{})
	}
	_, err := r.elements(tc, elements, depth+1, g.InnerWidth(gc))
	return err
}

// twips writes width element measured in twentieths of a point.
func twips(parent *etree.Element, tag string, v int) {
	el := w(parent, tag)
	el.CreateAttr("w:w", strconv.Itoa(v))
	el.CreateAttr("w:type", "dxa")
}

// padding writes set sides into container element tag.
func padding(parent *etree.Element, tag string, p model.Padding) {
	if p == (model.Padding{}) {
		return
	}
	el := w(parent, tag)
	for _, side := range []struct {
		name string
		v    model.Opt[units.Size]
	}{
		{"top", p.Top},
		{"left", p.Left},
		{"bottom", p.Bottom},
		{"right", p.Right},
	} {
		if v, ok := side.v.Get(); ok {
			twips(el, side.name, v.Twips())
		}
	}
}
