package rtf

import (
	"fmt"

	"go.uber.org/zap"

	"rtdoc/layout"
	"rtdoc/model"
	"rtdoc/units"
)

// defaultGap is half of the space between cell contents when table has no
// default padding.
const defaultGap = 108

func (r *renderer) table(t *model.Table, sc scope, available int) error {
	w := r.w
	depth := sc.depth + 1
	g := layout.Analyze(t, available)
	r.log.Debug("Table laid out", zap.Int("depth", depth), zap.Int("rows", len(g.Rows)), zap.Ints("widths", g.Widths))

	inner := scope{depth: depth}
	term := "cell"
	if depth > 1 {
		term = "nestcell"
	}
	for ri, gr := range g.Rows {
		if depth == 1 {
			r.rowDefinition(g, ri)
		}
		for ci, gc := range gr.Cells {
			if err := r.cell(g, gc, inner, term); err != nil {
				return fmt.Errorf("row %d cell %d: %w", ri, ci, err)
			}
		}
		if depth == 1 {
			w.word("row")
			continue
		}
		w.destination("nesttableprops")
		r.rowDefinition(g, ri)
		w.word("nestrow")
		w.close()
		w.open()
		w.word("nonesttables")
		w.word("par")
		w.close()
	}
	return nil
}

// cell renders cell content, the last paragraph is ended with term. Cell
// ending with a table gets an empty paragraph to carry the terminator.
func (r *renderer) cell(g *layout.Grid, gc layout.GridCell, sc scope, term string) error {
	elements := model.Flatten(gc.Elements())
	if len(elements) == 0 {
		return r.paragraph(&model.Paragraph{}, sc, paraEnd{term: term})
	}
	for i, e := range elements {
		last := i == len(elements)-1
		if p, ok := e.(*model.Paragraph); ok {
			end := paraEnd{term: "par"}
			if last {
				end.term = term
			}
			if err := r.paragraph(p, sc, end); err != nil {
				return err
			}
			continue
		}
		if t, ok := e.(*model.Table); ok {
			if err := r.table(t, sc, g.InnerWidth(gc)); err != nil {
				return err
			}
		} else if err := r.element(e, sc, "par"); err != nil {
			return err
		}
		if last {
			return r.paragraph(&model.Paragraph{}, sc, paraEnd{term: term})
		}
	}
	return nil
}

var cellAlignWords = map[model.VAlign]string{
	model.VAlignTop:    "clvertalt",
	model.VAlignCenter: "clvertalc",
	model.VAlignBottom: "clvertalb",
}

// rowDefinition writes row properties followed by cell definitions.
func (r *renderer) rowDefinition(g *layout.Grid, ri int) {
	w := r.w
	tf := g.Table.Format
	gr := g.Rows[ri]

	w.word("trowd")
	w.num("trgaph", tf.Padding.Left.Or(units.Twips(defaultGap)).Twips())
	w.num("trleft", g.Indent)
	switch tf.Align {
	case model.AlignCenter:
		w.word("trqc")
	case model.AlignRight:
		w.word("trqr")
	default:
		w.word("trql")
	}
	if width, ok := tf.Width.Get(); ok {
		w.num("trftsWidth", 3)
		w.num("trwWidth", width.Twips())
	}
	if tf.Autofit {
		w.num("trautofit", 1)
	}
	if sp := tf.CellSpacing.Twips(); sp > 0 {
		for _, side := range []string{"l", "t", "r", "b"} {
			w.num("trspd"+side, sp)
			w.num("trspdf"+side, 3)
		}
	}
	padding("trpadd", tf.Padding, w)

	rf := gr.Row.Format
	if h, ok := rf.Height.Get(); ok {
		if rf.HeightRule == model.HeightRuleExact {
			w.num("trrh", -h.Twips())
		} else {
			w.num("trrh", h.Twips())
		}
	}
	if rf.Header {
		w.word("trhdr")
	}
	if rf.KeepTogether {
		w.word("trkeep")
	}
	if rf.Last {
		w.word("lastrow")
	}

	for _, gc := range gr.Cells {
		w.word(cellAlignWords[gc.Format.VAlign])
		switch {
		case gc.Continuation:
			w.word("clvmrg")
		case gc.VMerge == model.SpanFirst:
			w.word("clvmgf")
		}
		r.borders("clbrdr", gc.Borders)
		if c, ok := gc.Format.Shading.Over(rf.Shading).Over(tf.Shading).Get(); ok {
			w.num("clcbpat", r.color(c))
		}
		padding("clpad", gc.Format.Padding, w)
		w.num("cellx", gc.Right)
	}
}

// padding writes set sides as prefix+side with twips unit flag.
func padding(prefix string, p model.Padding, w *writer) {
	for _, side := range []struct {
		name string
		v    model.Opt[units.Size]
	}{
		{"l", p.Left},
		{"t", p.Top},
		{"r", p.Right},
		{"b", p.Bottom},
	} {
		if v, ok := side.v.Get(); ok {
			w.num(prefix+side.name, v.Twips())
			w.num(prefix+"f"+side.name, 3)
		}
	}
}
