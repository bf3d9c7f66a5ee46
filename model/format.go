package model

import (
	"rtdoc/units"
)

// CharFormat is character level formatting. Every field is optional, unset
// fields are inherited from the enclosing scope.
type CharFormat struct {
	Font         Opt[string]     `yaml:"font"`
	Size         Opt[units.Size] `yaml:"size" validate:"omitempty,min=20,max=32760"`
	Bold         Opt[bool]       `yaml:"bold"`
	Italic       Opt[bool]       `yaml:"italic"`
	Underline    Opt[Underline]  `yaml:"underline"`
	Strike       Opt[bool]       `yaml:"strike"`
	DoubleStrike Opt[bool]       `yaml:"double_strike"`
	Caps         Opt[bool]       `yaml:"caps"`
	SmallCaps    Opt[bool]       `yaml:"small_caps"`
	Hidden       Opt[bool]       `yaml:"hidden"`
	Color        Opt[string]     `yaml:"color"`
	Background   Opt[string]     `yaml:"background"`
	Position     Opt[VertPos]    `yaml:"position"`
	Scaling      Opt[int]        `yaml:"scaling" validate:"omitempty,min=20,max=200"`
	Spacing      Opt[units.Size] `yaml:"spacing" validate:"omitempty,min=-31680,max=31680"`
	Language     Opt[string]     `yaml:"language"`
}

// Over returns f laid over base: fields set in f win.
func (f CharFormat) Over(base CharFormat) CharFormat {
	return CharFormat{
		Font:         f.Font.Over(base.Font),
		Size:         f.Size.Over(base.Size),
		Bold:         f.Bold.Over(base.Bold),
		Italic:       f.Italic.Over(base.Italic),
		Underline:    f.Underline.Over(base.Underline),
		Strike:       f.Strike.Over(base.Strike),
		DoubleStrike: f.DoubleStrike.Over(base.DoubleStrike),
		Caps:         f.Caps.Over(base.Caps),
		SmallCaps:    f.SmallCaps.Over(base.SmallCaps),
		Hidden:       f.Hidden.Over(base.Hidden),
		Color:        f.Color.Over(base.Color),
		Background:   f.Background.Over(base.Background),
		Position:     f.Position.Over(base.Position),
		Scaling:      f.Scaling.Over(base.Scaling),
		Spacing:      f.Spacing.Over(base.Spacing),
		Language:     f.Language.Over(base.Language),
	}
}

// Diff returns fields of f which are set and differ from base. Empty result
// means f renders exactly like base.
func (f CharFormat) Diff(base CharFormat) CharFormat {
	return CharFormat{
		Font:         diff(f.Font, base.Font),
		Size:         diff(f.Size, base.Size),
		Bold:         diff(f.Bold, base.Bold),
		Italic:       diff(f.Italic, base.Italic),
		Underline:    diff(f.Underline, base.Underline),
		Strike:       diff(f.Strike, base.Strike),
		DoubleStrike: diff(f.DoubleStrike, base.DoubleStrike),
		Caps:         diff(f.Caps, base.Caps),
		SmallCaps:    diff(f.SmallCaps, base.SmallCaps),
		Hidden:       diff(f.Hidden, base.Hidden),
		Color:        diff(f.Color, base.Color),
		Background:   diff(f.Background, base.Background),
		Position:     diff(f.Position, base.Position),
		Scaling:      diff(f.Scaling, base.Scaling),
		Spacing:      diff(f.Spacing, base.Spacing),
		Language:     diff(f.Language, base.Language),
	}
}

func (f CharFormat) IsEmpty() bool {
	return f == CharFormat{}
}

func diff[T comparable](o, base Opt[T]) Opt[T] {
	if o == base {
		return Opt[T]{}
	}
	return o
}

// Border describes a single edge.
type Border struct {
	Style BorderStyle `yaml:"style"`
	Width units.Size  `yaml:"width" validate:"min=0,max=1440"`
	Color string      `yaml:"color"`
	Space units.Size  `yaml:"space" validate:"min=0,max=31680"`
}

// Borders are the four edges of a paragraph, row or cell.
type Borders struct {
	Top    Opt[Border] `yaml:"top"`
	Left   Opt[Border] `yaml:"left"`
	Bottom Opt[Border] `yaml:"bottom"`
	Right  Opt[Border] `yaml:"right"`
}

func (b Borders) Over(base Borders) Borders {
	return Borders{
		Top:    b.Top.Over(base.Top),
		Left:   b.Left.Over(base.Left),
		Bottom: b.Bottom.Over(base.Bottom),
		Right:  b.Right.Over(base.Right),
	}
}

// Each calls fn for every set edge in top, left, bottom, right order.
func (b Borders) Each(fn func(edge string, border Border)) {
	for _, e := range []struct {
		name string
		o    Opt[Border]
	}{{"top", b.Top}, {"left", b.Left}, {"bottom", b.Bottom}, {"right", b.Right}} {
		if v, ok := e.o.Get(); ok {
			fn(e.name, v)
		}
	}
}

// TableBorders add interior edges to outer borders.
type TableBorders struct {
	Borders `yaml:",inline"`

	InsideH Opt[Border] `yaml:"inside_h"`
	InsideV Opt[Border] `yaml:"inside_v"`
}

// Padding is the space between cell edges and cell content.
type Padding struct {
	Top    Opt[units.Size] `yaml:"top" validate:"omitempty,min=0,max=31680"`
	Left   Opt[units.Size] `yaml:"left" validate:"omitempty,min=0,max=31680"`
	Bottom Opt[units.Size] `yaml:"bottom" validate:"omitempty,min=0,max=31680"`
	Right  Opt[units.Size] `yaml:"right" validate:"omitempty,min=0,max=31680"`
}

func (p Padding) Over(base Padding) Padding {
	return Padding{
		Top:    p.Top.Over(base.Top),
		Left:   p.Left.Over(base.Left),
		Bottom: p.Bottom.Over(base.Bottom),
		Right:  p.Right.Over(base.Right),
	}
}

// SingleLineSpacing is LineSpacing value of single spacing with the auto
// rule, proportional spacing is measured in 240ths of a line.
const SingleLineSpacing = 240

// ParaFormat is paragraph level formatting, all fields are optional.
type ParaFormat struct {
	Align           Opt[Align]      `yaml:"align"`
	IndentLeft      Opt[units.Size] `yaml:"indent_left" validate:"omitempty,min=-31680,max=31680"`
	IndentRight     Opt[units.Size] `yaml:"indent_right" validate:"omitempty,min=-31680,max=31680"`
	IndentFirst     Opt[units.Size] `yaml:"indent_first" validate:"omitempty,min=-31680,max=31680"`
	SpaceBefore     Opt[units.Size] `yaml:"space_before" validate:"omitempty,min=0,max=31680"`
	SpaceAfter      Opt[units.Size] `yaml:"space_after" validate:"omitempty,min=0,max=31680"`
	LineSpacing     Opt[units.Size] `yaml:"line_spacing" validate:"omitempty,min=0,max=31680"`
	LineRule        Opt[LineRule]   `yaml:"line_rule"`
	KeepTogether    Opt[bool]       `yaml:"keep_together"`
	KeepWithNext    Opt[bool]       `yaml:"keep_with_next"`
	PageBreakBefore Opt[bool]       `yaml:"page_break_before"`
	WidowControl    Opt[bool]       `yaml:"widow_control"`
	OutlineLevel    Opt[int]        `yaml:"outline_level" validate:"omitempty,min=0,max=8"`
	Shading         Opt[string]     `yaml:"shading"`
	Borders         Borders         `yaml:"borders"`
	RightToLeft     Opt[bool]       `yaml:"rtl"`
}

func (f ParaFormat) Over(base ParaFormat) ParaFormat {
	return ParaFormat{
		Align:           f.Align.Over(base.Align),
		IndentLeft:      f.IndentLeft.Over(base.IndentLeft),
		IndentRight:     f.IndentRight.Over(base.IndentRight),
		IndentFirst:     f.IndentFirst.Over(base.IndentFirst),
		SpaceBefore:     f.SpaceBefore.Over(base.SpaceBefore),
		SpaceAfter:      f.SpaceAfter.Over(base.SpaceAfter),
		LineSpacing:     f.LineSpacing.Over(base.LineSpacing),
		LineRule:        f.LineRule.Over(base.LineRule),
		KeepTogether:    f.KeepTogether.Over(base.KeepTogether),
		KeepWithNext:    f.KeepWithNext.Over(base.KeepWithNext),
		PageBreakBefore: f.PageBreakBefore.Over(base.PageBreakBefore),
		WidowControl:    f.WidowControl.Over(base.WidowControl),
		OutlineLevel:    f.OutlineLevel.Over(base.OutlineLevel),
		Shading:         f.Shading.Over(base.Shading),
		Borders:         f.Borders.Over(base.Borders),
		RightToLeft:     f.RightToLeft.Over(base.RightToLeft),
	}
}

// ListRef attaches paragraph to level of a registered list.
type ListRef struct {
	List  string `yaml:"list"`
	Level int    `yaml:"level" validate:"min=0,max=8"`
}

// ParagraphFormat is what a paragraph carries: optional style alias, direct
// overrides and optional list membership.
type ParagraphFormat struct {
	Style string       `yaml:"style"`
	Para  ParaFormat   `yaml:"para"`
	Char  CharFormat   `yaml:"char"`
	List  Opt[ListRef] `yaml:"list"`
}

// TableFormat is per table formatting.
type TableFormat struct {
	Align       Align           `yaml:"align"`
	Width       Opt[units.Size] `yaml:"width" validate:"omitempty,min=0,max=31680"`
	Indent      units.Size      `yaml:"indent" validate:"min=-31680,max=31680"`
	Borders     TableBorders    `yaml:"borders"`
	Shading     Opt[string]     `yaml:"shading"`
	CellSpacing units.Size      `yaml:"cell_spacing" validate:"min=0,max=31680"`
	Padding     Padding         `yaml:"padding"`
	Autofit     bool            `yaml:"autofit"`
}

// RowFormat is per row formatting.
type RowFormat struct {
	Height       Opt[units.Size] `yaml:"height" validate:"omitempty,min=0,max=31680"`
	HeightRule   HeightRule      `yaml:"height_rule"`
	Header       bool            `yaml:"header"`
	KeepTogether bool            `yaml:"keep_together"`
	Last         bool            `yaml:"last"`
	Borders      Borders         `yaml:"borders"`
	Shading      Opt[string]     `yaml:"shading"`
}

// CellFormat is per cell formatting.
type CellFormat struct {
	VAlign  VAlign      `yaml:"valign"`
	HSpan   Span        `yaml:"hspan"`
	VSpan   Span        `yaml:"vspan"`
	Borders Borders     `yaml:"borders"`
	Padding Padding     `yaml:"padding"`
	Shading Opt[string] `yaml:"shading"`
}

// SectionFormat overrides page geometry for a section. Unset geometry is
// inherited from the document page setup.
type SectionFormat struct {
	Width            Opt[units.Size]   `yaml:"width" validate:"omitempty,min=1440,max=31680"`
	Height           Opt[units.Size]   `yaml:"height" validate:"omitempty,min=1440,max=31680"`
	MarginLeft       Opt[units.Size]   `yaml:"margin_left" validate:"omitempty,min=0,max=31680"`
	MarginRight      Opt[units.Size]   `yaml:"margin_right" validate:"omitempty,min=0,max=31680"`
	MarginTop        Opt[units.Size]   `yaml:"margin_top" validate:"omitempty,min=0,max=31680"`
	MarginBottom     Opt[units.Size]   `yaml:"margin_bottom" validate:"omitempty,min=0,max=31680"`
	Gutter           Opt[units.Size]   `yaml:"gutter" validate:"omitempty,min=0,max=31680"`
	Landscape        Opt[bool]         `yaml:"landscape"`
	Columns          int               `yaml:"columns" validate:"min=0,max=45"`
	ColumnSpacing    Opt[units.Size]   `yaml:"column_spacing" validate:"omitempty,min=0,max=31680"`
	ColumnLine       bool              `yaml:"column_line"`
	Break            SectionBreak      `yaml:"break"`
	PageNumberStart  Opt[int]          `yaml:"page_number_start" validate:"omitempty,min=0,max=32767"`
	PageNumberFormat Opt[NumberFormat] `yaml:"page_number_format"`
	VAlign           VAlign            `yaml:"valign"`
	TitlePage        bool              `yaml:"title_page"`
	HeaderDistance   Opt[units.Size]   `yaml:"header_distance" validate:"omitempty,min=0,max=31680"`
	FooterDistance   Opt[units.Size]   `yaml:"footer_distance" validate:"omitempty,min=0,max=31680"`
}

// ColumnCount returns number of text columns, at least one.
func (f SectionFormat) ColumnCount() int {
	return max(f.Columns, 1)
}

// Over lays f over base. Plain fields of f win when they are not zero.
func (f SectionFormat) Over(base SectionFormat) SectionFormat {
	out := SectionFormat{
		Width:            f.Width.Over(base.Width),
		Height:           f.Height.Over(base.Height),
		MarginLeft:       f.MarginLeft.Over(base.MarginLeft),
		MarginRight:      f.MarginRight.Over(base.MarginRight),
		MarginTop:        f.MarginTop.Over(base.MarginTop),
		MarginBottom:     f.MarginBottom.Over(base.MarginBottom),
		Gutter:           f.Gutter.Over(base.Gutter),
		Landscape:        f.Landscape.Over(base.Landscape),
		Columns:          f.Columns,
		ColumnSpacing:    f.ColumnSpacing.Over(base.ColumnSpacing),
		ColumnLine:       f.ColumnLine || base.ColumnLine,
		Break:            f.Break,
		PageNumberStart:  f.PageNumberStart.Over(base.PageNumberStart),
		PageNumberFormat: f.PageNumberFormat.Over(base.PageNumberFormat),
		VAlign:           f.VAlign,
		TitlePage:        f.TitlePage || base.TitlePage,
		HeaderDistance:   f.HeaderDistance.Over(base.HeaderDistance),
		FooterDistance:   f.FooterDistance.Over(base.FooterDistance),
	}
	if out.Columns == 0 {
		out.Columns = base.Columns
	}
	if out.Break == SectionBreakPage {
		out.Break = base.Break
	}
	if out.VAlign == VAlignTop {
		out.VAlign = base.VAlign
	}
	return out
}
