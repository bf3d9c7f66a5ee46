package css_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"rtdoc/css"
	"rtdoc/model"
	"rtdoc/units"
)

const sampleCSS = `
p { font-family: "Georgia", serif; font-size: 12pt; text-align: justify; text-indent: 1em }
p.note { color: #336699; font-style: italic }
h1 { font-size: 200%; font-weight: bold; margin-top: 24pt; page-break-before: always }
span.mark { background-color: yellow; text-decoration: underline line-through }
p { line-height: 1.5 }
@media print { p { color: red } }
div > p { color: red }
table { border: none }
`

func setupTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
}

func TestParserRules(t *testing.T) {
	sheet := css.NewParser(setupTestLogger(t)).Parse([]byte(sampleCSS), "sample")

	want := []struct{ element, class string }{
		{"p", ""},
		{"p", "note"},
		{"h1", ""},
		{"span", "mark"},
		{"p", ""},
		{"table", ""},
	}
	if len(sheet.Rules) != len(want) {
		t.Fatalf("got %d rules, want %d: %+v", len(sheet.Rules), len(want), sheet.Rules)
	}
	for i, w := range want {
		sel := sheet.Rules[i].Selector
		if sel.Element != w.element || sel.Class != w.class {
			t.Errorf("rule %d: got %s.%s, want %s.%s", i, sel.Element, sel.Class, w.element, w.class)
		}
	}
	if len(sheet.Warnings) < 2 {
		t.Errorf("expected warnings for @media and child combinator, got %v", sheet.Warnings)
	}

	p := sheet.Rules[0].Properties
	if got := p["font-family"].List; len(got) != 2 || got[0] != "Georgia" || got[1] != "serif" {
		t.Errorf("font-family list = %q", got)
	}
	if v := p["font-size"]; v.Value != 12 || v.Unit != "pt" {
		t.Errorf("font-size = %+v", v)
	}
	if v := p["text-align"]; v.Keyword != "justify" {
		t.Errorf("text-align = %+v", v)
	}
}

func TestValueSize(t *testing.T) {
	base := units.Points(12)
	tests := []struct {
		value css.Value
		twips int
		ok    bool
	}{
		{css.Value{Raw: "12pt", Value: 12, Unit: "pt"}, 240, true},
		{css.Value{Raw: "2em", Value: 2, Unit: "em"}, 480, true},
		{css.Value{Raw: "150%", Value: 150, Unit: "%"}, 360, true},
		{css.Value{Raw: "1in", Value: 1, Unit: "in"}, 1440, true},
		{css.Value{Raw: "96px", Value: 96, Unit: "px"}, 1440, true},
		{css.Value{Raw: "0", Value: 0}, 0, true},
		{css.Value{Raw: "auto", Keyword: "auto"}, 0, false},
		{css.Value{Raw: "3", Value: 3}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.value.Raw, func(t *testing.T) {
			s, ok := tt.value.Size(base)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && s.Twips() != tt.twips {
				t.Errorf("twips = %d, want %d", s.Twips(), tt.twips)
			}
		})
	}
}

func TestImport(t *testing.T) {
	log := setupTestLogger(t)
	doc := model.NewDocument()
	sheet := css.NewParser(log).Parse([]byte(sampleCSS))

	aliases := css.Import(doc, sheet, log)
	want := []string{"p", "note", "h1", "mark"}
	if len(aliases) != len(want) {
		t.Fatalf("aliases = %v, want %v", aliases, want)
	}
	for i := range want {
		if aliases[i] != want[i] {
			t.Errorf("alias %d = %q, want %q", i, aliases[i], want[i])
		}
	}

	p := doc.Styles.MustGet("p").Value
	if p.Kind != model.StyleKindParagraph {
		t.Errorf("p kind = %s", p.Kind)
	}
	if a, _ := p.Para.Align.Get(); a != model.AlignJustify {
		t.Errorf("p align = %s", a)
	}
	if s, _ := p.Para.IndentFirst.Get(); s.Twips() != 240 {
		t.Errorf("p indent = %d", s.Twips())
	}
	if s, _ := p.Para.LineSpacing.Get(); s.Twips() != 360 || p.Para.LineRule.Value() != model.LineRuleAuto {
		t.Errorf("p line spacing = %d %s", s.Twips(), p.Para.LineRule.Value())
	}
	font, ok := p.Char.Font.Get()
	if !ok {
		t.Fatal("p font is not set")
	}
	f := doc.Fonts.MustGet(font).Value
	if f.Name != "Georgia" || f.Family != model.FontFamilyRoman {
		t.Errorf("p font = %+v", f)
	}

	note := doc.Styles.MustGet("note").Value
	if b, _ := note.Base.Get(); b != "p" {
		t.Errorf("note base = %q", b)
	}
	color, _ := note.Char.Color.Get()
	if c := doc.Colors.MustGet(color).Value; c.Hex() != "336699" {
		t.Errorf("note color = %s", c.Hex())
	}

	h1 := doc.Styles.MustGet("h1").Value
	if h1.Name != "heading 1" || h1.Para.OutlineLevel.Value() != 0 || !h1.Para.PageBreakBefore.Value() {
		t.Errorf("h1 = %+v", h1)
	}
	if s, _ := h1.Char.Size.Get(); s.HalfPoints() != 48 {
		t.Errorf("h1 size = %d half-points", s.HalfPoints())
	}

	mark := doc.Styles.MustGet("mark").Value
	if mark.Kind != model.StyleKindCharacter || !mark.Char.Strike.Value() || mark.Char.Underline.Value() != model.UnderlineSingle {
		t.Errorf("mark = %+v", mark)
	}
	bg, _ := mark.Char.Background.Get()
	if c := doc.Colors.MustGet(bg).Value; c != (model.Color{R: 255, G: 255}) {
		t.Errorf("mark background = %v", c)
	}
}
