package css

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rtdoc/model"
	"rtdoc/units"
)

// BaseFontSize is the size relative font units are resolved against.
var BaseFontSize = units.Points(12)

var (
	paragraphElements = []string{"", "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote", "pre"}
	characterElements = []string{"span", "em", "strong", "b", "i", "u", "code", "a", "sup", "sub"}
)

// generic font families and fonts standing for them.
var genericFonts = map[string]model.Font{
	"serif":      {Name: "Times New Roman", Family: model.FontFamilyRoman, Pitch: model.PitchVariable},
	"sans-serif": {Name: "Arial", Family: model.FontFamilySwiss, Pitch: model.PitchVariable},
	"monospace":  {Name: "Courier New", Family: model.FontFamilyModern, Pitch: model.PitchFixed},
	"cursive":    {Name: "Comic Sans MS", Family: model.FontFamilyScript, Pitch: model.PitchVariable},
	"fantasy":    {Name: "Impact", Family: model.FontFamilyDecor, Pitch: model.PitchVariable},
}

var namedColors = map[string]model.Color{
	"black":   {},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255},
	"green":   {G: 128},
	"blue":    {B: 255},
	"yellow":  {R: 255, G: 255},
	"gray":    {R: 128, G: 128, B: 128},
	"grey":    {R: 128, G: 128, B: 128},
	"silver":  {R: 192, G: 192, B: 192},
	"maroon":  {R: 128},
	"navy":    {B: 128},
	"purple":  {R: 128, B: 128},
	"teal":    {G: 128, B: 128},
	"olive":   {R: 128, G: 128},
	"orange":  {R: 255, G: 165},
	"fuchsia": {R: 255, B: 255},
	"aqua":    {G: 255, B: 255},
	"lime":    {G: 255},
}

// Import registers a style for every rule of the stylesheet. Rules sharing a
// selector are merged in source order. A rule with element.class selector is
// based on the element style when the stylesheet defines one. Fonts and
// colors referenced by properties are registered as needed. Returned are
// aliases of the registered styles in first appearance order.
func Import(doc *model.Document, sheet *Stylesheet, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("css")

	var (
		order  []string
		merged = make(map[string]Rule)
	)
	for _, r := range sheet.Rules {
		key := r.Selector.Element + "." + r.Selector.Class
		prev, ok := merged[key]
		if !ok {
			order = append(order, key)
			merged[key] = Rule{Selector: r.Selector, Properties: maps.Clone(r.Properties)}
			continue
		}
		maps.Copy(prev.Properties, r.Properties)
	}

	c := &converter{doc: doc}
	var aliases []string
	for _, key := range order {
		r := merged[key]
		st, ok := c.style(r.Selector)
		if !ok {
			log.Warn("Unable to map selector to style", zap.String("selector", r.Selector.Raw))
			continue
		}
		if r.Selector.Class != "" && r.Selector.Element != "" {
			if _, ok := merged[r.Selector.Element+"."]; ok {
				st.Base = model.Some(r.Selector.Element)
			}
		}
		for _, name := range slices.Sorted(maps.Keys(r.Properties)) {
			if err := c.apply(&st, name, r.Properties[name]); err != nil {
				log.Warn("Unable to apply CSS property", zap.String("selector", r.Selector.Raw), zap.String("property", name), zap.Error(err))
			}
		}
		aliases = append(aliases, doc.AddStyle(st, r.Selector.Alias()))
	}
	return aliases
}

type converter struct {
	doc *model.Document
}

func (c *converter) style(sel Selector) (model.Style, bool) {
	st := model.Style{Name: sel.Alias(), QuickFormat: true}
	switch {
	case slices.Contains(paragraphElements, sel.Element):
		st.Kind = model.StyleKindParagraph
		if n, ok := headingLevel(sel.Element); ok {
			if sel.Class == "" {
				st.Name = "heading " + strconv.Itoa(n)
			}
			st.Para.OutlineLevel = model.Some(n - 1)
			st.Para.KeepWithNext = model.Some(true)
		}
	case slices.Contains(characterElements, sel.Element):
		st.Kind = model.StyleKindCharacter
		switch sel.Element {
		case "em", "i":
			st.Char.Italic = model.Some(true)
		case "strong", "b":
			st.Char.Bold = model.Some(true)
		case "u":
			st.Char.Underline = model.Some(model.UnderlineSingle)
		case "sup":
			st.Char.Position = model.Some(model.VertPosSuperscript)
		case "sub":
			st.Char.Position = model.Some(model.VertPosSubscript)
		}
	default:
		return st, false
	}
	return st, true
}

func headingLevel(element string) (int, bool) {
	if len(element) == 2 && element[0] == 'h' && element[1] >= '1' && element[1] <= '6' {
		return int(element[1] - '0'), true
	}
	return 0, false
}

func (c *converter) apply(st *model.Style, name string, v Value) error {
	ch, pa := &st.Char, &st.Para
	size := func() (units.Size, error) {
		s, ok := v.Size(BaseFontSize)
		if !ok {
			return s, fmt.Errorf("not a length %q", v.Raw)
		}
		return s, nil
	}

	switch name {
	case "font-family":
		ch.Font = model.Some(c.font(v.List))
	case "font-size":
		s, err := size()
		if err != nil {
			return err
		}
		ch.Size = model.Some(units.HalfPoints(s.HalfPoints()))
	case "font-weight":
		switch {
		case v.Keyword == "bold" || v.Keyword == "bolder":
			ch.Bold = model.Some(true)
		case v.Keyword == "normal" || v.Keyword == "lighter":
			ch.Bold = model.Some(false)
		case v.IsNumeric():
			ch.Bold = model.Some(v.Value >= 600)
		default:
			return fmt.Errorf("unknown weight %q", v.Raw)
		}
	case "font-style":
		ch.Italic = model.Some(v.Keyword == "italic" || v.Keyword == "oblique")
	case "font-variant":
		ch.SmallCaps = model.Some(v.Keyword == "small-caps")
	case "text-transform":
		ch.Caps = model.Some(v.Keyword == "uppercase")
	case "text-decoration", "text-decoration-line":
		for kw := range strings.FieldsSeq(v.Keyword) {
			switch kw {
			case "underline":
				ch.Underline = model.Some(model.UnderlineSingle)
			case "line-through":
				ch.Strike = model.Some(true)
			case "none":
				ch.Underline = model.Some(model.UnderlineNone)
				ch.Strike = model.Some(false)
			}
		}
	case "vertical-align":
		switch v.Keyword {
		case "super":
			ch.Position = model.Some(model.VertPosSuperscript)
		case "sub":
			ch.Position = model.Some(model.VertPosSubscript)
		case "baseline":
			ch.Position = model.Some(model.VertPosBaseline)
		}
	case "letter-spacing":
		s, err := size()
		if err != nil {
			return err
		}
		ch.Spacing = model.Some(s)
	case "display":
		if v.Keyword == "none" {
			ch.Hidden = model.Some(true)
		}
	case "color":
		col, err := c.color(v)
		if err != nil {
			return err
		}
		ch.Color = model.Some(col)
	case "background-color", "background":
		col, err := c.color(v)
		if err != nil {
			return err
		}
		if st.Kind == model.StyleKindParagraph {
			pa.Shading = model.Some(col)
		} else {
			ch.Background = model.Some(col)
		}
	case "text-align":
		a, err := model.ParseAlign(v.Keyword)
		if err != nil {
			return err
		}
		pa.Align = model.Some(a)
	case "margin-left", "margin-right", "margin-top", "margin-bottom", "text-indent":
		s, err := size()
		if err != nil {
			return err
		}
		switch name {
		case "margin-left":
			pa.IndentLeft = model.Some(s)
		case "margin-right":
			pa.IndentRight = model.Some(s)
		case "margin-top":
			pa.SpaceBefore = model.Some(s)
		case "margin-bottom":
			pa.SpaceAfter = model.Some(s)
		default:
			pa.IndentFirst = model.Some(s)
		}
	case "line-height":
		if v.Unit == "" && v.IsNumeric() {
			pa.LineSpacing = model.Some(units.Twips(int(math.Round(v.Value * model.SingleLineSpacing))))
			pa.LineRule = model.Some(model.LineRuleAuto)
			break
		}
		s, err := size()
		if err != nil {
			return err
		}
		pa.LineSpacing = model.Some(s)
		pa.LineRule = model.Some(model.LineRuleExact)
	case "page-break-before", "break-before":
		pa.PageBreakBefore = model.Some(v.Keyword == "always" || v.Keyword == "page")
	case "page-break-after", "break-after":
		pa.KeepWithNext = model.Some(v.Keyword == "avoid")
	case "page-break-inside", "break-inside":
		pa.KeepTogether = model.Some(v.Keyword == "avoid")
	case "direction":
		pa.RightToLeft = model.Some(v.Keyword == "rtl")
	case "widows", "orphans":
		pa.WidowControl = model.Some(v.Value > 1)
	default:
		return fmt.Errorf("unsupported property")
	}
	return nil
}

// font registers font for a font-family list: the first family names the
// font, a generic family anywhere in the list gives its class.
func (c *converter) font(families []string) string {
	var f model.Font
	for _, name := range families {
		g, generic := genericFonts[strings.ToLower(name)]
		switch {
		case f.Name == "" && generic:
			f = g
		case f.Name == "":
			f.Name = name
		case generic:
			f.Family, f.Pitch = g.Family, g.Pitch
		}
	}
	if f.Name == "" {
		f = genericFonts["serif"]
	}
	return c.doc.AddFont(f, "")
}

func (c *converter) color(v Value) (string, error) {
	col, err := parseColor(v.Keyword)
	if err != nil {
		return "", err
	}
	return c.doc.AddColor(col, ""), nil
}

// parseColor understands "#rgb", "#rrggbb", "rgb(r, g, b)" and basic color
// names.
func parseColor(s string) (model.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if col, ok := namedColors[s]; ok {
		return col, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		return model.ParseColor(hex)
	}
	if args, ok := strings.CutPrefix(s, "rgb("); ok {
		parts := strings.Split(strings.TrimSuffix(args, ")"), ",")
		if len(parts) != 3 {
			return model.Color{}, fmt.Errorf("invalid color %q", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return model.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			rgb[i] = uint8(min(max(n, 0), 255))
		}
		return model.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}
	return model.Color{}, fmt.Errorf("invalid color %q", s)
}
