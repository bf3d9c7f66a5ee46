package css

import (
	"math"
	"strings"

	"rtdoc/units"
)

// Value is a parsed CSS property value.
type Value struct {
	Raw     string   // original value text, e.g. "1.2em", "bold", "#ff0000"
	Value   float64  // numeric value if applicable
	Unit    string   // "em", "px", "%", "pt", ... for dimensions
	Keyword string   // lower cased identifier, unquoted string or hash
	List    []string // comma separated items with quotes removed
}

// IsNumeric reports whether value has a numeric component, including
// explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	return v.Raw == "0"
}

// Size converts length to units.Size. Relative units (em, rem, %) are
// resolved against base.
func (v Value) Size(base units.Size) (units.Size, bool) {
	if !v.IsNumeric() {
		return units.Size{}, false
	}
	switch v.Unit {
	case "pt":
		return units.Points(v.Value), true
	case "px":
		return units.Pixels(int(math.Round(v.Value))), true
	case "in":
		return units.Inches(v.Value), true
	case "cm":
		return units.Centimeters(v.Value), true
	case "mm":
		return units.Millimeters(v.Value), true
	case "pc":
		return units.Points(v.Value * 12), true
	case "em", "rem":
		return units.Points(base.Points() * v.Value), true
	case "%":
		return units.Points(base.Points() * v.Value / 100), true
	case "":
		if v.Value == 0 {
			return units.Twips(0), true
		}
	}
	return units.Size{}, false
}

// Selector is a simple selector: element, class or element.class.
type Selector struct {
	Raw     string
	Element string
	Class   string
}

func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// Alias is registry alias for styles created from the selector.
func (s Selector) Alias() string {
	if s.Class != "" {
		return s.Class
	}
	return s.Element
}

// Rule is a selector with its declarations.
type Rule struct {
	Selector   Selector
	Properties map[string]Value
}

// Stylesheet is parsed CSS. Rules keep source order.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
