package model

import (
	"strconv"
	"strings"

	"rtdoc/units"
)

// MaxListLevels is the number of levels a list template may define.
const MaxListLevels = 9

// ListLevel defines numbering of one list level. Text is a template where %N
// refers to the current number of level N (1 based), e.g. "%1.%2.".
type ListLevel struct {
	Format  NumberFormat `yaml:"format"`
	Justify Align        `yaml:"justify"`
	Follow  Follow       `yaml:"follow"`
	StartAt int          `yaml:"start_at" validate:"min=0,max=32767"`
	Indent  units.Size   `yaml:"indent" validate:"min=0,max=31680"`
	Hanging units.Size   `yaml:"hanging" validate:"min=0,max=31680"`
	Text    string       `yaml:"text"`
	Char    CharFormat   `yaml:"char"`
}

// List is a numbering template. Every registered list is a separate
// numbering instance even when levels look alike.
type List struct {
	Name               string      `yaml:"name"`
	Type               ListType    `yaml:"type"`
	RestartEachSection bool        `yaml:"restart_each_section"`
	Levels             []ListLevel `yaml:"levels" validate:"min=1,max=9,dive"`
}

// Level returns level definition by zero based index.
func (l *List) Level(i int) (ListLevel, bool) {
	if i < 0 || i >= len(l.Levels) {
		return ListLevel{}, false
	}
	return l.Levels[i], true
}

func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	dst := *l
	dst.Levels = append([]ListLevel(nil), l.Levels...)
	return &dst
}

var bullets = []string{"•", "o", "▪"}

// LevelText returns level template for the level with zero based index idx,
// supplying the default when Text is empty.
func (lvl ListLevel) LevelText(idx int) string {
	if lvl.Text != "" {
		return lvl.Text
	}
	switch lvl.Format {
	case NumberFormatBullet:
		return bullets[idx%len(bullets)]
	case NumberFormatNone:
		return ""
	default:
		return "%" + strconv.Itoa(idx+1) + "."
	}
}

// TemplatePart is either literal text or a 1 based level reference.
type TemplatePart struct {
	Literal string
	Level   int
}

// ParseTemplate splits level text into literal parts and %N references.
// "%%" is a literal percent, a lone "%" is kept verbatim.
func ParseTemplate(text string) []TemplatePart {
	var (
		parts []TemplatePart
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, TemplatePart{Literal: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' || i+1 >= len(text) {
			lit.WriteByte(c)
			continue
		}
		n := text[i+1]
		switch {
		case n == '%':
			lit.WriteByte('%')
			i++
		case n >= '1' && n <= '9':
			flush()
			parts = append(parts, TemplatePart{Level: int(n - '0')})
			i++
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return parts
}

// FormatNumber renders n in the given number format. Used for list text
// fallbacks and note marks.
func FormatNumber(n int, f NumberFormat) string {
	switch f {
	case NumberFormatUpperRoman:
		return strings.ToUpper(roman(n))
	case NumberFormatLowerRoman:
		return roman(n)
	case NumberFormatUpperLetter:
		return strings.ToUpper(letters(n))
	case NumberFormatLowerLetter:
		return letters(n)
	case NumberFormatOrdinal:
		return strconv.Itoa(n) + ordinalSuffix(n)
	case NumberFormatCardinal:
		return words(n, cardinals)
	case NumberFormatOrdinalText:
		return words(n, ordinals)
	case NumberFormatBullet:
		return bullets[0]
	case NumberFormatNone:
		return ""
	default:
		return strconv.Itoa(n)
	}
}

func roman(n int) string {
	if n <= 0 || n >= 4000 {
		return strconv.Itoa(n)
	}
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"m", "cm", "d", "cd", "c", "xc", "l", "xl", "x", "ix", "v", "iv", "i"}
	var b strings.Builder
	for i, v := range values {
		for n >= v {
			b.WriteString(symbols[i])
			n -= v
		}
	}
	return b.String()
}

// letters produces a, b, ... z, aa, bb, ... as word processors do.
func letters(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	return strings.Repeat(string(rune('a'+(n-1)%26)), (n-1)/26+1)
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

var (
	cardinals = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen", "Twenty"}
	ordinals = []string{"Zeroth", "First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth", "Ninth", "Tenth",
		"Eleventh", "Twelfth", "Thirteenth", "Fourteenth", "Fifteenth", "Sixteenth", "Seventeenth", "Eighteenth", "Nineteenth", "Twentieth"}
)

func words(n int, table []string) string {
	if n < 0 || n >= len(table) {
		return strconv.Itoa(n)
	}
	return table[n]
}
