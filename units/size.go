// Package units defines unit-tagged lengths used by the document model. All
// geometry is computed in twips (1/1440 inch), conversion happens at the
// boundary and is rounded, not lossless.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit of length measurement.
// ENUM(twip, point, halfPoint, millimeter, centimeter, inch, pixel, emu)
type Unit int

const (
	TwipsPerInch  = 1440
	TwipsPerPoint = 20
	EMUPerTwip    = 635
	PixelsPerInch = 96
	TwipsPerPixel = TwipsPerInch / PixelsPerInch
)

// Size is a length tagged with its unit. Size is a comparable value type.
type Size struct {
	Value float64
	Unit  Unit
}

func Twips(v int) Size           { return Size{Value: float64(v), Unit: UnitTwip} }
func Points(v float64) Size      { return Size{Value: v, Unit: UnitPoint} }
func HalfPoints(v int) Size      { return Size{Value: float64(v), Unit: UnitHalfPoint} }
func Millimeters(v float64) Size { return Size{Value: v, Unit: UnitMillimeter} }
func Centimeters(v float64) Size { return Size{Value: v, Unit: UnitCentimeter} }
func Inches(v float64) Size      { return Size{Value: v, Unit: UnitInch} }
func Pixels(v int) Size          { return Size{Value: float64(v), Unit: UnitPixel} }
func EMU(v int64) Size           { return Size{Value: float64(v), Unit: UnitEmu} }

func (s Size) twips() float64 {
	switch s.Unit {
	case UnitTwip:
		return s.Value
	case UnitPoint:
		return s.Value * TwipsPerPoint
	case UnitHalfPoint:
		return s.Value * TwipsPerPoint / 2
	case UnitMillimeter:
		return s.Value * TwipsPerInch / 25.4
	case UnitCentimeter:
		return s.Value * TwipsPerInch / 2.54
	case UnitInch:
		return s.Value * TwipsPerInch
	case UnitPixel:
		return s.Value * TwipsPerPixel
	case UnitEmu:
		return s.Value / EMUPerTwip
	default:
		// this should never happen
		panic(fmt.Sprintf("unsupported unit %d", s.Unit))
	}
}

// Twips returns size in twips rounded half away from zero.
func (s Size) Twips() int {
	return int(math.Round(s.twips()))
}

// HalfPoints returns size in half-points (font sizes).
func (s Size) HalfPoints() int {
	return int(math.Round(s.twips() * 2 / TwipsPerPoint))
}

// Points returns size in points, not rounded.
func (s Size) Points() float64 {
	return s.twips() / TwipsPerPoint
}

// EMU returns size in English Metric Units (used by drawing markup).
func (s Size) EMU() int64 {
	return int64(math.Round(s.twips() * EMUPerTwip))
}

// Pixels returns size in pixels at 96 dpi.
func (s Size) Pixels() int {
	return int(math.Round(s.twips() / TwipsPerPixel))
}

func (s Size) IsZero() bool {
	return s.Value == 0
}

// unit suffixes accepted by Parse and produced by String.
var suffixes = []struct {
	suffix string
	unit   Unit
}{
	{"emu", UnitEmu},
	{"tw", UnitTwip},
	{"hp", UnitHalfPoint},
	{"pt", UnitPoint},
	{"mm", UnitMillimeter},
	{"cm", UnitCentimeter},
	{"in", UnitInch},
	{"px", UnitPixel},
}

func (s Size) String() string {
	for _, sf := range suffixes {
		if sf.unit == s.Unit {
			return strconv.FormatFloat(s.Value, 'f', -1, 64) + sf.suffix
		}
	}
	return fmt.Sprintf("%g(%s)", s.Value, s.Unit)
}

// Parse reads size in a form like "12pt", "2.5cm" or "720tw". Bare numbers
// are twips.
func Parse(in string) (Size, error) {
	str := strings.TrimSpace(strings.ToLower(in))
	if len(str) == 0 {
		return Size{}, fmt.Errorf("empty size")
	}
	unit := UnitTwip
	for _, sf := range suffixes {
		if strings.HasSuffix(str, sf.suffix) {
			unit = sf.unit
			str = strings.TrimSpace(strings.TrimSuffix(str, sf.suffix))
			break
		}
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return Size{}, fmt.Errorf("unable to parse size %q: %w", in, err)
	}
	return Size{Value: v, Unit: unit}, nil
}

// MarshalText implements the text marshaller method.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (s *Size) UnmarshalText(text []byte) error {
	tmp, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}
