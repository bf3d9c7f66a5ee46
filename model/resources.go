package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color table entry.
type Color struct {
	R, G, B uint8
}

// ParseColor accepts "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	str := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(str) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns color as RRGGBB (upper case, no prefix).
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// MarshalText implements the text marshaller method.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (c *Color) UnmarshalText(text []byte) error {
	tmp, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = tmp
	return nil
}

// Font is a font table entry.
type Font struct {
	Name    string     `yaml:"name"`
	Family  FontFamily `yaml:"family"`
	Charset int        `yaml:"charset" validate:"min=0,max=255"`
	Pitch   Pitch      `yaml:"pitch"`
	AltName string     `yaml:"alt_name"`
}
