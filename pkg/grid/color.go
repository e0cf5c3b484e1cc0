// pkg/grid/color.go
package grid

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a single cell value: either a 24-bit RGB color or the transparent sentinel.
// The zero value is Transparent, so a freshly allocated grid is empty.
type Color struct {
	R, G, B uint8
	Opaque  bool
}

// Transparent marks a cell that was never painted (or was erased).
var Transparent = Color{}

const transparentName = "transparent"

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Opaque: true}
}

// IsTransparent reports whether c is the transparent sentinel.
func (c Color) IsTransparent() bool {
	return !c.Opaque
}

// NRGBA converts the cell to an image color. Transparent becomes fully clear.
func (c Color) NRGBA() color.NRGBA {
	if !c.Opaque {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns "#rrggbb" or "transparent".
func (c Color) Hex() string {
	if !c.Opaque {
		return transparentName
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb", "#rgb" (any case) or "transparent".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, transparentName) {
		return Transparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Transparent, fmt.Errorf("color %q: missing leading '#'", s)
	}
	digits := s[1:]
	switch len(digits) {
	case 3:
		// #abc -> #aabbcc
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return Transparent, fmt.Errorf("color %q: want 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Transparent, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
