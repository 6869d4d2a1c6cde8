package tokens

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a color literal cannot be parsed.
var ErrInvalidHex = errors.New("tokens: invalid hex color")

// Color is an sRGB color with straight alpha in the [0,1] range.
type Color struct {
	R, G, B uint8
	A       float64
}

// Common colors.
var (
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 1}
	Black = Color{A: 1}
	Clear = Color{}
)

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". Surrounding whitespace and the
// leading '#' are optional; digits are case-insensitive.
func ParseHex(raw string) (Color, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	value = strings.TrimPrefix(value, "#")
	if len(value) != 6 && len(value) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, raw)
	}
	bits, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, raw)
	}
	alpha := 1.0
	if len(value) == 8 {
		alpha = float64(bits&0xFF) / 255.0
		bits >>= 8
	}
	return Color{
		R: uint8((bits & 0xFF0000) >> 16),
		G: uint8((bits & 0x00FF00) >> 8),
		B: uint8(bits & 0x0000FF),
		A: alpha,
	}, nil
}

// MustHex panics when raw is not a valid color. Intended for palette literals.
func MustHex(raw string) Color {
	c, err := ParseHex(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of c using alpha, clamped to [0,1].
func (c Color) WithAlpha(alpha float64) Color {
	c.A = math.Max(0, math.Min(1, alpha))
	return c
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Hex renders "#RRGGBB", dropping alpha. Terminal styles use this form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexA renders "#RRGGBB" for opaque colors and "#RRGGBBAA" otherwise.
func (c Color) HexA() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02X", c.Hex(), uint8(math.Round(c.A*255)))
}

// CSS renders a CSS color value.
func (c Color) CSS() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

func (c Color) String() string {
	return c.HexA()
}
