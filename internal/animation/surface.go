package animation

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MustHex parses #rrggbb and panics on malformed input. Intended for
// package-level palettes.
func MustHex(value string) Color {
	c, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses a #rrggbb color.
func ParseHex(value string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("parse color %q: want 6 hex digits", value)
	}
	n, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", value, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Surface is the 2D raster contract the simulations draw to.
type Surface interface {
	// Clear erases r. A zero Rect clears the whole surface.
	Clear(r Rect)
	// FillRect paints r with c at the given opacity in [0,1].
	FillRect(r Rect, c Color, alpha float64)
	// Text draws s centered on (x, y).
	Text(x, y float64, s string, c Color)
}
