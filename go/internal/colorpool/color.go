package colorpool

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a named opaque RGB colour.
type Color struct {
	Name string `json:"name" yaml:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// Hex returns the colour as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.Name == "" {
		return c.Hex()
	}
	return c.Name + "(" + c.Hex() + ")"
}

// ParseColor builds a Color from a name and a #RRGGBB (or RRGGBB) string.
func ParseColor(name, hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return Color{
		Name: name,
		R:    uint8(v >> 16),
		G:    uint8(v >> 8),
		B:    uint8(v),
	}, nil
}

// DefaultPalette returns the ten-colour palette used when no palette file is configured.
func DefaultPalette() []Color {
	return []Color{
		{Name: "red", R: 0xFF, G: 0x00, B: 0x00},
		{Name: "green", R: 0x00, G: 0x80, B: 0x00},
		{Name: "blue", R: 0x00, G: 0x00, B: 0xFF},
		{Name: "yellow", R: 0xFF, G: 0xFF, B: 0x00},
		{Name: "white", R: 0xFF, G: 0xFF, B: 0xFF},
		{Name: "purple", R: 0x80, G: 0x00, B: 0x80},
		{Name: "orange", R: 0xFF, G: 0xA5, B: 0x00},
		{Name: "turquoise", R: 0x40, G: 0xE0, B: 0xD0},
		{Name: "pink", R: 0xFF, G: 0xC0, B: 0xCB},
		{Name: "gray", R: 0x80, G: 0x80, B: 0x80},
	}
}
