package catalog

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Color is a display color in #rrggbb notation.
type Color string

// DefaultColor is used for unknown or missing categories.
const DefaultColor Color = "#444444"

var categoryColors = map[string]Color{
	"hidrogênio":             "#aaaaff",
	"metal alcalino":         "#dcdc00",
	"metal alcalino terroso": "#ff2200",
	"ametal":                 "#00dd00",
	"metal de transição":     "#ff0000",
	"gás nobre":              "#aa00aa",
	"outros metais":          "#00aaee",
	"metaloide":              "#ff22ee",
	"halogênio":              "#00aaee",
	"desconhecido":           DefaultColor,
}

// ColorFor maps an element category to its display color.
func ColorFor(category string) Color {
	if c, ok := categoryColors[strings.TrimSpace(category)]; ok {
		return c
	}
	return DefaultColor
}

// Categories returns the known category names, sorted.
func Categories() []string {
	names := maps.Keys(categoryColors)
	slices.Sort(names)
	return names
}

// RGB splits the color into its channels. Malformed colors yield the
// channels of DefaultColor.
func (c Color) RGB() (r, g, b uint8) {
	v, ok := c.parse()
	if !ok {
		v, _ = DefaultColor.parse()
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// RGBA returns the color as an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (c Color) parse() (uint32, bool) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
