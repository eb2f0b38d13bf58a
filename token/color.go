package token

import "fmt"

// ColorKind discriminates the Color variants produced by the SGR
// reducer. Unlike a rendering-oriented color model (compare
// purfecterm.Color, which additionally resolves every variant down to
// a displayed RGB triple), this type only preserves what SGR actually
// specified: the tokenizer never resolves a palette index or a named
// standard color to a concrete displayed RGB value, since that is a
// rendering concern outside the tokenizer's scope.
type ColorKind int

const (
	// ColorStandard is one of the 8 standard ANSI colors (SGR 30-37 /
	// 40-47). Index is 0..=7.
	ColorStandard ColorKind = iota
	// ColorBright is one of the 8 bright ANSI colors (SGR 90-97 /
	// 100-107). Index is 0..=7.
	ColorBright
	// ColorPalette is a 256-color palette index (SGR 38/48;5;n).
	ColorPalette
	// ColorRGB is a 24-bit truecolor value (SGR 38/48;2;r;g;b).
	ColorRGB
)

// Color represents a color requested by an SGR sequence, preserving how
// it was specified rather than resolving it to a display value.
type Color struct {
	Kind    ColorKind
	Index   uint8 // for ColorStandard (0-7), ColorBright (0-7), ColorPalette (0-255)
	R, G, B uint8 // for ColorRGB
}

// StandardColor returns a Color for one of the 8 standard ANSI colors.
func StandardColor(index uint8) Color {
	return Color{Kind: ColorStandard, Index: index}
}

// BrightColor returns a Color for one of the 8 bright ANSI colors.
func BrightColor(index uint8) Color {
	return Color{Kind: ColorBright, Index: index}
}

// PaletteColor returns a Color for a 256-color palette index.
func PaletteColor(index uint8) Color {
	return Color{Kind: ColorPalette, Index: index}
}

// RGBColor returns a Color for a 24-bit truecolor value.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// String returns a human-readable representation of the color.
func (c Color) String() string {
	switch c.Kind {
	case ColorStandard:
		return fmt.Sprintf("standard(%d)", c.Index)
	case ColorBright:
		return fmt.Sprintf("bright(%d)", c.Index)
	case ColorPalette:
		return fmt.Sprintf("palette(%d)", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	default:
		return "unknown"
	}
}
