// Package core provides shared types for the grid model and renderer.
// This package breaks import cycles between the grid tree, the dirty
// tracker, and the rendering backend.
package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrUndercurl               // Curly underline (diagnostics)
	AttrStrikethrough           // Strikethrough text
	AttrReverse                 // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color represents a 24-bit RGB color value.
type Color struct {
	R, G, B uint8
	// Default indicates the theme's default color should be used.
	Default bool
}

// ColorDefault represents the theme's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from a hex string ("#rgb" or "#rrggbb").
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint64
	var err error

	switch len(hex) {
	case 3:
		r, err = strconv.ParseUint(string(hex[0])+string(hex[0]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		g, err = strconv.ParseUint(string(hex[1])+string(hex[1]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		b, err = strconv.ParseUint(string(hex[2])+string(hex[2]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		g, err = strconv.ParseUint(hex[2:4], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		b, err = strconv.ParseUint(hex[4:6], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// IsDefault returns true if this is the theme default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Cell is a single character cell in a grid buffer.
// Text holds one grapheme cluster; wide glyphs occupy a following
// continuation cell with empty text in the protocol stream.
type Cell struct {
	// HlID is the highlight id resolving to colors and attributes.
	// Id 0 is the default highlight.
	HlID int

	// Text is the grapheme cluster displayed in this cell.
	Text string
}

// EmptyCell returns the default cell: highlight 0, single space.
func EmptyCell() Cell {
	return Cell{HlID: 0, Text: " "}
}

// IsEmpty returns true if the cell equals the default cell.
func (c Cell) IsEmpty() bool {
	return c.HlID == 0 && c.Text == " "
}

// TextWidth returns the display width of a string in cells,
// counting grapheme clusters with their East Asian widths.
func TextWidth(s string) int {
	return uniseg.StringWidth(s)
}

// GridSize holds grid dimensions in cells. Both fields are >= 0.
type GridSize struct {
	Rows int
	Cols int
}

// Empty returns true if the size covers no cells.
func (s GridSize) Empty() bool {
	return s.Rows <= 0 || s.Cols <= 0
}

// FontMetrics describes the glyph cell geometry in device pixels.
type FontMetrics struct {
	// CellWidth is the advance width of one cell.
	CellWidth float64

	// CellHeight is the line height of one cell.
	CellHeight float64

	// Ascent is the distance from the cell top to the baseline.
	Ascent float64
}

// Valid returns true if the metrics describe a drawable cell.
func (m FontMetrics) Valid() bool {
	return m.CellWidth > 0 && m.CellHeight > 0
}

// PixelWidth returns the pixel width of the given number of columns.
func (m FontMetrics) PixelWidth(cols int) float64 {
	return float64(cols) * m.CellWidth
}

// PixelHeight returns the pixel height of the given number of rows.
func (m FontMetrics) PixelHeight(rows int) float64 {
	return float64(rows) * m.CellHeight
}
