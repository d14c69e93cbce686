// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/cell.go
// Summary: Cell, color and attribute model for the terminal grid.
// Usage: Consumed by the grid and the VT sequence decoder.
// Notes: Keeps parsing concerns isolated from rendering.

package parser

// Attribute is a bitmask of text attribute slots. The grid carries these
// unchanged; interpreting them is the renderer's business.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrUnderline
	AttrReverse
	AttrBlink
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	if a&AttrBlink != 0 {
		parts = append(parts, "blink")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// RgbColor is a color with 8-bit channels. Equality is componentwise.
type RgbColor struct {
	R, G, B uint8
}

// CharAttr is the drawing attribute applied to each cell.
type CharAttr struct {
	FG   RgbColor
	BG   RgbColor
	Attr Attribute
}

// Cell represents a single character cell on the screen.
type Cell struct {
	Ch   rune
	Attr CharAttr
}

var (
	DefaultFG = RgbColor{255, 255, 255}
	DefaultBG = RgbColor{0, 0, 0}
)

// DefaultAttr returns the startup drawing attribute: white on black,
// no attribute flags.
func DefaultAttr() CharAttr {
	return CharAttr{FG: DefaultFG, BG: DefaultBG}
}

// BlankCell returns a space with default attributes.
func BlankCell() Cell {
	return Cell{Ch: ' ', Attr: DefaultAttr()}
}

// ansiPalette holds the 8 basic ANSI colors at full intensity.
var ansiPalette = [8]RgbColor{
	{0, 0, 0},       // black
	{255, 0, 0},     // red
	{0, 255, 0},     // green
	{255, 255, 0},   // yellow
	{0, 0, 255},     // blue
	{255, 0, 255},   // magenta
	{0, 255, 255},   // cyan
	{255, 255, 255}, // white
}

// color256 maps an xterm 256-color palette index to RGB. Indices 0-15 are
// the ANSI colors, 16-231 the 6x6x6 cube, 232-255 the grayscale ramp.
func color256(n int) RgbColor {
	n &= 0xFF
	switch {
	case n < 16:
		return ansiPalette[n%8]
	case n < 232:
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		n -= 16
		return RgbColor{levels[n/36], levels[n/6%6], levels[n%6]}
	default:
		gray := uint8(8 + (n-232)*10)
		return RgbColor{gray, gray, gray}
	}
}
