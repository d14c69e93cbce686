// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/sgr.go
// Summary: SGR (Select Graphic Rendition) - text attributes and colors.
// Usage: Dispatched from the CSI 'm' final byte.

package parser

// handleSGR processes an SGR parameter list left to right. An empty
// list is equivalent to [0]. Unknown codes are ignored.
func (v *VTerm) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			v.attr = DefaultAttr()
		case p == 1:
			v.attr.Attr |= AttrBold
		case p == 4:
			v.attr.Attr |= AttrUnderline
		case p == 5:
			v.attr.Attr |= AttrBlink
		case p == 7:
			v.attr.Attr |= AttrReverse
		case p == 22:
			v.attr.Attr &^= AttrBold
		case p == 24:
			v.attr.Attr &^= AttrUnderline
		case p == 25:
			v.attr.Attr &^= AttrBlink
		case p == 27:
			v.attr.Attr &^= AttrReverse
		case p >= 30 && p <= 37:
			v.attr.FG = ansiPalette[p-30]
		case p == 38:
			if c, skip, ok := extendedColor(params[i+1:]); ok {
				v.attr.FG = c
				i += skip
			}
		case p == 39:
			v.attr.FG = DefaultFG
		case p >= 40 && p <= 47:
			v.attr.BG = ansiPalette[p-40]
		case p == 48:
			if c, skip, ok := extendedColor(params[i+1:]); ok {
				v.attr.BG = c
				i += skip
			}
		case p == 49:
			v.attr.BG = DefaultBG
		case p >= 90 && p <= 97:
			// Bright variants; the palette is already full intensity.
			v.attr.FG = ansiPalette[p-90]
		case p >= 100 && p <= 107:
			v.attr.BG = ansiPalette[p-100]
		}
	}
}

// extendedColor decodes the tail of a 38/48 sequence: "5;n" selects
// from the 256-color palette, "2;r;g;b" carries RGB directly. Returns
// the color, the number of parameters consumed, and whether the tail
// was well-formed.
func extendedColor(rest []int) (RgbColor, int, bool) {
	if len(rest) >= 2 && rest[0] == 5 {
		return color256(rest[1]), 2, true
	}
	if len(rest) >= 4 && rest[0] == 2 {
		return RgbColor{clamp8(rest[1]), clamp8(rest[2]), clamp8(rest[3])}, 4, true
	}
	return RgbColor{}, 0, false
}

func clamp8(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
