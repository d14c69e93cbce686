// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: term/screen.go
// Summary: Converts grid cells to tcell-renderable rows.
// Usage: The entry point paints rows returned by Render; tcell
// quantizes RGB to whatever the host terminal supports.

package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/sergev/goterm/parser"
)

// Cell is a renderable cell. A zero Ch marks the shadow column of a
// wide rune; the renderer skips it.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// styleFor builds a tcell style from a drawing attribute.
func styleFor(attr parser.CharAttr) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(attr.FG.R), int32(attr.FG.G), int32(attr.FG.B))).
		Background(tcell.NewRGBColor(int32(attr.BG.R), int32(attr.BG.G), int32(attr.BG.B)))
	st = st.Bold(attr.Attr&parser.AttrBold != 0)
	st = st.Underline(attr.Attr&parser.AttrUnderline != 0)
	st = st.Reverse(attr.Attr&parser.AttrReverse != 0)
	st = st.Blink(attr.Attr&parser.AttrBlink != 0)
	return st
}

// Render snapshots the grid as renderable rows.
func (s *Session) Render() [][]Cell {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid := s.vterm.Grid()
	buf := make([][]Cell, len(grid))
	for y, row := range grid {
		out := make([]Cell, len(row))
		for x := 0; x < len(row); x++ {
			cell := row[x]
			out[x] = Cell{Ch: cell.Ch, Style: styleFor(cell.Attr)}
			if runewidth.RuneWidth(cell.Ch) == 2 && x+1 < len(row) {
				out[x+1] = Cell{Ch: 0, Style: out[x].Style}
				x++
			}
		}
		buf[y] = out
	}
	return buf
}
