// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/vterm.go
// Summary: Virtual terminal grid: cells, cursor, drawing attribute.
// Usage: Mutated by the VT sequence decoder, read by the renderer.
// Notes: Pure state; performs no I/O.

package parser

// VTerm holds the state of a virtual terminal: a fixed-size grid of
// styled cells, the cursor and the current drawing attribute.
//
// The cursor column may transiently rest at width after the rightmost
// cell is written; the next printable character wraps to the following
// row (scrolling if needed) before being placed.
type VTerm struct {
	width, height    int
	cursorX, cursorY int
	grid             [][]Cell
	attr             CharAttr
	dirtyLines       map[int]bool
	allDirty         bool
}

// NewVTerm creates a virtual terminal with all cells blank, the cursor
// at the origin and default attributes. Dimensions are clamped to at
// least 1x1.
func NewVTerm(width, height int) *VTerm {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v := &VTerm{
		width:      width,
		height:     height,
		attr:       DefaultAttr(),
		dirtyLines: make(map[int]bool),
	}
	v.grid = make([][]Cell, height)
	for y := range v.grid {
		v.grid[y] = blankRow(width, DefaultAttr())
	}
	return v
}

func blankRow(width int, attr CharAttr) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = Cell{Ch: ' ', Attr: attr}
	}
	return row
}

// Grid returns the cell matrix. Callers must treat it as read-only.
func (v *VTerm) Grid() [][]Cell { return v.grid }

// Cursor returns the cursor position as (col, row).
func (v *VTerm) Cursor() (x, y int) { return v.cursorX, v.cursorY }

// Cols returns the grid width.
func (v *VTerm) Cols() int { return v.width }

// Rows returns the grid height.
func (v *VTerm) Rows() int { return v.height }

// placeChar writes a rune at the cursor with the current attribute and
// advances the cursor. A cursor resting past the right margin wraps to
// the next row first, scrolling if needed.
func (v *VTerm) placeChar(r rune) {
	if v.cursorX >= v.width {
		v.cursorX = 0
		v.LineFeed()
	}
	v.grid[v.cursorY][v.cursorX] = Cell{Ch: r, Attr: v.attr}
	v.markDirty(v.cursorY)
	v.cursorX++
}

// LineFeed moves the cursor down one row, scrolling the grid up when the
// cursor is on the last row. The column is preserved.
func (v *VTerm) LineFeed() {
	if v.cursorY >= v.height-1 {
		v.scrollUp()
		v.cursorY = v.height - 1
	} else {
		v.cursorY++
	}
}

// CarriageReturn moves the cursor to column 0.
func (v *VTerm) CarriageReturn() {
	v.cursorX = 0
}

// Backspace moves the cursor one column left, stopping at 0.
func (v *VTerm) Backspace() {
	if v.cursorX > 0 {
		v.cursorX--
	}
}

// Tab advances the cursor to the next tab stop (every 8 columns),
// stopping at the last column.
func (v *VTerm) Tab() {
	next := (v.cursorX/8 + 1) * 8
	if next > v.width-1 {
		next = v.width - 1
	}
	v.cursorX = next
}

// scrollUp shifts all rows up by one. Row references move; only the new
// bottom row is allocated, blanked with the current attribute.
func (v *VTerm) scrollUp() {
	copy(v.grid, v.grid[1:])
	v.grid[v.height-1] = blankRow(v.width, v.attr)
	v.markAllDirty()
}

// SetCursorPos moves the cursor to (row, col), clamping into the grid.
func (v *VTerm) SetCursorPos(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= v.height {
		row = v.height - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= v.width {
		col = v.width - 1
	}
	v.cursorY, v.cursorX = row, col
}

// MoveCursorUp moves the cursor n rows up, stopping at the top.
func (v *VTerm) MoveCursorUp(n int) {
	v.cursorY -= n
	if v.cursorY < 0 {
		v.cursorY = 0
	}
}

// MoveCursorDown moves the cursor n rows down, stopping at the bottom.
func (v *VTerm) MoveCursorDown(n int) {
	v.cursorY += n
	if v.cursorY >= v.height {
		v.cursorY = v.height - 1
	}
}

// MoveCursorForward moves the cursor n columns right, stopping at the
// last column.
func (v *VTerm) MoveCursorForward(n int) {
	v.cursorX += n
	if v.cursorX >= v.width {
		v.cursorX = v.width - 1
	}
}

// MoveCursorBackward moves the cursor n columns left, stopping at 0.
func (v *VTerm) MoveCursorBackward(n int) {
	v.cursorX -= n
	if v.cursorX < 0 {
		v.cursorX = 0
	}
}

// ClearLine blanks part of the cursor row with the current attribute.
// Mode 0 clears from the cursor to the end of the line, mode 1 from the
// start through the cursor, mode 2 the entire line.
func (v *VTerm) ClearLine(mode int) {
	start, end := 0, v.width-1
	switch mode {
	case 0:
		start = v.cursorX
	case 1:
		end = v.cursorX
	case 2:
	default:
		return
	}
	if end > v.width-1 {
		end = v.width - 1
	}
	row := v.grid[v.cursorY]
	for x := start; x <= end && x < v.width; x++ {
		row[x] = Cell{Ch: ' ', Attr: v.attr}
	}
	v.markDirty(v.cursorY)
}

// ClearScreenMode blanks part of the grid with the current attribute.
// Mode 0 clears from the cursor to the end of the screen, mode 1 from
// the start of the screen through the cursor, mode 2 the entire grid.
// The cursor does not move.
func (v *VTerm) ClearScreenMode(mode int) {
	switch mode {
	case 0:
		v.ClearLine(0)
		for y := v.cursorY + 1; y < v.height; y++ {
			v.blankLine(y)
		}
	case 1:
		for y := 0; y < v.cursorY; y++ {
			v.blankLine(y)
		}
		v.ClearLine(1)
	case 2:
		for y := 0; y < v.height; y++ {
			v.blankLine(y)
		}
	}
}

func (v *VTerm) blankLine(y int) {
	row := v.grid[y]
	for x := range row {
		row[x] = Cell{Ch: ' ', Attr: v.attr}
	}
	v.markDirty(y)
}

// Reset restores the freshly constructed state: grid blanked, cursor at
// the origin, default attributes. Dimensions are kept.
func (v *VTerm) Reset() {
	v.attr = DefaultAttr()
	for y := 0; y < v.height; y++ {
		v.blankLine(y)
	}
	v.cursorX, v.cursorY = 0, 0
	v.markAllDirty()
}

// Resize rebuilds the grid at the new dimensions, copying the
// overlapping top-left region and blanking the rest with the current
// attribute. The cursor is clamped into the new bounds and every row
// becomes dirty.
func (v *VTerm) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	if width == v.width && height == v.height {
		v.markAllDirty()
		return
	}

	newGrid := make([][]Cell, height)
	for y := range newGrid {
		newGrid[y] = blankRow(width, v.attr)
	}

	rowsToCopy := min(v.height, height)
	colsToCopy := min(v.width, width)
	for y := 0; y < rowsToCopy; y++ {
		copy(newGrid[y][:colsToCopy], v.grid[y][:colsToCopy])
	}

	v.grid = newGrid
	v.width = width
	v.height = height

	if v.cursorY >= height {
		v.cursorY = height - 1
	}
	if v.cursorX > width {
		v.cursorX = width
	}
	v.markAllDirty()
}
