// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/testharness.go
// Summary: Test harness for decoder and grid testing.
// Usage: Used by test files to send byte streams and verify grid state.

package parser

import (
	"fmt"
	"strings"
	"testing"
)

// TestHarness bundles a VTerm with its decoder for tests.
type TestHarness struct {
	vterm  *VTerm
	parser *Parser
}

// NewTestHarness creates a harness with the given terminal size.
func NewTestHarness(width, height int) *TestHarness {
	vterm := NewVTerm(width, height)
	return &TestHarness{
		vterm:  vterm,
		parser: NewParser(vterm),
	}
}

// Send feeds a byte stream to the decoder and returns the dirty rows.
// Example: h.Send("\x1b[5A") sends "cursor up 5".
func (h *TestHarness) Send(data string) []int {
	return h.parser.ProcessInput([]byte(data))
}

// GetCell returns the cell at (x, y), or a zero Cell out of bounds.
func (h *TestHarness) GetCell(x, y int) Cell {
	if y < 0 || y >= h.vterm.height || x < 0 || x >= h.vterm.width {
		return Cell{}
	}
	return h.vterm.grid[y][x]
}

// GetCursor returns the cursor position (0-based).
func (h *TestHarness) GetCursor() (x, y int) {
	return h.vterm.Cursor()
}

// GetCurrentAttr returns the current drawing attribute.
func (h *TestHarness) GetCurrentAttr() CharAttr {
	return h.vterm.attr
}

// AssertCursor verifies the cursor is at the expected position.
func (h *TestHarness) AssertCursor(t *testing.T, expectedX, expectedY int) {
	t.Helper()
	actualX, actualY := h.GetCursor()
	if actualX != expectedX || actualY != expectedY {
		t.Errorf("Cursor position: expected (%d,%d), got (%d,%d)",
			expectedX, expectedY, actualX, actualY)
	}
}

// AssertRune verifies that a cell contains the expected rune.
func (h *TestHarness) AssertRune(t *testing.T, x, y int, expected rune) {
	t.Helper()
	actual := h.GetCell(x, y)
	if actual.Ch != expected {
		t.Errorf("Cell[%d,%d] rune: expected %q, got %q", x, y, expected, actual.Ch)
	}
}

// AssertText verifies a run of cells matches the expected text.
func (h *TestHarness) AssertText(t *testing.T, x, y int, expected string) {
	t.Helper()
	for i, r := range []rune(expected) {
		h.AssertRune(t, x+i, y, r)
	}
}

// AssertBlank verifies that a cell holds a space.
func (h *TestHarness) AssertBlank(t *testing.T, x, y int) {
	t.Helper()
	actual := h.GetCell(x, y)
	if actual.Ch != ' ' {
		t.Errorf("Cell[%d,%d] should be blank, got %q", x, y, actual.Ch)
	}
}

// AssertLineBlank verifies an entire row is blank.
func (h *TestHarness) AssertLineBlank(t *testing.T, y int) {
	t.Helper()
	for x := 0; x < h.vterm.width; x++ {
		h.AssertBlank(t, x, y)
	}
}

// AssertDirty verifies a dirty-row report matches exactly.
func AssertDirty(t *testing.T, got []int, want ...int) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("dirty rows: expected %v, got %v", want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dirty rows: expected %v, got %v", want, got)
			return
		}
	}
}

// FillWithPattern fills every cell with a known rune by placing runes
// directly on the grid, then homes the cursor and clears the dirty set.
func (h *TestHarness) FillWithPattern(pattern string) {
	width, height := h.vterm.width, h.vterm.height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h.vterm.placeChar(rune(pattern[(y*width+x)%len(pattern)]))
		}
	}
	h.Send("\x1b[H")
	h.vterm.TakeDirtyRows()
}

// Dump returns a visual representation of the grid for debugging.
func (h *TestHarness) Dump() string {
	width, height := h.vterm.width, h.vterm.height
	cursorX, cursorY := h.GetCursor()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Terminal %dx%d (cursor at %d,%d)\n", width, height, cursorX, cursorY))
	sb.WriteString(strings.Repeat("=", width) + "\n")
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == cursorX && y == cursorY {
				sb.WriteString("[")
			} else {
				sb.WriteRune(h.GetCell(x, y).Ch)
			}
		}
		sb.WriteString(fmt.Sprintf(" |%d\n", y))
	}
	sb.WriteString(strings.Repeat("=", width) + "\n")
	return sb.String()
}
