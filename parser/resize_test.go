// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/resize_test.go
// Summary: Tests for grid resizing: content anchoring, cursor clamping,
// decoder-state preservation.
// Usage: Run with `go test`.

package parser

import (
	"strings"
	"testing"
)

func TestResizePreservesTopLeftContent(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.Send("hello\r\nworld")

	h.vterm.Resize(40, 10)
	h.AssertText(t, 0, 0, "hello")
	h.AssertText(t, 0, 1, "world")

	h.vterm.Resize(3, 1)
	h.AssertText(t, 0, 0, "hel")
}

func TestResizeBlanksNewArea(t *testing.T) {
	h := NewTestHarness(10, 5)
	h.FillWithPattern("x")
	h.vterm.Resize(20, 8)
	for y := 0; y < 5; y++ {
		h.AssertText(t, 0, y, strings.Repeat("x", 10))
		for x := 10; x < 20; x++ {
			h.AssertBlank(t, x, y)
		}
	}
	for y := 5; y < 8; y++ {
		h.AssertLineBlank(t, y)
	}
}

func TestResizeClampsCursor(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.Send("\x1b[24;80H*")
	h.AssertCursor(t, 80, 23)

	h.vterm.Resize(40, 10)
	x, y := h.GetCursor()
	if y != 9 {
		t.Errorf("cursor row: expected 9, got %d", y)
	}
	if x < 0 || x > 40 {
		t.Errorf("cursor col out of bounds after resize: %d", x)
	}
}

func TestResizeMarksAllRowsDirty(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.vterm.TakeDirtyRows()
	h.vterm.Resize(40, 10)
	AssertDirty(t, h.vterm.TakeDirtyRows(), seq(0, 10)...)
}

func TestResizeMidEscapeSequence(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.Send("\x1b[3")
	h.vterm.Resize(100, 30)
	h.Send("1mX")
	cell := h.GetCell(0, 0)
	if cell.Ch != 'X' || cell.Attr.FG != ansiPalette[1] {
		t.Errorf("expected red X after mid-sequence resize, got %+v", cell)
	}
}

func TestResizeMidUTF8Sequence(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.Send("\xD0")
	h.vterm.Resize(100, 30)
	h.Send("\xAF")
	h.AssertRune(t, 0, 0, 0x042F)
}

func TestResizeToSameSizeKeepsContent(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.Send("stay")
	h.vterm.Resize(80, 24)
	h.AssertText(t, 0, 0, "stay")
	h.AssertCursor(t, 4, 0)
}
