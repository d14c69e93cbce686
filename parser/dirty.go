// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/dirty.go
// Summary: Dirty row tracking for incremental rendering.
// Usage: Rows accumulate as grid mutations touch them; the session
// drains them with TakeDirtyRows after each input chunk.

package parser

import "sort"

// markDirty records that a row's cells changed.
func (v *VTerm) markDirty(row int) {
	if row >= 0 && row < v.height {
		v.dirtyLines[row] = true
	}
}

// markAllDirty records that every row changed (scroll, reset, resize).
func (v *VTerm) markAllDirty() { v.allDirty = true }

// TakeDirtyRows returns the sorted set of rows touched since the last
// call and resets the tracking. Rows that were never touched are never
// reported.
func (v *VTerm) TakeDirtyRows() []int {
	if v.allDirty {
		v.allDirty = false
		v.dirtyLines = make(map[int]bool)
		rows := make([]int, v.height)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	if len(v.dirtyLines) == 0 {
		return nil
	}
	rows := make([]int, 0, len(v.dirtyLines))
	for row := range v.dirtyLines {
		if row < v.height {
			rows = append(rows, row)
		}
	}
	v.dirtyLines = make(map[int]bool)
	sort.Ints(rows)
	return rows
}
