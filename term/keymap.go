// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: term/keymap.go
// Summary: Translates tcell key events into logical key events.
// Usage: Feeds the key encoder; the encoder produces the PTY bytes.

package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sergev/goterm/parser"
)

var specialKeys = map[tcell.Key]parser.KeyCode{
	tcell.KeyUp:     parser.KeyUp,
	tcell.KeyDown:   parser.KeyDown,
	tcell.KeyRight:  parser.KeyRight,
	tcell.KeyLeft:   parser.KeyLeft,
	tcell.KeyHome:   parser.KeyHome,
	tcell.KeyEnd:    parser.KeyEnd,
	tcell.KeyInsert: parser.KeyInsert,
	tcell.KeyDelete: parser.KeyDelete,
	tcell.KeyPgUp:   parser.KeyPageUp,
	tcell.KeyPgDn:   parser.KeyPageDown,
	tcell.KeyF1:     parser.KeyF1,
	tcell.KeyF2:     parser.KeyF2,
	tcell.KeyF3:     parser.KeyF3,
	tcell.KeyF4:     parser.KeyF4,
	tcell.KeyF5:     parser.KeyF5,
	tcell.KeyF6:     parser.KeyF6,
	tcell.KeyF7:     parser.KeyF7,
	tcell.KeyF8:     parser.KeyF8,
	tcell.KeyF9:     parser.KeyF9,
	tcell.KeyF10:    parser.KeyF10,
	tcell.KeyF11:    parser.KeyF11,
	tcell.KeyF12:    parser.KeyF12,
}

// translateKey maps a tcell event to a logical key event. Shifted
// glyphs arrive from tcell already translated, so the encoder never
// sees raw shift combinations.
func translateKey(ev *tcell.EventKey) (parser.KeyEvent, bool) {
	key := ev.Key()

	if code, ok := specialKeys[key]; ok {
		return parser.KeyEvent{Code: code}, true
	}

	switch key {
	case tcell.KeyEnter:
		return parser.KeyEvent{Code: parser.KeyEnter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return parser.KeyEvent{Code: parser.KeyBackspace}, true
	case tcell.KeyTab:
		return parser.KeyEvent{Code: parser.KeyTab}, true
	case tcell.KeyEsc:
		return parser.KeyEvent{Code: parser.KeyEscape}, true
	case tcell.KeyRune:
		return parser.KeyEvent{
			Code:  parser.KeyCharacter,
			Ch:    ev.Rune(),
			Shift: ev.Modifiers()&tcell.ModShift != 0,
			Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		}, true
	}

	// tcell reports Ctrl+letter combinations as dedicated key codes
	// equal to the control byte (KeyCtrlA == 0x01). Route them through
	// the encoder as control characters.
	if key < ' ' {
		return parser.KeyEvent{
			Code: parser.KeyCharacter,
			Ch:   rune(key) + '@',
			Ctrl: true,
		}, true
	}

	return parser.KeyEvent{}, false
}
