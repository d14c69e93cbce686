// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: parser/keys.go
// Summary: Logical key events and their encoding to PTY byte sequences.
// Usage: The keyboard layer builds KeyEvents; Encode output is written
// verbatim to the PTY master.
// Notes: Pure; never touches the grid.

package parser

// KeyCode identifies a logical key.
type KeyCode int

const (
	KeyCharacter KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyEvent is a logical keystroke. For KeyCharacter the code point has
// already been resolved by the keyboard layer; shifted glyphs arrive
// pre-translated, so Shift is informational only.
type KeyEvent struct {
	Code  KeyCode
	Ch    rune
	Shift bool
	Ctrl  bool
}

// navigationKeys holds the xterm encodings for non-character keys.
var navigationKeys = map[KeyCode]string{
	KeyUp:       "\x1b[A",
	KeyDown:     "\x1b[B",
	KeyRight:    "\x1b[C",
	KeyLeft:     "\x1b[D",
	KeyHome:     "\x1b[H",
	KeyEnd:      "\x1b[F",
	KeyInsert:   "\x1b[2~",
	KeyDelete:   "\x1b[3~",
	KeyPageUp:   "\x1b[5~",
	KeyPageDown: "\x1b[6~",
	KeyF1:       "\x1bOP",
	KeyF2:       "\x1bOQ",
	KeyF3:       "\x1bOR",
	KeyF4:       "\x1bOS",
	KeyF5:       "\x1b[15~",
	KeyF6:       "\x1b[17~",
	KeyF7:       "\x1b[18~",
	KeyF8:       "\x1b[19~",
	KeyF9:       "\x1b[20~",
	KeyF10:      "\x1b[21~",
	KeyF11:      "\x1b[23~",
	KeyF12:      "\x1b[24~",
}

// Encode translates the key event into the byte sequence an interactive
// shell expects. Unknown keys encode to nil; the caller writes nothing.
func (k KeyEvent) Encode() []byte {
	switch k.Code {
	case KeyCharacter:
		if k.Ctrl {
			if b, ok := ctrlByte(k.Ch); ok {
				return []byte{b}
			}
		}
		return []byte(string(k.Ch))
	case KeyEnter:
		return []byte{'\r'}
	case KeyBackspace:
		return []byte{0x7F}
	case KeyTab:
		return []byte{'\t'}
	case KeyEscape:
		return []byte{0x1B}
	default:
		if seq, ok := navigationKeys[k.Code]; ok {
			return []byte(seq)
		}
	}
	return nil
}

// ctrlByte maps a code point in '@'..'_' or 'a'..'z' to its control
// byte: Ctrl+@ = 0x00, Ctrl+A = 0x01, ..., Ctrl+Z = 0x1A.
func ctrlByte(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r - 'a' + 1), true
	case r >= '@' && r <= '_':
		return byte(r - '@'), true
	}
	return 0, false
}
