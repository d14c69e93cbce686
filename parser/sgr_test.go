package parser

import (
	"testing"
)

// TestSGRColors exercises the palette and default codes.
func TestSGRColors(t *testing.T) {
	tests := []struct {
		name   string
		seq    string
		verify func(*testing.T, *TestHarness)
	}{
		{
			name: "30-37 select foreground palette",
			seq:  "\x1b[31mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.FG; got != (RgbColor{255, 0, 0}) {
					t.Errorf("FG: expected red, got %+v", got)
				}
			},
		},
		{
			name: "40-47 select background palette",
			seq:  "\x1b[44mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.BG; got != (RgbColor{0, 0, 255}) {
					t.Errorf("BG: expected blue, got %+v", got)
				}
			},
		},
		{
			name: "39 restores default foreground",
			seq:  "\x1b[32m\x1b[39mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.FG; got != DefaultFG {
					t.Errorf("FG: expected default, got %+v", got)
				}
			},
		},
		{
			name: "49 restores default background",
			seq:  "\x1b[41m\x1b[49mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.BG; got != DefaultBG {
					t.Errorf("BG: expected default, got %+v", got)
				}
			},
		},
		{
			name: "0 resets everything",
			seq:  "\x1b[1;31;44m\x1b[0mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr; got != DefaultAttr() {
					t.Errorf("attr: expected default, got %+v", got)
				}
			},
		},
		{
			name: "missing parameter list means reset",
			seq:  "\x1b[31m\x1b[mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.FG; got != DefaultFG {
					t.Errorf("FG: expected default, got %+v", got)
				}
			},
		},
		{
			name: "combined list processes left to right",
			seq:  "\x1b[31;44mX",
			verify: func(t *testing.T, h *TestHarness) {
				attr := h.GetCell(0, 0).Attr
				if attr.FG != (RgbColor{255, 0, 0}) || attr.BG != (RgbColor{0, 0, 255}) {
					t.Errorf("expected red on blue, got %+v", attr)
				}
			},
		},
		{
			name: "unknown codes are ignored",
			seq:  "\x1b[31m\x1b[53;73mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.FG; got != (RgbColor{255, 0, 0}) {
					t.Errorf("FG: expected red to survive, got %+v", got)
				}
			},
		},
		{
			name: "bright foreground maps to full intensity",
			seq:  "\x1b[91mX",
			verify: func(t *testing.T, h *TestHarness) {
				if got := h.GetCell(0, 0).Attr.FG; got != (RgbColor{255, 0, 0}) {
					t.Errorf("FG: expected red, got %+v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(80, 24)
			h.Send(tt.seq)
			tt.verify(t, h)
		})
	}
}

// TestSGRAttributes exercises the carried attribute slots.
func TestSGRAttributes(t *testing.T) {
	h := NewTestHarness(80, 24)
	h.Send("\x1b[1;4;5;7mX")
	attr := h.GetCell(0, 0).Attr.Attr
	for _, want := range []Attribute{AttrBold, AttrUnderline, AttrBlink, AttrReverse} {
		if attr&want == 0 {
			t.Errorf("expected %v set, got %v", want, attr)
		}
	}

	h.Send("\x1b[22;24;25;27mY")
	if got := h.GetCell(1, 0).Attr.Attr; got != 0 {
		t.Errorf("expected all attributes cleared, got %v", got)
	}
}

// TestSGRExtendedColors exercises 38/48 palette and RGB forms.
func TestSGRExtendedColors(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		fg   *RgbColor
		bg   *RgbColor
	}{
		{"256-color foreground", "\x1b[38;5;196mX", &RgbColor{255, 0, 0}, nil},
		{"256-color background", "\x1b[48;5;21mX", nil, &RgbColor{0, 0, 255}},
		{"grayscale ramp", "\x1b[38;5;232mX", &RgbColor{8, 8, 8}, nil},
		{"truecolor foreground", "\x1b[38;2;10;20;30mX", &RgbColor{10, 20, 30}, nil},
		{"truecolor background", "\x1b[48;2;200;100;50mX", nil, &RgbColor{200, 100, 50}},
		{"malformed tail is ignored", "\x1b[38;9mX", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(80, 24)
			h.Send(tt.seq)
			attr := h.GetCell(0, 0).Attr
			if tt.fg != nil && attr.FG != *tt.fg {
				t.Errorf("FG: expected %+v, got %+v", *tt.fg, attr.FG)
			}
			if tt.fg == nil && attr.FG != DefaultFG {
				t.Errorf("FG: expected default, got %+v", attr.FG)
			}
			if tt.bg != nil && attr.BG != *tt.bg {
				t.Errorf("BG: expected %+v, got %+v", *tt.bg, attr.BG)
			}
			if tt.bg == nil && attr.BG != DefaultBG {
				t.Errorf("BG: expected default, got %+v", attr.BG)
			}
		})
	}
}

func TestColor256Cube(t *testing.T) {
	// 196 = 16 + 5*36 + 0*6 + 0 -> (255, 0, 0)
	if got := color256(196); got != (RgbColor{255, 0, 0}) {
		t.Errorf("color256(196): expected pure red, got %+v", got)
	}
	// 21 = 16 + 0*36 + 0*6 + 5 -> (0, 0, 255)
	if got := color256(21); got != (RgbColor{0, 0, 255}) {
		t.Errorf("color256(21): expected pure blue, got %+v", got)
	}
	// Last grayscale entry.
	if got := color256(255); got != (RgbColor{238, 238, 238}) {
		t.Errorf("color256(255): expected (238,238,238), got %+v", got)
	}
	// Basic range reuses the ANSI palette.
	if got := color256(1); got != ansiPalette[1] {
		t.Errorf("color256(1): expected palette red, got %+v", got)
	}
}
