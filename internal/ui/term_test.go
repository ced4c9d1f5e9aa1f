package ui

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b int
		ok      bool
	}{
		{name: "white", hex: "#ffffff", r: 255, g: 255, b: 255, ok: true},
		{name: "black", hex: "#000000", r: 0, g: 0, b: 0, ok: true},
		{name: "mocha blue", hex: "#89b4fa", r: 0x89, g: 0xb4, b: 0xfa, ok: true},
		{name: "missing hash", hex: "89b4fa", ok: false},
		{name: "too short", hex: "#fff", ok: false},
		{name: "not hex", hex: "#gggggg", ok: false},
		{name: "empty", hex: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, ok := parseHex(tt.hex)
			if ok != tt.ok {
				t.Fatalf("parseHex(%q) ok = %v, want %v", tt.hex, ok, tt.ok)
			}
			if !ok {
				return
			}
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("parseHex(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.hex, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestPadTo(t *testing.T) {
	if got := padTo("abc", 6); got != "abc   " {
		t.Errorf("padTo = %q, want %q", got, "abc   ")
	}
	if got := padTo("abcdef", 4); got != "abcdef" {
		t.Errorf("padTo must not truncate, got %q", got)
	}
}

func TestSwatchInvalidColor(t *testing.T) {
	if got := swatch("nope"); got != "  " {
		t.Errorf("swatch with bad input = %q, want blank", got)
	}
}

func TestRunThemesListsAllPalettes(t *testing.T) {
	// Smoke test: every embedded palette must load and render.
	if err := runThemes("mocha"); err != nil {
		t.Fatalf("runThemes unexpected error: %v", err)
	}
}
