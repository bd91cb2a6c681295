package codec

import (
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#f0f0f0", RGB(0xF0, 0xF0, 0xF0), true},
		{"#F0F0F0", RGB(0xF0, 0xF0, 0xF0), true},
		{"#abc", RGB(0xAA, 0xBB, 0xCC), true},
		{"#ff000080", RGBA(0xFF, 0, 0, 0.502), true},
		{"#f008", RGBA(0xFF, 0, 0, 0.533), true},
		{"rgb(1, 2, 3)", RGB(1, 2, 3), true},
		{"rgba(0, 255, 0, 0.5)", RGBA(0, 255, 0, 0.5), true},
		{"RGBA(0,255,0,.5)", RGBA(0, 255, 0, 0.5), true},
		{"rgb(0 255 0 / 50%)", RGBA(0, 255, 0, 0.5), true},
		{"rgb(100%, 0%, 0%)", RGB(255, 0, 0), true},
		{"rgb(300, -5, 0)", RGB(255, 0, 0), true},
		{"red", RGB(255, 0, 0), true},
		{" CornflowerBlue ", RGB(100, 149, 237), true},
		{"transparent", Color{}, true},
		{"hsl(0, 100%, 50%)", Color{}, false},
		{"currentcolor", Color{}, false},
		{"#ggg", Color{}, false},
		{"#12345", Color{}, false},
		{"rgb(1, 2)", Color{}, false},
		{"rgb(1, 2, 3", Color{}, false},
		{"", Color{}, false},
		{"notacolor", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_Format(t *testing.T) {
	tests := []struct {
		c          Color
		hex, funct string
	}{
		{RGB(0xF0, 0xF0, 0xF0), "#F0F0F0", "rgba(240, 240, 240, 1)"},
		{RGB(0, 0, 0), "#000000", "rgba(0, 0, 0, 1)"},
		{RGBA(0, 255, 0, 0.5), "#00FF0080", "rgba(0, 255, 0, 0.5)"},
		{RGBA(1, 2, 3, 7), "#010203", "rgba(1, 2, 3, 1)"},
	}

	for _, tt := range tests {
		if got := tt.c.Format(FormatHex); got != tt.hex {
			t.Errorf("%+v hex = %q, want %q", tt.c, got, tt.hex)
		}
		if got := tt.c.Format(FormatFunctional); got != tt.funct {
			t.Errorf("%+v functional = %q, want %q", tt.c, got, tt.funct)
		}
	}
}

func TestColor_RoundTrip(t *testing.T) {
	for _, in := range []string{"#F0F0F0", "rgba(0, 255, 0, 0.5)", "rgba(12, 34, 56, 1)", "#FF0000"} {
		c, ok := ParseColor(in)
		if !ok {
			t.Fatalf("ParseColor(%q) failed", in)
		}
		for _, f := range []ColorFormat{FormatHex, FormatFunctional} {
			back, ok := ParseColor(c.Format(f))
			if !ok {
				t.Fatalf("ParseColor(%q) failed", c.Format(f))
			}
			if back.R != c.R || back.G != c.G || back.B != c.B {
				t.Errorf("%q via format %d changed channels: %+v -> %+v", in, f, c, back)
			}
		}
		if back, _ := ParseColor(c.Functional()); back != c {
			t.Errorf("functional round trip of %q: %+v -> %+v", in, c, back)
		}
	}
}
