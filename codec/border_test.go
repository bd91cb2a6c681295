package codec

import (
	"testing"
)

func TestParseBorder(t *testing.T) {
	tests := []struct {
		in                 string
		width, style, colr string
		ok                 bool
	}{
		{"1px solid #CCCCCC", "1px", "solid", "#CCCCCC", true},
		{"solid 2px red", "2px", "solid", "#FF0000", true},
		{"3px dashed rgba(0, 0, 0, 0.5)", "3px", "dashed", "rgba(0, 0, 0, 0.5)", true},
		{"medium none currentcolor", "", "none", "", true},
		{"4px", "4px", "", "", true},
		{"dotted", "", "dotted", "", true},
		{"1", "1px", "", "", true},
		{"1px 2px", "", "", "", false},
		{"1px solid red blue", "", "", "", false},
		{"thin solid red", "", "", "", false},
		{"", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, ok := ParseBorder(tt.in, UnitPx)
			if ok != tt.ok {
				t.Fatalf("ParseBorder(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			var width, style, colr string
			if b.Width != nil {
				width = b.Width.String()
			}
			if b.Style != nil {
				style = *b.Style
			}
			if b.Color != nil {
				colr = b.Color.String()
			}
			if width != tt.width || style != tt.style || colr != tt.colr {
				t.Errorf("ParseBorder(%q) = %q %q %q, want %q %q %q", tt.in, width, style, colr, tt.width, tt.style, tt.colr)
			}
		})
	}
}

func TestBorder_Shorthand(t *testing.T) {
	w, s, c := Px(1), "solid", RGB(0xCC, 0xCC, 0xCC)

	tests := []struct {
		b    Border
		f    ColorFormat
		want string
	}{
		{Border{Width: &w, Style: &s, Color: &c}, FormatHex, "1px solid #CCCCCC"},
		{Border{Width: &w, Style: &s, Color: &c}, FormatFunctional, "1px solid rgba(204, 204, 204, 1)"},
		{Border{Width: &w}, FormatHex, "1px none currentcolor"},
		{Border{Color: &c}, FormatHex, "medium none #CCCCCC"},
	}
	for _, tt := range tests {
		if got := tt.b.Shorthand(tt.f); got != tt.want {
			t.Errorf("Shorthand() = %q, want %q", got, tt.want)
		}
	}
	if !(Border{}).IsZero() {
		t.Error("empty border must be zero")
	}
	if (Border{Style: &s}).IsZero() {
		t.Error("border with style must not be zero")
	}
}
