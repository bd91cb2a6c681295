package codec

import (
	"testing"
)

func TestParseFontWeight(t *testing.T) {
	tests := []struct {
		in       string
		bold, ok bool
	}{
		{"bold", true, true},
		{"BOLD", true, true},
		{"normal", false, true},
		{"700", true, true},
		{"600", true, true},
		{"400", false, true},
		{"bolder", false, false},
		{"0", false, false},
		{"heavy", false, false},
	}
	for _, tt := range tests {
		bold, ok := ParseFontWeight(tt.in)
		if bold != tt.bold || ok != tt.ok {
			t.Errorf("ParseFontWeight(%q) = %v, %v; want %v, %v", tt.in, bold, ok, tt.bold, tt.ok)
		}
	}
	if FormatFontWeight(true) != "bold" || FormatFontWeight(false) != "normal" {
		t.Error("unexpected FormatFontWeight output")
	}
}

func TestParseFontStyle(t *testing.T) {
	for in, want := range map[string]bool{"italic": true, "oblique": true, "normal": false} {
		got, ok := ParseFontStyle(in)
		if !ok || got != want {
			t.Errorf("ParseFontStyle(%q) = %v, %v", in, got, ok)
		}
	}
	if IsFontStyle("oblique 10deg") {
		t.Error("angled oblique is not recognized")
	}
}

func TestTextDecoration(t *testing.T) {
	tests := []struct {
		in   string
		want TextDecoration
		out  string
		ok   bool
	}{
		{"underline", TextDecoration{Underline: true}, "underline", true},
		{"line-through", TextDecoration{LineThrough: true}, "line-through", true},
		{"line-through underline", TextDecoration{Underline: true, LineThrough: true}, "underline line-through", true},
		{"none", TextDecoration{}, "none", true},
		{"underline none", TextDecoration{}, "", false},
		{"underline dotted", TextDecoration{}, "", false},
		{"overline", TextDecoration{}, "", false},
		{"", TextDecoration{}, "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTextDecoration(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseTextDecoration(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if !ok {
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTextDecoration(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.out {
			t.Errorf("%+v.String() = %q, want %q", got, got.String(), tt.out)
		}
	}
}
