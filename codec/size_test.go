package codec

import (
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		def  Unit
		want Size
		ok   bool
	}{
		{"12px", UnitPx, Px(12), true},
		{"1.5em", UnitPx, Em(1.5), true},
		{"2REM", UnitPx, Rem(2), true},
		{"80%", UnitPx, Percent(80), true},
		{"-0.5em", UnitPx, Em(-0.5), true},
		{".75em", UnitPx, Em(0.75), true},
		{"16", UnitPx, Px(16), true},
		{"2", UnitEm, Em(2), true},
		{" 0 ", UnitPx, Px(0), true},
		{"12pt", UnitPx, Size{}, false},
		{"auto", UnitPx, Size{}, false},
		{"medium", UnitPx, Size{}, false},
		{"1px 2px", UnitPx, Size{}, false},
		{"", UnitPx, Size{}, false},
		{"calc(1px + 2px)", UnitPx, Size{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSize(tt.in, tt.def)
			if ok != tt.ok {
				t.Fatalf("ParseSize(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseSize(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSize_String(t *testing.T) {
	tests := []struct {
		s    Size
		want string
	}{
		{Px(12), "12px"},
		{Em(1.5), "1.5em"},
		{Percent(80), "80%"},
		{Rem(0.3333333), "0.333rem"},
		{Px(-0.0001), "0px"},
		{Size{Value: 5}, ""},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
	if !(Size{Value: 5}).IsNone() {
		t.Error("size without unit must be none")
	}
}

func TestParseNumber(t *testing.T) {
	if f, ok := ParseNumber("1.5"); !ok || f != 1.5 {
		t.Errorf("ParseNumber(1.5) = %v, %v", f, ok)
	}
	for _, in := range []string{"1.5em", "normal", "", "NaN", "Inf"} {
		if IsNumber(in) {
			t.Errorf("IsNumber(%q) must be false", in)
		}
	}
	if got := FormatNumber(1.25); got != "1.25" {
		t.Errorf("FormatNumber(1.25) = %q", got)
	}
}
