// Package codec converts CSS value text to typed values and back. Every
// Parse function reports ok=false for input outside its grammar so that
// values the engine does not understand are never misinterpreted.
package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorFormat selects textual encoding of a color.
type ColorFormat int

const (
	// FormatHex produces "#RRGGBB" (or "#RRGGBBAA" when translucent).
	FormatHex ColorFormat = iota
	// FormatFunctional produces "rgba(r, g, b, a)".
	FormatFunctional
)

// Color is an RGB triple with alpha in [0, 1]. Opaque colors have A == 1.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns color with alpha clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clampAlpha(a)}
}

// Opaque reports whether alpha is 1.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Hex returns uppercase "#RRGGBB", adding alpha byte for translucent colors.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, uint8(math.Round(c.A*255)))
}

// Functional returns "rgba(r, g, b, a)". Alpha-less rgb() is never produced.
func (c Color) Functional() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatNumber(c.A))
}

// Format encodes color as requested.
func (c Color) Format(f ColorFormat) string {
	if f == FormatFunctional {
		return c.Functional()
	}
	return c.Hex()
}

// String returns hex form for opaque colors and functional form otherwise.
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return c.Functional()
}

// IsColor reports whether s is a color ParseColor understands.
func IsColor(s string) bool {
	_, ok := ParseColor(s)
	return ok
}

// ParseColor parses a CSS color value.
// Supports: #RGB, #RGBA, #RRGGBB, #RRGGBBAA, rgb(), rgba() in comma and space
// separated syntax, "transparent" and CSS named colors.
func ParseColor(s string) (Color, bool) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return Color{}, false
	}

	if hex, ok := strings.CutPrefix(raw, "#"); ok {
		return parseHexColor(hex)
	}
	if strings.HasPrefix(raw, "rgb(") || strings.HasPrefix(raw, "rgba(") {
		return parseFunctionalColor(raw)
	}
	if raw == "transparent" {
		return Color{}, true
	}
	if c, ok := colornames.Map[raw]; ok {
		return RGB(c.R, c.G, c.B), true
	}
	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3, 4:
		// #RGB[A] -> #RRGGBB[AA]
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	case 6, 8:
	default:
		return Color{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(hex) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
	}
	a := math.Round(float64(uint8(v))/255*1000) / 1000
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), a), true
}

func parseFunctionalColor(raw string) (Color, bool) {
	open := strings.IndexByte(raw, '(')
	inner, ok := strings.CutSuffix(raw[open+1:], ")")
	if !ok {
		return Color{}, false
	}

	var args []string
	if strings.Contains(inner, ",") {
		for a := range strings.SplitSeq(inner, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	} else {
		channels, alpha, slash := strings.Cut(inner, "/")
		args = strings.Fields(channels)
		if slash {
			args = append(args, strings.TrimSpace(alpha))
		}
	}
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}

	var rgb [3]uint8
	for i := range 3 {
		v, ok := parseChannel(args[i])
		if !ok {
			return Color{}, false
		}
		rgb[i] = v
	}
	a := 1.0
	if len(args) == 4 {
		if a, ok = parseAlpha(args[3]); !ok {
			return Color{}, false
		}
	}
	return RGBA(rgb[0], rgb[1], rgb[2], a), true
}

func parseChannel(s string) (uint8, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return uint8(math.Round(math.Max(0, math.Min(100, f)) * 255 / 100)), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return uint8(math.Round(math.Max(0, math.Min(255, f)))), true
}

func parseAlpha(s string) (float64, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return clampAlpha(f / 100), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clampAlpha(f), true
}

func clampAlpha(a float64) float64 {
	return math.Max(0, math.Min(1, a))
}
