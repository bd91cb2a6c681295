package codec

import (
	"strconv"
	"strings"
)

// ParseFontWeight maps font-weight to bold flag. Numeric weights of 600 and
// above are bold, relative weights (bolder, lighter) are not recognized.
func ParseFontWeight(s string) (bold, ok bool) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "bold":
		return true, true
	case "normal":
		return false, true
	default:
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			return false, false
		}
		return n >= 600, true
	}
}

// FormatFontWeight is inverse of ParseFontWeight.
func FormatFontWeight(bold bool) string {
	if bold {
		return "bold"
	}
	return "normal"
}

// IsFontWeight reports whether s is a font-weight ParseFontWeight understands.
func IsFontWeight(s string) bool {
	_, ok := ParseFontWeight(s)
	return ok
}

// ParseFontStyle maps font-style to italic flag, oblique counts as italic.
func ParseFontStyle(s string) (italic, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "italic", "oblique":
		return true, true
	case "normal":
		return false, true
	}
	return false, false
}

// FormatFontStyle is inverse of ParseFontStyle.
func FormatFontStyle(italic bool) string {
	if italic {
		return "italic"
	}
	return "normal"
}

// IsFontStyle reports whether s is a font-style ParseFontStyle understands.
func IsFontStyle(s string) bool {
	_, ok := ParseFontStyle(s)
	return ok
}

// TextDecoration holds the two text-decoration lines the engine manages.
type TextDecoration struct {
	Underline   bool
	LineThrough bool
}

// Active reports whether any line is drawn.
func (d TextDecoration) Active() bool {
	return d.Underline || d.LineThrough
}

// String returns "underline", "line-through", both space joined or "none".
func (d TextDecoration) String() string {
	var parts []string
	if d.Underline {
		parts = append(parts, "underline")
	}
	if d.LineThrough {
		parts = append(parts, "line-through")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// ParseTextDecoration recognizes combinations of underline and line-through
// or "none". Anything else (overline, styles, colors) is not recognized.
func ParseTextDecoration(s string) (TextDecoration, bool) {
	var d TextDecoration
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return d, false
	}
	for _, f := range fields {
		switch f {
		case "underline":
			d.Underline = true
		case "line-through":
			d.LineThrough = true
		case "none":
			if len(fields) != 1 {
				return TextDecoration{}, false
			}
		default:
			return TextDecoration{}, false
		}
	}
	return d, true
}

// IsTextDecoration reports whether s is a text-decoration
// ParseTextDecoration understands.
func IsTextDecoration(s string) bool {
	_, ok := ParseTextDecoration(s)
	return ok
}
