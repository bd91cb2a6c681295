package codec

import (
	"strings"
)

// Border is width, style and color of a border, each optional. A Border with
// nothing set means "no managed border", never CSS defaults.
type Border struct {
	Width *Size   `yaml:"width,omitempty"`
	Style *string `yaml:"style,omitempty"`
	Color *Color  `yaml:"color,omitempty"`
}

// IsZero reports whether no component is set.
func (b Border) IsZero() bool {
	return b.Width == nil && b.Style == nil && b.Color == nil
}

// Shorthand returns "<width> <style> <color>". Absent components are filled
// with CSS initial values (medium, none, currentcolor) here and only here.
func (b Border) Shorthand(f ColorFormat) string {
	width, style, color := "medium", "none", "currentcolor"
	if b.Width != nil && !b.Width.IsNone() {
		width = b.Width.String()
	}
	if b.Style != nil {
		style = *b.Style
	}
	if b.Color != nil {
		color = b.Color.Format(f)
	}
	return width + " " + style + " " + color
}

// ParseBorder decomposes border shorthand. Components may come in any order;
// "medium" and "currentcolor" are accepted but leave the component unset.
// Any token that is not a size, border style or color makes the whole value
// unrecognized.
func ParseBorder(s string, def Unit) (Border, bool) {
	var b Border
	tokens := splitValue(s)
	if len(tokens) == 0 || len(tokens) > 3 {
		return Border{}, false
	}

	var seenWidth, seenStyle, seenColor bool
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case lower == "medium" && !seenWidth:
			seenWidth = true
		case lower == "currentcolor" && !seenColor:
			seenColor = true
		case BorderStyles.Contains(lower) && !seenStyle:
			style := lower
			b.Style, seenStyle = &style, true
		default:
			if size, ok := ParseSize(lower, def); ok && !seenWidth {
				b.Width, seenWidth = &size, true
				continue
			}
			if c, ok := ParseColor(lower); ok && !seenColor {
				b.Color, seenColor = &c, true
				continue
			}
			return Border{}, false
		}
	}
	return b, true
}

// IsBorder reports whether s is a border shorthand ParseBorder understands.
func IsBorder(s string) bool {
	_, ok := ParseBorder(s, UnitPx)
	return ok
}

// splitValue splits value on whitespace outside of parentheses, so
// "1px solid rgba(0, 0, 0, 1)" yields three tokens.
func splitValue(s string) []string {
	var (
		tokens []string
		depth  int
		start  = -1
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case (r == ' ' || r == '\t' || r == '\n' || r == '\r') && depth == 0:
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}
