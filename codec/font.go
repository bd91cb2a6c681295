package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var genericFamilies = KeywordSet{
	"serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui",
	"ui-serif", "ui-sans-serif", "ui-monospace", "ui-rounded", "emoji", "math", "fangsong",
	"inherit", "initial", "unset",
}

// ParseFontFamily strips quotes from every family of a comma separated list:
// `"Times New Roman", serif` becomes `Times New Roman, serif`.
func ParseFontFamily(s string) (string, bool) {
	var families []string
	for f := range strings.SplitSeq(s, ",") {
		if f = Unquote(f); f != "" {
			families = append(families, f)
		}
	}
	if len(families) == 0 {
		return "", false
	}
	return strings.Join(families, ", "), true
}

// FormatFontFamily quotes every multi-word family of the list, generic
// families and single words stay bare.
func FormatFontFamily(s string) string {
	var families []string
	for f := range strings.SplitSeq(s, ",") {
		f = Unquote(f)
		switch {
		case f == "":
			continue
		case strings.ContainsAny(f, " \t") && !genericFamilies.Contains(strings.ToLower(f)):
			families = append(families, Quote(f))
		default:
			families = append(families, f)
		}
	}
	return strings.Join(families, ", ")
}

// IsFontFamily reports whether s holds at least one family name.
func IsFontFamily(s string) bool {
	_, ok := ParseFontFamily(s)
	return ok
}

// Quote produces CSS double quoted string.
func Quote(s string) string {
	return `"` + escapeDoubleQuoted(s) + `"`
}

// Unquote removes surrounding quotes from a string and resolves CSS escapes:
// up to six hex digits followed by one optional whitespace are a code point,
// escaped newline is a line continuation, any other escaped character stands
// for itself.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		s = unescape(s[1 : len(s)-1])
	}
	return s
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			r, n := utf8.DecodeRuneInString(s[i:])
			sb.WriteRune(r)
			i += n
			continue
		}
		i++
		if i == len(s) {
			break
		}
		switch {
		case strings.HasPrefix(s[i:], "\r\n"):
			i += 2
		case s[i] == '\n' || s[i] == '\r' || s[i] == '\f':
			i++
		case isHexDigit(s[i]):
			j := i
			for j < len(s) && j-i < 6 && isHexDigit(s[j]) {
				j++
			}
			cp, _ := strconv.ParseUint(s[i:j], 16, 32)
			r := rune(cp)
			if cp == 0 || cp > unicode.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
				r = utf8.RuneError
			}
			sb.WriteRune(r)
			i = j
			switch {
			case strings.HasPrefix(s[i:], "\r\n"):
				i += 2
			case i < len(s) && strings.IndexByte(" \t\n\r\f", s[i]) >= 0:
				i++
			}
		default:
			r, n := utf8.DecodeRuneInString(s[i:])
			sb.WriteRune(r)
			i += n
		}
	}
	return sb.String()
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParseString recognizes a single quoted CSS string and returns its content.
func ParseString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return "", false
	}
	return Unquote(s), true
}

// IsString reports whether s is a single quoted CSS string.
func IsString(s string) bool {
	_, ok := ParseString(s)
	return ok
}

// escapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes get a backslash, control characters become
// hex escapes terminated by a space.
func escapeDoubleQuoted(s string) string {
	if !strings.ContainsFunc(s, needsEscape) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch {
		case r == '\\' || r == '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, "\\%X ", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(r rune) bool {
	return r == '\\' || r == '"' || unicode.IsControl(r)
}
