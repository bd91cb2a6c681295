package codec

import (
	"slices"
	"strings"
)

// KeywordSet is a closed list of lowercase CSS keywords.
type KeywordSet []string

// Contains reports whether s is in the set, case insensitively.
func (k KeywordSet) Contains(s string) bool {
	return slices.Contains(k, strings.ToLower(strings.TrimSpace(s)))
}

// Parse returns lowercased keyword if it belongs to the set.
func (k KeywordSet) Parse(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(k, s) {
		return "", false
	}
	return s, true
}

var (
	TextAligns = KeywordSet{"left", "right", "center", "justify", "start", "end"}

	BorderStyles = KeywordSet{
		"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset",
	}

	ListStyles = KeywordSet{
		"disc", "circle", "square", "decimal", "decimal-leading-zero",
		"lower-roman", "upper-roman", "lower-alpha", "upper-alpha",
		"lower-latin", "upper-latin", "lower-greek", "none",
	}

	BorderCollapse = KeywordSet{"collapse", "separate"}

	VerticalAligns = KeywordSet{"baseline", "super", "sub", "top", "middle", "bottom", "text-top", "text-bottom"}

	Displays = KeywordSet{"none", "inline", "block", "inline-block"}
)
