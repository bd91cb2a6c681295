package css

import (
	"strings"
)

var (
	borderLonghands  = []string{"border-width", "border-style", "border-color"}
	paddingLonghands = []string{"padding-top", "padding-right", "padding-bottom", "padding-left"}
)

// Consolidate rewrites printed stylesheet text merging longhand declarations
// into shorthands inside top-level rules with one of the given selectors:
// border-width/style/color become "border: <width> <style> <color>" and the
// four padding sides become "padding". The shorthand takes the place of the
// first longhand. Groups where any member is missing or !important are left
// as they are. Text must come from Printer, lines inside comments are never
// taken for rules.
func Consolidate(text string, selectors []string) string {
	if len(selectors) == 0 {
		return text
	}
	wanted := make(map[string]bool, len(selectors))
	for _, s := range selectors {
		wanted[NormalizeSelector(s)] = true
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	inComment := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if inComment || strings.HasPrefix(strings.TrimLeft(line, " \t"), "/*") {
			inComment = !strings.Contains(commentTail(line, inComment), "*/")
			out = append(out, line)
			continue
		}
		sel, open := strings.CutSuffix(line, " {")
		if !open || strings.HasPrefix(line, " ") || !wanted[sel] {
			out = append(out, line)
			continue
		}
		end := i + 1
		for end < len(lines) && lines[end] != "}" {
			end++
		}
		out = append(out, line)
		out = append(out, consolidateBlock(lines[i+1:end])...)
		i = end - 1
	}
	return strings.Join(out, "\n")
}

// commentTail returns part of the line where the end of a comment may be:
// the whole line inside a comment, the text after the opening "/*" otherwise.
func commentTail(line string, inComment bool) string {
	if inComment {
		return line
	}
	_, tail, _ := strings.Cut(line, "/*")
	return tail
}

func consolidateBlock(body []string) []string {
	body = mergeGroup(body, borderLonghands, func(v []string) string {
		return "border: " + strings.Join(v, " ")
	})
	body = mergeGroup(body, paddingLonghands, func(v []string) string {
		return "padding: " + collapseBox(v[0], v[1], v[2], v[3])
	})
	return body
}

// mergeGroup replaces lines declaring all properties of the group with a
// single line produced by merge from their values in group order.
func mergeGroup(body, group []string, merge func([]string) string) []string {
	values := make([]string, len(group))
	pos := make([]int, len(group))
	found := 0
	indent := ""
	for i, line := range body {
		trimmed := strings.TrimLeft(line, " ")
		prop, val, ok := strings.Cut(strings.TrimSuffix(trimmed, ";"), ": ")
		if !ok {
			continue
		}
		for g, name := range group {
			if prop != name {
				continue
			}
			if strings.HasSuffix(val, "!important") || values[g] != "" {
				return body
			}
			values[g] = val
			pos[g] = i
			found++
			if found == 1 {
				indent = line[:len(line)-len(trimmed)]
			}
		}
	}
	if found != len(group) {
		return body
	}

	first := pos[0]
	for _, p := range pos {
		first = min(first, p)
	}
	drop := make(map[int]bool, len(pos))
	for _, p := range pos {
		drop[p] = true
	}

	out := make([]string, 0, len(body)-len(group)+1)
	for i, line := range body {
		switch {
		case i == first:
			out = append(out, indent+merge(values)+";")
		case drop[i]:
		default:
			out = append(out, line)
		}
	}
	return out
}

// collapseBox produces the shortest box shorthand for four side values.
func collapseBox(top, right, bottom, left string) string {
	switch {
	case top == right && right == bottom && bottom == left:
		return top
	case top == bottom && right == left:
		return top + " " + right
	case right == left:
		return top + " " + right + " " + bottom
	default:
		return top + " " + right + " " + bottom + " " + left
	}
}
