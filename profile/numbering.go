package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"cssync/css"
)

// Numbering tells for every heading level (index 0 is h1) whether headings
// of that level are automatically numbered. Numbers are built from CSS
// counters named after the levels, so h3 shows "1.2.3. ".
type Numbering [6]bool

var numberingContentRe = regexp.MustCompile(`^counter\(h[1-6]\)(\s*"\."\s*counter\(h[1-6]\))*\s*"\. "$`)

// Enabled reports whether level (1..6) is numbered.
func (n Numbering) Enabled(level int) bool {
	return level >= 1 && level <= len(n) && n[level-1]
}

// Levels returns numbered levels in ascending order.
func (n Numbering) Levels() []int {
	var out []int
	for i, on := range n {
		if on {
			out = append(out, i+1)
		}
	}
	return out
}

// IsZero makes yaml omit numbering with no level enabled.
func (n Numbering) IsZero() bool {
	return n == Numbering{}
}

// MarshalYAML stores numbering as list of enabled levels.
func (n Numbering) MarshalYAML() (any, error) {
	return n.Levels(), nil
}

// UnmarshalYAML reads list of enabled levels.
func (n *Numbering) UnmarshalYAML(node *yaml.Node) error {
	var levels []int
	if err := node.Decode(&levels); err != nil {
		return fmt.Errorf("line %d: numbering must be a list of heading levels: %w", node.Line, err)
	}
	*n = Numbering{}
	for _, l := range levels {
		if l < 1 || l > len(n) {
			return fmt.Errorf("line %d: heading level %d is out of range 1..%d", node.Line, l, len(n))
		}
		n[l-1] = true
	}
	return nil
}

// counterName returns name of the counter for heading level.
func counterName(level int) string {
	return "h" + strconv.Itoa(level)
}

// numberingContent builds content of hL::before: counters of all levels up
// to L joined with dots.
func numberingContent(level int) string {
	parts := make([]string, 0, level)
	for l := 1; l <= level; l++ {
		parts = append(parts, "counter("+counterName(l)+")")
	}
	return strings.Join(parts, ` "." `) + ` ". "`
}

// isCounterIncrement recognizes "hL" and "hL <n>".
func isCounterIncrement(level int) func(string) bool {
	return func(v string) bool {
		f := strings.Fields(strings.ToLower(v))
		if len(f) == 0 || len(f) > 2 || f[0] != counterName(level) {
			return false
		}
		if len(f) == 2 {
			_, err := strconv.Atoi(f[1])
			return err == nil
		}
		return true
	}
}

func isNumberingContent(v string) bool {
	return numberingContentRe.MatchString(strings.TrimSpace(v))
}

func (n *Numbering) updateFrom(l css.Lookup) {
	for level := 1; level <= len(n); level++ {
		d, ok := l.Get(HeadingSelector(level), "counter-increment")
		n[level-1] = ok && isCounterIncrement(level)(d.Value)
	}
}

// applyTo writes all six levels. For enabled level L the heading rule gets
// counter-increment of its own counter and resets the child one, hL::before
// prints the number and, for level 1, root selector resets the h1 counter.
// Disabled levels lose exactly these declarations.
func (n *Numbering) applyTo(root string) []*css.Patch {
	var patches []*css.Patch
	for level := 1; level <= len(n); level++ {
		sel := HeadingSelector(level)
		h := css.NewPatch(sel)
		before := css.NewPatch(sel + "::before").After(sel)
		if n.Enabled(level) {
			h.Set("counter-increment", counterName(level))
			if level < len(n) {
				h.Set("counter-reset", counterName(level+1)+" 0")
			}
			before.Set("content", numberingContent(level))
		} else {
			h.Unset("counter-increment", isCounterIncrement(level))
			if level < len(n) {
				h.Unset("counter-reset", isCounterReset(level+1))
			}
			before.Unset("content", isNumberingContent)
		}
		patches = append(patches, h, before)
	}

	rp := css.NewPatch(root)
	if n.Enabled(1) {
		rp.Set("counter-reset", counterName(1)+" 0")
	} else {
		rp.Unset("counter-reset", isCounterReset(1))
	}
	return append(patches, rp)
}

// isCounterReset recognizes "hL" and "hL <n>".
func isCounterReset(level int) func(string) bool {
	return isCounterIncrement(level)
}
