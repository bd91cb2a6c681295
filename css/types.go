package css

import (
	"slices"
	"strings"
)

// Declaration is a single "property: value" pair inside a rule or a
// declaration-style at-rule (@font-face, @page).
type Declaration struct {
	Property  string // Lowercased property name, custom properties keep their case
	Value     string // Value text without the !important flag
	Important bool
}

// String returns the CSS text of the declaration without trailing semicolon.
func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Rule is a qualified rule: selector list and ordered declarations.
type Rule struct {
	Selector     string // Normalized selector list ("th, td")
	Declarations []Declaration
}

// Get returns the last declaration for the property. Later declarations win
// in CSS, so this is what a browser would use.
func (r *Rule) Get(name string) (Declaration, bool) {
	name = normalizeProperty(name)
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// Value is a shortcut for Get returning only the value text.
func (r *Rule) Value(name string) (string, bool) {
	d, ok := r.Get(name)
	return d.Value, ok
}

// Set updates the property in place keeping its position or appends it at
// the end of the rule. Duplicates of the property are collapsed into one.
func (r *Rule) Set(name, value string, important bool) {
	name = normalizeProperty(name)
	d := Declaration{Property: name, Value: value, Important: important}

	last := -1
	for i := range r.Declarations {
		if r.Declarations[i].Property == name {
			last = i
		}
	}
	if last < 0 {
		r.Declarations = append(r.Declarations, d)
		return
	}
	r.Declarations[last] = d
	kept := r.Declarations[:0]
	for i, decl := range r.Declarations {
		if decl.Property == name && i != last {
			continue
		}
		kept = append(kept, decl)
	}
	r.Declarations = kept
}

// SetAfter is Set placing a new declaration right after the last
// declaration of anchor property, if there is one.
func (r *Rule) SetAfter(name, value string, important bool, anchor string) {
	anchor = normalizeProperty(anchor)
	if _, ok := r.Get(name); ok || anchor == "" {
		r.Set(name, value, important)
		return
	}
	pos := -1
	for i := range r.Declarations {
		if r.Declarations[i].Property == anchor {
			pos = i
		}
	}
	if pos < 0 {
		r.Set(name, value, important)
		return
	}
	d := Declaration{Property: normalizeProperty(name), Value: value, Important: important}
	r.Declarations = slices.Insert(r.Declarations, pos+1, d)
}

// Remove deletes every declaration of the property. When keep is not nil
// declarations for which keep returns true survive. Returns number of
// removed declarations.
func (r *Rule) Remove(name string, keep func(Declaration) bool) int {
	name = normalizeProperty(name)
	removed := 0
	kept := r.Declarations[:0]
	for _, decl := range r.Declarations {
		if decl.Property == name && (keep == nil || !keep(decl)) {
			removed++
			continue
		}
		kept = append(kept, decl)
	}
	r.Declarations = kept
	return removed
}

// Empty reports whether rule has no declarations left.
func (r *Rule) Empty() bool {
	return len(r.Declarations) == 0
}

// AtRule is an @-rule. Statement at-rules (@import, @charset) have no block,
// block at-rules either contain nested items (@media, @supports) or
// declarations (@font-face, @page). Blocks of at-rules the tokenizer does not
// know are kept as Raw text.
type AtRule struct {
	Name         string // Including "@", lowercased
	Prelude      string // Everything between the name and the block or semicolon
	HasBlock     bool
	Items        []Item
	Declarations []Declaration
	Raw          string
}

// Item is a single top-level (or nested) stylesheet entry. Exactly one of
// the fields is set.
type Item struct {
	Rule    *Rule
	AtRule  *AtRule
	Comment *string
}

// Stylesheet is the parsed, mutable object model of a CSS file.
type Stylesheet struct {
	Items    []Item   // All top-level items in source order
	Warnings []string // Recoverable problems found by the parser
}

// Rules returns all top-level rules in source order. Rules nested in
// at-rules are not included.
func (s *Stylesheet) Rules() []*Rule {
	var rules []*Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, item.Rule)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules with matching selector.
func (s *Stylesheet) RulesBySelector(selector string) []*Rule {
	selector = NormalizeSelector(selector)
	var matches []*Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, item.Rule)
		}
	}
	return matches
}

// InsertRule creates an empty rule and places it at position index among
// top-level items. Index out of range appends.
func (s *Stylesheet) InsertRule(selector string, index int) *Rule {
	rule := &Rule{Selector: NormalizeSelector(selector)}
	item := Item{Rule: rule}
	if index < 0 || index >= len(s.Items) {
		s.Items = append(s.Items, item)
		return rule
	}
	s.Items = append(s.Items, Item{})
	copy(s.Items[index+1:], s.Items[index:])
	s.Items[index] = item
	return rule
}

// RemoveRule removes top-level item at index if it is a rule.
func (s *Stylesheet) RemoveRule(index int) bool {
	if index < 0 || index >= len(s.Items) || s.Items[index].Rule == nil {
		return false
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	return true
}

// indexOf returns position of the rule among top-level items or -1.
func (s *Stylesheet) indexOf(rule *Rule) int {
	for i, item := range s.Items {
		if item.Rule == rule {
			return i
		}
	}
	return -1
}

// NormalizeSelector collapses whitespace and puts exactly one space after
// each top-level comma, so "th,td" and "th ,\n td" both become "th, td".
func NormalizeSelector(sel string) string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range sel {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, sel[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, sel[start:])

	out := parts[:0]
	for _, p := range parts {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func normalizeProperty(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(name)
}
