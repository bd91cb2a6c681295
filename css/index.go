package css

// Index maps selectors to top-level rules of a stylesheet. It is built once
// per transaction and kept current while patches create rules.
type Index struct {
	sheet   *Stylesheet
	rules   map[string][]*Rule
	touched map[*Rule]struct{}
}

// NewIndex indexes all top-level rules of the stylesheet.
func NewIndex(s *Stylesheet) *Index {
	ix := &Index{
		sheet:   s,
		rules:   make(map[string][]*Rule),
		touched: make(map[*Rule]struct{}),
	}
	for _, r := range s.Rules() {
		ix.rules[r.Selector] = append(ix.rules[r.Selector], r)
	}
	return ix
}

// Get implements Lookup.
func (ix *Index) Get(selector, property string) (Declaration, bool) {
	rules := ix.rules[NormalizeSelector(selector)]
	for i := len(rules) - 1; i >= 0; i-- {
		if d, ok := rules[i].Get(property); ok {
			return d, true
		}
	}
	return Declaration{}, false
}

// Has implements Lookup.
func (ix *Index) Has(selector string) bool {
	return len(ix.rules[NormalizeSelector(selector)]) > 0
}

// Selectors returns indexed selectors in stylesheet order without duplicates.
func (ix *Index) Selectors() []string {
	seen := make(map[string]bool, len(ix.rules))
	var out []string
	for _, r := range ix.sheet.Rules() {
		if !seen[r.Selector] {
			seen[r.Selector] = true
			out = append(out, r.Selector)
		}
	}
	return out
}

// Apply executes the patch. Removals touch every rule with the selector;
// a set goes to the last such rule (the one winning the cascade) and drops
// the property from the others. A missing rule is created only when the
// patch sets something.
func (ix *Index) Apply(p *Patch) {
	rules := ix.rules[p.Selector]
	if len(rules) == 0 {
		if !p.hasSets() {
			return
		}
		rules = []*Rule{ix.create(p.Selector, p.after)}
	}

	target := rules[len(rules)-1]
	for _, o := range p.ops {
		switch o.kind {
		case opUnset:
			keep := keepUnmanaged(o.managed)
			for _, r := range rules {
				r.Remove(o.property, keep)
			}
		case opSet:
			for _, r := range rules[:len(rules)-1] {
				r.Remove(o.property, nil)
			}
			if d, ok := target.Get(o.property); ok && o.same != nil && d.Important == o.important && o.same(d.Value) {
				continue
			}
			target.SetAfter(o.property, o.value, o.important, o.anchor)
		}
	}
	for _, r := range rules {
		ix.touched[r] = struct{}{}
	}
}

// Prune deletes rules touched by patches that ended up without
// declarations. Rules never patched are left alone even when empty.
// Returns number of deleted rules.
func (ix *Index) Prune() int {
	removed := 0
	for i := 0; i < len(ix.sheet.Items); {
		r := ix.sheet.Items[i].Rule
		if _, ok := ix.touched[r]; r == nil || !ok || !r.Empty() {
			i++
			continue
		}
		ix.sheet.RemoveRule(i)
		ix.forget(r)
		removed++
	}
	return removed
}

func (ix *Index) create(selector, after string) *Rule {
	pos := -1
	if after != "" {
		if prev := ix.rules[after]; len(prev) > 0 {
			if i := ix.sheet.indexOf(prev[len(prev)-1]); i >= 0 {
				pos = i + 1
			}
		}
	}
	r := ix.sheet.InsertRule(selector, pos)
	ix.rules[r.Selector] = append(ix.rules[r.Selector], r)
	return r
}

func (ix *Index) forget(r *Rule) {
	rules := ix.rules[r.Selector]
	for i := range rules {
		if rules[i] == r {
			ix.rules[r.Selector] = append(rules[:i], rules[i+1:]...)
			break
		}
	}
	if len(ix.rules[r.Selector]) == 0 {
		delete(ix.rules, r.Selector)
	}
	delete(ix.touched, r)
}

func keepUnmanaged(managed func(string) bool) func(Declaration) bool {
	if managed == nil {
		return nil
	}
	return func(d Declaration) bool {
		return !managed(d.Value)
	}
}
