package css

// Lookup gives read-only access to declarations by selector. Models reading
// their state from a stylesheet only ever see this interface.
type Lookup interface {
	// Get returns the effective declaration of property for the selector,
	// looking through all top-level rules with that selector.
	Get(selector, property string) (Declaration, bool)
	// Has reports whether at least one rule with the selector exists.
	Has(selector string) bool
}

type opKind int

const (
	opSet opKind = iota
	opUnset
)

type op struct {
	kind      opKind
	property  string
	value     string
	important bool
	anchor    string
	managed   func(string) bool
	same      func(string) bool
}

// Patch is a typed list of changes to a single selector: set a property to a
// value or remove it. Patches are the only way models change a stylesheet.
type Patch struct {
	Selector string
	after    string
	ops      []op
}

// NewPatch starts an empty patch for selector.
func NewPatch(selector string) *Patch {
	return &Patch{Selector: NormalizeSelector(selector)}
}

// After requests that a rule created by this patch is placed right after the
// last rule with the given selector instead of at the end of the stylesheet.
func (p *Patch) After(selector string) *Patch {
	p.after = NormalizeSelector(selector)
	return p
}

// Set sets property to value.
func (p *Patch) Set(property, value string) *Patch {
	p.ops = append(p.ops, op{kind: opSet, property: normalizeProperty(property), value: value})
	return p
}

// SetImportant sets property to value with the !important flag.
func (p *Patch) SetImportant(property, value string) *Patch {
	p.ops = append(p.ops, op{kind: opSet, property: normalizeProperty(property), value: value, important: true})
	return p
}

// SetAfter sets property to value. When the rule does not have the property
// yet, it is placed right after the anchor property instead of at the end.
func (p *Patch) SetAfter(property, value, anchor string) *Patch {
	p.ops = append(p.ops, op{kind: opSet, property: normalizeProperty(property), value: value, anchor: normalizeProperty(anchor)})
	return p
}

// SetEquivalent is Set which leaves the declaration as written when same
// reports that its current value already means value.
func (p *Patch) SetEquivalent(property, value string, important bool, same func(string) bool) *Patch {
	p.ops = append(p.ops, op{kind: opSet, property: normalizeProperty(property), value: value, important: important, same: same})
	return p
}

// Unset removes property. When managed is not nil only declarations whose
// value it recognizes are removed, anything else is not ours to touch.
func (p *Patch) Unset(property string, managed func(string) bool) *Patch {
	p.ops = append(p.ops, op{kind: opUnset, property: normalizeProperty(property), managed: managed})
	return p
}

// Len returns number of operations in the patch.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Sets returns properties the patch assigns, in order. Used by tests and
// debug logging.
func (p *Patch) Sets() []Declaration {
	var out []Declaration
	for _, o := range p.ops {
		if o.kind == opSet {
			out = append(out, Declaration{Property: o.property, Value: o.value, Important: o.important})
		}
	}
	return out
}

func (p *Patch) hasSets() bool {
	for _, o := range p.ops {
		if o.kind == opSet {
			return true
		}
	}
	return false
}
