// Package profile keeps typed appearance settings of a rendered document and
// synchronizes them with a CSS stylesheet.
package profile

import (
	"fmt"

	"cssync/css"
)

// Profile is the aggregate of all managed element styles. Every attribute is
// optional: nil means "not managed" and removes a declaration we recognize
// when written.
type Profile struct {
	Body       Body       `yaml:"body,omitempty"`
	Headings   Headings   `yaml:"headings,omitempty" validate:"dive"`
	Blockquote Blockquote `yaml:"blockquote,omitempty"`
	List       List       `yaml:"list,omitempty"`
	Table      Table      `yaml:"table,omitempty"`
	Code       Code       `yaml:"code,omitempty"`
	Title      Title      `yaml:"title,omitempty"`
	Footnote   Footnote   `yaml:"footnote,omitempty"`
	Numbering  Numbering  `yaml:"numbering,omitempty"`
}

// Heading returns style of heading level 1..6.
func (p *Profile) Heading(level int) *Heading {
	if level < 1 || level > len(p.Headings) {
		panic(fmt.Sprintf("heading level %d out of range", level))
	}
	return &p.Headings[level-1]
}

// Normalize brings profile to the form Read returns for it after Write.
// Halves of underline/strikethrough pairs get a false partner and decoration
// colors without a decoration line are cleared.
func (p *Profile) Normalize() {
	for i := range p.Headings {
		p.Headings[i].Decoration.normalize()
	}
	p.Title.Decoration.normalize()
}

// Pass identifies one step of a synchronization transaction. Passes always
// run in declaration order: Numbering augments heading rules and must come
// after all heading passes.
type Pass int

const (
	PassBody Pass = iota
	PassHeading1
	PassHeading2
	PassHeading3
	PassHeading4
	PassHeading5
	PassHeading6
	PassBlockquote
	PassList
	PassTable
	PassCode
	PassTitle
	PassFootnote
	PassNumbering
	passCount
)

var passNames = [...]string{
	PassBody:       "body",
	PassHeading1:   "heading1",
	PassHeading2:   "heading2",
	PassHeading3:   "heading3",
	PassHeading4:   "heading4",
	PassHeading5:   "heading5",
	PassHeading6:   "heading6",
	PassBlockquote: "blockquote",
	PassList:       "list",
	PassTable:      "table",
	PassCode:       "code",
	PassTitle:      "title",
	PassFootnote:   "footnote",
	PassNumbering:  "numbering",
}

func (p Pass) String() string {
	if p < 0 || p >= passCount {
		return fmt.Sprintf("Pass(%d)", int(p))
	}
	return passNames[p]
}

// Passes returns all passes in execution order.
func Passes() []Pass {
	out := make([]Pass, 0, passCount)
	for p := PassBody; p < passCount; p++ {
		out = append(out, p)
	}
	return out
}

// element is implemented by every per-element style model.
type element interface {
	updateFrom(l css.Lookup)
	applyTo() []*css.Patch
}

// numberingElement adapts Numbering, which also needs the root selector.
type numberingElement struct {
	n    *Numbering
	root string
}

func (e numberingElement) updateFrom(l css.Lookup) { e.n.updateFrom(l) }
func (e numberingElement) applyTo() []*css.Patch   { return e.n.applyTo(e.root) }

// element returns model responsible for the pass.
func (p *Profile) element(pass Pass, root string) element {
	switch pass {
	case PassBody:
		return &p.Body
	case PassHeading1, PassHeading2, PassHeading3, PassHeading4, PassHeading5, PassHeading6:
		level := int(pass-PassHeading1) + 1
		return headingElement{h: p.Heading(level), level: level}
	case PassBlockquote:
		return &p.Blockquote
	case PassList:
		return &p.List
	case PassTable:
		return &p.Table
	case PassCode:
		return &p.Code
	case PassTitle:
		return &p.Title
	case PassFootnote:
		return &p.Footnote
	case PassNumbering:
		return numberingElement{n: &p.Numbering, root: root}
	default:
		// this should never happen
		panic(fmt.Sprintf("unknown pass %s", pass))
	}
}
