package profile

import (
	"cssync/codec"
	"cssync/css"
)

// CodeStyle is appearance of one code variant.
type CodeStyle struct {
	TextColor       *codec.Color `yaml:"text_color,omitempty"`
	BackgroundColor *codec.Color `yaml:"background_color,omitempty"`
	FontFamily      *string      `yaml:"font_family,omitempty" validate:"omitnil,font_family"`
}

// Code styles inline code spans and fenced code blocks independently.
// Block declarations are written with !important so they win over inline
// code rules applied to the same element.
type Code struct {
	Inline CodeStyle `yaml:"inline,omitempty"`
	Block  CodeStyle `yaml:"block,omitempty"`
}

const (
	selCodeInline = "code"
	selCodeBlock  = "pre code"
)

func (cs *CodeStyle) read(r reader) {
	r.color("color", &cs.TextColor)
	r.color("background-color", &cs.BackgroundColor)
	r.fontFamily("font-family", &cs.FontFamily)
}

func (cs CodeStyle) write(w writer) {
	w.color("color", cs.TextColor, codec.FormatHex)
	w.color("background-color", cs.BackgroundColor, codec.FormatHex)
	w.fontFamily("font-family", cs.FontFamily)
}

func (c *Code) updateFrom(l css.Lookup) {
	c.Inline.read(reader{l: l, sel: selCodeInline})
	c.Block.read(reader{l: l, sel: selCodeBlock})
}

func (c *Code) applyTo() []*css.Patch {
	inline := css.NewPatch(selCodeInline)
	c.Inline.write(writer{p: inline})

	block := css.NewPatch(selCodeBlock)
	c.Block.write(writer{p: block, important: true})

	return []*css.Patch{inline, block}
}
