package profile

import (
	"bytes"
	"fmt"
	"strconv"

	yaml "gopkg.in/yaml.v3"

	"cssync/codec"
	"cssync/css"
)

// Decoration is the bold/italic/underline/strikethrough group shared by
// headings and document title. Underline and Strikethrough collapse onto a
// single text-decoration declaration and so are a pair: when only one of them
// is set the other is written as false.
type Decoration struct {
	Bold            *bool        `yaml:"bold,omitempty"`
	Italic          *bool        `yaml:"italic,omitempty"`
	Underline       *bool        `yaml:"underline,omitempty"`
	Strikethrough   *bool        `yaml:"strikethrough,omitempty"`
	DecorationColor *codec.Color `yaml:"decoration_color,omitempty"`
}

func (d *Decoration) read(r reader) {
	r.flag("font-weight", codec.ParseFontWeight, &d.Bold)
	r.flag("font-style", codec.ParseFontStyle, &d.Italic)
	if v, ok := r.value("text-decoration"); ok {
		if td, ok := codec.ParseTextDecoration(v); ok {
			d.Underline, d.Strikethrough = ptr(td.Underline), ptr(td.LineThrough)
		}
	}
	r.color("text-decoration-color", &d.DecorationColor)
}

// normalize completes a half-set underline/strikethrough pair and drops the
// decoration color when no line is drawn.
func (d *Decoration) normalize() {
	if d.Underline != nil || d.Strikethrough != nil {
		if d.Underline == nil {
			d.Underline = ptr(false)
		}
		if d.Strikethrough == nil {
			d.Strikethrough = ptr(false)
		}
	}
	if !d.lines().Active() {
		d.DecorationColor = nil
	}
}

func (d Decoration) lines() codec.TextDecoration {
	return codec.TextDecoration{
		Underline:   d.Underline != nil && *d.Underline,
		LineThrough: d.Strikethrough != nil && *d.Strikethrough,
	}
}

func (d Decoration) write(w writer) {
	w.flag("font-weight", d.Bold, codec.FormatFontWeight, codec.IsFontWeight)
	w.flag("font-style", d.Italic, codec.FormatFontStyle, codec.IsFontStyle)

	if d.Underline == nil && d.Strikethrough == nil {
		w.p.Unset("text-decoration", codec.IsTextDecoration)
		w.p.Unset("text-decoration-color", codec.IsColor)
		return
	}
	td := d.lines()
	w.set("text-decoration", td.String())
	if td.Active() && d.DecorationColor != nil {
		w.set("text-decoration-color", d.DecorationColor.Functional())
	} else {
		w.p.Unset("text-decoration-color", codec.IsColor)
	}
}

// Body is the document-wide text appearance.
type Body struct {
	TextColor       *codec.Color `yaml:"text_color,omitempty"`
	BackgroundColor *codec.Color `yaml:"background_color,omitempty"`
	FontSize        *codec.Size  `yaml:"font_size,omitempty" validate:"omitnil,gte=0"`
}

const selBody = "body"

func (b *Body) updateFrom(l css.Lookup) {
	r := reader{l: l, sel: selBody}
	r.color("color", &b.TextColor)
	r.color("background-color", &b.BackgroundColor)
	r.size("font-size", codec.UnitPx, &b.FontSize)
}

func (b *Body) applyTo() []*css.Patch {
	p := css.NewPatch(selBody)
	w := writer{p: p}
	w.color("color", b.TextColor, codec.FormatHex)
	w.color("background-color", b.BackgroundColor, codec.FormatHex)
	w.size("font-size", b.FontSize)
	return []*css.Patch{p}
}

// Heading styles one of h1..h6.
type Heading struct {
	Color        *codec.Color `yaml:"color,omitempty"`
	FontSize     *codec.Size  `yaml:"font_size,omitempty" validate:"omitnil,gte=0"`
	FontFamily   *string      `yaml:"font_family,omitempty" validate:"omitnil,font_family"`
	TextAlign    *string      `yaml:"text_align,omitempty" validate:"omitnil,text_align"`
	MarginTop    *codec.Size  `yaml:"margin_top,omitempty"`
	MarginBottom *codec.Size  `yaml:"margin_bottom,omitempty"`
	Decoration   `yaml:",inline"`
}

// HeadingSelector returns selector of heading level 1..6.
func HeadingSelector(level int) string {
	return "h" + strconv.Itoa(level)
}

// headingElement binds a heading model to its level.
type headingElement struct {
	h     *Heading
	level int
}

func (e headingElement) updateFrom(l css.Lookup) {
	h := e.h
	r := reader{l: l, sel: HeadingSelector(e.level)}
	r.color("color", &h.Color)
	r.size("font-size", codec.UnitEm, &h.FontSize)
	r.fontFamily("font-family", &h.FontFamily)
	r.keyword("text-align", codec.TextAligns, &h.TextAlign)
	r.size("margin-top", codec.UnitEm, &h.MarginTop)
	r.size("margin-bottom", codec.UnitEm, &h.MarginBottom)
	h.Decoration.read(r)
}

func (e headingElement) applyTo() []*css.Patch {
	h := e.h
	p := css.NewPatch(HeadingSelector(e.level))
	w := writer{p: p}
	w.color("color", h.Color, codec.FormatFunctional)
	w.size("font-size", h.FontSize)
	w.fontFamily("font-family", h.FontFamily)
	w.keyword("text-align", h.TextAlign, codec.TextAligns)
	w.size("margin-top", h.MarginTop)
	w.size("margin-bottom", h.MarginBottom)
	h.Decoration.write(w)
	return []*css.Patch{p}
}

// Title styles the document title element.
type Title struct {
	Color        *codec.Color `yaml:"color,omitempty"`
	FontSize     *codec.Size  `yaml:"font_size,omitempty" validate:"omitnil,gte=0"`
	FontFamily   *string      `yaml:"font_family,omitempty" validate:"omitnil,font_family"`
	TextAlign    *string      `yaml:"text_align,omitempty" validate:"omitnil,text_align"`
	MarginBottom *codec.Size  `yaml:"margin_bottom,omitempty"`
	Decoration   `yaml:",inline"`
}

const selTitle = "#page-title"

func (t *Title) updateFrom(l css.Lookup) {
	r := reader{l: l, sel: selTitle}
	r.color("color", &t.Color)
	r.size("font-size", codec.UnitEm, &t.FontSize)
	r.fontFamily("font-family", &t.FontFamily)
	r.keyword("text-align", codec.TextAligns, &t.TextAlign)
	r.size("margin-bottom", codec.UnitEm, &t.MarginBottom)
	t.Decoration.read(r)
}

func (t *Title) applyTo() []*css.Patch {
	p := css.NewPatch(selTitle)
	w := writer{p: p}
	w.color("color", t.Color, codec.FormatFunctional)
	w.size("font-size", t.FontSize)
	w.fontFamily("font-family", t.FontFamily)
	w.keyword("text-align", t.TextAlign, codec.TextAligns)
	w.size("margin-bottom", t.MarginBottom)
	t.Decoration.write(w)
	return []*css.Patch{p}
}

// Headings keeps styles of h1..h6. In YAML it is a mapping keyed by heading
// selector with unset levels omitted.
type Headings [6]Heading

// IsZero makes yaml omit headings with nothing set.
func (hs Headings) IsZero() bool {
	return hs == Headings{}
}

// MarshalYAML stores non-empty headings under their selectors.
func (hs Headings) MarshalYAML() (any, error) {
	out := make(map[string]Heading, len(hs))
	for i, h := range hs {
		if h != (Heading{}) {
			out[HeadingSelector(i+1)] = h
		}
	}
	return out, nil
}

// UnmarshalYAML accepts mapping with h1..h6 keys. Unknown attributes of a
// heading are rejected.
func (hs *Headings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: headings must be a mapping of h1..h6", node.Line)
	}
	*hs = Headings{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		level := 0
		for l := 1; l <= len(hs); l++ {
			if key.Value == HeadingSelector(l) {
				level = l
			}
		}
		if level < 1 {
			return fmt.Errorf("line %d: unknown heading %q", key.Line, key.Value)
		}
		if err := strictDecode(value, &hs[level-1]); err != nil {
			return fmt.Errorf("line %d: %s: %w", key.Line, key.Value, err)
		}
	}
	return nil
}

// strictDecode is node.Decode which rejects unknown fields.
func strictDecode(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
