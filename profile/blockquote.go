package profile

import (
	"strings"

	"cssync/codec"
	"cssync/css"
)

// Blockquote styles quotations and the optional decorative icon printed
// before them.
type Blockquote struct {
	TextColor       *codec.Color `yaml:"text_color,omitempty"`
	BackgroundColor *codec.Color `yaml:"background_color,omitempty"`
	Border          codec.Border `yaml:"border,omitempty"`
	Italic          *bool        `yaml:"italic,omitempty"`
	Padding         *codec.Size  `yaml:"padding,omitempty" validate:"omitnil,gte=0"`
	BorderRadius    *codec.Size  `yaml:"border_radius,omitempty" validate:"omitnil,gte=0"`

	Icon        *string      `yaml:"icon,omitempty"`
	IconColor   *codec.Color `yaml:"icon_color,omitempty"`
	IconSize    *codec.Size  `yaml:"icon_size,omitempty" validate:"omitnil,gte=0"`
	IconSpacing *codec.Size  `yaml:"icon_spacing,omitempty"`
}

const (
	selBlockquote     = "blockquote"
	selBlockquoteIcon = "blockquote::before"
)

func (b *Blockquote) updateFrom(l css.Lookup) {
	r := reader{l: l, sel: selBlockquote}
	r.color("color", &b.TextColor)
	r.color("background-color", &b.BackgroundColor)
	r.border("border-left", codec.UnitPx, &b.Border)
	r.flag("font-style", codec.ParseFontStyle, &b.Italic)
	r.size("padding", codec.UnitPx, &b.Padding)
	r.size("border-radius", codec.UnitPx, &b.BorderRadius)

	r = reader{l: l, sel: selBlockquoteIcon}
	r.str("content", &b.Icon)
	r.color("color", &b.IconColor)
	r.size("font-size", codec.UnitPx, &b.IconSize)
	r.size("margin-bottom", codec.UnitPx, &b.IconSpacing)
}

func (b *Blockquote) applyTo() []*css.Patch {
	p := css.NewPatch(selBlockquote)
	w := writer{p: p}
	w.color("color", b.TextColor, codec.FormatHex)
	w.color("background-color", b.BackgroundColor, codec.FormatHex)
	w.border("border-left", b.Border, codec.FormatHex, false)
	w.flag("font-style", b.Italic, codec.FormatFontStyle, codec.IsFontStyle)
	w.size("padding", b.Padding)
	w.size("border-radius", b.BorderRadius)

	icon := css.NewPatch(selBlockquoteIcon).After(selBlockquote)
	w = writer{p: icon}
	w.str("content", b.Icon)
	if b.Icon != nil {
		w.set("display", "block")
	} else {
		icon.Unset("display", isBlockDisplay)
	}
	w.color("color", b.IconColor, codec.FormatHex)
	w.size("font-size", b.IconSize)
	w.size("margin-bottom", b.IconSpacing)

	return []*css.Patch{p, icon}
}

func isBlockDisplay(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "block")
}
