package profile

import (
	"cmp"
	"strings"

	"cssync/codec"
	"cssync/css"
)

// reader fills optional fields from declarations of one selector. Fields are
// only ever overwritten by recognized values, never cleared.
type reader struct {
	l   css.Lookup
	sel string
}

func (r reader) value(prop string) (string, bool) {
	d, ok := r.l.Get(r.sel, prop)
	return d.Value, ok
}

func (r reader) color(prop string, dst **codec.Color) {
	if v, ok := r.value(prop); ok {
		if c, ok := codec.ParseColor(v); ok {
			*dst = &c
		}
	}
}

func (r reader) size(prop string, def codec.Unit, dst **codec.Size) {
	if v, ok := r.value(prop); ok {
		if s, ok := codec.ParseSize(v, def); ok {
			*dst = &s
		}
	}
}

func (r reader) number(prop string, dst **float64) {
	if v, ok := r.value(prop); ok {
		if f, ok := codec.ParseNumber(v); ok {
			*dst = &f
		}
	}
}

func (r reader) keyword(prop string, set codec.KeywordSet, dst **string) {
	if v, ok := r.value(prop); ok {
		if k, ok := set.Parse(v); ok {
			*dst = &k
		}
	}
}

func (r reader) flag(prop string, parse func(string) (bool, bool), dst **bool) {
	if v, ok := r.value(prop); ok {
		if b, ok := parse(v); ok {
			*dst = &b
		}
	}
}

func (r reader) fontFamily(prop string, dst **string) {
	if v, ok := r.value(prop); ok {
		if f, ok := codec.ParseFontFamily(v); ok {
			*dst = &f
		}
	}
}

func (r reader) str(prop string, dst **string) {
	if v, ok := r.value(prop); ok {
		if s, ok := codec.ParseString(v); ok {
			*dst = &s
		}
	}
}

// border reads shorthand prefix first and lets longhands override its parts.
func (r reader) border(prefix string, def codec.Unit, dst *codec.Border) {
	if v, ok := r.value(prefix); ok {
		if b, ok := codec.ParseBorder(v, def); ok {
			if b.Width != nil {
				dst.Width = b.Width
			}
			if b.Style != nil {
				dst.Style = b.Style
			}
			if b.Color != nil {
				dst.Color = b.Color
			}
		}
	}
	r.size(prefix+"-width", def, &dst.Width)
	r.keyword(prefix+"-style", codec.BorderStyles, &dst.Style)
	r.color(prefix+"-color", &dst.Color)
}

// writer turns optional fields into patch operations: set fields are
// written, unset fields remove declarations holding values we recognize.
type writer struct {
	p         *css.Patch
	important bool
}

func (w writer) set(prop, value string) {
	if w.important {
		w.p.SetImportant(prop, value)
		return
	}
	w.p.Set(prop, value)
}

func (w writer) color(prop string, c *codec.Color, f codec.ColorFormat) {
	if c == nil {
		w.p.Unset(prop, codec.IsColor)
		return
	}
	w.set(prop, c.Format(f))
}

func (w writer) size(prop string, s *codec.Size) {
	if s == nil || s.IsNone() {
		w.p.Unset(prop, codec.IsSize)
		return
	}
	w.set(prop, s.String())
}

func (w writer) number(prop string, f *float64) {
	if f == nil {
		w.p.Unset(prop, codec.IsNumber)
		return
	}
	w.set(prop, codec.FormatNumber(*f))
}

func (w writer) keyword(prop string, k *string, set codec.KeywordSet) {
	if k == nil {
		w.p.Unset(prop, set.Contains)
		return
	}
	w.set(prop, strings.ToLower(*k))
}

func (w writer) flag(prop string, b *bool, format func(bool) string, managed func(string) bool) {
	if b == nil {
		w.p.Unset(prop, managed)
		return
	}
	w.set(prop, format(*b))
}

func (w writer) fontFamily(prop string, f *string) {
	if f == nil || codec.FormatFontFamily(*f) == "" {
		w.p.Unset(prop, codec.IsFontFamily)
		return
	}
	w.set(prop, codec.FormatFontFamily(*f))
}

func (w writer) str(prop string, s *string) {
	if s == nil {
		w.p.Unset(prop, codec.IsString)
		return
	}
	w.p.SetEquivalent(prop, codec.Quote(*s), w.important, func(v string) bool {
		cur, ok := codec.ParseString(v)
		return ok && cur == *s
	})
}

// border writes the three longhands of prefix and drops a recognized
// shorthand. Longhands replacing a shorthand take its place in the rule. With
// fill set, missing parts of a non-empty border get CSS initial values so all
// three longhands are always present together.
func (w writer) border(prefix string, b codec.Border, f codec.ColorFormat, fill bool) {
	var width, style, color string
	if b.Width != nil && !b.Width.IsNone() {
		width = b.Width.String()
	}
	if b.Style != nil {
		style = strings.ToLower(*b.Style)
	}
	if b.Color != nil {
		color = b.Color.Format(f)
	}
	if fill && !b.IsZero() {
		width = cmp.Or(width, "medium")
		style = cmp.Or(style, "none")
		color = cmp.Or(color, "currentcolor")
	}

	anchor := prefix
	for _, part := range []struct {
		prop, value string
		managed     func(string) bool
	}{
		{prefix + "-width", width, isBorderWidth},
		{prefix + "-style", style, codec.BorderStyles.Contains},
		{prefix + "-color", color, isBorderColor},
	} {
		switch {
		case part.value == "":
			w.p.Unset(part.prop, part.managed)
		case w.important:
			w.p.SetImportant(part.prop, part.value)
		default:
			w.p.SetAfter(part.prop, part.value, anchor)
			anchor = part.prop
		}
	}
	w.p.Unset(prefix, codec.IsBorder)
}

func isBorderWidth(v string) bool {
	return codec.IsSize(v) || strings.EqualFold(strings.TrimSpace(v), "medium")
}

func isBorderColor(v string) bool {
	return codec.IsColor(v) || strings.EqualFold(strings.TrimSpace(v), "currentcolor")
}

func ptr[T any](v T) *T {
	return &v
}
