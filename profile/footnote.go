package profile

import (
	"strings"

	"cssync/codec"
	"cssync/css"
)

// Footnote styles footnote references in text and the footnote section at
// the end of the document.
type Footnote struct {
	RefColor    *codec.Color `yaml:"ref_color,omitempty"`
	RefBold     *bool        `yaml:"ref_bold,omitempty"`
	Brackets    *bool        `yaml:"brackets,omitempty"`
	Superscript *bool        `yaml:"superscript,omitempty"`
	RefFontSize *codec.Size  `yaml:"ref_font_size,omitempty" validate:"omitnil,gte=0"`

	FontSize    *codec.Size  `yaml:"font_size,omitempty" validate:"omitnil,gte=0"`
	Color       *codec.Color `yaml:"color,omitempty"`
	MarginTop   *codec.Size  `yaml:"margin_top,omitempty"`
	Separator   codec.Border `yaml:"separator,omitempty"`
	LineHeight  *float64     `yaml:"line_height,omitempty" validate:"omitnil,gte=0"`
	ShowBackRef *bool        `yaml:"show_back_ref,omitempty"`
}

const (
	selFootnoteRef     = ".footnote-ref"
	selFootnoteOpen    = ".footnote-ref::before"
	selFootnoteClose   = ".footnote-ref::after"
	selFootnoteSup     = ".footnote-ref sup"
	selFootnotes       = ".footnotes"
	selFootnoteRuler   = ".footnotes hr"
	selFootnoteItem    = ".footnotes li"
	selFootnoteBackRef = ".footnote-back-ref"
)

func (f *Footnote) updateFrom(l css.Lookup) {
	r := reader{l: l, sel: selFootnoteRef}
	r.color("color", &f.RefColor)
	r.flag("font-weight", codec.ParseFontWeight, &f.RefBold)

	// Brackets count only when both sides agree.
	var open, closing *bool
	reader{l: l, sel: selFootnoteOpen}.flag("content", bracketParser("["), &open)
	reader{l: l, sel: selFootnoteClose}.flag("content", bracketParser("]"), &closing)
	if open != nil && closing != nil && *open == *closing {
		f.Brackets = open
	}

	r = reader{l: l, sel: selFootnoteSup}
	r.flag("vertical-align", parseSuperscript, &f.Superscript)
	r.size("font-size", codec.UnitPx, &f.RefFontSize)

	r = reader{l: l, sel: selFootnotes}
	r.size("font-size", codec.UnitPx, &f.FontSize)
	r.color("color", &f.Color)
	r.size("margin-top", codec.UnitPx, &f.MarginTop)

	reader{l: l, sel: selFootnoteRuler}.border("border-top", codec.UnitPx, &f.Separator)
	reader{l: l, sel: selFootnoteItem}.number("line-height", &f.LineHeight)
	reader{l: l, sel: selFootnoteBackRef}.flag("display", parseVisible, &f.ShowBackRef)
}

func (f *Footnote) applyTo() []*css.Patch {
	ref := css.NewPatch(selFootnoteRef)
	w := writer{p: ref}
	w.color("color", f.RefColor, codec.FormatHex)
	w.flag("font-weight", f.RefBold, codec.FormatFontWeight, codec.IsFontWeight)

	open := css.NewPatch(selFootnoteOpen).After(selFootnoteRef)
	writer{p: open}.flag("content", f.Brackets, bracketFormatter("["), isBracket("["))
	closing := css.NewPatch(selFootnoteClose).After(selFootnoteOpen)
	writer{p: closing}.flag("content", f.Brackets, bracketFormatter("]"), isBracket("]"))

	sup := css.NewPatch(selFootnoteSup)
	w = writer{p: sup}
	w.flag("vertical-align", f.Superscript, formatSuperscript, isSuperscript)
	w.size("font-size", f.RefFontSize)

	notes := css.NewPatch(selFootnotes)
	w = writer{p: notes}
	w.size("font-size", f.FontSize)
	w.color("color", f.Color, codec.FormatHex)
	w.size("margin-top", f.MarginTop)

	ruler := css.NewPatch(selFootnoteRuler).After(selFootnotes)
	writer{p: ruler}.border("border-top", f.Separator, codec.FormatHex, false)

	item := css.NewPatch(selFootnoteItem)
	writer{p: item}.number("line-height", f.LineHeight)

	back := css.NewPatch(selFootnoteBackRef)
	writer{p: back}.flag("display", f.ShowBackRef, formatVisible, isVisible)

	return []*css.Patch{ref, open, closing, sup, notes, ruler, item, back}
}

// bracketParser reads pseudo element content: the bracket means brackets are
// on, "none" or an empty string means off.
func bracketParser(bracket string) func(string) (bool, bool) {
	return func(v string) (bool, bool) {
		if strings.EqualFold(strings.TrimSpace(v), "none") {
			return false, true
		}
		s, ok := codec.ParseString(v)
		switch {
		case !ok:
			return false, false
		case s == bracket:
			return true, true
		case s == "":
			return false, true
		}
		return false, false
	}
}

func bracketFormatter(bracket string) func(bool) string {
	return func(on bool) string {
		if on {
			return codec.Quote(bracket)
		}
		return "none"
	}
}

func isBracket(bracket string) func(string) bool {
	parse := bracketParser(bracket)
	return func(v string) bool {
		_, ok := parse(v)
		return ok
	}
}

func parseSuperscript(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "super":
		return true, true
	case "baseline":
		return false, true
	}
	return false, false
}

func formatSuperscript(on bool) string {
	if on {
		return "super"
	}
	return "baseline"
}

func isSuperscript(v string) bool {
	_, ok := parseSuperscript(v)
	return ok
}

func parseVisible(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "inline":
		return true, true
	case "none":
		return false, true
	}
	return false, false
}

func formatVisible(on bool) string {
	if on {
		return "inline"
	}
	return "none"
}

func isVisible(v string) bool {
	_, ok := parseVisible(v)
	return ok
}
