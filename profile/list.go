package profile

import (
	"strings"

	"cssync/codec"
	"cssync/css"
)

// List styles bulleted and numbered lists.
type List struct {
	BulletStyle    *string     `yaml:"bullet_style,omitempty" validate:"omitnil,list_style"`
	NumberStyle    *string     `yaml:"number_style,omitempty" validate:"omitnil,list_style"`
	Indent         *codec.Size `yaml:"indent,omitempty" validate:"omitnil,gte=0"`
	ResetNumbering *bool       `yaml:"reset_numbering,omitempty"`
	ItemFontSize   *codec.Size `yaml:"item_font_size,omitempty" validate:"omitnil,gte=0"`
	ItemLineHeight *float64    `yaml:"item_line_height,omitempty" validate:"omitnil,gte=0"`
}

const (
	selBulletList = "ul"
	selNumberList = "ol"
	selListItem   = "li"
)

func (ls *List) updateFrom(l css.Lookup) {
	r := reader{l: l, sel: selBulletList}
	r.keyword("list-style-type", codec.ListStyles, &ls.BulletStyle)
	r.size("padding-left", codec.UnitPx, &ls.Indent)

	r = reader{l: l, sel: selNumberList}
	r.keyword("list-style-type", codec.ListStyles, &ls.NumberStyle)
	r.size("padding-left", codec.UnitPx, &ls.Indent)
	r.flag("counter-reset", parseListReset, &ls.ResetNumbering)

	r = reader{l: l, sel: selListItem}
	r.size("font-size", codec.UnitPx, &ls.ItemFontSize)
	r.number("line-height", &ls.ItemLineHeight)
}

func (ls *List) applyTo() []*css.Patch {
	ul := css.NewPatch(selBulletList)
	w := writer{p: ul}
	w.keyword("list-style-type", ls.BulletStyle, codec.ListStyles)
	w.size("padding-left", ls.Indent)

	ol := css.NewPatch(selNumberList)
	w = writer{p: ol}
	w.keyword("list-style-type", ls.NumberStyle, codec.ListStyles)
	w.size("padding-left", ls.Indent)
	w.flag("counter-reset", ls.ResetNumbering, formatListReset, isListReset)

	li := css.NewPatch(selListItem)
	w = writer{p: li}
	w.size("font-size", ls.ItemFontSize)
	w.number("line-height", ls.ItemLineHeight)

	return []*css.Patch{ul, ol, li}
}

// parseListReset understands the two values we write: "list-item" restarts
// numbering of every list, "none" keeps numbering running.
func parseListReset(v string) (bool, bool) {
	switch strings.Join(strings.Fields(strings.ToLower(v)), " ") {
	case "list-item", "list-item 0":
		return true, true
	case "none":
		return false, true
	}
	return false, false
}

func formatListReset(reset bool) string {
	if reset {
		return "list-item"
	}
	return "none"
}

func isListReset(v string) bool {
	_, ok := parseListReset(v)
	return ok
}
