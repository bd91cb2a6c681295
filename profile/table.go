package profile

import (
	"strings"

	"cssync/codec"
	"cssync/css"
)

// Table styles tables, their cells and header cells.
type Table struct {
	Collapse         *bool        `yaml:"collapse,omitempty"`
	CellBorder       codec.Border `yaml:"cell_border,omitempty"`
	CellPadding      *codec.Size  `yaml:"cell_padding,omitempty" validate:"omitnil,gte=0"`
	CellFontSize     *codec.Size  `yaml:"cell_font_size,omitempty" validate:"omitnil,gte=0"`
	CellAlign        *string      `yaml:"cell_align,omitempty" validate:"omitnil,text_align"`
	HeaderBackground *codec.Color `yaml:"header_background,omitempty"`
	HeaderColor      *codec.Color `yaml:"header_color,omitempty"`
}

const (
	selTable  = "table"
	selCells  = "th, td"
	selHeader = "th"
)

func (t *Table) updateFrom(l css.Lookup) {
	r := reader{l: l, sel: selTable}
	r.flag("border-collapse", parseCollapse, &t.Collapse)

	r = reader{l: l, sel: selCells}
	r.border("border", codec.UnitPx, &t.CellBorder)
	r.size("padding", codec.UnitPx, &t.CellPadding)
	r.size("font-size", codec.UnitPx, &t.CellFontSize)
	r.keyword("text-align", codec.TextAligns, &t.CellAlign)

	r = reader{l: l, sel: selHeader}
	r.color("background-color", &t.HeaderBackground)
	r.color("color", &t.HeaderColor)
}

// applyTo always writes cell border as longhands, they are merged into a
// single border declaration after printing.
func (t *Table) applyTo() []*css.Patch {
	tbl := css.NewPatch(selTable)
	w := writer{p: tbl}
	w.flag("border-collapse", t.Collapse, formatCollapse, codec.BorderCollapse.Contains)

	cells := css.NewPatch(selCells)
	w = writer{p: cells}
	w.border("border", t.CellBorder, codec.FormatHex, true)
	w.size("padding", t.CellPadding)
	w.size("font-size", t.CellFontSize)
	w.keyword("text-align", t.CellAlign, codec.TextAligns)

	th := css.NewPatch(selHeader)
	w = writer{p: th}
	w.color("background-color", t.HeaderBackground, codec.FormatHex)
	w.color("color", t.HeaderColor, codec.FormatHex)

	return []*css.Patch{tbl, cells, th}
}

func parseCollapse(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "collapse":
		return true, true
	case "separate":
		return false, true
	}
	return false, false
}

func formatCollapse(collapse bool) string {
	if collapse {
		return "collapse"
	}
	return "separate"
}
