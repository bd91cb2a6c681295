package css

import (
	"cssync/utils/debug"
)

// Tree returns a readable outline of the object model. It exists solely for
// debug reports.
func (s *Stylesheet) Tree() string {
	if s == nil {
		return "<nil Stylesheet>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Stylesheet: %d items, %d warnings", len(s.Items), len(s.Warnings))
	treeItems(tw, s.Items, 1)
	for _, w := range s.Warnings {
		tw.TextBlock(1, "Warning", w)
	}
	return tw.String()
}

func treeItems(tw *debug.TreeWriter, items []Item, depth int) {
	for _, item := range items {
		switch {
		case item.Rule != nil:
			tw.Line(depth, "Rule[%q] declarations[%d]", item.Rule.Selector, len(item.Rule.Declarations))
			treeDeclarations(tw, item.Rule.Declarations, depth+1)
		case item.AtRule != nil:
			at := item.AtRule
			tw.Line(depth, "AtRule[%s] prelude[%q] block[%t]", at.Name, at.Prelude, at.HasBlock)
			treeDeclarations(tw, at.Declarations, depth+1)
			treeItems(tw, at.Items, depth+1)
			if at.Raw != "" {
				tw.TextBlock(depth+1, "Raw", at.Raw)
			}
		case item.Comment != nil:
			tw.TextBlock(depth, "Comment", *item.Comment)
		}
	}
}

func treeDeclarations(tw *debug.TreeWriter, decls []Declaration, depth int) {
	for _, d := range decls {
		tw.TextBlock(depth, d.Property, d.String()[len(d.Property)+2:])
	}
}
