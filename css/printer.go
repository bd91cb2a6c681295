package css

import (
	"fmt"
	"io"
	"strings"
)

// Formatter serializes a stylesheet. The object model has no opinion on
// whitespace, all of it is decided here.
type Formatter interface {
	Format(w io.Writer, s *Stylesheet) (int64, error)
}

// Printer is the deterministic formatter: Indent per nesting level, one
// declaration per line, exactly one blank line between items and no output
// at all for rules without declarations.
type Printer struct {
	Indent string
}

// DefaultPrinter indents with two spaces.
var DefaultPrinter = Printer{Indent: "  "}

// WriteTo writes the stylesheet to w using DefaultPrinter, implementing
// io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	return DefaultPrinter.Format(w, s)
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// Format implements Formatter.
func (p Printer) Format(w io.Writer, s *Stylesheet) (int64, error) {
	cw := &countingWriter{w: w}
	p.writeItems(cw, s.Items, 0)
	return cw.n, cw.err
}

func (p Printer) writeItems(w *countingWriter, items []Item, depth int) {
	first := true
	for _, item := range items {
		if !printable(item) {
			continue
		}
		if !first {
			w.printf("\n")
		}
		first = false

		switch {
		case item.Comment != nil:
			w.printf("%s%s\n", p.indent(depth), *item.Comment)
		case item.Rule != nil:
			p.writeRule(w, item.Rule, depth)
		case item.AtRule != nil:
			p.writeAtRule(w, item.AtRule, depth)
		}
	}
}

func (p Printer) writeRule(w *countingWriter, rule *Rule, depth int) {
	w.printf("%s%s {\n", p.indent(depth), rule.Selector)
	p.writeDeclarations(w, rule.Declarations, depth+1)
	w.printf("%s}\n", p.indent(depth))
}

func (p Printer) writeAtRule(w *countingWriter, at *AtRule, depth int) {
	head := at.Name
	if at.Prelude != "" {
		head += " " + at.Prelude
	}
	if !at.HasBlock {
		w.printf("%s%s;\n", p.indent(depth), head)
		return
	}
	w.printf("%s%s {\n", p.indent(depth), head)
	if at.Raw != "" {
		w.printf("%s%s\n", p.indent(depth+1), at.Raw)
	}
	p.writeDeclarations(w, at.Declarations, depth+1)
	if len(at.Declarations) > 0 && hasPrintable(at.Items) {
		w.printf("\n")
	}
	p.writeItems(w, at.Items, depth+1)
	w.printf("%s}\n", p.indent(depth))
}

func (p Printer) writeDeclarations(w *countingWriter, decls []Declaration, depth int) {
	for _, d := range decls {
		w.printf("%s%s;\n", p.indent(depth), d.String())
	}
}

func (p Printer) indent(depth int) string {
	return strings.Repeat(p.Indent, depth)
}

// printable reports whether an item produces any output. Empty rules are
// dropped, at-rules are kept even when empty since their prelude may matter.
func printable(item Item) bool {
	switch {
	case item.Rule != nil:
		return !item.Rule.Empty()
	case item.AtRule != nil, item.Comment != nil:
		return true
	}
	return false
}

func hasPrintable(items []Item) bool {
	for _, item := range items {
		if printable(item) {
			return true
		}
	}
	return false
}

// countingWriter remembers the first error and the number of bytes written so
// printing code does not have to check every call.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}
	n, err := fmt.Fprintf(cw.w, format, args...)
	cw.n += int64(n)
	cw.err = err
}
