package profile

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"cssync/css"
)

// ErrNilProfile is returned by Write when called without a profile.
var ErrNilProfile = errors.New("profile is nil")

// DefaultRootSelector receives the h1 counter reset when level 1 headings are
// numbered.
const DefaultRootSelector = "body"

// Engine reads profiles from stylesheets and writes them back. It holds no
// per-call state and may be used concurrently.
type Engine struct {
	log         *zap.Logger
	parser      *css.Parser
	root        string
	consolidate []string
	formatter   css.Formatter
}

// Option configures Engine.
type Option func(*Engine)

// WithRootSelector sets selector which initializes heading counters.
func WithRootSelector(selector string) Option {
	return func(e *Engine) {
		if selector = css.NormalizeSelector(selector); selector != "" {
			e.root = selector
		}
	}
}

// WithConsolidation replaces list of selectors whose longhand border and
// padding declarations are merged into shorthands after printing. Empty
// list disables the pass.
func WithConsolidation(selectors ...string) Option {
	return func(e *Engine) {
		e.consolidate = slices.Clone(selectors)
	}
}

// WithFormatter replaces the printer. Consolidation only understands output
// of css.Printer.
func WithFormatter(f css.Formatter) Option {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

// NewEngine creates engine with default settings adjusted by opts.
func NewEngine(log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		log:         log.Named("sync"),
		parser:      css.NewParser(log),
		root:        DefaultRootSelector,
		consolidate: []string{selCells},
		formatter:   css.DefaultPrinter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Read parses stylesheet text and builds a profile from every managed
// declaration it recognizes. Empty text yields an empty profile.
func (e *Engine) Read(text []byte) *Profile {
	sheet := e.parser.Parse(text, "read")
	ix := css.NewIndex(sheet)

	p := &Profile{}
	for _, pass := range Passes() {
		p.element(pass, e.root).updateFrom(ix)
	}
	e.log.Debug("Profile read", zap.Int("rules", len(sheet.Rules())), zap.Int("warnings", len(sheet.Warnings)))
	return p
}

// Write synchronizes profile into stylesheet text and returns the new text.
// Unmanaged rules and declarations are preserved, managed ones are
// regenerated from p. The input is never modified.
func (e *Engine) Write(text []byte, p *Profile) ([]byte, error) {
	if p == nil {
		return nil, ErrNilProfile
	}

	sheet := e.parser.Parse(text, "write")
	ix := css.NewIndex(sheet)
	for _, pass := range Passes() {
		patches := p.element(pass, e.root).applyTo()
		for _, patch := range patches {
			ix.Apply(patch)
		}
		if ce := e.log.Check(zap.DebugLevel, "Pass applied"); ce != nil {
			ce.Write(zap.Stringer("pass", pass), zap.Int("patches", len(patches)))
		}
	}
	pruned := ix.Prune()

	var buf bytes.Buffer
	if _, err := e.formatter.Format(&buf, sheet); err != nil {
		return nil, fmt.Errorf("unable to format stylesheet: %w", err)
	}
	out := buf.String()
	if len(e.consolidate) > 0 {
		out = css.Consolidate(out, e.consolidate)
	}
	e.log.Debug("Profile written", zap.Int("pruned", pruned), zap.Int("bytes", len(out)))
	return []byte(out), nil
}

// Tree returns outline of parsed text for debugging.
func (e *Engine) Tree(text []byte) string {
	return e.parser.Parse(text, "tree").Tree()
}

// Managed reports whether selector is one the engine reads or writes.
func (e *Engine) Managed(selector string) bool {
	return slices.Contains(e.managedSelectors(), css.NormalizeSelector(selector))
}

// Unmanaged returns selectors of top-level rules in text which the engine
// never touches, in stylesheet order.
func (e *Engine) Unmanaged(text []byte) []string {
	managed := e.managedSelectors()
	ix := css.NewIndex(e.parser.Parse(text, "unmanaged"))
	var out []string
	for _, sel := range ix.Selectors() {
		if !slices.Contains(managed, sel) {
			out = append(out, sel)
		}
	}
	return out
}

// managedSelectors lists selectors patched by an empty profile, which covers
// every selector any model may write.
func (e *Engine) managedSelectors() []string {
	var (
		p   Profile
		out []string
	)
	for _, pass := range Passes() {
		for _, patch := range p.element(pass, e.root).applyTo() {
			if !slices.Contains(out, patch.Selector) {
				out = append(out, patch.Selector)
			}
		}
	}
	return out
}
