package css

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// maxRecoveries limits how many broken fragments a single parse will step
// over before giving up on the rest of the input.
const maxRecoveries = 1000

// Parser parses CSS stylesheets into the mutable object model.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. It never fails: fragments the
// tokenizer cannot make sense of are kept as inert comments and reported in
// Warnings. The optional source parameter identifies what's being parsed
// (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]Item, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return sheet
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	st := &parseState{sheet: sheet, src: input.Bytes()}
	sheet.Items = p.parseBlock(parser, st, false).items
	return sheet
}

type parseState struct {
	sheet      *Stylesheet
	src        []byte
	recoveries int
}

// block is content of the stylesheet or of a block at-rule.
type block struct {
	items []Item
	decls []Declaration
	raw   strings.Builder // body of at-rules the tokenizer does not know
}

// parseBlock collects items and declarations until the end of input or, for
// nested blocks, until the closing brace of the enclosing at-rule.
func (p *Parser) parseBlock(parser *css.Parser, st *parseState, nested bool) *block {
	var (
		b         = &block{}
		selectors []string
		selStart  int
	)

	for {
		start := parser.Offset()
		gt, _, data := parser.Next()
		raw := rawText(st.src, start, parser.Offset())

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || errors.Is(err, io.EOF) {
				return b
			}
			var perr *parse.Error
			if !errors.As(err, &perr) || st.recoveries >= maxRecoveries {
				p.log.Debug("CSS parse error, stopping", zap.Error(err))
				st.sheet.Warnings = append(st.sheet.Warnings, "parsing stopped: "+err.Error())
				return b
			}
			st.recoveries++
			st.sheet.Warnings = append(st.sheet.Warnings, err.Error())
			p.log.Debug("CSS parse error, recovering", zap.Error(err))
			if raw := strings.TrimSpace(string(data) + tokensText(parser.Values())); raw != "" {
				c := "/* " + strings.ReplaceAll(raw, "*/", "* /") + " */"
				b.items = append(b.items, Item{Comment: &c})
			}

		case css.EndAtRuleGrammar:
			if nested {
				return b
			}

		case css.EndRulesetGrammar:
			// declarations are consumed by parseDeclarations

		case css.CommentGrammar:
			c := string(data)
			b.items = append(b.items, Item{Comment: &c})

		case css.AtRuleGrammar:
			// Statement @-rule (@import, @charset, @namespace)
			at := &AtRule{Name: strings.ToLower(string(data))}
			at.Prelude = prelude(raw, at.Name, parser.Values())
			p.log.Debug("Parsed @-rule", zap.String("rule", at.Name))
			b.items = append(b.items, Item{AtRule: at})

		case css.BeginAtRuleGrammar:
			at := &AtRule{Name: strings.ToLower(string(data)), HasBlock: true}
			at.Prelude = prelude(raw, at.Name, parser.Values())
			body := p.parseBlock(parser, st, true)
			at.Items, at.Declarations, at.Raw = body.items, body.decls, strings.TrimSpace(body.raw.String())
			p.log.Debug("Parsed @-rule block", zap.String("rule", at.Name),
				zap.Int("items", len(at.Items)), zap.Int("declarations", len(at.Declarations)))
			b.items = append(b.items, Item{AtRule: at})

		case css.QualifiedRuleGrammar:
			// one part of a comma separated selector list, the rest follows
			if len(selectors) == 0 {
				selStart = start
			}
			selectors = append(selectors, selectorText(data, parser.Values()))

		case css.BeginRulesetGrammar:
			if len(selectors) == 0 {
				selStart = start
			}
			selectors = append(selectors, selectorText(data, parser.Values()))
			sel := rawText(st.src, selStart, parser.Offset())
			if sel == "" || strings.Contains(sel, "/*") {
				sel = strings.Join(selectors, ",")
			}
			rule := &Rule{Selector: NormalizeSelector(sel)}
			rule.Declarations = p.parseDeclarations(parser, st.src)
			b.items = append(b.items, Item{Rule: rule})
			selectors = nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			// declaration-list @-rules such as @font-face and @page
			if d, ok := declaration(data, parser.Values(), raw); ok {
				b.decls = append(b.decls, d)
			}

		case css.TokenGrammar:
			if nested {
				b.raw.Write(data)
			}
		}
	}
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser, src []byte) []Declaration {
	decls := make([]Declaration, 0)

	for {
		start := parser.Offset()
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			var perr *parse.Error
			if err != nil && errors.As(err, &perr) {
				// bad declaration, tokenizer resynchronizes on the next semicolon
				p.log.Debug("Skipping malformed declaration", zap.Error(err))
				continue
			}
			return decls

		case css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if d, ok := declaration(data, parser.Values(), rawText(src, start, parser.Offset())); ok {
				decls = append(decls, d)
			}
		}
	}
}

// declaration converts name and value tokens into a Declaration, splitting
// off a trailing "!important". Value is taken from raw source text of the
// declaration when it agrees with the tokens, tokenizer drops whitespace
// around commas, slashes and colons.
func declaration(name []byte, tokens []css.Token, raw string) (Declaration, bool) {
	prop := normalizeProperty(string(name))
	if prop == "" {
		return Declaration{}, false
	}

	tokens = trimWhitespaceTokens(tokens)
	important := false
	if n := len(tokens); n >= 2 &&
		tokens[n-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[n-1].Data), "important") {
		rest := trimWhitespaceTokens(tokens[:n-1])
		if m := len(rest); m > 0 && rest[m-1].TokenType == css.DelimToken && string(rest[m-1].Data) == "!" {
			important = true
			tokens = rest[:m-1]
		}
	}

	value := strings.TrimSpace(tokensText(tokens))
	if value == "" {
		return Declaration{}, false
	}
	if v, ok := rawValue(raw, prop, important); ok {
		value = v
	}
	return Declaration{Property: prop, Value: value, Important: important}, true
}

var importantSuffix = regexp.MustCompile(`(?i)!\s*important$`)

// rawValue extracts value of prop from source text "prop: value !important".
// Text with comments is not used.
func rawValue(raw, prop string, important bool) (string, bool) {
	name, value, ok := strings.Cut(raw, ":")
	if !ok || normalizeProperty(name) != prop || strings.Contains(value, "/*") {
		return "", false
	}
	value = strings.TrimSpace(value)
	if loc := importantSuffix.FindStringIndex(value); loc != nil {
		if !important {
			return "", false
		}
		value = strings.TrimSpace(value[:loc[0]])
	} else if important {
		return "", false
	}
	return value, value != ""
}

// prelude returns at-rule prelude as written, tokens are the fallback.
func prelude(raw, name string, tokens []css.Token) string {
	if len(raw) >= len(name) && strings.EqualFold(raw[:len(name)], name) && !strings.Contains(raw, "/*") {
		return strings.TrimSpace(raw[len(name):])
	}
	return tokensText(tokens)
}

// rawText returns source consumed between start and end without leading
// whitespace, comments and stray semicolons and without the terminating
// semicolon or brace.
func rawText(src []byte, start, end int) string {
	if start < 0 || end > len(src) || start >= end {
		return ""
	}
	s := string(src[start:end])
	for {
		s = strings.TrimLeft(s, " \t\r\n\f;")
		if !strings.HasPrefix(s, "/*") {
			break
		}
		i := strings.Index(s[2:], "*/")
		if i < 0 {
			return ""
		}
		s = s[i+4:]
	}
	s = strings.TrimRight(s, " \t\r\n\f")
	if n := len(s); n > 0 && (s[n-1] == ';' || s[n-1] == '{' || s[n-1] == '}') {
		s = s[:n-1]
	}
	return strings.TrimSpace(s)
}

func trimWhitespaceTokens(tokens []css.Token) []css.Token {
	for len(tokens) > 0 && tokens[len(tokens)-1].TokenType == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 0 && tokens[0].TokenType == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	return tokens
}

// tokensText rebuilds source text from tokens collapsing whitespace runs into
// single spaces.
func tokensText(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(t.Data)
	}
	return sb.String()
}

// selectorText builds full selector string from token data and values.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	sb.WriteString(tokensText(values))
	return strings.TrimSpace(sb.String())
}
