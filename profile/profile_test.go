package profile

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cssync/codec"
	"cssync/css"
)

func index(t *testing.T, src string) *css.Index {
	t.Helper()
	return css.NewIndex(css.NewParser(nil).Parse([]byte(src)))
}

func TestBlockquote_ReadsShorthandBorder(t *testing.T) {
	var b Blockquote
	b.updateFrom(index(t, `blockquote { border-left: 3px solid #ccc; border-left-color: red; }
blockquote::before { content: '❝'; display: block; }`))

	if b.Border.Width == nil || *b.Border.Width != codec.Px(3) {
		t.Errorf("unexpected width %+v", b.Border.Width)
	}
	if b.Border.Color == nil || *b.Border.Color != codec.RGB(255, 0, 0) {
		t.Errorf("longhand must override shorthand color, got %+v", b.Border.Color)
	}
	if b.Icon == nil || *b.Icon != "❝" {
		t.Errorf("unexpected icon %v", b.Icon)
	}
}

func TestBlockquote_IconRemoval(t *testing.T) {
	e := NewEngine(nil)

	p := &Profile{}
	p.Blockquote.Icon = ptr("❝")
	out := write(t, e, "", p)
	if want := "blockquote::before {\n  content: \"❝\";\n  display: block;\n}\n"; out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}

	p.Blockquote.Icon = nil
	if out = write(t, e, out, p); out != "" {
		t.Errorf("icon rule must disappear, got:\n%s", out)
	}
}

func TestList_ResetNumbering(t *testing.T) {
	tests := []struct {
		src  string
		want *bool
	}{
		{"ol { counter-reset: list-item; }", ptr(true)},
		{"ol { counter-reset: none; }", ptr(false)},
		{"ol { counter-reset: chapter 2; }", nil},
	}
	for _, tt := range tests {
		var l List
		l.updateFrom(index(t, tt.src))
		if (l.ResetNumbering == nil) != (tt.want == nil) || (l.ResetNumbering != nil && *l.ResetNumbering != *tt.want) {
			t.Errorf("%s: got %v, want %v", tt.src, l.ResetNumbering, tt.want)
		}
	}
}

func TestList_IndentOnBothLists(t *testing.T) {
	l := List{Indent: size(codec.Em(2))}
	patches := l.applyTo()

	for _, p := range patches[:2] {
		found := false
		for _, d := range p.Sets() {
			if d.Property == "padding-left" && d.Value == "2em" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected padding-left on %s", p.Selector)
		}
	}
}

func TestFootnote_BracketsNeedBothSides(t *testing.T) {
	var f Footnote
	f.updateFrom(index(t, `.footnote-ref::before { content: "["; } .footnote-ref::after { content: ")"; }`))
	if f.Brackets != nil {
		t.Errorf("mismatched brackets must not be recognized, got %v", *f.Brackets)
	}

	f = Footnote{}
	f.updateFrom(index(t, `.footnote-ref::before { content: none; } .footnote-ref::after { content: ""; }`))
	if f.Brackets == nil || *f.Brackets {
		t.Errorf("expected brackets off, got %v", f.Brackets)
	}
}

func TestNumbering_ReadOnlyCountsOwnCounter(t *testing.T) {
	var n Numbering
	n.updateFrom(index(t, `h1 { counter-increment: h1; } h2 { counter-increment: section; } h4 { counter-increment: h4 2; }`))
	if want := (Numbering{true, false, false, true}); n != want {
		t.Errorf("got %v, want %v", n, want)
	}
}

func TestNumbering_Content(t *testing.T) {
	tests := map[int]string{
		1: `counter(h1) ". "`,
		3: `counter(h1) "." counter(h2) "." counter(h3) ". "`,
	}
	for level, want := range tests {
		got := numberingContent(level)
		if got != want {
			t.Errorf("numberingContent(%d) = %s, want %s", level, got, want)
		}
		if !isNumberingContent(got) {
			t.Errorf("generated content %s must be recognized", got)
		}
	}
	if isNumberingContent(`"§ " counter(h2)`) {
		t.Error("foreign content must not be recognized")
	}
}

func TestNumbering_YAML(t *testing.T) {
	var p Profile
	if err := yaml.Unmarshal([]byte("numbering: [1, 3]\n"), &p); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if want := (Numbering{true, false, true}); p.Numbering != want {
		t.Errorf("got %v, want %v", p.Numbering, want)
	}
	if got := p.Numbering.Levels(); len(got) != 2 || got[1] != 3 {
		t.Errorf("unexpected levels %v", got)
	}

	out, err := yaml.Marshal(&p)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var back Profile
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() of own output error: %v\n%s", err, out)
	}
	if back.Numbering != p.Numbering {
		t.Errorf("numbering changed after YAML round trip: %v", back.Numbering)
	}

	if err := yaml.Unmarshal([]byte("numbering: [7]\n"), &p); err == nil {
		t.Error("level 7 must be rejected")
	}

	out, err = yaml.Marshal(&Profile{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(out), "numbering") {
		t.Errorf("empty numbering must be omitted:\n%s", out)
	}
}

func TestProfile_YAMLRoundTrip(t *testing.T) {
	want := fullProfile()
	out, err := yaml.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got Profile
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v\n%s", err, out)
	}

	e := NewEngine(nil)
	if a, b := write(t, e, "", want), write(t, e, "", &got); a != b {
		t.Errorf("profile changed after YAML round trip\nbefore:\n%s\nafter:\n%s", a, b)
	}
}

func TestHeadings_YAML(t *testing.T) {
	var p Profile
	src := "headings:\n  h2:\n    color: red\n    bold: true\n  h5:\n    font_size: 1.2em\n"
	if err := yaml.Unmarshal([]byte(src), &p); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if p.Heading(2).Color == nil || p.Heading(2).Bold == nil || !*p.Heading(2).Bold {
		t.Errorf("h2 not decoded: %+v", p.Heading(2))
	}
	if p.Heading(5).FontSize == nil || p.Heading(5).FontSize.String() != "1.2em" {
		t.Errorf("h5 not decoded: %+v", p.Heading(5))
	}
	if *p.Heading(1) != (Heading{}) {
		t.Errorf("h1 must stay empty: %+v", p.Heading(1))
	}

	out, err := yaml.Marshal(&p)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(out), "h1:") || !strings.Contains(string(out), "h2:") || !strings.Contains(string(out), "h5:") {
		t.Errorf("only set headings must be stored:\n%s", out)
	}

	for _, bad := range []string{
		"headings:\n  h7:\n    color: red\n",
		"headings:\n  h1:\n    colour: red\n",
		"headings:\n  - color: red\n",
	} {
		if err := yaml.Unmarshal([]byte(bad), &p); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}

	out, err = yaml.Marshal(&Profile{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(out), "headings") {
		t.Errorf("empty headings must be omitted:\n%s", out)
	}
}

func TestProfile_Validate(t *testing.T) {
	if err := fullProfile().Validate(); err != nil {
		t.Errorf("full profile must be valid: %v", err)
	}

	p := &Profile{}
	p.Heading(2).TextAlign = ptr("middle")
	p.Table.CellPadding = size(codec.Px(-1))
	p.List.BulletStyle = ptr("star")
	p.Footnote.Separator.Style = ptr("wavy")

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	errs := multierr.Errors(err)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), err)
	}
	for _, want := range []string{"headings.h2.text_align", "table.cell_padding", "list.bullet_style", "footnote.separator.style"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestProfile_ValidateFields(t *testing.T) {
	tests := []struct {
		name string
		set  func(p *Profile)
		want string
	}{
		{"keyword case", func(p *Profile) { p.Title.TextAlign = ptr(" CENTER ") }, ""},
		{"none size", func(p *Profile) { p.Body.FontSize = size(codec.Size{Value: -5}) }, ""},
		{"empty keyword", func(p *Profile) { p.Table.CellAlign = ptr("") }, "table.cell_align"},
		{"number style", func(p *Profile) { p.List.NumberStyle = ptr("klingon") }, "list.number_style"},
		{"line height", func(p *Profile) { p.Footnote.LineHeight = ptr(-1.5) }, "footnote.line_height: negative value -1.5"},
		{"font family", func(p *Profile) { p.Code.Block.FontFamily = ptr(" , ") }, "code.block.font_family: empty font family"},
		{"heading size", func(p *Profile) { p.Heading(6).FontSize = size(codec.Em(-1)) }, "headings.h6.font_size"},
		{"border width", func(p *Profile) { p.Blockquote.Border.Width = size(codec.Px(-2)) }, "blockquote.border.width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{}
			tt.set(p)
			err := p.Validate()
			switch {
			case tt.want == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tt.want != "" && err == nil:
				t.Errorf("expected %q error", tt.want)
			case tt.want != "" && !strings.Contains(err.Error(), tt.want):
				t.Errorf("expected %q in %v", tt.want, err)
			}
		})
	}
}

func TestProfile_HeadingOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var p Profile
	p.Heading(7)
}
