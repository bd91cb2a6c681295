package debug

import "testing"

func TestTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}

	tw.Line(0, "Rule[%q]", "h1")
	tw.Line(1, "count: %d", 2)
	tw.TextBlock(2, "color", "red")
	tw.TextBlock(2, "empty", "")
	tw.TextBlock(1, "Comment", "/* a\n\"b\" */")

	want := "Rule[\"h1\"]\n" +
		"  count: 2\n" +
		"    color: \"red\"\n" +
		"    empty: \n" +
		"  Comment: \"/* a\\n\\\"b\\\" */\"\n"
	if got := tw.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}
