package msgfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, input string, opts ...ParseOption) []Element {
	t.Helper()
	elements, err := Parse(input, opts...)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return elements
}

func TestParseSimpleText(t *testing.T) {
	got := mustParse(t, "Hello, world!")
	want := []Element{Text("Hello, world!")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStrongAndWeakDelimiters(t *testing.T) {
	cases := []struct {
		input string
		want  []Element
	}{
		{"**bold text**", []Element{Bold(Text("bold text"))}},
		{"*italic text*", []Element{Italic(Text("italic text"))}},
		{"__underlined__", []Element{Underline(Text("underlined"))}},
		{"_italic_", []Element{Italic(Text("italic"))}},
		{"~~struck~~", []Element{Strikethrough(Text("struck"))}},
		{"~spoiler~", []Element{Spoiler(Text("spoiler"))}},
	}
	for _, tc := range cases {
		got := mustParse(t, tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseNestedStyles(t *testing.T) {
	got := mustParse(t, "**bold and _italic_ inside**")
	want := []Element{Bold(
		Text("bold and "),
		Italic(Text("italic")),
		Text(" inside"),
	)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInlineCode(t *testing.T) {
	got := mustParse(t, "run `make all` now")
	want := []Element{Text("run "), Code("make all"), Text(" now")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyDoubleBacktickIsEmptyCode(t *testing.T) {
	got := mustParse(t, "``")
	want := []Element{Code("")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePreBlockWithLanguage(t *testing.T) {
	got := mustParse(t, "```go\nfmt.Println(42)\n```")
	want := []Element{Pre("fmt.Println(42)\n", "go")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePreBlockWithoutLanguage(t *testing.T) {
	got := mustParse(t, "```\nx = 1\n```")
	want := []Element{Pre("\nx = 1\n", "")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePreBlockKeepsEmbeddedBackticks(t *testing.T) {
	got := mustParse(t, "```sh\necho `date`\n```")
	want := []Element{Pre("echo `date`\n", "sh")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLink(t *testing.T) {
	got := mustParse(t, "[docs](https://example.com/path_v2)")
	want := []Element{Link([]Element{Text("docs")}, "https://example.com/path_v2")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLinkWithStyledLabel(t *testing.T) {
	got := mustParse(t, "[**bold** label](https://example.com)")
	want := []Element{Link([]Element{
		Bold(Text("bold")),
		Text(" label"),
	}, "https://example.com")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEntities(t *testing.T) {
	got := mustParse(t, "Hello @durov #news /start")
	want := []Element{
		Text("Hello "),
		Mention("durov"),
		Text(" "),
		Hashtag("news"),
		Text(" "),
		Command("start"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEscapedDelimiters(t *testing.T) {
	got := mustParse(t, `\*not bold\*`)
	want := []Element{Text("*"), Text("not bold"), Text("*")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLineBreak(t *testing.T) {
	got := mustParse(t, "one\ntwo")
	want := []Element{Text("one"), Text("\n"), Text("two")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnterminatedConstructs(t *testing.T) {
	for _, input := range []string{
		"*unterminated",
		"**unterminated",
		"_unterminated",
		"__unterminated",
		"~unterminated",
		"~~unterminated",
		"`unterminated",
		"```unterminated",
		"[unterminated",
		"[label](https://example.com",
	} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("Parse(%q) should fail", input)
		}
	}
}

func TestParseUnterminatedReportsParseError(t *testing.T) {
	_, err := Parse("*unterminated")
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if !strings.Contains(perr.Error(), "unclosed") {
		t.Fatalf("unexpected message: %v", perr)
	}
}

func TestParseMaxDepth(t *testing.T) {
	input := "*_~deep~_*"
	if _, err := Parse(input); err != nil {
		t.Fatalf("default depth should allow %q: %v", input, err)
	}
	if _, err := Parse(input, WithMaxDepth(2)); err == nil {
		t.Fatalf("WithMaxDepth(2) should reject %q", input)
	}
	if _, err := Parse(input, WithMaxDepth(0)); err != nil {
		t.Fatalf("WithMaxDepth(0) should disable the limit: %v", err)
	}
}

func TestParseStrayStructuralTokensDegradeToEmptyText(t *testing.T) {
	got := mustParse(t, "a | b")
	want := []Element{Text("a "), Text(""), Text(" b")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}
