package msgfmt

import (
	"strings"
	"testing"
)

func listItems(texts ...string) []ListItem {
	items := make([]ListItem, len(texts))
	for i, s := range texts {
		items[i] = ListItem{Content: []Element{Text(s)}}
	}
	return items
}

func TestRenderBulletList(t *testing.T) {
	out := render(t, MarkdownV2, List(ListNode{Style: ListBullet, Items: listItems("first", "second")}))
	want := "• first\n• second"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderNumberedList(t *testing.T) {
	out := render(t, MarkdownV2, List(ListNode{Style: ListNumbered, Items: listItems("a", "b", "c")}))
	want := "1. a\n2. b\n3. c"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderCustomMarkerList(t *testing.T) {
	out := render(t, MarkdownV2, List(ListNode{Style: ListCustom, Marker: "→", Items: listItems("go")}))
	want := "→ go"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderNestedList(t *testing.T) {
	nested := &ListNode{Style: ListBullet, Items: listItems("inner")}
	list := ListNode{
		Style: ListBullet,
		Items: []ListItem{
			{Content: []Element{Text("outer")}, Nested: nested},
			{Content: []Element{Text("after")}},
		},
	}
	out := render(t, MarkdownV2, List(list))
	want := "• outer\n  • inner\n• after"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderDeeplyNestedListIndentsPerLevel(t *testing.T) {
	inner := &ListNode{Style: ListBullet, Items: listItems("deep")}
	middle := &ListNode{Style: ListBullet, Items: []ListItem{{Content: []Element{Text("mid")}, Nested: inner}}}
	list := ListNode{Style: ListBullet, Items: []ListItem{{Content: []Element{Text("top")}, Nested: middle}}}
	out := render(t, MarkdownV2, List(list))
	want := "• top\n  • mid\n    • deep"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderListHasNoTrailingNewline(t *testing.T) {
	out := render(t, MarkdownV2, List(ListNode{Style: ListBullet, Items: listItems("only")}))
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("trailing newline in %q", out)
	}
}

func TestRenderListItemContentIsEscaped(t *testing.T) {
	list := ListNode{Style: ListBullet, Items: []ListItem{{Content: []Element{Text("a.b")}}}}
	out := render(t, MarkdownV2, List(list))
	if want := `• a\.b`; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	out = render(t, HTML, List(list))
	if want := "• a.b"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
