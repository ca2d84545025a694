package msgfmt

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
)

// listIndent is the per-level indentation of nested list renderings.
const listIndent = 2

// renderList renders one line per item, depth-first. A nested list renders
// recursively and every one of its lines is indented by two spaces under the
// parent item. Items join with single newlines and there is no trailing
// newline after the last item.
func (g *Generator) renderList(b *strings.Builder, list *ListNode) error {
	if list == nil {
		return nil
	}
	for i, item := range list.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(listPrefix(list, i))
		for _, el := range item.Content {
			if err := g.renderElement(b, el); err != nil {
				return err
			}
		}
		if item.Nested != nil {
			var nested strings.Builder
			if err := g.renderList(&nested, item.Nested); err != nil {
				return err
			}
			b.WriteByte('\n')
			b.WriteString(indent.String(nested.String(), listIndent))
		}
	}
	return nil
}

func listPrefix(list *ListNode, i int) string {
	switch list.Style {
	case ListNumbered:
		return strconv.Itoa(i+1) + ". "
	case ListCustom:
		return list.Marker + " "
	default:
		return "• "
	}
}
