package msgfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type tableBorders struct {
	topLeft, topJoin, topRight string
	midLeft, midJoin, midRight string
	botLeft, botJoin, botRight string
	dash, sep                  string
}

var unicodeBorders = tableBorders{
	topLeft: "┌", topJoin: "┬", topRight: "┐",
	midLeft: "├", midJoin: "┼", midRight: "┤",
	botLeft: "└", botJoin: "┴", botRight: "┘",
	dash: "─", sep: "│",
}

var asciiBorders = tableBorders{
	topLeft: "+", topJoin: "+", topRight: "+",
	midLeft: "+", midJoin: "+", midRight: "+",
	botLeft: "+", botJoin: "+", botRight: "+",
	dash: "-", sep: "|",
}

// renderTable lays a table out at fixed width inside a code fence so column
// alignment survives proportional-font rendering. One width vector is
// computed per table and reused by every style.
func (g *Generator) renderTable(b *strings.Builder, table *TableNode) error {
	if table == nil {
		return nil
	}
	widths := columnWidths(table)
	switch table.Style {
	case TableASCII:
		renderBorderedTable(b, table, widths, asciiBorders)
	case TableMinimal:
		renderMinimalTable(b, table, widths)
	case TableCompact:
		renderCompactTable(b, table, widths)
	default:
		renderBorderedTable(b, table, widths, unicodeBorders)
	}
	return nil
}

func renderBorderedTable(b *strings.Builder, table *TableNode, widths []int, borders tableBorders) {
	b.WriteString("```\n")
	writeRule(b, widths, borders.topLeft, borders.topJoin, borders.topRight, borders.dash)
	writeRow(b, table.Headers, widths, borders.sep)
	b.WriteByte('\n')
	writeRule(b, widths, borders.midLeft, borders.midJoin, borders.midRight, borders.dash)
	for _, row := range table.Rows {
		writeRow(b, row.Cells, widths, borders.sep)
		b.WriteByte('\n')
	}
	writeRule(b, widths, borders.botLeft, borders.botJoin, borders.botRight, borders.dash)
	b.WriteString("```")
}

func renderMinimalTable(b *strings.Builder, table *TableNode, widths []int) {
	b.WriteString("```\n")
	writeRow(b, table.Headers, widths, " ")
	b.WriteByte('\n')
	for i, w := range widths {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteByte('\n')
	for _, row := range table.Rows {
		writeRow(b, row.Cells, widths, " ")
		b.WriteByte('\n')
	}
	b.WriteString("```")
}

func renderCompactTable(b *strings.Builder, table *TableNode, widths []int) {
	b.WriteString("```\n")
	writeRow(b, table.Headers, widths, " ")
	b.WriteByte('\n')
	for _, row := range table.Rows {
		writeRow(b, row.Cells, widths, " ")
		b.WriteByte('\n')
	}
	b.WriteString("```")
}

func writeRule(b *strings.Builder, widths []int, left, join, right, dash string) {
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(join)
		}
		b.WriteString(strings.Repeat(dash, w+2))
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

// writeRow pads every column to its computed width, filling in empty cells
// when a ragged row is short, so all lines of a table are equally wide.
func writeRow(b *strings.Builder, cells []TableCell, widths []int, sep string) {
	b.WriteString(sep)
	for i, w := range widths {
		var cell TableCell
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		b.WriteString(padCell(cellText(cell), w, cell.Align))
		b.WriteByte(' ')
		b.WriteString(sep)
	}
}

// cellText is the width basis of a cell: the concatenation of its Text
// children. Styled or nested children contribute nothing.
func cellText(cell TableCell) string {
	var b strings.Builder
	for _, el := range cell.Content {
		if el.Kind == KindText {
			b.WriteString(el.Text)
		}
	}
	return b.String()
}

func padCell(content string, width int, align CellAlign) string {
	switch align {
	case AlignRight:
		return runewidth.FillLeft(content, width)
	case AlignCenter:
		gap := width - runewidth.StringWidth(content)
		if gap <= 0 {
			return content
		}
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return runewidth.FillRight(content, width)
	}
}

// columnWidths returns the per-column maximum display width over the header
// and all rows. Missing cells in ragged rows contribute zero.
func columnWidths(table *TableNode) []int {
	cols := len(table.Headers)
	for _, row := range table.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	widths := make([]int, cols)
	measure := func(cells []TableCell) {
		for i, cell := range cells {
			if w := runewidth.StringWidth(cellText(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(table.Headers)
	for _, row := range table.Rows {
		measure(row.Cells)
	}
	return widths
}
