package msgfmt

// ElementKind discriminates the closed set of document node variants.
type ElementKind uint8

const (
	// KindText is a literal text run, escaped per dialect on output.
	KindText ElementKind = iota
	// KindBold wraps children in the strong emphasis style.
	KindBold
	// KindItalic wraps children in the weak emphasis style.
	KindItalic
	// KindUnderline wraps children in the underline style.
	KindUnderline
	// KindStrikethrough wraps children in the strikethrough style.
	KindStrikethrough
	// KindSpoiler wraps children in the spoiler style.
	KindSpoiler
	// KindCode is inline code; Text holds the verbatim content.
	KindCode
	// KindPre is a preformatted block; Text holds the code, Name an
	// optional language tag.
	KindPre
	// KindLink wraps parsed children and a URL.
	KindLink
	// KindTextLink wraps a flat text label and a URL.
	KindTextLink
	// KindMention is `@username`; Name holds the username.
	KindMention
	// KindMentionID links a display text to a numeric user id.
	KindMentionID
	// KindHashtag is `#tag`; Text holds the tag.
	KindHashtag
	// KindCommand is `/name` with optional arguments.
	KindCommand
	// KindEmoji is a plain emoji rendered verbatim.
	KindEmoji
	// KindCustomEmoji pairs a display emoji with a numeric id.
	KindCustomEmoji
	// KindList is a bullet, numbered, or custom-marker list.
	KindList
	// KindTable is a fixed-width table.
	KindTable
	// KindQuote wraps children in a blockquote.
	KindQuote
	// KindCustom defers rendering to a registered formatter by name.
	KindCustom
	// KindGroup splices its children with no rendering of its own.
	KindGroup
)

// Element is one node of the document tree. The variant set is closed;
// Kind selects which fields are meaningful. Elements are plain values and
// are never mutated after construction.
type Element struct {
	Kind     ElementKind
	Text     string
	Name     string
	URL      string
	Args     []string
	ID       uint64
	Children []Element
	List     *ListNode
	Table    *TableNode
}

// ListStyle selects the item marker of a list.
type ListStyle uint8

const (
	// ListBullet prefixes items with a bullet.
	ListBullet ListStyle = iota
	// ListNumbered prefixes items with a 1-based index.
	ListNumbered
	// ListCustom prefixes items with the node's Marker string.
	ListCustom
)

// ListNode is an ordered sequence of items with a shared marker style.
type ListNode struct {
	Style  ListStyle
	Marker string
	Items  []ListItem
}

// ListItem is item content plus an optional nested list.
type ListItem struct {
	Content []Element
	Nested  *ListNode
}

// CellAlign is the horizontal alignment of a table cell.
type CellAlign uint8

const (
	// AlignLeft pads content on the right.
	AlignLeft CellAlign = iota
	// AlignCenter splits padding, extra space on the right.
	AlignCenter
	// AlignRight pads content on the left.
	AlignRight
)

// TableStyle selects one of the four table border styles.
type TableStyle uint8

const (
	// TableUnicode draws box-drawing borders.
	TableUnicode TableStyle = iota
	// TableASCII draws `+`/`-` borders.
	TableASCII
	// TableMinimal has no borders and a dash separator under the header.
	TableMinimal
	// TableCompact has no borders and no separator.
	TableCompact
)

// TableNode is a header row, data rows, a border style, and conditional
// format rules. Rules are carried as data; the layout algorithm does not
// consult them.
type TableNode struct {
	Headers []TableCell
	Rows    []TableRow
	Style   TableStyle
	Rules   []ConditionalFormat
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell is cell content with alignment and span hints. Colspan and
// Rowspan are stored but the layout treats every span as 1.
type TableCell struct {
	Content []Element
	Align   CellAlign
	Colspan int
	Rowspan int
}

// NewTableCell returns a left-aligned cell with spans of 1.
func NewTableCell(content ...Element) TableCell {
	return TableCell{Content: content, Align: AlignLeft, Colspan: 1, Rowspan: 1}
}

// Text returns a literal text node.
func Text(s string) Element {
	return Element{Kind: KindText, Text: s}
}

// Bold wraps children in the strong emphasis style.
func Bold(children ...Element) Element {
	return Element{Kind: KindBold, Children: children}
}

// Italic wraps children in the weak emphasis style.
func Italic(children ...Element) Element {
	return Element{Kind: KindItalic, Children: children}
}

// Underline wraps children in the underline style.
func Underline(children ...Element) Element {
	return Element{Kind: KindUnderline, Children: children}
}

// Strikethrough wraps children in the strikethrough style.
func Strikethrough(children ...Element) Element {
	return Element{Kind: KindStrikethrough, Children: children}
}

// Spoiler wraps children in the spoiler style.
func Spoiler(children ...Element) Element {
	return Element{Kind: KindSpoiler, Children: children}
}

// Code returns an inline code node with verbatim content.
func Code(code string) Element {
	return Element{Kind: KindCode, Text: code}
}

// Pre returns a preformatted block; language may be empty.
func Pre(code, language string) Element {
	return Element{Kind: KindPre, Text: code, Name: language}
}

// Link returns a link whose label is a parsed child sequence.
func Link(children []Element, url string) Element {
	return Element{Kind: KindLink, Children: children, URL: url}
}

// TextLink returns a link with a flat text label.
func TextLink(text, url string) Element {
	return Element{Kind: KindTextLink, Text: text, URL: url}
}

// Mention returns an `@username` node.
func Mention(username string) Element {
	return Element{Kind: KindMention, Name: username}
}

// MentionID returns a mention that links display text to a numeric user id.
func MentionID(id uint64, text string) Element {
	return Element{Kind: KindMentionID, ID: id, Text: text}
}

// Hashtag returns a `#tag` node.
func Hashtag(tag string) Element {
	return Element{Kind: KindHashtag, Text: tag}
}

// Command returns a `/name` node with optional arguments.
func Command(name string, args ...string) Element {
	return Element{Kind: KindCommand, Name: name, Args: args}
}

// Emoji returns a plain emoji node rendered verbatim.
func Emoji(emoji string) Element {
	return Element{Kind: KindEmoji, Text: emoji}
}

// CustomEmoji returns an emoji node carrying a numeric id.
func CustomEmoji(emoji string, id uint64) Element {
	return Element{Kind: KindCustomEmoji, Text: emoji, ID: id}
}

// List returns a list node element.
func List(list ListNode) Element {
	return Element{Kind: KindList, List: &list}
}

// Table returns a table node element.
func Table(table TableNode) Element {
	return Element{Kind: KindTable, Table: &table}
}

// Quote wraps children in a blockquote.
func Quote(children ...Element) Element {
	return Element{Kind: KindQuote, Children: children}
}

// Custom returns a node rendered by the named registered formatter.
func Custom(formatter, value string) Element {
	return Element{Kind: KindCustom, Name: formatter, Text: value}
}

// Group splices elements where a single node is expected. Nested groups are
// flattened eagerly so a group never contains another group.
func Group(children ...Element) Element {
	return Element{Kind: KindGroup, Children: Flatten(children)}
}

// Flatten expands any group elements in-place into the surrounding sequence.
func Flatten(elements []Element) []Element {
	flat := true
	for _, el := range elements {
		if el.Kind == KindGroup {
			flat = false
			break
		}
	}
	if flat {
		return elements
	}
	out := make([]Element, 0, len(elements))
	for _, el := range elements {
		if el.Kind == KindGroup {
			out = append(out, Flatten(el.Children)...)
			continue
		}
		out = append(out, el)
	}
	return out
}

// Clone returns a deep copy sharing no slices with the receiver, so the copy
// can be appended into another tree without mutation hazards.
func (e Element) Clone() Element {
	out := e
	if e.Args != nil {
		out.Args = append([]string(nil), e.Args...)
	}
	out.Children = cloneElements(e.Children)
	if e.List != nil {
		list := e.List.clone()
		out.List = &list
	}
	if e.Table != nil {
		table := e.Table.clone()
		out.Table = &table
	}
	return out
}

// CloneAll deep-copies a sequence of elements.
func CloneAll(elements []Element) []Element {
	return cloneElements(elements)
}

func cloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	for i, el := range elements {
		out[i] = el.Clone()
	}
	return out
}

func (l ListNode) clone() ListNode {
	out := l
	if l.Items != nil {
		out.Items = make([]ListItem, len(l.Items))
		for i, item := range l.Items {
			out.Items[i] = ListItem{Content: cloneElements(item.Content)}
			if item.Nested != nil {
				nested := item.Nested.clone()
				out.Items[i].Nested = &nested
			}
		}
	}
	return out
}

func (t TableNode) clone() TableNode {
	out := t
	if t.Headers != nil {
		out.Headers = cloneCells(t.Headers)
	}
	if t.Rows != nil {
		out.Rows = make([]TableRow, len(t.Rows))
		for i, row := range t.Rows {
			out.Rows[i] = TableRow{Cells: cloneCells(row.Cells)}
		}
	}
	if t.Rules != nil {
		out.Rules = append([]ConditionalFormat(nil), t.Rules...)
	}
	return out
}

func cloneCells(cells []TableCell) []TableCell {
	out := make([]TableCell, len(cells))
	for i, cell := range cells {
		out[i] = cell
		out[i].Content = cloneElements(cell.Content)
	}
	return out
}
