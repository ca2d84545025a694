package msgfmt

import (
	"fmt"
	"io"
	"strings"
)

// Dialect is a target output markup language. The set is closed; every
// generator branch handles every dialect.
type Dialect uint8

const (
	// MarkdownV2 escapes reserved punctuation and wraps styles in
	// MarkdownV2 delimiters.
	MarkdownV2 Dialect = iota
	// HTML escapes entities and wraps styles in HTML tags.
	HTML
)

func (d Dialect) String() string {
	switch d {
	case MarkdownV2:
		return "markdownv2"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// GeneratorOption configures a Generator at construction time.
type GeneratorOption func(*Generator)

// WithFormatters registers formatters during construction.
func WithFormatters(formatters ...Formatter) GeneratorOption {
	return func(g *Generator) {
		for _, f := range formatters {
			g.RegisterFormatter(f)
		}
	}
}

// Generator renders a document tree into one dialect. The formatter registry
// must be fully populated before concurrent use; rendering itself is
// read-only and safe to share.
type Generator struct {
	dialect    Dialect
	formatters map[string]Formatter
}

// NewGenerator returns a Generator for the given dialect.
func NewGenerator(dialect Dialect, opts ...GeneratorOption) *Generator {
	g := &Generator{
		dialect:    dialect,
		formatters: make(map[string]Formatter),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Dialect returns the generator's target dialect.
func (g *Generator) Dialect() Dialect {
	return g.dialect
}

// RegisterFormatter adds a custom formatter. Registering a name twice keeps
// the last entry.
func (g *Generator) RegisterFormatter(f Formatter) {
	g.formatters[f.Name()] = f
}

// Render produces the dialect output for a single element.
func (g *Generator) Render(el Element) (string, error) {
	var b strings.Builder
	if err := g.renderElement(&b, el); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderAll produces the dialect output for an element sequence, such as a
// Parse result.
func (g *Generator) RenderAll(elements []Element) (string, error) {
	var b strings.Builder
	for _, el := range elements {
		if err := g.renderElement(&b, el); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// RenderTo renders an element sequence to w. Write failures are reported as
// a *GenerationError.
func (g *Generator) RenderTo(w io.Writer, elements []Element) error {
	out, err := g.RenderAll(elements)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return &GenerationError{Err: err}
	}
	return nil
}

func (g *Generator) renderElement(b *strings.Builder, el Element) error {
	switch el.Kind {
	case KindText:
		b.WriteString(escapeText(el.Text, g.dialect))
	case KindBold:
		return g.renderWrapped(b, el.Children, "*", "*", "<b>", "</b>")
	case KindItalic:
		return g.renderWrapped(b, el.Children, "_", "_", "<i>", "</i>")
	case KindUnderline:
		return g.renderWrapped(b, el.Children, "__", "__", "<u>", "</u>")
	case KindStrikethrough:
		return g.renderWrapped(b, el.Children, "~~", "~~", "<s>", "</s>")
	case KindSpoiler:
		return g.renderWrapped(b, el.Children, "||", "||", "<tg-spoiler>", "</tg-spoiler>")
	case KindCode:
		if g.dialect == HTML {
			b.WriteString("<code>")
			b.WriteString(escapeHTML(el.Text))
			b.WriteString("</code>")
		} else {
			b.WriteByte('`')
			b.WriteString(escapeCode(el.Text))
			b.WriteByte('`')
		}
	case KindPre:
		g.renderPre(b, el)
	case KindLink:
		return g.renderLink(b, el)
	case KindTextLink:
		if g.dialect == HTML {
			fmt.Fprintf(b, "<a href=\"%s\">%s</a>", escapeHTML(el.URL), escapeHTML(el.Text))
		} else {
			fmt.Fprintf(b, "[%s](%s)", escapeText(el.Text, g.dialect), escapeURL(el.URL))
		}
	case KindMention:
		b.WriteByte('@')
		b.WriteString(el.Name)
	case KindMentionID:
		if g.dialect == HTML {
			fmt.Fprintf(b, "<a href=\"tg://user?id=%d\">%s</a>", el.ID, escapeHTML(el.Text))
		} else {
			fmt.Fprintf(b, "[%s](tg://user?id=%d)", escapeText(el.Text, g.dialect), el.ID)
		}
	case KindHashtag:
		b.WriteByte('#')
		b.WriteString(el.Text)
	case KindCommand:
		b.WriteByte('/')
		b.WriteString(el.Name)
		if len(el.Args) > 0 {
			b.WriteByte(' ')
			b.WriteString(strings.Join(el.Args, " "))
		}
	case KindEmoji:
		b.WriteString(el.Text)
	case KindCustomEmoji:
		if g.dialect == HTML {
			fmt.Fprintf(b, "<tg-emoji emoji-id=\"%d\">%s</tg-emoji>", el.ID, el.Text)
		} else {
			fmt.Fprintf(b, "![%s](tg://emoji?id=%d)", el.Text, el.ID)
		}
	case KindList:
		return g.renderList(b, el.List)
	case KindTable:
		return g.renderTable(b, el.Table)
	case KindQuote:
		return g.renderQuote(b, el.Children)
	case KindCustom:
		f, ok := g.formatters[el.Name]
		if !ok {
			return &FormatterNotFoundError{Name: el.Name}
		}
		out, err := f.Format(el.Text, g.dialect)
		if err != nil {
			return err
		}
		// Formatter output is final markup and is not re-escaped.
		b.WriteString(out)
	case KindGroup:
		for _, child := range el.Children {
			if err := g.renderElement(b, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) renderWrapped(b *strings.Builder, children []Element, mdOpen, mdClose, htmlOpen, htmlClose string) error {
	open, closing := mdOpen, mdClose
	if g.dialect == HTML {
		open, closing = htmlOpen, htmlClose
	}
	b.WriteString(open)
	for _, child := range children {
		if err := g.renderElement(b, child); err != nil {
			return err
		}
	}
	b.WriteString(closing)
	return nil
}

func (g *Generator) renderPre(b *strings.Builder, el Element) {
	if g.dialect == HTML {
		if el.Name != "" {
			fmt.Fprintf(b, "<pre><code class=\"language-%s\">%s</code></pre>",
				escapeHTML(el.Name), escapeHTML(el.Text))
			return
		}
		b.WriteString("<pre>")
		b.WriteString(escapeHTML(el.Text))
		b.WriteString("</pre>")
		return
	}
	b.WriteString("```")
	b.WriteString(el.Name)
	b.WriteByte('\n')
	b.WriteString(escapeCode(el.Text))
	b.WriteString("\n```")
}

func (g *Generator) renderLink(b *strings.Builder, el Element) error {
	var label strings.Builder
	for _, child := range el.Children {
		if err := g.renderElement(&label, child); err != nil {
			return err
		}
	}
	if g.dialect == HTML {
		fmt.Fprintf(b, "<a href=\"%s\">%s</a>", escapeHTML(el.URL), label.String())
	} else {
		fmt.Fprintf(b, "[%s](%s)", label.String(), escapeURL(el.URL))
	}
	return nil
}

func (g *Generator) renderQuote(b *strings.Builder, children []Element) error {
	var content strings.Builder
	for _, child := range children {
		if err := g.renderElement(&content, child); err != nil {
			return err
		}
	}
	if g.dialect == HTML {
		b.WriteString("<blockquote>")
		b.WriteString(content.String())
		b.WriteString("</blockquote>")
		return nil
	}
	b.WriteByte('>')
	b.WriteString(strings.Join(splitLines(content.String()), "\n>"))
	return nil
}

// splitLines splits on newlines without producing a trailing empty line,
// so a quote never gains an empty `>` suffix.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

var (
	markdownEscaper = strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
		"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
		">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
		"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
		".", "\\.", "!", "\\!",
	)
	codeEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`")
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;",
	)
)

// escapeText applies the dialect's prose escaper. It is applied to Text and
// TextLink payloads only; code and pre content use escapeCode so that
// punctuation inside code blocks survives untouched.
func escapeText(text string, d Dialect) string {
	if d == HTML {
		return escapeHTML(text)
	}
	return markdownEscaper.Replace(text)
}

func escapeCode(code string) string {
	return codeEscaper.Replace(code)
}

func escapeURL(url string) string {
	return strings.ReplaceAll(url, ")", "\\)")
}

func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
