// Package msgfmt parses a compact inline-markup notation into a document
// tree and renders that tree as MarkdownV2 or HTML.
//
// The pipeline is lexer, recursive-descent parser, generator. A single
// marker character opens the weak style variant and a doubled marker the
// strong one (* for italic/bold, _ for italic/underline, ~ for
// spoiler/strikethrough). Mentions, hashtags, commands, links, inline code,
// and fenced pre blocks are recognized; backslash escapes any character.
//
// Trees can also be built directly from the element constructors, including
// lists, fixed-width tables in four visual styles, and custom leaf nodes
// rendered by pluggable formatters.
//
// Example:
//
//	elements, err := msgfmt.Parse("Hello **world**, see [docs](https://example.com)")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gen := msgfmt.NewGenerator(msgfmt.MarkdownV2)
//	out, err := gen.RenderAll(elements)
//
// Parsing and rendering are pure; a Generator may be shared between
// goroutines once its formatter registry is populated.
package msgfmt
