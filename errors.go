package msgfmt

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF reports input that ended in the middle of a construct.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ParseError reports malformed or unterminated markup. Parsing is
// all-or-nothing: the first structural error aborts the whole parse.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

func parseErrorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTokenError reports a token rejected at a given position. Reserved
// for stricter tokenizers; the current lexer never fails.
type InvalidTokenError struct {
	Position int
	Msg      string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token at position %d: %s", e.Position, e.Msg)
}

// FormatterNotFoundError reports a custom node naming an unregistered
// formatter.
type FormatterNotFoundError struct {
	Name string
}

func (e *FormatterNotFoundError) Error() string {
	return "formatter not found: " + e.Name
}

// InvalidFormatterValueError reports a value a formatter refused to render.
type InvalidFormatterValueError struct {
	Value string
}

func (e *InvalidFormatterValueError) Error() string {
	return "invalid formatter value: " + e.Value
}

// GenerationError wraps an underlying write failure during rendering.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "generation error: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// InvalidTableError reports a structurally invalid table. Reserved: the
// layout algorithm tolerates ragged rows instead of failing.
type InvalidTableError struct {
	Msg string
}

func (e *InvalidTableError) Error() string {
	return "invalid table structure: " + e.Msg
}
