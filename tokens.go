package msgfmt

import "unicode"

// Token is one lexical unit of the markup notation.
type Token struct {
	Kind TokenKind
	Text string
	Ch   rune
}

// TokenKind discriminates the closed set of token variants.
type TokenKind uint8

const (
	// TokenText is a maximal run of unreserved characters.
	TokenText TokenKind = iota
	// TokenStar is a single `*` delimiter.
	TokenStar
	// TokenUnderscore is a single `_` delimiter.
	TokenUnderscore
	// TokenBacktick is a single backtick delimiter.
	TokenBacktick
	// TokenTilde is a single `~` delimiter.
	TokenTilde
	// TokenPipe is a single `|` delimiter.
	TokenPipe
	// TokenLeftParen is `(`.
	TokenLeftParen
	// TokenRightParen is `)`.
	TokenRightParen
	// TokenLeftBracket is `[`.
	TokenLeftBracket
	// TokenRightBracket is `]`.
	TokenRightBracket
	// TokenLeftBrace is `{`.
	TokenLeftBrace
	// TokenRightBrace is `}`.
	TokenRightBrace
	// TokenMention carries a username recognized after `@`.
	TokenMention
	// TokenHashtag carries a tag recognized after `#`.
	TokenHashtag
	// TokenCommand carries a command name recognized after `/`.
	TokenCommand
	// TokenAt is a bare `@` with no identifier following.
	TokenAt
	// TokenHash is a bare `#` with no identifier following.
	TokenHash
	// TokenSlash is a bare `/` with no identifier following.
	TokenSlash
	// TokenEscape carries the character following a backslash.
	TokenEscape
	// TokenLineBreak is a newline.
	TokenLineBreak
	// TokenEOF terminates every token sequence.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenStar:
		return "*"
	case TokenUnderscore:
		return "_"
	case TokenBacktick:
		return "`"
	case TokenTilde:
		return "~"
	case TokenPipe:
		return "|"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBracket:
		return "["
	case TokenRightBracket:
		return "]"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenMention:
		return "mention"
	case TokenHashtag:
		return "hashtag"
	case TokenCommand:
		return "command"
	case TokenAt:
		return "@"
	case TokenHash:
		return "#"
	case TokenSlash:
		return "/"
	case TokenEscape:
		return "escape"
	case TokenLineBreak:
		return "line break"
	case TokenEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

// IsDelimiter reports whether the token is a style delimiter.
func (t Token) IsDelimiter() bool {
	switch t.Kind {
	case TokenStar, TokenUnderscore, TokenBacktick, TokenTilde, TokenPipe:
		return true
	default:
		return false
	}
}

// IsStructural reports whether the token is a bracket.
func (t Token) IsStructural() bool {
	switch t.Kind {
	case TokenLeftParen, TokenRightParen, TokenLeftBracket, TokenRightBracket,
		TokenLeftBrace, TokenRightBrace:
		return true
	default:
		return false
	}
}

type lexer struct {
	input []rune
	pos   int
}

// Tokenize converts raw markup text into tokens. It is total: every input
// character maps to exactly one token or is absorbed into a text run, and the
// sequence always ends with a single TokenEOF.
func Tokenize(input string) []Token {
	lx := lexer{input: []rune(input)}
	var tokens []Token
	for !lx.atEnd() {
		tokens = append(tokens, lx.next())
	}
	return append(tokens, Token{Kind: TokenEOF})
}

func (lx *lexer) next() Token {
	ch := lx.input[lx.pos]
	lx.pos++
	switch ch {
	case '*':
		return Token{Kind: TokenStar}
	case '_':
		return Token{Kind: TokenUnderscore}
	case '`':
		return Token{Kind: TokenBacktick}
	case '~':
		return Token{Kind: TokenTilde}
	case '|':
		return Token{Kind: TokenPipe}
	case '(':
		return Token{Kind: TokenLeftParen}
	case ')':
		return Token{Kind: TokenRightParen}
	case '[':
		return Token{Kind: TokenLeftBracket}
	case ']':
		return Token{Kind: TokenRightBracket}
	case '{':
		return Token{Kind: TokenLeftBrace}
	case '}':
		return Token{Kind: TokenRightBrace}
	case '@':
		if name := lx.readIdent(); name != "" {
			return Token{Kind: TokenMention, Text: name}
		}
		return Token{Kind: TokenAt}
	case '#':
		if tag := lx.readIdent(); tag != "" {
			return Token{Kind: TokenHashtag, Text: tag}
		}
		return Token{Kind: TokenHash}
	case '/':
		if cmd := lx.readIdent(); cmd != "" {
			return Token{Kind: TokenCommand, Text: cmd}
		}
		return Token{Kind: TokenSlash}
	case '\\':
		if lx.atEnd() {
			// Trailing backslash degrades to a literal text run.
			return Token{Kind: TokenText, Text: "\\"}
		}
		escaped := lx.input[lx.pos]
		lx.pos++
		return Token{Kind: TokenEscape, Ch: escaped}
	case '\n':
		return Token{Kind: TokenLineBreak}
	default:
		lx.pos--
		return lx.readText()
	}
}

func (lx *lexer) readText() Token {
	start := lx.pos
	for !lx.atEnd() && !isReserved(lx.input[lx.pos]) {
		lx.pos++
	}
	return Token{Kind: TokenText, Text: string(lx.input[start:lx.pos])}
}

func (lx *lexer) readIdent() string {
	start := lx.pos
	for !lx.atEnd() && isIdentRune(lx.input[lx.pos]) {
		lx.pos++
	}
	return string(lx.input[start:lx.pos])
}

func (lx *lexer) atEnd() bool {
	return lx.pos >= len(lx.input)
}

func isReserved(r rune) bool {
	switch r {
	case '*', '_', '`', '~', '|', '@', '#', '/', '(', ')', '[', ']', '{', '}', '\\', '\n':
		return true
	default:
		return false
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
