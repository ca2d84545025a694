package msgfmt

// defaultMaxDepth bounds nesting so pathological input cannot exhaust the
// call stack. WithMaxDepth(0) removes the bound.
const defaultMaxDepth = 128

// ParseOption configures parsing behavior.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxDepth int
}

// WithMaxDepth sets the maximum nesting depth of styled constructs.
// Zero disables the limit.
func WithMaxDepth(depth int) ParseOption {
	return func(cfg *parseConfig) {
		cfg.maxDepth = depth
	}
}

type parseStream struct {
	tokens   []Token
	cursor   int
	depth    int
	maxDepth int
}

// Parse converts markup text into a flat element sequence. It fails with a
// *ParseError on unterminated constructs and treats the first structural
// error as fatal for the whole parse.
func Parse(input string, opts ...ParseOption) ([]Element, error) {
	cfg := parseConfig{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	s := &parseStream{tokens: Tokenize(input), maxDepth: cfg.maxDepth}
	var elements []Element
	for !s.atEnd() {
		el, err := s.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

func (s *parseStream) peek() Token {
	if s.cursor >= len(s.tokens) {
		return Token{Kind: TokenEOF}
	}
	return s.tokens[s.cursor]
}

func (s *parseStream) peekAhead(n int) Token {
	if s.cursor+n >= len(s.tokens) {
		return Token{Kind: TokenEOF}
	}
	return s.tokens[s.cursor+n]
}

func (s *parseStream) advance() Token {
	tok := s.peek()
	if s.cursor < len(s.tokens) {
		s.cursor++
	}
	return tok
}

func (s *parseStream) atEnd() bool {
	return s.peek().Kind == TokenEOF
}

func (s *parseStream) expect(kind TokenKind) error {
	if s.atEnd() {
		return ErrUnexpectedEOF
	}
	if tok := s.advance(); tok.Kind != kind {
		return parseErrorf("expected %s, found %s", kind, tok.Kind)
	}
	return nil
}

func (s *parseStream) enter(construct string) error {
	s.depth++
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		return parseErrorf("%s nested deeper than %d levels", construct, s.maxDepth)
	}
	return nil
}

func (s *parseStream) leave() {
	s.depth--
}

func (s *parseStream) parseElement() (Element, error) {
	switch tok := s.peek(); tok.Kind {
	case TokenStar:
		return s.parseBoldOrItalic()
	case TokenUnderscore:
		return s.parseItalicOrUnderline()
	case TokenBacktick:
		return s.parseCodeOrPre()
	case TokenTilde:
		return s.parseStrikethroughOrSpoiler()
	case TokenLeftBracket:
		return s.parseLink()
	case TokenMention:
		s.advance()
		return Mention(tok.Text), nil
	case TokenHashtag:
		s.advance()
		return Hashtag(tok.Text), nil
	case TokenCommand:
		s.advance()
		return Command(tok.Text), nil
	case TokenText:
		s.advance()
		return Text(tok.Text), nil
	case TokenEscape:
		s.advance()
		return Text(string(tok.Ch)), nil
	case TokenLineBreak:
		s.advance()
		return Text("\n"), nil
	default:
		// Stray pipes, brackets, and the bare entity triggers degrade to an
		// empty text node rather than failing the parse.
		s.advance()
		return Text(""), nil
	}
}

func (s *parseStream) parseBoldOrItalic() (Element, error) {
	if err := s.expect(TokenStar); err != nil {
		return Element{}, err
	}
	if s.peek().Kind == TokenStar {
		s.advance()
		content, err := s.parseUntilDouble(TokenStar, "bold")
		if err != nil {
			return Element{}, err
		}
		return Bold(content...), nil
	}
	content, err := s.parseUntilSingle(TokenStar, "italic")
	if err != nil {
		return Element{}, err
	}
	return Italic(content...), nil
}

func (s *parseStream) parseItalicOrUnderline() (Element, error) {
	if err := s.expect(TokenUnderscore); err != nil {
		return Element{}, err
	}
	if s.peek().Kind == TokenUnderscore {
		s.advance()
		content, err := s.parseUntilDouble(TokenUnderscore, "underline")
		if err != nil {
			return Element{}, err
		}
		return Underline(content...), nil
	}
	content, err := s.parseUntilSingle(TokenUnderscore, "italic")
	if err != nil {
		return Element{}, err
	}
	return Italic(content...), nil
}

func (s *parseStream) parseStrikethroughOrSpoiler() (Element, error) {
	if err := s.expect(TokenTilde); err != nil {
		return Element{}, err
	}
	if s.peek().Kind == TokenTilde {
		s.advance()
		content, err := s.parseUntilDouble(TokenTilde, "strikethrough")
		if err != nil {
			return Element{}, err
		}
		return Strikethrough(content...), nil
	}
	content, err := s.parseUntilSingle(TokenTilde, "spoiler")
	if err != nil {
		return Element{}, err
	}
	return Spoiler(content...), nil
}

func (s *parseStream) parseCodeOrPre() (Element, error) {
	if err := s.expect(TokenBacktick); err != nil {
		return Element{}, err
	}
	if s.peek().Kind == TokenBacktick {
		s.advance()
		if s.peek().Kind == TokenBacktick {
			s.advance()
			return s.parsePreBlock()
		}
		// A lone double backtick is an empty inline code span.
		return Code(""), nil
	}
	var code []byte
	for {
		switch tok := s.peek(); tok.Kind {
		case TokenBacktick:
			s.advance()
			return Code(string(code)), nil
		case TokenText:
			code = append(code, tok.Text...)
			s.advance()
		default:
			return Element{}, parseErrorf("unclosed code block")
		}
	}
}

// parsePreBlock captures verbatim content after three opening backticks.
// Embedded backticks only count as content once a non-backtick token follows,
// so the closing fence never leaks into the captured code.
func (s *parseStream) parsePreBlock() (Element, error) {
	language := ""
	if tok := s.peek(); tok.Kind == TokenText {
		language = tok.Text
		s.advance()
		if s.peek().Kind == TokenLineBreak {
			s.advance()
		}
	}
	var code []byte
	pending := 0
	for !s.atEnd() {
		tok := s.peek()
		if tok.Kind == TokenBacktick {
			s.advance()
			pending++
			if pending == 3 {
				return Pre(string(code), language), nil
			}
			continue
		}
		for ; pending > 0; pending-- {
			code = append(code, '`')
		}
		code = append(code, tokenLiteral(tok)...)
		s.advance()
	}
	return Element{}, parseErrorf("unclosed pre block")
}

// tokenLiteral maps a token back to the source text it was lexed from, so
// pre blocks capture structural characters verbatim.
func tokenLiteral(tok Token) string {
	switch tok.Kind {
	case TokenText:
		return tok.Text
	case TokenLineBreak:
		return "\n"
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
	case TokenAt:
		return "@"
	case TokenHash:
		return "#"
	case TokenSlash:
		return "/"
	case TokenMention:
		return "@" + tok.Text
	case TokenHashtag:
		return "#" + tok.Text
	case TokenCommand:
		return "/" + tok.Text
	case TokenEscape:
		return string(tok.Ch)
	default:
		return ""
	}
}

func (s *parseStream) parseLink() (Element, error) {
	if err := s.expect(TokenLeftBracket); err != nil {
		return Element{}, err
	}
	if err := s.enter("link"); err != nil {
		return Element{}, err
	}
	text, err := s.parseUntilRightBracket()
	s.leave()
	if err != nil {
		return Element{}, err
	}
	if err := s.expect(TokenRightBracket); err != nil {
		return Element{}, err
	}
	if err := s.expect(TokenLeftParen); err != nil {
		return Element{}, err
	}
	var url []byte
	for !s.atEnd() {
		tok := s.peek()
		switch tok.Kind {
		case TokenRightParen:
			s.advance()
			return Link(text, string(url)), nil
		case TokenText:
			url = append(url, tok.Text...)
		case TokenSlash:
			url = append(url, '/')
		case TokenAt:
			url = append(url, '@')
		case TokenHash:
			url = append(url, '#')
		case TokenUnderscore:
			url = append(url, '_')
		case TokenStar:
			url = append(url, '*')
		case TokenTilde:
			url = append(url, '~')
		case TokenPipe:
			url = append(url, '|')
		case TokenLeftBracket:
			url = append(url, '[')
		case TokenRightBracket:
			url = append(url, ']')
		case TokenLeftBrace:
			url = append(url, '{')
		case TokenRightBrace:
			url = append(url, '}')
		case TokenCommand:
			url = append(url, '/')
			url = append(url, tok.Text...)
		case TokenMention:
			url = append(url, '@')
			url = append(url, tok.Text...)
		case TokenHashtag:
			url = append(url, '#')
			url = append(url, tok.Text...)
		default:
			return Element{}, parseErrorf("unclosed link")
		}
		s.advance()
	}
	return Element{}, parseErrorf("unclosed link")
}

func (s *parseStream) parseUntilDouble(delim TokenKind, construct string) ([]Element, error) {
	if err := s.enter(construct); err != nil {
		return nil, err
	}
	defer s.leave()
	var elements []Element
	for !s.atEnd() {
		if s.peek().Kind == delim && s.peekAhead(1).Kind == delim {
			s.advance()
			s.advance()
			return elements, nil
		}
		el, err := s.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return nil, parseErrorf("unclosed %s", construct)
}

func (s *parseStream) parseUntilSingle(delim TokenKind, construct string) ([]Element, error) {
	if err := s.enter(construct); err != nil {
		return nil, err
	}
	defer s.leave()
	var elements []Element
	for !s.atEnd() {
		if s.peek().Kind == delim {
			s.advance()
			return elements, nil
		}
		el, err := s.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return nil, parseErrorf("unclosed %s", construct)
}

func (s *parseStream) parseUntilRightBracket() ([]Element, error) {
	var elements []Element
	for !s.atEnd() {
		if s.peek().Kind == TokenRightBracket {
			return elements, nil
		}
		el, err := s.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return nil, parseErrorf("unclosed bracket")
}
