package rjson

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenUndefined // undefined
	TokenNull      // null
	TokenTrue      // true
	TokenFalse     // false
	TokenInt       // 123, -456
	TokenDouble    // 1.23, -4.56e7
	TokenString    // "quoted" or 'quoted'
	TokenComment   // // line or /* block */
	TokenIdent     // any other bare identifier

	// Structural
	TokenColon    // :
	TokenComma    // ,
	TokenLBracket // [
	TokenRBracket // ]
	TokenLBrace   // {
	TokenRBrace   // }
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenUndefined:
		return "UNDEFINED"
	case TokenNull:
		return "NULL"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenInt:
		return "INT"
	case TokenDouble:
		return "DOUBLE"
	case TokenString:
		return "STRING"
	case TokenComment:
		return "COMMENT"
	case TokenIdent:
		return "IDENT"
	case TokenColon:
		return ":"
	case TokenComma:
		return ","
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexer token. Pos is the position of its first
// character.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Text == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}

// Lexer tokenizes permissive JSON text.
type Lexer struct {
	input string
	pos   int // Current position in input
	line  int // Current line number (1-based)
	col   int // Current column number (1-based)
	err   error
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// Tokenize returns all tokens from the input. The token slice always ends
// with an EOF or Error token; on a lexical error the structured error is
// returned alongside the tokens read so far.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}
	if l.err != nil {
		return tokens, l.err
	}
	return tokens, nil
}

// nextToken returns the next token.
func (l *Lexer) nextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.currentPos()}
	}

	startPos := l.currentPos()
	ch := l.peek()

	switch ch {
	case ':':
		l.advance()
		return Token{Type: TokenColon, Text: ":", Pos: startPos}
	case ',':
		l.advance()
		return Token{Type: TokenComma, Text: ",", Pos: startPos}
	case '[':
		l.advance()
		return Token{Type: TokenLBracket, Text: "[", Pos: startPos}
	case ']':
		l.advance()
		return Token{Type: TokenRBracket, Text: "]", Pos: startPos}
	case '{':
		l.advance()
		return Token{Type: TokenLBrace, Text: "{", Pos: startPos}
	case '}':
		l.advance()
		return Token{Type: TokenRBrace, Text: "}", Pos: startPos}
	case '/':
		return l.scanComment()
	case '"', '\'':
		return l.scanString()
	}

	if ch == '-' || isDigit(ch) {
		return l.scanNumber()
	}

	if isIdentStart(ch) {
		return l.scanIdentOrKeyword()
	}

	l.advance()
	l.err = syntaxErrorf(startPos, ErrUnexpectedCharacter, "unexpected character %q", ch)
	return Token{Type: TokenError, Text: string(ch), Pos: startPos}
}

// scanComment scans a // line comment or /* block */ comment. The comment
// text excludes the delimiters; a line comment runs to end of line, a block
// comment must be terminated before end of input.
func (l *Lexer) scanComment() Token {
	startPos := l.currentPos()
	l.advance() // consume /

	if l.pos >= len(l.input) {
		l.err = syntaxErrorf(startPos, ErrUnexpectedCharacter, "expected // or /* comment")
		return Token{Type: TokenError, Text: "/", Pos: startPos}
	}

	switch l.peek() {
	case '/':
		l.advance()
		start := l.pos
		for l.pos < len(l.input) && l.peek() != '\n' {
			l.advance()
		}
		return Token{Type: TokenComment, Text: l.input[start:l.pos], Pos: startPos}

	case '*':
		l.advance()
		var sb strings.Builder
		for {
			if l.pos >= len(l.input) {
				l.err = syntaxErrorf(startPos, ErrUnterminatedComment, "unterminated block comment")
				return Token{Type: TokenError, Text: sb.String(), Pos: startPos}
			}
			ch := l.peek()
			if ch == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
				l.advance()
				l.advance()
				return Token{Type: TokenComment, Text: sb.String(), Pos: startPos}
			}
			sb.WriteByte(ch)
			l.advance()
		}

	default:
		ch := l.peek()
		l.advance()
		l.err = syntaxErrorf(startPos, ErrUnexpectedCharacter, "expected // or /* comment, got /%c", ch)
		return Token{Type: TokenError, Text: "/" + string(ch), Pos: startPos}
	}
}

// scanString scans a single- or double-quoted string literal.
func (l *Lexer) scanString() Token {
	startPos := l.currentPos()
	delim := l.peek()
	l.advance() // consume opening quote

	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			l.err = syntaxErrorf(startPos, ErrUnterminatedString, "unterminated string literal")
			return Token{Type: TokenError, Text: sb.String(), Pos: startPos}
		}

		ch := l.peek()
		if ch == delim {
			l.advance() // consume closing quote
			return Token{Type: TokenString, Text: sb.String(), Pos: startPos}
		}

		if ch == '\\' {
			escPos := l.currentPos()
			l.advance()
			if l.pos >= len(l.input) {
				l.err = syntaxErrorf(startPos, ErrUnterminatedString, "unterminated string literal")
				return Token{Type: TokenError, Text: sb.String(), Pos: startPos}
			}
			escaped := l.peek()
			l.advance()
			switch escaped {
			case '"', '\'', '\\':
				sb.WriteByte(escaped)
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case '\n':
				// line continuation, contributes no character
			default:
				l.err = syntaxErrorf(escPos, ErrInvalidEscape, "invalid escape sequence \\%c", escaped)
				return Token{Type: TokenError, Text: sb.String(), Pos: startPos}
			}
		} else {
			sb.WriteByte(ch)
			l.advance()
		}
	}
}

// scanNumber scans an integer or double literal: optional sign, integer
// part, optional fraction, optional exponent.
func (l *Lexer) scanNumber() Token {
	startPos := l.currentPos()
	start := l.pos

	if l.peek() == '-' {
		l.advance()
		if l.pos >= len(l.input) || !isDigit(l.peek()) {
			l.err = syntaxErrorf(startPos, ErrUnexpectedCharacter, "expected digit after -")
			return Token{Type: TokenError, Text: l.input[start:l.pos], Pos: startPos}
		}
	}

	for l.pos < len(l.input) && isDigit(l.peek()) {
		l.advance()
	}

	isDouble := false

	// Fraction part
	if l.pos < len(l.input) && l.peek() == '.' {
		isDouble = true
		l.advance()
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
		}
	}

	// Exponent part
	if l.pos < len(l.input) && (l.peek() == 'e' || l.peek() == 'E') {
		isDouble = true
		l.advance()
		if l.pos < len(l.input) && (l.peek() == '+' || l.peek() == '-') {
			l.advance()
		}
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
		}
	}

	text := l.input[start:l.pos]
	if isDouble {
		return Token{Type: TokenDouble, Text: text, Pos: startPos}
	}
	return Token{Type: TokenInt, Text: text, Pos: startPos}
}

// scanIdentOrKeyword scans an identifier, turning the reserved words into
// their literal tokens.
func (l *Lexer) scanIdentOrKeyword() Token {
	startPos := l.currentPos()
	start := l.pos

	for l.pos < len(l.input) && isIdentContinue(l.peek()) {
		l.advance()
	}

	text := l.input[start:l.pos]

	switch text {
	case "null", "Null":
		// Null is the canonical rendering; both spellings parse back.
		return Token{Type: TokenNull, Text: text, Pos: startPos}
	case "undefined":
		return Token{Type: TokenUndefined, Text: text, Pos: startPos}
	case "true":
		return Token{Type: TokenTrue, Text: text, Pos: startPos}
	case "false":
		return Token{Type: TokenFalse, Text: text, Pos: startPos}
	}

	return Token{Type: TokenIdent, Text: text, Pos: startPos}
}

// skipWhitespace skips space, tab, carriage return and newline between
// tokens. Comments are tokens, not whitespace.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// Character classification

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// TokenStream provides a pull interface over lexed tokens for the parser.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a token stream from tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without advancing.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Advance moves to the next token and returns the current one.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Match returns true and advances if the current token matches.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// AtEnd returns true if at end of stream.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}
