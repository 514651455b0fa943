package rjson

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Parser builds a Value tree from the token stream, pulling tokens on
// demand. The first error aborts the parse; no partial tree is returned.
type Parser struct {
	stream *TokenStream
}

// Parse parses permissive JSON text into a Value.
func Parse(input string) (*Value, error) {
	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	p := &Parser{stream: NewTokenStream(tokens)}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	// Trailing comments after the top-level value are allowed; anything
	// else is an error.
	for p.stream.Peek().Type == TokenComment {
		p.stream.Advance()
	}
	if tok := p.stream.Peek(); tok.Type != TokenEOF {
		return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "unexpected %s after top-level value", tok.Type)
	}

	return v, nil
}

// ParseReader fully consumes the reader, then parses its contents. There
// is no incremental mode; the input is expected to be a small, in-memory
// document.
func ParseReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return Parse(string(data))
}

// ParseFile parses the document in the named file.
func ParseFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Parse(string(data))
}

// parseValue parses any value. A leading comment token attaches its text
// to the value that follows, overwriting any comment already set.
func (p *Parser) parseValue() (*Value, error) {
	tok := p.stream.Advance()

	switch tok.Type {
	case TokenComment:
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v.SetComment(tok.Text)
		return v, nil

	case TokenUndefined:
		return Undefined(), nil

	case TokenNull:
		return Null(), nil

	case TokenTrue:
		return Bool(true), nil

	case TokenFalse:
		return Bool(false), nil

	case TokenInt:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "invalid integer literal %q", tok.Text)
		}
		return Int(n), nil

	case TokenDouble:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "invalid number literal %q", tok.Text)
		}
		return Double(f), nil

	case TokenString:
		return Str(tok.Text), nil

	case TokenLBracket:
		return p.parseArray(tok)

	case TokenLBrace:
		return p.parseObject(tok)

	case TokenEOF:
		return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "expected a value, got end of input")

	default:
		return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "expected a value, got %s", tok)
	}
}

// parseArray parses '[' [ value (',' value)* [','] ] ']'. The open token
// is already consumed; its position anchors the missing-bracket error.
func (p *Parser) parseArray(open Token) (*Value, error) {
	arr := Array()
	for {
		tok := p.stream.Peek()
		switch tok.Type {
		case TokenRBracket:
			p.stream.Advance()
			return arr, nil
		case TokenEOF:
			return nil, syntaxErrorf(open.Pos, ErrUnexpectedToken, "missing closing ] for array")
		}

		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Add(elem)

		tok = p.stream.Peek()
		switch tok.Type {
		case TokenComma:
			p.stream.Advance()
		case TokenRBracket:
			p.stream.Advance()
			return arr, nil
		case TokenEOF:
			return nil, syntaxErrorf(open.Pos, ErrUnexpectedToken, "missing closing ] for array")
		default:
			return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "expected , or ] in array, got %s", tok)
		}
	}
}

// parseObject parses '{' [ member (',' member)* [','] ] '}' where
// member := string ':' value. Duplicate names replace in place via Set.
func (p *Parser) parseObject(open Token) (*Value, error) {
	obj := Object()
	for {
		tok := p.stream.Peek()
		switch tok.Type {
		case TokenRBrace:
			p.stream.Advance()
			return obj, nil
		case TokenEOF:
			return nil, syntaxErrorf(open.Pos, ErrUnexpectedToken, "missing closing } for object")
		case TokenString:
			// member name
		default:
			return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "expected member name string, got %s", tok)
		}
		name := p.stream.Advance().Text

		colon := p.stream.Advance()
		if colon.Type != TokenColon {
			return nil, syntaxErrorf(colon.Pos, ErrUnexpectedToken, "expected : after member name, got %s", colon)
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(name, val)

		tok = p.stream.Peek()
		switch tok.Type {
		case TokenComma:
			p.stream.Advance()
		case TokenRBrace:
			p.stream.Advance()
			return obj, nil
		case TokenEOF:
			return nil, syntaxErrorf(open.Pos, ErrUnexpectedToken, "missing closing } for object")
		default:
			return nil, syntaxErrorf(tok.Pos, ErrUnexpectedToken, "expected , or } in object, got %s", tok)
		}
	}
}
