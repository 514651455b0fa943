package rjson

import (
	"errors"
	"fmt"
)

// Error categories, for errors.Is dispatch on parse failures.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrUnexpectedToken     = errors.New("unexpected token")
)

// Position represents a source location, 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError reports a lexical or grammatical failure with the source
// position that triggered it. It wraps one of the error category sentinels.
type SyntaxError struct {
	Msg string
	Pos Position
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

// Unwrap returns the error category.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// TypeError reports a typed accessor applied to the wrong kind.
type TypeError struct {
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("rjson: expected %s, got %s", e.Want, e.Got)
}

func syntaxErrorf(pos Position, category error, format string, args ...interface{}) error {
	return &SyntaxError{
		Msg: fmt.Sprintf(format, args...),
		Pos: pos,
		Err: category,
	}
}
