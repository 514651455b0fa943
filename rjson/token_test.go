package rjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_BasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{"123", []TokenType{TokenInt, TokenEOF}},
		{"-456", []TokenType{TokenInt, TokenEOF}},
		{"3.14", []TokenType{TokenDouble, TokenEOF}},
		{"-2.5e10", []TokenType{TokenDouble, TokenEOF}},
		{"5e3", []TokenType{TokenDouble, TokenEOF}},
		{"true", []TokenType{TokenTrue, TokenEOF}},
		{"false", []TokenType{TokenFalse, TokenEOF}},
		{"null", []TokenType{TokenNull, TokenEOF}},
		{"undefined", []TokenType{TokenUndefined, TokenEOF}},
		{"foobar", []TokenType{TokenIdent, TokenEOF}},
		{"_under", []TokenType{TokenIdent, TokenEOF}},
		{`"hello"`, []TokenType{TokenString, TokenEOF}},
		{`'hello'`, []TokenType{TokenString, TokenEOF}},
		{"{}", []TokenType{TokenLBrace, TokenRBrace, TokenEOF}},
		{"[]", []TokenType{TokenLBracket, TokenRBracket, TokenEOF}},
		{":", []TokenType{TokenColon, TokenEOF}},
		{",", []TokenType{TokenComma, TokenEOF}},
		{"// c", []TokenType{TokenComment, TokenEOF}},
		{"/* c */", []TokenType{TokenComment, TokenEOF}},
		{"[1, 2,]", []TokenType{TokenLBracket, TokenInt, TokenComma, TokenInt, TokenComma, TokenRBracket, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			tokens, err := lexer.Tokenize()
			require.NoError(t, err)
			require.Len(t, tokens, len(tt.expected))

			for i, tok := range tokens {
				assert.Equal(t, tt.expected[i], tok.Type, "token %d", i)
			}
		})
	}
}

func TestLexer_NumberText(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		text  string
	}{
		{"0", TokenInt, "0"},
		{"42", TokenInt, "42"},
		{"-56", TokenInt, "-56"},
		{"56.5", TokenDouble, "56.5"},
		{"0.25", TokenDouble, "0.25"},
		{"1e6", TokenDouble, "1e6"},
		{"-1.5E-3", TokenDouble, "-1.5E-3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.typ, tokens[0].Type)
			assert.Equal(t, tt.text, tokens[0].Text)
		})
	}
}

func TestLexer_Comments(t *testing.T) {
	t.Run("line comment text runs to end of line", func(t *testing.T) {
		tokens, err := NewLexer("// first\n123").Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, TokenComment, tokens[0].Type)
		assert.Equal(t, " first", tokens[0].Text)
		assert.Equal(t, TokenInt, tokens[1].Type)
	})

	t.Run("block comment keeps inner text", func(t *testing.T) {
		tokens, err := NewLexer("/* note */ 5").Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, TokenComment, tokens[0].Type)
		assert.Equal(t, " note ", tokens[0].Text)
	})

	t.Run("block comment may span lines", func(t *testing.T) {
		tokens, err := NewLexer("/* a\nb */ 1").Tokenize()
		require.NoError(t, err)
		assert.Equal(t, " a\nb ", tokens[0].Text)
	})

	t.Run("lone star inside block comment", func(t *testing.T) {
		tokens, err := NewLexer("/* a*b */").Tokenize()
		require.NoError(t, err)
		assert.Equal(t, " a*b ", tokens[0].Text)
	})
}

func TestLexer_StringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quote", `"a\"b"`, `a"b`},
		{"single quote", `"a\'b"`, "a'b"},
		{"backslash", `"a\\b"`, `a\b`},
		{"tab", `"a\tb"`, "a\tb"},
		{"newline", `"a\nb"`, "a\nb"},
		{"carriage return", `"a\rb"`, "a\rb"},
		{"line continuation", "\"a\\\nb\"", "ab"},
		{"single quoted with double quote inside", `'say "hi"'`, `say "hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			require.NoError(t, err)
			require.Equal(t, TokenString, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Text)
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := NewLexer("[1,\n  22]").Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos) // [
	assert.Equal(t, Position{Line: 1, Column: 2, Offset: 1}, tokens[1].Pos) // 1
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 6}, tokens[3].Pos) // 22
	assert.Equal(t, Position{Line: 2, Column: 5, Offset: 8}, tokens[4].Pos) // ]
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category error
		line     int
		col      int
	}{
		{"unterminated string", `"abc`, ErrUnterminatedString, 1, 1},
		{"unterminated single quoted string", "'abc", ErrUnterminatedString, 1, 1},
		{"unterminated block comment", "\n/* never closed", ErrUnterminatedComment, 2, 1},
		{"invalid escape", `"a\qb"`, ErrInvalidEscape, 1, 3},
		{"stray slash", "/5", ErrUnexpectedCharacter, 1, 1},
		{"unexpected character", "@", ErrUnexpectedCharacter, 1, 1},
		{"dangling minus", "-x", ErrUnexpectedCharacter, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input).Tokenize()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.category)

			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.line, serr.Pos.Line)
			assert.Equal(t, tt.col, serr.Pos.Column)
		})
	}
}

func TestTokenStream(t *testing.T) {
	tokens, err := NewLexer("[1]").Tokenize()
	require.NoError(t, err)

	ts := NewTokenStream(tokens)
	assert.Equal(t, TokenLBracket, ts.Peek().Type)
	assert.Equal(t, TokenLBracket, ts.Advance().Type)
	assert.True(t, ts.Match(TokenInt))
	assert.False(t, ts.Match(TokenComma))
	assert.Equal(t, TokenRBracket, ts.Advance().Type)
	assert.True(t, ts.AtEnd())

	// Reads past the end keep returning EOF.
	assert.Equal(t, TokenEOF, ts.Advance().Type)
	assert.Equal(t, TokenEOF, ts.Peek().Type)
}
