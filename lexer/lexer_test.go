package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genzlang/genz/token"
)

type tokenCase struct {
	Input    string
	Expected []token.Token
}

func tok(typ token.Type, literal string) token.Token {
	return token.Token{Type: typ, Literal: literal}
}

// stripPositions drops line/column so expectations can be written without
// tracking exact cursor math.
func stripPositions(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tok(t.Type, t.Literal))
	}
	return out
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `123 + 2`,
			Expected: []token.Token{
				tok(token.NUMBER, "123"),
				tok(token.PLUS, "+"),
				tok(token.NUMBER, "2"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: `bet n = "Alex"`,
			Expected: []token.Token{
				tok(token.VAR, "bet"),
				tok(token.IDENTIFIER, "n"),
				tok(token.ASSIGN, "="),
				tok(token.STRING, "Alex"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: "sus (s >= 90) { }",
			Expected: []token.Token{
				tok(token.IF, "sus"),
				tok(token.LPAREN, "("),
				tok(token.IDENTIFIER, "s"),
				tok(token.GE, ">="),
				tok(token.NUMBER, "90"),
				tok(token.RPAREN, ")"),
				tok(token.LBRACE, "{"),
				tok(token.RBRACE, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: "lowkey sus (x)",
			Expected: []token.Token{
				tok(token.ELSEIF, "lowkey sus"),
				tok(token.LPAREN, "("),
				tok(token.IDENTIFIER, "x"),
				tok(token.RPAREN, ")"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: "no sus { }",
			Expected: []token.Token{
				tok(token.ELSE, "no sus"),
				tok(token.LBRACE, "{"),
				tok(token.RBRACE, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: "no chill",
			Expected: []token.Token{
				tok(token.CONTINUE, "no chill"),
				tok(token.EOF, ""),
			},
		},
		{
			// "no" followed by an unrelated word stays a plain identifier:
			// "no" is not itself a keyword, so lookahead failing leaves the
			// identifier "no" followed by whatever the next word lexes as.
			Input: "no cap",
			Expected: []token.Token{
				tok(token.IDENTIFIER, "no"),
				tok(token.FALSE, "cap"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: "vibe check (x) { }",
			Expected: []token.Token{
				tok(token.SWITCH, "vibe check"),
				tok(token.LPAREN, "("),
				tok(token.IDENTIFIER, "x"),
				tok(token.RPAREN, ")"),
				tok(token.LBRACE, "{"),
				tok(token.RBRACE, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			// "vibe" alone (return) when the next word isn't "check".
			Input: "vibe a + b",
			Expected: []token.Token{
				tok(token.RETURN, "vibe"),
				tok(token.IDENTIFIER, "a"),
				tok(token.PLUS, "+"),
				tok(token.IDENTIFIER, "b"),
				tok(token.EOF, ""),
			},
		},
		{
			Input: "// a comment\nbruh 1",
			Expected: []token.Token{
				tok(token.NEWLINE, "\n"),
				tok(token.PRINT, "bruh"),
				tok(token.NUMBER, "1"),
				tok(token.EOF, ""),
			},
		},
	}

	for _, tc := range tests {
		lex := New(tc.Input)
		got, err := lex.Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, tc.Expected, stripPositions(got))
	}
}

func TestLexer_LoneAmpersandIsError(t *testing.T) {
	lex := New("a & b")
	_, err := lex.Tokenize()
	assert.Error(t, err)
}

func TestLexer_UnterminatedStringIsError(t *testing.T) {
	lex := New(`"abc`)
	_, err := lex.Tokenize()
	assert.Error(t, err)
}

func TestLexer_MalformedNumberIsError(t *testing.T) {
	lex := New("1.")
	_, err := lex.Tokenize()
	assert.Error(t, err)
}

func TestLexer_StringEscapes(t *testing.T) {
	lex := New(`"a\nb\t\"c\""`)
	got, err := lex.Tokenize()
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\t\"c\"", got[0].Literal)
}
