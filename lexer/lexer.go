// Package lexer turns GenZ source text into a stream of token.Token values.
package lexer

import (
	"fmt"
	"strings"

	"github.com/genzlang/genz/token"
)

// Lexer scans source text byte by byte, tracking line and column for
// diagnostics. It has no internal buffering beyond the current byte —
// lookahead for two-character operators and multi-word keywords is done
// through Peek and explicit save/restore of position state.
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int

	// lastSecondWord holds the second word of the most recently matched
	// multi-word keyword, stashed by checkMultiWord for the caller to fold
	// into the token's literal.
	lastSecondWord string
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{src: src, srcLength: len(src), line: 1, column: 1}
	if len(src) > 0 {
		lex.current = src[0]
	}
	return lex
}

// Error is a lexical diagnostic stamped with the line it was detected on.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

func (lex *Lexer) errorf(format string, args ...interface{}) *Error {
	return &Error{Line: lex.line, Message: fmt.Sprintf(format, args...)}
}

func (lex *Lexer) peek() byte {
	if lex.position+1 >= lex.srcLength {
		return 0
	}
	return lex.src[lex.position+1]
}

func (lex *Lexer) advance() {
	lex.position++
	lex.column++
	if lex.position >= lex.srcLength {
		lex.current = 0
		lex.position = lex.srcLength
	} else {
		lex.current = lex.src[lex.position]
	}
}

// skipSpacesAndComments consumes spaces, tabs, carriage returns, and // line
// comments. Newlines are significant (they become NEWLINE tokens) so they
// are not skipped here.
func (lex *Lexer) skipSpacesAndComments() {
	for {
		switch {
		case lex.current == ' ' || lex.current == '\t' || lex.current == '\r':
			lex.advance()
		case lex.current == '/' && lex.peek() == '/':
			for lex.current != '\n' && lex.current != 0 {
				lex.advance()
			}
		default:
			return
		}
	}
}

// Next produces the next token in the stream. It returns an error for
// invalid characters, invalid escapes, unterminated strings, and malformed
// numbers; in every case the error carries the offending line.
func (lex *Lexer) Next() (token.Token, error) {
	lex.skipSpacesAndComments()

	line, column := lex.line, lex.column

	if lex.current == 0 {
		return token.New(token.EOF, "", line, column), nil
	}

	if lex.current == '\n' {
		lex.line++
		lex.column = 1
		lex.advance()
		return token.New(token.NEWLINE, "\n", line, column), nil
	}

	if lex.current == '"' {
		return lex.readString(line, column)
	}

	if isDigit(lex.current) {
		return lex.readNumber(line, column)
	}

	if isAlpha(lex.current) || lex.current == '_' {
		return lex.readIdentifierOrKeyword(line, column)
	}

	switch lex.current {
	case '(':
		lex.advance()
		return token.New(token.LPAREN, "(", line, column), nil
	case ')':
		lex.advance()
		return token.New(token.RPAREN, ")", line, column), nil
	case '[':
		lex.advance()
		return token.New(token.LBRACKET, "[", line, column), nil
	case ']':
		lex.advance()
		return token.New(token.RBRACKET, "]", line, column), nil
	case '{':
		lex.advance()
		return token.New(token.LBRACE, "{", line, column), nil
	case '}':
		lex.advance()
		return token.New(token.RBRACE, "}", line, column), nil
	case ',':
		lex.advance()
		return token.New(token.COMMA, ",", line, column), nil
	case ';':
		lex.advance()
		return token.New(token.SEMI, ";", line, column), nil
	case ':':
		lex.advance()
		return token.New(token.COLON, ":", line, column), nil
	case '+':
		lex.advance()
		return token.New(token.PLUS, "+", line, column), nil
	case '-':
		lex.advance()
		return token.New(token.MINUS, "-", line, column), nil
	case '*':
		lex.advance()
		return token.New(token.STAR, "*", line, column), nil
	case '%':
		lex.advance()
		return token.New(token.PERCENT, "%", line, column), nil
	case '/':
		lex.advance()
		return token.New(token.SLASH, "/", line, column), nil
	case '=':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.EQ, "==", line, column), nil
		}
		lex.advance()
		return token.New(token.ASSIGN, "=", line, column), nil
	case '!':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.NE, "!=", line, column), nil
		}
		lex.advance()
		return token.New(token.BANG, "!", line, column), nil
	case '<':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.LE, "<=", line, column), nil
		}
		lex.advance()
		return token.New(token.LT, "<", line, column), nil
	case '>':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.GE, ">=", line, column), nil
		}
		lex.advance()
		return token.New(token.GT, ">", line, column), nil
	case '&':
		if lex.peek() == '&' {
			lex.advance()
			lex.advance()
			return token.New(token.AND, "&&", line, column), nil
		}
		return token.Token{}, lex.errorf("that ain't it — lone '&' is not the vibe")
	case '|':
		if lex.peek() == '|' {
			lex.advance()
			lex.advance()
			return token.New(token.OR, "||", line, column), nil
		}
		return token.Token{}, lex.errorf("that ain't it — lone '|' is not the vibe")
	}

	bad := lex.current
	lex.advance()
	return token.Token{}, lex.errorf("invalid character %q", bad)
}

func (lex *Lexer) readString(line, column int) (token.Token, error) {
	lex.advance() // opening quote
	var sb strings.Builder
	for {
		if lex.current == 0 {
			return token.Token{}, &Error{Line: line, Message: "unterminated string"}
		}
		if lex.current == '"' {
			lex.advance()
			return token.New(token.STRING, sb.String(), line, column), nil
		}
		if lex.current == '\n' {
			lex.line++
			lex.column = 1
			sb.WriteByte('\n')
			lex.advance()
			continue
		}
		if lex.current == '\\' {
			lex.advance()
			switch lex.current {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				return token.Token{}, lex.errorf("invalid escape \\%c", lex.current)
			}
			lex.advance()
			continue
		}
		sb.WriteByte(lex.current)
		lex.advance()
	}
}

func (lex *Lexer) readNumber(line, column int) (token.Token, error) {
	var sb strings.Builder
	for isDigit(lex.current) {
		sb.WriteByte(lex.current)
		lex.advance()
	}
	if lex.current == '.' && isDigit(lex.peek()) {
		sb.WriteByte('.')
		lex.advance()
		for isDigit(lex.current) {
			sb.WriteByte(lex.current)
			lex.advance()
		}
	} else if lex.current == '.' {
		return token.Token{}, lex.errorf("malformed number: '.' must be followed by a digit")
	}
	return token.New(token.NUMBER, sb.String(), line, column), nil
}

func (lex *Lexer) readIdentifierOrKeyword(line, column int) (token.Token, error) {
	var sb strings.Builder
	for isAlpha(lex.current) || isDigit(lex.current) || lex.current == '_' {
		sb.WriteByte(lex.current)
		lex.advance()
	}
	word := sb.String()

	if typ, ok := lex.checkMultiWord(word); ok {
		return token.New(typ, word+" "+lex.lastSecondWord, line, column), nil
	}

	if typ, ok := token.Lookup(word); ok {
		return token.New(typ, word, line, column), nil
	}
	return token.New(token.IDENTIFIER, word, line, column), nil
}

// lastSecondWord stashes the matched second word of a multi-word keyword so
// readIdentifierOrKeyword can build the combined literal after checkMultiWord
// reports a match.
//
// multiWordFirsts maps the three permitted first words to their permitted
// second words and the resulting token type: the closed set lowkey sus /
// no sus / no chill / vibe check.
var multiWordFirsts = map[string]map[string]token.Type{
	"lowkey": {"sus": token.ELSEIF},
	"no":     {"sus": token.ELSE, "chill": token.CONTINUE},
	"vibe":   {"check": token.SWITCH},
}

// checkMultiWord performs a bounded, non-destructive lookahead: having
// already read first as a word, it skips intervening whitespace
// (tracking line/column through any newlines it passes), reads the next
// word without consuming it unless it matches one of first's permitted
// second words, and only then commits the lookahead. If the second word
// doesn't match, the lexer's position is restored exactly, so the caller
// falls back to treating first alone.
func (lex *Lexer) checkMultiWord(first string) (token.Type, bool) {
	seconds, ok := multiWordFirsts[first]
	if !ok {
		return "", false
	}

	savedPos, savedCol, savedLine, savedCur := lex.position, lex.column, lex.line, lex.current

	for lex.current == ' ' || lex.current == '\t' || lex.current == '\r' || lex.current == '\n' {
		if lex.current == '\n' {
			lex.line++
			lex.column = 1
		}
		lex.advance()
	}

	if !isAlpha(lex.current) && lex.current != '_' {
		lex.position, lex.column, lex.line, lex.current = savedPos, savedCol, savedLine, savedCur
		return "", false
	}

	var sb strings.Builder
	for isAlpha(lex.current) || isDigit(lex.current) || lex.current == '_' {
		sb.WriteByte(lex.current)
		lex.advance()
	}
	second := sb.String()

	if typ, ok := seconds[second]; ok {
		lex.lastSecondWord = second
		return typ, true
	}

	lex.position, lex.column, lex.line, lex.current = savedPos, savedCol, savedLine, savedCur
	return "", false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// State is an opaque snapshot of the lexer's cursor, usable with Restore to
// backtrack. The parser uses this to implement the switch-case boundary
// lookahead: case bodies are statement lists parsed until the next
// lookahead that begins a case.
type State struct {
	position       int
	current        byte
	line           int
	column         int
	lastSecondWord string
}

// Save captures the lexer's current cursor.
func (lex *Lexer) Save() State {
	return State{lex.position, lex.current, lex.line, lex.column, lex.lastSecondWord}
}

// Restore rewinds the lexer to a previously captured State.
func (lex *Lexer) Restore(s State) {
	lex.position, lex.current, lex.line, lex.column, lex.lastSecondWord =
		s.position, s.current, s.line, s.column, s.lastSecondWord
}

// Tokenize runs Next to exhaustion and returns every token up to and
// including EOF, or the first error encountered.
func (lex *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
