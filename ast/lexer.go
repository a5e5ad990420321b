package ast

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// SyntaxError reports malformed manifest text.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func syntaxErrorf(pos Position, format string, args ...any) error {
	return errors.WithStack(&SyntaxError{Line: pos.Line, Column: pos.Column, Msg: fmt.Sprintf(format, args...)})
}

type tokenType int

const (
	tokEOF tokenType = iota
	tokIdent
	tokInteger
	tokString
	tokLParen
	tokRParen
	tokLAngle
	tokRAngle
	tokComma
	tokSemicolon
	tokArrow
)

var tokenNames = map[tokenType]string{
	tokEOF:       "end of input",
	tokIdent:     "identifier",
	tokInteger:   "integer",
	tokString:    "string",
	tokLParen:    "'('",
	tokRParen:    "')'",
	tokLAngle:    "'<'",
	tokRAngle:    "'>'",
	tokComma:     "','",
	tokSemicolon: "';'",
	tokArrow:     "'=>'",
}

func (t tokenType) String() string {
	return tokenNames[t]
}

type token struct {
	typ    tokenType
	text   string // identifier, digits, or unescaped string
	suffix string // integer type suffix
	pos    Position
}

func (t token) describe() string {
	switch t.typ {
	case tokIdent:
		return "identifier " + t.text
	case tokInteger:
		return "integer " + t.text + t.suffix
	case tokString:
		return "string " + strconv.Quote(t.text)
	default:
		return t.typ.String()
	}
}

type lexer struct {
	input        string
	position     int  // current char
	readPosition int  // after current char
	ch           rune // 0 at end of input
	line         int
	column       int
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
	l.column++
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// skipIgnored skips whitespace and // comments.
func (l *lexer) skipIgnored() {
	for !l.atEOF() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for !l.atEOF() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipIgnored()
	pos := Position{Line: l.line, Column: l.column}
	if l.atEOF() {
		return token{typ: tokEOF, pos: pos}, nil
	}

	single := func(t tokenType) (token, error) {
		l.readChar()
		return token{typ: t, pos: pos}, nil
	}

	switch {
	case l.ch == '(':
		return single(tokLParen)
	case l.ch == ')':
		return single(tokRParen)
	case l.ch == '<':
		return single(tokLAngle)
	case l.ch == '>':
		return single(tokRAngle)
	case l.ch == ',':
		return single(tokComma)
	case l.ch == ';':
		return single(tokSemicolon)
	case l.ch == '=' && l.peekChar() == '>':
		l.readChar()
		return single(tokArrow)
	case l.ch == '"':
		return l.readString(pos)
	case isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())):
		return l.readInteger(pos)
	case isIdentStart(l.ch):
		start := l.position
		for isIdentPart(l.ch) {
			l.readChar()
		}
		return token{typ: tokIdent, text: l.input[start:l.position], pos: pos}, nil
	}
	return token{}, syntaxErrorf(pos, "unexpected character %q", l.ch)
}

func (l *lexer) readString(pos Position) (token, error) {
	start := l.position
	l.readChar() // opening quote
	for {
		switch {
		case l.atEOF() || l.ch == '\n':
			return token{}, syntaxErrorf(pos, "unterminated string")
		case l.ch == '\\':
			l.readChar()
			if l.atEOF() {
				return token{}, syntaxErrorf(pos, "unterminated string")
			}
			l.readChar()
		case l.ch == '"':
			l.readChar()
			raw := l.input[start:l.position]
			s, err := strconv.Unquote(raw)
			if err != nil {
				return token{}, syntaxErrorf(pos, "invalid string %s: %v", raw, err)
			}
			return token{typ: tokString, text: s, pos: pos}, nil
		default:
			l.readChar()
		}
	}
}

func (l *lexer) readInteger(pos Position) (token, error) {
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	digits := l.input[start:l.position]

	suffixStart := l.position
	for isLower(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	suffix := l.input[suffixStart:l.position]
	if suffix == "" {
		return token{}, syntaxErrorf(pos, "integer %s has no type suffix", digits)
	}
	return token{typ: tokInteger, text: digits, suffix: suffix, pos: pos}, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
