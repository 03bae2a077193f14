// Package scanner tokenizes lumen source text one token at a time.
package scanner

import (
	"github.com/mna/lumen/lang/token"
)

// Scanner turns a source buffer into a stream of tokens. It is lazy: each
// call to ScanToken advances just far enough to produce one token, whose
// lexeme is a string copy of the bytes it spans in src.
type Scanner struct {
	src  []byte
	cur  byte // current character, 0 at end of file
	off  int  // byte offset of cur
	roff int  // offset of the byte following cur
	line int
}

// Init resets s to scan src from the beginning, starting at line 1.
func (s *Scanner) Init(src []byte) {
	s.src = src
	s.off = 0
	s.roff = 0
	s.line = 1
	s.cur = 0
	s.advance()
}

// advance reads the next byte into s.cur; s.cur is 0 at end of file.
func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = 0
		return
	}
	s.off = s.roff
	s.cur = s.src[s.roff]
	s.roff++
}

// peek returns the byte following cur without consuming it, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) atEnd() bool {
	return s.off >= len(s.src)
}

// advanceIf consumes cur and returns true if it equals b, otherwise it
// leaves the scanner untouched.
func (s *Scanner) advanceIf(b byte) bool {
	if s.atEnd() || s.cur != b {
		return false
	}
	s.advance()
	return true
}

// ScanToken returns the next token. Once the end of source is reached, it
// returns an EOF token on every subsequent call.
func (s *Scanner) ScanToken() token.Token {
	s.skipWhitespaceAndComments()

	start := s.off
	line := s.line
	if s.atEnd() {
		return s.make(token.EOF, start, line)
	}

	c := s.cur
	switch {
	case isAlpha(c):
		return s.identifier(start, line)
	case isDigit(c):
		return s.number(start, line)
	}

	s.advance()
	switch c {
	case '(':
		return s.make(token.LPAREN, start, line)
	case ')':
		return s.make(token.RPAREN, start, line)
	case '{':
		return s.make(token.LBRACE, start, line)
	case '}':
		return s.make(token.RBRACE, start, line)
	case ',':
		return s.make(token.COMMA, start, line)
	case '.':
		return s.make(token.DOT, start, line)
	case '-':
		return s.make(token.MINUS, start, line)
	case '+':
		return s.make(token.PLUS, start, line)
	case ';':
		return s.make(token.SEMICOLON, start, line)
	case '*':
		return s.make(token.STAR, start, line)
	case '/':
		return s.make(token.SLASH, start, line)
	case '!':
		if s.advanceIf('=') {
			return s.make(token.BANG_EQ, start, line)
		}
		return s.make(token.BANG, start, line)
	case '=':
		if s.advanceIf('=') {
			return s.make(token.EQ_EQ, start, line)
		}
		return s.make(token.EQ, start, line)
	case '<':
		if s.advanceIf('=') {
			return s.make(token.LT_EQ, start, line)
		}
		return s.make(token.LT, start, line)
	case '>':
		if s.advanceIf('=') {
			return s.make(token.GT_EQ, start, line)
		}
		return s.make(token.GT, start, line)
	case '"':
		return s.string(start, line)
	default:
		return s.errorToken("Unexpected character.", line)
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.cur {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peek() != '/' {
				return
			}
			for !s.atEnd() && s.cur != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) string(start, line int) token.Token {
	for !s.atEnd() && s.cur != '"' {
		if s.cur == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		return s.errorToken("Unterminated string.", line)
	}
	s.advance() // closing quote
	return s.make(token.STRING, start, line)
}

func (s *Scanner) number(start, line int) token.Token {
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(s.peek()) {
		s.advance() // '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}
	return s.make(token.NUMBER, start, line)
}

func (s *Scanner) identifier(start, line int) token.Token {
	for isAlpha(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	lit := string(s.src[start:s.off])
	return token.Token{Kind: token.LookupKeyword(lit), Lexeme: lit, Line: line}
}

func (s *Scanner) make(kind token.Kind, start, line int) token.Token {
	return token.Token{Kind: kind, Lexeme: string(s.src[start:s.off]), Line: line}
}

func (s *Scanner) errorToken(msg string, line int) token.Token {
	return token.Token{Kind: token.ILLEGAL, Lexeme: msg, Line: line}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
