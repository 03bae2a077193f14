package compiler

import (
	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

// parser holds the scanning and error-recovery state shared by every
// function-level compiler frame compiling a single source: the two most
// recent tokens, the sticky hadError flag, the panicMode flag that
// suppresses cascaded diagnostics until synchronize recovers, and the
// accumulated error list.
type parser struct {
	scanner *scanner.Scanner

	previous token.Token
	current  token.Token

	errors    ErrorList
	hadError  bool
	panicMode bool
}

func newParser(src []byte) *parser {
	s := &scanner.Scanner{}
	s.Init(src)
	return &parser{scanner: s}
}

// advance moves current into previous and scans the next non-error token,
// reporting every ERROR token the scanner produces along the way.
func (p *parser) advance() {
	p.previous = p.current
	for {
		p.current = p.scanner.ScanToken()
		if p.current.Kind != token.ILLEGAL {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

// check reports whether the current token has kind k.
func (p *parser) check(k token.Kind) bool {
	return p.current.Kind == k
}

// match consumes and returns true if the current token has kind k,
// otherwise it leaves the parser untouched.
func (p *parser) match(k token.Kind) bool {
	if !p.check(k) {
		return false
	}
	p.advance()
	return true
}

// consume advances past the current token if it has kind k, otherwise it
// reports message as an error at the current token.
func (p *parser) consume(k token.Kind, message string) {
	if p.current.Kind == k {
		p.advance()
		return
	}
	p.errorAtCurrent(message)
}

func (p *parser) errorAtCurrent(message string) {
	p.errorAt(p.current, message)
}

func (p *parser) errorAtPrevious(message string) {
	p.errorAt(p.previous, message)
}

// errorAt reports message at tok, unless panicMode is already suppressing
// cascaded diagnostics from the same failure.
func (p *parser) errorAt(tok token.Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	where := "at end"
	if tok.Kind == token.ILLEGAL {
		where = ""
	} else if tok.Kind != token.EOF {
		where = "at '" + tok.Lexeme + "'"
	}
	p.errors.Add(tok.Line, where, message)
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so that a single syntax error does not cascade into a wall of
// spurious follow-on diagnostics.
func (p *parser) synchronize() {
	p.panicMode = false

	for p.current.Kind != token.EOF {
		if p.previous.Kind == token.SEMICOLON {
			return
		}
		switch p.current.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
