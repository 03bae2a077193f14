package scanner_test

import (
	"testing"

	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	var s scanner.Scanner
	s.Init([]byte(src))
	var toks []token.Token
	for {
		tok := s.ScanToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "(){},.-+;*/ ! != = == > >= < <=")
	require.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.SLASH, token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ,
		token.GT, token.GT_EQ, token.LT, token.LT_EQ, token.EOF,
	}, kinds(toks))
}

func TestScanNumber(t *testing.T) {
	toks := scanAll(t, "123 45.67")
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
	require.Equal(t, "123", toks[0].Lexeme)
	require.Equal(t, "45.67", toks[1].Lexeme)
}

func TestScanNumberTrailingDotIsNotConsumed(t *testing.T) {
	toks := scanAll(t, "1.")
	require.Equal(t, []token.Kind{token.NUMBER, token.DOT, token.EOF}, kinds(toks))
	require.Equal(t, "1", toks[0].Lexeme)
}

func TestScanString(t *testing.T) {
	toks := scanAll(t, `"hello world"`)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, `"hello world"`, toks[0].Lexeme)
}

func TestScanStringSpansNewlines(t *testing.T) {
	toks := scanAll(t, "\"a\nb\" x")
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, token.IDENT, toks[1].Kind)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	toks := scanAll(t, `"never closes`)
	require.Equal(t, token.ILLEGAL, toks[0].Kind)
	require.Equal(t, "Unterminated string.", toks[0].Lexeme)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks := scanAll(t, "foo and class bar while")
	require.Equal(t, []token.Kind{
		token.IDENT, token.AND, token.CLASS, token.IDENT, token.WHILE, token.EOF,
	}, kinds(toks))
	require.Equal(t, "foo", toks[0].Lexeme)
	require.Equal(t, "bar", toks[3].Lexeme)
}

func TestScanLineCounterTracksNewlines(t *testing.T) {
	toks := scanAll(t, "a\nb\n\nc")
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
	require.Equal(t, 4, toks[2].Line)
}

func TestScanLineCommentSkipsToEndOfLine(t *testing.T) {
	toks := scanAll(t, "var x = 1; // comment here\nvar y = 2;")
	var sawComment bool
	for _, tok := range toks {
		if tok.Kind == token.ILLEGAL {
			sawComment = true
		}
	}
	require.False(t, sawComment)
	require.Equal(t, token.VAR, toks[5].Kind)
}

func TestScanIllegalCharacter(t *testing.T) {
	toks := scanAll(t, "@")
	require.Equal(t, token.ILLEGAL, toks[0].Kind)
	require.Equal(t, "Unexpected character.", toks[0].Lexeme)
}

func TestScanEOFIsRepeatable(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte(""))
	require.Equal(t, token.EOF, s.ScanToken().Kind)
	require.Equal(t, token.EOF, s.ScanToken().Kind)
}
