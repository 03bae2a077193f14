package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

// Tokenize runs the scanner alone over args[0] and prints each token, one
// per line, as a debugging aid.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFile(ctx, stdio, args[0])
}

func TokenizeFile(_ context.Context, stdio mainer.Stdio, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	var s scanner.Scanner
	s.Init(src)
	for {
		tok := s.ScanToken()
		fmt.Fprintf(stdio.Stdout, "%4d %-12s %q\n", tok.Line, tok.Kind, tok.Lexeme)
		if tok.Kind == token.EOF {
			return nil
		}
	}
}
