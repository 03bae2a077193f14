package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/compiler"
	"github.com/mna/lumen/lang/value"
)

// Disasm compiles args[0] and prints the disassembled bytecode of the
// script and every function nested in it, instead of running it. There is
// no assembler/loader counterpart, since lumen has no persistable
// bytecode format.
func (c *Cmd) Disasm(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return DisasmFile(ctx, stdio, args[0])
}

func DisasmFile(_ context.Context, stdio mainer.Stdio, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	fn, cerr := compiler.Compile(string(src), value.NewHeap())
	if cerr != nil {
		fmt.Fprintln(stdio.Stderr, cerr)
		return cerr
	}

	disassembleRecursive(stdio, fn)
	return nil
}

func disassembleRecursive(stdio mainer.Stdio, fn *value.ObjFunction) {
	chunk.DisassembleChunk(stdio.Stdout, &fn.Chunk, fn.DisplayName())
	for _, c := range fn.Chunk.Constants {
		if nested, ok := c.(*value.ObjFunction); ok {
			disassembleRecursive(stdio, nested)
		}
	}
}
