package chunk

import (
	"fmt"
	"io"

	"github.com/mna/lumen/lang/value"
)

// DisassembleChunk writes a human-readable dump of every instruction in c
// to w, labeled with name. This is the read-only half of a disassembler —
// there is no matching encoder, since lumen has no persistable bytecode
// format.
func DisassembleChunk(w io.Writer, c *value.Chunk, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = DisassembleInstruction(w, c, offset)
	}
}

// DisassembleInstruction writes the instruction at offset to w and returns
// the offset of the next instruction.
func DisassembleInstruction(w io.Writer, c *value.Chunk, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)
	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.Lines[offset])
	}

	op := Op(c.Code[offset])
	switch {
	case HasByteOperand(op):
		return byteInstruction(w, c, op, offset)
	case HasJumpOperand(op):
		return jumpInstruction(w, c, op, offset)
	default:
		fmt.Fprintln(w, op)
		return offset + 1
	}
}

func byteInstruction(w io.Writer, c *value.Chunk, op Op, offset int) int {
	operand := c.Code[offset+1]
	switch op {
	case CONSTANT, GET_GLOBAL, DEFINE_GLOBAL, SET_GLOBAL:
		fmt.Fprintf(w, "%-16s %4d '%s'\n", op, operand, c.Constants[operand])
	default:
		fmt.Fprintf(w, "%-16s %4d\n", op, operand)
	}
	return offset + 2
}

func jumpInstruction(w io.Writer, c *value.Chunk, op Op, offset int) int {
	hi, lo := c.Code[offset+1], c.Code[offset+2]
	dist := int(hi)<<8 | int(lo)
	target := offset + 3 + dist
	if op == LOOP {
		target = offset + 3 - dist
	}
	fmt.Fprintf(w, "%-16s %4d -> %d\n", op, dist, target)
	return offset + 3
}
