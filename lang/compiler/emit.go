package compiler

import (
	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/value"
)

func (c *compiler) emitByte(b byte) {
	c.currentChunk().WriteByte(b, c.line())
}

func (c *compiler) emitBytes(b1, b2 byte) {
	c.emitByte(b1)
	c.emitByte(b2)
}

func (c *compiler) emitReturn() {
	c.emitByte(byte(chunk.NIL))
	c.emitByte(byte(chunk.RETURN))
}

// emitConstant appends v to the current chunk's constant pool and emits
// CONSTANT<idx> to push it.
func (c *compiler) emitConstant(v value.Value) {
	idx := c.currentChunk().AddConstant(v)
	if idx > 0xff {
		c.parser.errorAtPrevious("Too many constants in one chunk.")
		return
	}
	c.emitBytes(byte(chunk.CONSTANT), byte(idx))
}

// emitJump emits op followed by a two-byte placeholder for a 16-bit jump
// offset, returning the offset of the placeholder's first byte so it can
// later be patched by patchJump.
func (c *compiler) emitJump(op chunk.Op) int {
	c.emitByte(byte(op))
	c.emitByte(0xff)
	c.emitByte(0xff)
	return len(c.currentChunk().Code) - 2
}

// patchJump backfills the placeholder at offset with the distance from just
// past the placeholder to the current end of the chunk.
func (c *compiler) patchJump(offset int) {
	jump := len(c.currentChunk().Code) - offset - 2
	if jump > 0xffff {
		c.parser.errorAtPrevious("Too much code to jump over.")
		return
	}
	code := c.currentChunk().Code
	code[offset] = byte((jump >> 8) & 0xff)
	code[offset+1] = byte(jump & 0xff)
}

// emitLoop emits OP_LOOP with a backward 16-bit distance from just past its
// own operand to start.
func (c *compiler) emitLoop(start int) {
	c.emitByte(byte(chunk.LOOP))

	offset := len(c.currentChunk().Code) - start + 2
	if offset > 0xffff {
		c.parser.errorAtPrevious("Loop body too large.")
		return
	}
	c.emitByte(byte((offset >> 8) & 0xff))
	c.emitByte(byte(offset & 0xff))
}
