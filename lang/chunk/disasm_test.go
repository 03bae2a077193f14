package chunk_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/value"
	"github.com/stretchr/testify/require"
)

func TestDisassembleChunk(t *testing.T) {
	var c value.Chunk
	idx := c.AddConstant(value.Number(7))
	c.WriteByte(byte(chunk.CONSTANT), 1)
	c.WriteByte(byte(idx), 1)
	c.WriteByte(byte(chunk.PRINT), 1)
	c.WriteByte(byte(chunk.NIL), 2)
	c.WriteByte(byte(chunk.RETURN), 2)

	var buf bytes.Buffer
	chunk.DisassembleChunk(&buf, &c, "test")

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "== test ==\n"))
	require.Contains(t, out, "OP_CONSTANT")
	require.Contains(t, out, "'7'")
	require.Contains(t, out, "OP_PRINT")
	require.Contains(t, out, "OP_RETURN")
}

func TestDisassembleJumpShowsTarget(t *testing.T) {
	var c value.Chunk
	offset := len(c.Code)
	c.WriteByte(byte(chunk.JUMP), 1)
	c.WriteByte(0, 1)
	c.WriteByte(2, 1)
	c.WriteByte(byte(chunk.NIL), 1)
	c.WriteByte(byte(chunk.RETURN), 1)

	var buf bytes.Buffer
	next := chunk.DisassembleInstruction(&buf, &c, offset)
	require.Equal(t, offset+3, next)
	require.Contains(t, buf.String(), "-> 5")
}
