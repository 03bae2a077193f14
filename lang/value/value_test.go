package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruth(t *testing.T) {
	require.False(t, Truth(NilValue))
	require.False(t, Truth(Bool(false)))
	require.True(t, Truth(Bool(true)))
	require.True(t, Truth(Number(0)))
	require.True(t, Truth(Number(1)))

	h := NewHeap()
	require.True(t, Truth(h.Intern("")))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(NilValue, NilValue))
	require.False(t, Equal(NilValue, Bool(false)))
	require.True(t, Equal(Number(1), Number(1)))
	require.False(t, Equal(Number(1), Number(2)))
	require.True(t, Equal(Bool(true), Bool(true)))

	h := NewHeap()
	a := h.Intern("hi")
	b := h.Intern("hi")
	require.True(t, a == b, "interning must return the canonical instance")
	require.True(t, Equal(a, b))

	c := h.Intern("bye")
	require.False(t, Equal(a, c))
}

func TestHeapInterning(t *testing.T) {
	h := NewHeap()
	a := h.Intern("same")
	b := h.TakeString("same")
	require.Same(t, a, b)

	var obj Obj = a
	require.Equal(t, ObjStringType, obj.ObjType())
	require.Equal(t, KindObj, obj.Kind())
	require.Equal(t, "same", obj.String())
}

func TestHeapMarking(t *testing.T) {
	h := NewHeap()
	a := h.Intern("a")
	b := h.Intern("b")

	require.False(t, IsMarked(a))
	MarkObject(a)
	require.True(t, IsMarked(a))
	require.False(t, IsMarked(b))

	h.ResetMarks()
	require.False(t, IsMarked(a))

	// MarkObject on a nil Obj must not panic.
	MarkObject(nil)
	require.False(t, IsMarked(nil))
}

func TestFunctionDisplayName(t *testing.T) {
	h := NewHeap()
	fn := h.NewFunction()
	require.Equal(t, "script", fn.DisplayName())
	require.Equal(t, "<script>", fn.String())

	fn.Name = h.Intern("add")
	require.Equal(t, "add", fn.DisplayName())
	require.Equal(t, "<fn add>", fn.String())
}

func TestChunkAppend(t *testing.T) {
	var c Chunk
	c.WriteByte(1, 10)
	c.WriteByte(2, 10)
	c.WriteByte(3, 11)
	require.Equal(t, []byte{1, 2, 3}, c.Code)
	require.Equal(t, []int{10, 10, 11}, c.Lines)

	idx := c.AddConstant(Number(42))
	require.Equal(t, 0, idx)
	require.Equal(t, Number(42), c.Constants[0])
}

func TestNativeFn(t *testing.T) {
	h := NewHeap()
	n := h.NewNative("clock", func(args []Value) (Value, error) {
		return Number(0), nil
	})
	require.Equal(t, ObjNativeType, n.ObjType())
	v, err := n.Fn(nil)
	require.NoError(t, err)
	require.Equal(t, Number(0), v)
}
