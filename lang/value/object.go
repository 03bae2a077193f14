package value

import "fmt"

// ObjType discriminates the concrete kind of a heap-allocated Obj.
type ObjType uint8

const (
	ObjStringType ObjType = iota
	ObjFunctionType
	ObjNativeType
)

func (t ObjType) String() string {
	switch t {
	case ObjStringType:
		return "string"
	case ObjFunctionType:
		return "function"
	case ObjNativeType:
		return "native"
	default:
		return "unknown object type"
	}
}

// Obj is implemented by every heap-allocated reference value. It is a
// closed interface — only this package may implement it — mirroring
// clox's common Obj header (a type tag, a mark bit and the intrusive
// next-object link) without resorting to unsafe pointer games: the
// unexported header method is how the heap walks and marks the list.
type Obj interface {
	Value
	ObjType() ObjType
	header() *objHeader
}

// objHeader is embedded by value in every Obj implementation. It carries
// the GC mark bit and the link that forms the VM's intrusive all-objects
// list (see Heap). Objects are exclusively owned by that list; all other
// references to them are non-owning.
type objHeader struct {
	marked bool
	next   Obj
}

func (h *objHeader) header() *objHeader { return h }

// ObjString is an immutable, interned sequence of bytes. Intern and
// TakeString on Heap both return the canonical instance for a given
// content, so string equality reduces to pointer identity.
type ObjString struct {
	objHeader
	Chars string
	hash  uint32
}

var _ Obj = (*ObjString)(nil)

func (s *ObjString) Kind() Kind       { return KindObj }
func (s *ObjString) ObjType() ObjType { return ObjStringType }
func (s *ObjString) String() string   { return s.Chars }

// hashString computes the FNV-1a hash cached on each ObjString, matching
// clox's hashString. The intern table itself is keyed by string content.
func hashString(s string) uint32 {
	var hash uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= 16777619
	}
	return hash
}

// Chunk is a function's bytecode container: an append-only byte array
// paired with a parallel per-byte line-number table and a constant pool
// addressed by an 8-bit operand (so at most 256 constants per function).
// It lives here, rather than in lang/chunk, because ObjFunction embeds it
// by value exactly as clox's ObjFunction embeds a Chunk struct, and the
// constant pool holds Values — one of which may itself be an ObjFunction,
// which would create an import cycle if Chunk lived in the (lower-level)
// opcode package.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []Value
}

// WriteByte appends b to the code array, recording line as the source line
// that produced it.
func (c *Chunk) WriteByte(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends v to the constant pool and returns its index. The
// caller is responsible for ensuring the pool does not grow past 256
// entries; lang/compiler's emitConstant reports a larger index as a compile
// error.
func (c *Chunk) AddConstant(v Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// ObjFunction is a compiled function: its arity, its bytecode chunk, and an
// optional name. A nameless function represents the top-level script.
type ObjFunction struct {
	objHeader
	Arity int
	Chunk Chunk
	Name  *ObjString // nil for the top-level script
}

var _ Obj = (*ObjFunction)(nil)

func (f *ObjFunction) Kind() Kind       { return KindObj }
func (f *ObjFunction) ObjType() ObjType { return ObjFunctionType }
func (f *ObjFunction) String() string {
	if f.Name == nil {
		return "<script>"
	}
	return fmt.Sprintf("<fn %s>", f.Name.Chars)
}

// DisplayName returns the function's name for diagnostics and stack
// traces, or "script" for the nameless top-level function.
func (f *ObjFunction) DisplayName() string {
	if f.Name == nil {
		return "script"
	}
	return f.Name.Chars
}

// NativeFn is the signature of a Go function exposed to lumen programs as
// a native callable, the same role clox's OBJ_NATIVE plays for builtins
// like clock().
type NativeFn func(args []Value) (Value, error)

// ObjNative wraps a NativeFn so it can be stored as a Value and called
// through OP_CALL exactly like an ObjFunction.
type ObjNative struct {
	objHeader
	Name string
	Fn   NativeFn
}

var _ Obj = (*ObjNative)(nil)

func (n *ObjNative) Kind() Kind       { return KindObj }
func (n *ObjNative) ObjType() ObjType { return ObjNativeType }
func (n *ObjNative) String() string   { return fmt.Sprintf("<native fn %s>", n.Name) }
