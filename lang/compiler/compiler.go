// Package compiler is lumen's single-pass compiler: a Pratt expression
// parser fused directly with bytecode emission and lexical-scope
// resolution, with no intermediate AST. It mirrors clox's compiler.c: every
// declaration and statement is scanned, parsed and emitted in one pass
// over the token stream.
package compiler

import (
	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/token"
	"github.com/mna/lumen/lang/value"
)

// maxLocals bounds the compile-time local array, matching the 8-bit
// GET_LOCAL/SET_LOCAL slot operand.
const maxLocals = 256

// maxArity bounds a function's parameter count to what fits in the 8-bit
// CALL operand.
const maxArity = 255

// FunctionKind distinguishes the implicit top-level script frame from a
// user-declared function frame; only the latter permits a return
// statement — any "return" in top-level code, with or without a value, is a
// compile error.
type FunctionKind int

const (
	// KindScript is the single implicit top-level compiler frame created by
	// Compile.
	KindScript FunctionKind = iota
	// KindFunction is a user-declared function body.
	KindFunction
)

// local is a compile-time record of one declared local variable, mirroring
// the runtime value stack slot it will occupy.
type local struct {
	name  string
	depth int // -1 means declared but not yet initialized
}

// fcomp is one function-level compiler frame. Frames form a singly-linked
// list through enclosing, one per function nested inside another; it is
// also a natural GC-roots chain, though the core only needs it live during
// compilation since the VM does not keep compiler frames around afterward.
type fcomp struct {
	enclosing *fcomp

	fn   *value.ObjFunction
	kind FunctionKind

	locals     []local
	scopeDepth int
}

// compiler drives a single compilation: shared parser state plus the
// chain of function-level frames, the innermost of which (current) is
// being emitted into.
type compiler struct {
	parser  *parser
	heap    *value.Heap
	current *fcomp
}

// Compile compiles source into a top-level script ObjFunction ready for
// the VM to call, or returns the accumulated ErrorList if any compile
// error occurred. Every allocation (the script function, nested function
// objects, interned strings) is made through heap, the same heap the VM
// will execute against, so that compile-time constants and run-time
// objects share one interned-string set and one GC root set.
func Compile(source string, heap *value.Heap) (*value.ObjFunction, error) {
	c := &compiler{
		parser: newParser([]byte(source)),
		heap:   heap,
	}

	if heap.StressGC {
		prev := heap.OnAllocate
		heap.OnAllocate = func() {
			heap.ResetMarks()
			MarkCompilerRoots(c.current)
		}
		defer func() { heap.OnAllocate = prev }()
	}

	c.pushFrame(KindScript, "")

	c.parser.advance()
	for !c.parser.match(token.EOF) {
		c.declaration()
	}

	fn := c.endFrame()
	if c.parser.hadError {
		return nil, c.parser.errors.Err()
	}
	return fn, nil
}

// pushFrame begins compiling a new function, linking it to the
// currently-innermost frame (nil for the top-level script).
func (c *compiler) pushFrame(kind FunctionKind, name string) {
	fn := c.heap.NewFunction()
	if name != "" {
		fn.Name = c.heap.Intern(name)
	}
	f := &fcomp{enclosing: c.current, fn: fn, kind: kind}
	// Slot 0 of every frame is reserved for the callee itself, mirroring
	// the runtime CallFrame's slot layout.
	f.locals = append(f.locals, local{name: "", depth: 0})
	c.current = f
}

// endFrame finalizes the current frame's function and pops back to its
// enclosing frame.
func (c *compiler) endFrame() *value.ObjFunction {
	c.emitReturn()
	fn := c.current.fn
	c.current = c.current.enclosing
	return fn
}

func (c *compiler) currentChunk() *value.Chunk {
	return &c.current.fn.Chunk
}

func (c *compiler) line() int {
	return c.parser.previous.Line
}

// identifierConstant interns name and returns its constant-pool index, for
// use as the nameIdx operand of GET_GLOBAL/DEFINE_GLOBAL/SET_GLOBAL.
func (c *compiler) identifierConstant(name string) byte {
	idx := c.currentChunk().AddConstant(c.heap.Intern(name))
	return byte(idx)
}

// --- scope & local resolution ---

func (c *compiler) beginScope() {
	c.current.scopeDepth++
}

func (c *compiler) endScope() {
	c.current.scopeDepth--
	locals := c.current.locals
	for len(locals) > 0 && locals[len(locals)-1].depth > c.current.scopeDepth {
		c.emitByte(byte(chunk.POP))
		locals = locals[:len(locals)-1]
	}
	c.current.locals = locals
}

// declareVariable registers name as a new local in the current scope. It
// is a no-op at global scope, where variables are looked up by name in the
// globals map instead of by slot.
func (c *compiler) declareVariable(name string) {
	if c.current.scopeDepth == 0 {
		return
	}
	for i := len(c.current.locals) - 1; i >= 0; i-- {
		l := c.current.locals[i]
		if l.depth != -1 && l.depth < c.current.scopeDepth {
			break
		}
		if l.name == name {
			c.parser.errorAtPrevious("Already a variable with this name in this scope.")
		}
	}
	c.addLocal(name)
}

func (c *compiler) addLocal(name string) {
	if len(c.current.locals) >= maxLocals {
		c.parser.errorAtPrevious("Too many local variables in function.")
		return
	}
	c.current.locals = append(c.current.locals, local{name: name, depth: -1})
}

// markInitialized sets the most recently declared local's depth to the
// current scope depth, deferred until after its initializer has compiled
// so that "var x = x;" in a non-global scope resolves to an outer x (or
// errors via the depth==-1 check in resolveLocal).
func (c *compiler) markInitialized() {
	if c.current.scopeDepth == 0 {
		return
	}
	c.current.locals[len(c.current.locals)-1].depth = c.current.scopeDepth
}

// resolveLocal scans locals from innermost to outermost for name, reporting
// a self-initialization error if name's own declaration is still being
// compiled. ok is false if no local by that name is in scope (the caller
// should fall back to a global).
func (c *compiler) resolveLocal(name string) (slot byte, ok bool) {
	for i := len(c.current.locals) - 1; i >= 0; i-- {
		l := c.current.locals[i]
		if l.name != name {
			continue
		}
		if l.depth == -1 {
			c.parser.errorAtPrevious("Can't read local variable in it's own initializer.")
		}
		return byte(i), true
	}
	return 0, false
}

// parseVariable consumes an identifier token, declares it as a local if in
// a non-global scope, and returns its identifier-constant index (used only
// for globals).
func (c *compiler) parseVariable(errorMessage string) byte {
	c.parser.consume(token.IDENT, errorMessage)
	name := c.parser.previous.Lexeme

	c.declareVariable(name)
	if c.current.scopeDepth > 0 {
		return 0
	}
	return c.identifierConstant(name)
}

// defineVariable emits DEFINE_GLOBAL for a global variable, or marks the
// most recent local initialized if compiling inside a scope (the runtime
// value is already sitting in its reserved stack slot, so no bytecode is
// needed).
func (c *compiler) defineVariable(global byte) {
	if c.current.scopeDepth > 0 {
		c.markInitialized()
		return
	}
	c.emitBytes(byte(chunk.DEFINE_GLOBAL), global)
}
