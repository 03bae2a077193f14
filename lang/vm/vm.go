// Package vm implements lumen's stack-based virtual machine: the opcode
// dispatch loop, call-frame stack, globals table and runtime error
// reporting.
package vm

import (
	"fmt"
	"io"
	"time"

	"github.com/dolthub/swiss"
	"github.com/mna/lumen/lang/compiler"
	"github.com/mna/lumen/lang/value"
)

// Result is the outcome of a single Interpret call.
type Result int

const (
	OK Result = iota
	CompileError
	RuntimeError
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case CompileError:
		return "COMPILE_ERROR"
	case RuntimeError:
		return "RUNTIME_ERROR"
	default:
		return "UNKNOWN_RESULT"
	}
}

// Config bounds the VM's resource usage. See internal/config for how these
// are sourced from the environment in the CLI driver; library callers may
// construct one directly.
type Config struct {
	MaxStackSlots int
	MaxCallFrames int
	GCStressTest  bool
}

// DefaultConfig mirrors clox's fixed STACK_MAX/FRAMES_MAX constants.
func DefaultConfig() Config {
	return Config{
		MaxStackSlots: 64 * 256,
		MaxCallFrames: 64,
	}
}

// callFrame is one active function invocation: the function being
// executed, the instruction pointer into its chunk, and the base index
// into vm.stack where its slots begin (slot 0 is the callee itself).
type callFrame struct {
	fn       *value.ObjFunction
	ip       int
	slotBase int
}

// VM is lumen's single-threaded, synchronous virtual machine. One VM must
// not be used concurrently from more than one goroutine: it is not
// re-entrant.
type VM struct {
	cfg    Config
	heap   *value.Heap
	stdout io.Writer
	stderr io.Writer

	stack  []value.Value
	frames []callFrame

	// overflowed is set by push when a push is refused for exceeding
	// cfg.MaxStackSlots; run checks it once per dispatched instruction and
	// Interpret clears it before each run.
	overflowed bool

	globals *swiss.Map[string, value.Value]
}

// New constructs a VM sharing heap with its compiler, required so that
// compile-time constants and runtime-allocated objects are marked by the
// same GC roots. stdout receives OP_PRINT output; stderr receives compile
// and runtime diagnostics.
func New(cfg Config, heap *value.Heap, stdout, stderr io.Writer) *VM {
	vm := &VM{
		cfg:     cfg,
		heap:    heap,
		stdout:  stdout,
		stderr:  stderr,
		globals: swiss.NewMap[string, value.Value](32),
	}
	if cfg.GCStressTest {
		heap.StressGC = true
		heap.OnAllocate = vm.collectGarbage
	}
	return vm
}

// DefineNative installs a native Go function callable from lumen source
// under name, e.g. the clock() builtin.
func (vm *VM) DefineNative(name string, fn value.NativeFn) {
	vm.globals.Put(name, vm.heap.NewNative(name, fn))
}

// DefineClock installs the canonical clock() native, returning the number
// of seconds since the Unix epoch as lumen's only numeric type.
func (vm *VM) DefineClock() {
	vm.DefineNative("clock", func(args []value.Value) (value.Value, error) {
		return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
	})
}

// Interpret compiles and executes source, returning the result of the run.
// A compile error is reported to stderr and yields CompileError without
// ever reaching the dispatch loop; a runtime error is reported to stderr
// (message plus innermost-first stack trace) and yields RuntimeError.
func (vm *VM) Interpret(source string) Result {
	fn, err := compiler.Compile(source, vm.heap)
	if err != nil {
		fmt.Fprintln(vm.stderr, err)
		return CompileError
	}

	vm.stack = vm.stack[:0]
	vm.frames = vm.frames[:0]
	vm.overflowed = false

	vm.push(fn)
	if vm.overflowed {
		return RuntimeError
	}
	if !vm.callValue(fn, 0) {
		return RuntimeError
	}

	return vm.run()
}
