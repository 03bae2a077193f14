package vm

import (
	"fmt"

	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/value"
)

func (f *callFrame) readByte() byte {
	b := f.fn.Chunk.Code[f.ip]
	f.ip++
	return b
}

func (f *callFrame) readShort() uint16 {
	hi, lo := f.fn.Chunk.Code[f.ip], f.fn.Chunk.Code[f.ip+1]
	f.ip += 2
	return uint16(hi)<<8 | uint16(lo)
}

func (f *callFrame) readConstant() value.Value {
	return f.fn.Chunk.Constants[f.readByte()]
}

// run is the opcode dispatch loop proper: a straight switch over the
// current instruction, operating on the VM's value stack and the
// innermost CallFrame. It refetches its CallFrame pointer after any
// instruction that pushes or pops a frame (CALL, RETURN), since those
// mutate vm.frames and could otherwise leave a stale pointer.
func (vm *VM) run() Result {
	frame := &vm.frames[len(vm.frames)-1]

	for {
		op := chunk.Op(frame.readByte())

		switch op {
		case chunk.CONSTANT:
			vm.push(frame.readConstant())

		case chunk.NIL:
			vm.push(value.NilValue)
		case chunk.TRUE:
			vm.push(value.Bool(true))
		case chunk.FALSE:
			vm.push(value.Bool(false))

		case chunk.POP:
			vm.pop()

		case chunk.GET_LOCAL:
			slot := frame.readByte()
			vm.push(vm.stack[frame.slotBase+int(slot)])
		case chunk.SET_LOCAL:
			slot := frame.readByte()
			vm.stack[frame.slotBase+int(slot)] = vm.peek(0)

		case chunk.GET_GLOBAL:
			name := frame.readConstant().(*value.ObjString)
			v, ok := vm.globals.Get(name.Chars)
			if !ok {
				vm.runtimeError("Undefined variable %s", name.Chars)
				return RuntimeError
			}
			vm.push(v)
		case chunk.DEFINE_GLOBAL:
			name := frame.readConstant().(*value.ObjString)
			vm.globals.Put(name.Chars, vm.peek(0))
			vm.pop()
		case chunk.SET_GLOBAL:
			name := frame.readConstant().(*value.ObjString)
			if _, ok := vm.globals.Get(name.Chars); !ok {
				vm.runtimeError("Undefined variable %s", name.Chars)
				return RuntimeError
			}
			vm.globals.Put(name.Chars, vm.peek(0))

		case chunk.EQUAL:
			b, a := vm.pop(), vm.pop()
			vm.push(value.Bool(value.Equal(a, b)))
		case chunk.ADD:
			if !vm.add() {
				return RuntimeError
			}
		case chunk.GREATER, chunk.LESS, chunk.SUBTRACT, chunk.MULTIPLY, chunk.DIVIDE:
			if !vm.numericBinary(op) {
				return RuntimeError
			}

		case chunk.NOT:
			vm.push(value.Bool(!value.Truth(vm.pop())))
		case chunk.NEGATE:
			n, ok := vm.peek(0).(value.Number)
			if !ok {
				vm.runtimeError("Operand must be a number.")
				return RuntimeError
			}
			vm.pop()
			vm.push(-n)

		case chunk.PRINT:
			fmt.Fprintln(vm.stdout, vm.pop().String())

		case chunk.JUMP:
			off := frame.readShort()
			frame.ip += int(off)
		case chunk.JUMP_IF_FALSE:
			off := frame.readShort()
			if !value.Truth(vm.peek(0)) {
				frame.ip += int(off)
			}
		case chunk.LOOP:
			off := frame.readShort()
			frame.ip -= int(off)

		case chunk.CALL:
			argCount := int(frame.readByte())
			callee := vm.peek(argCount)
			if !vm.callValue(callee, argCount) {
				return RuntimeError
			}
			frame = &vm.frames[len(vm.frames)-1]

		case chunk.RETURN:
			result := vm.pop()
			vm.frames = vm.frames[:len(vm.frames)-1]
			if len(vm.frames) == 0 {
				vm.pop() // the script function value itself
				return OK
			}
			vm.stack = vm.stack[:frame.slotBase]
			vm.push(result)
			frame = &vm.frames[len(vm.frames)-1]

		default:
			vm.runtimeError("Unknown opcode %d.", op)
			return RuntimeError
		}

		if vm.overflowed {
			return RuntimeError
		}
	}
}

// numericBinary implements GREATER, LESS, SUBTRACT, MULTIPLY and DIVIDE:
// pop two numeric operands, push the result, or report a runtime error and
// return false if either operand is not a number.
func (vm *VM) numericBinary(op chunk.Op) bool {
	bv, av := vm.peek(0), vm.peek(1)
	b, bok := bv.(value.Number)
	a, aok := av.(value.Number)
	if !aok || !bok {
		vm.runtimeError("Operands must be numbers.")
		return false
	}
	vm.pop()
	vm.pop()
	switch op {
	case chunk.GREATER:
		vm.push(value.Bool(a > b))
	case chunk.LESS:
		vm.push(value.Bool(a < b))
	case chunk.SUBTRACT:
		vm.push(a - b)
	case chunk.MULTIPLY:
		vm.push(a * b)
	case chunk.DIVIDE:
		vm.push(a / b)
	}
	return true
}

// add implements ADD: numeric addition or string concatenation, the one
// binary operator overloaded on operand kind.
func (vm *VM) add() bool {
	bv, av := vm.peek(0), vm.peek(1)

	if bn, bok := bv.(value.Number); bok {
		if an, aok := av.(value.Number); aok {
			vm.pop()
			vm.pop()
			vm.push(an + bn)
			return true
		}
	}
	if bs, bok := bv.(*value.ObjString); bok {
		if as, aok := av.(*value.ObjString); aok {
			vm.pop()
			vm.pop()
			vm.push(vm.heap.TakeString(as.Chars + bs.Chars))
			return true
		}
	}
	vm.runtimeError("Operands must be two numbers or two strings.")
	return false
}
