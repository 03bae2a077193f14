package vm

import "github.com/mna/lumen/lang/value"

// push appends v to the value stack, refusing the push and reporting a
// runtime error if doing so would exceed cfg.MaxStackSlots. A refused push
// sets vm.overflowed, which run's dispatch loop checks once per
// instruction so it never executes the next opcode against a stack that
// is missing a value it expects.
func (vm *VM) push(v value.Value) {
	if len(vm.stack) >= vm.cfg.MaxStackSlots {
		vm.runtimeError("Stack overflow.")
		vm.overflowed = true
		return
	}
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() value.Value {
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

// peek returns the value distance slots down from the top of the stack
// without popping (peek(0) is the top).
func (vm *VM) peek(distance int) value.Value {
	return vm.stack[len(vm.stack)-1-distance]
}

func (vm *VM) resetStack() {
	vm.stack = vm.stack[:0]
	vm.frames = vm.frames[:0]
}
