package vm

import "github.com/mna/lumen/lang/value"

// callValue dispatches a CALL instruction's callee: an ObjFunction pushes a
// new CallFrame; an ObjNative invokes the wrapped Go function directly and
// immediately produces its result; anything else is a runtime error.
func (vm *VM) callValue(callee value.Value, argCount int) bool {
	switch c := callee.(type) {
	case *value.ObjFunction:
		return vm.call(c, argCount)
	case *value.ObjNative:
		args := append([]value.Value(nil), vm.stack[len(vm.stack)-argCount:]...)
		result, err := c.Fn(args)
		if err != nil {
			vm.runtimeError("%s", err.Error())
			return false
		}
		vm.stack = vm.stack[:len(vm.stack)-argCount-1]
		vm.push(result)
		return true
	default:
		vm.runtimeError("Can only call functions and classes.")
		return false
	}
}

func (vm *VM) call(fn *value.ObjFunction, argCount int) bool {
	if argCount != fn.Arity {
		vm.runtimeError("Expected %d arguments but got %d.", fn.Arity, argCount)
		return false
	}
	if len(vm.frames) == vm.cfg.MaxCallFrames {
		vm.runtimeError("Stack overflow.")
		return false
	}
	vm.frames = append(vm.frames, callFrame{
		fn:       fn,
		ip:       0,
		slotBase: len(vm.stack) - argCount - 1,
	})
	return true
}
