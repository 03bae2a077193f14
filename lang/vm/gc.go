package vm

import "github.com/mna/lumen/lang/value"

// markRoots marks every object directly reachable from the VM: the value
// stack, the function of each active call frame, the interned-string
// table and the globals table. Anything not reachable from one of these
// roots (transitively, once a sweep exists) is garbage.
func (vm *VM) markRoots() {
	for _, v := range vm.stack {
		markValue(v)
	}
	for i := range vm.frames {
		value.MarkObject(vm.frames[i].fn)
	}
	vm.heap.MarkInternedStrings()
	vm.globals.Iter(func(_ string, v value.Value) (stop bool) {
		markValue(v)
		return false
	})
}

// markValue marks v's underlying object, if it has one; lumen's other
// value kinds (Number, Bool, nil) carry no heap allocation to mark.
func markValue(v value.Value) {
	if obj, ok := v.(value.Obj); ok {
		value.MarkObject(obj)
	}
}

// collectGarbage runs the mark phase against the VM's own roots. There is
// no sweep: this exists so GCStressTest can exercise markRoots on every
// allocation without a VM run ever segfaulting on a dangling pointer, the
// same stress mode clox's DEBUG_STRESS_GC provides.
func (vm *VM) collectGarbage() {
	vm.heap.ResetMarks()
	vm.markRoots()
}
