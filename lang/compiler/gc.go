package compiler

import "github.com/mna/lumen/lang/value"

// MarkCompilerRoots marks every ObjFunction still under construction,
// walking the enclosing chain from the innermost frame outward, plus each
// function's constant pool so far. While compilation is in progress these
// functions are reachable only through the compiler's own frame chain, not
// through anything on the VM's stack or globals, so a stress-test
// collection running mid-compile would otherwise treat them as garbage.
func MarkCompilerRoots(c *fcomp) {
	for f := c; f != nil; f = f.enclosing {
		value.MarkObject(f.fn)
		for _, k := range f.fn.Chunk.Constants {
			if obj, ok := k.(value.Obj); ok {
				value.MarkObject(obj)
			}
		}
	}
}
