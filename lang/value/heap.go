package value

import "github.com/dolthub/swiss"

// Heap owns every object lumen compilation and execution allocates: the
// intrusive linked list of all live objects (so FreeAll can release
// them in bulk at shutdown) and the interned-string set. A Heap is shared
// between the compiler (which allocates constant strings and the
// ObjFunctions it compiles) and the VM (which allocates strings produced
// by runtime concatenation): both must intern into the same string set, or
// two instances of the same literal would fail an identity comparison.
type Heap struct {
	objects Obj // head of the intrusive all-objects list
	strings *swiss.Map[string, *ObjString]

	// StressGC, when true, makes every allocation run a full mark phase via
	// OnAllocate; when false, allocation never triggers a mark phase. It is
	// a stress-test mode for exercising the collector's root scan on every
	// single allocation, mirroring clox's DEBUG_STRESS_GC.
	StressGC bool
	// OnAllocate is invoked before every new allocation while StressGC is
	// set. The compiler and VM each wire it to their own root-marking pass
	// (compiler.MarkCompilerRoots, vm's markRoots) for as long as they are
	// the active allocator against this heap, since Heap itself cannot
	// import either package without a cycle.
	OnAllocate func()
}

// NewHeap returns an empty heap ready to intern strings and allocate
// objects.
func NewHeap() *Heap {
	return &Heap{strings: swiss.NewMap[string, *ObjString](64)}
}

// maybeMark runs OnAllocate if stress-test mode is asking for a mark phase
// ahead of the allocation about to happen.
func (h *Heap) maybeMark() {
	if h.StressGC && h.OnAllocate != nil {
		h.OnAllocate()
	}
}

// link pushes obj onto the head of the intrusive all-objects list. Every
// allocator in this file must call it exactly once per new object.
func (h *Heap) link(obj Obj) {
	obj.header().next = h.objects
	h.objects = obj
}

// Intern returns the canonical *ObjString for the given content, copying it
// into a new allocation and linking it into the heap the first time that
// content is seen (clox's copyString: the caller's bytes are not retained).
func (h *Heap) Intern(s string) *ObjString {
	if existing, ok := h.strings.Get(s); ok {
		return existing
	}
	h.maybeMark()
	obj := &ObjString{Chars: s, hash: hashString(s)}
	h.strings.Put(s, obj)
	h.link(obj)
	return obj
}

// TakeString is like Intern, but models clox's takeString: ownership of a
// freshly-built string (e.g. the result of OP_ADD concatenation) is handed
// to the heap. Since Go strings are immutable and already garbage
// collected by the host runtime, TakeString and Intern behave identically
// here — the distinction in clox exists only to decide whether the caller's
// buffer must be freed when a canonical instance already exists, which Go
// never requires.
func (h *Heap) TakeString(s string) *ObjString {
	return h.Intern(s)
}

// NewFunction allocates and links a fresh, empty ObjFunction ready for the
// compiler to populate.
func (h *Heap) NewFunction() *ObjFunction {
	h.maybeMark()
	fn := &ObjFunction{}
	h.link(fn)
	return fn
}

// NewNative allocates and links a native function value.
func (h *Heap) NewNative(name string, fn NativeFn) *ObjNative {
	h.maybeMark()
	n := &ObjNative{Name: name, Fn: fn}
	h.link(n)
	return n
}

// MarkObject sets obj's mark bit, the GC's "reachable" flag. Marking an
// already-marked object (or a nil Obj) is a no-op, which keeps root
// scanning simple: callers never need to check before calling.
func MarkObject(obj Obj) {
	if obj == nil {
		return
	}
	obj.header().marked = true
}

// IsMarked reports whether obj has been marked reachable in the current
// mark phase.
func IsMarked(obj Obj) bool {
	return obj != nil && obj.header().marked
}

// ResetMarks clears every object's mark bit, in preparation for the next
// mark phase. Only the mark phase of a mark-sweep collector is implemented
// here (there is no sweep/reclaim pass), so marks must be reset between
// runs or a stress-test mode invoking the marker on every allocation would
// eventually find every object permanently marked.
func (h *Heap) ResetMarks() {
	for o := h.objects; o != nil; o = o.header().next {
		o.header().marked = false
	}
}

// MarkInternedStrings marks every string in the intern table reachable.
// The table is a root set of its own: a string can be the sole reference
// to an object after every lumen-visible binding to it has gone out of
// scope, yet it must survive so that future Interns of the same content
// keep returning the canonical instance.
func (h *Heap) MarkInternedStrings() {
	h.strings.Iter(func(_ string, s *ObjString) (stop bool) {
		MarkObject(s)
		return false
	})
}

// FreeAll releases every object on the intrusive list. The VM does not call
// it itself; the core does not implement incremental sweeping.
func (h *Heap) FreeAll() {
	h.objects = nil
	h.strings = swiss.NewMap[string, *ObjString](0)
}
