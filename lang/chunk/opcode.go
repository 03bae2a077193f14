// Package chunk defines the opcode set lumen's compiler emits and the VM
// dispatches over. The bytecode container itself (Chunk) lives in
// lang/value alongside ObjFunction, which embeds it by value, and that
// split keeps lang/chunk free to import lang/value without a cycle.
package chunk

import "fmt"

// Op is a single bytecode instruction.
type Op uint8

// "x y OP z" is a stack picture: the state of the operand stack before and
// after execution of the instruction. OP<idx> denotes an 8-bit immediate
// operand indexing into a table (locals, constants, or names); jump ops
// carry a 16-bit big-endian immediate instead.
const ( //nolint:revive
	CONSTANT Op = iota // -          CONSTANT<idx>     value
	NIL                // -          NIL               nil
	TRUE               // -          TRUE              true
	FALSE              // -          FALSE             false
	POP                // x          POP               -

	GET_LOCAL    // -        GET_LOCAL<slot>    value
	SET_LOCAL    // value    SET_LOCAL<slot>    value
	GET_GLOBAL   // -        GET_GLOBAL<idx>    value
	DEFINE_GLOBAL // value   DEFINE_GLOBAL<idx> -
	SET_GLOBAL   // value    SET_GLOBAL<idx>    value

	EQUAL   // a b    EQUAL    bool
	GREATER // a b    GREATER  bool
	LESS    // a b    LESS     bool

	ADD      // a b    ADD      a+b
	SUBTRACT // a b    SUBTRACT a-b
	MULTIPLY // a b    MULTIPLY a*b
	DIVIDE   // a b    DIVIDE   a/b
	NOT      // a      NOT      !a
	NEGATE   // a      NEGATE   -a

	PRINT // a    PRINT    -

	JUMP          // -     JUMP<off16>          -
	JUMP_IF_FALSE // a     JUMP_IF_FALSE<off16> a
	LOOP          // -     LOOP<off16>          -

	CALL // fn arg1..argN    CALL<argCount>    result

	RETURN // a    RETURN    -

	opMax
)

var opNames = [...]string{
	CONSTANT:      "OP_CONSTANT",
	NIL:           "OP_NIL",
	TRUE:          "OP_TRUE",
	FALSE:         "OP_FALSE",
	POP:           "OP_POP",
	GET_LOCAL:     "OP_GET_LOCAL",
	SET_LOCAL:     "OP_SET_LOCAL",
	GET_GLOBAL:    "OP_GET_GLOBAL",
	DEFINE_GLOBAL: "OP_DEFINE_GLOBAL",
	SET_GLOBAL:    "OP_SET_GLOBAL",
	EQUAL:         "OP_EQUAL",
	GREATER:       "OP_GREATER",
	LESS:          "OP_LESS",
	ADD:           "OP_ADD",
	SUBTRACT:      "OP_SUBTRACT",
	MULTIPLY:      "OP_MULTIPLY",
	DIVIDE:        "OP_DIVIDE",
	NOT:           "OP_NOT",
	NEGATE:        "OP_NEGATE",
	PRINT:         "OP_PRINT",
	JUMP:          "OP_JUMP",
	JUMP_IF_FALSE: "OP_JUMP_IF_FALSE",
	LOOP:          "OP_LOOP",
	CALL:          "OP_CALL",
	RETURN:        "OP_RETURN",
}

func (op Op) String() string {
	if op < opMax {
		return opNames[op]
	}
	return fmt.Sprintf("illegal opcode (%d)", byte(op))
}

// HasByteOperand reports whether op is followed by a single-byte immediate
// operand (a constant index, a local slot, or a global-name constant
// index).
func HasByteOperand(op Op) bool {
	switch op {
	case CONSTANT, GET_LOCAL, SET_LOCAL, GET_GLOBAL, DEFINE_GLOBAL, SET_GLOBAL, CALL:
		return true
	}
	return false
}

// HasJumpOperand reports whether op is followed by a 16-bit big-endian jump
// offset.
func HasJumpOperand(op Op) bool {
	switch op {
	case JUMP, JUMP_IF_FALSE, LOOP:
		return true
	}
	return false
}
