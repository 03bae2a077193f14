package compiler

import (
	"strconv"

	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/token"
	"github.com/mna/lumen/lang/value"
)

// maxArgs bounds a call's argument count to what fits in the 8-bit CALL
// operand.
const maxArgs = 255

func (c *compiler) expression() {
	c.parsePrecedence(precAssignment)
}

// parsePrecedence is the core Pratt-parsing loop: advance into a prefix
// rule, then keep folding in infix rules of at least the requested
// precedence.
func (c *compiler) parsePrecedence(prec precedence) {
	c.parser.advance()
	prefix := ruleFor(c.parser.previous.Kind).prefix
	if prefix == nil {
		c.parser.errorAtPrevious("Expect expression.")
		return
	}

	canAssign := prec <= precAssignment
	prefix(c, canAssign)

	for prec <= ruleFor(c.parser.current.Kind).prec {
		c.parser.advance()
		infix := ruleFor(c.parser.previous.Kind).infix
		infix(c, canAssign)
	}

	if canAssign && c.parser.match(token.EQ) {
		c.parser.errorAtPrevious("Invalid assignment target.")
	}
}

func (c *compiler) number(_ bool) {
	n, err := strconv.ParseFloat(c.parser.previous.Lexeme, 64)
	if err != nil {
		c.parser.errorAtPrevious("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(n))
}

func (c *compiler) string(_ bool) {
	lit := c.parser.previous.Lexeme
	unquoted := lit[1 : len(lit)-1] // strip the surrounding quotes
	c.emitConstant(c.heap.Intern(unquoted))
}

func (c *compiler) literal(_ bool) {
	switch c.parser.previous.Kind {
	case token.FALSE:
		c.emitByte(byte(chunk.FALSE))
	case token.TRUE:
		c.emitByte(byte(chunk.TRUE))
	case token.NIL:
		c.emitByte(byte(chunk.NIL))
	}
}

func (c *compiler) grouping(_ bool) {
	c.expression()
	c.parser.consume(token.RPAREN, "Expect ')' after expression.")
}

func (c *compiler) unary(_ bool) {
	op := c.parser.previous.Kind
	c.parsePrecedence(precUnary)
	switch op {
	case token.MINUS:
		c.emitByte(byte(chunk.NEGATE))
	case token.BANG:
		c.emitByte(byte(chunk.NOT))
	}
}

func (c *compiler) binary(_ bool) {
	op := c.parser.previous.Kind
	rule := ruleFor(op)
	c.parsePrecedence(rule.prec + 1) // left-associative: parse at one level higher

	switch op {
	case token.PLUS:
		c.emitByte(byte(chunk.ADD))
	case token.MINUS:
		c.emitByte(byte(chunk.SUBTRACT))
	case token.STAR:
		c.emitByte(byte(chunk.MULTIPLY))
	case token.SLASH:
		c.emitByte(byte(chunk.DIVIDE))
	case token.EQ_EQ:
		c.emitByte(byte(chunk.EQUAL))
	case token.BANG_EQ:
		c.emitBytes(byte(chunk.EQUAL), byte(chunk.NOT))
	case token.GT:
		c.emitByte(byte(chunk.GREATER))
	case token.GT_EQ:
		c.emitBytes(byte(chunk.LESS), byte(chunk.NOT))
	case token.LT:
		c.emitByte(byte(chunk.LESS))
	case token.LT_EQ:
		c.emitBytes(byte(chunk.GREATER), byte(chunk.NOT))
	}
}

// and_ short-circuits: if the left operand is falsey, it is left on the
// stack as the result and the right operand is never evaluated.
func (c *compiler) and_(_ bool) {
	endJump := c.emitJump(chunk.JUMP_IF_FALSE)
	c.emitByte(byte(chunk.POP))
	c.parsePrecedence(precAnd)
	c.patchJump(endJump)
}

// or_ short-circuits the other way: if the left operand is truthy, it is
// left on the stack as the result.
func (c *compiler) or_(_ bool) {
	elseJump := c.emitJump(chunk.JUMP_IF_FALSE)
	endJump := c.emitJump(chunk.JUMP)

	c.patchJump(elseJump)
	c.emitByte(byte(chunk.POP))

	c.parsePrecedence(precOr)
	c.patchJump(endJump)
}

func (c *compiler) variable(canAssign bool) {
	c.namedVariable(c.parser.previous.Lexeme, canAssign)
}

func (c *compiler) namedVariable(name string, canAssign bool) {
	var getOp, setOp chunk.Op
	slot, isLocal := c.resolveLocal(name)
	var arg byte
	if isLocal {
		arg = slot
		getOp, setOp = chunk.GET_LOCAL, chunk.SET_LOCAL
	} else {
		arg = c.identifierConstant(name)
		getOp, setOp = chunk.GET_GLOBAL, chunk.SET_GLOBAL
	}

	if canAssign && c.parser.match(token.EQ) {
		c.expression()
		c.emitBytes(byte(setOp), arg)
		return
	}
	c.emitBytes(byte(getOp), arg)
}

func (c *compiler) call(_ bool) {
	argCount := c.argumentList()
	c.emitBytes(byte(chunk.CALL), argCount)
}

func (c *compiler) argumentList() byte {
	var count int
	if !c.parser.check(token.RPAREN) {
		for {
			c.expression()
			if count == maxArgs {
				c.parser.errorAtPrevious("Can't have more than 255 arguments.")
			}
			count++
			if !c.parser.match(token.COMMA) {
				break
			}
		}
	}
	c.parser.consume(token.RPAREN, "Expect ')' after arguments.")
	return byte(count)
}
