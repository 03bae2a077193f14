package compiler

import (
	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/token"
)

// declaration parses one declaration or statement, recovering at the next
// statement boundary if it produced a compile error.
func (c *compiler) declaration() {
	switch {
	case c.parser.match(token.VAR):
		c.varDeclaration()
	case c.parser.match(token.FUN):
		c.funDeclaration()
	default:
		c.statement()
	}

	if c.parser.panicMode {
		c.parser.synchronize()
	}
}

func (c *compiler) varDeclaration() {
	global := c.parseVariable("Expect variable name.")

	if c.parser.match(token.EQ) {
		c.expression()
	} else {
		c.emitByte(byte(chunk.NIL))
	}
	c.parser.consume(token.SEMICOLON, "Expect ';' after variable declaration.")

	c.defineVariable(global)
}

// funDeclaration parses "fun name(params) { body }". The function's own
// name is declared and marked initialized before its body compiles, so
// recursive calls to itself resolve without tripping the self-init check.
func (c *compiler) funDeclaration() {
	global := c.parseVariable("Expect function name.")
	c.markInitialized()
	c.function(KindFunction)
	c.defineVariable(global)
}

func (c *compiler) function(kind FunctionKind) {
	name := c.parser.previous.Lexeme
	c.pushFrame(kind, name)
	c.beginScope()

	c.parser.consume(token.LPAREN, "Expect '(' after function name.")
	if !c.parser.check(token.RPAREN) {
		for {
			c.current.fn.Arity++
			if c.current.fn.Arity > maxArity {
				c.parser.errorAtCurrent("Can't have more than 255 parameters.")
			}
			paramConstant := c.parseVariable("Expect parameter name.")
			c.defineVariable(paramConstant)
			if !c.parser.match(token.COMMA) {
				break
			}
		}
	}
	c.parser.consume(token.RPAREN, "Expect ')' after parameters.")
	c.parser.consume(token.LBRACE, "Expect '{' before function body.")
	c.block()

	fn := c.endFrame()
	c.emitConstant(fn)
}

func (c *compiler) statement() {
	switch {
	case c.parser.match(token.PRINT):
		c.printStatement()
	case c.parser.match(token.RETURN):
		c.returnStatement()
	case c.parser.match(token.IF):
		c.ifStatement()
	case c.parser.match(token.WHILE):
		c.whileStatement()
	case c.parser.match(token.LBRACE):
		c.beginScope()
		c.block()
		c.endScope()
	default:
		c.expressionStatement()
	}
}

func (c *compiler) block() {
	for !c.parser.check(token.RBRACE) && !c.parser.check(token.EOF) {
		c.declaration()
	}
	c.parser.consume(token.RBRACE, "Expect '}' after block.")
}

func (c *compiler) printStatement() {
	c.expression()
	c.parser.consume(token.SEMICOLON, "Expect ';' after value.")
	c.emitByte(byte(chunk.PRINT))
}

func (c *compiler) returnStatement() {
	if c.current.kind == KindScript {
		c.parser.errorAtPrevious("Can't return from top-level code.")
	}
	if c.parser.match(token.SEMICOLON) {
		c.emitReturn()
		return
	}
	c.expression()
	c.parser.consume(token.SEMICOLON, "Expect ';' after return value.")
	c.emitByte(byte(chunk.RETURN))
}

func (c *compiler) expressionStatement() {
	c.expression()
	c.parser.consume(token.SEMICOLON, "Expect ';' after expression.")
	c.emitByte(byte(chunk.POP))
}

// ifStatement emits a JUMP_IF_FALSE over the then-branch and a JUMP over
// the else-branch, backpatching both once their targets are known; the
// condition value is popped once, on whichever branch actually runs.
func (c *compiler) ifStatement() {
	c.parser.consume(token.LPAREN, "Expect '(' after 'if'.")
	c.expression()
	c.parser.consume(token.RPAREN, "Expect ')' after condition.")

	thenJump := c.emitJump(chunk.JUMP_IF_FALSE)
	c.emitByte(byte(chunk.POP))
	c.statement()

	elseJump := c.emitJump(chunk.JUMP)
	c.patchJump(thenJump)
	c.emitByte(byte(chunk.POP))

	if c.parser.match(token.ELSE) {
		c.statement()
	}
	c.patchJump(elseJump)
}

func (c *compiler) whileStatement() {
	start := len(c.currentChunk().Code)

	c.parser.consume(token.LPAREN, "Expect '(' after 'while'.")
	c.expression()
	c.parser.consume(token.RPAREN, "Expect ')' after condition.")

	exitJump := c.emitJump(chunk.JUMP_IF_FALSE)
	c.emitByte(byte(chunk.POP))
	c.statement()
	c.emitLoop(start)

	c.patchJump(exitJump)
	c.emitByte(byte(chunk.POP))
}
