package compiler

import "github.com/mna/lumen/lang/token"

// precedence is one level of lumen's expression-operator precedence
// ladder, low to high.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ( )
	precPrimary
)

// parseFn is a prefix or infix parsing rule. canAssign is threaded through
// so only an assignment-context caller may let the rule consume a trailing
// "=" — this is how "a*b = c" is rejected without a lookahead token.
type parseFn func(c *compiler, canAssign bool)

type parseRule struct {
	prefix parseFn
	infix  parseFn
	prec   precedence
}

// rules is the static Pratt-parsing dispatch table: a function-pointer
// table keyed by token kind, avoiding per-call dynamic dispatch by keeping
// the table itself static.
var rules = map[token.Kind]parseRule{
	token.LPAREN:    {prefix: (*compiler).grouping, infix: (*compiler).call, prec: precCall},
	token.MINUS:     {prefix: (*compiler).unary, infix: (*compiler).binary, prec: precTerm},
	token.PLUS:      {infix: (*compiler).binary, prec: precTerm},
	token.SLASH:     {infix: (*compiler).binary, prec: precFactor},
	token.STAR:      {infix: (*compiler).binary, prec: precFactor},
	token.BANG:      {prefix: (*compiler).unary},
	token.BANG_EQ:   {infix: (*compiler).binary, prec: precEquality},
	token.EQ_EQ:     {infix: (*compiler).binary, prec: precEquality},
	token.GT:        {infix: (*compiler).binary, prec: precComparison},
	token.GT_EQ:     {infix: (*compiler).binary, prec: precComparison},
	token.LT:        {infix: (*compiler).binary, prec: precComparison},
	token.LT_EQ:     {infix: (*compiler).binary, prec: precComparison},
	token.IDENT:     {prefix: (*compiler).variable},
	token.STRING:    {prefix: (*compiler).string},
	token.NUMBER:    {prefix: (*compiler).number},
	token.AND:       {infix: (*compiler).and_, prec: precAnd},
	token.OR:        {infix: (*compiler).or_, prec: precOr},
	token.FALSE:     {prefix: (*compiler).literal},
	token.NIL:       {prefix: (*compiler).literal},
	token.TRUE:      {prefix: (*compiler).literal},
}

func ruleFor(k token.Kind) parseRule {
	return rules[k]
}
