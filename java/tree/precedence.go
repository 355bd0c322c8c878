package tree

import "strings"

// Precedence ranks how tightly an expression binds. Lower values bind
// tighter: Primary is the tightest and Assignment the loosest.
type Precedence int

const (
	Primary Precedence = iota
	PostUnary
	Unary
	Multiplicative
	Additive
	Shift
	Relational
	Equality
	BitAnd
	BitXor
	BitOr
	LogicalAnd
	LogicalOr
	Ternary
	Assignment
)

var precedenceNames = map[Precedence]string{
	Primary:        "Primary",
	PostUnary:      "PostUnary",
	Unary:          "Unary",
	Multiplicative: "Multiplicative",
	Additive:       "Additive",
	Shift:          "Shift",
	Relational:     "Relational",
	Equality:       "Equality",
	BitAnd:         "BitAnd",
	BitXor:         "BitXor",
	BitOr:          "BitOr",
	LogicalAnd:     "LogicalAnd",
	LogicalOr:      "LogicalOr",
	Ternary:        "Ternary",
	Assignment:     "Assignment",
}

func (p Precedence) String() string {
	if name, ok := precedenceNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Less reports whether p binds tighter than q.
func (p Precedence) Less(q Precedence) bool { return p < q }

// Greater reports whether p binds looser than q.
func (p Precedence) Greater(q Precedence) bool { return p > q }

// Wrap returns e enclosed in a ParenExpr if it binds looser than p.
func Wrap(e Expression, p Precedence) Expression {
	if e.Precedence() > p {
		return NewParenExpr(e)
	}
	return e
}

// Unwrap strips every ParenExpr around e and adds back a single one only if
// the inner expression binds looser than p. Unwrap(Unwrap(e, p), p) yields
// the same shape as Unwrap(e, p).
func Unwrap(e Expression, p Precedence) Expression {
	for {
		paren, ok := e.(*ParenExpr)
		if !ok {
			break
		}
		e = paren.Expr
	}
	return Wrap(e, p)
}

// wrapCode renders child as an operand of an expression at precedence own,
// parenthesizing it when it binds strictly looser.
func wrapCode(child Expression, own Precedence) string {
	if child.Precedence() > own {
		return "(" + child.Code() + ")"
	}
	return child.Code()
}

// wrapCodeAtLeast parenthesizes child when it binds looser than or as loose
// as own. Used for operands where associativity forbids equal precedence.
func wrapCodeAtLeast(child Expression, own Precedence) string {
	if child.Precedence() >= own {
		return "(" + child.Code() + ")"
	}
	return child.Code()
}

// castOperandCode renders the operand of a cast.
func castOperandCode(c *CastExpr) string {
	operand := c.Expr
	switch x := operand.(type) {
	case *Lambda:
		if x.hasMultiStatementBody() || x.hasSingleBareParameter() {
			return "(" + x.Code() + ")"
		}
		return x.Code()
	case *SwitchExpr:
		return "(" + x.Code() + ")"
	case *UnaryExpr:
		if !isPrimitiveCast(c.Type) && (x.Op == OpPlus || x.Op == OpMinus) {
			return "(" + x.Code() + ")"
		}
	case *PreIncrementExpr, *PreDecrementExpr:
		if !isPrimitiveCast(c.Type) {
			return "(" + x.Code() + ")"
		}
	case *Literal:
		// A negative literal renders with its sign.
		if !isPrimitiveCast(c.Type) && x.Precedence() == Unary {
			return "(" + x.Code() + ")"
		}
	}
	return wrapCode(operand, Unary)
}

func isPrimitiveCast(t Type) bool {
	_, ok := t.(*PrimitiveType)
	return ok
}

// unaryOperandCode renders the operand of a prefix or postfix operator.
// sign is the operator text for prefix operators, used to avoid gluing
// "-" and "-x" into "--x".
func unaryOperandCode(operand Expression, own Precedence, sign string) string {
	switch operand.(type) {
	case *CastExpr, *ClassCreator, *ArrayCreator:
		return "(" + operand.Code() + ")"
	}
	code := wrapCode(operand, own)
	if sign != "" && strings.HasPrefix(code, sign[:1]) && (sign[0] == '-' || sign[0] == '+') {
		return "(" + operand.Code() + ")"
	}
	return code
}
