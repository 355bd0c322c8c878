package tree

type UnaryOp int

const (
	OpPlus UnaryOp = iota
	OpMinus
	OpNot
	OpComplement
)

var unaryOpText = map[UnaryOp]string{
	OpPlus:       "+",
	OpMinus:      "-",
	OpNot:        "!",
	OpComplement: "~",
}

func (op UnaryOp) String() string { return unaryOpText[op] }

// UnaryExpr is a prefix sign, logical not or bitwise complement.
type UnaryExpr struct {
	exprMarker
	Op   UnaryOp
	Expr Expression
}

// NewUnaryExpr panics if e is nil, as do the other operator constructors
// for their operands.
func NewUnaryExpr(op UnaryOp, e Expression) *UnaryExpr {
	requireChild(KindUnaryExpr, "Expr", e == nil)
	return &UnaryExpr{Op: op, Expr: e}
}

func (*UnaryExpr) Kind() Kind             { return KindUnaryExpr }
func (*UnaryExpr) Precedence() Precedence { return Unary }

func (u *UnaryExpr) Code() string {
	op := u.Op.String()
	return op + unaryOperandCode(u.Expr, Unary, op)
}

func (u *UnaryExpr) Clone() Node {
	return &UnaryExpr{Op: u.Op, Expr: cloneOf(u.Expr)}
}

func (u *UnaryExpr) walkChildren(w *walker) error {
	return walkNode(w, u, &u.Expr, false)
}

type PreIncrementExpr struct {
	exprMarker
	Expr Expression
}

func (*PreIncrementExpr) Kind() Kind             { return KindPreIncrementExpr }
func (*PreIncrementExpr) Precedence() Precedence { return Unary }
func (p *PreIncrementExpr) Code() string         { return "++" + unaryOperandCode(p.Expr, Unary, "++") }
func (p *PreIncrementExpr) Clone() Node          { return &PreIncrementExpr{Expr: cloneOf(p.Expr)} }

func (p *PreIncrementExpr) walkChildren(w *walker) error {
	return walkNode(w, p, &p.Expr, false)
}

type PreDecrementExpr struct {
	exprMarker
	Expr Expression
}

func (*PreDecrementExpr) Kind() Kind             { return KindPreDecrementExpr }
func (*PreDecrementExpr) Precedence() Precedence { return Unary }
func (p *PreDecrementExpr) Code() string         { return "--" + unaryOperandCode(p.Expr, Unary, "--") }
func (p *PreDecrementExpr) Clone() Node          { return &PreDecrementExpr{Expr: cloneOf(p.Expr)} }

func (p *PreDecrementExpr) walkChildren(w *walker) error {
	return walkNode(w, p, &p.Expr, false)
}

type PostIncrementExpr struct {
	exprMarker
	Expr Expression
}

func (*PostIncrementExpr) Kind() Kind             { return KindPostIncrementExpr }
func (*PostIncrementExpr) Precedence() Precedence { return PostUnary }
func (p *PostIncrementExpr) Code() string         { return unaryOperandCode(p.Expr, PostUnary, "") + "++" }
func (p *PostIncrementExpr) Clone() Node          { return &PostIncrementExpr{Expr: cloneOf(p.Expr)} }

func (p *PostIncrementExpr) walkChildren(w *walker) error {
	return walkNode(w, p, &p.Expr, false)
}

type PostDecrementExpr struct {
	exprMarker
	Expr Expression
}

func (*PostDecrementExpr) Kind() Kind             { return KindPostDecrementExpr }
func (*PostDecrementExpr) Precedence() Precedence { return PostUnary }
func (p *PostDecrementExpr) Code() string         { return unaryOperandCode(p.Expr, PostUnary, "") + "--" }
func (p *PostDecrementExpr) Clone() Node          { return &PostDecrementExpr{Expr: cloneOf(p.Expr)} }

func (p *PostDecrementExpr) walkChildren(w *walker) error {
	return walkNode(w, p, &p.Expr, false)
}

// CastExpr is (Type) Expr. Type may be an intersection.
type CastExpr struct {
	exprMarker
	Type Type
	Expr Expression
}

func NewCastExpr(t Type, e Expression) *CastExpr {
	requireChild(KindCastExpr, "Type", t == nil)
	requireChild(KindCastExpr, "Expr", e == nil)
	return &CastExpr{Type: t, Expr: e}
}

func (*CastExpr) Kind() Kind             { return KindCastExpr }
func (*CastExpr) Precedence() Precedence { return Unary }

func (c *CastExpr) Code() string {
	return "(" + c.Type.Code() + ") " + castOperandCode(c)
}

func (c *CastExpr) Clone() Node {
	return &CastExpr{Type: cloneOf(c.Type), Expr: cloneOf(c.Expr)}
}

func (c *CastExpr) walkChildren(w *walker) error {
	if err := walkNode(w, c, &c.Type, false); err != nil {
		return err
	}
	return walkNode(w, c, &c.Expr, false)
}

type BinaryOp int

const (
	OpMul BinaryOp = iota
	OpDiv
	OpRem
	OpAdd
	OpSub
	OpShl
	OpShr
	OpUshr
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNe
	OpBitAnd
	OpBitXor
	OpBitOr
	OpAnd
	OpOr
)

var binaryOps = map[BinaryOp]struct {
	text string
	prec Precedence
}{
	OpMul:    {"*", Multiplicative},
	OpDiv:    {"/", Multiplicative},
	OpRem:    {"%", Multiplicative},
	OpAdd:    {"+", Additive},
	OpSub:    {"-", Additive},
	OpShl:    {"<<", Shift},
	OpShr:    {">>", Shift},
	OpUshr:   {">>>", Shift},
	OpLt:     {"<", Relational},
	OpGt:     {">", Relational},
	OpLe:     {"<=", Relational},
	OpGe:     {">=", Relational},
	OpEq:     {"==", Equality},
	OpNe:     {"!=", Equality},
	OpBitAnd: {"&", BitAnd},
	OpBitXor: {"^", BitXor},
	OpBitOr:  {"|", BitOr},
	OpAnd:    {"&&", LogicalAnd},
	OpOr:     {"||", LogicalOr},
}

var binaryOpsByText = map[string]BinaryOp{}

func init() {
	for op, info := range binaryOps {
		binaryOpsByText[info.text] = op
	}
}

// LookupBinaryOp returns the operator spelled s.
func LookupBinaryOp(s string) (BinaryOp, bool) {
	op, ok := binaryOpsByText[s]
	return op, ok
}

func (op BinaryOp) String() string         { return binaryOps[op].text }
func (op BinaryOp) Precedence() Precedence { return binaryOps[op].prec }

// BinaryExpr is Left Op Right. Operators are left associative, so a right
// operand of equal precedence is parenthesized.
type BinaryExpr struct {
	exprMarker
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func NewBinaryExpr(left Expression, op BinaryOp, right Expression) *BinaryExpr {
	requireChild(KindBinaryExpr, "Left", left == nil)
	requireChild(KindBinaryExpr, "Right", right == nil)
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

func (*BinaryExpr) Kind() Kind               { return KindBinaryExpr }
func (b *BinaryExpr) Precedence() Precedence { return b.Op.Precedence() }

func (b *BinaryExpr) Code() string {
	p := b.Precedence()
	return wrapCode(b.Left, p) + " " + b.Op.String() + " " + wrapCodeAtLeast(b.Right, p)
}

func (b *BinaryExpr) Clone() Node {
	return &BinaryExpr{Left: cloneOf(b.Left), Op: b.Op, Right: cloneOf(b.Right)}
}

func (b *BinaryExpr) walkChildren(w *walker) error {
	if err := walkNode(w, b, &b.Left, false); err != nil {
		return err
	}
	return walkNode(w, b, &b.Right, false)
}

// InstanceTest is the right side of instanceof: a type or a pattern.
type InstanceTest = Either[Type, Pattern]

// InstanceOfExpr is Expr instanceof Test. Negated renders the superset form
// Expr !instanceof Test.
type InstanceOfExpr struct {
	exprMarker
	Expr    Expression
	Test    InstanceTest
	Negated bool
}

func NewInstanceOfType(e Expression, t Type) *InstanceOfExpr {
	requireChild(KindInstanceOfExpr, "Expr", e == nil)
	requireChild(KindInstanceOfExpr, "Type", t == nil)
	return &InstanceOfExpr{Expr: e, Test: Left[Type, Pattern](t)}
}

func NewInstanceOfPattern(e Expression, p Pattern) *InstanceOfExpr {
	requireChild(KindInstanceOfExpr, "Expr", e == nil)
	requireChild(KindInstanceOfExpr, "Pattern", p == nil)
	return &InstanceOfExpr{Expr: e, Test: Right[Type](p)}
}

func (*InstanceOfExpr) Kind() Kind             { return KindInstanceOfExpr }
func (*InstanceOfExpr) Precedence() Precedence { return Relational }

func (x *InstanceOfExpr) Code() string {
	op := " instanceof "
	if x.Negated {
		op = " !instanceof "
	}
	return wrapCode(x.Expr, Relational) + op + Match(x.Test, Type.Code, Pattern.Code)
}

func (x *InstanceOfExpr) Clone() Node {
	c := &InstanceOfExpr{Expr: cloneOf(x.Expr), Negated: x.Negated}
	if p, ok := x.Test.GetRight(); ok {
		c.Test = Right[Type](cloneOf(p))
	} else {
		c.Test = Left[Type, Pattern](cloneOf(x.Test.left))
	}
	return c
}

func (x *InstanceOfExpr) walkChildren(w *walker) error {
	if err := walkNode(w, x, &x.Expr, false); err != nil {
		return err
	}
	return walkEitherField(w, x, &x.Test, false)
}

// ConditionalExpr is Cond ? Then : Else.
type ConditionalExpr struct {
	exprMarker
	Cond Expression
	Then Expression
	Else Expression
}

func (*ConditionalExpr) Kind() Kind             { return KindConditionalExpr }
func (*ConditionalExpr) Precedence() Precedence { return Ternary }

func (c *ConditionalExpr) Code() string {
	return wrapCodeAtLeast(c.Cond, Ternary) + " ? " + c.Then.Code() + " : " + wrapCode(c.Else, Ternary)
}

func (c *ConditionalExpr) Clone() Node {
	return &ConditionalExpr{Cond: cloneOf(c.Cond), Then: cloneOf(c.Then), Else: cloneOf(c.Else)}
}

func (c *ConditionalExpr) walkChildren(w *walker) error {
	if err := walkNode(w, c, &c.Cond, false); err != nil {
		return err
	}
	if err := walkNode(w, c, &c.Then, false); err != nil {
		return err
	}
	return walkNode(w, c, &c.Else, false)
}

type AssignOp int

const (
	OpAssign AssignOp = iota
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpAndAssign
	OpOrAssign
	OpXorAssign
	OpShlAssign
	OpShrAssign
	OpUshrAssign
)

var assignOpText = map[AssignOp]string{
	OpAssign:     "=",
	OpAddAssign:  "+=",
	OpSubAssign:  "-=",
	OpMulAssign:  "*=",
	OpDivAssign:  "/=",
	OpRemAssign:  "%=",
	OpAndAssign:  "&=",
	OpOrAssign:   "|=",
	OpXorAssign:  "^=",
	OpShlAssign:  "<<=",
	OpShrAssign:  ">>=",
	OpUshrAssign: ">>>=",
}

var assignOpsByText = map[string]AssignOp{}

func init() {
	for op, text := range assignOpText {
		assignOpsByText[text] = op
	}
}

func LookupAssignOp(s string) (AssignOp, bool) {
	op, ok := assignOpsByText[s]
	return op, ok
}

func (op AssignOp) String() string { return assignOpText[op] }

// AssignExpr is Target Op Value. Assignment is right associative.
type AssignExpr struct {
	exprMarker
	Target Expression
	Op     AssignOp
	Value  Expression
}

func NewAssignExpr(target Expression, op AssignOp, value Expression) *AssignExpr {
	requireChild(KindAssignExpr, "Target", target == nil)
	requireChild(KindAssignExpr, "Value", value == nil)
	return &AssignExpr{Target: target, Op: op, Value: value}
}

func (*AssignExpr) Kind() Kind             { return KindAssignExpr }
func (*AssignExpr) Precedence() Precedence { return Assignment }

func (a *AssignExpr) Code() string {
	return wrapCode(a.Target, PostUnary) + " " + a.Op.String() + " " + a.Value.Code()
}

func (a *AssignExpr) Clone() Node {
	return &AssignExpr{Target: cloneOf(a.Target), Op: a.Op, Value: cloneOf(a.Value)}
}

func (a *AssignExpr) walkChildren(w *walker) error {
	if err := walkNode(w, a, &a.Target, false); err != nil {
		return err
	}
	return walkNode(w, a, &a.Value, false)
}
