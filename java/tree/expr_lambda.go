package tree

// LambdaParams are either typed formal parameters or bare inferred names.
type LambdaParams = Either[[]*FormalParameter, []Name]

// LambdaBody is a block or a single expression.
type LambdaBody = Either[*Block, Expression]

type Lambda struct {
	exprMarker
	Params LambdaParams
	Body   LambdaBody
}

// NewExprLambda builds a lambda with inferred parameters and an expression
// body, such as x -> x + 1.
func NewExprLambda(params []Name, body Expression) *Lambda {
	requireChild(KindLambda, "Body", body == nil)
	return &Lambda{
		Params: Right[[]*FormalParameter](copyList(params)),
		Body:   Right[*Block](body),
	}
}

// NewBlockLambda builds a lambda with formal parameters and a block body.
func NewBlockLambda(params []*FormalParameter, body *Block) *Lambda {
	requireChild(KindLambda, "Body", body == nil)
	return &Lambda{
		Params: Left[[]*FormalParameter, []Name](copyList(params)),
		Body:   Left[*Block, Expression](body),
	}
}

func (*Lambda) Kind() Kind             { return KindLambda }
func (*Lambda) Precedence() Precedence { return Assignment }

func (l *Lambda) Code() string {
	var params string
	if names, ok := l.Params.GetRight(); ok && len(names) == 1 {
		params = names[0].Code()
	} else if ok {
		params = "(" + joinCode(names, ", ") + ")"
	} else {
		params = "(" + joinCode(l.Params.left, ", ") + ")"
	}
	return params + " -> " + Match(l.Body, (*Block).Code, Expression.Code)
}

func (l *Lambda) hasMultiStatementBody() bool {
	return l.Body.IsLeft()
}

func (l *Lambda) hasSingleBareParameter() bool {
	names, ok := l.Params.GetRight()
	return ok && len(names) == 1
}

func (l *Lambda) Clone() Node {
	c := &Lambda{}
	if names, ok := l.Params.GetRight(); ok {
		c.Params = Right[[]*FormalParameter](copyList(names))
	} else {
		c.Params = Left[[]*FormalParameter, []Name](cloneList(l.Params.left))
	}
	if e, ok := l.Body.GetRight(); ok {
		c.Body = Right[*Block](cloneOf(e))
	} else {
		c.Body = Left[*Block, Expression](cloneOf(l.Body.left))
	}
	return c
}

func (l *Lambda) walkChildren(w *walker) error {
	if l.Params.isRight {
		if err := walkList(w, l, &l.Params.right); err != nil {
			return err
		}
	} else if err := walkList(w, l, &l.Params.left); err != nil {
		return err
	}
	return walkEitherField(w, l, &l.Body, false)
}

// MethodTarget is the left side of ::, an expression or a type.
type MethodTarget = Either[Expression, Type]

// MethodReference is Target::[<TypeArgs>]Name.
type MethodReference struct {
	exprMarker
	typeArgumented
	Target MethodTarget
	Name   Name
}

func (*MethodReference) Kind() Kind             { return KindMethodReference }
func (*MethodReference) Precedence() Precedence { return Primary }

func (m *MethodReference) Code() string {
	target := Match(m.Target,
		func(e Expression) string { return wrapCode(e, Primary) },
		Type.Code)
	return target + "::" + m.typeArgumentString() + m.Name.Code()
}

func (m *MethodReference) Clone() Node {
	c := &MethodReference{typeArgumented: m.cloneTypeArgumented(), Name: m.Name}
	if t, ok := m.Target.GetRight(); ok {
		c.Target = Right[Expression](cloneOf(t))
	} else {
		c.Target = Left[Expression, Type](cloneOf(m.Target.left))
	}
	return c
}

func (m *MethodReference) walkChildren(w *walker) error {
	if err := walkEitherField(w, m, &m.Target, false); err != nil {
		return err
	}
	if err := walkList(w, m, &m.typeArgs); err != nil {
		return err
	}
	return walkNode(w, m, &m.Name, false)
}

// ConstructorReference is Type::new.
type ConstructorReference struct {
	exprMarker
	typeArgumented
	Type Type
}

func (*ConstructorReference) Kind() Kind             { return KindConstructorReference }
func (*ConstructorReference) Precedence() Precedence { return Primary }

func (c *ConstructorReference) Code() string {
	return c.Type.Code() + "::" + c.typeArgumentString() + "new"
}

func (c *ConstructorReference) Clone() Node {
	return &ConstructorReference{typeArgumented: c.cloneTypeArgumented(), Type: cloneOf(c.Type)}
}

func (c *ConstructorReference) walkChildren(w *walker) error {
	if err := walkNode(w, c, &c.Type, false); err != nil {
		return err
	}
	return walkList(w, c, &c.typeArgs)
}

// SuperMethodReference is super::Name or Qualifier.super::Name.
type SuperMethodReference struct {
	exprMarker
	typeArgumented
	Qualifier QualifiedName
	Name      Name
}

func (*SuperMethodReference) Kind() Kind             { return KindSuperMethodReference }
func (*SuperMethodReference) Precedence() Precedence { return Primary }

func (s *SuperMethodReference) Code() string {
	return superPrefix(s.Qualifier) + "::" + s.typeArgumentString() + s.Name.Code()
}

func (s *SuperMethodReference) Clone() Node {
	return &SuperMethodReference{
		typeArgumented: s.cloneTypeArgumented(),
		Qualifier:      s.Qualifier,
		Name:           s.Name,
	}
}

func (s *SuperMethodReference) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Qualifier, true); err != nil {
		return err
	}
	if err := walkList(w, s, &s.typeArgs); err != nil {
		return err
	}
	return walkNode(w, s, &s.Name, false)
}

// SwitchExpr is a switch used as a value. Its cases yield values with
// arrow bodies or yield statements.
type SwitchExpr struct {
	exprMarker
	Selector Expression
	Cases    []*SwitchCase
}

func (*SwitchExpr) Kind() Kind             { return KindSwitchExpr }
func (*SwitchExpr) Precedence() Precedence { return Unary }

func (s *SwitchExpr) Code() string {
	return switchCode(s.Selector, s.Cases)
}

func (s *SwitchExpr) Clone() Node {
	return &SwitchExpr{Selector: cloneOf(s.Selector), Cases: cloneList(s.Cases)}
}

func (s *SwitchExpr) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Selector, false); err != nil {
		return err
	}
	return walkList(w, s, &s.Cases)
}

func switchCode(selector Expression, cases []*SwitchCase) string {
	head := "switch (" + selector.Code() + ") "
	if len(cases) == 0 {
		return head + "{}"
	}
	return head + "{\n" + indent(joinCode(cases, "\n")) + "\n}"
}
