package tree

// This is the this keyword, optionally qualified by an enclosing class.
type This struct {
	exprMarker
	Qualifier QualifiedName
}

func (*This) Kind() Kind             { return KindThis }
func (*This) Precedence() Precedence { return Primary }

func (t *This) Code() string {
	if t.Qualifier.IsZero() {
		return "this"
	}
	return t.Qualifier.Code() + ".this"
}

func (t *This) Clone() Node {
	c := *t
	return &c
}

func (t *This) walkChildren(w *walker) error {
	return walkNode(w, t, &t.Qualifier, true)
}

// ClassLiteral is Type.class.
type ClassLiteral struct {
	exprMarker
	Type Type
}

func (*ClassLiteral) Kind() Kind             { return KindClassLiteral }
func (*ClassLiteral) Precedence() Precedence { return Primary }
func (c *ClassLiteral) Code() string         { return c.Type.Code() + ".class" }

func (c *ClassLiteral) Clone() Node {
	return &ClassLiteral{Type: cloneOf(c.Type)}
}

func (c *ClassLiteral) walkChildren(w *walker) error {
	return walkNode(w, c, &c.Type, false)
}

type ParenExpr struct {
	exprMarker
	Expr Expression
}

// NewParenExpr panics if e is nil.
func NewParenExpr(e Expression) *ParenExpr {
	requireChild(KindParenExpr, "Expr", e == nil)
	return &ParenExpr{Expr: e}
}

func (*ParenExpr) Kind() Kind             { return KindParenExpr }
func (*ParenExpr) Precedence() Precedence { return Primary }
func (p *ParenExpr) Code() string         { return "(" + p.Expr.Code() + ")" }

func (p *ParenExpr) Clone() Node {
	return &ParenExpr{Expr: cloneOf(p.Expr)}
}

func (p *ParenExpr) walkChildren(w *walker) error {
	return walkNode(w, p, &p.Expr, false)
}

// FieldAccess is Target.Name where Target is not a plain dotted name.
// Dotted names are represented by QualifiedName.
type FieldAccess struct {
	exprMarker
	Target Expression
	Name   Name
}

func (*FieldAccess) Kind() Kind             { return KindFieldAccess }
func (*FieldAccess) Precedence() Precedence { return Primary }

func (f *FieldAccess) Code() string {
	return wrapCode(f.Target, Primary) + "." + f.Name.Code()
}

func (f *FieldAccess) Clone() Node {
	return &FieldAccess{Target: cloneOf(f.Target), Name: f.Name}
}

func (f *FieldAccess) walkChildren(w *walker) error {
	if err := walkNode(w, f, &f.Target, false); err != nil {
		return err
	}
	return walkNode(w, f, &f.Name, false)
}

// SuperFieldAccess is super.Name or Qualifier.super.Name.
type SuperFieldAccess struct {
	exprMarker
	Qualifier QualifiedName
	Name      Name
}

func (*SuperFieldAccess) Kind() Kind             { return KindSuperFieldAccess }
func (*SuperFieldAccess) Precedence() Precedence { return Primary }

func (s *SuperFieldAccess) Code() string {
	return superPrefix(s.Qualifier) + "." + s.Name.Code()
}

func (s *SuperFieldAccess) Clone() Node {
	c := *s
	return &c
}

func (s *SuperFieldAccess) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Qualifier, true); err != nil {
		return err
	}
	return walkNode(w, s, &s.Name, false)
}

func superPrefix(q QualifiedName) string {
	if q.IsZero() {
		return "super"
	}
	return q.Code() + ".super"
}

// MethodCall is [Target.][<TypeArgs>]Name(Args).
type MethodCall struct {
	exprMarker
	typeArgumented
	Target Expression
	Name   Name
	Args   []Expression
}

func NewMethodCall(target Expression, name Name, args ...Expression) *MethodCall {
	return &MethodCall{Target: target, Name: name, Args: copyList(args)}
}

func (*MethodCall) Kind() Kind             { return KindMethodCall }
func (*MethodCall) Precedence() Precedence { return Primary }

func (m *MethodCall) Code() string {
	s := ""
	if m.Target != nil {
		s = wrapCode(m.Target, Primary) + "."
	}
	return s + m.typeArgumentString() + m.Name.Code() + argsCode(m.Args)
}

func (m *MethodCall) Clone() Node {
	return &MethodCall{
		typeArgumented: m.cloneTypeArgumented(),
		Target:         cloneOf(m.Target),
		Name:           m.Name,
		Args:           cloneList(m.Args),
	}
}

func (m *MethodCall) walkChildren(w *walker) error {
	if err := walkNode(w, m, &m.Target, true); err != nil {
		return err
	}
	if err := walkList(w, m, &m.typeArgs); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.Name, false); err != nil {
		return err
	}
	return walkList(w, m, &m.Args)
}

// SuperMethodCall is super.Name(Args) or Qualifier.super.Name(Args).
type SuperMethodCall struct {
	exprMarker
	typeArgumented
	Qualifier QualifiedName
	Name      Name
	Args      []Expression
}

func (*SuperMethodCall) Kind() Kind             { return KindSuperMethodCall }
func (*SuperMethodCall) Precedence() Precedence { return Primary }

func (s *SuperMethodCall) Code() string {
	return superPrefix(s.Qualifier) + "." + s.typeArgumentString() + s.Name.Code() + argsCode(s.Args)
}

func (s *SuperMethodCall) Clone() Node {
	return &SuperMethodCall{
		typeArgumented: s.cloneTypeArgumented(),
		Qualifier:      s.Qualifier,
		Name:           s.Name,
		Args:           cloneList(s.Args),
	}
}

func (s *SuperMethodCall) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Qualifier, true); err != nil {
		return err
	}
	if err := walkList(w, s, &s.typeArgs); err != nil {
		return err
	}
	if err := walkNode(w, s, &s.Name, false); err != nil {
		return err
	}
	return walkList(w, s, &s.Args)
}

// IndexExpr is Target[Index].
type IndexExpr struct {
	exprMarker
	Target Expression
	Index  Expression
}

func (*IndexExpr) Kind() Kind             { return KindIndexExpr }
func (*IndexExpr) Precedence() Precedence { return Primary }

func (x *IndexExpr) Code() string {
	target := wrapCode(x.Target, Primary)
	// new int[1][0] would read as a two dimensional creation.
	if _, ok := x.Target.(*ArrayCreator); ok {
		target = "(" + x.Target.Code() + ")"
	}
	return target + "[" + x.Index.Code() + "]"
}

func (x *IndexExpr) Clone() Node {
	return &IndexExpr{Target: cloneOf(x.Target), Index: cloneOf(x.Index)}
}

func (x *IndexExpr) walkChildren(w *walker) error {
	if err := walkNode(w, x, &x.Target, false); err != nil {
		return err
	}
	return walkNode(w, x, &x.Index, false)
}
