package tree

import (
	"fmt"
	"slices"
	"strings"
)

type Block struct {
	stmtMarker
	Statements []Statement
}

func NewBlock(stmts ...Statement) *Block {
	return &Block{Statements: copyList(stmts)}
}

func (*Block) Kind() Kind     { return KindBlock }
func (b *Block) Code() string { return statementsCode(b.Statements) }
func (b *Block) Clone() Node  { return &Block{Statements: cloneList(b.Statements)} }

func (b *Block) walkChildren(w *walker) error {
	return walkList(w, b, &b.Statements)
}

type EmptyStmt struct {
	stmtMarker
}

func (*EmptyStmt) Kind() Kind   { return KindEmptyStmt }
func (*EmptyStmt) Code() string { return ";" }
func (*EmptyStmt) Clone() Node  { return &EmptyStmt{} }

type ExpressionStmt struct {
	stmtMarker
	Expr Expression
}

func NewExpressionStmt(e Expression) *ExpressionStmt {
	requireChild(KindExpressionStmt, "Expr", e == nil)
	return &ExpressionStmt{Expr: e}
}

func (*ExpressionStmt) Kind() Kind     { return KindExpressionStmt }
func (s *ExpressionStmt) Code() string { return s.Expr.Code() + ";" }
func (s *ExpressionStmt) Clone() Node  { return &ExpressionStmt{Expr: cloneOf(s.Expr)} }

func (s *ExpressionStmt) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Expr, false)
}

type LabeledStmt struct {
	stmtMarker
	Label Name
	Stmt  Statement
}

func (*LabeledStmt) Kind() Kind     { return KindLabeledStmt }
func (s *LabeledStmt) Code() string { return s.Label.Code() + ": " + s.Stmt.Code() }
func (s *LabeledStmt) Clone() Node  { return &LabeledStmt{Label: s.Label, Stmt: cloneOf(s.Stmt)} }

func (s *LabeledStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Label, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Stmt, false)
}

type BreakStmt struct {
	stmtMarker
	Label Name
}

func (*BreakStmt) Kind() Kind     { return KindBreakStmt }
func (s *BreakStmt) Code() string { return jumpCode("break", s.Label) }
func (s *BreakStmt) Clone() Node  { return &BreakStmt{Label: s.Label} }

func (s *BreakStmt) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Label, true)
}

type ContinueStmt struct {
	stmtMarker
	Label Name
}

func (*ContinueStmt) Kind() Kind     { return KindContinueStmt }
func (s *ContinueStmt) Code() string { return jumpCode("continue", s.Label) }
func (s *ContinueStmt) Clone() Node  { return &ContinueStmt{Label: s.Label} }

func (s *ContinueStmt) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Label, true)
}

func jumpCode(keyword string, label Name) string {
	if label.IsZero() {
		return keyword + ";"
	}
	return keyword + " " + label.Code() + ";"
}

type ReturnStmt struct {
	stmtMarker
	Expr Expression
}

func (*ReturnStmt) Kind() Kind     { return KindReturnStmt }
func (s *ReturnStmt) Code() string { return optionalExprCode("return", s.Expr) }
func (s *ReturnStmt) Clone() Node  { return &ReturnStmt{Expr: cloneOf(s.Expr)} }

func (s *ReturnStmt) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Expr, true)
}

func optionalExprCode(keyword string, e Expression) string {
	if e == nil {
		return keyword + ";"
	}
	return keyword + " " + e.Code() + ";"
}

type ThrowStmt struct {
	stmtMarker
	Expr Expression
}

func (*ThrowStmt) Kind() Kind     { return KindThrowStmt }
func (s *ThrowStmt) Code() string { return "throw " + s.Expr.Code() + ";" }
func (s *ThrowStmt) Clone() Node  { return &ThrowStmt{Expr: cloneOf(s.Expr)} }

func (s *ThrowStmt) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Expr, false)
}

type YieldStmt struct {
	stmtMarker
	Expr Expression
}

func (*YieldStmt) Kind() Kind     { return KindYieldStmt }
func (s *YieldStmt) Code() string { return "yield " + s.Expr.Code() + ";" }
func (s *YieldStmt) Clone() Node  { return &YieldStmt{Expr: cloneOf(s.Expr)} }

func (s *YieldStmt) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Expr, false)
}

type AssertStmt struct {
	stmtMarker
	Cond    Expression
	Message Expression
}

func (*AssertStmt) Kind() Kind { return KindAssertStmt }

func (s *AssertStmt) Code() string {
	if s.Message == nil {
		return "assert " + s.Cond.Code() + ";"
	}
	return "assert " + s.Cond.Code() + " : " + s.Message.Code() + ";"
}

func (s *AssertStmt) Clone() Node {
	return &AssertStmt{Cond: cloneOf(s.Cond), Message: cloneOf(s.Message)}
}

func (s *AssertStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Cond, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Message, true)
}

// LocalVarDecl declares one or more local variables. It always has at
// least one declarator.
type LocalVarDecl struct {
	stmtMarker
	annotated
	modified
	Type        Type
	declarators []*VariableDeclarator
}

func NewLocalVarDecl(t Type, decls ...*VariableDeclarator) (*LocalVarDecl, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %v.Type", ErrMissingChild, KindLocalVarDecl)
	}
	d := &LocalVarDecl{Type: t}
	if err := d.SetDeclarators(decls); err != nil {
		return nil, err
	}
	return d, nil
}

func (*LocalVarDecl) Kind() Kind                            { return KindLocalVarDecl }
func (d *LocalVarDecl) Declarators() []*VariableDeclarator { return copyList(d.declarators) }
func (d *LocalVarDecl) Code() string                       { return d.declCode() + ";" }

func (d *LocalVarDecl) SetDeclarators(decls []*VariableDeclarator) error {
	if len(decls) == 0 {
		return ErrNoDeclarators
	}
	if slices.Contains(decls, nil) {
		return fmt.Errorf("%w: %v.Declarators", ErrMissingChild, KindLocalVarDecl)
	}
	d.declarators = copyList(decls)
	return nil
}

// declCode renders the declaration without the terminating semicolon, as
// used in for loop headers and try resources.
func (d *LocalVarDecl) declCode() string {
	return d.annotationString(false) + d.modifierString() + d.Type.Code() + " " + joinCode(d.declarators, ", ")
}

func (d *LocalVarDecl) Clone() Node {
	return &LocalVarDecl{
		annotated:   d.cloneAnnotated(),
		modified:    d.cloneModified(),
		Type:        cloneOf(d.Type),
		declarators: cloneList(d.declarators),
	}
}

func (d *LocalVarDecl) walkChildren(w *walker) error {
	if err := walkList(w, d, &d.annotations); err != nil {
		return err
	}
	if err := walkList(w, d, &d.modifiers); err != nil {
		return err
	}
	if err := walkNode(w, d, &d.Type, false); err != nil {
		return err
	}
	return walkListMin(w, d, &d.declarators, 1)
}

// VariableDeclarator is Name[dims] [= Init].
type VariableDeclarator struct {
	dimensioned
	Name Name
	Init Initializer
}

func NewVariableDeclarator(name Name, init Expression) *VariableDeclarator {
	return &VariableDeclarator{Name: name, Init: ExprInit(init)}
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

// HasInit reports whether the declarator has an initializer.
func (v *VariableDeclarator) HasInit() bool {
	return v.Init.isRight || v.Init.left != nil
}

func (v *VariableDeclarator) Code() string {
	s := v.Name.Code() + v.dimString()
	if v.HasInit() {
		s += " = " + initializerCode(v.Init)
	}
	return s
}

func (v *VariableDeclarator) Clone() Node {
	return &VariableDeclarator{
		dimensioned: v.cloneDimensioned(),
		Name:        v.Name,
		Init:        cloneInitializer(v.Init),
	}
}

func (v *VariableDeclarator) walkChildren(w *walker) error {
	if err := walkNode(w, v, &v.Name, false); err != nil {
		return err
	}
	if err := walkList(w, v, &v.dims); err != nil {
		return err
	}
	return walkEitherField(w, v, &v.Init, true)
}

// LocalClassDecl wraps a class, interface, enum or record declared in a
// block.
type LocalClassDecl struct {
	stmtMarker
	Decl TypeDecl
}

func (*LocalClassDecl) Kind() Kind     { return KindLocalClassDecl }
func (s *LocalClassDecl) Code() string { return s.Decl.Code() }
func (s *LocalClassDecl) Clone() Node  { return &LocalClassDecl{Decl: cloneOf(s.Decl)} }

func (s *LocalClassDecl) walkChildren(w *walker) error {
	return walkNode(w, s, &s.Decl, false)
}

// ConstructorCall is an explicit this(...) or [Qualifier.]super(...) call
// at the start of a constructor body.
type ConstructorCall struct {
	stmtMarker
	typeArgumented
	Super     bool
	Qualifier Expression
	Args      []Expression
}

func (*ConstructorCall) Kind() Kind { return KindConstructorCall }

func (c *ConstructorCall) Code() string {
	var b strings.Builder
	if c.Qualifier != nil {
		b.WriteString(wrapCode(c.Qualifier, Primary))
		b.WriteByte('.')
	}
	b.WriteString(c.typeArgumentString())
	if c.Super {
		b.WriteString("super")
	} else {
		b.WriteString("this")
	}
	b.WriteString(argsCode(c.Args))
	b.WriteByte(';')
	return b.String()
}

func (c *ConstructorCall) Clone() Node {
	return &ConstructorCall{
		typeArgumented: c.cloneTypeArgumented(),
		Super:          c.Super,
		Qualifier:      cloneOf(c.Qualifier),
		Args:           cloneList(c.Args),
	}
}

func (c *ConstructorCall) walkChildren(w *walker) error {
	if err := walkNode(w, c, &c.Qualifier, true); err != nil {
		return err
	}
	if err := walkList(w, c, &c.typeArgs); err != nil {
		return err
	}
	return walkList(w, c, &c.Args)
}

// PrintStmt is the superset statement print a, b; or println a, b;.
type PrintStmt struct {
	stmtMarker
	Newline bool
	Args    []Expression
}

func (*PrintStmt) Kind() Kind { return KindPrintStmt }

func (p *PrintStmt) Code() string {
	keyword := "print"
	if p.Newline {
		keyword = "println"
	}
	if len(p.Args) == 0 {
		return keyword + ";"
	}
	return keyword + " " + joinCode(p.Args, ", ") + ";"
}

func (p *PrintStmt) Clone() Node {
	return &PrintStmt{Newline: p.Newline, Args: cloneList(p.Args)}
}

func (p *PrintStmt) walkChildren(w *walker) error {
	return walkList(w, p, &p.Args)
}
