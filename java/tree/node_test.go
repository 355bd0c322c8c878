package tree

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindName, "Name"},
		{KindBinaryExpr, "BinaryExpr"},
		{KindSwitchCase, "SwitchCase"},
		{KindProvidesDirective, "ProvidesDirective"},
		{Kind(9999), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	block := NewBlock(NewExpressionStmt(call("a")))
	clone := block.Clone().(*Block)
	clone.Statements = append(clone.Statements, NewExpressionStmt(call("b")))
	if len(block.Statements) != 1 {
		t.Errorf("original has %d statements after appending to clone, want 1", len(block.Statements))
	}
	clone.Statements[0].(*ExpressionStmt).Expr = call("c")
	if got := block.Code(); got != "{\n    a();\n}" {
		t.Errorf("original changed to %q", got)
	}

	class := NewClassDecl(name("A"))
	class.AddModifier(Public)
	cc := class.Clone().(*ClassDecl)
	cc.AddModifier(Final)
	if len(class.Modifiers()) != 1 {
		t.Errorf("original has %d modifiers, want 1", len(class.Modifiers()))
	}

	decl, err := NewLocalVarDecl(primitive("int"), NewVariableDeclarator(name("x"), nil))
	if err != nil {
		t.Fatal(err)
	}
	dc := decl.Clone().(*LocalVarDecl)
	if err := dc.SetDeclarators(append(dc.Declarators(), NewVariableDeclarator(name("y"), nil))); err != nil {
		t.Fatal(err)
	}
	if len(decl.Declarators()) != 1 {
		t.Error("declarators shared between clone and original")
	}
}

func TestSettersCopyInput(t *testing.T) {
	mods := []Modifier{Public}
	class := NewClassDecl(name("A"))
	class.SetModifiers(mods)
	mods[0] = Private
	if !class.HasModifier(Public) || class.HasModifier(Private) {
		t.Error("SetModifiers aliased the caller's slice")
	}

	got := class.Modifiers()
	got[0] = Static
	if !class.HasModifier(Public) {
		t.Error("Modifiers returned the internal slice")
	}
}

func TestConstructionInvariants(t *testing.T) {
	if _, err := NewTypeUnion(classType("A")); !errors.Is(err, ErrTooFewTypes) {
		t.Errorf("NewTypeUnion(A) error = %v, want ErrTooFewTypes", err)
	}
	if _, err := NewTypeIntersection(); !errors.Is(err, ErrTooFewTypes) {
		t.Errorf("NewTypeIntersection() error = %v, want ErrTooFewTypes", err)
	}
	if _, err := NewLocalVarDecl(primitive("int")); !errors.Is(err, ErrNoDeclarators) {
		t.Errorf("NewLocalVarDecl error = %v, want ErrNoDeclarators", err)
	}
	if _, err := NewFieldDecl(primitive("int")); !errors.Is(err, ErrNoDeclarators) {
		t.Errorf("NewFieldDecl error = %v, want ErrNoDeclarators", err)
	}
	if _, err := NewPrimitiveType("string"); err == nil {
		t.Error("NewPrimitiveType(string) succeeded")
	}

	inner, err := NewTypeUnion(classType("B"), classType("C"))
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewTypeUnion(classType("A"), inner)
	if err != nil {
		t.Fatal(err)
	}
	if len(outer.Types()) != 3 {
		t.Errorf("nested union has %d types, want 3 after flattening", len(outer.Types()))
	}
	if got := outer.Code(); got != "A | B | C" {
		t.Errorf("Code() = %q", got)
	}
}

func TestConstructorsRejectMissingChildren(t *testing.T) {
	x := name("x")
	tests := []struct {
		name  string
		build func()
	}{
		{"unary", func() { NewUnaryExpr(OpMinus, nil) }},
		{"cast type", func() { NewCastExpr(nil, x) }},
		{"cast operand", func() { NewCastExpr(primitive("int"), nil) }},
		{"binary left", func() { NewBinaryExpr(nil, OpAdd, x) }},
		{"binary right", func() { NewBinaryExpr(x, OpAdd, nil) }},
		{"assign value", func() { NewAssignExpr(x, OpAssign, nil) }},
		{"paren", func() { NewParenExpr(nil) }},
		{"instanceof", func() { NewInstanceOfType(x, nil) }},
		{"class creator", func() { NewClassCreator(nil) }},
		{"array type", func() { NewArrayType(nil) }},
		{"expression statement", func() { NewExpressionStmt(nil) }},
		{"lambda body", func() { NewExprLambda([]Name{x}, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrMissingChild) {
					t.Errorf("recovered %v, want ErrMissingChild", err)
				}
			}()
			tt.build()
		})
	}

	if _, err := NewLocalVarDecl(nil, NewVariableDeclarator(x, nil)); !errors.Is(err, ErrMissingChild) {
		t.Errorf("NewLocalVarDecl(nil type) error = %v, want ErrMissingChild", err)
	}
	if _, err := NewFieldDecl(primitive("int"), nil); !errors.Is(err, ErrMissingChild) {
		t.Errorf("NewFieldDecl(nil declarator) error = %v, want ErrMissingChild", err)
	}
}

func TestDocComments(t *testing.T) {
	param := NewFormalParameter(primitive("int"), name("x"))
	if err := param.SetDocComment("nope"); !errors.Is(err, ErrDocNotAllowed) {
		t.Errorf("FormalParameter.SetDocComment error = %v, want ErrDocNotAllowed", err)
	}
	if err := param.SetDocComment(""); err != nil {
		t.Errorf("clearing a doc comment failed: %v", err)
	}
	receiver := &ThisParameter{Type: classType("A")}
	if err := receiver.SetDocComment("nope"); !errors.Is(err, ErrDocNotAllowed) {
		t.Errorf("ThisParameter.SetDocComment error = %v, want ErrDocNotAllowed", err)
	}

	class := NewClassDecl(name("A"))
	if err := class.SetDocComment(" bad */ "); !errors.Is(err, ErrInvalidDocComment) {
		t.Errorf("SetDocComment error = %v, want ErrInvalidDocComment", err)
	}
	var d Documented = class
	if err := d.SetDocComment("* ok "); err != nil {
		t.Fatal(err)
	}
	if d.DocComment() != "* ok " {
		t.Errorf("DocComment() = %q", d.DocComment())
	}
}

func TestWrapUnwrap(t *testing.T) {
	sum := NewBinaryExpr(name("a"), OpAdd, name("b"))

	if _, ok := Wrap(sum, Multiplicative).(*ParenExpr); !ok {
		t.Error("Wrap should parenthesize a looser expression")
	}
	if Wrap(sum, Additive) != Expression(sum) {
		t.Error("Wrap should leave an expression of equal precedence alone")
	}

	doubled := NewParenExpr(NewParenExpr(sum))
	once := Unwrap(doubled, Multiplicative)
	p, ok := once.(*ParenExpr)
	if !ok || p.Expr != Expression(sum) {
		t.Fatalf("Unwrap = %s, want a single parenthesis layer", once.Code())
	}
	twice := Unwrap(once, Multiplicative)
	if twice.Code() != once.Code() {
		t.Errorf("Unwrap is not idempotent: %q then %q", once.Code(), twice.Code())
	}

	if Unwrap(NewParenExpr(name("a")), Multiplicative) != Expression(name("a")) {
		t.Error("Unwrap should strip parentheses around a primary")
	}
	if got := Unwrap(Wrap(sum, Multiplicative), Multiplicative).Code(); got != "(a + b)" {
		t.Errorf("Unwrap(Wrap(sum)) = %q", got)
	}
}

func TestPrecedenceOrder(t *testing.T) {
	order := []Precedence{
		Primary, PostUnary, Unary, Multiplicative, Additive, Shift, Relational,
		Equality, BitAnd, BitXor, BitOr, LogicalAnd, LogicalOr, Ternary, Assignment,
	}
	for i := 1; i < len(order); i++ {
		if !order[i-1].Less(order[i]) || !order[i].Greater(order[i-1]) {
			t.Errorf("%v should bind tighter than %v", order[i-1], order[i])
		}
	}
}
