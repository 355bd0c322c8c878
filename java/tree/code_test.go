package tree

import "testing"

func name(s string) Name { return MustName(s) }

func intLit(v int32) *Literal { return NewIntLiteral(v) }

func classType(s string) *ClassType { return ClassTypeOf(MustQualifiedName(s)) }

func primitive(s string) *PrimitiveType {
	p, err := NewPrimitiveType(s)
	if err != nil {
		panic(err)
	}
	return p
}

func call(s string, args ...Expression) *MethodCall {
	return NewMethodCall(nil, name(s), args...)
}

func TestExpressionCode(t *testing.T) {
	x, y := name("x"), name("y")
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{
			"tighter right operand",
			NewBinaryExpr(intLit(1), OpAdd, NewBinaryExpr(intLit(2), OpMul, intLit(3))),
			"1 + 2 * 3",
		},
		{
			"looser left operand",
			NewBinaryExpr(NewBinaryExpr(intLit(1), OpAdd, intLit(2)), OpMul, intLit(3)),
			"(1 + 2) * 3",
		},
		{
			"left associative",
			NewBinaryExpr(NewBinaryExpr(x, OpSub, y), OpSub, intLit(1)),
			"x - y - 1",
		},
		{
			"right operand at equal precedence",
			NewBinaryExpr(x, OpSub, NewBinaryExpr(y, OpSub, intLit(1))),
			"x - (y - 1)",
		},
		{
			"double negation",
			NewUnaryExpr(OpMinus, NewUnaryExpr(OpMinus, x)),
			"-(-x)",
		},
		{
			"negated negative literal",
			NewUnaryExpr(OpMinus, intLit(-5)),
			"-(-5)",
		},
		{
			"minus predecrement",
			NewUnaryExpr(OpMinus, &PreDecrementExpr{Expr: x}),
			"-(--x)",
		},
		{
			"not of cast",
			NewUnaryExpr(OpNot, NewCastExpr(primitive("boolean"), x)),
			"!((boolean) x)",
		},
		{
			"postfix of creator",
			&PostIncrementExpr{Expr: NewClassCreator(classType("Counter"))},
			"(new Counter())++",
		},
		{
			"primitive cast of sign",
			NewCastExpr(primitive("int"), NewUnaryExpr(OpMinus, x)),
			"(int) -x",
		},
		{
			"reference cast of sign",
			NewCastExpr(classType("Integer"), NewUnaryExpr(OpMinus, x)),
			"(Integer) (-x)",
		},
		{
			"primitive cast of negative literal",
			NewCastExpr(primitive("int"), intLit(-5)),
			"(int) -5",
		},
		{
			"reference cast of negative literal",
			NewCastExpr(classType("Integer"), intLit(-5)),
			"(Integer) (-5)",
		},
		{
			"reference cast of positive literal",
			NewCastExpr(classType("Integer"), intLit(5)),
			"(Integer) 5",
		},
		{
			"cast of binary",
			NewCastExpr(primitive("long"), NewBinaryExpr(x, OpAdd, y)),
			"(long) (x + y)",
		},
		{
			"cast of bare lambda",
			NewCastExpr(classType("Function"), NewExprLambda([]Name{x}, x)),
			"(Function) (x -> x)",
		},
		{
			"cast of parenthesized lambda",
			NewCastExpr(classType("Supplier"), NewExprLambda(nil, x)),
			"(Supplier) () -> x",
		},
		{
			"cast of switch",
			NewCastExpr(primitive("int"), &SwitchExpr{Selector: x}),
			"(int) (switch (x) {})",
		},
		{
			"conditional in condition",
			&ConditionalExpr{Cond: &ConditionalExpr{Cond: x, Then: y, Else: x}, Then: intLit(1), Else: intLit(2)},
			"(x ? y : x) ? 1 : 2",
		},
		{
			"nested conditional in else",
			&ConditionalExpr{Cond: x, Then: intLit(1), Else: &ConditionalExpr{Cond: y, Then: intLit(2), Else: intLit(3)}},
			"x ? 1 : y ? 2 : 3",
		},
		{
			"lambda in else",
			&ConditionalExpr{Cond: x, Then: y, Else: NewExprLambda([]Name{x}, x)},
			"x ? y : (x -> x)",
		},
		{
			"chained assignment",
			NewAssignExpr(x, OpAssign, NewAssignExpr(y, OpAddAssign, intLit(1))),
			"x = y += 1",
		},
		{
			"field of binary",
			&FieldAccess{Target: NewBinaryExpr(x, OpAdd, y), Name: name("z")},
			"(x + y).z",
		},
		{
			"index of array creation",
			&IndexExpr{Target: NewSizedArray(primitive("int"), []*Size{NewSize(intLit(1))}), Index: intLit(0)},
			"(new int[1])[0]",
		},
		{
			"initialized array",
			NewInitializedArray(primitive("int"), NewArrayInitializer(ExprInit(intLit(1)), ExprInit(intLit(2)))),
			"new int[]{1, 2}",
		},
		{
			"instanceof pattern",
			NewInstanceOfPattern(x, NewTypePattern(classType("String"), name("s"))),
			"x instanceof String s",
		},
		{
			"negated instanceof",
			&InstanceOfExpr{Expr: x, Test: Left[Type, Pattern](classType("String")), Negated: true},
			"x !instanceof String",
		},
		{
			"generic call",
			func() Expression {
				m := NewMethodCall(name("Collections"), name("emptyList"))
				m.SetTypeArguments([]TypeArgument{classType("String")})
				return m
			}(),
			"Collections.<String>emptyList()",
		},
		{
			"method reference",
			&MethodReference{Target: Right[Expression](Type(classType("String"))), Name: name("valueOf")},
			"String::valueOf",
		},
		{
			"anonymous class",
			&ClassCreator{Type: classType("Runnable"), Body: &ClassBody{}},
			"new Runnable() {}",
		},
		{
			"diamond",
			NewClassCreator(&ClassType{Name: name("ArrayList"), Diamond: true}),
			"new ArrayList<>()",
		},
		{
			"qualified this",
			&This{Qualifier: MustQualifiedName("Outer")},
			"Outer.this",
		},
		{
			"super call",
			&SuperMethodCall{Name: name("toString")},
			"super.toString()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeCode(t *testing.T) {
	list := NewClassType(name("List"), &WildcardType{Bound: classType("Number")})
	entry := &ClassType{Outer: classType("Map"), Name: name("Entry")}
	entry.SetTypeArguments([]TypeArgument{classType("K"), classType("V")})
	inter, err := NewTypeIntersection(classType("A"), classType("B"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		typ  Node
		want string
	}{
		{"wildcard", list, "List<? extends Number>"},
		{"nested", entry, "Map.Entry<K, V>"},
		{"array", NewArrayType(primitive("int"), &Dimension{}, &Dimension{}), "int[][]"},
		{"intersection", inter, "A & B"},
		{"type parameter", NewTypeParameter(name("T"), classType("Comparable")), "T extends Comparable"},
		{"super wildcard", &WildcardType{Bound: classType("T"), Super: true}, "? super T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatementCode(t *testing.T) {
	x := name("x")
	union, err := NewTypeUnion(classType("IOException"), classType("SQLException"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := NewLocalVarDecl(&VarType{}, NewVariableDeclarator(name("r"), call("open")))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		stmt Statement
		want string
	}{
		{
			"dangling else",
			&IfStmt{
				Cond: x,
				Then: &IfStmt{Cond: name("y"), Then: NewExpressionStmt(call("a"))},
				Else: NewExpressionStmt(call("b")),
			},
			"if (x) {\n    if (y) a();\n} else b();",
		},
		{
			"else if",
			&IfStmt{
				Cond: x,
				Then: NewBlock(),
				Else: &IfStmt{Cond: name("y"), Then: NewBlock()},
			},
			"if (x) {} else if (y) {}",
		},
		{
			"empty for",
			&ForStmt{Body: &EmptyStmt{}},
			"for (;;) ;",
		},
		{
			"arrow switch",
			&SwitchStmt{Selector: x, Cases: []*SwitchCase{
				{Labels: []CaseLabel{intLit(1)}, Body: Right[[]Statement](Statement(NewExpressionStmt(call("f"))))},
				{Default: true, Body: Right[[]Statement](Statement(NewBlock()))},
			}},
			"switch (x) {\n    case 1 -> f();\n    default -> {}\n}",
		},
		{
			"colon switch",
			&SwitchStmt{Selector: x, Cases: []*SwitchCase{
				{Labels: []CaseLabel{intLit(1), intLit(2)}, Body: Left[[]Statement, Statement]([]Statement{NewExpressionStmt(call("f")), &BreakStmt{}})},
				{Labels: []CaseLabel{NewNullLiteral()}, Default: true, Body: Left[[]Statement, Statement](nil)},
			}},
			"switch (x) {\n    case 1, 2:\n        f();\n        break;\n    case null, default:\n}",
		},
		{
			"try with resources",
			&TryStmt{
				Resources: []Resource{Left[*LocalVarDecl, Expression](res)},
				Body:      NewBlock(),
				Catches:   []*CatchClause{{Param: NewFormalParameter(union, name("e")), Body: NewBlock()}},
				Finally:   NewBlock(),
			},
			"try (var r = open()) {} catch (IOException | SQLException e) {} finally {}",
		},
		{
			"labeled break",
			&LabeledStmt{Label: name("outer"), Stmt: &WhileStmt{Cond: NewBoolLiteral(true), Body: &BreakStmt{Label: name("outer")}}},
			"outer: while (true) break outer;",
		},
		{
			"println",
			&PrintStmt{Newline: true, Args: []Expression{x, NewStringLiteral("y")}},
			`println x, "y";`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.Code(); got != tt.want {
				t.Errorf("Code() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestClassDeclCode(t *testing.T) {
	field, err := NewFieldDecl(primitive("int"), NewVariableDeclarator(name("x"), intLit(1)))
	if err != nil {
		t.Fatal(err)
	}
	field.AddModifier(Private)

	method := &MethodDecl{ReturnType: &VoidType{}, Body: NewBlock(&ReturnStmt{})}
	method.Name = name("run")
	method.AddModifier(Public)

	class := NewClassDecl(name("A"), field, method)
	class.AddModifier(Public)
	if err := class.SetDocComment(" A thing. "); err != nil {
		t.Fatal(err)
	}

	want := "/** A thing. */\n" +
		"public class A {\n" +
		"    private int x = 1;\n" +
		"\n" +
		"    public void run() {\n" +
		"        return;\n" +
		"    }\n" +
		"}"
	if got := class.Code(); got != want {
		t.Errorf("Code() =\n%s\nwant\n%s", got, want)
	}
}

func TestEnumAndModuleCode(t *testing.T) {
	enum := &EnumDecl{
		Constants: []*EnumConstant{{Name: name("RED")}, {Name: name("GREEN"), Args: []Expression{intLit(2)}}},
		Body:      &ClassBody{},
	}
	enum.Name = name("Color")
	if got, want := enum.Code(), "enum Color {\n    RED,\n    GREEN(2)\n}"; got != want {
		t.Errorf("enum Code() =\n%s\nwant\n%s", got, want)
	}

	requires := &RequiresDirective{Module: MustQualifiedName("x.y")}
	requires.AddModifier(Transitive)
	mod := &ModuleDecl{
		Name: MustQualifiedName("a.b"),
		Directives: []Directive{
			requires,
			&ExportsDirective{Package: MustQualifiedName("a.b.api"), To: []QualifiedName{MustQualifiedName("c")}},
		},
	}
	want := "module a.b {\n    requires transitive x.y;\n    exports a.b.api to c;\n}"
	if got := mod.Code(); got != want {
		t.Errorf("module Code() =\n%s\nwant\n%s", got, want)
	}
}
