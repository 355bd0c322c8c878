package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/jpp/java/tree"
)

func TestParseExpressionRoundTrip(t *testing.T) {
	tests := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"x - y - 1",
		"x = y += 1",
		"x ? 1 : y ? 2 : 3",
		"!done && x < y",
		"a >> b",
		"a >>> 2",
		"a >= b",
		"x >>>= 1",
		"x instanceof String s",
		"x !instanceof String",
		"Collections.<String>emptyList()",
		"String::valueOf",
		"new ArrayList<>()",
		"new int[]{1, 2}",
		"new Runnable() {}",
		"(int) -x",
		"(Function) (x -> x)",
		"x -> x",
		"(a, b) -> a + b",
		"Outer.this",
		"super.toString()",
		"a[i].b(c)",
		"i++",
		"-2147483648",
		"5L",
		`"hi" + 'c'`,
		"null",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			e, err := ParseExpression(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ParseExpression(%q): %v", input, err)
			}
			if got := e.Code(); got != input {
				t.Errorf("Code() = %q, want %q", got, input)
			}
		})
	}
}

func TestParseExpressionShape(t *testing.T) {
	t.Run("joined shift", func(t *testing.T) {
		e, err := ParseExpression(strings.NewReader("a >> b"))
		if err != nil {
			t.Fatal(err)
		}
		bin, ok := e.(*tree.BinaryExpr)
		if !ok || bin.Op != tree.OpShr {
			t.Errorf("got %T %q, want a >> binary expression", e, e.Code())
		}
	})

	t.Run("joined compound assignment", func(t *testing.T) {
		e, err := ParseExpression(strings.NewReader("x >>>= 1"))
		if err != nil {
			t.Fatal(err)
		}
		assign, ok := e.(*tree.AssignExpr)
		if !ok || assign.Op != tree.OpUshrAssign {
			t.Errorf("got %T %q, want a >>>= assignment", e, e.Code())
		}
	})

	t.Run("most negative int", func(t *testing.T) {
		e, err := ParseExpression(strings.NewReader("-2147483648"))
		if err != nil {
			t.Fatal(err)
		}
		lit, ok := e.(*tree.Literal)
		if !ok || lit.LiteralKind() != tree.IntLiteral || lit.Value() != int32(-2147483648) {
			t.Errorf("got %T %v, want int literal -2147483648", e, e)
		}
	})

	t.Run("negated instanceof", func(t *testing.T) {
		e, err := ParseExpression(strings.NewReader("x !instanceof String"))
		if err != nil {
			t.Fatal(err)
		}
		inst, ok := e.(*tree.InstanceOfExpr)
		if !ok || !inst.Negated {
			t.Errorf("got %T, want negated instanceof", e)
		}
	})

	t.Run("precedence", func(t *testing.T) {
		e, err := ParseExpression(strings.NewReader("1 + 2 * 3"))
		if err != nil {
			t.Fatal(err)
		}
		bin, ok := e.(*tree.BinaryExpr)
		if !ok || bin.Op != tree.OpAdd {
			t.Fatalf("got %T, want addition at the root", e)
		}
		if _, ok := bin.Right.(*tree.BinaryExpr); !ok {
			t.Errorf("right operand is %T, want the multiplication", bin.Right)
		}
	})
}

func TestParseStatementRoundTrip(t *testing.T) {
	tests := []string{
		"return x;",
		"return;",
		"int x = 1;",
		"var list = new ArrayList<String>();",
		`println x, "y";`,
		"print x;",
		"if (x) {} else if (y) {}",
		"for (;;) ;",
		"for (int i = 0; i < n; i++) {}",
		"for (String s : names) {}",
		"outer: while (true) break outer;",
		"do x++; while (x < 10);",
		"throw new IllegalStateException();",
		"yield x;",
		`assert x : "msg";`,
		"try (var r = open()) {} catch (IOException | SQLException e) {} finally {}",
		"switch (x) {\n    case 1 -> f();\n    default -> {}\n}",
		"{\n    a();\n    b();\n}",
		"this(1, 2);",
		"print(x);",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			s, err := ParseStatement(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ParseStatement(%q): %v", input, err)
			}
			if got := s.Code(); got != input {
				t.Errorf("Code() = %q, want %q", got, input)
			}
		})
	}
}

func TestParsePrintStatement(t *testing.T) {
	tests := []struct {
		input   string
		newline bool
		args    int
	}{
		{"print x;", false, 1},
		{`println "a", b, c + 1;`, true, 3},
		{"println;", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseStatement(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			ps, ok := s.(*tree.PrintStmt)
			if !ok {
				t.Fatalf("got %T, want *tree.PrintStmt", s)
			}
			if ps.Newline != tt.newline || len(ps.Args) != tt.args {
				t.Errorf("Newline = %v with %d args, want %v with %d", ps.Newline, len(ps.Args), tt.newline, tt.args)
			}
		})
	}

	// print stays an ordinary identifier when used as one.
	for _, input := range []string{"print(x);", "print = 1;", "print.flush();"} {
		s, err := ParseStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ParseStatement(%q): %v", input, err)
		}
		if _, ok := s.(*tree.PrintStmt); ok {
			t.Errorf("%q parsed as a print statement", input)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []string{
		"int",
		"void",
		"String[]",
		"List<? extends Number>",
		"Map.Entry<K, V>",
		"List<List<String>>",
		"Map<String, List<Map<K, V>>>",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			typ, err := ParseType(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ParseType(%q): %v", input, err)
			}
			if got := typ.Code(); got != input {
				t.Errorf("Code() = %q, want %q", got, input)
			}
		})
	}
}

func TestParseCompilationUnit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			"package and imports",
			"package a.b;\n\nimport java.util.List;\nimport static java.lang.Math.*;\n\npublic class A<T> extends B implements C, D {}",
		},
		{
			"doc comment",
			"/** A thing. */\npublic class A {\n    private int x = 1;\n\n    public void run() {\n        return;\n    }\n}",
		},
		{
			"enum",
			"enum Color {\n    RED,\n    GREEN(2)\n}",
		},
		{
			"module",
			"module a.b {\n    requires transitive x.y;\n    exports a.b.api to c;\n}",
		},
		{
			"negated modifier",
			"class A {\n    non-static void f() {}\n}",
		},
		{
			"sealed interface",
			"sealed interface Shape permits Circle, Square {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := ParseCompilationUnit(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseCompilationUnit: %v", err)
			}
			if got := unit.Code(); got != tt.input {
				t.Errorf("Code() =\n%s\nwant\n%s", got, tt.input)
			}
		})
	}
}

func TestParseCompilationUnitKinds(t *testing.T) {
	unit, err := ParseCompilationUnit(strings.NewReader("module m {}"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := unit.(*tree.ModularCompilationUnit); !ok {
		t.Errorf("module declaration parsed as %T", unit)
	}

	unit, err = ParseCompilationUnit(strings.NewReader("/** Docs. */ class A {}"))
	if err != nil {
		t.Fatal(err)
	}
	cu, ok := unit.(*tree.CompilationUnit)
	if !ok || len(cu.Types) != 1 {
		t.Fatalf("got %T, want one type declaration", unit)
	}
	if got := cu.Types[0].DocComment(); got != " Docs. " {
		t.Errorf("DocComment() = %q, want %q", got, " Docs. ")
	}
}

func TestFeatureDisabled(t *testing.T) {
	plain := WithFeatures(Features(0))
	tests := []struct {
		name  string
		parse func() error
	}{
		{"print", func() error {
			_, err := ParseStatement(strings.NewReader(`print "a";`), plain)
			return err
		}},
		{"println", func() error {
			_, err := ParseStatement(strings.NewReader(`println "a";`), plain)
			return err
		}},
		{"not instanceof", func() error {
			_, err := ParseExpression(strings.NewReader("x !instanceof String"), plain)
			return err
		}},
		{"negated modifier", func() error {
			_, err := ParseCompilationUnit(strings.NewReader("class A { non-static void f() {} }"), plain)
			return err
		}},
		{"package modifier", func() error {
			_, err := ParseCompilationUnit(strings.NewReader("class A { package int x; }"), plain)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if !errors.Is(err, ErrFeatureDisabled) {
				t.Fatalf("error = %v, want a disabled feature error", err)
			}
			var fe *FeatureError
			if !errors.As(err, &fe) {
				t.Errorf("error %T is not a *FeatureError", err)
			}
		})
	}

	// Plain Java still parses with every feature off.
	if _, err := ParseCompilationUnit(strings.NewReader("class A { static void f() { System.out.println(1); } }"), plain); err != nil {
		t.Errorf("plain Java rejected: %v", err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(r *strings.Reader) error
		input string
	}{
		{"dangling operator", parseExpr, "1 +"},
		{"split shift", parseExpr, "a > > b"},
		{"trailing tokens", parseExpr, "a b"},
		{"int out of range", parseExpr, "2147483648"},
		{"missing initializer", parseStmt, "int x = ;"},
		{"unclosed condition", parseStmt, "if (x"},
		{"bare try", parseStmt, "try {}"},
		{"missing class name", parseUnit, "class {"},
		{"module after package", parseUnit, "package a; module b {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("error = %v, want a syntax error", err)
			}
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := ParseCompilationUnit(strings.NewReader("class A {\n    int x\n}"), WithFile("A.java"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SyntaxError", err)
	}
	if se.Pos.File != "A.java" || se.Pos.Line != 3 {
		t.Errorf("error at %s, want A.java line 3", se.Pos)
	}
	if !strings.HasPrefix(err.Error(), "A.java:3:") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func parseExpr(r *strings.Reader) error {
	_, err := ParseExpression(r)
	return err
}

func parseStmt(r *strings.Reader) error {
	_, err := ParseStatement(r)
	return err
}

func parseUnit(r *strings.Reader) error {
	_, err := ParseCompilationUnit(r)
	return err
}
