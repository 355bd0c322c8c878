package transform

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/jpp/java/parser"
	"github.com/dhamidi/jpp/java/tree"
)

func parseStmt(t *testing.T, src string) tree.Statement {
	t.Helper()
	s, err := parser.ParseStatement(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseStatement(%q): %v", src, err)
	}
	return s
}

func parseExpr(t *testing.T, src string) tree.Expression {
	t.Helper()
	e, err := parser.ParseExpression(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", src, err)
	}
	return e
}

func parseUnit(t *testing.T, src string) tree.Node {
	t.Helper()
	n, err := parser.ParseCompilationUnit(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseCompilationUnit(%q): %v", src, err)
	}
	return n
}

func TestStripModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"class A {\n    non-static package void f() {}\n}",
			"class A {\n    void f() {}\n}",
		},
		{
			"public non-final class A {\n    package int x;\n}",
			"public class A {\n    int x;\n}",
		},
		{
			"non-sealed class A {}",
			"non-sealed class A {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := StripModifiers(parseUnit(t, tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if got.Code() != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got.Code(), tt.want)
			}
		})
	}
}

func TestLowerNotInstanceof(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x !instanceof String", "!(x instanceof String)"},
		{"a && b !instanceof T", "a && !(b instanceof T)"},
		{"x instanceof String s", "x instanceof String s"},
		{"f(() -> y !instanceof T)", "f(() -> !(y instanceof T))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := LowerNotInstanceof(parseExpr(t, tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if got.Code() != tt.want {
				t.Errorf("got %q, want %q", got.Code(), tt.want)
			}
		})
	}
}

func TestLowerPrint(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"print x;", "System.out.print(x);"},
		{"print;", `System.out.print("");`},
		{"println;", "System.out.println();"},
		{`println a, b;`, `System.out.println(a + " " + b);`},
		{`println a + b, c ? d : e;`, `System.out.println(a + b + " " + (c ? d : e));`},
		{`println x, y - 1;`, `System.out.println(x + " " + (y - 1));`},
		{"if (x) print y;", "if (x) System.out.print(y);"},
		{"f(x);", "f(x);"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := LowerPrint(parseStmt(t, tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if got.Code() != tt.want {
				t.Errorf("got %q, want %q", got.Code(), tt.want)
			}
		})
	}
}

func TestLowerPrintInsideArguments(t *testing.T) {
	got, err := LowerPrint(parseStmt(t, "print run(() -> {\n    print 1;\n});"))
	if err != nil {
		t.Fatal(err)
	}
	code := got.Code()
	if !strings.Contains(code, "System.out.print(1);") || strings.Contains(code, "print 1;") {
		t.Errorf("nested print statement not lowered:\n%s", code)
	}
}

func TestStripParens(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"((a + b)) * c", "(a + b) * c"},
		{"(a) + (b)", "a + b"},
		{"x = (y)", "x = y"},
		{"f((x), ((y)))", "f(x, y)"},
		{"a - (b - c)", "a - (b - c)"},
		{"(a - b) - c", "a - b - c"},
		{"(int) (-5)", "(int) -5"},
		{"(Integer) (-5)", "(Integer) (-5)"},
		{"(Integer) (-x)", "(Integer) (-x)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := StripParens(parseExpr(t, tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if got.Code() != tt.want {
				t.Errorf("got %q, want %q", got.Code(), tt.want)
			}
			if again := parseExpr(t, got.Code()); again.Kind() != got.Kind() {
				t.Errorf("%q reparsed as %v, want %v", got.Code(), again.Kind(), got.Kind())
			}
		})
	}
}

func TestNewPipeline(t *testing.T) {
	tests := []struct {
		name     string
		features parser.Features
		opts     []Option
		want     []string
	}{
		{"defaults", parser.DefaultFeatures(), nil, []string{"strip-modifiers", "lower-not-instanceof", "lower-print"}},
		{"minimal parens", parser.DefaultFeatures(), []Option{WithMinimalParens(true)},
			[]string{"strip-modifiers", "lower-not-instanceof", "lower-print", "strip-parens"}},
		{"print only", parser.Features(0).Enable(parser.PrintStatements), nil, []string{"lower-print"}},
		{"plain java", parser.Features(0), nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPipeline(tt.features, tt.opts...).Passes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Passes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipelineRun(t *testing.T) {
	input := "class A {\n" +
		"    non-static void f() {\n" +
		"        if (x !instanceof String) println x, 1;\n" +
		"    }\n" +
		"}"
	want := "class A {\n" +
		"    void f() {\n" +
		"        if (!(x instanceof String)) System.out.println(x + \" \" + 1);\n" +
		"    }\n" +
		"}"
	got, err := NewPipeline(parser.DefaultFeatures()).Run(parseUnit(t, input))
	if err != nil {
		t.Fatal(err)
	}
	if got.Code() != want {
		t.Errorf("got\n%s\nwant\n%s", got.Code(), want)
	}
}

func TestLookupPass(t *testing.T) {
	p, err := LookupPass("lower-print")
	if err != nil {
		t.Fatal(err)
	}
	if p.Feature == nil || *p.Feature != parser.PrintStatements {
		t.Errorf("lower-print is tied to %v", p.Feature)
	}
	if _, err := LookupPass("nope"); err == nil {
		t.Error("LookupPass accepted an unknown name")
	}
}
