package tree

import (
	"errors"
	"math"
	"testing"
)

func TestLiteralText(t *testing.T) {
	mustLit := func(l *Literal, err error) *Literal {
		t.Helper()
		if err != nil {
			t.Fatalf("literal error = %v", err)
		}
		return l
	}

	tests := []struct {
		name string
		lit  *Literal
		want string
		kind LiteralKind
	}{
		{"int", NewIntLiteral(5), "5", IntLiteral},
		{"negative int", NewIntLiteral(-7), "-7", IntLiteral},
		{"long", NewLongLiteral(5), "5L", LongLiteral},
		{"float", mustLit(NewFloatLiteral(1.5)), "1.5f", FloatLiteral},
		{"whole float", mustLit(NewFloatLiteral(2)), "2.0f", FloatLiteral},
		{"double", mustLit(NewDoubleLiteral(1)), "1.0", DoubleLiteral},
		{"double exponent", mustLit(NewDoubleLiteral(1e21)), "1e+21", DoubleLiteral},
		{"char", mustLit(NewCharLiteral('a')), "'a'", CharLiteral},
		{"char quote", mustLit(NewCharLiteral('\'')), `'\''`, CharLiteral},
		{"char backslash", mustLit(NewCharLiteral('\\')), `'\\'`, CharLiteral},
		{"char newline", mustLit(NewCharLiteral('\n')), `'\n'`, CharLiteral},
		{"string", NewStringLiteral(`say "hi"` + "\n"), `"say \"hi\"\n"`, StringLiteral},
		{"string with quote", NewStringLiteral("it's"), `"it's"`, StringLiteral},
		{"bool", NewBoolLiteral(true), "true", BoolLiteral},
		{"null", NewNullLiteral(), "null", NullLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
			if got := tt.lit.LiteralKind(); got != tt.kind {
				t.Errorf("LiteralKind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestLiteralRejectsUnrepresentable(t *testing.T) {
	if _, err := NewDoubleLiteral(math.NaN()); !errors.Is(err, ErrInvalidLiteral) {
		t.Errorf("NaN error = %v, want ErrInvalidLiteral", err)
	}
	if _, err := NewFloatLiteral(float32(math.Inf(1))); !errors.Is(err, ErrInvalidLiteral) {
		t.Errorf("Inf error = %v, want ErrInvalidLiteral", err)
	}
	if _, err := NewCharLiteral(0x1F600); !errors.Is(err, ErrInvalidLiteral) {
		t.Errorf("non-BMP char error = %v, want ErrInvalidLiteral", err)
	}
}

func TestLiteralSetValue(t *testing.T) {
	l := NewIntLiteral(1)
	if err := l.SetValue(int64(5)); err != nil {
		t.Fatalf("SetValue error = %v", err)
	}
	if l.Code() != "5L" || l.LiteralKind() != LongLiteral {
		t.Errorf("after SetValue(int64(5)): %q %v", l.Code(), l.LiteralKind())
	}
	if err := l.SetValue(Char('\'')); err != nil {
		t.Fatalf("SetValue error = %v", err)
	}
	if l.Code() != `'\''` {
		t.Errorf("after SetValue(Char): %q", l.Code())
	}
	if err := l.SetValue(struct{}{}); err == nil {
		t.Error("SetValue(struct{}{}) succeeded")
	}
	if l.Code() != `'\''` {
		t.Error("failed SetValue changed the literal")
	}
}

func TestLiteralPrecedence(t *testing.T) {
	if NewIntLiteral(3).Precedence() != Primary {
		t.Error("positive literal should be Primary")
	}
	if NewIntLiteral(-3).Precedence() != Unary {
		t.Error("negative literal should be Unary")
	}
	access := &FieldAccess{Target: NewLongLiteral(-1), Name: MustName("x")}
	if got := access.Code(); got != "(-1L).x" {
		t.Errorf("Code() = %q, want (-1L).x", got)
	}
}
