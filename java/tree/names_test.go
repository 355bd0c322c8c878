package tree

import (
	"errors"
	"testing"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"foo", false},
		{"$x", false},
		{"_tmp", false},
		{"ünïcode", false},
		{"var", false},
		{"record", false},
		{"yield", false},
		{"classy", false},
		{"", true},
		{"foo bar", true},
		{"class", true},
		{"null", true},
		{"true", true},
		{"_", true},
		{"1abc", true},
		{"a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := NewName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewName(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("NewName(%q) error = %v, want ErrInvalidName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) error = %v", tt.input, err)
			}
			if n.Code() != tt.input {
				t.Errorf("Code() = %q, want %q", n.Code(), tt.input)
			}
		})
	}
}

func TestNameIsValueType(t *testing.T) {
	a := MustName("x")
	b := MustName("x")
	if a != b {
		t.Error("equal names should compare equal")
	}
	if a.Clone() != Node(a) {
		t.Error("Clone of a Name should be the same value")
	}
	var zero Name
	if !zero.IsZero() {
		t.Error("zero Name should report IsZero")
	}
}

func TestQualifiedName(t *testing.T) {
	q, err := ParseQualifiedName("java.util.List")
	if err != nil {
		t.Fatalf("ParseQualifiedName error = %v", err)
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	if q.First().String() != "java" {
		t.Errorf("First() = %q, want java", q.First())
	}
	if q.Last().String() != "List" {
		t.Errorf("Last() = %q, want List", q.Last())
	}
	if q.IsSimple() {
		t.Error("IsSimple() = true for dotted name")
	}

	tail, err := q.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice(1, 3) error = %v", err)
	}
	if tail.String() != "util.List" {
		t.Errorf("Slice(1, 3) = %q, want util.List", tail)
	}
	if _, err := q.Slice(2, 2); err == nil {
		t.Error("Slice(2, 2) should fail on an empty range")
	}

	prefixTests := []struct {
		prefix string
		want   bool
	}{
		{"java", true},
		{"java.util", true},
		{"java.util.List", true},
		{"java.ut", false},
		{"util", false},
	}
	for _, tt := range prefixTests {
		if got := q.HasPrefix(MustQualifiedName(tt.prefix)); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
	if !q.HasSuffix(MustQualifiedName("util.List")) {
		t.Error("HasSuffix(util.List) = false")
	}
	if q.HasSuffix(MustQualifiedName("st")) {
		t.Error("HasSuffix(st) = true")
	}

	longer := q.Append(MustName("Entry"))
	if longer.String() != "java.util.List.Entry" {
		t.Errorf("Append = %q", longer)
	}
	if q.String() != "java.util.List" {
		t.Error("Append modified the receiver")
	}
	if got := MustQualifiedName("a").Concat(MustQualifiedName("b.c")); got.String() != "a.b.c" {
		t.Errorf("Concat = %q, want a.b.c", got)
	}
}

func TestQualifiedNameErrors(t *testing.T) {
	for _, input := range []string{"", "a..b", "a.class", ".a", "a b.c"} {
		if _, err := ParseQualifiedName(input); err == nil {
			t.Errorf("ParseQualifiedName(%q) succeeded, want error", input)
		}
	}
	if _, err := NewQualifiedName(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewQualifiedName() error = %v, want ErrEmptyName", err)
	}
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		text     string
		standard bool
		negated  bool
	}{
		{"public", true, false},
		{"non-sealed", true, false},
		{"non-static", false, true},
		{"non-final", false, true},
		{"package", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := LookupModifier(tt.text)
			if err != nil {
				t.Fatalf("LookupModifier(%q) error = %v", tt.text, err)
			}
			if m.IsStandard() != tt.standard {
				t.Errorf("IsStandard() = %v, want %v", m.IsStandard(), tt.standard)
			}
			if m.IsNegated() != tt.negated {
				t.Errorf("IsNegated() = %v, want %v", m.IsNegated(), tt.negated)
			}
		})
	}

	if _, err := LookupModifier("non-public"); !errors.Is(err, ErrInvalidModifier) {
		t.Errorf("LookupModifier(non-public) error = %v, want ErrInvalidModifier", err)
	}
	neg, _ := LookupModifier("non-static")
	if base, ok := neg.Negates(); !ok || base != Static {
		t.Errorf("Negates() = %v, %v, want static, true", base, ok)
	}
}
