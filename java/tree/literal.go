package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	LongLiteral
	FloatLiteral
	DoubleLiteral
	CharLiteral
	StringLiteral
	BoolLiteral
	NullLiteral
)

var literalKindNames = map[LiteralKind]string{
	IntLiteral:    "int",
	LongLiteral:   "long",
	FloatLiteral:  "float",
	DoubleLiteral: "double",
	CharLiteral:   "char",
	StringLiteral: "String",
	BoolLiteral:   "boolean",
	NullLiteral:   "null",
}

func (k LiteralKind) String() string {
	if name, ok := literalKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Char is the value of a character literal.
type Char rune

// Literal stores a typed value together with its canonical source text.
// Both are always set together.
type Literal struct {
	exprMarker
	kind  LiteralKind
	value any
	text  string
}

func NewIntLiteral(v int32) *Literal {
	return &Literal{kind: IntLiteral, value: v, text: strconv.FormatInt(int64(v), 10)}
}

func NewLongLiteral(v int64) *Literal {
	return &Literal{kind: LongLiteral, value: v, text: strconv.FormatInt(v, 10) + "L"}
}

func NewFloatLiteral(v float32) (*Literal, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: float %v has no literal form", ErrInvalidLiteral, v)
	}
	return &Literal{kind: FloatLiteral, value: v, text: floatText(f, 32) + "f"}, nil
}

func NewDoubleLiteral(v float64) (*Literal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: double %v has no literal form", ErrInvalidLiteral, v)
	}
	return &Literal{kind: DoubleLiteral, value: v, text: floatText(v, 64)}, nil
}

func NewCharLiteral(c rune) (*Literal, error) {
	if c < 0 || c > 0xFFFF {
		return nil, fmt.Errorf("%w: char U+%X outside the basic multilingual plane", ErrInvalidLiteral, c)
	}
	return &Literal{kind: CharLiteral, value: Char(c), text: "'" + escapeChar(c, '\'') + "'"}, nil
}

func NewStringLiteral(s string) *Literal {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		b.WriteString(escapeChar(r, '"'))
	}
	b.WriteByte('"')
	return &Literal{kind: StringLiteral, value: s, text: b.String()}
}

func NewBoolLiteral(v bool) *Literal {
	return &Literal{kind: BoolLiteral, value: v, text: strconv.FormatBool(v)}
}

func NewNullLiteral() *Literal {
	return &Literal{kind: NullLiteral, text: "null"}
}

// NewLiteral picks the literal kind from the Go type of v. int values that
// fit in 32 bits become int literals.
func NewLiteral(v any) (*Literal, error) {
	switch x := v.(type) {
	case nil:
		return NewNullLiteral(), nil
	case int32:
		return NewIntLiteral(x), nil
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return NewIntLiteral(int32(x)), nil
		}
		return NewLongLiteral(int64(x)), nil
	case int64:
		return NewLongLiteral(x), nil
	case float32:
		return NewFloatLiteral(x)
	case float64:
		return NewDoubleLiteral(x)
	case Char:
		return NewCharLiteral(rune(x))
	case string:
		return NewStringLiteral(x), nil
	case bool:
		return NewBoolLiteral(x), nil
	}
	return nil, fmt.Errorf("%w: unsupported value type %T", ErrInvalidLiteral, v)
}

// SetValue replaces the value and its text. The kind follows the value.
func (l *Literal) SetValue(v any) error {
	n, err := NewLiteral(v)
	if err != nil {
		return err
	}
	*l = *n
	return nil
}

func (*Literal) Kind() Kind                 { return KindLiteral }
func (l *Literal) LiteralKind() LiteralKind { return l.kind }
func (l *Literal) Value() any               { return l.value }
func (l *Literal) Code() string             { return l.text }

func (l *Literal) Clone() Node {
	c := *l
	return &c
}

// Precedence is Unary for negative numbers, since their text starts with a
// minus sign.
func (l *Literal) Precedence() Precedence {
	switch v := l.value.(type) {
	case int32:
		if v < 0 {
			return Unary
		}
	case int64:
		if v < 0 {
			return Unary
		}
	case float32:
		if math.Signbit(float64(v)) {
			return Unary
		}
	case float64:
		if math.Signbit(v) {
			return Unary
		}
	}
	return Primary
}

func floatText(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func escapeChar(r rune, quote rune) string {
	switch r {
	case quote, '\\':
		return `\` + string(r)
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	}
	if r < 0x20 || r == 0x7f || (r <= 0xFFFF && !unicode.IsPrint(r) && r != ' ') {
		return fmt.Sprintf(`\u%04x`, r)
	}
	return string(r)
}
