package tree

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// identifierPattern matches a Java identifier that is not a reserved word.
// Contextual keywords such as var, record and yield are valid identifiers.
var identifierPattern = regexp2.MustCompile(
	`^(?!(?:abstract|assert|boolean|break|byte|case|catch|char|class|const|continue|default|do|double|`+
		`else|enum|extends|final|finally|float|for|goto|if|implements|import|instanceof|int|interface|long|`+
		`native|new|package|private|protected|public|return|short|static|strictfp|super|switch|synchronized|`+
		`this|throw|throws|transient|try|void|volatile|while|true|false|null|_)$)`+
		`[\p{L}\p{Nl}\p{Sc}\p{Pc}][\p{L}\p{Nl}\p{Sc}\p{Pc}\p{Nd}\p{Mn}\p{Mc}]*$`,
	regexp2.None)

// IsIdentifier reports whether s is a valid, non-reserved Java identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	ok, err := identifierPattern.MatchString(s)
	return err == nil && ok
}

// Name is a validated identifier. It is an immutable value; the zero Name
// marks an absent optional name.
type Name struct {
	exprMarker
	s string
}

func NewName(s string) (Name, error) {
	if !IsIdentifier(s) {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return Name{s: s}, nil
}

// MustName is like NewName but panics if s is not a valid identifier.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) Kind() Kind             { return KindName }
func (n Name) Code() string           { return n.s }
func (n Name) String() string         { return n.s }
func (n Name) Clone() Node            { return n }
func (n Name) Precedence() Precedence { return Primary }
func (n Name) IsZero() bool           { return n.s == "" }

// Qualify returns n as a single-component qualified name.
func (n Name) Qualify() QualifiedName {
	return QualifiedName{s: n.s}
}

func (n Name) Append(m Name) QualifiedName {
	return QualifiedName{s: n.s + "." + m.s}
}

// QualifiedName is an immutable, non-empty dotted sequence of names. The
// zero QualifiedName marks an absent optional name.
type QualifiedName struct {
	exprMarker
	s string
}

func NewQualifiedName(names ...Name) (QualifiedName, error) {
	if len(names) == 0 {
		return QualifiedName{}, ErrEmptyName
	}
	parts := make([]string, len(names))
	for i, n := range names {
		if n.IsZero() {
			return QualifiedName{}, fmt.Errorf("%w: empty component at %d", ErrInvalidName, i)
		}
		parts[i] = n.s
	}
	return QualifiedName{s: strings.Join(parts, ".")}, nil
}

// ParseQualifiedName validates a dotted string such as "java.util.List".
func ParseQualifiedName(s string) (QualifiedName, error) {
	if s == "" {
		return QualifiedName{}, ErrEmptyName
	}
	for _, part := range strings.Split(s, ".") {
		if !IsIdentifier(part) {
			return QualifiedName{}, fmt.Errorf("%w: %q in %q", ErrInvalidName, part, s)
		}
	}
	return QualifiedName{s: s}, nil
}

func MustQualifiedName(s string) QualifiedName {
	q, err := ParseQualifiedName(s)
	if err != nil {
		panic(err)
	}
	return q
}

func (q QualifiedName) Kind() Kind             { return KindQualifiedName }
func (q QualifiedName) Code() string           { return q.s }
func (q QualifiedName) String() string         { return q.s }
func (q QualifiedName) Clone() Node            { return q }
func (q QualifiedName) Precedence() Precedence { return Primary }
func (q QualifiedName) IsZero() bool           { return q.s == "" }
func (q QualifiedName) Equal(other QualifiedName) bool {
	return q.s == other.s
}

// Names returns the components as a fresh slice.
func (q QualifiedName) Names() []Name {
	if q.s == "" {
		return nil
	}
	parts := strings.Split(q.s, ".")
	names := make([]Name, len(parts))
	for i, p := range parts {
		names[i] = Name{s: p}
	}
	return names
}

func (q QualifiedName) Len() int {
	if q.s == "" {
		return 0
	}
	return strings.Count(q.s, ".") + 1
}

func (q QualifiedName) First() Name {
	if i := strings.IndexByte(q.s, '.'); i >= 0 {
		return Name{s: q.s[:i]}
	}
	return Name{s: q.s}
}

func (q QualifiedName) Last() Name {
	if i := strings.LastIndexByte(q.s, '.'); i >= 0 {
		return Name{s: q.s[i+1:]}
	}
	return Name{s: q.s}
}

// IsSimple reports whether q has exactly one component.
func (q QualifiedName) IsSimple() bool {
	return q.s != "" && !strings.Contains(q.s, ".")
}

// Slice returns the components [i, j) as a new qualified name.
func (q QualifiedName) Slice(i, j int) (QualifiedName, error) {
	names := q.Names()
	if i < 0 || j > len(names) || i >= j {
		return QualifiedName{}, fmt.Errorf("%w: slice [%d:%d] of %d names", ErrEmptyName, i, j, len(names))
	}
	return NewQualifiedName(names[i:j]...)
}

func (q QualifiedName) HasPrefix(prefix QualifiedName) bool {
	return prefix.s != "" && (q.s == prefix.s || strings.HasPrefix(q.s, prefix.s+"."))
}

func (q QualifiedName) HasSuffix(suffix QualifiedName) bool {
	return suffix.s != "" && (q.s == suffix.s || strings.HasSuffix(q.s, "."+suffix.s))
}

func (q QualifiedName) Append(names ...Name) QualifiedName {
	parts := []string{q.s}
	if q.s == "" {
		parts = parts[:0]
	}
	for _, n := range names {
		if !n.IsZero() {
			parts = append(parts, n.s)
		}
	}
	return QualifiedName{s: strings.Join(parts, ".")}
}

func (q QualifiedName) Concat(other QualifiedName) QualifiedName {
	return q.Append(other.Names()...)
}
