package tree

import (
	"fmt"
	"strings"
)

// NegationPrefix marks a superset modifier that cancels an implicit one,
// for example "non-static".
const NegationPrefix = "non-"

// Modifier is an immutable modifier keyword.
type Modifier struct {
	s string
}

var (
	Public       = Modifier{"public"}
	Protected    = Modifier{"protected"}
	Private      = Modifier{"private"}
	Static       = Modifier{"static"}
	Abstract     = Modifier{"abstract"}
	Final        = Modifier{"final"}
	Native       = Modifier{"native"}
	Synchronized = Modifier{"synchronized"}
	Transient    = Modifier{"transient"}
	Volatile     = Modifier{"volatile"}
	Strictfp     = Modifier{"strictfp"}
	Default      = Modifier{"default"}
	Sealed       = Modifier{"sealed"}
	NonSealed    = Modifier{"non-sealed"}
	Transitive   = Modifier{"transitive"}

	// PackagePrivate spells out package visibility explicitly.
	PackagePrivate = Modifier{"package"}
)

var standardModifiers = map[string]Modifier{}

// negatable lists the modifiers that have a "non-" form.
var negatable = []Modifier{Static, Abstract, Final, Native, Synchronized, Transient, Volatile, Strictfp, Default}

var extendedModifiers = map[string]Modifier{}

func init() {
	for _, m := range []Modifier{
		Public, Protected, Private, Static, Abstract, Final, Native, Synchronized,
		Transient, Volatile, Strictfp, Default, Sealed, NonSealed, Transitive,
	} {
		standardModifiers[m.s] = m
	}
	extendedModifiers[PackagePrivate.s] = PackagePrivate
	for _, m := range negatable {
		neg := Modifier{NegationPrefix + m.s}
		extendedModifiers[neg.s] = neg
	}
}

// LookupModifier returns the modifier spelled s, including the superset
// modifiers.
func LookupModifier(s string) (Modifier, error) {
	if m, ok := standardModifiers[s]; ok {
		return m, nil
	}
	if m, ok := extendedModifiers[s]; ok {
		return m, nil
	}
	return Modifier{}, fmt.Errorf("%w: %q", ErrInvalidModifier, s)
}

func (m Modifier) Kind() Kind     { return KindModifier }
func (m Modifier) Code() string   { return m.s }
func (m Modifier) String() string { return m.s }
func (m Modifier) Clone() Node    { return m }
func (m Modifier) IsZero() bool   { return m.s == "" }

// IsStandard reports whether m is part of the base language.
func (m Modifier) IsStandard() bool {
	_, ok := standardModifiers[m.s]
	return ok
}

// IsNegated reports whether m is a superset "non-" modifier. non-sealed is
// a base language keyword and is not negated.
func (m Modifier) IsNegated() bool {
	return m != NonSealed && strings.HasPrefix(m.s, NegationPrefix)
}

// Negates returns the modifier m cancels, if m is negated.
func (m Modifier) Negates() (Modifier, bool) {
	if !m.IsNegated() {
		return Modifier{}, false
	}
	return standardModifiers[strings.TrimPrefix(m.s, NegationPrefix)], true
}
