package parser

import (
	"fmt"
	"strings"
)

// Feature is a grammar extension on top of Java.
type Feature uint8

const (
	// PrintStatements enables print a, b; and println a, b;.
	PrintStatements Feature = iota
	// NotInstanceof enables x !instanceof T.
	NotInstanceof
	// ExtendedModifiers enables negated modifiers such as non-static and the
	// package visibility keyword.
	ExtendedModifiers

	numFeatures
)

var featureNames = [numFeatures]string{
	PrintStatements:   "print-statements",
	NotInstanceof:     "not-instanceof",
	ExtendedModifiers: "extended-modifiers",
}

func (f Feature) String() string {
	if f < numFeatures {
		return featureNames[f]
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// ParseFeature returns the feature called name.
func ParseFeature(name string) (Feature, error) {
	for f, n := range featureNames {
		if n == name {
			return Feature(f), nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q (known: %s)", name, strings.Join(featureNames[:], ", "))
}

// AllFeatures returns every known feature in declaration order.
func AllFeatures() []Feature {
	all := make([]Feature, numFeatures)
	for i := range all {
		all[i] = Feature(i)
	}
	return all
}

// Features is a set of enabled features. The zero value accepts plain Java
// only.
type Features uint32

// DefaultFeatures enables every feature.
func DefaultFeatures() Features {
	return Features(0).Enable(AllFeatures()...)
}

func (s Features) Enable(fs ...Feature) Features {
	for _, f := range fs {
		s |= 1 << f
	}
	return s
}

func (s Features) Disable(fs ...Feature) Features {
	for _, f := range fs {
		s &^= 1 << f
	}
	return s
}

func (s Features) Enabled(f Feature) bool {
	return s&(1<<f) != 0
}

// List returns the enabled features in declaration order.
func (s Features) List() []Feature {
	var list []Feature
	for _, f := range AllFeatures() {
		if s.Enabled(f) {
			list = append(list, f)
		}
	}
	return list
}

func (s Features) String() string {
	names := make([]string, 0, numFeatures)
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}
