package parser

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed superset.ebnf
var supersetGrammar string

const grammarStart = "Superset"

var featureProductions = [numFeatures]string{
	PrintStatements:   "PrintStatement",
	NotInstanceof:     "NotInstanceofExpression",
	ExtendedModifiers: "ExtendedModifier",
}

// Production names the grammar production describing f's syntax.
func (f Feature) Production() string {
	if f < numFeatures {
		return featureProductions[f]
	}
	return ""
}

// Grammar parses and verifies the EBNF description of the superset
// syntax.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("superset.ebnf", strings.NewReader(supersetGrammar))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, grammarStart); err != nil {
		return nil, err
	}
	return g, nil
}

// GrammarText returns the source of the production called name, together
// with the comment above it.
func GrammarText(name string) (string, error) {
	for _, block := range strings.Split(supersetGrammar, "\n\n") {
		for _, line := range strings.Split(block, "\n") {
			if strings.HasPrefix(line, "//") {
				continue
			}
			if strings.HasPrefix(line, name+" =") {
				return strings.TrimSpace(block), nil
			}
			break
		}
	}
	return "", fmt.Errorf("no production %q in the superset grammar", name)
}
