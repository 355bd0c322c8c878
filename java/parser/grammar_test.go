package parser

import (
	"strings"
	"testing"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar(): %v", err)
	}
	for _, f := range AllFeatures() {
		if _, ok := g[f.Production()]; !ok {
			t.Errorf("feature %s: production %q missing", f, f.Production())
		}
	}
}

func TestGrammarText(t *testing.T) {
	text, err := GrammarText(PrintStatements.Production())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, `"println"`) || !strings.HasPrefix(text, "// print x, y;") {
		t.Errorf("GrammarText() =\n%s", text)
	}
	if _, err := GrammarText("Nope"); err == nil {
		t.Error("GrammarText accepted an unknown production")
	}
}

// Every negated modifier the grammar lists must lex as one token.
func TestGrammarNegatedModifiers(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	text, err := GrammarText("NegatedModifier")
	if err != nil {
		t.Fatal(err)
	}
	if g["NegatedModifier"] == nil {
		t.Fatal("NegatedModifier not parsed")
	}
	for _, field := range strings.Fields(text) {
		if !strings.HasPrefix(field, `"non-`) {
			continue
		}
		mod := strings.Trim(field, `"`)
		tokens, err := Tokenize([]byte(mod), "")
		if err != nil {
			t.Fatal(err)
		}
		if tokens[0].Kind != TokenNegatedModifier {
			t.Errorf("%s lexed as %s", mod, tokens[0].Kind)
		}
	}
}
