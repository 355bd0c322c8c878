package parser

import (
	"testing"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenIdent, "Identifier"},
		{TokenTextBlock, "TextBlock"},
		{TokenNull, "null"},
		{TokenClass, "class"},
		{TokenNonSealed, "non-sealed"},
		{TokenNegatedModifier, "NegatedModifier"},
		{TokenEllipsis, "..."},
		{TokenGT, ">"},
		{TokenShlAssign, "<<="},
		{TokenArrow, "->"},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenKind
	}{
		{"class", TokenClass},
		{"instanceof", TokenInstanceof},
		{"synchronized", TokenSynchronized},
		{"true", TokenTrue},
		{"var", TokenVar},
		{"yield", TokenYield},
		{"record", TokenRecord},
		{"sealed", TokenSealed},
		{"permits", TokenPermits},
		{"when", TokenWhen},
		{"module", TokenModule},
		{"transitive", TokenTransitive},
		{"print", TokenIdent},
		{"println", TokenIdent},
		{"myVariable", TokenIdent},
		{"", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenEOF}, "end of input"},
		{Token{Kind: TokenIdent, Literal: "foo"}, `Identifier "foo"`},
		{Token{Kind: TokenIntLiteral, Literal: "42"}, `IntLiteral "42"`},
		{Token{Kind: TokenSemicolon, Literal: ";"}, `";"`},
		{Token{Kind: TokenClass, Literal: "class"}, `"class"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 5, Column: 10}).String(); got != "5:10" {
		t.Errorf("String() = %q, want %q", got, "5:10")
	}
	if got := (Position{File: "Test.java", Line: 5, Column: 10}).String(); got != "Test.java:5:10" {
		t.Errorf("String() = %q, want %q", got, "Test.java:5:10")
	}
}
