package parser

import (
	"errors"
	"testing"
)

func kinds(t *testing.T, input string) []TokenKind {
	t.Helper()
	tokens, err := Tokenize([]byte(input), "test.java")
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", input, err)
	}
	var got []TokenKind
	for _, tok := range tokens {
		got = append(got, tok.Kind)
	}
	return got
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"class", []TokenKind{TokenClass, TokenEOF}},
		{"public class Main {}", []TokenKind{TokenPublic, TokenClass, TokenIdent, TokenLBrace, TokenRBrace, TokenEOF}},
		{"123", []TokenKind{TokenIntLiteral, TokenEOF}},
		{"3.14", []TokenKind{TokenFloatLiteral, TokenEOF}},
		{".5f", []TokenKind{TokenFloatLiteral, TokenEOF}},
		{"0xFFL 0b1010 1_000", []TokenKind{TokenIntLiteral, TokenIntLiteral, TokenIntLiteral, TokenEOF}},
		{"\"hello\"", []TokenKind{TokenStringLiteral, TokenEOF}},
		{"'a'", []TokenKind{TokenCharLiteral, TokenEOF}},
		{"\"\"\"\n  text\n  \"\"\"", []TokenKind{TokenTextBlock, TokenEOF}},
		{"// comment\nclass", []TokenKind{TokenClass, TokenEOF}},
		{"/* block */ class", []TokenKind{TokenClass, TokenEOF}},
		{"+ - * / %", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenEOF}},
		{"== != < <= >", []TokenKind{TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenEOF}},
		{">= >>", []TokenKind{TokenGT, TokenAssign, TokenGT, TokenGT, TokenEOF}},
		{"&& || !", []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{"<< <<=", []TokenKind{TokenShl, TokenShlAssign, TokenEOF}},
		{"++ -- -> :: ...", []TokenKind{TokenIncrement, TokenDecrement, TokenArrow, TokenColonColon, TokenEllipsis, TokenEOF}},
		{"@", []TokenKind{TokenAt, TokenEOF}},
		{"var record yield when", []TokenKind{TokenVar, TokenRecord, TokenYield, TokenWhen, TokenEOF}},
		{"non-sealed", []TokenKind{TokenNonSealed, TokenEOF}},
		{"non-static", []TokenKind{TokenNegatedModifier, TokenEOF}},
		{"non-x", []TokenKind{TokenIdent, TokenMinus, TokenIdent, TokenEOF}},
		{"List<List<String>>", []TokenKind{TokenIdent, TokenLT, TokenIdent, TokenLT, TokenIdent, TokenGT, TokenGT, TokenEOF}},
		{"größe", []TokenKind{TokenIdent, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(t, tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("class Foo {}"), "Test.java")
	pos := lexer.Position()

	if pos.File != "Test.java" {
		t.Errorf("File = %q, want %q", pos.File, "Test.java")
	}
	if pos.Line != 1 || pos.Column != 1 || pos.Offset != 0 {
		t.Errorf("Position() = %v, want 1:1 at offset 0", pos)
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := Tokenize([]byte("int x;\n  return x;"), "A.java")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		index  int
		line   int
		column int
		offset int
	}{
		{0, 1, 1, 0},
		{1, 1, 5, 4},
		{3, 2, 3, 9},
		{4, 2, 10, 16},
	}
	for _, tt := range tests {
		got := tokens[tt.index].Span.Start
		if got.Line != tt.line || got.Column != tt.column || got.Offset != tt.offset {
			t.Errorf("token %d (%s) at %d:%d offset %d, want %d:%d offset %d",
				tt.index, tokens[tt.index], got.Line, got.Column, got.Offset, tt.line, tt.column, tt.offset)
		}
	}
	if got := tokens[3].Span.Start.String(); got != "A.java:2:3" {
		t.Errorf("Position.String() = %q", got)
	}
}

func TestLexerDocComments(t *testing.T) {
	input := "/** Greets. */\n@Deprecated /* plain */ void f();\n/**/ int x;"
	tokens, err := Tokenize([]byte(input), "")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != TokenAt || tokens[0].Doc != " Greets. " {
		t.Errorf("first token %s has doc %q, want @ with %q", tokens[0], tokens[0].Doc, " Greets. ")
	}
	for _, tok := range tokens[1:] {
		if tok.Doc != "" {
			t.Errorf("token %s carries doc %q", tok, tok.Doc)
		}
	}
}

func TestLexerAdjacency(t *testing.T) {
	tokens, err := Tokenize([]byte("a >> b > > c"), "")
	if err != nil {
		t.Fatal(err)
	}
	if !adjacent(tokens[1], tokens[2]) {
		t.Error(">> should be two adjacent tokens")
	}
	if adjacent(tokens[4], tokens[5]) {
		t.Error("> > should not be adjacent")
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated comment", "/* never closed"},
		{"unterminated string", "\"abc\nx"},
		{"unterminated char", "'a"},
		{"unterminated text block", "\"\"\"\nabc"},
		{"malformed exponent", "1e+"},
		{"malformed number", "12abc"},
		{"hex float without exponent", "0x1.8"},
		{"unexpected character", "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize([]byte(tt.input), "bad.java")
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Tokenize(%q) error = %v, want a syntax error", tt.input, err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) || se.Pos.File != "bad.java" {
				t.Errorf("error %v does not carry the file position", err)
			}
		})
	}
}
