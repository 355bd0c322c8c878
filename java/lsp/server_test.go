package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/parser"
)

func TestDiagnostics(t *testing.T) {
	opts := format.DefaultOptions()

	if got := Diagnostics("class A {}", opts); got == nil || len(got) != 0 {
		t.Errorf("clean source gave %v, want an empty non-nil slice", got)
	}

	got := Diagnostics("class A {\n    int x\n}", opts)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(got))
	}
	d := got[0]
	if d.Range.Start.Line != 2 || d.Range.Start.Character != 0 {
		t.Errorf("diagnostic at %d:%d, want 2:0", d.Range.Start.Line, d.Range.Start.Character)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v", d.Severity)
	}
	if !strings.Contains(d.Message, "expected") {
		t.Errorf("Message = %q", d.Message)
	}

	opts.Features = parser.Features(0)
	got = Diagnostics("class A { void f() { print 1; } }", opts)
	if len(got) != 1 || !strings.Contains(got[0].Message, "print-statements") {
		t.Errorf("disabled feature diagnostics = %+v", got)
	}
}

func TestFormatEdits(t *testing.T) {
	text := "class A {\n    void f() {\n        print 1;\n    }\n}\n"
	edits, err := FormatEdits(text, format.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	want := "class A {\n    void f() {\n        System.out.print(1);\n    }\n}\n"
	if edits[0].NewText != want {
		t.Errorf("NewText =\n%s\nwant\n%s", edits[0].NewText, want)
	}
	end := edits[0].Range.End
	if end.Line != 5 || end.Character != 0 {
		t.Errorf("edit ends at %d:%d, want 5:0", end.Line, end.Character)
	}

	if _, err := FormatEdits("class {", format.DefaultOptions()); err == nil {
		t.Error("FormatEdits accepted broken source")
	}
}

func TestEndOf(t *testing.T) {
	tests := []struct {
		text      string
		line      protocol.UInteger
		character protocol.UInteger
	}{
		{"", 0, 0},
		{"abc", 0, 3},
		{"a\nbc", 1, 2},
		{"a\n", 1, 0},
		{"x\n😀é", 1, 3},
	}
	for _, tt := range tests {
		got := endOf(tt.text)
		if got.Line != tt.line || got.Character != tt.character {
			t.Errorf("endOf(%q) = %d:%d, want %d:%d", tt.text, got.Line, got.Character, tt.line, tt.character)
		}
	}
}

func TestDiagnosticsUTF16Column(t *testing.T) {
	got := Diagnostics("class A { String s = \"😀\" int x; }", format.DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(got))
	}
	// The emoji takes two UTF-16 units, so int starts at unit 26.
	if start := got[0].Range.Start; start.Line != 0 || start.Character != 26 {
		t.Errorf("diagnostic at %d:%d, want 0:26", start.Line, start.Character)
	}
}

func TestPositionOf(t *testing.T) {
	tests := []struct {
		text         string
		line, column int
		character    protocol.UInteger
	}{
		{"abc", 1, 1, 0},
		{"abc", 1, 3, 2},
		{"a\nbc", 2, 2, 1},
		{"😀x", 1, 2, 2},
		{"é😀\n😀y", 2, 2, 2},
		{"ab", 1, 9, 2},
		{"ab", 4, 1, 0},
	}
	for _, tt := range tests {
		got := positionOf(tt.text, tt.line, tt.column)
		if got.Line != protocol.UInteger(tt.line-1) || got.Character != tt.character {
			t.Errorf("positionOf(%q, %d, %d) = %d:%d, want %d:%d",
				tt.text, tt.line, tt.column, got.Line, got.Character, tt.line-1, tt.character)
		}
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/a/Main.jpp", "/tmp/a/Main.jpp"},
		{"file:///tmp/with%20space/A.jpp", "/tmp/with space/A.jpp"},
		{"untitled:1", "untitled:1"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
