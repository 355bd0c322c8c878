package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/jpp/config"
	"github.com/dhamidi/jpp/java/parser"
)

func TestDecodeSource(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
	}{
		{"utf-8 default", []byte("größe"), "", "größe"},
		{"latin-1", []byte{'c', 0xe9}, "ISO-8859-1", "cé"},
		{"utf-8 bom", []byte{0xef, 0xbb, 0xbf, 'a'}, "", "a"},
		{"utf-16 bom overrides", []byte{0xff, 0xfe, 'a', 0x00}, "ISO-8859-1", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSource(tt.data, tt.encoding)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("DecodeSource() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := DecodeSource([]byte("x"), "no-such-charset"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestTranspile(t *testing.T) {
	input := "package demo;\n" +
		"\n" +
		"public class Hello {\n" +
		"    public non-final static void main(String[] args) {\n" +
		"        println \"hello\", args.length;\n" +
		"        if (args !instanceof Object) return;\n" +
		"    }\n" +
		"}\n"
	want := "package demo;\n" +
		"\n" +
		"public class Hello {\n" +
		"    public static void main(String[] args) {\n" +
		"        System.out.println(\"hello\" + \" \" + args.length);\n" +
		"        if (!(args instanceof Object)) return;\n" +
		"    }\n" +
		"}\n"
	got, err := Transpile(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Transpile() =\n%s\nwant\n%s", got, want)
	}
}

func TestTranspileErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.File = "Bad.jpp"
	_, err := Transpile(strings.NewReader("class {"), opts)
	if !errors.Is(err, parser.ErrSyntax) {
		t.Fatalf("error = %v, want a syntax error", err)
	}
	if !strings.HasPrefix(err.Error(), "Bad.jpp:1:") {
		t.Errorf("Error() = %q, want the file position", err.Error())
	}

	opts.Features = parser.Features(0)
	_, err = Transpile(strings.NewReader("class A { void f() { print \"x\"; } }"), opts)
	if !errors.Is(err, parser.ErrFeatureDisabled) {
		t.Errorf("error = %v, want a disabled feature error", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	c, err := config.Parse("[features]\ndisable = [\"not-instanceof\"]\n[output]\nminimal-parens = true\n")
	if err != nil {
		t.Fatal(err)
	}
	opts, err := OptionsFromConfig(c)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Features.Enabled(parser.NotInstanceof) || !opts.MinimalParens || opts.Encoding != "UTF-8" {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
}

func TestEncoders(t *testing.T) {
	unit, err := Parse(strings.NewReader("/** Doc. */ class A { int x = 1 + y; }"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("java", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewJavaEncoder(&buf).Encode(unit); err != nil {
			t.Fatal(err)
		}
		want := "/** Doc. */\nclass A {\n    int x = 1 + y;\n}\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("tree", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewTreeTextEncoder(&buf).Encode(unit); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), "CompilationUnit\n") || !strings.Contains(buf.String(), "BinaryExpr +") {
			t.Errorf("unexpected dump:\n%s", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewTreeJSONEncoder(&buf).Encode(unit); err != nil {
			t.Fatal(err)
		}
		var root treeJSONNode
		if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
			t.Fatal(err)
		}
		if root.Kind != "CompilationUnit" || len(root.Children) != 1 {
			t.Fatalf("root = %+v", root)
		}
		class := root.Children[0]
		if class.Kind != "ClassDecl" || class.Doc != " Doc. " {
			t.Errorf("class node = %+v", class)
		}
	})

	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Error("NewEncoder accepted an unknown format")
	}
	for _, name := range EncoderNames() {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("NewEncoder(%q): %v", name, err)
		}
	}
}
