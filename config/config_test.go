package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/jpp/java/parser"
)

func TestParse(t *testing.T) {
	c, err := Parse(`
[features]
disable = ["print-statements"]

[source]
encoding = "ISO-8859-1"

[output]
suffix = ".out.java"
minimal-parens = true
`)
	if err != nil {
		t.Fatal(err)
	}
	if c.Source.Encoding != "ISO-8859-1" {
		t.Errorf("Source.Encoding = %q", c.Source.Encoding)
	}
	if c.Source.Suffix != ".jpp" {
		t.Errorf("Source.Suffix = %q, want the default .jpp", c.Source.Suffix)
	}
	if c.Output.Suffix != ".out.java" || !c.Output.MinimalParens {
		t.Errorf("Output = %+v", c.Output)
	}
	set, err := c.FeatureSet()
	if err != nil {
		t.Fatal(err)
	}
	if set.Enabled(parser.PrintStatements) {
		t.Error("print-statements still enabled")
	}
	if !set.Enabled(parser.NotInstanceof) || !set.Enabled(parser.ExtendedModifiers) {
		t.Errorf("FeatureSet() = %s, want the other defaults kept", set)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown key", "[output]\nsufix = \".java\"\n"},
		{"unknown feature", "[features]\nenable = [\"goto\"]\n"},
		{"malformed", "[features\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text); err == nil {
				t.Errorf("Parse(%q) succeeded", tt.text)
			}
		})
	}

	_, err := Parse("[output]\nsufix = \".java\"\n")
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("error = %v, want ErrUnknownKey", err)
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "main")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	c, path, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		// A jpp.toml above the temp dir would make this test meaningless.
		t.Skipf("found unrelated project file %s", path)
	}
	if c.Output.Suffix != ".java" {
		t.Errorf("default Output.Suffix = %q", c.Output.Suffix)
	}

	want := filepath.Join(root, FileName)
	if err := os.WriteFile(want, []byte("[output]\nsuffix = \".gen.java\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, path, err = FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if ProjectRoot(path) != root {
		t.Errorf("ProjectRoot = %q, want %q", ProjectRoot(path), root)
	}
	if c.Output.Suffix != ".gen.java" {
		t.Errorf("Output.Suffix = %q", c.Output.Suffix)
	}
}

func TestOutputPath(t *testing.T) {
	c := DefaultConfig()
	tests := []struct {
		source string
		want   string
	}{
		{"Main.jpp", "Main.java"},
		{"src/a/Util.jpp", "src/a/Util.java"},
		{"Other.txt", "Other.java"},
		{"NoExt", "NoExt.java"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := c.OutputPath(tt.source)
			if err != nil {
				t.Fatalf("OutputPath(%q): %v", tt.source, err)
			}
			if got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}

	for _, source := range []string{"Main.java", "src/./Main.java"} {
		if got, err := c.OutputPath(source); !errors.Is(err, ErrSameOutput) {
			t.Errorf("OutputPath(%q) = %q, %v, want ErrSameOutput", source, got, err)
		}
	}
}
