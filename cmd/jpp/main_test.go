package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTranspileCmdStdin(t *testing.T) {
	cmd := newTranspileCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("class A { void f() { println 1, 2; } }"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	want := "class A {\n    void f() {\n        System.out.println(1 + \" \" + 2);\n    }\n}\n"
	if out.String() != want {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}
}

func TestTranspileCmdWrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Main.jpp")
	if err := os.WriteFile(src, []byte("class Main { non-static int x; }"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newTranspileCmd()
	cmd.SetArgs([]string{"-w", src})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "Main.java"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "class Main {\n    int x;\n}\n" {
		t.Errorf("Main.java = %q", got)
	}
}

func TestTranspileCmdWriteRefusesSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Main.java")
	const input = "class Main { non-static int x; }"
	if err := os.WriteFile(src, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newTranspileCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-w", src})
	if err := cmd.Execute(); err == nil {
		t.Fatal("-w overwrote its own source without an error")
	}
	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != input {
		t.Errorf("Main.java changed to %q", got)
	}
	if !strings.Contains(stderr.String(), "output path equals source path") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestTranspileCmdFlagConflicts(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Main.jpp")
	if err := os.WriteFile(src, []byte("class Main {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		args []string
	}{
		{"write and output", []string{"-w", "-o", filepath.Join(dir, "Out.java"), src}},
		{"output with several files", []string{"-o", filepath.Join(dir, "Out.java"), src, src}},
		{"write from stdin", []string{"-w"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newTranspileCmd()
			cmd.SetIn(strings.NewReader("class A {}"))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err == nil {
				t.Error("conflicting flags accepted")
			}
			if _, err := os.Stat(filepath.Join(dir, "Out.java")); err == nil {
				t.Error("Out.java written")
			}
		})
	}
}

func TestTranspileCmdDisabledFeature(t *testing.T) {
	cmd := newTranspileCmd()
	cmd.SetIn(strings.NewReader("class A { void f() { print 1; } }"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--disable", "print-statements"})
	if err := cmd.Execute(); err == nil {
		t.Error("print statement accepted with the feature disabled")
	}
}

func TestParseCmd(t *testing.T) {
	cmd := newParseCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("class A {}"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", "tree"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "CompilationUnit\n  ClassDecl\n") {
		t.Errorf("unexpected dump:\n%s", out.String())
	}
}

func TestRemove(t *testing.T) {
	got := remove([]string{"a", "b", "c", "b"}, []string{"b"})
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("remove() = %v", got)
	}
}

func TestFeaturesCmd(t *testing.T) {
	cmd := newFeaturesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--grammar"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"print-statements", "enabled", "PrintStatement =", "NegatedModifier"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}
