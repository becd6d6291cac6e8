package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.js")
	src := "class Dog extends Animal {\n  constructor(name) {\n    super(name);\n  }\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{path}, &stdout); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "class ") {
		t.Errorf("rewritten file still contains a class declaration:\n%s", out)
	}
	if !strings.Contains(string(out), "$jscomp.inherits") {
		t.Errorf("rewritten file is missing the inherits helper call:\n%s", out)
	}
}

func TestRunDryRunPrintsDiffAndLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.js")
	src := "for (var x of xs) {\n  use(x);\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{"--dry-run", path}, &stdout); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != src {
		t.Errorf("dry-run must not modify the file on disk, got:\n%s", after)
	}
	if !strings.Contains(stdout.String(), "@@") {
		t.Errorf("expected a unified diff hunk marker in stdout, got:\n%s", stdout.String())
	}
}

func TestRunEmitsJSONReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.js")
	src := "function f(a, ...rest) {\n  return rest;\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{"--report", "json", path}, &stdout); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), `"rest_params_lowered": 1`) {
		t.Errorf("expected the JSON report to count one lowered rest parameter, got:\n%s", stdout.String())
	}
}

func TestRunLeavesFileAloneWhenNothingToConvert(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.js")
	src := "var a = 1;\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	modBefore := info.ModTime()

	var stdout bytes.Buffer
	if err := run([]string{path}, &stdout); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	info2, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info2.ModTime().Equal(modBefore) {
		t.Error("file with no ES6 constructs should not be rewritten")
	}
}

func TestRunMergesYAMLConfigUnderFlags(t *testing.T) {
	dir := t.TempDir()
	jsPath := filepath.Join(dir, "in.js")
	src := "class A {}\n"
	if err := os.WriteFile(jsPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "es6to5.yaml")
	cfgContents := "paths:\n  - " + jsPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContents), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{"--config", cfgPath}, &stdout); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	out, err := os.ReadFile(jsPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "class ") {
		t.Errorf("path supplied only via the config file should still be converted, got:\n%s", out)
	}
}
