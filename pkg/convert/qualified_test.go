package convert

import (
	"testing"

	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/printer"
	"github.com/langtools/es6to5/pkg/runtime"
)

func TestCallRuntimeBuildsQualifiedCall(t *testing.T) {
	call := callRuntime(runtimeInherits, ast.NewValue(ast.Identifier, "Dog"), ast.NewValue(ast.Identifier, "Animal"))
	if got, want := printer.Print(call), "$jscomp.inherits(Dog, Animal);\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestCallRuntimeMakeIterator(t *testing.T) {
	call := callRuntime(runtimeMakeIterator, ast.NewValue(ast.Identifier, "xs"))
	if got, want := printer.Print(call), "$jscomp.makeIterator(xs);\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{runtime.Inherits, []string{"$jscomp", "inherits"}},
		{runtime.MakeIterator, []string{"$jscomp", "makeIterator"}},
		{"bare", []string{"bare"}},
	}
	for _, tc := range tests {
		got := splitQualified(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("splitQualified(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitQualified(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestExprStmtWrapsAsStatement(t *testing.T) {
	stmt := exprStmt(ast.NewValue(ast.Identifier, "x"))
	if stmt.Kind != ast.ExprResult {
		t.Errorf("Kind = %v, want ExprResult", stmt.Kind)
	}
	if got, want := printer.Print(stmt), "x;\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestAssignBuildsPlainAssignment(t *testing.T) {
	a := assign(ast.NewValue(ast.Identifier, "x"), ast.NewValue(ast.Number, "1"))
	if got, want := printer.Print(a), "x = 1;\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestMemberAccessInstanceUsesPrototype(t *testing.T) {
	m := memberAccess("Point", "toString", false)
	if got, want := printer.Print(m), "Point.prototype.toString;\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestMemberAccessStaticSkipsPrototype(t *testing.T) {
	m := memberAccess("Point", "origin", true)
	if got, want := printer.Print(m), "Point.origin;\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestMemberBaseInstanceAndStatic(t *testing.T) {
	if got, want := printer.Print(memberBase("Point", false)), "Point.prototype;\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
	if got, want := printer.Print(memberBase("Point", true)), "Point;\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestReferencesThisFindsDirectUse(t *testing.T) {
	expr := ast.New(ast.GetProp, ast.New(ast.This))
	expr.Value = "x"
	if !referencesThis(expr) {
		t.Error("referencesThis() = false, want true")
	}
}

func TestReferencesThisIgnoresNestedFunctionBody(t *testing.T) {
	nested := ast.New(ast.Function, ast.New(ast.ParamList), ast.New(ast.Block, ast.New(ast.ExprResult, ast.New(ast.This))))
	if referencesThis(nested) {
		t.Error("referencesThis() = true, want false for a nested function's own this binding")
	}
}

func TestReferencesThisHandlesNilAndNoThis(t *testing.T) {
	if referencesThis(nil) {
		t.Error("referencesThis(nil) = true, want false")
	}
	if referencesThis(ast.NewValue(ast.Identifier, "x")) {
		t.Error("referencesThis() = true, want false for an identifier")
	}
}
