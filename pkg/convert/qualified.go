// Package convert implements the six lowering rewriters and the class
// metadata extractor of spec.md §4 — the core of this pass. Every
// rewriter here is a local, single-shot transformation dispatched by
// Converter (convert.go) from driver.Traverse's post-order callback,
// except the rest-parameter rewrite, which spec.md §4.1 requires to run
// from the pre-order gate instead.
package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/runtime"
)

// callRuntime builds a Call node invoking one of the two fixed runtime
// helpers (pkg/runtime) with the given arguments. It does not mark the
// Context as needing the runtime: its callers in forof.go and class.go
// call driver.Context.RequireRuntime themselves.
func callRuntime(name string, args ...*ast.Node) *ast.Node {
	callee := ast.NewQualifiedName(splitQualified(name)...)
	children := append([]*ast.Node{callee}, args...)
	return ast.New(ast.Call, children...)
}

// splitQualified turns "$jscomp.inherits" into ["$jscomp", "inherits"],
// the piece NewQualifiedName wants. pkg/runtime's constants are the
// only strings this is ever called with, so a single '.' split is
// sufficient.
func splitQualified(dotted string) []string {
	for i := 0; i < len(dotted); i++ {
		if dotted[i] == '.' {
			return []string{dotted[:i], dotted[i+1:]}
		}
	}
	return []string{dotted}
}

// exprStmt wraps an expression as an ExprResult statement.
func exprStmt(expr *ast.Node) *ast.Node {
	return ast.New(ast.ExprResult, expr)
}

// assign builds a plain "=" assignment expression.
func assign(target, value *ast.Node) *ast.Node {
	n := ast.New(ast.Assign, target, value)
	n.Value = "="
	return n
}

// memberAccess builds "ClassName.member" or "ClassName.prototype.member"
// depending on static, the qualified-access shape spec.md §4.2's members
// pass needs for regular (non-computed) methods.
func memberAccess(className, member string, static bool) *ast.Node {
	if static {
		return ast.NewQualifiedName(className, member)
	}
	return ast.NewQualifiedName(className, "prototype", member)
}

// memberBase builds "ClassName" or "ClassName.prototype", the base
// expression a computed member's element access is rooted at.
func memberBase(className string, static bool) *ast.Node {
	if static {
		return ast.NewQualifiedName(className)
	}
	return ast.NewQualifiedName(className, "prototype")
}

// referencesThis reports whether n's subtree contains a This node,
// without descending into nested Function bodies (a nested function's
// `this` is its own, unrelated binding).
func referencesThis(n *ast.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind == ast.This {
		return true
	}
	if n.Kind == ast.Function {
		return false
	}
	for _, c := range n.Children {
		if referencesThis(c) {
			return true
		}
	}
	return false
}

const runtimeInherits = runtime.Inherits
const runtimeMakeIterator = runtime.MakeIterator
