package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/driver"
)

// lowerForOf rewrites a ForOf loop into the classic for-loop idiom
// spec.md §4.3 specifies:
//
//	for (var $jscomp$iter$N = $jscomp.makeIterator(iterable), $jscomp$key$x;
//	     !($jscomp$key$x = $jscomp$iter$N.next()).done;) {
//	  var x = $jscomp$key$x.value;
//	  ...original body...
//	}
//
// x's declaration form (var/let/const, or a bare assignment when the
// loop variable was already declared elsewhere) is preserved.
func lowerForOf(ctx *driver.Context, forOf *ast.Node) {
	lhs := forOf.Child(0)
	iterable := forOf.Child(1)
	body := forOf.Child(2)

	var varName, declKind string
	switch lhs.Kind {
	case ast.VarDecl:
		declKind = lhs.Value
		varName = lhs.Child(0).Child(0).Value
	case ast.Identifier:
		varName = lhs.Value
	default:
		ctx.Diagnostics.Report(diag.CannotConvert, forOf, "unsupported for-of left-hand side")
		return
	}

	iterName := ctx.Minter.Iter()
	keyName := ctx.Minter.Key(varName)

	iterDecl := ast.New(ast.Declarator, ast.NewValue(ast.Identifier, iterName), callRuntime(runtimeMakeIterator, iterable.Detach()))
	keyDecl := ast.New(ast.Declarator, ast.NewValue(ast.Identifier, keyName))
	init := ast.New(ast.VarDecl, iterDecl, keyDecl)
	init.Value = "var"

	nextProp := ast.New(ast.GetProp, ast.NewValue(ast.Identifier, iterName))
	nextProp.Value = "next"
	nextCall := ast.New(ast.Call, nextProp)

	assignExpr := assign(ast.NewValue(ast.Identifier, keyName), nextCall)
	doneAccess := ast.New(ast.GetProp, ast.New(ast.Paren, assignExpr))
	doneAccess.Value = "done"
	cond := ast.New(ast.Unary, doneAccess)
	cond.Value = "!"

	valueAccess := ast.New(ast.GetProp, ast.NewValue(ast.Identifier, keyName))
	valueAccess.Value = "value"

	var bindStmt *ast.Node
	if declKind != "" {
		d := ast.New(ast.Declarator, ast.NewValue(ast.Identifier, varName), valueAccess)
		bindStmt = ast.New(ast.VarDecl, d)
		bindStmt.Value = declKind
	} else {
		bindStmt = exprStmt(assign(ast.NewValue(ast.Identifier, varName), valueAccess))
	}

	var bodyStmts []*ast.Node
	if body.Kind == ast.Block {
		bodyStmts = append([]*ast.Node(nil), body.Children...)
	} else {
		bodyStmts = []*ast.Node{body.Detach()}
	}
	newBody := ast.New(ast.Block, append([]*ast.Node{bindStmt}, bodyStmts...)...)

	forNode := ast.New(ast.For, init, cond, ast.NewEmpty(), newBody)
	ast.FillSourceInfo(forNode, forOf.Source)
	forOf.ReplaceWith(forNode)

	ctx.RequireRuntime()
	ctx.ReportCodeChange()
	ctx.IncForOfLowered()
}
