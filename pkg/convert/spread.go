package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/driver"
)

// containsSpread reports whether any of nodes is a Spread element.
func containsSpread(nodes []*ast.Node) bool {
	for _, n := range nodes {
		if n.Kind == ast.Spread {
			return true
		}
	}
	return false
}

// enclosingStatement walks up from n to the nearest ancestor that sits
// directly in a Block or Program's child list.
func enclosingStatement(n *ast.Node) *ast.Node {
	for n != nil && n.Parent != nil {
		if n.Parent.Kind == ast.Block || n.Parent.Kind == ast.Program {
			return n
		}
		n = n.Parent
	}
	return n
}

// buildConcatArgs partitions elems into groups per spec.md §4.4: a run
// of consecutive non-spread elements becomes one ArrayLit group; each
// Spread element becomes its own group, holding its inner expression
// directly (so Array.prototype.concat splices it rather than nesting
// it as a single element).
func buildConcatArgs(elems []*ast.Node) []*ast.Node {
	var groups []*ast.Node
	var run []*ast.Node
	flush := func() {
		if len(run) > 0 {
			groups = append(groups, ast.New(ast.ArrayLit, run...))
			run = nil
		}
	}
	for _, e := range elems {
		if e.Kind == ast.Spread {
			flush()
			groups = append(groups, e.Child(0).Detach())
		} else {
			run = append(run, e.Detach())
		}
	}
	flush()
	return groups
}

// concatCall builds "[].concat(groups...)".
func concatCall(groups []*ast.Node) *ast.Node {
	concatProp := ast.New(ast.GetProp, ast.New(ast.ArrayLit))
	concatProp.Value = "concat"
	return ast.New(ast.Call, append([]*ast.Node{concatProp}, groups...)...)
}

// lowerSpreadArrayLit rewrites "[a, b, ...c, d]" into
// "[].concat([a, b], c, [d])".
func lowerSpreadArrayLit(ctx *driver.Context, lit *ast.Node) {
	if !containsSpread(lit.Children) {
		return
	}
	elems := append([]*ast.Node(nil), lit.Children...)
	call := concatCall(buildConcatArgs(elems))
	ast.FillSourceInfo(call, lit.Source)
	lit.ReplaceWith(call)
	ctx.ReportCodeChange()
	ctx.IncSpreadSitesLowered()
}

// lowerSpreadCall rewrites a call with a spread argument into an
// explicit .apply(), per spec.md §4.4. A plain function call becomes
// "fn.apply(null, [].concat(...))"; a method call "obj.m(...args)"
// becomes "obj.m.apply(obj, [].concat(...))", hoisting obj into a
// temporary first when it isn't safe to evaluate twice.
func lowerSpreadCall(ctx *driver.Context, call *ast.Node) {
	if !containsSpread(call.Children[1:]) {
		return
	}
	callee := call.Child(0)
	args := append([]*ast.Node(nil), call.Children[1:]...)
	joined := concatCall(buildConcatArgs(args))

	var final *ast.Node
	if callee.Kind == ast.GetProp {
		obj := callee.Child(0)
		method := callee.Value

		var baseForCallee, baseForReceiver *ast.Node
		if ast.HasSideEffects(obj) {
			tempName := ctx.Minter.SpreadArgs()
			tempDecl := ast.New(ast.VarDecl, ast.New(ast.Declarator, ast.NewValue(ast.Identifier, tempName), obj.Detach()))
			tempDecl.Value = "var"
			ast.FillSourceInfo(tempDecl, call.Source)
			if anchor := enclosingStatement(call); anchor != nil {
				ast.InsertStatementBefore(anchor, tempDecl)
			}
			baseForCallee = ast.NewValue(ast.Identifier, tempName)
			baseForReceiver = ast.NewValue(ast.Identifier, tempName)
		} else {
			baseForCallee = obj.Detach()
			baseForReceiver = baseForCallee.Clone()
		}

		newCallee := ast.New(ast.GetProp, baseForCallee)
		newCallee.Value = method
		applyAccess := ast.New(ast.GetProp, newCallee)
		applyAccess.Value = "apply"
		final = ast.New(ast.Call, applyAccess, baseForReceiver, joined)
	} else {
		applyAccess := ast.New(ast.GetProp, callee.Detach())
		applyAccess.Value = "apply"
		final = ast.New(ast.Call, applyAccess, ast.New(ast.Null), joined)
	}

	ast.FillSourceInfo(final, call.Source)
	call.ReplaceWith(final)
	ctx.ReportCodeChange()
	ctx.IncSpreadSitesLowered()
}

// lowerSpreadNew rewrites "new Klass(...args)" into
// "new (Function.prototype.bind.apply(Klass, [].concat([null], ...args)))()",
// the one ES5 idiom that can invoke a constructor with a dynamically
// assembled argument list (spec.md §4.4).
func lowerSpreadNew(ctx *driver.Context, newNode *ast.Node) {
	if !containsSpread(newNode.Children[1:]) {
		return
	}
	ctorExpr := newNode.Child(0).Detach()
	args := append([]*ast.Node(nil), newNode.Children[1:]...)
	groups := append([]*ast.Node{ast.New(ast.ArrayLit, ast.New(ast.Null))}, buildConcatArgs(args)...)
	joined := concatCall(groups)

	applyAccess := ast.New(ast.GetProp, ast.NewQualifiedName("Function", "prototype", "bind"))
	applyAccess.Value = "apply"
	boundCtor := ast.New(ast.Call, applyAccess, ctorExpr, joined)
	final := ast.New(ast.New, ast.New(ast.Paren, boundCtor))

	ast.FillSourceInfo(final, newNode.Source)
	newNode.ReplaceWith(final)
	ctx.ReportCodeChange()
	ctx.IncSpreadSitesLowered()
}
