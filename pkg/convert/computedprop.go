package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/driver"
)

// lowerComputedObjectLit hoists an object literal containing a computed
// key into a temporary and a chain of assignments, per spec.md §4.6:
// the entries preceding the first computed key stay in the literal
// (they're safe to keep inline); the first computed key and everything
// after it — computed or not — become sequential "temp.x = ..." /
// "temp[k] = ..." assignments, so evaluation order is preserved exactly
// as written. The literal itself is replaced with a parenthesized comma
// sequence ending in the temporary. A literal with a computed getter or
// setter is reported as CANNOT_CONVERT_YET and left as written.
func lowerComputedObjectLit(ctx *driver.Context, lit *ast.Node) {
	idx := -1
	for i, c := range lit.Children {
		if c.Kind == ast.ComputedProp {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for _, c := range lit.Children[idx:] {
		if c.Kind == ast.ComputedProp && (c.Flags.Has(ast.FlagComputedPropGetter) || c.Flags.Has(ast.FlagComputedPropSetter)) {
			ctx.Diagnostics.Report(diag.CannotConvertYet, c, "computed accessor in an object literal")
			return
		}
	}

	frontEntries := append([]*ast.Node(nil), lit.Children[:idx]...)
	remaining := append([]*ast.Node(nil), lit.Children[idx:]...)
	for _, e := range frontEntries {
		e.Detach()
	}
	for _, e := range remaining {
		e.Detach()
	}

	tempName := ctx.Minter.CompProp()
	tempDecl := ast.New(ast.VarDecl, ast.New(ast.Declarator, ast.NewValue(ast.Identifier, tempName), ast.New(ast.ObjectLit, frontEntries...)))
	tempDecl.Value = "var"

	var ops []*ast.Node
	for _, e := range remaining {
		switch e.Kind {
		case ast.StringKey:
			value := e.Child(0).Detach()
			var target *ast.Node
			if e.Flags.Has(ast.FlagQuotedString) {
				target = ast.New(ast.GetElem, ast.NewValue(ast.Identifier, tempName), ast.NewValue(ast.String, e.Value))
			} else {
				target = ast.New(ast.GetProp, ast.NewValue(ast.Identifier, tempName))
				target.Value = e.Value
			}
			ops = append(ops, assign(target, value))

		case ast.ComputedProp:
			key := e.Child(0).Detach()
			value := e.Child(1).Detach()
			target := ast.New(ast.GetElem, ast.NewValue(ast.Identifier, tempName), key)
			ops = append(ops, assign(target, value))
		}
	}
	ops = append(ops, ast.NewValue(ast.Identifier, tempName))

	if anchor := enclosingStatement(lit); anchor != nil {
		ast.FillSourceInfo(tempDecl, lit.Source)
		ast.InsertStatementBefore(anchor, tempDecl)
	}

	sequence := ast.New(ast.Sequence, ops...)
	final := ast.New(ast.Paren, sequence)
	ast.FillSourceInfo(final, lit.Source)
	lit.ReplaceWith(final)
	ctx.ReportCodeChange()
	ctx.IncComputedPropsLowered()
}
