package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/driver"
)

// lowerMethodShorthand rewrites an object-literal method shorthand,
// "{ m() {} }", into the equivalent property-with-function-value form,
// "{ m: function() {} }" (spec.md §4.7). Getter/setter shorthand is
// already legal ES5 syntax and is left alone (the ES3 rejection of
// getters/setters is a separate pre-order gate check).
func lowerMethodShorthand(ctx *driver.Context, member *ast.Node) {
	fn := member.Child(0).Detach()
	replacement := ast.New(ast.StringKey, fn)
	replacement.Value = member.Value
	replacement.Flags = member.Flags &^ ast.FlagStatic
	ast.FillSourceInfo(replacement, member.Source)
	member.ReplaceWith(replacement)
	ctx.ReportCodeChange()
	ctx.IncShorthandsLowered()
}

// lowerPropertyShorthand rewrites an object-literal shorthand property,
// "{ x }", into "{ x: x }" (spec.md §4.7). A StringKey that already
// carries a value is left untouched.
func lowerPropertyShorthand(ctx *driver.Context, key *ast.Node) {
	if len(key.Children) > 0 {
		return
	}
	value := ast.NewValue(ast.Identifier, key.Value)
	ast.FillSourceInfo(value, key.Source)
	key.AddChild(value)
	ctx.ReportCodeChange()
	ctx.IncShorthandsLowered()
}
