package convert

import (
	"strconv"

	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/driver"
	"github.com/langtools/es6to5/pkg/names"
)

// maybeLowerRestParam runs from the pre-order gate, before fn's body is
// traversed (spec.md §4.5 step 1: "the rest parameter is rewritten
// eagerly, ahead of the normal post-order pass, so the synthesized body
// wrapper is itself traversed for any further lowering it needs").
//
// A function whose last parameter isn't a Rest node is left untouched.
func maybeLowerRestParam(ctx *driver.Context, fn *ast.Node) {
	params := fn.Child(0)
	if params == nil || len(params.Children) == 0 {
		return
	}
	last := params.Children[len(params.Children)-1]
	if last.Kind != ast.Rest {
		return
	}

	restName := last.Value
	paramCount := len(params.Children) - 1

	elemType := ast.WildcardType
	if fn.JSDoc != nil {
		if t, ok := fn.JSDoc.ParamType(restName); ok {
			if !t.IsRest() {
				ctx.Diagnostics.Report(diag.BadRestParameterAnnotation, last)
			} else {
				elemType = t.RestElement()
			}
		}
	}

	last.Kind = ast.Identifier
	last.Flags |= ast.FlagVarArgs

	body := fn.Child(1)
	newBody := buildRestBody(restName, paramCount, elemType, body)
	ast.FillSourceInfo(newBody, body.Source)
	body.ReplaceWith(newBody)

	ctx.ReportCodeChange()
	ctx.IncRestParamsLowered()
}

// buildRestBody assembles:
//
//	{
//	  var $jscomp$restParams = [];
//	  for (var $jscomp$restIndex = paramCount;
//	       $jscomp$restIndex < arguments.length; ++$jscomp$restIndex) {
//	    $jscomp$restParams[$jscomp$restIndex - paramCount] = arguments[$jscomp$restIndex];
//	  }
//	  {
//	    let rest = $jscomp$restParams;
//	    ...original body...
//	  }
//	}
func buildRestBody(restName string, paramCount int, elemType ast.TypeExpr, originalBody *ast.Node) *ast.Node {
	restParamsDecl := ast.New(ast.VarDecl, ast.New(ast.Declarator, ast.NewValue(ast.Identifier, names.RestParamsName), ast.New(ast.ArrayLit)))
	restParamsDecl.Value = "var"

	idxInit := ast.New(ast.VarDecl, ast.New(ast.Declarator, ast.NewValue(ast.Identifier, names.RestIndexName), ast.NewValue(ast.Number, strconv.Itoa(paramCount))))
	idxInit.Value = "var"

	argsLength := ast.New(ast.GetProp, ast.NewValue(ast.Identifier, "arguments"))
	argsLength.Value = "length"
	idxCond := ast.New(ast.Binary, ast.NewValue(ast.Identifier, names.RestIndexName), argsLength)
	idxCond.Value = "<"

	idxUpdate := ast.New(ast.Unary, ast.NewValue(ast.Identifier, names.RestIndexName))
	idxUpdate.Value = "++"

	destIndex := restIndexOffset(paramCount)
	assignElem := exprStmt(assign(
		ast.New(ast.GetElem, ast.NewValue(ast.Identifier, names.RestParamsName), destIndex),
		ast.New(ast.GetElem, ast.NewValue(ast.Identifier, "arguments"), ast.NewValue(ast.Identifier, names.RestIndexName)),
	))
	forLoop := ast.New(ast.For, idxInit, idxCond, idxUpdate, ast.New(ast.Block, assignElem))

	arrType := ast.ArrayOf(elemType)
	bindDecl := ast.New(ast.VarDecl, ast.New(ast.Declarator, ast.NewValue(ast.Identifier, restName), ast.NewValue(ast.Identifier, names.RestParamsName)))
	bindDecl.Value = "let"
	bindDecl.JSDoc = &ast.JSDoc{ReturnType: &arrType}

	originalStmts := append([]*ast.Node(nil), originalBody.Children...)
	innerBlock := ast.New(ast.Block, append([]*ast.Node{bindDecl}, originalStmts...)...)

	return ast.New(ast.Block, restParamsDecl, forLoop, innerBlock)
}

func restIndexOffset(paramCount int) *ast.Node {
	if paramCount == 0 {
		return ast.NewValue(ast.Identifier, names.RestIndexName)
	}
	n := ast.New(ast.Binary, ast.NewValue(ast.Identifier, names.RestIndexName), ast.NewValue(ast.Number, strconv.Itoa(paramCount)))
	n.Value = "-"
	return n
}
