package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/driver"
)

// accessorSet accumulates a class's getter/setter pairs (prototype- or
// static-side, tracked separately) until the member loop finishes, so
// they can be coalesced into a single Object.defineProperties call
// rather than one per accessor (spec.md §4.2).
type accessorSet struct {
	order []string
	entry map[string]*ast.Node // StringKey(name){configurable,enumerable,get?,set?}
	inner map[string]*ast.Node // the {configurable,...} ObjectLit, to append get/set into
	types map[string]ast.TypeExpr
}

func newAccessorSet() *accessorSet {
	return &accessorSet{
		entry: map[string]*ast.Node{},
		inner: map[string]*ast.Node{},
		types: map[string]ast.TypeExpr{},
	}
}

func boolLit(v bool) *ast.Node {
	if v {
		return ast.NewValue(ast.Boolean, "true")
	}
	return ast.NewValue(ast.Boolean, "false")
}

func stringKeyValue(key string, value *ast.Node) *ast.Node {
	n := ast.New(ast.StringKey, value)
	n.Value = key
	return n
}

func withThisType(doc *ast.JSDoc, className string) *ast.JSDoc {
	if doc == nil {
		doc = &ast.JSDoc{}
	}
	doc.ThisType = className
	return doc
}

// processMember dispatches one already-detached-from-constructor class
// member to its handling: a regular or computed method is emitted as an
// assignment statement immediately (advancing meta.InsertionPoint); a
// getter or setter is folded into proto or static for later flushing.
func processMember(ctx *driver.Context, meta *classMeta, m *ast.Node, proto, static *accessorSet) {
	switch m.Kind {
	case ast.Empty:
		return

	case ast.MemberFunctionDef:
		if m.Value == "constructor" {
			return // already extracted by extractConstructor
		}
		isStatic := m.Flags.Has(ast.FlagStatic)
		fn := m.Child(0).Detach()
		target := memberAccess(meta.FullName, m.Value, isStatic)
		emitMethodAssignment(ctx, meta, target, fn, isStatic)

	case ast.GetterDef:
		isStatic := m.Flags.Has(ast.FlagStatic)
		fn := m.Child(0).Detach()
		recordAccessor(ctx.Diagnostics, pickSet(proto, static, isStatic), meta, m, m.Value, "get", fn)

	case ast.SetterDef:
		isStatic := m.Flags.Has(ast.FlagStatic)
		fn := m.Child(0).Detach()
		recordAccessor(ctx.Diagnostics, pickSet(proto, static, isStatic), meta, m, m.Value, "set", fn)

	case ast.ComputedProp:
		isStatic := m.Flags.Has(ast.FlagStatic)
		if m.Flags.Has(ast.FlagComputedPropGetter) || m.Flags.Has(ast.FlagComputedPropSetter) {
			ctx.Diagnostics.Report(diag.CannotConvertYet, m, "computed getter/setter in a class body")
			return
		}
		key := m.Child(0).Detach()
		fn := m.Child(1).Detach()
		target := ast.New(ast.GetElem, memberBase(meta.FullName, isStatic), key)
		emitMethodAssignment(ctx, meta, target, fn, isStatic)
	}
}

func pickSet(proto, static *accessorSet, isStatic bool) *accessorSet {
	if isStatic {
		return static
	}
	return proto
}

func emitMethodAssignment(ctx *driver.Context, meta *classMeta, target, fn *ast.Node, isStatic bool) {
	if !isStatic {
		fn.JSDoc = withThisType(fn.JSDoc, meta.FullName)
	}
	stmt := exprStmt(assign(target, fn))
	ast.FillSourceInfo(stmt, fn.Source)
	if isStatic && referencesThis(fn.Child(1)) {
		stmt.JSDoc = &ast.JSDoc{ThisType: "?"}
	}
	meta.InsertionPoint = ast.InsertStatementAfter(meta.InsertionPoint, stmt)
}

// recordAccessor folds one getter or setter into set, reporting
// CONFLICTING_GETTER_SETTER_TYPE when a previously recorded accessor of
// the same name declared a different type (spec.md §4.2).
func recordAccessor(sink *diag.Sink, set *accessorSet, meta *classMeta, m *ast.Node, name, kind string, fn *ast.Node) {
	inner, ok := set.inner[name]
	if !ok {
		inner = ast.New(ast.ObjectLit,
			stringKeyValue("configurable", boolLit(true)),
			stringKeyValue("enumerable", boolLit(true)),
		)
		entry := ast.New(ast.StringKey, inner)
		entry.Value = name
		set.entry[name] = entry
		set.inner[name] = inner
		set.order = append(set.order, name)
	}

	t := accessorType(kind, fn)
	if prev, seen := set.types[name]; seen {
		if !prev.Equal(t) {
			sink.Report(diag.ConflictingGetterSetterType, m, name)
		}
	} else {
		set.types[name] = t
	}

	fn.JSDoc = withThisType(fn.JSDoc, meta.FullName)
	inner.AddChild(stringKeyValue(kind, fn))
}

func accessorType(kind string, fn *ast.Node) ast.TypeExpr {
	if kind == "get" {
		if fn.JSDoc != nil && fn.JSDoc.ReturnType != nil {
			return *fn.JSDoc.ReturnType
		}
		return ast.WildcardType
	}
	if params := fn.Child(0); fn.JSDoc != nil && params != nil && len(params.Children) > 0 {
		if t, ok := fn.JSDoc.ParamType(params.Children[0].Value); ok {
			return t
		}
	}
	return ast.WildcardType
}

// flush emits the Object.defineProperties call for a non-empty accessor
// set and, for each property it covers, a forward-declaration statement
// carrying the recorded type (spec.md §4.2: "so downstream type checking
// sees them").
func flush(meta *classMeta, set *accessorSet, isStatic bool) {
	if len(set.order) == 0 {
		return
	}
	entries := make([]*ast.Node, 0, len(set.order))
	for _, name := range set.order {
		entries = append(entries, set.entry[name])
	}
	obj := ast.New(ast.ObjectLit, entries...)
	target := memberBase(meta.FullName, isStatic)
	call := ast.New(ast.Call, ast.NewQualifiedName("Object", "defineProperties"), target, obj)
	stmt := exprStmt(call)
	meta.InsertionPoint = ast.InsertStatementAfter(meta.InsertionPoint, stmt)

	for _, name := range set.order {
		t := set.types[name]
		fwd := exprStmt(memberAccess(meta.FullName, name, isStatic))
		fwd.JSDoc = &ast.JSDoc{ReturnType: &t}
		meta.InsertionPoint = ast.InsertStatementAfter(meta.InsertionPoint, fwd)
	}
}
