package convert

import (
	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/driver"
)

// classMeta records how a Class node sits in its surrounding statement —
// a bare declaration, a qualified-name assignment, or a variable
// initializer — and the running insertion point subsequent synthesized
// statements (inherits call, method assignments, defineProperties,
// forward declarations) are appended after (spec.md §4.2).
type classMeta struct {
	FullName  string
	Anonymous bool
	Statement bool

	// InsertionPoint is the statement new siblings are inserted after.
	// It advances as each one is emitted.
	InsertionPoint *ast.Node

	// JSDocTarget is the node the combined JSDoc is attached to once the
	// class has been replaced: the Assign for a qualified-name
	// assignment, the Declarator for a variable initializer, or nil for
	// a bare statement (which gets its own fresh VarDecl instead).
	JSDocTarget *ast.Node

	// DefiningAssign is the Assign node that defines the class, excluded
	// from the reassignment scan, or nil when there isn't one (a bare
	// declaration or a variable initializer can't be "reassigned" by
	// their own defining statement in the first place).
	DefiningAssign *ast.Node
}

// classify determines how class sits in its enclosing statement,
// matching spec.md §4.2's three legal shapes. Anything else is
// CANNOT_CONVERT.
func classify(sink *diag.Sink, class *ast.Node) (classMeta, bool) {
	p := class.Parent
	switch {
	case p != nil && (p.Kind == ast.Block || p.Kind == ast.Program):
		name := class.Child(0)
		if name.IsEmpty() {
			sink.Report(diag.CannotConvert, class, "an anonymous class may only appear as an expression")
			return classMeta{}, false
		}
		return classMeta{
			FullName:       name.Value,
			Statement:      true,
			InsertionPoint: class,
		}, true

	case p != nil && p.Kind == ast.Assign && p.Parent != nil && p.Parent.Kind == ast.ExprResult:
		full, ok := ast.QualifiedName(p.Child(0))
		if !ok {
			sink.Report(diag.CannotConvert, class, "a class expression must be assigned to a qualified name")
			return classMeta{}, false
		}
		return classMeta{
			FullName:       full,
			Anonymous:      true,
			InsertionPoint: p.Parent,
			JSDocTarget:    p,
			DefiningAssign: p,
		}, true

	case p != nil && p.Kind == ast.Declarator && p.Parent != nil && p.Parent.Kind == ast.VarDecl:
		name := p.Child(0)
		return classMeta{
			FullName:       name.Value,
			Anonymous:      true,
			InsertionPoint: p.Parent,
			JSDocTarget:    p,
		}, true

	default:
		sink.Report(diag.CannotConvert, class, "a class must be a declaration, a simple assignment, or a variable initializer")
		return classMeta{}, false
	}
}

// classifyExtends validates the extends clause, if any, reporting
// DYNAMIC_EXTENDS_TYPE when it isn't a qualified name (spec.md §4.2).
// The third return value is false only when extends was present but
// invalid; callers must stop processing in that case.
func classifyExtends(sink *diag.Sink, class *ast.Node) (name string, hasSuper, ok bool) {
	super := class.Child(1)
	if super.IsEmpty() {
		return "", false, true
	}
	full, isName := ast.QualifiedName(super)
	if !isName {
		sink.Report(diag.DynamicExtendsType, super)
		return "", true, false
	}
	return full, true, true
}

// checkReassignment emits CLASS_REASSIGNMENT for any assignment to
// fullName found inside the function (if any) lexically enclosing
// class, other than exclude — the class's own defining assignment, if
// it has one (spec.md §4.2: "class names defined inside a function
// cannot be reassigned").
func checkReassignment(sink *diag.Sink, class *ast.Node, fullName string, exclude *ast.Node) {
	fn := enclosingFunction(class.Parent)
	if fn == nil {
		return
	}
	walkAssignments(fn.Child(1), func(a *ast.Node) {
		if a == exclude {
			return
		}
		if name, ok := ast.QualifiedName(a.Child(0)); ok && name == fullName {
			sink.Report(diag.ClassReassignment, a)
		}
	})
}

func enclosingFunction(n *ast.Node) *ast.Node {
	for n != nil {
		if n.Kind == ast.Function {
			return n
		}
		n = n.Parent
	}
	return nil
}

func walkAssignments(n *ast.Node, visit func(*ast.Node)) {
	if n == nil {
		return
	}
	if n.Kind == ast.Assign {
		visit(n)
	}
	for _, c := range n.Children {
		walkAssignments(c, visit)
	}
}

// extractConstructor detaches and returns the class's own constructor
// function, renaming it to fullName when the class isn't anonymous, or
// synthesizes an empty one when the class declared none (spec.md §4.2:
// "the constructor is never absent after processing").
func extractConstructor(membersBlock *ast.Node, meta classMeta) (*ast.Node, *ast.JSDoc) {
	for _, m := range append([]*ast.Node(nil), membersBlock.Children...) {
		if m.Kind == ast.MemberFunctionDef && m.Value == "constructor" {
			fn := m.Child(0).Detach()
			m.Detach()
			doc := fn.JSDoc
			if !meta.Anonymous {
				fn.Value = meta.FullName
			} else {
				fn.Value = ""
			}
			return fn, doc
		}
	}
	fn := ast.New(ast.Function, ast.New(ast.ParamList), ast.New(ast.Block))
	if !meta.Anonymous {
		fn.Value = meta.FullName
	}
	ast.FillSourceInfo(fn, membersBlock.Source)
	return fn, nil
}

// buildCombinedJSDoc assembles the new constructor's annotation out of
// the original constructor's JSDoc (suppressions, parameter types) and
// the class-level modifier bits, per spec.md §4.2's replacement step.
func buildCombinedJSDoc(class *ast.Node, ctorJSDoc *ast.JSDoc, hasSuper bool, superName string) *ast.JSDoc {
	var combined *ast.JSDoc
	if ctorJSDoc != nil {
		combined = ctorJSDoc.Clone()
	} else {
		combined = &ast.JSDoc{}
	}
	combined.IsConstructor = true
	if class.JSDoc != nil {
		combined.IsUnrestricted = class.JSDoc.IsUnrestricted
		combined.IsDict = class.JSDoc.IsDict
		combined.IsInterface = class.JSDoc.IsInterface
	}
	if !combined.IsUnrestricted && !combined.IsDict {
		combined.IsStruct = true
	}
	if hasSuper {
		if combined.IsInterface {
			combined.Interfaces = append(combined.Interfaces, superName)
		} else {
			combined.ExtendsType = superName
		}
	}
	return combined
}

// lowerClass rewrites a Class node into the ES5 constructor-function
// idiom: a detached (or synthesized) constructor, one assignment
// statement per regular method, one Object.defineProperties call per
// getter/setter set, an inherits() call for a qualified superclass, and
// a final replacement of the class node itself (spec.md §4.2).
func lowerClass(ctx *driver.Context, class *ast.Node) {
	meta, ok := classify(ctx.Diagnostics, class)
	if !ok {
		return
	}
	superName, hasSuper, ok := classifyExtends(ctx.Diagnostics, class)
	if !ok {
		return
	}
	checkReassignment(ctx.Diagnostics, class, meta.FullName, meta.DefiningAssign)

	membersBlock := class.Child(2)
	driver.Assertf(membersBlock != nil, "class node missing a members block")

	ctorFn, ctorJSDoc := extractConstructor(membersBlock, meta)

	isInterface := class.JSDoc != nil && class.JSDoc.IsInterface
	if hasSuper && !isInterface {
		call := exprStmt(callRuntime(runtimeInherits, ast.NewQualifiedName(meta.FullName), ast.NewQualifiedName(superName)))
		ast.FillSourceInfo(call, class.Source)
		meta.InsertionPoint = ast.InsertStatementAfter(meta.InsertionPoint, call)
		ctx.RequireRuntime()
	}

	proto := newAccessorSet()
	static := newAccessorSet()
	for _, m := range append([]*ast.Node(nil), membersBlock.Children...) {
		processMember(ctx, &meta, m, proto, static)
	}
	flush(&meta, static, true)
	flush(&meta, proto, false)

	combined := buildCombinedJSDoc(class, ctorJSDoc, hasSuper, superName)
	ctorFn.JSDoc = combined

	if meta.Statement {
		declarator := ast.New(ast.Declarator, ast.NewValue(ast.Identifier, meta.FullName), ctorFn)
		varDecl := ast.New(ast.VarDecl, declarator)
		varDecl.Value = "let"
		ast.FillSourceInfo(varDecl, class.Source)
		varDecl.JSDoc = combined.Clone()
		class.ReplaceWith(varDecl)
	} else {
		class.ReplaceWith(ctorFn)
		if meta.JSDocTarget != nil {
			meta.JSDocTarget.JSDoc = combined.Clone()
		} else {
			ctorFn.JSDoc = combined
		}
	}
	ctx.ReportCodeChange()
	ctx.IncClassesLowered()
}

// uniqueClassName returns name unchanged whether or not useUnique is
// set; no renaming scheme is implemented, and the flag is a reserved
// extension point. This pass never calls it with useUnique true.
func uniqueClassName(name string, useUnique bool) string {
	if !useUnique {
		return name
	}
	return name
}
