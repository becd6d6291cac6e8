package convert

import (
	"strings"
	"testing"

	"github.com/langtools/es6to5/pkg/ast"
	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/driver"
	"github.com/langtools/es6to5/pkg/frontend"
	"github.com/langtools/es6to5/pkg/printer"
)

func TestLowerClassStatementBecomesLetBinding(t *testing.T) {
	root, ctx := lowerSrc(t, "class Point {\n  constructor(x) {\n    this.x = x;\n  }\n}", driver.ES5)
	out := printer.Print(root)
	if strings.Contains(out, "class ") {
		t.Errorf("output still contains a class keyword:\n%s", out)
	}
	if !strings.Contains(out, "let Point = function Point(x)") {
		t.Errorf("output = %q, want a named constructor function bound with let", out)
	}
	if ctx.Stats().ClassesLowered != 1 {
		t.Errorf("ClassesLowered = %d, want 1", ctx.Stats().ClassesLowered)
	}
}

func TestLowerClassRegularMethodBecomesPrototypeAssignment(t *testing.T) {
	root, _ := lowerSrc(t, "class Point {\n  constructor() {}\n  toString() {\n    return \"p\";\n  }\n}", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "Point.prototype.toString = function()") {
		t.Errorf("output = %q, want a prototype assignment for toString", out)
	}
}

func TestLowerClassStaticMethodBecomesStaticAssignment(t *testing.T) {
	root, _ := lowerSrc(t, "class Point {\n  constructor() {}\n  static origin() {\n    return new Point();\n  }\n}", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "Point.origin = function()") {
		t.Errorf("output = %q, want a static assignment for origin", out)
	}
	if strings.Contains(out, "Point.prototype.origin") {
		t.Errorf("output = %q, a static member must not land on the prototype", out)
	}
}

func TestLowerClassExtendsEmitsInheritsCall(t *testing.T) {
	root, ctx := lowerSrc(t, "class Dog extends Animal {\n  constructor() {}\n}", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "$jscomp.inherits(Dog, Animal)") {
		t.Errorf("output = %q, want an inherits() call", out)
	}
	if !ctx.NeedsRuntime() {
		t.Error("NeedsRuntime() = false, want true")
	}
}

func TestLowerClassSynthesizesEmptyConstructorWhenAbsent(t *testing.T) {
	root, _ := lowerSrc(t, "class Empty {\n}", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "function Empty()") {
		t.Errorf("output = %q, want a synthesized empty constructor", out)
	}
}

func TestLowerClassGetterSetterUsesDefineProperties(t *testing.T) {
	root, _ := lowerSrc(t, "class Box {\n  constructor() {}\n  get value() {\n    return this._v;\n  }\n  set value(v) {\n    this._v = v;\n  }\n}", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "Object.defineProperties(Box.prototype") {
		t.Errorf("output = %q, want Object.defineProperties on the prototype", out)
	}
	if !strings.Contains(out, "get: function") || !strings.Contains(out, "set: function") {
		t.Errorf("output = %q, want both get and set entries", out)
	}
}

func TestLowerClassAssignedToQualifiedNameIsAnonymous(t *testing.T) {
	root, _ := lowerSrc(t, "ns.Widget = class {\n  constructor() {}\n};", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "ns.Widget = function()") {
		t.Errorf("output = %q, want the class replaced by an anonymous function assigned to ns.Widget", out)
	}
}

func TestLowerClassAsVariableInitializer(t *testing.T) {
	root, _ := lowerSrc(t, "var Widget = class {\n  constructor() {}\n};", driver.ES5)
	out := printer.Print(root)
	if !strings.Contains(out, "var Widget = function()") {
		t.Errorf("output = %q, want the class replaced by an anonymous function initializer", out)
	}
}

func TestLowerClassDynamicExtendsReportsDiagnostic(t *testing.T) {
	root, err := frontend.Parse("t.js", "class Dog extends getBase() {\n  constructor() {}\n}")
	if err != nil {
		t.Fatal(err)
	}
	ctx := driver.NewContext(driver.ES5)
	err = Process(ctx, nil, root)
	if err == nil {
		t.Fatal("expected a diagnostic error for a dynamic extends clause")
	}
	diags := ctx.Diagnostics.Diagnostics()
	if len(diags) != 1 || diags[0].ID != diag.DynamicExtendsType {
		t.Errorf("diagnostics = %+v, want one DYNAMIC_EXTENDS_TYPE", diags)
	}
}

func TestLowerClassInFunctionReassignmentReportsDiagnostic(t *testing.T) {
	src := `function make() {
  class Widget {
    constructor() {}
  }
  Widget = somethingElse;
  return Widget;
}`
	root, err := frontend.Parse("t.js", src)
	if err != nil {
		t.Fatal(err)
	}
	ctx := driver.NewContext(driver.ES5)
	err = Process(ctx, nil, root)
	if err == nil {
		t.Fatal("expected a diagnostic error for reassigning a class name")
	}
	diags := ctx.Diagnostics.Diagnostics()
	if len(diags) != 1 || diags[0].ID != diag.ClassReassignment {
		t.Errorf("diagnostics = %+v, want one CLASS_REASSIGNMENT", diags)
	}
}

func TestLowerClassAsCallArgumentReportsCannotConvert(t *testing.T) {
	root, err := frontend.Parse("t.js", "register(class {\n  constructor() {}\n});")
	if err != nil {
		t.Fatal(err)
	}
	ctx := driver.NewContext(driver.ES5)
	err = Process(ctx, nil, root)
	if err == nil {
		t.Fatal("expected CANNOT_CONVERT for a class used directly as a call argument")
	}
	diags := ctx.Diagnostics.Diagnostics()
	if len(diags) != 1 || diags[0].ID != diag.CannotConvert {
		t.Errorf("diagnostics = %+v, want one CANNOT_CONVERT", diags)
	}
}

func TestConflictingGetterSetterTypeReportsDiagnostic(t *testing.T) {
	numberType := ast.TypeExpr{Raw: "number"}
	stringType := ast.TypeExpr{Raw: "string"}

	getFn := ast.New(ast.Function, ast.New(ast.ParamList), ast.New(ast.Block))
	getFn.JSDoc = &ast.JSDoc{ReturnType: &numberType}
	getter := ast.New(ast.GetterDef, getFn)
	getter.Value = "value"

	param := ast.NewValue(ast.Identifier, "v")
	setFn := ast.New(ast.Function, ast.New(ast.ParamList, param), ast.New(ast.Block))
	setFn.JSDoc = &ast.JSDoc{ParamTypes: map[string]ast.TypeExpr{"v": stringType}}
	setter := ast.New(ast.SetterDef, setFn)
	setter.Value = "value"

	ctorFn := ast.New(ast.Function, ast.New(ast.ParamList), ast.New(ast.Block))
	ctor := ast.New(ast.MemberFunctionDef, ctorFn)
	ctor.Value = "constructor"

	members := ast.New(ast.ClassMembers, ctor, getter, setter)
	class := ast.New(ast.Class, ast.NewValue(ast.Identifier, "Box"), ast.NewEmpty(), members)
	ast.New(ast.Program, class)

	ctx := driver.NewContext(driver.ES5)
	lowerClass(ctx, class)

	diags := ctx.Diagnostics.Diagnostics()
	if len(diags) != 1 || diags[0].ID != diag.ConflictingGetterSetterType {
		t.Fatalf("diagnostics = %+v, want one CONFLICTING_GETTER_SETTER_TYPE", diags)
	}
}
