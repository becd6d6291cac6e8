package frontend

import (
	"testing"

	"github.com/langtools/es6to5/pkg/ast"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, err := Parse("test.js", src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return root
}

func TestParseVarDeclarations(t *testing.T) {
	root := mustParse(t, "var a = 1, b;")
	if len(root.Children) != 1 {
		t.Fatalf("got %d statements, want 1", len(root.Children))
	}
	decl := root.Child(0)
	if decl.Kind != ast.VarDecl || decl.Value != "var" {
		t.Fatalf("statement = %+v, want a \"var\" VarDecl", decl)
	}
	if len(decl.Children) != 2 {
		t.Fatalf("got %d declarators, want 2", len(decl.Children))
	}
	a := decl.Child(0)
	if a.Child(0).Value != "a" || len(a.Children) != 2 || a.Child(1).Value != "1" {
		t.Errorf("first declarator = %+v, want a = 1", a)
	}
	b := decl.Child(1)
	if b.Child(0).Value != "b" || len(b.Children) != 1 {
		t.Errorf("second declarator = %+v, want bare b", b)
	}
}

func TestParseIfElseAndWhile(t *testing.T) {
	root := mustParse(t, "if (a) { b(); } else { c(); } while (x) { y(); }")
	if len(root.Children) != 2 {
		t.Fatalf("got %d statements, want 2", len(root.Children))
	}
	ifStmt := root.Child(0)
	if ifStmt.Kind != ast.If || len(ifStmt.Children) != 3 {
		t.Fatalf("if statement = %+v, want [cond, then, else]", ifStmt)
	}
	whileStmt := root.Child(1)
	if whileStmt.Kind != ast.While {
		t.Fatalf("statement 1 kind = %v, want While", whileStmt.Kind)
	}
}

func TestParseClassicFor(t *testing.T) {
	root := mustParse(t, "for (var i = 0; i < 10; i++) { f(i); }")
	forNode := root.Child(0)
	if forNode.Kind != ast.For {
		t.Fatalf("kind = %v, want For", forNode.Kind)
	}
	init := forNode.Child(0)
	if init.Kind != ast.VarDecl || init.Value != "var" {
		t.Fatalf("init = %+v, want a var declaration", init)
	}
	cond := forNode.Child(1)
	if cond.Kind != ast.Binary || cond.Value != "<" {
		t.Fatalf("cond = %+v, want a < binary expression", cond)
	}
	update := forNode.Child(2)
	if update.Kind != ast.Unary || update.Value != "++" {
		t.Fatalf("update = %+v, want i++", update)
	}
}

func TestParseForOfWithDeclaration(t *testing.T) {
	root := mustParse(t, "for (let item of items) { use(item); }")
	forOf := root.Child(0)
	if forOf.Kind != ast.ForOf {
		t.Fatalf("kind = %v, want ForOf", forOf.Kind)
	}
	lhs := forOf.Child(0)
	if lhs.Kind != ast.VarDecl || lhs.Value != "let" {
		t.Fatalf("lhs = %+v, want a let declaration", lhs)
	}
	if lhs.Child(0).Child(0).Value != "item" {
		t.Errorf("loop variable = %q, want \"item\"", lhs.Child(0).Child(0).Value)
	}
	iterable := forOf.Child(1)
	if iterable.Kind != ast.Identifier || iterable.Value != "items" {
		t.Fatalf("iterable = %+v, want identifier items", iterable)
	}
}

func TestParseForOfWithBareIdentifier(t *testing.T) {
	root := mustParse(t, "for (item of items) { use(item); }")
	forOf := root.Child(0)
	if forOf.Kind != ast.ForOf {
		t.Fatalf("kind = %v, want ForOf", forOf.Kind)
	}
	if forOf.Child(0).Kind != ast.Identifier || forOf.Child(0).Value != "item" {
		t.Errorf("lhs = %+v, want bare identifier item", forOf.Child(0))
	}
}

func TestParseFunctionWithRestParam(t *testing.T) {
	root := mustParse(t, "function f(a, ...rest) { return rest; }")
	fn := root.Child(0)
	if fn.Kind != ast.Function || fn.Value != "f" {
		t.Fatalf("fn = %+v, want named Function f", fn)
	}
	params := fn.Child(0)
	if len(params.Children) != 2 {
		t.Fatalf("got %d params, want 2", len(params.Children))
	}
	if params.Child(0).Kind != ast.Identifier || params.Child(0).Value != "a" {
		t.Errorf("param 0 = %+v, want identifier a", params.Child(0))
	}
	if params.Child(1).Kind != ast.Rest || params.Child(1).Value != "rest" {
		t.Errorf("param 1 = %+v, want Rest rest", params.Child(1))
	}
}

func TestParseClassWithExtendsGetterSetterStatic(t *testing.T) {
	src := `
class Dog extends Animal {
  constructor(name) {
    this.name = name;
  }
  bark() {
    return "woof";
  }
  get size() {
    return 1;
  }
  set size(v) {
    this._size = v;
  }
  static create(name) {
    return new Dog(name);
  }
}`
	root := mustParse(t, src)
	classNode := root.Child(0)
	if classNode.Kind != ast.Class {
		t.Fatalf("kind = %v, want Class", classNode.Kind)
	}
	if classNode.Child(0).Value != "Dog" {
		t.Errorf("class name = %q, want Dog", classNode.Child(0).Value)
	}
	if classNode.Child(1).Value != "Animal" {
		t.Errorf("superclass = %q, want Animal", classNode.Child(1).Value)
	}
	members := classNode.Child(2)
	if members.Kind != ast.ClassMembers {
		t.Fatalf("members kind = %v, want ClassMembers", members.Kind)
	}
	if len(members.Children) != 5 {
		t.Fatalf("got %d members, want 5", len(members.Children))
	}
	if members.Child(0).Value != "constructor" {
		t.Errorf("member 0 = %+v, want constructor", members.Child(0))
	}
	if members.Child(2).Kind != ast.GetterDef || members.Child(2).Value != "size" {
		t.Errorf("member 2 = %+v, want GetterDef size", members.Child(2))
	}
	if members.Child(3).Kind != ast.SetterDef || members.Child(3).Value != "size" {
		t.Errorf("member 3 = %+v, want SetterDef size", members.Child(3))
	}
	if !members.Child(4).Flags.Has(ast.FlagStatic) {
		t.Errorf("member 4 should be static: %+v", members.Child(4))
	}
}

func TestParseSpreadInArrayCallAndNew(t *testing.T) {
	root := mustParse(t, "var a = [1, ...xs, 2]; f(1, ...xs); new C(...xs);")
	arrLit := root.Child(0).Child(0).Child(1)
	if arrLit.Kind != ast.ArrayLit || len(arrLit.Children) != 3 {
		t.Fatalf("array literal = %+v, want 3 elements", arrLit)
	}
	if arrLit.Child(1).Kind != ast.Spread {
		t.Errorf("array element 1 = %+v, want Spread", arrLit.Child(1))
	}

	call := root.Child(1).Child(0)
	if call.Kind != ast.Call || len(call.Children) != 3 {
		t.Fatalf("call = %+v, want callee + 2 args", call)
	}
	if call.Child(2).Kind != ast.Spread {
		t.Errorf("call arg 1 = %+v, want Spread", call.Child(2))
	}

	newExpr := root.Child(2).Child(0)
	if newExpr.Kind != ast.New || len(newExpr.Children) != 2 {
		t.Fatalf("new expr = %+v, want callee + 1 arg", newExpr)
	}
	if newExpr.Child(1).Kind != ast.Spread {
		t.Errorf("new arg 0 = %+v, want Spread", newExpr.Child(1))
	}
}

func TestParseComputedAndShorthandObjectLiteral(t *testing.T) {
	root := mustParse(t, "var o = { [key]: 1, x, m() { return 1; } };")
	obj := root.Child(0).Child(0).Child(1)
	if obj.Kind != ast.ObjectLit || len(obj.Children) != 3 {
		t.Fatalf("object literal = %+v, want 3 entries", obj)
	}
	if obj.Child(0).Kind != ast.ComputedProp {
		t.Errorf("entry 0 = %+v, want ComputedProp", obj.Child(0))
	}
	if obj.Child(1).Kind != ast.StringKey || obj.Child(1).Value != "x" || len(obj.Child(1).Children) != 0 {
		t.Errorf("entry 1 = %+v, want shorthand StringKey x", obj.Child(1))
	}
	if obj.Child(2).Kind != ast.MemberFunctionDef || obj.Child(2).Value != "m" {
		t.Errorf("entry 2 = %+v, want MemberFunctionDef m", obj.Child(2))
	}
}

func TestParseRejectsArrowFunctions(t *testing.T) {
	if _, err := Parse("test.js", "var f = (a) => a;"); err == nil {
		t.Fatal("expected a parse error for an arrow function")
	}
}

func TestParseRejectsDestructuring(t *testing.T) {
	if _, err := Parse("test.js", "var {a, b} = obj;"); err == nil {
		t.Fatal("expected a parse error for destructuring")
	}
	if _, err := Parse("test.js", "var [a, b] = arr;"); err == nil {
		t.Fatal("expected a parse error for array destructuring")
	}
}

func TestParseRejectsImportExport(t *testing.T) {
	if _, err := Parse("test.js", "import x from 'y';"); err == nil {
		t.Fatal("expected a parse error for import")
	}
	if _, err := Parse("test.js", "export default x;"); err == nil {
		t.Fatal("expected a parse error for export")
	}
}

func TestParseMemberCallChaining(t *testing.T) {
	root := mustParse(t, "a.b.c(1, 2);")
	call := root.Child(0).Child(0)
	if call.Kind != ast.Call {
		t.Fatalf("kind = %v, want Call", call.Kind)
	}
	callee := call.Child(0)
	if callee.Kind != ast.GetProp || callee.Value != "c" {
		t.Fatalf("callee = %+v, want GetProp c", callee)
	}
}
