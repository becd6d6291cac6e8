// Package printer is the inverse of pkg/frontend: it renders a
// pkg/ast.Node tree back to ES5-flavored source text. It exists for the
// CLI's dry-run diff, for golden/snapshot tests, and to give the
// idempotency check in pkg/convert a readable failure message instead
// of a raw tree dump.
package printer

import (
	"fmt"
	"strings"

	"github.com/langtools/es6to5/pkg/ast"
)

// Print renders root as source text.
func Print(root *ast.Node) string {
	var sb strings.Builder
	p := &printer{out: &sb}
	p.node(root, 0)
	return sb.String()
}

type printer struct {
	out *strings.Builder
}

func (p *printer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		p.out.WriteString("  ")
	}
}

func (p *printer) node(n *ast.Node, depth int) {
	if n == nil || n.Kind == ast.Empty {
		return
	}
	switch n.Kind {
	case ast.Program:
		p.stmtList(n.Children, depth)

	case ast.Block:
		p.out.WriteString("{\n")
		p.stmtList(n.Children, depth+1)
		p.writeIndent(depth)
		p.out.WriteString("}")

	case ast.ExprResult:
		p.writeIndent(depth)
		p.expr(n.Child(0))
		p.out.WriteString(";\n")

	case ast.VarDecl:
		p.writeIndent(depth)
		p.out.WriteString(n.Value)
		p.out.WriteString(" ")
		for i, d := range n.Children {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.declarator(d)
		}
		p.out.WriteString(";\n")

	case ast.If:
		p.writeIndent(depth)
		p.out.WriteString("if (")
		p.expr(n.Child(0))
		p.out.WriteString(") ")
		p.stmtAsBlockLike(n.Child(1), depth)
		if len(n.Children) > 2 {
			p.out.WriteString(" else ")
			p.stmtAsBlockLike(n.Child(2), depth)
		}
		p.out.WriteString("\n")

	case ast.While:
		p.writeIndent(depth)
		p.out.WriteString("while (")
		p.expr(n.Child(0))
		p.out.WriteString(") ")
		p.stmtAsBlockLike(n.Child(1), depth)
		p.out.WriteString("\n")

	case ast.For:
		p.writeIndent(depth)
		p.out.WriteString("for (")
		p.forClause(n.Child(0))
		p.out.WriteString("; ")
		p.expr(n.Child(1))
		p.out.WriteString("; ")
		p.expr(n.Child(2))
		p.out.WriteString(") ")
		p.stmtAsBlockLike(n.Child(3), depth)
		p.out.WriteString("\n")

	case ast.ForOf:
		p.writeIndent(depth)
		p.out.WriteString("for (")
		p.forOfLHS(n.Child(0))
		p.out.WriteString(" of ")
		p.expr(n.Child(1))
		p.out.WriteString(") ")
		p.stmtAsBlockLike(n.Child(2), depth)
		p.out.WriteString("\n")

	case ast.Return:
		p.writeIndent(depth)
		p.out.WriteString("return")
		if len(n.Children) > 0 {
			p.out.WriteString(" ")
			p.expr(n.Child(0))
		}
		p.out.WriteString(";\n")

	case ast.Class:
		p.writeIndent(depth)
		p.classExpr(n)
		p.out.WriteString("\n")

	default:
		// A bare expression used as a statement (a synthesized or
		// statement-level Function/Class reached some other way).
		p.writeIndent(depth)
		p.expr(n)
		p.out.WriteString(";\n")
	}
}

func (p *printer) stmtAsBlockLike(n *ast.Node, depth int) {
	if n != nil && n.Kind == ast.Block {
		p.node(n, depth)
		return
	}
	p.out.WriteString("{\n")
	p.node(n, depth+1)
	p.writeIndent(depth)
	p.out.WriteString("}")
}

func (p *printer) forClause(n *ast.Node) {
	if n == nil || n.Kind == ast.Empty {
		return
	}
	if n.Kind == ast.VarDecl {
		p.out.WriteString(n.Value)
		p.out.WriteString(" ")
		for i, d := range n.Children {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.declarator(d)
		}
		return
	}
	p.expr(n)
}

func (p *printer) forOfLHS(n *ast.Node) {
	if n.Kind == ast.VarDecl {
		p.out.WriteString(n.Value)
		p.out.WriteString(" ")
		p.declarator(n.Child(0))
		return
	}
	p.expr(n)
}

func (p *printer) declarator(d *ast.Node) {
	p.expr(d.Child(0))
	if len(d.Children) > 1 {
		p.out.WriteString(" = ")
		p.expr(d.Child(1))
	}
}

func (p *printer) stmtList(stmts []*ast.Node, depth int) {
	for _, s := range stmts {
		p.node(s, depth)
	}
}

func (p *printer) expr(n *ast.Node) {
	if n == nil || n.Kind == ast.Empty {
		return
	}
	switch n.Kind {
	case ast.Identifier:
		p.out.WriteString(n.Value)
	case ast.Number, ast.Boolean:
		p.out.WriteString(n.Value)
	case ast.String:
		fmt.Fprintf(p.out, "%q", n.Value)
	case ast.Null:
		p.out.WriteString("null")
	case ast.This:
		p.out.WriteString("this")
	case ast.TemplateLit:
		p.out.WriteString(n.Value)
	case ast.TaggedTemplateLit:
		if len(n.Children) > 0 {
			p.expr(n.Child(0))
		}
		p.out.WriteString(n.Value)

	case ast.ArrayLit:
		p.out.WriteString("[")
		p.exprCSV(n.Children)
		p.out.WriteString("]")

	case ast.ObjectLit:
		if len(n.Children) == 0 {
			p.out.WriteString("{}")
			return
		}
		p.out.WriteString("{")
		for i, c := range n.Children {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.objectEntry(c)
		}
		p.out.WriteString("}")

	case ast.Spread:
		p.out.WriteString("...")
		p.expr(n.Child(0))

	case ast.Function:
		p.out.WriteString("function")
		if n.Value != "" {
			p.out.WriteString(" ")
			p.out.WriteString(n.Value)
		}
		p.out.WriteString("(")
		p.params(n.Child(0))
		p.out.WriteString(") ")
		p.node(n.Child(1), 0)

	case ast.Call:
		p.expr(n.Child(0))
		p.out.WriteString("(")
		p.exprCSV(n.Children[1:])
		p.out.WriteString(")")

	case ast.New:
		p.out.WriteString("new ")
		p.expr(n.Child(0))
		p.out.WriteString("(")
		p.exprCSV(n.Children[1:])
		p.out.WriteString(")")

	case ast.GetProp:
		p.expr(n.Child(0))
		p.out.WriteString(".")
		p.out.WriteString(n.Value)

	case ast.GetElem:
		p.expr(n.Child(0))
		p.out.WriteString("[")
		p.expr(n.Child(1))
		p.out.WriteString("]")

	case ast.Assign:
		p.expr(n.Child(0))
		op := n.Value
		if op == "" {
			op = "="
		}
		p.out.WriteString(" ")
		p.out.WriteString(op)
		p.out.WriteString(" ")
		p.expr(n.Child(1))

	case ast.Unary:
		if isPostfixOp(n.Value) {
			p.expr(n.Child(0))
			p.out.WriteString(n.Value)
		} else {
			p.out.WriteString(n.Value)
			if isWordOp(n.Value) {
				p.out.WriteString(" ")
			}
			p.expr(n.Child(0))
		}

	case ast.Binary:
		p.expr(n.Child(0))
		p.out.WriteString(" ")
		p.out.WriteString(n.Value)
		p.out.WriteString(" ")
		p.expr(n.Child(1))

	case ast.Paren:
		p.out.WriteString("(")
		p.expr(n.Child(0))
		p.out.WriteString(")")

	case ast.Sequence:
		p.out.WriteString("(")
		for i, c := range n.Children {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.expr(c)
		}
		p.out.WriteString(")")

	case ast.Class:
		p.classExpr(n)

	default:
		p.out.WriteString(fmt.Sprintf("/* unprintable kind %d */", n.Kind))
	}
}

// isPostfixOp reports whether op renders after its operand ("x++"
// rather than "++x"). This printer doesn't distinguish prefix from
// postfix ++/-- at the node level (pkg/frontend collapses both into a
// single Unary), so it always renders them postfix; the distinction has
// no effect on any rewriter in this pass.
func isPostfixOp(op string) bool { return op == "++" || op == "--" }

func isWordOp(op string) bool {
	switch op {
	case "typeof", "void", "delete", "instanceof", "in":
		return true
	default:
		return false
	}
}

func (p *printer) exprCSV(nodes []*ast.Node) {
	for i, c := range nodes {
		if i > 0 {
			p.out.WriteString(", ")
		}
		p.expr(c)
	}
}

func (p *printer) params(paramList *ast.Node) {
	if paramList == nil {
		return
	}
	for i, c := range paramList.Children {
		if i > 0 {
			p.out.WriteString(", ")
		}
		if c.Kind == ast.Rest {
			p.out.WriteString("...")
			p.out.WriteString(c.Value)
		} else {
			p.out.WriteString(c.Value)
		}
	}
}

func (p *printer) objectEntry(c *ast.Node) {
	switch c.Kind {
	case ast.StringKey:
		p.propertyName(c.Value, c.Flags.Has(ast.FlagQuotedString))
		if len(c.Children) > 0 {
			p.out.WriteString(": ")
			p.expr(c.Child(0))
		}
	case ast.ComputedProp:
		p.out.WriteString("[")
		p.expr(c.Child(0))
		p.out.WriteString("]")
		if c.Flags.Has(ast.FlagComputedPropGetter) || c.Flags.Has(ast.FlagComputedPropSetter) {
			p.out.WriteString("(")
			fn := c.Child(1)
			p.params(fn.Child(0))
			p.out.WriteString(") ")
			p.node(fn.Child(1), 0)
		} else if c.Flags.Has(ast.FlagComputedPropVariable) {
			p.out.WriteString(": ")
			p.expr(c.Child(1))
		} else {
			fn := c.Child(1)
			p.out.WriteString("(")
			p.params(fn.Child(0))
			p.out.WriteString(") ")
			p.node(fn.Child(1), 0)
		}
	case ast.MemberFunctionDef:
		p.propertyName(c.Value, false)
		fn := c.Child(0)
		p.out.WriteString("(")
		p.params(fn.Child(0))
		p.out.WriteString(") ")
		p.node(fn.Child(1), 0)
	case ast.GetterDef, ast.SetterDef:
		if c.Kind == ast.GetterDef {
			p.out.WriteString("get ")
		} else {
			p.out.WriteString("set ")
		}
		p.propertyName(c.Value, false)
		fn := c.Child(0)
		p.out.WriteString("(")
		p.params(fn.Child(0))
		p.out.WriteString(") ")
		p.node(fn.Child(1), 0)
	}
}

func (p *printer) propertyName(name string, forceQuoted bool) {
	if forceQuoted {
		fmt.Fprintf(p.out, "%q", name)
		return
	}
	p.out.WriteString(name)
}

func (p *printer) classExpr(n *ast.Node) {
	p.out.WriteString("class")
	name := n.Child(0)
	if name != nil && !name.IsEmpty() {
		p.out.WriteString(" ")
		p.out.WriteString(name.Value)
	}
	super := n.Child(1)
	if super != nil && !super.IsEmpty() {
		p.out.WriteString(" extends ")
		p.expr(super)
	}
	p.out.WriteString(" {\n")
	members := n.Child(2)
	if members != nil {
		for _, m := range members.Children {
			p.classMember(m, 1)
		}
	}
	p.out.WriteString("}")
}

func (p *printer) classMember(m *ast.Node, depth int) {
	p.writeIndent(depth)
	if m.Flags.Has(ast.FlagStatic) {
		p.out.WriteString("static ")
	}
	switch m.Kind {
	case ast.MemberFunctionDef:
		p.propertyName(m.Value, false)
		fn := m.Child(0)
		p.out.WriteString("(")
		p.params(fn.Child(0))
		p.out.WriteString(") ")
		p.node(fn.Child(1), depth)
	case ast.GetterDef, ast.SetterDef:
		if m.Kind == ast.GetterDef {
			p.out.WriteString("get ")
		} else {
			p.out.WriteString("set ")
		}
		p.propertyName(m.Value, false)
		fn := m.Child(0)
		p.out.WriteString("(")
		p.params(fn.Child(0))
		p.out.WriteString(") ")
		p.node(fn.Child(1), depth)
	case ast.ComputedProp:
		p.out.WriteString("[")
		p.expr(m.Child(0))
		p.out.WriteString("]")
		fn := m.Child(1)
		p.out.WriteString("(")
		p.params(fn.Child(0))
		p.out.WriteString(") ")
		p.node(fn.Child(1), depth)
	}
	p.out.WriteString("\n")
}
