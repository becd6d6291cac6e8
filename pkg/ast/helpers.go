package ast

import "strings"

// AddChild appends child to n, wiring its Parent pointer. It is the only
// legal way to grow a node's child list once the node has been
// constructed by New (spec.md §3: "detach-then-attach is the only legal
// re-parenting protocol").
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Detach()
	n.Children = append(n.Children, child)
	child.Parent = n
}

// Detach removes n from its parent's child list and clears n.Parent,
// returning n so callers can chain it straight into a new location. It
// is a no-op on a node with no parent.
func (n *Node) Detach() *Node {
	if n == nil || n.Parent == nil {
		return n
	}
	p := n.Parent
	idx := p.IndexOf(n)
	if idx >= 0 {
		p.Children = append(p.Children[:idx], p.Children[idx+1:]...)
	}
	n.Parent = nil
	return n
}

// ReplaceWith swaps n for replacement in n's parent's child list,
// preserving position, and clears n's own parent pointer (n is now
// detached; replacement takes n's old slot). It is the single operation
// every rewriter in pkg/convert uses to install a lowered subtree.
func (n *Node) ReplaceWith(replacement *Node) {
	if n == nil || n.Parent == nil {
		return
	}
	p := n.Parent
	idx := p.IndexOf(n)
	if idx < 0 {
		return
	}
	replacement.Detach()
	p.Children[idx] = replacement
	replacement.Parent = p
	n.Parent = nil
}

// InsertStatementAfter inserts statement immediately after anchor in
// anchor's parent's child list (anchor's parent must be a statement
// list: Block or Program). It returns statement, so callers can chain
// repeated insertions with an advancing anchor, as §4.2's insertion
// point does while emitting one statement per class member.
func InsertStatementAfter(anchor, statement *Node) *Node {
	if anchor == nil || anchor.Parent == nil {
		return statement
	}
	p := anchor.Parent
	idx := p.IndexOf(anchor)
	if idx < 0 {
		return statement
	}
	statement.Detach()
	statement.Parent = p
	tail := append([]*Node{statement}, p.Children[idx+1:]...)
	p.Children = append(p.Children[:idx+1], tail...)
	return statement
}

// Clone returns a deep, freshly owned copy of n. Source info and JSDoc
// are copied verbatim (spec.md §3: "cloning produces a deep, freshly
// owned copy" that "retains its original's source info"); the clone has
// no parent until something attaches it.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:   n.Kind,
		Value:  n.Value,
		Flags:  n.Flags,
		Source: n.Source,
		JSDoc:  n.JSDoc.Clone(),
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := c.Clone()
			if cc != nil {
				cc.Parent = out
			}
			out.Children[i] = cc
		}
	}
	return out
}

// InsertStatementBefore inserts statement immediately before anchor in
// anchor's parent's child list (anchor's parent must be a statement
// list: Block or Program). Used by the spread rewriter to hoist a
// side-effecting call receiver into a temporary ahead of the statement
// that uses it (spec.md §4.4).
func InsertStatementBefore(anchor, statement *Node) *Node {
	if anchor == nil || anchor.Parent == nil {
		return statement
	}
	p := anchor.Parent
	idx := p.IndexOf(anchor)
	if idx < 0 {
		return statement
	}
	statement.Detach()
	statement.Parent = p
	newChildren := make([]*Node, 0, len(p.Children)+1)
	newChildren = append(newChildren, p.Children[:idx]...)
	newChildren = append(newChildren, statement)
	newChildren = append(newChildren, p.Children[idx:]...)
	p.Children = newChildren
	return statement
}

// NewQualifiedName builds a dotted identifier chain (a.b.c) as nested
// GetProp nodes over a base Identifier, the shape §4.2 needs for
// "ClassName.prototype.member" and similar synthesized property paths.
func NewQualifiedName(parts ...string) *Node {
	if len(parts) == 0 {
		return NewEmpty()
	}
	n := NewValue(Identifier, parts[0])
	for _, part := range parts[1:] {
		prop := New(GetProp, n)
		prop.Value = part
		n = prop
	}
	return n
}

// QualifiedName flattens a dotted identifier chain (Identifier, or
// GetProp nesting over one) back into a dotted string, and reports
// whether n actually has that shape. Anything else — a call, an element
// access, a computed member — is not a qualified name.
func QualifiedName(n *Node) (string, bool) {
	var parts []string
	for {
		switch n.Kind {
		case Identifier:
			parts = append([]string{n.Value}, parts...)
			return strings.Join(parts, "."), true
		case GetProp:
			if len(n.Children) != 1 {
				return "", false
			}
			parts = append([]string{n.Value}, parts...)
			n = n.Children[0]
		default:
			return "", false
		}
	}
}

// IsQualifiedName reports whether n is an Identifier or a chain of
// GetProp nodes over one.
func IsQualifiedName(n *Node) bool {
	_, ok := QualifiedName(n)
	return ok
}

// HasSideEffects is a conservative, syntax-only approximation of
// whether evaluating n could have an observable side effect, used by
// spec.md §4.4's "object expression has side effects" branch. Per this
// pass's Non-goals (no constant folding, no type inference), the rule
// is deliberately coarse: plain name and property-path reads are
// side-effect free; everything else (calls, element access, `new`,
// assignments) is assumed to have effects.
func HasSideEffects(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case Identifier, This, Number, String, Boolean, Null:
		return false
	case GetProp:
		return HasSideEffects(n.Child(0))
	default:
		return true
	}
}
