package ast

// Node is the sole data structure this pass manipulates. Every non-root
// node has exactly one parent at a time; Parent is an explicit,
// non-owning back-pointer maintained only by New (below) and the helpers
// in helpers.go (AddChild, Detach, ReplaceWith, InsertStatementAfter). Mutating
// Children directly without going through those helpers will desync
// Parent and is a bug.
type Node struct {
	Kind     Kind
	Children []*Node
	Value    string
	Flags    Flags
	Source   SourceInfo
	JSDoc    *JSDoc

	Parent *Node
}

// New builds a Node of the given kind with the given children, wiring
// each child's Parent back-pointer. It does not assign a SourceInfo;
// callers that synthesize nodes during a rewrite should call
// FillSourceInfo on the finished subtree before it is attached to the
// tree (spec.md §3: "every synthesized node must receive a location
// before being inserted").
func New(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind, Children: children}
	for _, c := range children {
		if c != nil {
			c.Parent = n
		}
	}
	return n
}

// NewValue builds a leaf node carrying a string payload (an identifier,
// a literal's text, an operator).
func NewValue(kind Kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// NewEmpty builds an Empty placeholder node, used where the grammar
// allows an optional child to be syntactically absent (no superclass, no
// class name, a bare "return;").
func NewEmpty() *Node { return &Node{Kind: Empty} }

// IsEmpty reports whether n is nil or an Empty placeholder.
func (n *Node) IsEmpty() bool { return n == nil || n.Kind == Empty }

// Child returns the i'th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// First returns the first child, or nil.
func (n *Node) First() *Node { return n.Child(0) }

// Last returns the last child, or nil.
func (n *Node) Last() *Node { return n.Child(len(n.Children) - 1) }

// IndexOf returns the index of child within n.Children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}
