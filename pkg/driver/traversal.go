package driver

import "github.com/langtools/es6to5/pkg/ast"

// Traverse walks root in document order, calling pass.ShouldTraverse
// before descending into a node's children and pass.Visit after they
// return (spec.md §2: "the host traversal visits nodes in document
// order... on post-order, most rewriters run after children have
// already been lowered").
//
// A node's children are read after its ShouldTraverse call returns, so
// a child the gate replaces (the rest-parameter rewrite does this in
// ShouldTraverse, per spec.md §4.1) is descended into in its new form.
// They are then snapshotted before descending, so a child's own Visit
// that replaces it or inserts siblings doesn't disturb this node's
// iteration, and nodes installed that way are not visited in the same
// walk.
func Traverse(ctx *Context, root *ast.Node, pass Pass) {
	if root == nil {
		return
	}
	if !pass.ShouldTraverse(ctx, root) {
		return
	}
	children := make([]*ast.Node, len(root.Children))
	copy(children, root.Children)
	for _, c := range children {
		Traverse(ctx, c, pass)
	}
	pass.Visit(ctx, root)
}
