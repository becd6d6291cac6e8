package driver

import "github.com/langtools/es6to5/pkg/ast"

// Pass is the two-callback shape spec.md §4.1 describes: a pre-order
// gate deciding whether to descend into a node's children, and a
// post-order visit that runs after children have already been lowered.
// Implementations must be idempotent against their own output (spec.md
// §8) and single-shot per node: a rewriter either installs a fully
// lowered replacement or reports a diagnostic and leaves the node
// untouched, never both (spec.md §4.1).
type Pass interface {
	// ShouldTraverse is the pre-order gate. Returning false skips this
	// node's children entirely (and its own post-order Visit call).
	ShouldTraverse(ctx *Context, n *ast.Node) bool

	// Visit is the post-order callback, run after n's children (if
	// descended into) have already been visited.
	Visit(ctx *Context, n *ast.Node)
}
