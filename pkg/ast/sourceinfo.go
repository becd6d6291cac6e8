package ast

// SourceInfo is a node's source location. The zero value (Line == 0)
// means "no location yet" — the state every synthesized node starts in
// before FillSourceInfo or an explicit assignment gives it one.
type SourceInfo struct {
	File   string
	Line   int
	Column int
}

// IsSet reports whether si carries a real location.
func (si SourceInfo) IsSet() bool { return si.Line != 0 }

// FillSourceInfo performs the whole-subtree fill-in described in
// spec.md §3 and §4.8: it walks root and, for every descendant lacking a
// location, copies from in instead. Nodes that already carry a location
// (typically a cloned subtree, which keeps its original's source info
// per spec.md §3's cloning invariant) are left untouched.
func FillSourceInfo(root *Node, from SourceInfo) {
	if root == nil {
		return
	}
	if !root.Source.IsSet() {
		root.Source = from
	}
	for _, c := range root.Children {
		FillSourceInfo(c, from)
	}
}
