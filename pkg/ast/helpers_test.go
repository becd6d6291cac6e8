package ast

import "testing"

func TestAddChildDetach(t *testing.T) {
	parent := New(ArrayLit)
	a := NewValue(Number, "1")
	b := NewValue(Number, "2")
	parent.AddChild(a)
	parent.AddChild(b)

	if len(parent.Children) != 2 || a.Parent != parent || b.Parent != parent {
		t.Fatalf("AddChild did not wire children/parent correctly")
	}

	a.Detach()
	if a.Parent != nil {
		t.Errorf("Detach left a.Parent = %v, want nil", a.Parent)
	}
	if len(parent.Children) != 1 || parent.Children[0] != b {
		t.Errorf("Detach left parent.Children = %v, want [b]", parent.Children)
	}
}

func TestAddChildReparentsExistingChild(t *testing.T) {
	p1 := New(ArrayLit)
	p2 := New(ArrayLit)
	c := NewValue(Number, "1")
	p1.AddChild(c)
	p2.AddChild(c)

	if len(p1.Children) != 0 {
		t.Errorf("moving c to p2 left it behind in p1.Children: %v", p1.Children)
	}
	if c.Parent != p2 {
		t.Errorf("c.Parent = %v, want p2", c.Parent)
	}
}

func TestReplaceWith(t *testing.T) {
	parent := New(ArrayLit, NewValue(Number, "1"), NewValue(Number, "2"), NewValue(Number, "3"))
	mid := parent.Child(1)
	repl := NewValue(Number, "99")

	mid.ReplaceWith(repl)

	if mid.Parent != nil {
		t.Errorf("replaced node still has a parent: %v", mid.Parent)
	}
	if parent.Child(1) != repl || repl.Parent != parent {
		t.Fatalf("ReplaceWith did not install replacement at the same index")
	}
	if len(parent.Children) != 3 {
		t.Errorf("ReplaceWith changed child count: %d", len(parent.Children))
	}
}

func TestInsertStatementAfterAndBefore(t *testing.T) {
	block := New(Block, NewValue(Identifier, "a"), NewValue(Identifier, "c"))
	anchor := block.Child(0)

	InsertStatementAfter(anchor, NewValue(Identifier, "b"))
	got := stmtValues(block)
	want := []string{"a", "b", "c"}
	if !equalStrings(got, want) {
		t.Fatalf("after InsertStatementAfter: got %v, want %v", got, want)
	}

	InsertStatementBefore(anchor, NewValue(Identifier, "z"))
	got = stmtValues(block)
	want = []string{"z", "a", "b", "c"}
	if !equalStrings(got, want) {
		t.Fatalf("after InsertStatementBefore: got %v, want %v", got, want)
	}
}

func stmtValues(block *Node) []string {
	out := make([]string, len(block.Children))
	for i, c := range block.Children {
		out[i] = c.Value
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := New(ArrayLit, NewValue(Number, "1"))
	orig.Source = SourceInfo{File: "a.js", Line: 1, Column: 1}
	orig.JSDoc = &JSDoc{IsStruct: true}

	clone := orig.Clone()
	if clone == orig {
		t.Fatal("Clone returned the same pointer")
	}
	if clone.Parent != nil {
		t.Errorf("clone.Parent = %v, want nil", clone.Parent)
	}
	if clone.Source != orig.Source {
		t.Errorf("clone did not retain Source: %v", clone.Source)
	}
	if clone.Children[0] == orig.Children[0] {
		t.Error("Clone shared a child pointer with the original")
	}

	clone.Children[0].Value = "2"
	if orig.Children[0].Value != "1" {
		t.Error("mutating the clone's child mutated the original")
	}
}

func TestNewQualifiedNameAndQualifiedName(t *testing.T) {
	n := NewQualifiedName("a", "b", "c")
	got, ok := QualifiedName(n)
	if !ok || got != "a.b.c" {
		t.Fatalf("QualifiedName() = (%q, %v), want (\"a.b.c\", true)", got, ok)
	}
	if !IsQualifiedName(n) {
		t.Error("IsQualifiedName() = false for a qualified chain")
	}

	call := New(Call, n)
	if IsQualifiedName(call) {
		t.Error("IsQualifiedName() = true for a Call node")
	}
}

func TestHasSideEffects(t *testing.T) {
	cases := []struct {
		name string
		n    *Node
		want bool
	}{
		{"identifier", NewValue(Identifier, "x"), false},
		{"number", NewValue(Number, "1"), false},
		{"qualified-name", NewQualifiedName("a", "b"), false},
		{"call", New(Call, NewValue(Identifier, "f")), true},
		{"new", New(New, NewValue(Identifier, "C")), true},
		{"get-elem", New(GetElem, NewValue(Identifier, "a"), NewValue(Number, "0")), true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSideEffects(tt.n); got != tt.want {
				t.Errorf("HasSideEffects(%v) = %v, want %v", tt.n.Kind, got, tt.want)
			}
		})
	}
}
