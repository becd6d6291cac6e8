// Package runtime names the fixed runtime contract spec.md §6 defines.
// Emitted code may reference exactly these two helper names; injecting
// an actual implementation of either is delegated to another part of
// the toolchain (spec.md §1's "runtime JavaScript injection... is
// delegated").
package runtime

const (
	// Inherits wires prototype inheritance: Inherits(Ctor, Super) must
	// leave Ctor.prototype set up so instances of Ctor are also
	// instanceof Super, and Ctor.prototype.constructor === Ctor.
	Inherits = "$jscomp.inherits"

	// MakeIterator adapts any iterable x to the iterator protocol:
	// MakeIterator(x) must return an object with a next() method that
	// returns { value, done } on every call, consistent with the for-of
	// lowering in spec.md §4.3.
	MakeIterator = "$jscomp.makeIterator"
)
