// Package names mints the temporary identifiers the rewriters in
// pkg/convert synthesize (loop iterators, rest-parameter arrays, spread
// temporaries, hoisted computed-property objects). Iterator, spread and
// computed-property names come off a single monotonically increasing
// counter shared across the whole pass, so those temporaries never
// collide (spec.md §8's uniqueness invariant) even when, say, a for-of
// loop and a spread call are lowered inside the same function body.
// The for-of key name is derived from the loop variable's name, and the
// two rest-parameter names are fixed constants.
package names

import (
	"strconv"
	"sync/atomic"
)

// The reserved prefixes spec.md §6 requires implementations not to
// collide with.
const (
	IterPrefix       = "$jscomp$iter$"
	KeyPrefix        = "$jscomp$key$"
	RestParamsName   = "$jscomp$restParams"
	RestIndexName    = "$jscomp$restIndex"
	SpreadArgsPrefix = "$jscomp$spread$args$"
	CompPropPrefix   = "$jscomp$compprop$"
)

// Minter hands out unique, monotonically increasing integers. The zero
// value is ready to use.
type Minter struct {
	counter int64
}

// New returns a fresh Minter starting at 0.
func New() *Minter { return &Minter{} }

// Next returns the next unique integer. It is safe to call from
// multiple goroutines, though this pass itself is single-threaded
// (spec.md §5).
func (m *Minter) Next() int64 {
	return atomic.AddInt64(&m.counter, 1) - 1
}

// Iter mints a fresh "$jscomp$iter$N" name for a for-of loop's iterator
// temporary (spec.md §4.3).
func (m *Minter) Iter() string {
	return withSuffix(IterPrefix, m.Next())
}

// Key mints a "$jscomp$key$<var>" name for a for-of loop's result-record
// temporary, keyed by the loop variable's own name so distinct loops
// over the same iterable variable still read clearly (spec.md §4.3).
func (m *Minter) Key(varName string) string {
	return KeyPrefix + varName
}

// SpreadArgs mints a fresh "$jscomp$spread$args$N" name for a hoisted
// call-receiver temporary (spec.md §4.4).
func (m *Minter) SpreadArgs() string {
	return withSuffix(SpreadArgsPrefix, m.Next())
}

// CompProp mints a fresh "$jscomp$compprop$N" name for a hoisted
// object-literal temporary (spec.md §4.6).
func (m *Minter) CompProp() string {
	return withSuffix(CompPropPrefix, m.Next())
}

func withSuffix(prefix string, n int64) string {
	return prefix + strconv.FormatInt(n, 10)
}
