// Package driver provides the pass's external collaborators: the
// two-phase (pre-order gate, post-order visit) traversal of spec.md
// §4.1, and the Context spec.md §5/§6 describes as "a single owned
// structure with an init/teardown scope equal to the compilation run,
// passed to the pass as a parameter rather than accessed through
// ambient globals."
package driver

import (
	"fmt"

	"github.com/langtools/es6to5/pkg/diag"
	"github.com/langtools/es6to5/pkg/names"
)

// LanguageOut is the target dialect, spec.md §6's "option query for
// languageOut".
type LanguageOut int

const (
	// ES5 is the default target; getters and setters are legal.
	ES5 LanguageOut = iota
	// ES3 additionally rejects getter/setter definitions (spec.md §4.1's
	// pre-order gate diagnostic "ES5 getters/setters").
	ES3
)

func (l LanguageOut) String() string {
	if l == ES3 {
		return "ES3"
	}
	return "ES5"
}

// Context is the compiler-context the pass is handed: a unique-id
// supplier, a diagnostic reporter, the languageOut option, and the
// needsRuntime flag, plus the per-run CodeChanged accumulator spec.md
// §3's Lifecycle section describes ("a boolean reported to the host
// after each local rewrite; the host accumulates it").
type Context struct {
	Minter      *names.Minter
	Diagnostics *diag.Sink
	LanguageOut LanguageOut

	needsRuntime bool
	codeChanged  bool
	stats        Stats
}

// Stats tallies how many sites each rewriter touched during a run, the
// source for pkg/report's per-kind counters. It is plain data, copied
// out of a Context rather than referenced live, so a caller can snapshot
// it once per file without worrying about later runs mutating it.
type Stats struct {
	ClassesLowered       int
	ForOfLowered         int
	RestParamsLowered    int
	SpreadSitesLowered   int
	ComputedPropsLowered int
	ShorthandsLowered    int
}

// NewContext creates a Context targeting the given dialect, with a
// fresh name minter and diagnostic sink.
func NewContext(out LanguageOut) *Context {
	return &Context{
		Minter:      names.New(),
		Diagnostics: diag.New(),
		LanguageOut: out,
	}
}

// RequireRuntime sets the needsRuntime flag. Any rewrite that emits a
// reference to the $jscomp.inherits or $jscomp.makeIterator helpers
// (pkg/runtime) must call this (spec.md §6).
func (c *Context) RequireRuntime() { c.needsRuntime = true }

// NeedsRuntime reports whether any rewrite in this run required the
// fixed runtime helpers.
func (c *Context) NeedsRuntime() bool { return c.needsRuntime }

// ReportCodeChange marks that a local rewrite mutated the tree. Every
// rewriter in pkg/convert calls this exactly once per successful
// rewrite; it is never called when a rewriter abandons with a
// diagnostic instead (spec.md §4.1: "either install a fully lowered
// replacement or emit a diagnostic and leave the node in place").
func (c *Context) ReportCodeChange() { c.codeChanged = true }

// CodeChanged reports whether any rewrite ran during the current
// Process/HotSwapScript call. ResetCodeChanged should be called before
// re-running a pass over the same tree to test idempotency (spec.md
// §8: "re-running the pass on its own output is a no-op").
func (c *Context) CodeChanged() bool { return c.codeChanged }

// ResetCodeChanged clears the CodeChanged accumulator without resetting
// the name minter, the diagnostic sink, or the needsRuntime flag — the
// minter's uniqueness guarantee and a run's diagnostics/needsRuntime
// status span the whole compilation, while CodeChanged is meaningful
// per traversal.
func (c *Context) ResetCodeChanged() { c.codeChanged = false }

// Stats returns a copy of the per-kind rewrite counters accumulated so
// far this run.
func (c *Context) Stats() Stats { return c.stats }

func (c *Context) IncClassesLowered()       { c.stats.ClassesLowered++ }
func (c *Context) IncForOfLowered()         { c.stats.ForOfLowered++ }
func (c *Context) IncRestParamsLowered()    { c.stats.RestParamsLowered++ }
func (c *Context) IncSpreadSitesLowered()   { c.stats.SpreadSitesLowered++ }
func (c *Context) IncComputedPropsLowered() { c.stats.ComputedPropsLowered++ }
func (c *Context) IncShorthandsLowered()    { c.stats.ShorthandsLowered++ }

// Assertf panics with a formatted message. Internal invariant
// violations (spec.md §7: "constructor != null after class processing,
// insertion point is a statement") indicate a bug in an upstream pass
// and are not recoverable at this layer, so pkg/convert calls this
// instead of reporting a diagnostic.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
