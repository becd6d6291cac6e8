// Package diag is the pass's diagnostic sink: it records structured
// errors and warnings keyed to AST nodes without ever aborting a
// traversal (spec.md §7). A rewriter that can't legally lower a node
// reports a diagnostic and leaves the node in place for a later pass or
// the output stage to treat as best-effort.
package diag

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/langtools/es6to5/pkg/ast"
)

// ID identifies a diagnostic kind. Values match spec.md §6's table
// exactly.
type ID string

// The six diagnostics spec.md §6 defines.
const (
	CannotConvert               ID = "CANNOT_CONVERT"
	CannotConvertYet            ID = "CANNOT_CONVERT_YET"
	DynamicExtendsType          ID = "DYNAMIC_EXTENDS_TYPE"
	ClassReassignment           ID = "CLASS_REASSIGNMENT"
	ConflictingGetterSetterType ID = "CONFLICTING_GETTER_SETTER_TYPE"
	BadRestParameterAnnotation  ID = "BAD_REST_PARAMETER_ANNOTATION"
)

// Severity classifies a diagnostic as blocking the rewrite of the node
// it's attached to (Error) or merely informational (Warning, per
// spec.md §7: "warnings... do not prevent rewriting").
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// formats holds the {0}-style message templates of spec.md §6, in the
// exact wording specified there.
var formats = map[ID]string{
	CannotConvert:               "This code cannot be converted from ES6. %s",
	CannotConvertYet:            "ES6 transpilation of '%s' is not yet implemented.",
	DynamicExtendsType:          "The class in an extends clause must be a qualified name.",
	ClassReassignment:           "Class names defined inside a function cannot be reassigned.",
	ConflictingGetterSetterType: "The types of the getter and setter for property '%s' do not match.",
	BadRestParameterAnnotation:  `Missing "..." in type annotation for rest parameter.`,
}

var severities = map[ID]Severity{
	CannotConvert:               Error,
	CannotConvertYet:            Error,
	DynamicExtendsType:          Error,
	ClassReassignment:           Error,
	ConflictingGetterSetterType: Error,
	BadRestParameterAnnotation:  Warning,
}

// Diagnostic is one reported finding, addressable back to the node that
// caused it.
type Diagnostic struct {
	ID       ID
	Severity Severity
	Message  string
	Node     *ast.Node
}

// Error implements error so a Diagnostic can be used wherever a plain
// error is expected (e.g. wrapped by Sink.Err via multierr).
func (d Diagnostic) Error() string {
	loc := ""
	if d.Node != nil && d.Node.Source.IsSet() {
		loc = fmt.Sprintf("%s:%d:%d: ", d.Node.Source.File, d.Node.Source.Line, d.Node.Source.Column)
	}
	return fmt.Sprintf("%s%s: %s", loc, d.ID, d.Message)
}

// Sink accumulates diagnostics reported during one Process/
// HotSwapScript call. It is safe for concurrent use, matching the
// mutex-guarded accumulator idiom used elsewhere in this repo's report
// package.
type Sink struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// New creates an empty Sink.
func New() *Sink { return &Sink{} }

// Report records a diagnostic of the given ID against node, formatting
// Message from args the way fmt.Sprintf would ({0} placeholders in
// spec.md §6 map onto %s verbs here, in argument order).
func (s *Sink) Report(id ID, node *ast.Node, args ...interface{}) Diagnostic {
	format, ok := formats[id]
	if !ok {
		format = string(id)
	}
	d := Diagnostic{
		ID:       id,
		Severity: severities[id],
		Message:  fmt.Sprintf(format, args...),
		Node:     node,
	}
	s.mu.Lock()
	s.diags = append(s.diags, d)
	s.mu.Unlock()
	return d
}

// Diagnostics returns a copy of every diagnostic reported so far, in
// report order.
func (s *Sink) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

// HasErrors reports whether any Error-severity diagnostic was reported.
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Err combines every Error-severity diagnostic reported so far into one
// error via go.uber.org/multierr, or returns nil if none were reported.
// Warnings never appear in Err's result (spec.md §7: they "do not
// prevent rewriting" and so must not fail a caller checking err != nil).
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	for _, d := range s.diags {
		if d.Severity == Error {
			err = multierr.Append(err, d)
		}
	}
	return err
}

// Reset clears all recorded diagnostics, for reuse across multiple
// HotSwapScript calls against the same Context.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.diags = nil
	s.mu.Unlock()
}
