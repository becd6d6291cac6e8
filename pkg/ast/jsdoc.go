package ast

import "strings"

// TypeExpr is a syntactic JSDoc type annotation. This pass never
// resolves or checks types (spec.md §1 Non-goals); it only needs to
// recognize a handful of syntactic shapes ("...T" rest markers, the "?"
// wildcard, "!Array<T>") well enough to read and synthesize them.
type TypeExpr struct {
	Raw string
}

// IsRest reports whether t has the "...T" rest-parameter shape.
func (t TypeExpr) IsRest() bool { return strings.HasPrefix(t.Raw, "...") }

// RestElement returns T for a "...T" type, or t unchanged otherwise.
func (t TypeExpr) RestElement() TypeExpr {
	if t.IsRest() {
		return TypeExpr{Raw: strings.TrimPrefix(t.Raw, "...")}
	}
	return t
}

// WildcardType is the JSDoc "unknown type" marker used for getters and
// setters whose element type can't otherwise be inferred (spec.md §4.2).
var WildcardType = TypeExpr{Raw: "?"}

// ArrayOf builds the "!Array<elem>" type used for a lowered rest
// parameter's declaration (spec.md §4.5 step 4).
func ArrayOf(elem TypeExpr) TypeExpr {
	return TypeExpr{Raw: "!Array<" + elem.Raw + ">"}
}

// Equal reports whether two type expressions are syntactically
// identical. This pass never normalizes types before comparing them
// (spec.md §1 Non-goals exclude type inference), so "number" and
// "Number" are considered different, matching a syntax-only pass.
func (t TypeExpr) Equal(other TypeExpr) bool { return t.Raw == other.Raw }

// JSDoc carries the subset of JSDoc metadata this pass reads or
// synthesizes: parameter types (keyed by parameter name, in declaration
// order via ParamNames), a return type, and the modifier bits spec.md §3 and
// §4.2 name.
type JSDoc struct {
	ParamNames  []string
	ParamTypes  map[string]TypeExpr
	ReturnType  *TypeExpr
	ThisType    string
	ExtendsType string
	Interfaces  []string // @implements / extended-interface qualified names.
	Suppress    []string

	IsConstructor  bool
	IsInterface    bool
	IsStruct       bool
	IsUnrestricted bool
	IsDict         bool
	IsExport       bool
}

// Clone returns a deep copy of d, or nil if d is nil.
func (d *JSDoc) Clone() *JSDoc {
	if d == nil {
		return nil
	}
	out := *d
	out.ParamNames = append([]string(nil), d.ParamNames...)
	out.Interfaces = append([]string(nil), d.Interfaces...)
	out.Suppress = append([]string(nil), d.Suppress...)
	if d.ParamTypes != nil {
		out.ParamTypes = make(map[string]TypeExpr, len(d.ParamTypes))
		for k, v := range d.ParamTypes {
			out.ParamTypes[k] = v
		}
	}
	if d.ReturnType != nil {
		rt := *d.ReturnType
		out.ReturnType = &rt
	}
	return &out
}

// ParamType returns the declared type of parameter name, and whether one
// was recorded.
func (d *JSDoc) ParamType(name string) (TypeExpr, bool) {
	if d == nil || d.ParamTypes == nil {
		return TypeExpr{}, false
	}
	t, ok := d.ParamTypes[name]
	return t, ok
}
