// Package ast defines the tagged-variant AST node type this pass rewrites.
//
// A Node is a closed sum type: a Kind tag, an ordered list of children, a
// string payload for names and literal text, a small flag bitset, a source
// location, and an optional JSDoc annotation. There is no per-kind Go type;
// callers switch exhaustively on Kind and use the typed child accessors in
// node.go rather than a class hierarchy, per the node library's design
// notes.
package ast

// Kind identifies the syntactic role of a Node.
type Kind int

const (
	// Unknown is the zero value; a Node should never keep this Kind past
	// construction.
	Unknown Kind = iota

	// Literals and names.
	Identifier // Value: the name.
	Number     // Value: literal text, e.g. "42" or "3.5".
	String     // Value: the unescaped string value.
	Boolean    // Value: "true" or "false".
	Null
	This

	// Composite expressions.
	ArrayLit   // Children: elements (may include Spread).
	ObjectLit  // Children: StringKey / ComputedProp / MemberFunctionDef / GetterDef / SetterDef nodes.
	StringKey  // Value: key name. Children: [value] (shorthand has none yet).
	ComputedProp // Children: [key, value|function]. See Flags for getter/setter/variable.
	Function   // Value: name (may be ""). Children: [paramList, body]. Flags: VarArgs on rest param use.
	ParamList  // Children: parameter Identifier/Rest nodes.
	Rest       // Value: parameter name. Used only as the last ParamList child.
	Spread     // Children: [expression]. Used inside ArrayLit/Call/New argument lists.
	Call       // Children: [callee, arg0, arg1, ...].
	New        // Children: [callee, arg0, arg1, ...].
	GetProp    // Children: [object]. Value: property name (a.b).
	GetElem    // Children: [object, index]. (a[b])
	Assign     // Children: [target, value]. Value: operator, "" means plain "=".
	Unary      // Children: [operand]. Value: operator.
	Binary     // Children: [left, right]. Value: operator.
	Paren      // Children: [expression]. Preserved so printing can omit/emit parens faithfully.
	Sequence   // Children: operands, evaluated left-to-right; the expression's value is the last one's.
	TemplateLit       // Delegated to another pass; carried through unlowered.
	TaggedTemplateLit // Delegated to another pass; carried through unlowered.

	// Class constructs (§4.2).
	Class             // Children: [name, superClass, membersBlock]. name/superClass may be Empty.
	ClassMembers      // Children: MemberFunctionDef / GetterDef / SetterDef / ComputedProp / Empty.
	MemberFunctionDef // Value: member name (""  when Flags.ComputedPropVariable via computed form). Children: [function].
	GetterDef         // Value: member name. Children: [function].
	SetterDef         // Value: member name. Children: [function].
	Empty             // Placeholder: an absent optional child (no name, no superclass, ...).

	// Statements.
	Program
	Block
	ExprResult // Children: [expression]. An expression used as a statement.
	VarDecl    // Value: "var", "let", or "const". Children: Declarator nodes.
	Declarator // Children: [name, initializer?]. initializer omitted (len==1) when absent.
	If         // Children: [cond, thenBranch, elseBranch?].
	While      // Children: [cond, body].
	For        // Children: [init, cond, update, body]; any of init/cond/update may be Empty.
	ForOf      // Children: [lhs, iterable, body]. lhs is a VarDecl or a bare Identifier.
	Return     // Children: [value]? (len 0 means bare return).
)

// Flags is a bitset of boolean node attributes.
type Flags uint16

const (
	// FlagStatic marks a MemberFunctionDef/GetterDef/SetterDef/ComputedProp
	// as a static (class-side) member rather than an instance member.
	FlagStatic Flags = 1 << iota
	// FlagComputedPropGetter marks a ComputedProp as a computed getter.
	FlagComputedPropGetter
	// FlagComputedPropSetter marks a ComputedProp as a computed setter.
	FlagComputedPropSetter
	// FlagComputedPropVariable marks a ComputedProp in an object literal as
	// a plain `[expr]: value` entry, as opposed to a computed method
	// (`[expr]() {}`, where the value child is a Function).
	FlagComputedPropVariable
	// FlagQuotedString marks a StringKey whose source text used quotes
	// (`{"a-b": 1}`), which must stay in bracket form rather than becoming
	// dot-access when lowered.
	FlagQuotedString
	// FlagVarArgs marks an Identifier in a ParamList that was a Rest node
	// before rest-parameter lowering mutated it in place (§4.5 step 1).
	FlagVarArgs
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }
