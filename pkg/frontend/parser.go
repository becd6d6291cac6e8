package frontend

import (
	"fmt"

	"github.com/langtools/es6to5/pkg/ast"
)

// Parser is a hand-rolled recursive-descent parser over a fully
// tokenized source file. Tokenizing upfront (rather than streaming from
// the Lexer) keeps lookahead trivial, the same tradeoff a small parser
// in this style typically makes.
type Parser struct {
	toks []Token
	pos  int
	file string
}

// Parse tokenizes and parses src, returning a Program node.
func Parse(file, src string) (*ast.Node, error) {
	lex := NewLexer(file, src)
	var toks []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	p := &Parser{toks: toks, file: file}
	var stmts []*ast.Node
	for !p.atEOF() {
		if p.peekIs(TokPunct, ";") {
			p.next()
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return ast.New(ast.Program, stmts...), nil
}

func (p *Parser) atEOF() bool { return p.toks[p.pos].Kind == TokEOF }

func (p *Parser) peek() Token { return p.toks[p.pos] }

func (p *Parser) peekAt(n int) Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) peekIs(kind TokenKind, text string) bool {
	t := p.peek()
	return t.Kind == kind && t.Text == text
}

func (p *Parser) next() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind TokenKind, text string) (Token, error) {
	t := p.peek()
	if t.Kind != kind || (text != "" && t.Text != text) {
		return t, fmt.Errorf("%s:%d:%d: expected %q, found %q", p.file, t.Line, t.Column, text, t.Text)
	}
	return p.next(), nil
}

func (p *Parser) loc(t Token) ast.SourceInfo {
	return ast.SourceInfo{File: p.file, Line: t.Line, Column: t.Column}
}

// statement parses one statement.
func (p *Parser) statement() (*ast.Node, error) {
	tok := p.peek()
	switch {
	case p.peekIs(TokPunct, "{"):
		return p.block()
	case p.peekIs(TokKeyword, "var"), p.peekIs(TokKeyword, "let"), p.peekIs(TokKeyword, "const"):
		return p.varDeclStatement()
	case p.peekIs(TokKeyword, "function"):
		return p.functionLiteral(true)
	case p.peekIs(TokKeyword, "class"):
		return p.classLiteral()
	case p.peekIs(TokKeyword, "if"):
		return p.ifStatement()
	case p.peekIs(TokKeyword, "for"):
		return p.forStatement()
	case p.peekIs(TokKeyword, "while"):
		return p.whileStatement()
	case p.peekIs(TokKeyword, "return"):
		return p.returnStatement()
	case tok.Kind == TokKeyword && (tok.Text == "import" || tok.Text == "export" || tok.Text == "yield"):
		return nil, fmt.Errorf("%s:%d:%d: %q is not supported by this front end", p.file, tok.Line, tok.Column, tok.Text)
	default:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.consumeSemi()
		n := ast.New(ast.ExprResult, expr)
		n.Source = p.loc(tok)
		return n, nil
	}
}

func (p *Parser) consumeSemi() {
	if p.peekIs(TokPunct, ";") {
		p.next()
	}
}

func (p *Parser) block() (*ast.Node, error) {
	open, err := p.expect(TokPunct, "{")
	if err != nil {
		return nil, err
	}
	var stmts []*ast.Node
	for !p.peekIs(TokPunct, "}") && !p.atEOF() {
		if p.peekIs(TokPunct, ";") {
			p.next()
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect(TokPunct, "}"); err != nil {
		return nil, err
	}
	n := ast.New(ast.Block, stmts...)
	n.Source = p.loc(open)
	return n, nil
}

func (p *Parser) identName() (string, error) {
	t := p.peek()
	if t.Kind != TokIdent && t.Kind != TokKeyword {
		return "", fmt.Errorf("%s:%d:%d: expected a name, found %q", p.file, t.Line, t.Column, t.Text)
	}
	p.next()
	return t.Text, nil
}

func (p *Parser) declaratorLHS() (*ast.Node, error) {
	if p.peekIs(TokPunct, "{") || p.peekIs(TokPunct, "[") {
		t := p.peek()
		return nil, fmt.Errorf("%s:%d:%d: destructuring patterns are not supported by this front end", p.file, t.Line, t.Column)
	}
	t := p.peek()
	name, err := p.identName()
	if err != nil {
		return nil, err
	}
	n := ast.NewValue(ast.Identifier, name)
	n.Source = p.loc(t)
	return n, nil
}

func (p *Parser) varDeclStatement() (*ast.Node, error) {
	kindTok := p.next()
	var decls []*ast.Node
	for {
		name, err := p.declaratorLHS()
		if err != nil {
			return nil, err
		}
		var d *ast.Node
		if p.peekIs(TokPunct, "=") {
			p.next()
			init, err := p.assign()
			if err != nil {
				return nil, err
			}
			d = ast.New(ast.Declarator, name, init)
		} else {
			d = ast.New(ast.Declarator, name)
		}
		decls = append(decls, d)
		if p.peekIs(TokPunct, ",") {
			p.next()
			continue
		}
		break
	}
	p.consumeSemi()
	n := ast.New(ast.VarDecl, decls...)
	n.Value = kindTok.Text
	n.Source = p.loc(kindTok)
	return n, nil
}

func (p *Parser) ifStatement() (*ast.Node, error) {
	tok := p.next()
	if _, err := p.expect(TokPunct, "("); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokPunct, ")"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	children := []*ast.Node{cond, then}
	if p.peekIs(TokKeyword, "else") {
		p.next()
		elseBranch, err := p.statement()
		if err != nil {
			return nil, err
		}
		children = append(children, elseBranch)
	}
	n := ast.New(ast.If, children...)
	n.Source = p.loc(tok)
	return n, nil
}

func (p *Parser) whileStatement() (*ast.Node, error) {
	tok := p.next()
	if _, err := p.expect(TokPunct, "("); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokPunct, ")"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.While, cond, body)
	n.Source = p.loc(tok)
	return n, nil
}

func (p *Parser) returnStatement() (*ast.Node, error) {
	tok := p.next()
	if p.peekIs(TokPunct, ";") || p.peekIs(TokPunct, "}") {
		p.consumeSemi()
		n := ast.New(ast.Return)
		n.Source = p.loc(tok)
		return n, nil
	}
	val, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.consumeSemi()
	n := ast.New(ast.Return, val)
	n.Source = p.loc(tok)
	return n, nil
}

// forStatement handles both the classic three-clause for and for-of,
// disambiguated by scanning ahead for the "of" keyword.
func (p *Parser) forStatement() (*ast.Node, error) {
	tok := p.next()
	if _, err := p.expect(TokPunct, "("); err != nil {
		return nil, err
	}

	var lhs *ast.Node
	var declKind string
	if p.peekIs(TokKeyword, "var") || p.peekIs(TokKeyword, "let") || p.peekIs(TokKeyword, "const") {
		declKind = p.next().Text
		name, err := p.declaratorLHS()
		if err != nil {
			return nil, err
		}
		lhs = name
	} else if !p.peekIs(TokPunct, ";") {
		expr, err := p.leftHandSide()
		if err != nil {
			return nil, err
		}
		lhs = expr
	}

	if p.peekIs(TokKeyword, "of") {
		p.next()
		iterable, err := p.assign()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokPunct, ")"); err != nil {
			return nil, err
		}
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		var lhsNode *ast.Node
		if declKind != "" {
			d := ast.New(ast.Declarator, lhs)
			vd := ast.New(ast.VarDecl, d)
			vd.Value = declKind
			lhsNode = vd
		} else {
			lhsNode = lhs
		}
		n := ast.New(ast.ForOf, lhsNode, iterable, body)
		n.Source = p.loc(tok)
		return n, nil
	}

	// Classic for: rebuild the init clause from what was already parsed
	// (a single declarator, or a bare expression), then allow additional
	// comma-separated declarators if this is a var/let/const init.
	var init *ast.Node
	switch {
	case declKind != "":
		var decls []*ast.Node
		if p.peekIs(TokPunct, "=") {
			p.next()
			v, err := p.assign()
			if err != nil {
				return nil, err
			}
			decls = append(decls, ast.New(ast.Declarator, lhs, v))
		} else {
			decls = append(decls, ast.New(ast.Declarator, lhs))
		}
		for p.peekIs(TokPunct, ",") {
			p.next()
			name, err := p.declaratorLHS()
			if err != nil {
				return nil, err
			}
			if p.peekIs(TokPunct, "=") {
				p.next()
				v, err := p.assign()
				if err != nil {
					return nil, err
				}
				decls = append(decls, ast.New(ast.Declarator, name, v))
			} else {
				decls = append(decls, ast.New(ast.Declarator, name))
			}
		}
		vd := ast.New(ast.VarDecl, decls...)
		vd.Value = declKind
		init = vd
	case lhs != nil:
		init = lhs
	default:
		init = ast.NewEmpty()
	}
	if _, err := p.expect(TokPunct, ";"); err != nil {
		return nil, err
	}

	var cond *ast.Node
	if p.peekIs(TokPunct, ";") {
		cond = ast.NewEmpty()
	} else {
		c, err := p.expression()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.expect(TokPunct, ";"); err != nil {
		return nil, err
	}

	var update *ast.Node
	if p.peekIs(TokPunct, ")") {
		update = ast.NewEmpty()
	} else {
		u, err := p.expression()
		if err != nil {
			return nil, err
		}
		update = u
	}
	if _, err := p.expect(TokPunct, ")"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.For, init, cond, update, body)
	n.Source = p.loc(tok)
	return n, nil
}

// functionLiteral parses "function name(params) { body }", used both as
// a statement (a bare Function node standing in for a declaration) and,
// via expression(), as an expression.
func (p *Parser) functionLiteral(asStatement bool) (*ast.Node, error) {
	tok := p.next() // "function"
	name := ""
	if p.peek().Kind == TokIdent {
		name = p.next().Text
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	fn := ast.New(ast.Function, params, body)
	fn.Value = name
	fn.Source = p.loc(tok)
	_ = asStatement
	return fn, nil
}

func (p *Parser) paramList() (*ast.Node, error) {
	open, err := p.expect(TokPunct, "(")
	if err != nil {
		return nil, err
	}
	var params []*ast.Node
	for !p.peekIs(TokPunct, ")") {
		if p.peekIs(TokPunct, "...") {
			t := p.next()
			name, err := p.identName()
			if err != nil {
				return nil, err
			}
			rest := ast.NewValue(ast.Rest, name)
			rest.Source = p.loc(t)
			params = append(params, rest)
		} else {
			t := p.peek()
			name, err := p.identName()
			if err != nil {
				return nil, err
			}
			n := ast.NewValue(ast.Identifier, name)
			n.Source = p.loc(t)
			params = append(params, n)
		}
		if p.peekIs(TokPunct, ",") {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokPunct, ")"); err != nil {
		return nil, err
	}
	n := ast.New(ast.ParamList, params...)
	n.Source = p.loc(open)
	return n, nil
}

// classLiteral parses "class Name? (extends Super)? { members }", used
// both as a statement and, via expression(), as an expression.
func (p *Parser) classLiteral() (*ast.Node, error) {
	tok := p.next() // "class"
	name := ast.NewEmpty()
	if p.peek().Kind == TokIdent {
		t := p.next()
		name = ast.NewValue(ast.Identifier, t.Text)
		name.Source = p.loc(t)
	}
	super := ast.NewEmpty()
	if p.peekIs(TokKeyword, "extends") {
		p.next()
		s, err := p.leftHandSide()
		if err != nil {
			return nil, err
		}
		super = s
	}
	members, err := p.classMembers()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.Class, name, super, members)
	n.Source = p.loc(tok)
	return n, nil
}

func (p *Parser) classMembers() (*ast.Node, error) {
	open, err := p.expect(TokPunct, "{")
	if err != nil {
		return nil, err
	}
	var members []*ast.Node
	for !p.peekIs(TokPunct, "}") && !p.atEOF() {
		if p.peekIs(TokPunct, ";") {
			p.next()
			continue
		}
		m, err := p.classMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if _, err := p.expect(TokPunct, "}"); err != nil {
		return nil, err
	}
	n := ast.New(ast.ClassMembers, members...)
	n.Source = p.loc(open)
	return n, nil
}

func (p *Parser) classMember() (*ast.Node, error) {
	var flags ast.Flags
	if p.peekIs(TokKeyword, "static") {
		p.next()
		flags |= ast.FlagStatic
	}

	if (p.peekIs(TokKeyword, "get") || p.peekIs(TokKeyword, "set")) && !p.peekAt(1).isPunct("(") {
		accessor := p.next().Text
		node, err := p.accessorMember(accessor, flags)
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	if p.peekIs(TokPunct, "[") {
		t := p.next()
		key, err := p.assign()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokPunct, "]"); err != nil {
			return nil, err
		}
		params, err := p.paramList()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		fn := ast.New(ast.Function, params, body)
		n := ast.New(ast.ComputedProp, key, fn)
		n.Flags = flags
		n.Source = p.loc(t)
		return n, nil
	}

	t := p.peek()
	name, err := p.identName()
	if err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	fn := ast.New(ast.Function, params, body)
	n := ast.New(ast.MemberFunctionDef, fn)
	n.Value = name
	n.Flags = flags
	n.Source = p.loc(t)
	return n, nil
}

func (p *Parser) accessorMember(accessor string, flags ast.Flags) (*ast.Node, error) {
	if p.peekIs(TokPunct, "[") {
		t := p.next()
		key, err := p.assign()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokPunct, "]"); err != nil {
			return nil, err
		}
		params, err := p.paramList()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		fn := ast.New(ast.Function, params, body)
		n := ast.New(ast.ComputedProp, key, fn)
		if accessor == "get" {
			n.Flags = flags | ast.FlagComputedPropGetter
		} else {
			n.Flags = flags | ast.FlagComputedPropSetter
		}
		n.Source = p.loc(t)
		return n, nil
	}
	t := p.peek()
	name, err := p.identName()
	if err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	fn := ast.New(ast.Function, params, body)
	kind := ast.GetterDef
	if accessor == "set" {
		kind = ast.SetterDef
	}
	n := ast.New(kind, fn)
	n.Value = name
	n.Flags = flags
	n.Source = p.loc(t)
	return n, nil
}

func (t Token) isPunct(text string) bool { return t.Kind == TokPunct && t.Text == text }

// --- Expressions ---

func (p *Parser) expression() (*ast.Node, error) {
	first, err := p.assign()
	if err != nil {
		return nil, err
	}
	if !p.peekIs(TokPunct, ",") {
		return first, nil
	}
	ops := []*ast.Node{first}
	for p.peekIs(TokPunct, ",") {
		p.next()
		next, err := p.assign()
		if err != nil {
			return nil, err
		}
		ops = append(ops, next)
	}
	return ast.New(ast.Sequence, ops...), nil
}

var assignOps = map[string]bool{"=": true, "+=": true, "-=": true, "*=": true, "/=": true}

func (p *Parser) assign() (*ast.Node, error) {
	left, err := p.binary(1)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokPunct && assignOps[p.peek().Text] {
		op := p.next().Text
		right, err := p.assign()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Assign, left, right)
		if op != "=" {
			n.Value = op
		}
		return n, nil
	}
	return left, nil
}

var binPrec = map[string]int{
	"||": 1, "&&": 2,
	"==": 3, "!=": 3, "===": 3, "!==": 3,
	"<": 4, ">": 4, "<=": 4, ">=": 4, "instanceof": 4, "in": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (p *Parser) binary(minPrec int) (*ast.Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		prec, ok := binPrec[t.Text]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()
		right, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Binary, left, right)
		n.Value = t.Text
		left = n
	}
}

var unaryOps = map[string]bool{"!": true, "-": true, "+": true, "typeof": true, "void": true, "delete": true, "++": true, "--": true}

func (p *Parser) unary() (*ast.Node, error) {
	t := p.peek()
	if (t.Kind == TokPunct || t.Kind == TokKeyword) && unaryOps[t.Text] {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Unary, operand)
		n.Value = t.Text
		return n, nil
	}
	return p.postfix()
}

func (p *Parser) postfix() (*ast.Node, error) {
	left, err := p.callMemberNew()
	if err != nil {
		return nil, err
	}
	if p.peekIs(TokPunct, "++") || p.peekIs(TokPunct, "--") {
		op := p.next().Text
		n := ast.New(ast.Unary, left)
		n.Value = op
		return n, nil
	}
	return left, nil
}

// leftHandSide parses a member/call/new expression chain without the
// postfix ++/-- or binary/assignment levels above it — the shape needed
// for an extends clause or a for-of/for loop's left-hand side.
func (p *Parser) leftHandSide() (*ast.Node, error) {
	return p.callMemberNew()
}

func (p *Parser) callMemberNew() (*ast.Node, error) {
	var base *ast.Node
	var err error
	if p.peekIs(TokKeyword, "new") {
		tok := p.next()
		callee, err := p.memberChainNoCall()
		if err != nil {
			return nil, err
		}
		var args []*ast.Node
		if p.peekIs(TokPunct, "(") {
			args, err = p.argList()
			if err != nil {
				return nil, err
			}
		}
		n := ast.New(ast.New, append([]*ast.Node{callee}, args...)...)
		n.Source = p.loc(tok)
		base = n
	} else {
		base, err = p.primary()
		if err != nil {
			return nil, err
		}
	}
	return p.memberCallTail(base)
}

// memberChainNoCall parses a primary plus "." and "[...]" accesses only,
// stopping before any "(" — used for a `new` expression's callee, so
// the call parens that follow bind to the `new`, not to an inner call.
func (p *Parser) memberChainNoCall() (*ast.Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peekIs(TokPunct, "."):
			p.next()
			name, err := p.identName()
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.GetProp, base)
			n.Value = name
			base = n
		case p.peekIs(TokPunct, "["):
			p.next()
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokPunct, "]"); err != nil {
				return nil, err
			}
			base = ast.New(ast.GetElem, base, idx)
		default:
			return base, nil
		}
	}
}

func (p *Parser) memberCallTail(base *ast.Node) (*ast.Node, error) {
	for {
		switch {
		case p.peekIs(TokPunct, "."):
			p.next()
			name, err := p.identName()
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.GetProp, base)
			n.Value = name
			base = n
		case p.peekIs(TokPunct, "["):
			p.next()
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokPunct, "]"); err != nil {
				return nil, err
			}
			base = ast.New(ast.GetElem, base, idx)
		case p.peekIs(TokPunct, "("):
			args, err := p.argList()
			if err != nil {
				return nil, err
			}
			base = ast.New(ast.Call, append([]*ast.Node{base}, args...)...)
		case p.peek().Kind == TokTemplate:
			t := p.next()
			n := ast.New(ast.TaggedTemplateLit, base)
			n.Value = t.Text
			n.Source = p.loc(t)
			base = n
		default:
			return base, nil
		}
	}
}

func (p *Parser) argList() ([]*ast.Node, error) {
	if _, err := p.expect(TokPunct, "("); err != nil {
		return nil, err
	}
	var args []*ast.Node
	for !p.peekIs(TokPunct, ")") {
		if p.peekIs(TokPunct, "...") {
			t := p.next()
			e, err := p.assign()
			if err != nil {
				return nil, err
			}
			s := ast.New(ast.Spread, e)
			s.Source = p.loc(t)
			args = append(args, s)
		} else {
			e, err := p.assign()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
		}
		if p.peekIs(TokPunct, ",") {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokPunct, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) primary() (*ast.Node, error) {
	t := p.peek()
	switch {
	case t.Kind == TokNumber:
		p.next()
		n := ast.NewValue(ast.Number, t.Text)
		n.Source = p.loc(t)
		return n, nil
	case t.Kind == TokString:
		p.next()
		n := ast.NewValue(ast.String, t.Text)
		n.Source = p.loc(t)
		return n, nil
	case t.Kind == TokTemplate:
		p.next()
		n := ast.NewValue(ast.TemplateLit, t.Text)
		n.Source = p.loc(t)
		return n, nil
	case p.peekIs(TokKeyword, "true"), p.peekIs(TokKeyword, "false"):
		p.next()
		n := ast.NewValue(ast.Boolean, t.Text)
		n.Source = p.loc(t)
		return n, nil
	case p.peekIs(TokKeyword, "null"):
		p.next()
		n := &ast.Node{Kind: ast.Null, Source: p.loc(t)}
		return n, nil
	case p.peekIs(TokKeyword, "this"):
		p.next()
		n := &ast.Node{Kind: ast.This, Source: p.loc(t)}
		return n, nil
	case p.peekIs(TokKeyword, "function"):
		return p.functionLiteral(false)
	case p.peekIs(TokKeyword, "class"):
		return p.classLiteral()
	case p.peekIs(TokPunct, "["):
		return p.arrayLiteral()
	case p.peekIs(TokPunct, "{"):
		return p.objectLiteral()
	case p.peekIs(TokPunct, "("):
		p.next()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokPunct, ")"); err != nil {
			return nil, err
		}
		n := ast.New(ast.Paren, e)
		n.Source = p.loc(t)
		return n, nil
	case t.Kind == TokIdent:
		p.next()
		n := ast.NewValue(ast.Identifier, t.Text)
		n.Source = p.loc(t)
		return n, nil
	default:
		return nil, fmt.Errorf("%s:%d:%d: unexpected token %q", p.file, t.Line, t.Column, t.Text)
	}
}

func (p *Parser) arrayLiteral() (*ast.Node, error) {
	open, _ := p.expect(TokPunct, "[")
	var elems []*ast.Node
	for !p.peekIs(TokPunct, "]") {
		if p.peekIs(TokPunct, "...") {
			t := p.next()
			e, err := p.assign()
			if err != nil {
				return nil, err
			}
			s := ast.New(ast.Spread, e)
			s.Source = p.loc(t)
			elems = append(elems, s)
		} else {
			e, err := p.assign()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if p.peekIs(TokPunct, ",") {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokPunct, "]"); err != nil {
		return nil, err
	}
	n := ast.New(ast.ArrayLit, elems...)
	n.Source = p.loc(open)
	return n, nil
}

func (p *Parser) objectLiteral() (*ast.Node, error) {
	open, _ := p.expect(TokPunct, "{")
	var entries []*ast.Node
	for !p.peekIs(TokPunct, "}") {
		e, err := p.objectEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		if p.peekIs(TokPunct, ",") {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokPunct, "}"); err != nil {
		return nil, err
	}
	n := ast.New(ast.ObjectLit, entries...)
	n.Source = p.loc(open)
	return n, nil
}

func (p *Parser) objectEntry() (*ast.Node, error) {
	if (p.peekIs(TokKeyword, "get") || p.peekIs(TokKeyword, "set")) &&
		!p.peekAt(1).isPunct(":") && !p.peekAt(1).isPunct(",") && !p.peekAt(1).isPunct("}") && !p.peekAt(1).isPunct("(") {
		return p.accessorMember(p.next().Text, 0)
	}

	if p.peekIs(TokPunct, "[") {
		t := p.next()
		key, err := p.assign()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokPunct, "]"); err != nil {
			return nil, err
		}
		if p.peekIs(TokPunct, "(") {
			params, err := p.paramList()
			if err != nil {
				return nil, err
			}
			body, err := p.block()
			if err != nil {
				return nil, err
			}
			fn := ast.New(ast.Function, params, body)
			n := ast.New(ast.ComputedProp, key, fn)
			n.Source = p.loc(t)
			return n, nil
		}
		if _, err := p.expect(TokPunct, ":"); err != nil {
			return nil, err
		}
		value, err := p.assign()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.ComputedProp, key, value)
		n.Flags = ast.FlagComputedPropVariable
		n.Source = p.loc(t)
		return n, nil
	}

	t := p.peek()
	var name string
	var err error
	if t.Kind == TokString {
		p.next()
		name = t.Text
	} else {
		name, err = p.identName()
		if err != nil {
			return nil, err
		}
	}

	if p.peekIs(TokPunct, "(") {
		params, err := p.paramList()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		fn := ast.New(ast.Function, params, body)
		n := ast.New(ast.MemberFunctionDef, fn)
		n.Value = name
		n.Source = p.loc(t)
		return n, nil
	}

	if p.peekIs(TokPunct, ":") {
		p.next()
		value, err := p.assign()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.StringKey, value)
		n.Value = name
		if t.Kind == TokString {
			n.Flags = ast.FlagQuotedString
		}
		n.Source = p.loc(t)
		return n, nil
	}

	n := ast.New(ast.StringKey)
	n.Value = name
	n.Source = p.loc(t)
	return n, nil
}
