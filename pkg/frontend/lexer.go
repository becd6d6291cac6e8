// Package frontend is a minimal recursive-descent reader for the ES6
// subset this pass understands: enough of the grammar to drive
// pkg/convert's six rewriters and nothing past that (spec.md §1's
// "parsing... is out of scope" is honored by keeping this package
// deliberately thin — it exists only so the module has a runnable
// end-to-end path, the way a real transpiler's CLI does).
//
// Arrow functions, destructuring patterns, modules (import/export), and
// generators are recognized just well enough to produce a clear parse
// error; this pass's Non-goals exclude lowering them, and a silent
// partial parse would be worse than a loud rejection.
package frontend

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenKind identifies a lexical token.
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokIdent
	TokKeyword
	TokNumber
	TokString
	TokTemplate
	TokPunct
)

// Token is one lexed unit, with its 1-based source position.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

var keywords = map[string]bool{
	"var": true, "let": true, "const": true, "function": true, "return": true,
	"if": true, "else": true, "for": true, "while": true, "of": true, "in": true,
	"class": true, "extends": true, "constructor": true, "static": true,
	"get": true, "set": true, "new": true, "this": true, "null": true,
	"true": true, "false": true, "typeof": true, "instanceof": true, "void": true,
	"delete": true, "break": true, "continue": true, "throw": true, "try": true,
	"catch": true, "finally": true, "switch": true, "case": true, "default": true,
	"do": true, "yield": true, "import": true, "export": true,
}

// Lexer turns source text into a stream of Tokens, grounded on the
// byte-offset-cursor idiom common to small hand-rolled scanners in the
// example pack (a plain index into the source string, advanced one byte
// at a time, with an explicit peek for lookahead).
type Lexer struct {
	src    string
	pos    int
	line   int
	column int
	file   string
}

// NewLexer creates a Lexer over src, reporting positions against file.
func NewLexer(file, src string) *Lexer {
	return &Lexer{src: src, line: 1, column: 1, file: file}
}

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b
}

func (l *Lexer) skipTrivia() {
	for l.pos < len(l.src) {
		switch {
		case isSpace(l.peekByte()):
			l.advance()
		case l.peekByte() == '/' && l.peekByteAt(1) == '/':
			for l.pos < len(l.src) && l.peekByte() != '\n' {
				l.advance()
			}
		case l.peekByte() == '/' && l.peekByteAt(1) == '*':
			l.advance()
			l.advance()
			for l.pos < len(l.src) && !(l.peekByte() == '*' && l.peekByteAt(1) == '/') {
				l.advance()
			}
			if l.pos < len(l.src) {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= utf8.RuneSelf
}

func isIdentPart(b byte) bool { return isIdentStart(b) || isDigit(b) }

// Next returns the next token in the stream.
func (l *Lexer) Next() (Token, error) {
	l.skipTrivia()
	startLine, startCol := l.line, l.column
	if l.pos >= len(l.src) {
		return Token{Kind: TokEOF, Line: startLine, Column: startCol}, nil
	}

	b := l.peekByte()
	switch {
	case isIdentStart(b):
		start := l.pos
		for l.pos < len(l.src) && isIdentPart(l.peekByte()) {
			l.advance()
		}
		text := l.src[start:l.pos]
		kind := TokIdent
		if keywords[text] {
			kind = TokKeyword
		}
		return Token{Kind: kind, Text: text, Line: startLine, Column: startCol}, nil

	case isDigit(b):
		start := l.pos
		for l.pos < len(l.src) && (isDigit(l.peekByte()) || l.peekByte() == '.') {
			l.advance()
		}
		return Token{Kind: TokNumber, Text: l.src[start:l.pos], Line: startLine, Column: startCol}, nil

	case b == '"' || b == '\'':
		return l.lexString(b, startLine, startCol)

	case b == '`':
		return l.lexTemplate(startLine, startCol)

	default:
		return l.lexPunct(startLine, startCol)
	}
}

func (l *Lexer) lexString(quote byte, line, col int) (Token, error) {
	l.advance()
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{}, fmt.Errorf("%s:%d:%d: unterminated string literal", l.file, line, col)
		}
		c := l.peekByte()
		if c == quote {
			l.advance()
			break
		}
		if c == '\\' {
			l.advance()
			sb.WriteByte(l.advance())
			continue
		}
		sb.WriteByte(l.advance())
	}
	return Token{Kind: TokString, Text: sb.String(), Line: line, Column: col}, nil
}

// lexTemplate consumes an entire template literal (backtick to
// backtick, including any ${...} substitutions) as one opaque token;
// template literals are a delegated, pass-through construct (spec.md §1
// Non-goals), so this pass never needs their internal structure.
func (l *Lexer) lexTemplate(line, col int) (Token, error) {
	start := l.pos
	l.advance()
	depth := 0
	for {
		if l.pos >= len(l.src) {
			return Token{}, fmt.Errorf("%s:%d:%d: unterminated template literal", l.file, line, col)
		}
		c := l.peekByte()
		if c == '\\' {
			l.advance()
			l.advance()
			continue
		}
		if c == '`' && depth == 0 {
			l.advance()
			break
		}
		if c == '$' && l.peekByteAt(1) == '{' {
			depth++
			l.advance()
			l.advance()
			continue
		}
		if c == '}' && depth > 0 {
			depth--
			l.advance()
			continue
		}
		l.advance()
	}
	return Token{Kind: TokTemplate, Text: l.src[start:l.pos], Line: line, Column: col}, nil
}

var multiCharPuncts = []string{
	"...", "=>", "===", "!==", "==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=",
}

func (l *Lexer) lexPunct(line, col int) (Token, error) {
	for _, p := range multiCharPuncts {
		if strings.HasPrefix(l.src[l.pos:], p) {
			for range p {
				l.advance()
			}
			return Token{Kind: TokPunct, Text: p, Line: line, Column: col}, nil
		}
	}
	b := l.advance()
	return Token{Kind: TokPunct, Text: string(b), Line: line, Column: col}, nil
}
