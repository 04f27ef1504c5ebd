// Package parser implements the TinyC parser: pure LL(1) recursive
// descent over a single token of lookahead, no backtracking. Every
// production consumes tokens and returns an AST subtree; the first
// unexpected token aborts the whole parse with a ParserError.
package parser

import (
	"github.com/tinycc/frontend/internal/ast"
	"github.com/tinycc/frontend/internal/lexer"
)

// Parser holds the single token of lookahead (cur) the grammar needs;
// anything beyond that borrows the lexer's own one-token Peek.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token

	dead error // set once a ParserError or LexerError has been raised
}

// New constructs a Parser over lex and primes the first lookahead
// token. Returns an error immediately if the very first token fails
// to lex.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	tok, err := lex.Next()
	if err != nil {
		p.dead = err
		return p, err
	}
	p.cur = tok
	return p, nil
}

func (p *Parser) fail(msg string) error {
	return p.failCode(ErrUnexpectedToken, msg)
}

func (p *Parser) failCode(code, msg string) error {
	err := &ParserError{Code: code, Message: msg, Pos: p.cur.Pos}
	p.dead = err
	return err
}

// advance consumes the current token and loads the next one.
func (p *Parser) advance() error {
	if p.dead != nil {
		return p.dead
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.dead = err
		return err
	}
	p.cur = tok
	return nil
}

// peekNext returns the token after cur without consuming cur.
func (p *Parser) peekNext() (lexer.Token, error) {
	return p.lex.Peek()
}

// expect checks cur is of type tt, consumes it, and returns it;
// otherwise raises a ParserError naming what was expected.
func (p *Parser) expect(tt lexer.TokenType, what string) (lexer.Token, error) {
	if p.dead != nil {
		return lexer.Token{}, p.dead
	}
	if p.cur.Type != tt {
		return lexer.Token{}, p.fail("expected " + what + ", got " + p.cur.Type.String())
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) at(tt lexer.TokenType) bool { return p.cur.Type == tt }

// ParseProgram repeatedly parses a program item until EndOfFile and
// returns the resulting Program node.
func ParseProgram(lex *lexer.Lexer) (*ast.Program, error) {
	p, err := New(lex)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

// ParseItem parses a single program item from lex without requiring
// EndOfFile to follow — used by the REPL, which feeds one line (one
// top-level declaration) at a time.
func ParseItem(lex *lexer.Lexer) (ast.Declaration, error) {
	p, err := New(lex)
	if err != nil {
		return nil, err
	}
	return p.parseProgramItem()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{Filename: p.lex.Filename()}
	for !p.at(lexer.EOF) {
		decl, err := p.parseProgramItem()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
	return prog, nil
}

// parseProgramItem dispatches a single top-level item: a struct
// declaration, a function-pointer typedef, a void-rooted declaration,
// or a non-void declaration that resolves to a variable, a function
// declaration, or a function definition.
func (p *Parser) parseProgramItem() (ast.Declaration, error) {
	switch p.cur.Type {
	case lexer.STRUCT:
		return p.parseStructProgramItem()
	case lexer.TYPEDEF:
		return p.parseFunctionPointerDeclaration()
	case lexer.VOID:
		return p.parseVoidRootedDeclaration()
	case lexer.INT, lexer.DOUBLE, lexer.CHAR:
		return p.parseNonVoidRootedDeclaration()
	default:
		return nil, p.fail("expected a declaration, got " + p.cur.Type.String())
	}
}

// parseBaseType consumes one of {int, double, char} and returns the
// corresponding Primitive type node, or consumes `struct Name` and
// returns a NamedType referencing it.
func (p *Parser) parseBaseType() (ast.Type, error) {
	if p.at(lexer.STRUCT) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(lexer.IDENT, "a struct name")
		if err != nil {
			return nil, err
		}
		return &ast.NamedType{Token: tok, Name: nameTok.Literal}, nil
	}

	var kind ast.PrimitiveKind
	switch p.cur.Type {
	case lexer.INT:
		kind = ast.PrimitiveInt
	case lexer.DOUBLE:
		kind = ast.PrimitiveDouble
	case lexer.CHAR:
		kind = ast.PrimitiveChar
	default:
		return nil, p.fail("expected a type keyword, got " + p.cur.Type.String())
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.PrimitiveType{Token: tok, Kind: kind}, nil
}

// wrapPointers consumes zero or more '*' tokens, wrapping base in a
// PointerType for each one (pointer nesting is outer-to-inner as
// stars are consumed left to right).
func (p *Parser) wrapPointers(base ast.Type) (ast.Type, error) {
	t := base
	for p.at(lexer.STAR) {
		star := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		t = &ast.PointerType{Token: star, Base: t}
	}
	return t, nil
}

// parseNonVoidType parses a base type followed by zero or more '*'.
func (p *Parser) parseNonVoidType() (ast.Type, error) {
	base, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}
	return p.wrapPointers(base)
}

// parseNonVoidRootedDeclaration handles a program item that starts
// with int/double/char: read the type, then disambiguate on the token
// following the identifier.
func (p *Parser) parseNonVoidRootedDeclaration() (ast.Declaration, error) {
	typ, err := p.parseNonVoidType()
	if err != nil {
		return nil, err
	}
	return p.parseNonVoidRootedTail(typ, true)
}

// parseNonVoidRootedTail reads the name following an already-parsed
// type and disambiguates the rest of the declaration. allowFunction
// is false in contexts (local statements) where a '(' tail can never
// be a nested function declaration.
func (p *Parser) parseNonVoidRootedTail(typ ast.Type, allowFunction bool) (ast.Declaration, error) {
	nameTok, err := p.expect(lexer.IDENT, "an identifier")
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	switch p.cur.Type {
	case lexer.LPAREN:
		if !allowFunction {
			return nil, p.failCode(ErrNestedFunction, "nested function declarations are not allowed")
		}
		return p.parseFunctionTail(typ, name)
	case lexer.LBRACK, lexer.ASSIGN, lexer.COMMA, lexer.SEMI:
		return p.parseVariableTail(typ, name)
	default:
		return nil, p.fail("expected '(', '[', '=', ',', or ';', got " + p.cur.Type.String())
	}
}

// parseVoidRootedDeclaration handles `void` at program-item scope. A
// bare `void name` with no pointer stars has no legal continuation
// (TinyC has no void-typed objects), but once at least one '*' has
// been consumed the type is an object pointer and falls through to
// the normal variable/function disambiguation.
func (p *Parser) parseVoidRootedDeclaration() (ast.Declaration, error) {
	voidTok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	var typ ast.Type = &ast.PrimitiveType{Token: voidTok, Kind: ast.PrimitiveVoid}
	stars := 0
	for p.at(lexer.STAR) {
		star := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		typ = &ast.PointerType{Token: star, Base: typ}
		stars++
	}
	if stars == 0 {
		nameTok, err := p.expect(lexer.IDENT, "an identifier")
		if err != nil {
			return nil, err
		}
		name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
		if !p.at(lexer.LPAREN) {
			return nil, p.failCode(ErrInvalidVoidDecl, "a bare void declaration is not allowed; expected '(' to start a function")
		}
		return p.parseFunctionTail(typ, name)
	}
	return p.parseNonVoidRootedTail(typ, true)
}
