package parser

import (
	"github.com/tinycc/frontend/internal/ast"
	"github.com/tinycc/frontend/internal/lexer"
)

// parseBlock parses a brace-delimited statement sequence. Within a
// block, statement parsing stops at '}'; case/default are only valid
// as the first token of a switch body and are rejected here by the
// normal statement dispatcher.
func (p *Parser) parseBlock() (*ast.Block, error) {
	tok, err := p.expect(lexer.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Token: tok}
	for !p.at(lexer.RBRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStatement dispatches a single statement by its leading token.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.DO:
		return p.parseDoWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.SWITCH:
		return p.parseSwitch()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.STRUCT:
		return p.parseStructStatement()
	case lexer.INT, lexer.DOUBLE, lexer.CHAR:
		return p.parseLocalDeclaration()
	case lexer.SEMI:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: tok}, nil
	default:
		return p.parseExpressionStatement()
	}
}

// parseLocalDeclaration parses a type-rooted statement inside a block:
// a variable declaration, possibly with repeated sibling entries. A
// local declaration can never be a function prototype/definition — a
// '(' after the identifier is rejected, since TinyC has no nested
// function declarations.
func (p *Parser) parseLocalDeclaration() (ast.Statement, error) {
	typ, err := p.parseNonVoidType()
	if err != nil {
		return nil, err
	}
	decl, err := p.parseNonVoidRootedTail(typ, false)
	if err != nil {
		return nil, err
	}
	return decl.(ast.Statement), nil
}

// parseStructStatement parses a struct declaration/definition
// statement, or a local variable declaration rooted in a struct type
// (e.g. `struct Point p;`). A struct type used as a function's return
// type is not reachable here — nested function declarations are never
// allowed inside a block.
func (p *Parser) parseStructStatement() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT, "a struct name")
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	var decl ast.Declaration
	switch p.cur.Type {
	case lexer.SEMI:
		if err := p.advance(); err != nil {
			return nil, err
		}
		decl = &ast.StructDeclaration{Token: tok, Name: name, HasBody: false}
	case lexer.LBRACE:
		decl, err = p.parseStructBody(tok, name)
	default:
		var typ ast.Type
		typ, err = p.wrapPointers(&ast.NamedType{Token: tok, Name: name.Value})
		if err != nil {
			return nil, err
		}
		decl, err = p.parseNonVoidRootedTail(typ, false)
	}
	if err != nil {
		return nil, err
	}
	return decl.(ast.Statement), nil
}

// parseExpressionStatement parses `Expression ;`.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.cur
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expr: expr}, nil
}

// parseIf parses `if ( Condition ) Consequence [ else Alternative ]`.
// The else greedily binds to the nearest unmatched if, which falls out
// naturally from this recursive call consuming `else` before
// returning to an enclosing caller.
func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	consequence, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Token: tok, Condition: cond, Consequence: consequence}
	if p.at(lexer.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternative = alt
	}
	return stmt, nil
}

// parseWhile parses `while ( Condition ) Body`.
func (p *Parser) parseWhile() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}, nil
}

// parseDoWhile parses `do Body while ( Condition ) ;`.
func (p *Parser) parseDoWhile() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.WHILE, "'while'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.DoWhile{Token: tok, Body: body, Condition: cond}, nil
}

// parseFor parses `for ( Init_opt ; Condition_opt ; Update_opt ) Body`.
// Init may be a declaration or an expression statement; both already
// consume the trailing ';'.
func (p *Parser) parseFor() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	stmt := &ast.For{Token: tok}

	switch p.cur.Type {
	case lexer.SEMI:
		if err := p.advance(); err != nil {
			return nil, err
		}
	case lexer.INT, lexer.DOUBLE, lexer.CHAR:
		init, err := p.parseLocalDeclaration()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	default:
		init, err := p.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	}

	if !p.at(lexer.SEMI) {
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Condition = cond
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}

	if !p.at(lexer.RPAREN) {
		update, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Update = update
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// parseSwitch parses `switch ( Expr ) { Case* }`. Cases are parsed in
// source order; at most one default is allowed.
func (p *Parser) parseSwitch() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	sw := &ast.Switch{Token: tok, Expr: expr}
	sawDefault := false
	for !p.at(lexer.RBRACE) {
		if p.at(lexer.DEFAULT) && sawDefault {
			return nil, p.failCode(ErrDuplicateDefault, "a switch may have at most one default case")
		}
		c, err := p.parseCase()
		if err != nil {
			return nil, err
		}
		if c.IsDefault {
			sawDefault = true
		}
		sw.Cases = append(sw.Cases, c)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return sw, nil
}

// parseCase parses `case IntegerLiteral : Statement*` or
// `default : Statement*`. The body runs until the next case/default or
// the closing brace; no break is added implicitly, so a `break` is an
// ordinary statement in the body.
func (p *Parser) parseCase() (*ast.Case, error) {
	tok := p.cur
	c := &ast.Case{Token: tok}
	switch p.cur.Type {
	case lexer.CASE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		valTok, err := p.expect(lexer.IntegerLiteral, "an integer literal")
		if err != nil {
			return nil, err
		}
		v, _ := valTok.IntValue()
		c.Value = v
	case lexer.DEFAULT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		c.IsDefault = true
	default:
		return nil, p.fail("expected 'case' or 'default', got " + p.cur.Type.String())
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	for !p.at(lexer.CASE) && !p.at(lexer.DEFAULT) && !p.at(lexer.RBRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		c.Statements = append(c.Statements, stmt)
	}
	return c, nil
}

func (p *Parser) parseBreak() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.Break{Token: tok}, nil
}

func (p *Parser) parseContinue() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.Continue{Token: tok}, nil
}

// parseReturn parses `return Expression_opt ;`.
func (p *Parser) parseReturn() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	ret := &ast.Return{Token: tok}
	if !p.at(lexer.SEMI) {
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ret.Value = val
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return ret, nil
}
