package parser

import (
	"github.com/tinycc/frontend/internal/ast"
	"github.com/tinycc/frontend/internal/lexer"
)

// parseExpr parses the full expression grammar starting at the
// outermost (loosest-binding) assignment level, right-associative.
func (p *Parser) parseExpr() (ast.Expression, error) {
	left, err := p.parseCommaExpr()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.ASSIGN) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Token: tok, Left: left, Operator: ast.OpAssign, Right: right}, nil
	}
	return left, nil
}

// parseAssignmentRHS parses a single assignment-level expression for an
// initializer. Unlike parseExpr it does not descend into the comma
// level, so the ',' that introduces a sibling declaration
// (`int a = 1, int b = 2;`) is left for the caller. Assignment stays
// right-associative.
func (p *Parser) parseAssignmentRHS() (ast.Expression, error) {
	left, err := p.parseLogicalOr()
	if err != nil || !p.at(lexer.ASSIGN) {
		return left, err
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAssignmentRHS()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: ast.OpAssign, Right: right}, nil
}

// parseCommaExpr is E9: zero or more ',' separated E8 operands,
// flattened into a single n-ary CommaExpression when more than one is
// present.
func (p *Parser) parseCommaExpr() (ast.Expression, error) {
	first, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.COMMA) {
		return first, nil
	}
	tok := p.cur
	exprs := []ast.Expression{first}
	for p.at(lexer.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseLogicalOr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return &ast.CommaExpression{Token: tok, Expressions: exprs}, nil
}

// binaryLevel is a generic left-associative binary-operator level
// parser: repeatedly match one of the given tokens against lower, and
// fold left using next to parse each operand.
func (p *Parser) binaryLevel(next func() (ast.Expression, error), ops map[lexer.TokenType]ast.BinaryOperator) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.cur.Type]
		if !ok {
			return left, nil
		}
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
	}
}

// E8: ||
func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.binaryLevel(p.parseLogicalAnd, map[lexer.TokenType]ast.BinaryOperator{lexer.LOR: ast.OpOr})
}

// E7: &&
func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.binaryLevel(p.parseBitOr, map[lexer.TokenType]ast.BinaryOperator{lexer.LAND: ast.OpAnd})
}

// E6: |
func (p *Parser) parseBitOr() (ast.Expression, error) {
	return p.binaryLevel(p.parseBitAnd, map[lexer.TokenType]ast.BinaryOperator{lexer.PIPE: ast.OpBitOr})
}

// E5: &
func (p *Parser) parseBitAnd() (ast.Expression, error) {
	return p.binaryLevel(p.parseEquality, map[lexer.TokenType]ast.BinaryOperator{lexer.AMP: ast.OpBitAnd})
}

// E4: == !=
func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.binaryLevel(p.parseRelational, map[lexer.TokenType]ast.BinaryOperator{
		lexer.EQ: ast.OpEq, lexer.NEQ: ast.OpNeq,
	})
}

// E3: < <= > >=
func (p *Parser) parseRelational() (ast.Expression, error) {
	return p.binaryLevel(p.parseShift, map[lexer.TokenType]ast.BinaryOperator{
		lexer.LT: ast.OpLt, lexer.LE: ast.OpLe, lexer.GT: ast.OpGt, lexer.GE: ast.OpGe,
	})
}

// E2: << >>
func (p *Parser) parseShift() (ast.Expression, error) {
	return p.binaryLevel(p.parseAdditive, map[lexer.TokenType]ast.BinaryOperator{
		lexer.SHL: ast.OpShl, lexer.SHR: ast.OpShr,
	})
}

// E1: + -
func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binaryLevel(p.parseUnary, map[lexer.TokenType]ast.BinaryOperator{
		lexer.PLUS: ast.OpAdd, lexer.MINUS: ast.OpSub,
	})
}

var unaryPrefixOps = map[lexer.TokenType]ast.UnaryOperator{
	lexer.PLUS:  ast.OpUnaryPlus,
	lexer.MINUS: ast.OpUnaryMinus,
	lexer.NOT:   ast.OpNot,
	lexer.TILDE: ast.OpBitNot,
	lexer.INC:   ast.OpIncrement,
	lexer.DEC:   ast.OpDecrement,
	lexer.STAR:  ast.OpDeref,
	lexer.AMP:   ast.OpAddr,
}

// parseUnary handles the prefix unary level: `+ - ! ~ ++ -- * &`
// right-associatively wrapping another unary (or falling through to
// postfix).
func (p *Parser) parseUnary() (ast.Expression, error) {
	if op, ok := unaryPrefixOps[p.cur.Type]; ok {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: tok, Operator: op, Operand: operand, Prefix: true}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles call, index, member access, and postfix ++/--,
// left-associatively chained onto a primary expression.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case lexer.LPAREN:
			tok := p.cur
			if err := p.advance(); err != nil {
				return nil, err
			}
			var args []ast.Expression
			if !p.at(lexer.RPAREN) {
				for {
					arg, err := p.parseLogicalOr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if !p.at(lexer.COMMA) {
						break
					}
					if err := p.advance(); err != nil {
						return nil, err
					}
				}
			}
			if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{Token: tok, Callee: expr, Arguments: args}
		case lexer.LBRACK:
			tok := p.cur
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACK, "']'"); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpression{Token: tok, Array: expr, Index: idx}
		case lexer.DOT, lexer.ARROW:
			tok := p.cur
			kind := ast.MemberDot
			if tok.Type == lexer.ARROW {
				kind = ast.MemberArrow
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			memberTok, err := p.expect(lexer.IDENT, "a member name")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Token: tok, Object: expr, Member: memberTok.Literal, Kind: kind}
		case lexer.INC, lexer.DEC:
			tok := p.cur
			op := ast.OpIncrement
			if tok.Type == lexer.DEC {
				op = ast.OpDecrement
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr = &ast.UnaryExpression{Token: tok, Operator: op, Operand: expr, Prefix: false}
		default:
			return expr, nil
		}
	}
}

// parsePrimary handles literals, identifiers, parenthesized
// expressions, and the cast form.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur.Type {
	case lexer.IntegerLiteral, lexer.DoubleLiteral, lexer.CharLiteral, lexer.StringLiteral:
		return p.parseLiteral()
	case lexer.IDENT:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Identifier{Token: tok, Value: tok.Literal}, nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.CAST:
		return p.parseCastExpression()
	default:
		return nil, p.fail("expected an expression, got " + p.cur.Type.String())
	}
}

func (p *Parser) parseLiteral() (ast.Expression, error) {
	tok := p.cur
	var kind ast.LiteralKind
	value := tok.Literal
	switch tok.Type {
	case lexer.IntegerLiteral:
		kind = ast.LiteralInteger
	case lexer.DoubleLiteral:
		kind = ast.LiteralDouble
	case lexer.CharLiteral:
		kind = ast.LiteralChar
		// tok.Literal is the raw source text including its surrounding
		// quotes; Value holds the decoded character, unquoted, matching
		// how a StringLiteral's Value never carries its own quotes.
		if v, ok := tok.CharValue(); ok {
			value = string(v)
		}
	case lexer.StringLiteral:
		kind = ast.LiteralString
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Literal{Token: tok, Kind: kind, Value: value}, nil
}

// parseCastExpression parses `cast < Type > ( Expression )`. The `<`
// and `>` are ordinary comparison tokens the parser expects
// contextually right after the `cast` keyword.
func (p *Parser) parseCastExpression() (ast.Expression, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LT, "'<'"); err != nil {
		return nil, err
	}
	targetType, err := p.parseFunctionReturnType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.GT, "'>'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.CastExpression{Token: tok, TargetType: targetType, Expr: inner}, nil
}
