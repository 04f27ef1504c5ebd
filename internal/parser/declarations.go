package parser

import (
	"github.com/tinycc/frontend/internal/ast"
	"github.com/tinycc/frontend/internal/lexer"
)

// parseStructProgramItem parses a struct program item: `struct Name;`
// (forward declaration), `struct Name { Fields... };` (definition,
// body may be empty), or `struct Name` used as a type, in which case
// it falls through to the ordinary variable/function disambiguation
// (e.g. `struct Point* origin;`, `struct Inner f;`).
func (p *Parser) parseStructProgramItem() (ast.Declaration, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT, "a struct name")
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	switch p.cur.Type {
	case lexer.SEMI:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StructDeclaration{Token: tok, Name: name, HasBody: false}, nil
	case lexer.LBRACE:
		return p.parseStructBody(tok, name)
	default:
		typ, err := p.wrapPointers(&ast.NamedType{Token: tok, Name: name.Value})
		if err != nil {
			return nil, err
		}
		return p.parseNonVoidRootedTail(typ, true)
	}
}

// parseStructBody parses the `{ Fields... } ;` tail of a struct
// definition given its already-consumed `struct Name`.
func (p *Parser) parseStructBody(tok lexer.Token, name *ast.Identifier) (ast.Declaration, error) {
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var fields []*ast.Parameter
	for !p.at(lexer.RBRACE) {
		fieldType, err := p.parseNonVoidType()
		if err != nil {
			return nil, err
		}
		fieldNameTok, err := p.expect(lexer.IDENT, "a field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
		fields = append(fields, &ast.Parameter{
			Token: fieldNameTok,
			Type:  fieldType,
			Name:  &ast.Identifier{Token: fieldNameTok, Value: fieldNameTok.Literal},
		})
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.StructDeclaration{Token: tok, Name: name, HasBody: true, Fields: fields}, nil
}

// parseFunctionReturnType parses a function-return type: void without
// any '*', or a full non-void type.
func (p *Parser) parseFunctionReturnType() (ast.Type, error) {
	if p.at(lexer.VOID) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.PrimitiveType{Token: tok, Kind: ast.PrimitiveVoid}, nil
	}
	return p.parseNonVoidType()
}

// parseFunctionPointerDeclaration parses
// `typedef ReturnType ( * Name ) ( ParamTypeList_opt ) ;`.
func (p *Parser) parseFunctionPointerDeclaration() (ast.Declaration, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	retType, err := p.parseFunctionReturnType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.STAR, "'*'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT, "the typedef name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var paramTypes []ast.Type
	if !p.at(lexer.RPAREN) {
		for {
			t, err := p.parseFunctionReturnType()
			if err != nil {
				return nil, err
			}
			paramTypes = append(paramTypes, t)
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
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.FunctionPointerDeclaration{
		Token:          tok,
		Name:           &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
		ReturnType:     retType,
		ParameterTypes: paramTypes,
	}, nil
}

// parseParameterList parses `( )` or `( Type name (, Type name)* )`.
func (p *Parser) parseParameterList() ([]*ast.Parameter, error) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []*ast.Parameter
	if !p.at(lexer.RPAREN) {
		for {
			ptype, err := p.parseNonVoidType()
			if err != nil {
				return nil, err
			}
			nameTok, err := p.expect(lexer.IDENT, "a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.Parameter{
				Token: nameTok,
				Type:  ptype,
				Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
			})
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
	return params, nil
}

// parseFunctionTail parses the parameter list and either a ';'
// terminator (declaration) or a block body (definition), given the
// already-consumed return type and name.
func (p *Parser) parseFunctionTail(retType ast.Type, name *ast.Identifier) (ast.Declaration, error) {
	tok := name.Token
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.SEMI) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FunctionDeclaration{Token: tok, ReturnType: retType, Name: name, Parameters: params}, nil
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Token: tok, ReturnType: retType, Name: name, Parameters: params, Body: body}, nil
}

// parseVariableEntryTail parses the optional `[ size ]` and `= init`
// clauses following a type and name already consumed, without
// consuming the terminating ';' or ','.
func (p *Parser) parseVariableEntryTail(typ ast.Type, name *ast.Identifier, tok lexer.Token) (*ast.Variable, error) {
	v := &ast.Variable{Token: tok, Type: typ, Name: name}
	if p.at(lexer.LBRACK) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		size, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		v.ArraySize = size
		if _, err := p.expect(lexer.RBRACK, "']'"); err != nil {
			return nil, err
		}
	}
	if p.at(lexer.ASSIGN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err := p.parseAssignmentRHS()
		if err != nil {
			return nil, err
		}
		v.Init = init
	}
	return v, nil
}

// parseVariableTail parses the remainder of a variable declaration
// statement given the first type and name already consumed: optional
// array size, optional initializer, optional further sibling
// declarations (each repeating its own type keyword) separated by
// ',', terminated by ';'.
func (p *Parser) parseVariableTail(typ ast.Type, name *ast.Identifier) (ast.Declaration, error) {
	tok := name.Token
	first, err := p.parseVariableEntryTail(typ, name, tok)
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.COMMA) {
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
		return first, nil
	}

	decls := []*ast.Variable{first}
	for p.at(lexer.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		nextType, err := p.parseNonVoidType()
		if err != nil {
			return nil, err
		}
		nextNameTok, err := p.expect(lexer.IDENT, "an identifier")
		if err != nil {
			return nil, err
		}
		nextName := &ast.Identifier{Token: nextNameTok, Value: nextNameTok.Literal}
		entry, err := p.parseVariableEntryTail(nextType, nextName, nextNameTok)
		if err != nil {
			return nil, err
		}
		decls = append(decls, entry)
	}
	if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.MultipleDeclaration{Token: tok, Declarations: decls}, nil
}
