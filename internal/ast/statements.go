package ast

import (
	"bytes"

	"github.com/tinycc/frontend/internal/lexer"
)

// Block is a brace-delimited sequence of statements; it introduces its
// own lexical scope.
type Block struct {
	Token      lexer.Token // the '{' token
	Statements []Statement
}

func (*Block) statementNode()        {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() lexer.Position  { return b.Token.Pos }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// ExpressionStatement wraps an expression evaluated for its side
// effects, terminated by ';'.
type ExpressionStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (*ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expr != nil {
		return e.Expr.String() + ";"
	}
	return ";"
}
