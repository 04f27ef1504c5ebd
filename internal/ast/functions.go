package ast

import (
	"strings"

	"github.com/tinycc/frontend/internal/lexer"
)

// FunctionDeclaration is a function prototype or definition:
// `ReturnType Name(Parameters...);` when Body is nil, or
// `ReturnType Name(Parameters...) Body` otherwise.
type FunctionDeclaration struct {
	Token      lexer.Token
	ReturnType Type
	Name       *Identifier
	Parameters []*Parameter
	Body       *Block // nil for a prototype-only declaration
}

func (*FunctionDeclaration) statementNode()         {}
func (*FunctionDeclaration) declarationNode()       {}
func (f *FunctionDeclaration) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclaration) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDeclaration) IsDefinition() bool   { return f.Body != nil }
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	out := f.ReturnType.String() + " " + f.Name.String() + "(" + strings.Join(params, ", ") + ")"
	if f.Body != nil {
		return out + " " + f.Body.String()
	}
	return out + ";"
}
