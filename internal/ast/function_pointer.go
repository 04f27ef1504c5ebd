package ast

import (
	"strings"

	"github.com/tinycc/frontend/internal/lexer"
)

// FunctionPointerDeclaration is a named function-pointer typedef:
// `typedef ReturnType (*Name)(ParameterTypes...);`. The parameter list
// carries types only, no names.
type FunctionPointerDeclaration struct {
	Token          lexer.Token // the 'typedef' token
	Name           *Identifier
	ReturnType     Type
	ParameterTypes []Type
}

func (*FunctionPointerDeclaration) statementNode()         {}
func (*FunctionPointerDeclaration) declarationNode()       {}
func (f *FunctionPointerDeclaration) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionPointerDeclaration) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionPointerDeclaration) String() string {
	params := make([]string, len(f.ParameterTypes))
	for i, p := range f.ParameterTypes {
		params[i] = p.String()
	}
	return "typedef " + f.ReturnType.String() + " (*" + f.Name.String() + ")(" + strings.Join(params, ", ") + ");"
}
