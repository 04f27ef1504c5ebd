package ast

import (
	"strings"

	"github.com/tinycc/frontend/internal/lexer"
)

// Variable is a single variable declaration: `Type Name [ArraySize] [=
// Init];`. ArraySize and Init are nil when absent.
type Variable struct {
	Token     lexer.Token
	Type      Type
	Name      *Identifier
	ArraySize Expression
	Init      Expression
}

func (*Variable) statementNode()         {}
func (*Variable) declarationNode()       {}
func (v *Variable) TokenLiteral() string { return v.Token.Literal }
func (v *Variable) Pos() lexer.Position  { return v.Token.Pos }
func (v *Variable) String() string {
	out := v.Type.String() + " " + v.Name.String()
	if v.ArraySize != nil {
		out += "[" + v.ArraySize.String() + "]"
	}
	if v.Init != nil {
		out += " = " + v.Init.String()
	}
	return out + ";"
}

// Parameter is a single `Type Name` entry in a function's parameter
// list or a struct's field list.
type Parameter struct {
	Token lexer.Token
	Type  Type
	Name  *Identifier
}

func (p *Parameter) TokenLiteral() string { return p.Token.Literal }
func (p *Parameter) Pos() lexer.Position  { return p.Token.Pos }
func (p *Parameter) String() string       { return p.Type.String() + " " + p.Name.String() }

// StructDeclaration is `struct Name;` (forward declaration, HasBody
// false) or `struct Name { Fields... };` (definition, HasBody true;
// Fields may still be empty).
type StructDeclaration struct {
	Token   lexer.Token
	Name    *Identifier
	HasBody bool
	Fields  []*Parameter
}

func (*StructDeclaration) statementNode()         {}
func (*StructDeclaration) declarationNode()       {}
func (s *StructDeclaration) TokenLiteral() string { return s.Token.Literal }
func (s *StructDeclaration) Pos() lexer.Position  { return s.Token.Pos }
func (s *StructDeclaration) IsDefinition() bool   { return s.HasBody }
func (s *StructDeclaration) String() string {
	if !s.HasBody {
		return "struct " + s.Name.String() + ";"
	}
	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.String() + ";"
	}
	body := strings.Join(fields, "\n  ")
	if body != "" {
		body = "\n  " + body + "\n"
	}
	return "struct " + s.Name.String() + " {" + body + "};"
}

// MultipleDeclaration groups sibling variable declarations sharing one
// statement, e.g. `int a = 1, int b = 2;`. Each entry repeats its type
// keyword; this is a TinyC quirk, not standard C.
type MultipleDeclaration struct {
	Token        lexer.Token
	Declarations []*Variable
}

func (*MultipleDeclaration) statementNode()         {}
func (*MultipleDeclaration) declarationNode()       {}
func (m *MultipleDeclaration) TokenLiteral() string { return m.Token.Literal }
func (m *MultipleDeclaration) Pos() lexer.Position  { return m.Token.Pos }
func (m *MultipleDeclaration) String() string {
	parts := make([]string, len(m.Declarations))
	for i, d := range m.Declarations {
		parts[i] = strings.TrimSuffix(d.String(), ";")
	}
	return strings.Join(parts, ", ") + ";"
}
