package ast

import (
	"bytes"

	"github.com/tinycc/frontend/internal/lexer"
)

// Node is the base interface for every AST node. Every node carries
// its own source location — matching the first token that began its
// production — and a debug string representation.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Declaration is any top-level program item: a variable, function,
// struct, function-pointer typedef, or a grouping of sibling
// variables (MultipleDeclaration).
type Declaration interface {
	Statement
	declarationNode()
}

// Type is any of the three type-node variants: Primitive, Named, or
// Pointer.
type Type interface {
	Node
	typeNode()
}

// Program is the root AST node: an ordered sequence of top-level
// declarations.
type Program struct {
	Declarations []Declaration
	// Filename is used for the Program-wide location sentinel
	// (filename, 0, 0), preserving the first declaration's filename.
	Filename string
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Declarations {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Pos returns the whole-file sentinel location (filename, 0, 0).
func (p *Program) Pos() lexer.Position {
	return lexer.Position{Filename: p.Filename, Line: 0, Column: 0}
}

// PrimitiveKind enumerates the four built-in scalar type kinds.
type PrimitiveKind int

const (
	PrimitiveInt PrimitiveKind = iota
	PrimitiveDouble
	PrimitiveChar
	PrimitiveVoid
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveInt:
		return "int"
	case PrimitiveDouble:
		return "double"
	case PrimitiveChar:
		return "char"
	case PrimitiveVoid:
		return "void"
	default:
		return "unknown"
	}
}

// PrimitiveType is one of {int, double, char, void}.
type PrimitiveType struct {
	Token lexer.Token
	Kind  PrimitiveKind
}

func (*PrimitiveType) typeNode()              {}
func (t *PrimitiveType) TokenLiteral() string { return t.Token.Literal }
func (t *PrimitiveType) Pos() lexer.Position  { return t.Token.Pos }
func (t *PrimitiveType) String() string       { return t.Kind.String() }

// NamedType is a reference to a struct name, e.g. `struct Point` used
// as a type.
type NamedType struct {
	Token lexer.Token
	Name  string
}

func (*NamedType) typeNode()              {}
func (t *NamedType) TokenLiteral() string { return t.Token.Literal }
func (t *NamedType) Pos() lexer.Position  { return t.Token.Pos }
func (t *NamedType) String() string       { return "struct " + t.Name }

// PointerType wraps a base type; pointer chains nest outer-to-inner
// (`int**` is represented as Pointer(Pointer(int))).
type PointerType struct {
	Token lexer.Token // the '*' token that introduced this pointer level
	Base  Type
}

func (*PointerType) typeNode()              {}
func (t *PointerType) TokenLiteral() string { return t.Token.Literal }
func (t *PointerType) Pos() lexer.Position  { return t.Token.Pos }
func (t *PointerType) String() string       { return t.Base.String() + "*" }

// Identifier is a bare name reference.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (*Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Value }

// LiteralKind discriminates the four literal value kinds.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralDouble
	LiteralChar
	LiteralString
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInteger:
		return "integer"
	case LiteralDouble:
		return "double"
	case LiteralChar:
		return "char"
	case LiteralString:
		return "string"
	default:
		return "unknown"
	}
}

// Literal is a constant value: integer, double, char, or string.
// Value holds the textual lexeme for integer and double literals, and
// the decoded contents without surrounding quotes for char and string
// literals; String() adds the quotes back.
type Literal struct {
	Token lexer.Token
	Kind  LiteralKind
	Value string
}

func (*Literal) expressionNode()        {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() lexer.Position  { return l.Token.Pos }
func (l *Literal) String() string {
	switch l.Kind {
	case LiteralChar:
		return "'" + l.Value + "'"
	case LiteralString:
		return "\"" + l.Value + "\""
	default:
		return l.Value
	}
}
