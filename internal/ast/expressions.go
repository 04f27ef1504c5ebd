package ast

import (
	"bytes"
	"strings"

	"github.com/tinycc/frontend/internal/lexer"
)

// BinaryOperator is an enumerated tag for a binary operator; the
// string form is derived only when emitting. The set matches the
// ten-level expression precedence cascade exactly: `*`, `/`, and `%`
// have no binary production in this grammar — `*` is only ever a
// unary dereference or a multiply-shaped token consumed elsewhere.
type BinaryOperator int

const (
	OpAssign BinaryOperator = iota
	OpOr
	OpAnd
	OpBitOr
	OpBitAnd
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpShl
	OpShr
	OpAdd
	OpSub
)

var binaryOperatorText = map[BinaryOperator]string{
	OpAssign: "=", OpOr: "||", OpAnd: "&&", OpBitOr: "|", OpBitAnd: "&",
	OpEq: "==", OpNeq: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	OpShl: "<<", OpShr: ">>", OpAdd: "+", OpSub: "-",
}

func (op BinaryOperator) String() string { return binaryOperatorText[op] }

// UnaryOperator is an enumerated tag for a prefix or postfix unary
// operator.
type UnaryOperator int

const (
	OpUnaryPlus UnaryOperator = iota
	OpUnaryMinus
	OpNot
	OpBitNot
	OpIncrement
	OpDecrement
	OpDeref
	OpAddr
)

var unaryOperatorText = map[UnaryOperator]string{
	OpUnaryPlus: "+", OpUnaryMinus: "-", OpNot: "!", OpBitNot: "~",
	OpIncrement: "++", OpDecrement: "--", OpDeref: "*", OpAddr: "&",
}

func (op UnaryOperator) String() string { return unaryOperatorText[op] }

// BinaryExpression is `left OP right`.
type BinaryExpression struct {
	Token    lexer.Token
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func (*BinaryExpression) expressionNode()        {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator.String() + " " + b.Right.String() + ")"
}

// UnaryExpression is a prefix (`-x`, `*p`, `++x`) or postfix (`x++`)
// unary operation; Prefix discriminates the two.
type UnaryExpression struct {
	Token    lexer.Token
	Operator UnaryOperator
	Operand  Expression
	Prefix   bool
}

func (*UnaryExpression) expressionNode()        {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryExpression) String() string {
	if u.Prefix {
		return "(" + u.Operator.String() + u.Operand.String() + ")"
	}
	return "(" + u.Operand.String() + u.Operator.String() + ")"
}

// CastExpression is `cast < Type > ( Expression )`.
type CastExpression struct {
	Token      lexer.Token
	TargetType Type
	Expr       Expression
}

func (*CastExpression) expressionNode()        {}
func (c *CastExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CastExpression) Pos() lexer.Position  { return c.Token.Pos }
func (c *CastExpression) String() string {
	return "cast<" + c.TargetType.String() + ">(" + c.Expr.String() + ")"
}

// CallExpression is `callee ( arguments... )`.
type CallExpression struct {
	Token     lexer.Token // the '(' token
	Callee    Expression
	Arguments []Expression
}

func (*CallExpression) expressionNode()        {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// IndexExpression is `array [ index ]`.
type IndexExpression struct {
	Token lexer.Token // the '[' token
	Array Expression
	Index Expression
}

func (*IndexExpression) expressionNode()        {}
func (i *IndexExpression) TokenLiteral() string { return i.Token.Literal }
func (i *IndexExpression) Pos() lexer.Position  { return i.Token.Pos }
func (i *IndexExpression) String() string {
	return i.Array.String() + "[" + i.Index.String() + "]"
}

// MemberAccessKind discriminates `.` from `->` member access.
type MemberAccessKind int

const (
	MemberDot MemberAccessKind = iota
	MemberArrow
)

func (k MemberAccessKind) String() string {
	if k == MemberArrow {
		return "->"
	}
	return "."
}

// MemberExpression is `object . member` or `object -> member`.
type MemberExpression struct {
	Token  lexer.Token
	Object Expression
	Member string
	Kind   MemberAccessKind
}

func (*MemberExpression) expressionNode()        {}
func (m *MemberExpression) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpression) Pos() lexer.Position  { return m.Token.Pos }
func (m *MemberExpression) String() string {
	return m.Object.String() + m.Kind.String() + m.Member
}

// CommaExpression is a flattened n-ary comma expression `a, b, c`.
type CommaExpression struct {
	Token       lexer.Token
	Expressions []Expression
}

func (*CommaExpression) expressionNode()        {}
func (c *CommaExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CommaExpression) Pos() lexer.Position  { return c.Token.Pos }
func (c *CommaExpression) String() string {
	var out bytes.Buffer
	for i, e := range c.Expressions {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.String())
	}
	return out.String()
}
