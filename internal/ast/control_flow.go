package ast

import (
	"bytes"
	"strconv"

	"github.com/tinycc/frontend/internal/lexer"
)

// If is `if (Condition) Consequence [else Alternative]`. Alternative
// is nil when there is no else clause. A dangling else always
// attaches to the nearest open if, which the parser enforces by
// binding greedily rather than anything recorded here.
type If struct {
	Token       lexer.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (*If) statementNode()        {}
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() lexer.Position  { return i.Token.Pos }
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(i.Condition.String())
	out.WriteString(") ")
	out.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(i.Alternative.String())
	}
	return out.String()
}

// While is `while (Condition) Body`.
type While struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (*While) statementNode()        {}
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() lexer.Position  { return w.Token.Pos }
func (w *While) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// DoWhile is `do Body while (Condition);`. The body runs at least once.
type DoWhile struct {
	Token     lexer.Token // the 'do' token
	Body      Statement
	Condition Expression
}

func (*DoWhile) statementNode()        {}
func (d *DoWhile) TokenLiteral() string { return d.Token.Literal }
func (d *DoWhile) Pos() lexer.Position  { return d.Token.Pos }
func (d *DoWhile) String() string {
	return "do " + d.Body.String() + " while (" + d.Condition.String() + ");"
}

// For is `for (Init; Condition; Update) Body`. Any of Init, Condition,
// or Update may be nil for the corresponding omitted clause.
type For struct {
	Token     lexer.Token
	Init      Statement
	Condition Expression
	Update    Expression
	Body      Statement
}

func (*For) statementNode()        {}
func (f *For) TokenLiteral() string { return f.Token.Literal }
func (f *For) Pos() lexer.Position  { return f.Token.Pos }
func (f *For) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		out.WriteString(f.Init.String())
	} else {
		out.WriteString(";")
	}
	out.WriteString(" ")
	if f.Condition != nil {
		out.WriteString(f.Condition.String())
	}
	out.WriteString("; ")
	if f.Update != nil {
		out.WriteString(f.Update.String())
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// Case is one `case IntValue: Statements...` or `default:
// Statements...` arm of a Switch. Value is meaningful only when
// IsDefault is false.
type Case struct {
	Token      lexer.Token
	IsDefault  bool
	Value      int64
	Statements []Statement
}

func (c *Case) String() string {
	var out bytes.Buffer
	if c.IsDefault {
		out.WriteString("default:")
	} else {
		out.WriteString("case ")
		out.WriteString(strconv.FormatInt(c.Value, 10))
		out.WriteString(":")
	}
	for _, s := range c.Statements {
		out.WriteString("\n  ")
		out.WriteString(s.String())
	}
	return out.String()
}

// Switch is `switch (Expr) { Cases... }`. At most one Case in Cases
// may have IsDefault set; it may appear at any position relative to
// the integer cases. Fallthrough between cases is implicit, matching
// C, since there is no separate break-per-case node.
type Switch struct {
	Token lexer.Token
	Expr  Expression
	Cases []*Case
}

func (*Switch) statementNode()        {}
func (s *Switch) TokenLiteral() string { return s.Token.Literal }
func (s *Switch) Pos() lexer.Position  { return s.Token.Pos }
func (s *Switch) String() string {
	var out bytes.Buffer
	out.WriteString("switch (")
	out.WriteString(s.Expr.String())
	out.WriteString(") {\n")
	for _, c := range s.Cases {
		out.WriteString(c.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Break exits the innermost enclosing loop or switch.
type Break struct {
	Token lexer.Token
}

func (*Break) statementNode()        {}
func (b *Break) TokenLiteral() string { return b.Token.Literal }
func (b *Break) Pos() lexer.Position  { return b.Token.Pos }
func (b *Break) String() string       { return "break;" }

// Continue skips to the next iteration of the innermost enclosing
// loop.
type Continue struct {
	Token lexer.Token
}

func (*Continue) statementNode()        {}
func (c *Continue) TokenLiteral() string { return c.Token.Literal }
func (c *Continue) Pos() lexer.Position  { return c.Token.Pos }
func (c *Continue) String() string       { return "continue;" }

// Return exits the enclosing function, optionally carrying a value.
// Value is nil for a bare `return;`.
type Return struct {
	Token lexer.Token
	Value Expression
}

func (*Return) statementNode()        {}
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) Pos() lexer.Position  { return r.Token.Pos }
func (r *Return) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}
