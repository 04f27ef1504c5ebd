package ast

import (
	"testing"

	"github.com/tinycc/frontend/internal/lexer"
)

func ident(name string) *Identifier {
	return &Identifier{Token: lexer.Token{Type: lexer.IDENT, Literal: name}, Value: name}
}

func intLit(v string) *Literal {
	return &Literal{Token: lexer.Token{Type: lexer.IntegerLiteral, Literal: v}, Kind: LiteralInteger, Value: v}
}

func primitive(kind PrimitiveKind) *PrimitiveType {
	return &PrimitiveType{Token: lexer.Token{Type: lexer.INT, Literal: kind.String()}, Kind: kind}
}

func TestPointerTypeString(t *testing.T) {
	pp := &PointerType{Base: &PointerType{Base: primitive(PrimitiveInt)}}
	if got, want := pp.String(), "int**"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProgramPosIsWholeFileSentinel(t *testing.T) {
	p := &Program{Filename: "a.c"}
	pos := p.Pos()
	if pos.Filename != "a.c" || pos.Line != 0 || pos.Column != 0 {
		t.Errorf("Pos() = %+v, want whole-file sentinel", pos)
	}
}

func TestLiteralStringQuotesCharAndString(t *testing.T) {
	tests := []struct {
		lit  *Literal
		want string
	}{
		{&Literal{Kind: LiteralChar, Value: "a"}, "'a'"},
		{&Literal{Kind: LiteralString, Value: "hi"}, "\"hi\""},
		{&Literal{Kind: LiteralInteger, Value: "5"}, "5"},
		{&Literal{Kind: LiteralDouble, Value: "5.0"}, "5.0"},
	}
	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBinaryExpressionString(t *testing.T) {
	b := &BinaryExpression{Left: ident("a"), Operator: OpAdd, Right: ident("b")}
	if got, want := b.String(), "(a + b)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnaryExpressionPrefixAndPostfix(t *testing.T) {
	pre := &UnaryExpression{Operator: OpUnaryMinus, Operand: ident("x"), Prefix: true}
	if got, want := pre.String(), "(-x)"; got != want {
		t.Errorf("prefix String() = %q, want %q", got, want)
	}
	post := &UnaryExpression{Operator: OpIncrement, Operand: ident("x"), Prefix: false}
	if got, want := post.String(), "(x++)"; got != want {
		t.Errorf("postfix String() = %q, want %q", got, want)
	}
}

func TestCastExpressionString(t *testing.T) {
	c := &CastExpression{TargetType: primitive(PrimitiveDouble), Expr: ident("x")}
	if got, want := c.String(), "cast<double>(x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCallExpressionString(t *testing.T) {
	c := &CallExpression{Callee: ident("add"), Arguments: []Expression{ident("a"), intLit("2")}}
	if got, want := c.String(), "add(a, 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMemberExpressionDotAndArrow(t *testing.T) {
	dot := &MemberExpression{Object: ident("p"), Member: "x", Kind: MemberDot}
	if got, want := dot.String(), "p.x"; got != want {
		t.Errorf("dot String() = %q, want %q", got, want)
	}
	arrow := &MemberExpression{Object: ident("p"), Member: "x", Kind: MemberArrow}
	if got, want := arrow.String(), "p->x"; got != want {
		t.Errorf("arrow String() = %q, want %q", got, want)
	}
}

func TestIfStatementDanglingElseRepresentation(t *testing.T) {
	inner := &If{
		Token:       lexer.Token{Type: lexer.IF, Literal: "if"},
		Condition:   ident("y"),
		Consequence: &ExpressionStatement{Expr: ident("z")},
		Alternative: &ExpressionStatement{Expr: ident("w")},
	}
	outer := &If{
		Token:       lexer.Token{Type: lexer.IF, Literal: "if"},
		Condition:   ident("x"),
		Consequence: inner,
	}
	want := "if (x) if (y) z; else w;"
	if got := outer.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestForOmittedClauses(t *testing.T) {
	f := &For{Body: &Block{}}
	got := f.String()
	want := "for (; ; ) {\n}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSwitchPreservesCaseOrderIncludingDefault(t *testing.T) {
	sw := &Switch{
		Expr: ident("x"),
		Cases: []*Case{
			{IsDefault: false, Value: 1, Statements: []Statement{&Break{}}},
			{IsDefault: true, Statements: []Statement{&Break{}}},
		},
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(sw.Cases))
	}
	if sw.Cases[0].IsDefault {
		t.Error("first case should not be default")
	}
	if !sw.Cases[1].IsDefault {
		t.Error("second case should be default")
	}
}

func TestStructDeclarationForwardVsDefinition(t *testing.T) {
	forward := &StructDeclaration{Name: ident("Point"), HasBody: false}
	if forward.IsDefinition() {
		t.Error("forward declaration should not be a definition")
	}
	if got, want := forward.String(), "struct Point;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	def := &StructDeclaration{Name: ident("Point"), HasBody: true, Fields: []*Parameter{
		{Type: primitive(PrimitiveInt), Name: ident("x")},
	}}
	if !def.IsDefinition() {
		t.Error("defined struct should report IsDefinition")
	}
}

func TestFunctionDeclarationIsDefinition(t *testing.T) {
	decl := &FunctionDeclaration{ReturnType: primitive(PrimitiveInt), Name: ident("f")}
	if decl.IsDefinition() {
		t.Error("prototype should not be a definition")
	}
	decl.Body = &Block{}
	if !decl.IsDefinition() {
		t.Error("function with a body should be a definition")
	}
}

func TestMultipleDeclarationRepeatsTypeKeyword(t *testing.T) {
	md := &MultipleDeclaration{
		Declarations: []*Variable{
			{Type: primitive(PrimitiveInt), Name: ident("a"), Init: intLit("1")},
			{Type: primitive(PrimitiveInt), Name: ident("b"), Init: intLit("2")},
		},
	}
	want := "int a = 1, int b = 2;"
	if got := md.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFunctionPointerDeclarationString(t *testing.T) {
	fp := &FunctionPointerDeclaration{
		Name:           ident("Cmp"),
		ReturnType:     primitive(PrimitiveInt),
		ParameterTypes: []Type{primitive(PrimitiveInt), primitive(PrimitiveInt)},
	}
	want := "typedef int (*Cmp)(int, int);"
	if got := fp.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
