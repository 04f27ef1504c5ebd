package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tinycc/frontend/internal/ast"
	"github.com/tinycc/frontend/internal/lexer"
)

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New("test.c", input)
	prog, err := ParseProgram(l)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	return prog
}

func TestParseBasicProgram(t *testing.T) {
	prog := mustParse(t, `int add(int a, int b) { return a + b; }`)
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	fn, ok := prog.Declarations[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", prog.Declarations[0])
	}
	if fn.Name.Value != "add" {
		t.Errorf("name = %q, want add", fn.Name.Value)
	}
	if !fn.IsDefinition() {
		t.Error("expected IsDefinition() = true for a body-bearing function")
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", fn.Body.Statements[0])
	}
	if _, ok := ret.Value.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected return value to be a BinaryExpression, got %T", ret.Value)
	}
}

func TestParseGlobalDisambiguation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"variable", `int x;`, "*ast.Variable"},
		{"variable with init", `int x = 5;`, "*ast.Variable"},
		{"array variable", `int arr[10];`, "*ast.Variable"},
		{"function declaration", `int f(int a);`, "*ast.FunctionDeclaration"},
		{"function definition", `int f(int a) { return a; }`, "*ast.FunctionDeclaration"},
		{"multiple declaration", `int a, double b;`, "*ast.MultipleDeclaration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.input)
			if len(prog.Declarations) != 1 {
				t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
			}
			got := typeName(prog.Declarations[0])
			if got != tt.want {
				t.Errorf("declaration type = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePointerChainNesting(t *testing.T) {
	prog := mustParse(t, `int** p;`)
	v, ok := prog.Declarations[0].(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable, got %T", prog.Declarations[0])
	}
	outer, ok := v.Type.(*ast.PointerType)
	if !ok {
		t.Fatalf("expected outer type *ast.PointerType, got %T", v.Type)
	}
	inner, ok := outer.Base.(*ast.PointerType)
	if !ok {
		t.Fatalf("expected inner type *ast.PointerType, got %T", outer.Base)
	}
	base, ok := inner.Base.(*ast.PrimitiveType)
	if !ok {
		t.Fatalf("expected innermost base *ast.PrimitiveType, got %T", inner.Base)
	}
	if base.Kind != ast.PrimitiveInt {
		t.Errorf("base kind = %v, want PrimitiveInt", base.Kind)
	}
}

func TestParseStructForwardVsDefinition(t *testing.T) {
	forward := mustParse(t, `struct Point;`)
	s, ok := forward.Declarations[0].(*ast.StructDeclaration)
	if !ok {
		t.Fatalf("expected *ast.StructDeclaration, got %T", forward.Declarations[0])
	}
	if s.HasBody {
		t.Error("forward declaration should have HasBody = false")
	}
	if s.IsDefinition() {
		t.Error("forward declaration should not report IsDefinition() = true")
	}

	def := mustParse(t, `struct Point { int x; int y; };`)
	s, ok = def.Declarations[0].(*ast.StructDeclaration)
	if !ok {
		t.Fatalf("expected *ast.StructDeclaration, got %T", def.Declarations[0])
	}
	if !s.HasBody {
		t.Error("definition should have HasBody = true")
	}
	if !s.IsDefinition() {
		t.Error("definition should report IsDefinition() = true")
	}
	if len(s.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(s.Fields))
	}

	empty := mustParse(t, `struct Empty {};`)
	s, ok = empty.Declarations[0].(*ast.StructDeclaration)
	if !ok {
		t.Fatalf("expected *ast.StructDeclaration, got %T", empty.Declarations[0])
	}
	if !s.HasBody {
		t.Error("an empty-body struct is still a definition, not a forward declaration")
	}
	if len(s.Fields) != 0 {
		t.Errorf("expected 0 fields, got %d", len(s.Fields))
	}
}

func TestParseStructTypedVariableAndPointer(t *testing.T) {
	prog := mustParse(t, `struct Point* origin;`)
	v, ok := prog.Declarations[0].(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable, got %T", prog.Declarations[0])
	}
	ptr, ok := v.Type.(*ast.PointerType)
	if !ok {
		t.Fatalf("expected *ast.PointerType, got %T", v.Type)
	}
	named, ok := ptr.Base.(*ast.NamedType)
	if !ok {
		t.Fatalf("expected base *ast.NamedType, got %T", ptr.Base)
	}
	if named.Name != "Point" {
		t.Errorf("named type = %q, want %q", named.Name, "Point")
	}

	bare := mustParse(t, `struct Point origin;`)
	v, ok = bare.Declarations[0].(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable, got %T", bare.Declarations[0])
	}
	if _, ok := v.Type.(*ast.NamedType); !ok {
		t.Fatalf("expected *ast.NamedType, got %T", v.Type)
	}
}

func TestParseStructFieldOfStructType(t *testing.T) {
	prog := mustParse(t, `struct Outer { struct Inner f; };`)
	s, ok := prog.Declarations[0].(*ast.StructDeclaration)
	if !ok {
		t.Fatalf("expected *ast.StructDeclaration, got %T", prog.Declarations[0])
	}
	if len(s.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(s.Fields))
	}
	named, ok := s.Fields[0].Type.(*ast.NamedType)
	if !ok {
		t.Fatalf("expected field type *ast.NamedType, got %T", s.Fields[0].Type)
	}
	if named.Name != "Inner" {
		t.Errorf("named type = %q, want %q", named.Name, "Inner")
	}
}

func TestParseLocalStructTypedDeclaration(t *testing.T) {
	prog := mustParse(t, `int f() { struct Point p; return 0; }`)
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	v, ok := fn.Body.Statements[0].(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable, got %T", fn.Body.Statements[0])
	}
	if _, ok := v.Type.(*ast.NamedType); !ok {
		t.Fatalf("expected *ast.NamedType, got %T", v.Type)
	}
}

func TestParseVoidPointerVariable(t *testing.T) {
	prog := mustParse(t, `void* p;`)
	v, ok := prog.Declarations[0].(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable, got %T", prog.Declarations[0])
	}
	ptr, ok := v.Type.(*ast.PointerType)
	if !ok {
		t.Fatalf("expected *ast.PointerType, got %T", v.Type)
	}
	base, ok := ptr.Base.(*ast.PrimitiveType)
	if !ok || base.Kind != ast.PrimitiveVoid {
		t.Fatalf("expected base PrimitiveType(void), got %+v", ptr.Base)
	}
}

func TestParseFunctionPointerTypedef(t *testing.T) {
	prog := mustParse(t, `typedef int (*BinOp)(int, int);`)
	fp, ok := prog.Declarations[0].(*ast.FunctionPointerDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionPointerDeclaration, got %T", prog.Declarations[0])
	}
	if fp.Name.Value != "BinOp" {
		t.Errorf("name = %q, want BinOp", fp.Name.Value)
	}
	if len(fp.ParameterTypes) != 2 {
		t.Fatalf("expected 2 parameter types, got %d", len(fp.ParameterTypes))
	}
	for i, pt := range fp.ParameterTypes {
		if _, ok := pt.(*ast.PrimitiveType); !ok {
			t.Errorf("parameter type %d = %T, want *ast.PrimitiveType", i, pt)
		}
	}
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	prog := mustParse(t, `int f() {
		if (a)
			if (b)
				return 1;
			else
				return 2;
		return 0;
	}`)
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	outer, ok := fn.Body.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", fn.Body.Statements[0])
	}
	inner, ok := outer.Consequence.(*ast.If)
	if !ok {
		t.Fatalf("expected the consequence to be a nested *ast.If, got %T", outer.Consequence)
	}
	if inner.Alternative == nil {
		t.Fatal("expected the else clause to bind to the nearest if")
	}
	if outer.Alternative != nil {
		t.Error("the outer if must not receive the else clause")
	}
}

func TestParseSwitchWithDefault(t *testing.T) {
	prog := mustParse(t, `int f() {
		switch (x) {
		case 1:
			break;
		case 2:
			break;
		default:
			break;
		}
	}`)
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	sw, ok := fn.Body.Statements[0].(*ast.Switch)
	if !ok {
		t.Fatalf("expected *ast.Switch, got %T", fn.Body.Statements[0])
	}
	assert.Equal(t, 3, len(sw.Cases), "expected 3 cases")
	assert.Equal(t, int64(1), sw.Cases[0].Value)
	assert.Equal(t, int64(2), sw.Cases[1].Value)
	assert.True(t, sw.Cases[2].IsDefault, "expected the last case to be the default")
	assert.False(t, sw.Cases[0].IsDefault)
}

func TestParseSwitchRejectsDuplicateDefault(t *testing.T) {
	l := lexer.New("test.c", `int f() {
		switch (x) {
		default:
			break;
		default:
			break;
		}
	}`)
	_, err := ParseProgram(l)
	if err == nil {
		t.Fatal("expected an error for a duplicate default case")
	}
	perr, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected *ParserError, got %T", err)
	}
	if perr.Code != ErrDuplicateDefault {
		t.Errorf("error code = %s, want %s", perr.Code, ErrDuplicateDefault)
	}
}

func TestParseMultipleSiblingDeclarations(t *testing.T) {
	prog := mustParse(t, `int a, int* b, double c = 1.5;`)
	m, ok := prog.Declarations[0].(*ast.MultipleDeclaration)
	if !ok {
		t.Fatalf("expected *ast.MultipleDeclaration, got %T", prog.Declarations[0])
	}
	if len(m.Declarations) != 3 {
		t.Fatalf("expected 3 sibling declarations, got %d", len(m.Declarations))
	}
	if _, ok := m.Declarations[1].Type.(*ast.PointerType); !ok {
		t.Errorf("second sibling type = %T, want *ast.PointerType", m.Declarations[1].Type)
	}
	if m.Declarations[2].Init == nil {
		t.Error("third sibling should carry an initializer")
	}
}

func TestParseRejectsNestedFunctionDeclaration(t *testing.T) {
	l := lexer.New("test.c", `int f() { int g(int x); }`)
	_, err := ParseProgram(l)
	if err == nil {
		t.Fatal("expected an error for a nested function declaration")
	}
	perr, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected *ParserError, got %T", err)
	}
	if perr.Code != ErrNestedFunction {
		t.Errorf("error code = %s, want %s", perr.Code, ErrNestedFunction)
	}
}

func TestParseRejectsBareVoidDeclaration(t *testing.T) {
	l := lexer.New("test.c", `void x;`)
	_, err := ParseProgram(l)
	if err == nil {
		t.Fatal("expected an error for a bare void declaration")
	}
	perr, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected *ParserError, got %T", err)
	}
	if perr.Code != ErrInvalidVoidDecl {
		t.Errorf("error code = %s, want %s", perr.Code, ErrInvalidVoidDecl)
	}
}

func TestParseAdditiveIsLeftAssociative(t *testing.T) {
	prog := mustParse(t, `int f() { return a - b - c; }`)
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	ret := fn.Body.Statements[0].(*ast.Return)
	outer, ok := ret.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpression, got %T", ret.Value)
	}
	if outer.Operator != ast.OpSub {
		t.Fatalf("outer operator = %v, want OpSub", outer.Operator)
	}
	inner, ok := outer.Left.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected left-associative nesting on the left operand, got %T", outer.Left)
	}
	if inner.Operator != ast.OpSub {
		t.Errorf("inner operator = %v, want OpSub", inner.Operator)
	}
}

func TestParseNoBinaryMultiplicativeLevel(t *testing.T) {
	prog := mustParse(t, `int f() { return a + *b; }`)
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	ret := fn.Body.Statements[0].(*ast.Return)
	bin, ok := ret.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpression, got %T", ret.Value)
	}
	if bin.Operator != ast.OpAdd {
		t.Errorf("operator = %v, want OpAdd", bin.Operator)
	}
	unary, ok := bin.Right.(*ast.UnaryExpression)
	if !ok {
		t.Fatalf("expected the right operand to be a UnaryExpression (deref), got %T", bin.Right)
	}
	if unary.Operator != ast.OpDeref {
		t.Errorf("unary operator = %v, want OpDeref", unary.Operator)
	}
}

func TestParseItemSingleDeclaration(t *testing.T) {
	l := lexer.New("<repl>", `int x = 5;`)
	decl, err := ParseItem(l)
	if err != nil {
		t.Fatalf("ParseItem() error = %v", err)
	}
	if _, ok := decl.(*ast.Variable); !ok {
		t.Fatalf("expected *ast.Variable, got %T", decl)
	}
}

func TestParseFirstFaultIsSticky(t *testing.T) {
	l := lexer.New("test.c", `int x = ;`)
	p, err := New(l)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = p.parseProgramItem()
	if err == nil {
		t.Fatal("expected a parse error")
	}
	// Once dead, every further call must return the same error instead
	// of attempting to continue parsing.
	if _, err2 := p.expect(lexer.SEMI, "';'"); err2 != err {
		t.Errorf("expected the sticky error to be returned unchanged, got %v", err2)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ast.Variable:
		return "*ast.Variable"
	case *ast.FunctionDeclaration:
		return "*ast.FunctionDeclaration"
	case *ast.StructDeclaration:
		return "*ast.StructDeclaration"
	case *ast.FunctionPointerDeclaration:
		return "*ast.FunctionPointerDeclaration"
	case *ast.MultipleDeclaration:
		return "*ast.MultipleDeclaration"
	default:
		return "unknown"
	}
}
