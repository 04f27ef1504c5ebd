// Package jsonenc serializes an AST Program to the project's
// schema-stable JSON form. Field order is fixed per node kind so the
// emitter is bit-stable for a given input and mode, matching the
// writer-based output convention the teacher's cmd package uses for
// every formatted command.
package jsonenc

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/tinycc/frontend/internal/ast"
	"github.com/tinycc/frontend/internal/lexer"
)

// Mode selects compact (no extra whitespace) or pretty (two-space
// indented, newline per field) output.
type Mode int

const (
	Compact Mode = iota
	Pretty
)

// EncodeProgram writes prog to w as a single JSON document in the
// given mode.
func EncodeProgram(w io.Writer, prog *ast.Program, mode Mode) error {
	e := &encoder{mode: mode}
	e.writeProgram(prog)
	_, err := w.Write(e.buf.Bytes())
	return err
}

type encoder struct {
	buf    bytes.Buffer
	mode   Mode
	indent int
}

func (e *encoder) pretty() bool { return e.mode == Pretty }

func (e *encoder) newline() {
	if e.pretty() {
		e.buf.WriteByte('\n')
		for i := 0; i < e.indent; i++ {
			e.buf.WriteString("  ")
		}
	}
}

// objectWriter accumulates field writes for one JSON object, handling
// comma placement and (in pretty mode) indentation and newlines.
type objectWriter struct {
	e     *encoder
	count int
}

func (e *encoder) beginObject() *objectWriter {
	e.buf.WriteByte('{')
	e.indent++
	return &objectWriter{e: e}
}

func (o *objectWriter) field(name string) {
	if o.count > 0 {
		o.e.buf.WriteByte(',')
	}
	o.count++
	o.e.newline()
	o.e.buf.WriteByte('"')
	o.e.buf.WriteString(name)
	o.e.buf.WriteString(`":`)
	if o.e.pretty() {
		o.e.buf.WriteByte(' ')
	}
}

func (o *objectWriter) end() {
	o.e.indent--
	if o.count > 0 {
		o.e.newline()
	}
	o.e.buf.WriteByte('}')
}

func (e *encoder) writeString(s string) {
	e.buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.buf.WriteString(`\"`)
		case '\\':
			e.buf.WriteString(`\\`)
		case '\b':
			e.buf.WriteString(`\b`)
		case '\f':
			e.buf.WriteString(`\f`)
		case '\n':
			e.buf.WriteString(`\n`)
		case '\r':
			e.buf.WriteString(`\r`)
		case '\t':
			e.buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&e.buf, `\u%04x`, r)
			} else {
				e.buf.WriteRune(r)
			}
		}
	}
	e.buf.WriteByte('"')
}

func (e *encoder) writeBool(b bool) {
	if b {
		e.buf.WriteString("true")
	} else {
		e.buf.WriteString("false")
	}
}

func (e *encoder) writeInt(n int64) {
	e.buf.WriteString(strconv.FormatInt(n, 10))
}

// writeArray writes n elements using emit to write each one. writeArray
// itself places the commas and, in pretty mode, the newlines and
// indentation around the elements; emit writes only the element.
func (e *encoder) writeArray(n int, emit func(i int)) {
	e.buf.WriteByte('[')
	if n > 0 {
		e.indent++
		for i := 0; i < n; i++ {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline()
			emit(i)
		}
		e.indent--
		e.newline()
	}
	e.buf.WriteByte(']')
}

func (e *encoder) writeLocation(pos lexer.Position) {
	o := e.beginObject()
	o.field("filename")
	e.writeString(pos.Filename)
	o.field("line")
	e.writeInt(int64(pos.Line))
	o.field("column")
	e.writeInt(int64(pos.Column))
	o.end()
}

func (e *encoder) writeProgram(prog *ast.Program) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("Program")
	o.field("declarations")
	e.writeArray(len(prog.Declarations), func(i int) {
		e.writeDeclaration(prog.Declarations[i])
	})
	o.field("location")
	e.writeLocation(prog.Pos())
	o.end()
}

func (e *encoder) writeDeclaration(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.Variable:
		e.writeVariable(n)
	case *ast.FunctionDeclaration:
		e.writeFunctionDeclaration(n)
	case *ast.StructDeclaration:
		e.writeStructDeclaration(n)
	case *ast.FunctionPointerDeclaration:
		e.writeFunctionPointerDeclaration(n)
	case *ast.MultipleDeclaration:
		e.writeMultipleDeclaration(n)
	default:
		panic(fmt.Sprintf("jsonenc: unhandled declaration type %T", d))
	}
}

func (e *encoder) writeType(t ast.Type) {
	switch n := t.(type) {
	case *ast.PrimitiveType:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Primitive")
		o.field("kind")
		e.writeString(n.Kind.String())
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.NamedType:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Named")
		o.field("name")
		e.writeString(n.Name)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.PointerType:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Pointer")
		o.field("base")
		e.writeType(n.Base)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	default:
		panic(fmt.Sprintf("jsonenc: unhandled type node %T", t))
	}
}

func (e *encoder) writeIdentifier(id *ast.Identifier) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("Identifier")
	o.field("name")
	e.writeString(id.Value)
	o.field("location")
	e.writeLocation(id.Pos())
	o.end()
}

func (e *encoder) writeParameter(p *ast.Parameter) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("Parameter")
	o.field("type")
	e.writeType(p.Type)
	o.field("name")
	e.writeIdentifier(p.Name)
	o.field("location")
	e.writeLocation(p.Pos())
	o.end()
}

func (e *encoder) writeVariable(v *ast.Variable) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("Variable")
	o.field("type")
	e.writeType(v.Type)
	o.field("name")
	e.writeIdentifier(v.Name)
	if v.ArraySize != nil {
		o.field("arraySize")
		e.writeExpression(v.ArraySize)
	}
	if v.Init != nil {
		o.field("init")
		e.writeExpression(v.Init)
	}
	o.field("location")
	e.writeLocation(v.Pos())
	o.end()
}

func (e *encoder) writeFunctionDeclaration(f *ast.FunctionDeclaration) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("FunctionDeclaration")
	o.field("returnType")
	e.writeType(f.ReturnType)
	o.field("name")
	e.writeIdentifier(f.Name)
	o.field("parameters")
	e.writeArray(len(f.Parameters), func(i int) { e.writeParameter(f.Parameters[i]) })
	o.field("isDefinition")
	e.writeBool(f.IsDefinition())
	if f.Body != nil {
		o.field("body")
		e.writeStatement(f.Body)
	}
	o.field("location")
	e.writeLocation(f.Pos())
	o.end()
}

func (e *encoder) writeStructDeclaration(s *ast.StructDeclaration) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("StructDeclaration")
	o.field("name")
	e.writeIdentifier(s.Name)
	o.field("isDefinition")
	e.writeBool(s.IsDefinition())
	o.field("fields")
	e.writeArray(len(s.Fields), func(i int) { e.writeParameter(s.Fields[i]) })
	o.field("location")
	e.writeLocation(s.Pos())
	o.end()
}

func (e *encoder) writeFunctionPointerDeclaration(f *ast.FunctionPointerDeclaration) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("FunctionPointerDeclaration")
	o.field("returnType")
	e.writeType(f.ReturnType)
	o.field("name")
	e.writeIdentifier(f.Name)
	o.field("parameterTypes")
	e.writeArray(len(f.ParameterTypes), func(i int) { e.writeType(f.ParameterTypes[i]) })
	o.field("location")
	e.writeLocation(f.Pos())
	o.end()
}

func (e *encoder) writeMultipleDeclaration(m *ast.MultipleDeclaration) {
	o := e.beginObject()
	o.field("nodeType")
	e.writeString("MultipleDeclaration")
	o.field("declarations")
	e.writeArray(len(m.Declarations), func(i int) { e.writeVariable(m.Declarations[i]) })
	o.field("location")
	e.writeLocation(m.Pos())
	o.end()
}

func (e *encoder) writeExpression(expr ast.Expression) {
	switch n := expr.(type) {
	case *ast.Literal:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Literal")
		o.field("kind")
		e.writeString(n.Kind.String())
		o.field("value")
		e.writeString(n.String())
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.Identifier:
		e.writeIdentifier(n)
	case *ast.BinaryExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("BinaryExpression")
		o.field("operator")
		e.writeString(n.Operator.String())
		o.field("left")
		e.writeExpression(n.Left)
		o.field("right")
		e.writeExpression(n.Right)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.UnaryExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("UnaryExpression")
		o.field("operator")
		e.writeString(n.Operator.String())
		o.field("operand")
		e.writeExpression(n.Operand)
		o.field("prefix")
		e.writeBool(n.Prefix)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.CastExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("CastExpression")
		o.field("targetType")
		e.writeType(n.TargetType)
		o.field("expr")
		e.writeExpression(n.Expr)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.CallExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("CallExpression")
		o.field("callee")
		e.writeExpression(n.Callee)
		o.field("arguments")
		e.writeArray(len(n.Arguments), func(i int) { e.writeExpression(n.Arguments[i]) })
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.IndexExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("IndexExpression")
		o.field("array")
		e.writeExpression(n.Array)
		o.field("index")
		e.writeExpression(n.Index)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.MemberExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("MemberExpression")
		o.field("object")
		e.writeExpression(n.Object)
		o.field("member")
		e.writeString(n.Member)
		o.field("kind")
		e.writeString(n.Kind.String())
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.CommaExpression:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("CommaExpression")
		o.field("expressions")
		e.writeArray(len(n.Expressions), func(i int) { e.writeExpression(n.Expressions[i]) })
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	default:
		panic(fmt.Sprintf("jsonenc: unhandled expression node %T", expr))
	}
}

func (e *encoder) writeStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.Block:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Block")
		o.field("statements")
		e.writeArray(len(n.Statements), func(i int) { e.writeStatement(n.Statements[i]) })
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.ExpressionStatement:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("ExpressionStatement")
		if n.Expr != nil {
			o.field("expression")
			e.writeExpression(n.Expr)
		}
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.If:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("If")
		o.field("condition")
		e.writeExpression(n.Condition)
		o.field("then")
		e.writeStatement(n.Consequence)
		if n.Alternative != nil {
			o.field("else")
			e.writeStatement(n.Alternative)
		}
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.While:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("While")
		o.field("condition")
		e.writeExpression(n.Condition)
		o.field("body")
		e.writeStatement(n.Body)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.DoWhile:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("DoWhile")
		o.field("body")
		e.writeStatement(n.Body)
		o.field("condition")
		e.writeExpression(n.Condition)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.For:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("For")
		if n.Init != nil {
			o.field("init")
			e.writeStatement(n.Init)
		}
		if n.Condition != nil {
			o.field("condition")
			e.writeExpression(n.Condition)
		}
		if n.Update != nil {
			o.field("update")
			e.writeExpression(n.Update)
		}
		o.field("body")
		e.writeStatement(n.Body)
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.Switch:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Switch")
		o.field("expression")
		e.writeExpression(n.Expr)
		o.field("cases")
		e.writeArray(len(n.Cases), func(i int) { e.writeCase(n.Cases[i]) })
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.Break:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Break")
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.Continue:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Continue")
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case *ast.Return:
		o := e.beginObject()
		o.field("nodeType")
		e.writeString("Return")
		if n.Value != nil {
			o.field("expression")
			e.writeExpression(n.Value)
		}
		o.field("location")
		e.writeLocation(n.Pos())
		o.end()
	case ast.Declaration:
		e.writeDeclaration(n)
	default:
		panic(fmt.Sprintf("jsonenc: unhandled statement node %T", s))
	}
}

// writeCase emits a switch case as {isDefault, [value], body} per the
// schema's fixed field order; it has no nodeType or location of its
// own since a Case is a triple embedded in Switch.cases, not an
// independently addressable node.
func (e *encoder) writeCase(c *ast.Case) {
	o := e.beginObject()
	o.field("isDefault")
	e.writeBool(c.IsDefault)
	if !c.IsDefault {
		o.field("value")
		e.writeInt(c.Value)
	}
	o.field("body")
	e.writeArray(len(c.Statements), func(i int) { e.writeStatement(c.Statements[i]) })
	o.end()
}
