// Package dump renders an AST to an indented, human-readable text
// stream for diagnostics. There are no stability guarantees on the
// output shape, unlike pkg/jsonenc.
package dump

import (
	"fmt"
	"io"

	"github.com/tinycc/frontend/internal/ast"
)

// Program writes an indented dump of prog to w.
func Program(w io.Writer, prog *ast.Program) {
	d := &dumper{w: w}
	d.printf(0, "Program (%d declarations)\n", len(prog.Declarations))
	for _, decl := range prog.Declarations {
		d.node(1, decl)
	}
}

// Node writes an indented dump of a single node to w, starting at the
// top level. Used by the REPL to echo one parsed item at a time.
func Node(w io.Writer, n ast.Node) {
	(&dumper{w: w}).node(0, n)
}

type dumper struct {
	w io.Writer
}

func (d *dumper) printf(indent int, format string, args ...any) {
	for i := 0; i < indent; i++ {
		fmt.Fprint(d.w, "  ")
	}
	fmt.Fprintf(d.w, format, args...)
}

// node type-switches over every concrete node kind and recurses into
// children with labeled sections, matching the teacher's
// dumpASTNode convention.
func (d *dumper) node(indent int, n ast.Node) {
	switch v := n.(type) {
	case *ast.PrimitiveType:
		d.printf(indent, "Primitive: %s\n", v.Kind)
	case *ast.NamedType:
		d.printf(indent, "Named: struct %s\n", v.Name)
	case *ast.PointerType:
		d.printf(indent, "Pointer\n")
		d.printf(indent+1, "Base:\n")
		d.node(indent+2, v.Base)

	case *ast.Identifier:
		d.printf(indent, "Identifier: %s\n", v.Value)
	case *ast.Literal:
		d.printf(indent, "Literal (%s): %s\n", v.Kind, v.Value)
	case *ast.BinaryExpression:
		d.printf(indent, "BinaryExpression (%s)\n", v.Operator)
		d.printf(indent+1, "Left:\n")
		d.node(indent+2, v.Left)
		d.printf(indent+1, "Right:\n")
		d.node(indent+2, v.Right)
	case *ast.UnaryExpression:
		d.printf(indent, "UnaryExpression (%s, prefix=%v)\n", v.Operator, v.Prefix)
		d.node(indent+1, v.Operand)
	case *ast.CastExpression:
		d.printf(indent, "CastExpression\n")
		d.printf(indent+1, "TargetType:\n")
		d.node(indent+2, v.TargetType)
		d.printf(indent+1, "Expr:\n")
		d.node(indent+2, v.Expr)
	case *ast.CallExpression:
		d.printf(indent, "CallExpression (%d args)\n", len(v.Arguments))
		d.printf(indent+1, "Callee:\n")
		d.node(indent+2, v.Callee)
		for _, a := range v.Arguments {
			d.node(indent+1, a)
		}
	case *ast.IndexExpression:
		d.printf(indent, "IndexExpression\n")
		d.printf(indent+1, "Array:\n")
		d.node(indent+2, v.Array)
		d.printf(indent+1, "Index:\n")
		d.node(indent+2, v.Index)
	case *ast.MemberExpression:
		d.printf(indent, "MemberExpression (%s %s)\n", v.Kind, v.Member)
		d.node(indent+1, v.Object)
	case *ast.CommaExpression:
		d.printf(indent, "CommaExpression (%d)\n", len(v.Expressions))
		for _, e := range v.Expressions {
			d.node(indent+1, e)
		}

	case *ast.Block:
		d.printf(indent, "Block (%d statements)\n", len(v.Statements))
		for _, s := range v.Statements {
			d.node(indent+1, s)
		}
	case *ast.ExpressionStatement:
		d.printf(indent, "ExpressionStatement\n")
		if v.Expr != nil {
			d.node(indent+1, v.Expr)
		}
	case *ast.If:
		d.printf(indent, "If\n")
		d.printf(indent+1, "Condition:\n")
		d.node(indent+2, v.Condition)
		d.printf(indent+1, "Then:\n")
		d.node(indent+2, v.Consequence)
		if v.Alternative != nil {
			d.printf(indent+1, "Else:\n")
			d.node(indent+2, v.Alternative)
		}
	case *ast.While:
		d.printf(indent, "While\n")
		d.printf(indent+1, "Condition:\n")
		d.node(indent+2, v.Condition)
		d.printf(indent+1, "Body:\n")
		d.node(indent+2, v.Body)
	case *ast.DoWhile:
		d.printf(indent, "DoWhile\n")
		d.printf(indent+1, "Body:\n")
		d.node(indent+2, v.Body)
		d.printf(indent+1, "Condition:\n")
		d.node(indent+2, v.Condition)
	case *ast.For:
		d.printf(indent, "For\n")
		if v.Init != nil {
			d.printf(indent+1, "Init:\n")
			d.node(indent+2, v.Init)
		}
		if v.Condition != nil {
			d.printf(indent+1, "Condition:\n")
			d.node(indent+2, v.Condition)
		}
		if v.Update != nil {
			d.printf(indent+1, "Update:\n")
			d.node(indent+2, v.Update)
		}
		d.printf(indent+1, "Body:\n")
		d.node(indent+2, v.Body)
	case *ast.Switch:
		d.printf(indent, "Switch\n")
		d.printf(indent+1, "Expr:\n")
		d.node(indent+2, v.Expr)
		for _, c := range v.Cases {
			if c.IsDefault {
				d.printf(indent+1, "Case default:\n")
			} else {
				d.printf(indent+1, "Case %d:\n", c.Value)
			}
			for _, s := range c.Statements {
				d.node(indent+2, s)
			}
		}
	case *ast.Break:
		d.printf(indent, "Break\n")
	case *ast.Continue:
		d.printf(indent, "Continue\n")
	case *ast.Return:
		d.printf(indent, "Return\n")
		if v.Value != nil {
			d.node(indent+1, v.Value)
		}

	case *ast.Variable:
		d.printf(indent, "Variable: %s\n", v.Name.Value)
		d.printf(indent+1, "Type:\n")
		d.node(indent+2, v.Type)
		if v.ArraySize != nil {
			d.printf(indent+1, "ArraySize:\n")
			d.node(indent+2, v.ArraySize)
		}
		if v.Init != nil {
			d.printf(indent+1, "Init:\n")
			d.node(indent+2, v.Init)
		}
	case *ast.Parameter:
		d.printf(indent, "Parameter: %s\n", v.Name.Value)
		d.node(indent+1, v.Type)
	case *ast.FunctionDeclaration:
		d.printf(indent, "FunctionDeclaration: %s (isDefinition=%v)\n", v.Name.Value, v.IsDefinition())
		d.printf(indent+1, "ReturnType:\n")
		d.node(indent+2, v.ReturnType)
		for _, p := range v.Parameters {
			d.node(indent+1, p)
		}
		if v.Body != nil {
			d.printf(indent+1, "Body:\n")
			d.node(indent+2, v.Body)
		}
	case *ast.StructDeclaration:
		d.printf(indent, "StructDeclaration: %s (isDefinition=%v)\n", v.Name.Value, v.IsDefinition())
		for _, f := range v.Fields {
			d.node(indent+1, f)
		}
	case *ast.FunctionPointerDeclaration:
		d.printf(indent, "FunctionPointerDeclaration: %s\n", v.Name.Value)
		d.printf(indent+1, "ReturnType:\n")
		d.node(indent+2, v.ReturnType)
		for _, t := range v.ParameterTypes {
			d.node(indent+1, t)
		}
	case *ast.MultipleDeclaration:
		d.printf(indent, "MultipleDeclaration (%d)\n", len(v.Declarations))
		for _, vd := range v.Declarations {
			d.node(indent+1, vd)
		}

	default:
		fmt.Fprintf(d.w, "%s%T: %s\n", indentOf(indent), n, n.String())
	}
}

func indentOf(indent int) string {
	s := ""
	for i := 0; i < indent; i++ {
		s += "  "
	}
	return s
}
