package dump_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tinycc/frontend/internal/lexer"
	"github.com/tinycc/frontend/internal/parser"
	"github.com/tinycc/frontend/pkg/dump"
)

func TestProgramDumpsEveryDeclaration(t *testing.T) {
	l := lexer.New("fixture.c", `int x; int add(int a, int b) { return a + b; }`)
	prog, err := parser.ParseProgram(l)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	var buf bytes.Buffer
	dump.Program(&buf, prog)
	out := buf.String()

	for _, want := range []string{"Program (2 declarations)", "Variable: x", "FunctionDeclaration: add"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q, got:\n%s", want, out)
		}
	}
}

func TestNodeDumpsSingleItem(t *testing.T) {
	l := lexer.New("<repl>", `int x = 5;`)
	item, err := parser.ParseItem(l)
	if err != nil {
		t.Fatalf("ParseItem() error = %v", err)
	}
	var buf bytes.Buffer
	dump.Node(&buf, item)
	if !strings.Contains(buf.String(), "Variable: x") {
		t.Errorf("expected dump to mention the variable, got:\n%s", buf.String())
	}
}
