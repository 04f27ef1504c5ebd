package jsonenc_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tinycc/frontend/internal/lexer"
	"github.com/tinycc/frontend/internal/parser"
	"github.com/tinycc/frontend/pkg/jsonenc"
)

func encode(t *testing.T, source string, mode jsonenc.Mode) string {
	t.Helper()
	l := lexer.New("fixture.c", source)
	prog, err := parser.ParseProgram(l)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	var buf bytes.Buffer
	if err := jsonenc.EncodeProgram(&buf, prog, mode); err != nil {
		t.Fatalf("EncodeProgram() error = %v", err)
	}
	return buf.String()
}

func TestEncodeProgramSnapshots(t *testing.T) {
	fixtures := []struct {
		name   string
		source string
	}{
		{"function_definition", `int add(int a, int b) { return a + b; }`},
		{"struct_and_pointer", `struct Point { int x; int y; }; struct Point* origin;`},
		{"control_flow", `int f(int n) {
			if (n < 0)
				return -1;
			else
				return 1;
			while (n > 0) { n = n - 1; }
			return n;
		}`},
		{"switch_statement", `int f(int x) {
			switch (x) {
			case 1:
				return 1;
			case 2:
				return 2;
			default:
				return 0;
			}
		}`},
		{"function_pointer_typedef", `typedef int (*BinOp)(int, int);`},
		{"multiple_declaration", `int a, int* b, double c = 1.5;`},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			out := encode(t, f.source, jsonenc.Pretty)
			snaps.MatchSnapshot(t, out)
		})
	}
}

func TestEncodeProgramIsDeterministic(t *testing.T) {
	source := `int add(int a, int b) { return a + b; }`
	first := encode(t, source, jsonenc.Pretty)
	second := encode(t, source, jsonenc.Pretty)
	if first != second {
		t.Fatalf("two encodings of the same program differ:\n%s\n---\n%s", first, second)
	}
}

func TestEncodeProgramCompactHasNoWhitespace(t *testing.T) {
	out := encode(t, `int x;`, jsonenc.Compact)
	for _, r := range out {
		if r == '\n' || r == ' ' || r == '\t' {
			t.Fatalf("compact output contains whitespace: %q", out)
		}
	}
}

func TestEncodeProgramFieldOrderIsFixed(t *testing.T) {
	out := encode(t, `int x = 1;`, jsonenc.Compact)
	wantPrefix := `{"nodeType":"Program","declarations":[{"nodeType":"Variable","type":`
	if !bytes.HasPrefix([]byte(out), []byte(wantPrefix)) {
		t.Fatalf("unexpected field order, got:\n%s", out)
	}
}
