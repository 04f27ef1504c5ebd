package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/tinycc/frontend/internal/lexer"
	"github.com/tinycc/frontend/internal/parser"
	"github.com/tinycc/frontend/pkg/dump"
)

var (
	replBlue   = color.New(color.FgBlue)
	replYellow = color.New(color.FgYellow)
	replRed    = color.New(color.FgRed)
	replGreen  = color.New(color.FgGreen)
)

const replLine = "----------------------------------------"

// runRepl starts the interactive loop: each line is lexed and parsed
// as one top-level program item and echoed via the debug dumper.
func runRepl() {
	replBlue.Println(replLine)
	replGreen.Println("tinycc " + Version + " — interactive TinyC frontend")
	replBlue.Println(replLine)
	replYellow.Println("Type a declaration and press enter; '.exit' to quit.")
	replBlue.Println(replLine)

	rl, err := readline.New("tinycc> ")
	if err != nil {
		replRed.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Goodbye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Goodbye!")
			return
		}
		rl.SaveHistory(line)
		replEval(line)
	}
}

func replEval(line string) {
	l := lexer.New("<repl>", line)
	item, err := parser.ParseItem(l)
	if err != nil {
		replRed.Printf("%v\n", err)
		return
	}
	dump.Node(os.Stdout, item)
}
