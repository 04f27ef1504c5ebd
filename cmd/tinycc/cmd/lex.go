package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinycc/frontend/internal/lexer"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a TinyC file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLex(args[0])
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func runLex(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		exitWithError("Error: ", "%v", err)
		return errAlreadyReported
	}

	l := lexer.New(filename, string(content))
	for {
		tok, err := l.Next()
		if err != nil {
			exitWithError("Lexer error: ", "%v", err)
			return errAlreadyReported
		}
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}

func printToken(tok lexer.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-14s]", tok.Type)
	}
	if tok.Type == lexer.EOF {
		out += " EndOfFile"
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
