package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tinycc/frontend/internal/lexer"
	"github.com/tinycc/frontend/internal/parser"
	"github.com/tinycc/frontend/pkg/dump"
	"github.com/tinycc/frontend/pkg/jsonenc"
)

var (
	parseCompact bool
	parseDump    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a TinyC file and emit its AST as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "emit compact JSON instead of pretty")
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "print an indented debug dump instead of JSON")
}

func runParse(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		exitWithError("Error: ", "%v", err)
		return errAlreadyReported
	}

	l := lexer.New(filename, string(content))
	program, err := parser.ParseProgram(l)
	if err != nil {
		if _, ok := err.(*lexer.LexerError); ok {
			exitWithError("Lexer error: ", "%v", err)
		} else {
			exitWithError("Parser error: ", "%v", err)
		}
		return errAlreadyReported
	}

	if parseDump {
		dump.Program(os.Stdout, program)
		return nil
	}

	mode := jsonenc.Pretty
	if parseCompact {
		mode = jsonenc.Compact
	}
	if err := jsonenc.EncodeProgram(os.Stdout, program, mode); err != nil {
		exitWithError("Error: ", "%v", err)
		return errAlreadyReported
	}
	os.Stdout.Write([]byte("\n"))
	return nil
}
