package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	lexMode   bool
	parseMode bool
)

// errAlreadyReported signals runRoot already printed a message to
// stderr; Execute returns a non-nil error so main exits 1 without
// cobra printing its own duplicate diagnostic.
var errAlreadyReported = fmt.Errorf("tinycc: command failed")

var rootCmd = &cobra.Command{
	Use:   "tinycc [file]",
	Short: "TinyC compiler frontend",
	Long: `tinycc lexes and parses TinyC source into a schema-stable AST.

With no arguments it starts an interactive REPL that lexes and parses
one top-level item per line. With a file argument and --lex/-l it
tokenizes the file; with --parse/-p it parses the file and emits JSON.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().BoolVarP(&lexMode, "lex", "l", false, "tokenize the given file")
	rootCmd.Flags().BoolVarP(&parseMode, "parse", "p", false, "parse the given file and emit JSON")
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case lexMode && parseMode:
		exitWithError("Error: ", "--lex and --parse are mutually exclusive")
		return errAlreadyReported
	case lexMode:
		if len(args) != 1 {
			exitWithError("Error: ", "--lex requires exactly one file argument")
			return errAlreadyReported
		}
		return runLex(args[0])
	case parseMode:
		if len(args) != 1 {
			exitWithError("Error: ", "--parse requires exactly one file argument")
			return errAlreadyReported
		}
		return runParse(args[0])
	case len(args) == 0:
		runRepl()
		return nil
	default:
		exitWithError("Error: ", "unexpected argument %q; pass --lex or --parse to process a file", args[0])
		return errAlreadyReported
	}
}

// exitWithError writes a prefixed diagnostic to stderr, matching the
// teacher's `Error: ` convention generalized to the frontend's own
// `Lexer error: ` / `Parser error: ` prefixes.
func exitWithError(prefix, format string, args ...any) {
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
