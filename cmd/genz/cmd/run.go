// run.go is grounded on CWBudde-go-dws/cmd/dwscript/cmd/run.go's
// file-or-eval-string handling and --dump-ast flag, narrowed to what
// this language actually needs (no unit system, no separate type-check
// pass).
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/genzlang/genz/interp"
	"github.com/genzlang/genz/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a genz source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate a snippet of source instead of a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "parse only, and report the top-level statement count")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmdd *cobra.Command, args []string) error {
	source, err := sourceFor(args)
	if err != nil {
		return err
	}

	if dumpAST {
		p := parser.New(source)
		prog := p.ParseProgram()
		if p.HasErrors() {
			for _, e := range p.Errors {
				fmt.Fprintln(os.Stderr, color.RedString("%s", e))
			}
			os.Exit(1)
		}
		fmt.Printf("%d top-level statement(s)\n", len(prog.Statements))
		return nil
	}

	output, err := interp.Execute(source)
	if output != "" {
		fmt.Fprint(os.Stdout, output)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		os.Exit(1)
	}
	return nil
}

func sourceFor(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("run requires a file path or --eval")
}
