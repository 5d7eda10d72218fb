package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/genzlang/genz/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive genz REPL",
	RunE: func(cmdd *cobra.Command, args []string) error {
		r := repl.NewRepl(banner, Version, Author, line, License, prompt)
		r.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
