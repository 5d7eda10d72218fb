// Package cmd wires the genz CLI with spf13/cobra, grounded on
// CWBudde-go-dws/cmd/dwscript/cmd: a root command carrying shared
// constants (banner, version, author, license) plus one subcommand per
// mode — run, repl, serve, version — mirroring go-mix/main/main.go's
// argument dispatch (file / server <port> / --help / --version / bare)
// but expressed as cobra subcommands and flags instead of a hand-rolled
// os.Args switch.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/genzlang/genz/repl"
)

const (
	banner = `
    ▄▄▄▄                       ▄▄▄▄    ▄▄▄▄▄ ▄▄    ▄▄
  ██▀▀▀▀█                      ██  █   ██▄▄▄ ██    ██
 ██         ▄████▄             ██▄▄█   ██    ██    ██
 ██  ▄▄▄▄  ██▀  ▀██   █████    ██ ██    ██    ███████
 ██  ▀▀██  ██    ██            ██  █▄   ██         ██
  ██▄▄▄██  ▀██▄▄██▀            ██▄▄▄█   ▀▀▀▀▀      ██
    ▀▀▀▀     ▀▀▀▀
`
	line = "----------------------------------------------------------------"
)

var (
	// Version, Author, and License are reported by `genz version` and the
	// REPL banner; overridable at link time with -ldflags.
	Version = "v0.1.0"
	Author  = "genzlang"
	License = "MIT"

	prompt = "genz >>> "
)

var rootCmd = &cobra.Command{
	Use:     "genz",
	Short:   "genz is an interpreter for the genz scripting language",
	Long:    banner + "\ngenz is a tree-walking interpreter for a small, slang-flavored scripting language.",
	Version: Version,
	// A bare `genz` with no subcommand starts the REPL, matching
	// go-mix/main/main.go's no-args behavior.
	RunE: func(cmdd *cobra.Command, args []string) error {
		r := repl.NewRepl(banner, Version, Author, line, License, prompt)
		r.Start(os.Stdin, os.Stdout)
		return nil
	},
}

// Execute runs the root command, exiting non-zero and printing in red on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		os.Exit(1)
	}
}
