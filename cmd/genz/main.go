// Command genz is the CLI entry point for the genz interpreter: run a
// file, evaluate a snippet, start an interactive REPL, or serve the REPL
// over TCP.
package main

import "github.com/genzlang/genz/cmd/genz/cmd"

func main() {
	cmd.Execute()
}
