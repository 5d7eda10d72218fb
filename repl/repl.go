// Package repl implements the Read-Eval-Print Loop for the genz
// interpreter: an interactive prompt backed by chzyer/readline for line
// editing and history, and fatih/color for feedback coloring.
//
// This keeps go-mix/repl/repl.go's shape (Repl struct, NewRepl,
// PrintBannerInfo, Start, executeWithRecovery, the five-color scheme) but
// drives it through package interp's Session instead of constructing a
// parser/evaluator pair inline — one Evaluator, and so one set of globals
// and functions, persists across every line typed, exactly as go-mix's did.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/genzlang/genz/interp"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given banner, version, author,
// separator line, license, and prompt string.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to genz!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until '.exit' or
// EOF. Each accepted line is run against the same interp.Session, so
// variables and functions declared on one line stay visible on the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := interp.NewSession()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, session)
	}
}

// executeWithRecovery runs one line against session, recovering from any
// panic so a single bad line can't bring down the whole REPL.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, session *interp.Session) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	output, err := session.Eval(line)
	if output != "" {
		yellowColor.Fprint(writer, output)
	}
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
