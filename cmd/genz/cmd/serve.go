// serve.go is the SPEC_FULL.md supplement grounded on
// go-mix/main/main.go's startServer/handleClient: a TCP-exposed REPL, one
// independent interp.Session per connection, so a remote collaborator can
// open a socket and get the same read-eval-print loop a local terminal
// gets.
package cmd

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/genzlang/genz/repl"
)

var serveCmd = &cobra.Command{
	Use:   "serve <port>",
	Short: "Serve the genz REPL over TCP, one session per connection",
	Args:  cobra.ExactArgs(1),
	RunE:  serveRepl,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serveRepl(cmdd *cobra.Command, args []string) error {
	port := args[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("starting server on port %s: %w", port, err)
	}
	defer listener.Close()

	cyan := color.New(color.FgCyan)
	cyan.Printf("genz REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyan := color.New(color.FgCyan)
	cyan.Printf("client connected from %s\n", conn.RemoteAddr())

	r := repl.NewRepl(banner, Version, Author, line, License, prompt)
	r.Start(conn, conn)

	cyan.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
