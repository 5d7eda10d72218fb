package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmdd *cobra.Command, args []string) {
		fmt.Printf("genz %s\n", Version)
		fmt.Printf("License: %s\n", License)
		fmt.Printf("Author : %s\n", Author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
