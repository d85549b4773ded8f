package main

import (
	"fmt"

	"shellkit/internal/greet"

	"github.com/spf13/cobra"
)

var greetName string

// greetCmd prints a greeting, the flag-parsing example
var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print Hello, NAME (default: world)",
	Args:  cobra.NoArgs,
	RunE:  runGreet,
}

func init() {
	greetCmd.Flags().StringVar(&greetName, "name", "", "Name to greet (default \"world\")")
}

func runGreet(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), greet.Greeting(greetName))
	return nil
}
