package main

import (
	"fmt"

	"shellkit/internal/jsonfield"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var readPath string

// readRegionCmd prints a field from a JSON document
var readRegionCmd = &cobra.Command{
	Use:     "read-region <file>",
	Aliases: []string{"read_region"},
	Short:   "Print the service.region string from a JSON file",
	Long: `Reads a JSON document and prints the string at the dotted path
service.region. A missing file, malformed JSON, or an absent or
non-string field exits nonzero.`,
	Args: cobra.ExactArgs(1),
	RunE: runReadRegion,
}

func init() {
	readRegionCmd.Flags().StringVar(&readPath, "path", "service.region", "Dotted path of the field to read")
}

func runReadRegion(cmd *cobra.Command, args []string) error {
	logger.Debug("Reading JSON field",
		zap.String("file", args[0]),
		zap.String("path", readPath))

	value, err := jsonfield.ReadFile(args[0], readPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
