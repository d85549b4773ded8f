package main

import (
	"fmt"

	"shellkit/internal/count"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var countPattern string

// countErrorCmd counts lines containing a literal pattern
var countErrorCmd = &cobra.Command{
	Use:     "count-error [file...]",
	Aliases: []string{"count_error"},
	Short:   "Count lines containing ERROR in files or standard input",
	Long: `Counts lines containing the pattern as a literal substring, the
grep -c idiom. Reads standard input when no file is given; with several
files the total across all of them is printed.`,
	RunE: runCountError,
}

func init() {
	countErrorCmd.Flags().StringVar(&countPattern, "pattern", "", "Literal substring to match (default \"ERROR\")")
}

func runCountError(cmd *cobra.Command, args []string) error {
	pattern := countPattern
	if pattern == "" {
		pattern = cfg.Count.Pattern
	}

	var n int
	var err error
	if len(args) == 0 {
		logger.Debug("Counting from stdin", zap.String("pattern", pattern))
		n, err = count.Reader(cmd.InOrStdin(), pattern)
	} else {
		logger.Debug("Counting files",
			zap.String("pattern", pattern),
			zap.Int("files", len(args)))
		n, err = count.Files(cmd.Context(), args, pattern)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
