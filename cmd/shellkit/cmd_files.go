package main

import (
	"fmt"

	"shellkit/internal/bigfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filesDir     string
	filesMinSize int64
)

// largeFilesCmd lists files above a size threshold
var largeFilesCmd = &cobra.Command{
	Use:     "large-files",
	Aliases: []string{"list-large-files"},
	Short:   "List regular files strictly larger than 1 MiB",
	Long: `Enumerates regular files in the current directory, excluding
subdirectories, and prints the name of each file strictly larger than
the threshold (1,048,576 bytes unless overridden).`,
	Args: cobra.NoArgs,
	RunE: runLargeFiles,
}

func init() {
	largeFilesCmd.Flags().StringVar(&filesDir, "dir", ".", "Directory to scan")
	largeFilesCmd.Flags().Int64Var(&filesMinSize, "min-size", 0, "Size threshold in bytes (default 1048576)")
}

func runLargeFiles(cmd *cobra.Command, args []string) error {
	minSize := filesMinSize
	if !cmd.Flags().Changed("min-size") {
		minSize = cfg.Files.MinSize
	}

	logger.Debug("Listing large files",
		zap.String("dir", filesDir),
		zap.Int64("min_size", minSize))

	names, err := bigfile.List(filesDir, minSize)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
