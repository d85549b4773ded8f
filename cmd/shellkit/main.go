package main

import (
	"errors"
	"fmt"
	"os"

	"shellkit/internal/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// errReported marks errors the command has already written to stderr
// itself; main exits nonzero without printing them again.
var errReported = errors.New("reported")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shellkit",
	Short: "Bash/Python scripting cheat sheet and its example scripts in one binary",
	Long: `shellkit bundles a Bash-vs-Python idiom cheat sheet with working
versions of its example scripts.

The sheet command renders the cheat sheet in the terminal; the remaining
commands are the sheet's illustrative scripts made real: counting error
lines, reading a JSON field, listing large files, greeting by flag, and
checking a URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.With(zap.String("run_id", uuid.NewString()))

		// Load configuration
		path := cfgPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		logger.Debug("Configuration loaded", zap.String("path", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/shellkit/config.yaml)")

	rootCmd.AddCommand(countErrorCmd)
	rootCmd.AddCommand(readRegionCmd)
	rootCmd.AddCommand(largeFilesCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(checkURLCmd)
	rootCmd.AddCommand(sheetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
