package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"shellkit/internal/sheet"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sheetList  bool
	sheetPlain bool
	sheetStyle string
	sheetFile  string
	sheetWatch bool
)

var slugStyle = lipgloss.NewStyle().Bold(true)

// sheetCmd renders the bundled cheat sheet
var sheetCmd = &cobra.Command{
	Use:   "sheet [topic]",
	Short: "Render the Bash/Python cheat sheet in the terminal",
	Long: `Renders the embedded Bash-vs-Python idiom cheat sheet. With a
topic argument only that section is shown; topics match by slug prefix,
so "sheet cond" renders the conditionals section.

--file renders an external Markdown file instead, and --watch keeps
re-rendering it whenever it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSheet,
}

func init() {
	sheetCmd.Flags().BoolVar(&sheetList, "list", false, "List topic slugs and exit")
	sheetCmd.Flags().BoolVar(&sheetPlain, "plain", false, "Print raw Markdown without terminal styling")
	sheetCmd.Flags().StringVar(&sheetStyle, "style", "", "Glamour style: auto, dark, light, notty (default from config)")
	sheetCmd.Flags().StringVar(&sheetFile, "file", "", "Render this Markdown file instead of the embedded sheet")
	sheetCmd.Flags().BoolVar(&sheetWatch, "watch", false, "Re-render --file on change until interrupted")
}

func runSheet(cmd *cobra.Command, args []string) error {
	if sheetWatch && sheetFile == "" {
		return fmt.Errorf("--watch requires --file")
	}
	if sheetFile != "" && len(args) > 0 {
		return fmt.Errorf("a topic cannot be combined with --file")
	}

	s := sheet.Embedded()

	if sheetList {
		for _, t := range s.Topics() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", slugStyle.Render(t.Slug), t.Title)
		}
		return nil
	}

	if sheetWatch {
		return watchAndRender(cmd)
	}

	md, err := resolveMarkdown(s, args)
	if err != nil {
		return err
	}
	return emit(cmd, md)
}

func resolveMarkdown(s *sheet.Sheet, args []string) (string, error) {
	if sheetFile != "" {
		data, err := os.ReadFile(sheetFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return s.Section(args[0])
	}
	return s.Full(), nil
}

// emit writes md to stdout, styled unless --plain.
func emit(cmd *cobra.Command, md string) error {
	if sheetPlain {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	style := sheetStyle
	if style == "" {
		style = cfg.Sheet.Style
	}
	out, err := sheet.Render(md, style, cfg.Sheet.Wrap)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// watchAndRender renders --file now and again on every write until the
// process is interrupted.
func watchAndRender(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	render := func() {
		data, err := os.ReadFile(sheetFile)
		if err != nil {
			logger.Warn("Failed to read watched file", zap.Error(err))
			return
		}
		if err := emit(cmd, string(data)); err != nil {
			logger.Warn("Failed to render watched file", zap.Error(err))
		}
	}
	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via
	// rename-and-replace would otherwise drop the watch.
	dir := filepath.Dir(sheetFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(sheetFile)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug("Watched file changed", zap.String("op", event.Op.String()))
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
