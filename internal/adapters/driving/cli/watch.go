package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lattice-cad/blockdex/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and import drawings as they change",
	Long: `Watches a drop folder for exported drawing files (*.json) and
re-imports each file whenever it is created or rewritten. Runs until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("include-anonymous", false, "also import anonymous (*-prefixed) blocks")
	watchCmd.Flags().Int("depth", 0, "nested-instance recursion budget (0 = default)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if importer == nil {
		return errors.New("import service not configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := args[0]
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	opts := importOptions(cmd)
	ctx := cmd.Context()
	cmd.Printf("Watching %s for drawing files...\n", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}
			summary, err := importer.ImportFile(ctx, event.Name, opts)
			if err != nil {
				cmd.PrintErrf("%s: import failed: %v\n", event.Name, err)
				continue
			}
			cmd.Printf("%s: %d blocks catalogued, %d skipped\n",
				event.Name, summary.Upserted, summary.SkippedEmpty)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
