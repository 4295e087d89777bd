package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lattice-cad/blockdex/internal/core/ports/driving"
)

var importCmd = &cobra.Command{
	Use:   "import <drawing.json> [<drawing.json>...]",
	Short: "Import drawings into the block catalogue",
	Long: `Imports every eligible block definition of the given drawing files.
Each file is one atomic batch: if any block fails to flatten, none of
the file's blocks are catalogued.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().Bool("include-anonymous", false, "also import anonymous (*-prefixed) blocks")
	importCmd.Flags().Int("depth", 0, "nested-instance recursion budget (0 = default)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importer == nil {
		return errors.New("import service not configured")
	}

	opts := importOptions(cmd)

	var failed bool
	for _, path := range args {
		summary, err := importer.ImportFile(cmd.Context(), path, opts)
		if err != nil {
			failed = true
			cmd.PrintErrf("%s: import failed: %v\n", path, err)
			continue
		}
		cmd.Printf("%s: %d blocks catalogued, %d skipped (no geometry)\n",
			path, summary.Upserted, summary.SkippedEmpty)
	}

	if failed {
		return errors.New("one or more drawings failed to import")
	}
	return nil
}

// importOptions merges configured defaults with command flags.
func importOptions(cmd *cobra.Command) driving.ImportOptions {
	opts := defaultOptions
	if v, err := cmd.Flags().GetBool("include-anonymous"); err == nil && v {
		opts.IncludeAnonymous = true
	}
	if d, err := cmd.Flags().GetInt("depth"); err == nil && d > 0 {
		opts.DepthBudget = d
	}
	return opts
}
