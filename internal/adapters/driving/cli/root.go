// Package cli implements the cobra command surface for Blockdex.
//
// Commands are package-level vars registered in init, with core services
// injected through SetServices before Execute runs. Commands never touch
// adapters directly; everything goes through the driving ports.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lattice-cad/blockdex/internal/core/ports/driving"
	"github.com/lattice-cad/blockdex/internal/logger"
)

var (
	importer       driving.BlockImporter
	catalogService driving.CatalogService
	defaultOptions driving.ImportOptions
	version        = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "blockdex",
	Short: "Catalogue CAD blocks by geometric content identity",
	Long: `Blockdex flattens the block definitions of 2-D vector drawings,
computes a stable content hash over their canonicalized geometry and
keeps the results in a local catalogue. Two blocks with equal hashes are
geometrically identical, regardless of drawing, import run or name.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if v, err := cmd.Flags().GetBool("verbose"); err == nil && v {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
}

// Services bundles the core services the commands depend on.
type Services struct {
	Importer       driving.BlockImporter
	Catalog        driving.CatalogService
	DefaultOptions driving.ImportOptions
}

// SetServices injects the core services. Must be called before Execute.
func SetServices(s Services) {
	importer = s.Importer
	catalogService = s.Catalog
	defaultOptions = s.DefaultOptions
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, which
// commands observe for cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
