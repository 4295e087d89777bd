package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the block catalogue",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued blocks",
	RunE:  runCatalogList,
}

var catalogGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one catalogued block",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogGet,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	recs, err := catalogService.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		cmd.Println("Catalogue is empty.")
		return nil
	}

	for _, rec := range recs {
		cmd.Printf("%s  %-24s  %.12s  %g x %g\n",
			rec.ID, rec.BlockName, rec.ContentHash, rec.WidthWorld, rec.HeightWorld)
	}
	return nil
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	rec, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("ID:           %s\n", rec.ID)
	cmd.Printf("Name:         %s\n", rec.BlockName)
	cmd.Printf("Handle:       %s\n", rec.BlockHandle)
	cmd.Printf("Source:       %s\n", rec.SourcePath)
	cmd.Printf("Version tag:  %s\n", rec.VersionTag)
	cmd.Printf("Content hash: %s\n", rec.ContentHash)
	if rec.Unit != nil {
		cmd.Printf("Unit:         %s\n", *rec.Unit)
	}
	cmd.Printf("Extents:      %g x %g\n", rec.WidthWorld, rec.HeightWorld)
	cmd.Printf("Imported:     %s\n", rec.ImportedAt.Format("2006-01-02 15:04:05"))
	return nil
}
