package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configfile "github.com/lattice-cad/blockdex/internal/adapters/driven/config/file"
	"github.com/lattice-cad/blockdex/internal/adapters/driven/docfile"
	"github.com/lattice-cad/blockdex/internal/adapters/driven/storage/sqlite"
	"github.com/lattice-cad/blockdex/internal/adapters/driving/cli"
	"github.com/lattice-cad/blockdex/internal/core/ports/driving"
	"github.com/lattice-cad/blockdex/internal/core/services"
	"github.com/lattice-cad/blockdex/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := configfile.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Verbose {
		logger.SetVerbose(true)
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening catalogue: %w", err)
	}
	defer store.Close()

	loader := docfile.NewLoader()

	cli.SetServices(cli.Services{
		Importer: services.NewImportEngine(store, loader),
		Catalog:  services.NewCatalog(store),
		DefaultOptions: driving.ImportOptions{
			IncludeAnonymous: cfg.IncludeAnonymous,
			DepthBudget:      cfg.DepthBudget,
		},
	})
	cli.SetVersion(version)

	return cli.ExecuteContext(ctx)
}
