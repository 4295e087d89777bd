package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/geom"
	"github.com/lattice-cad/blockdex/internal/core/ports/driven"
	"github.com/lattice-cad/blockdex/internal/core/ports/driving"
	"github.com/lattice-cad/blockdex/internal/logger"
)

// Ensure ImportEngine implements the interface.
var _ driving.BlockImporter = (*ImportEngine)(nil)

// ImportEngine catalogues every eligible block definition of a drawing:
// flatten, canonicalize, hash, upsert — all within one store transaction
// per document.
type ImportEngine struct {
	store  driven.BlockStore
	loader driven.DrawingLoader
}

// NewImportEngine creates an import engine. loader may be nil when only
// ImportDocument is used.
func NewImportEngine(store driven.BlockStore, loader driven.DrawingLoader) *ImportEngine {
	return &ImportEngine{store: store, loader: loader}
}

// ImportFile loads the drawing at path and imports it.
func (e *ImportEngine) ImportFile(ctx context.Context, path string, opts driving.ImportOptions) (*domain.ImportSummary, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("load drawing: loader not configured")
	}
	doc, err := e.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load drawing: %w", err)
	}
	return e.ImportDocument(ctx, doc, path, opts)
}

// ImportDocument imports an already-loaded drawing tree as one atomic
// batch. Any error — depth exhaustion, storage failure, cancellation —
// aborts the whole batch with nothing committed.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (e *ImportEngine) ImportDocument(ctx context.Context, doc *domain.Drawing, sourcePath string, opts driving.ImportOptions) (*domain.ImportSummary, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil drawing", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(sourcePath) == "" {
		return nil, fmt.Errorf("%w: empty source path", domain.ErrInvalidInput)
	}

	budget := opts.DepthBudget
	if budget <= 0 {
		budget = DefaultDepthBudget
	}

	tx, err := e.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import batch: %w", err)
	}
	// No-op once committed; discards the batch on any early return.
	defer func() { _ = tx.Rollback() }()

	logger.Info("Importing %s (%d block definitions)", sourcePath, len(doc.Blocks))

	summary := &domain.ImportSummary{}
	for i := range doc.Blocks {
		// Cancellation is cooperative and coarse: observed between
		// top-level blocks, never inside a block's expansion.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block := &doc.Blocks[i]
		if block.IsLayoutSpace() {
			continue
		}
		if !opts.IncludeAnonymous && block.IsAnonymous() {
			continue
		}

		canon := geom.NewCanonicalizer()
		if err := flattenBlock(doc, block, canon, budget); err != nil {
			return nil, fmt.Errorf("flatten block %q: %w", block.Name, err)
		}
		if !canon.HasGeometry() {
			logger.Debug("Skipping %q: no renderable geometry", block.Name)
			summary.SkippedEmpty++
			continue
		}

		identity := geom.Finalize(canon)
		rec := &domain.BlockRecord{
			SourcePath:  sourcePath,
			BlockName:   block.Name,
			BlockHandle: block.Handle,
			VersionTag:  doc.Version,
			ContentHash: identity.Hex(),
			WidthWorld:  identity.WidthWorld,
			HeightWorld: identity.HeightWorld,
		}
		if doc.Unit != "" {
			unit := doc.Unit
			rec.Unit = &unit
		}

		id, err := tx.UpsertBlock(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("upsert block %q: %w", block.Name, err)
		}
		logger.Debug("Upserted %q as %s (%.6gx%.6g)", block.Name, id, rec.WidthWorld, rec.HeightWorld)
		summary.Upserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import batch: %w", err)
	}

	logger.Info("Import complete: %d upserted, %d skipped empty", summary.Upserted, summary.SkippedEmpty)
	return summary, nil
}
