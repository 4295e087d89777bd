package driven

import (
	"context"

	"github.com/lattice-cad/blockdex/internal/core/domain"
)

// BlockStore persists catalogued block records.
//
// The import engine writes exclusively through a BlockTx so that one
// document import is one atomic batch: either every block record of the
// document lands, or none does. Deduplication policy (reuse vs. version
// on a content-hash match) belongs to the implementation, not the engine.
type BlockStore interface {
	// Begin opens a unit of work for one document import.
	Begin(ctx context.Context) (BlockTx, error)

	// ListBlocks returns all catalogued records, newest first.
	ListBlocks(ctx context.Context) ([]domain.BlockRecord, error)

	// GetBlock retrieves a record by ID.
	GetBlock(ctx context.Context, id string) (*domain.BlockRecord, error)

	// FindByHash retrieves a record by content hash.
	FindByHash(ctx context.Context, contentHash string) (*domain.BlockRecord, error)
}

// BlockTx is the atomic scope of one document import.
//
// Rollback after Commit must be a no-op, so callers can defer it
// unconditionally.
type BlockTx interface {
	// UpsertBlock stores a record and returns the record ID — a fresh
	// one, or the existing ID when the implementation deduplicates on
	// content hash.
	UpsertBlock(ctx context.Context, rec *domain.BlockRecord) (string, error)

	// Commit makes the batch durable.
	Commit() error

	// Rollback discards the batch.
	Rollback() error
}
