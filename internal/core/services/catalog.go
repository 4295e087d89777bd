package services

import (
	"context"
	"fmt"

	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/ports/driven"
	"github.com/lattice-cad/blockdex/internal/core/ports/driving"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// Catalog exposes read access to the block catalogue.
type Catalog struct {
	store driven.BlockStore
}

// NewCatalog creates a catalogue read service.
func NewCatalog(store driven.BlockStore) *Catalog {
	return &Catalog{store: store}
}

// List returns all catalogued block records.
func (c *Catalog) List(ctx context.Context) ([]domain.BlockRecord, error) {
	recs, err := c.store.ListBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return recs, nil
}

// Get retrieves one record by ID.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.BlockRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty block id", domain.ErrInvalidInput)
	}
	rec, err := c.store.GetBlock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", id, err)
	}
	return rec, nil
}
