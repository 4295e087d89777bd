package driving

import (
	"context"

	"github.com/lattice-cad/blockdex/internal/core/domain"
)

// CatalogService exposes read access to the block catalogue.
type CatalogService interface {
	// List returns all catalogued block records.
	List(ctx context.Context) ([]domain.BlockRecord, error)

	// Get retrieves one record by ID.
	Get(ctx context.Context, id string) (*domain.BlockRecord, error)
}
