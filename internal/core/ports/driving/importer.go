package driving

import (
	"context"

	"github.com/lattice-cad/blockdex/internal/core/domain"
)

// ImportOptions tunes one import call.
type ImportOptions struct {
	// IncludeAnonymous also catalogues anonymous ("*"-prefixed or
	// unnamed) blocks. Layout space containers are skipped regardless.
	IncludeAnonymous bool

	// DepthBudget caps nested-instance recursion. Zero means the
	// default budget.
	DepthBudget int
}

// BlockImporter flattens, canonicalizes and catalogues every eligible
// block definition of a drawing.
type BlockImporter interface {
	// ImportDocument imports an already-loaded drawing tree as one
	// atomic batch. sourcePath is recorded on every block record.
	ImportDocument(ctx context.Context, doc *domain.Drawing, sourcePath string, opts ImportOptions) (*domain.ImportSummary, error)

	// ImportFile loads the drawing at path and imports it.
	ImportFile(ctx context.Context, path string, opts ImportOptions) (*domain.ImportSummary, error)
}
