package driven

import (
	"context"

	"github.com/lattice-cad/blockdex/internal/core/domain"
)

// DrawingLoader is the parsing collaborator boundary: it materializes the
// read-only drawing tree from a path. Parsing CAD formats is outside this
// system; the shipped adapter reads the JSON tree an external parser
// exports.
type DrawingLoader interface {
	// Load reads and decodes the drawing at path.
	Load(ctx context.Context, path string) (*domain.Drawing, error)
}
