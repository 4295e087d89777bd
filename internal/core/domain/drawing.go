package domain

import "strings"

// AnonymousBlockPrefix marks generated (anonymous) block names, e.g. "*X12".
const AnonymousBlockPrefix = "*"

// Names of the two built-in layout containers every drawing carries.
// They hold layout geometry, not reusable block definitions, and are
// never catalogued.
const (
	ModelSpaceName = "*Model_Space"
	PaperSpaceName = "*Paper_Space"
)

// Drawing is the read-only document tree handed over by the parsing
// collaborator. The import engine never mutates it.
type Drawing struct {
	// Version is the source format tag (e.g. "AC1027"). Stored on each
	// catalogued block as its version tag.
	Version string

	// Unit is the drawing unit name (e.g. "mm", "inch"). May be empty,
	// in which case the catalogue stores no unit.
	Unit string

	// Blocks are the top-level block definitions in document order.
	Blocks []BlockDefinition
}

// BlockDefinition is a named, reusable group of drawing primitives.
// Instances of other blocks may appear among its entities, forming a
// directed graph that is allowed to contain cycles.
type BlockDefinition struct {
	// Name is the block name. Empty or "*"-prefixed names denote
	// anonymous (generated) blocks.
	Name string

	// Handle is the stable per-document identifier for this block.
	Handle string

	// Entities is the ordered entity list. Order is significant: it is
	// the canonicalization order and therefore participates in the
	// content hash.
	Entities []Entity
}

// IsAnonymous reports whether the block is an anonymous (generated) block.
func (b *BlockDefinition) IsAnonymous() bool {
	return b.Name == "" || strings.HasPrefix(b.Name, AnonymousBlockPrefix)
}

// IsLayoutSpace reports whether the block is one of the built-in
// model/paper space containers.
func (b *BlockDefinition) IsLayoutSpace() bool {
	return strings.EqualFold(b.Name, ModelSpaceName) ||
		strings.HasPrefix(strings.ToLower(b.Name), strings.ToLower(PaperSpaceName))
}

// BlockByName resolves a block definition by name. Returns nil when the
// name is not defined in this drawing.
func (d *Drawing) BlockByName(name string) *BlockDefinition {
	for i := range d.Blocks {
		if d.Blocks[i].Name == name {
			return &d.Blocks[i]
		}
	}
	return nil
}
