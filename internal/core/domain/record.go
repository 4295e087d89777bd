package domain

import "time"

// BlockRecord is the catalogue payload handed to the block store for one
// successfully flattened block. ID and ImportedAt are assigned by the
// store and only populated on read-back.
type BlockRecord struct {
	// ID is the unique identifier assigned by the store.
	ID string

	// SourcePath is the path of the drawing this block came from.
	SourcePath string

	// BlockName is the block definition name.
	BlockName string

	// BlockHandle is the stable per-document handle of the definition.
	BlockHandle string

	// VersionTag is the source drawing's format tag.
	VersionTag string

	// ContentHash is the hex-encoded digest of the block's flattened,
	// canonicalized geometry. Two blocks with equal hashes are
	// geometrically identical under this canonicalization.
	ContentHash string

	// Unit is the drawing unit name, or nil when the drawing declares none.
	Unit *string

	// WidthWorld and HeightWorld are the world-space extents of the
	// flattened geometry. Both are zero for degenerate extents.
	WidthWorld  float64
	HeightWorld float64

	// ImportedAt is when the record was first stored.
	ImportedAt time.Time
}

// ImportSummary reports the outcome of one document import call.
type ImportSummary struct {
	// Upserted counts blocks handed to the store.
	Upserted int

	// SkippedEmpty counts blocks that flattened to no renderable geometry.
	SkippedEmpty int
}
