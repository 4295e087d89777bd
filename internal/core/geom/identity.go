package geom

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentIdentity is the stable identity of one block's fully-flattened
// geometry: a digest of the canonical token stream plus the world-space
// extents. Immutable once finalized.
type ContentIdentity struct {
	Digest      [sha256.Size]byte
	WidthWorld  float64
	HeightWorld float64
}

// Hex returns the digest as a lowercase hex string, the form the block
// store keys on.
func (id ContentIdentity) Hex() string {
	return hex.EncodeToString(id.Digest[:])
}

// Finalize computes the content identity from an accumulated token
// stream. A degenerate extent (no token ever added) yields zero width
// and height.
func Finalize(c *Canonicalizer) ContentIdentity {
	id := ContentIdentity{Digest: sha256.Sum256(c.Bytes())}
	if c.HasGeometry() {
		minX, minY, maxX, maxY := c.Extent()
		id.WidthWorld = maxX - minX
		id.HeightWorld = maxY - minY
	}
	return id
}
