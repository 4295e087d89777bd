// Package geom implements the pure geometry half of the import engine:
// 2-D affine transforms, sampling of curved primitives into point
// sequences, canonical token streams with running extents, and digest
// finalization.
//
// Everything in this package is deterministic: the same inputs always
// produce the same token stream, byte for byte, on every platform. That
// property is load-bearing — content hashes computed here are compared
// across machines.
package geom
