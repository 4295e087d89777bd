// Package domain defines the core business entities for Blockdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Drawing: A read-only document tree of block definitions
//   - BlockDefinition: A named, reusable group of 2-D drawing primitives
//   - Entity: One drawing primitive (line, arc, text, nested insert, ...)
//   - BlockRecord: A catalogued block with its content hash and extents
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
