// Package driven defines the driven ports (secondary adapters' contracts)
// for Blockdex.
//
// Driven ports are interfaces the core calls out to: block storage and
// drawing loading. Adapters in internal/adapters/driven implement them.
package driven
