// Package services implements the core use cases for Blockdex: the
// block graph walker that flattens nested block definitions into
// canonical geometry, the import engine that turns whole drawings into
// catalogued block records, and the catalogue read service.
//
// Services depend only on domain, geom and the ports. All storage and
// file access goes through driven ports.
package services
