// Package sqlite implements the block catalogue on SQLite.
//
// It is the reference driven.BlockStore adapter: schema migrations are
// embedded and applied on open, the database runs in WAL mode, and each
// document import maps to one SQL transaction. Records are unique per
// content hash; re-importing identical geometry converges on the same
// catalogue entry.
package sqlite
