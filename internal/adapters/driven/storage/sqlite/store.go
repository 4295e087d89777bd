package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lattice-cad/blockdex/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BlockStore = (*Store)(nil)

// Store is the SQLite-backed block catalogue.
//
// Its dedup policy: records are keyed on content hash, and upserting a
// record whose hash already exists refreshes the bookkeeping columns and
// returns the existing record ID. Geometrically identical blocks — even
// from different drawings or under different names — collapse to one
// catalogue entry.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.blockdex/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".blockdex", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Begin opens a unit of work for one document import.
func (s *Store) Begin(ctx context.Context) (driven.BlockTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &blockTx{tx: tx}, nil
}

// ListBlocks returns all catalogued records, newest first.
func (s *Store) ListBlocks(ctx context.Context) ([]domain.BlockRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, block_name, block_handle, version_tag,
		       content_hash, unit, width_world, height_world, imported_at
		FROM blocks ORDER BY imported_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer rows.Close()

	var recs []domain.BlockRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return recs, nil
}

// GetBlock retrieves a record by ID.
func (s *Store) GetBlock(ctx context.Context, id string) (*domain.BlockRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, block_name, block_handle, version_tag,
		       content_hash, unit, width_world, height_world, imported_at
		FROM blocks WHERE id = ?
	`, id)
	return scanBlock(row)
}

// FindByHash retrieves a record by content hash.
func (s *Store) FindByHash(ctx context.Context, contentHash string) (*domain.BlockRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, block_name, block_handle, version_tag,
		       content_hash, unit, width_world, height_world, imported_at
		FROM blocks WHERE content_hash = ?
	`, contentHash)
	return scanBlock(row)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlock(row scanner) (*domain.BlockRecord, error) {
	var rec domain.BlockRecord
	var unit sql.NullString
	var importedAt sql.NullTime
	if err := row.Scan(&rec.ID, &rec.SourcePath, &rec.BlockName, &rec.BlockHandle,
		&rec.VersionTag, &rec.ContentHash, &unit,
		&rec.WidthWorld, &rec.HeightWorld, &importedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning block: %w", err)
	}
	if unit.Valid {
		rec.Unit = &unit.String
	}
	if importedAt.Valid {
		rec.ImportedAt = importedAt.Time
	}
	return &rec, nil
}

// blockTx implements driven.BlockTx over one database transaction.
type blockTx struct {
	tx *sql.Tx
}

var _ driven.BlockTx = (*blockTx)(nil)

// UpsertBlock stores a record, deduplicating on content hash. Returns
// the record ID, which is the pre-existing one on a hash match.
func (t *blockTx) UpsertBlock(ctx context.Context, rec *domain.BlockRecord) (string, error) {
	var unit any
	if rec.Unit != nil {
		unit = *rec.Unit
	}

	row := t.tx.QueryRowContext(ctx, `
		INSERT INTO blocks (id, source_path, block_name, block_handle, version_tag,
		                    content_hash, unit, width_world, height_world, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET
			source_path = excluded.source_path,
			block_name = excluded.block_name,
			block_handle = excluded.block_handle,
			version_tag = excluded.version_tag
		RETURNING id
	`, uuid.NewString(), rec.SourcePath, rec.BlockName, rec.BlockHandle, rec.VersionTag,
		rec.ContentHash, unit, rec.WidthWorld, rec.HeightWorld, time.Now().UTC())

	var id string
	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("upserting block: %w", err)
	}
	return id, nil
}

// Commit makes the batch durable.
func (t *blockTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Rollback discards the batch. A no-op after Commit.
func (t *blockTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rolling back transaction: %w", err)
	}
	return nil
}
