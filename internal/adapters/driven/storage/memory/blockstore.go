// Package memory provides in-memory driven adapters for tests and
// ephemeral use.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/ports/driven"
)

// Ensure BlockStore implements the interface.
var _ driven.BlockStore = (*BlockStore)(nil)

// BlockStore is an in-memory implementation of driven.BlockStore with
// the same dedup-on-content-hash policy as the SQLite adapter.
//
// Transactions are staged: upserts accumulate in the BlockTx and only
// reach the store on Commit. UpsertErr, when set, makes every upsert
// fail — used by tests to verify batch-abort semantics.
type BlockStore struct {
	mu      sync.RWMutex
	records map[string]domain.BlockRecord // by ID
	byHash  map[string]string             // content hash -> ID

	// UpsertErr, when non-nil, is returned by every UpsertBlock call.
	UpsertErr error

	// Begun and Committed count transaction lifecycle events.
	Begun     int
	Committed int
}

// NewBlockStore creates an empty in-memory block store.
func NewBlockStore() *BlockStore {
	return &BlockStore{
		records: make(map[string]domain.BlockRecord),
		byHash:  make(map[string]string),
	}
}

// Begin opens a staged unit of work.
func (s *BlockStore) Begin(_ context.Context) (driven.BlockTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Begun++
	return &blockTx{store: s}, nil
}

// ListBlocks returns all records, newest first.
func (s *BlockStore) ListBlocks(_ context.Context) ([]domain.BlockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]domain.BlockRecord, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].ImportedAt.Equal(recs[j].ImportedAt) {
			return recs[i].ImportedAt.After(recs[j].ImportedAt)
		}
		return recs[i].ID < recs[j].ID
	})
	return recs, nil
}

// GetBlock retrieves a record by ID.
func (s *BlockStore) GetBlock(_ context.Context, id string) (*domain.BlockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// FindByHash retrieves a record by content hash.
func (s *BlockStore) FindByHash(_ context.Context, contentHash string) (*domain.BlockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byHash[contentHash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec := s.records[id]
	return &rec, nil
}

// Len returns the number of committed records.
func (s *BlockStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// blockTx stages upserts until Commit.
type blockTx struct {
	store  *BlockStore
	staged []domain.BlockRecord
	done   bool
}

var _ driven.BlockTx = (*blockTx)(nil)

// UpsertBlock stages a record, returning the ID it will commit under —
// the existing record's ID when the hash is already catalogued (staged
// entries included).
func (t *blockTx) UpsertBlock(_ context.Context, rec *domain.BlockRecord) (string, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if err := t.store.UpsertErr; err != nil {
		return "", err
	}

	staged := *rec
	if id, ok := t.store.byHash[staged.ContentHash]; ok {
		staged.ID = id
	}
	for _, prev := range t.staged {
		if prev.ContentHash == staged.ContentHash {
			staged.ID = prev.ID
		}
	}
	if staged.ID == "" {
		staged.ID = uuid.NewString()
	}
	staged.ImportedAt = time.Now().UTC()
	t.staged = append(t.staged, staged)
	return staged.ID, nil
}

// Commit applies the staged records.
func (t *blockTx) Commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	for _, rec := range t.staged {
		if prev, ok := t.store.records[rec.ID]; ok {
			// Keep the original import time on a dedup hit.
			rec.ImportedAt = prev.ImportedAt
		}
		t.store.records[rec.ID] = rec
		t.store.byHash[rec.ContentHash] = rec.ID
	}
	t.store.Committed++
	return nil
}

// Rollback discards the staged records. A no-op after Commit.
func (t *blockTx) Rollback() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.staged = nil
	return nil
}
