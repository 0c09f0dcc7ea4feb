// Package memory is an in-process backend used by tests and by
// DATABASE_DRIVER=memory for throwaway demos.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/msomdec/job-board/internal/domain"
)

// DB holds every collection, value and file in memory. It is safe for
// concurrent use.
type DB struct {
	mu          sync.RWMutex
	collections map[domain.CollectionName][]domain.RawRecord
	values      map[string][]byte
	files       map[string][]byte
}

// New returns an empty in-memory database.
func New() *DB {
	return &DB{
		collections: make(map[domain.CollectionName][]domain.RawRecord),
		values:      make(map[string][]byte),
		files:       make(map[string][]byte),
	}
}

// Migrate initializes every known collection to an empty sequence.
func (db *DB) Migrate(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, c := range domain.Collections {
		if _, ok := db.collections[c]; !ok {
			db.collections[c] = nil
		}
	}
	return nil
}

func (db *DB) Close() error { return nil }

func (db *DB) Records() domain.RecordStore { return (*recordStore)(db) }
func (db *DB) Values() domain.ValueStore   { return &blobMap{mu: &db.mu, m: db.values} }
func (db *DB) Files() domain.FileStore     { return &blobMap{mu: &db.mu, m: db.files} }

type recordStore DB

func (s *recordStore) List(ctx context.Context, c domain.CollectionName) ([]domain.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := s.collections[c]
	out := make([]domain.RawRecord, len(recs))
	for i, r := range recs {
		out[i] = domain.RawRecord{Key: r.Key, Data: slices.Clone(r.Data)}
	}
	return out, nil
}

func (s *recordStore) Get(ctx context.Context, c domain.CollectionName, key string) (domain.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(c, key)
	if i < 0 {
		return domain.RawRecord{}, domain.ErrNotFound
	}
	r := s.collections[c][i]
	return domain.RawRecord{Key: r.Key, Data: slices.Clone(r.Data)}, nil
}

func (s *recordStore) Replace(ctx context.Context, c domain.CollectionName, records []domain.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := make([]domain.RawRecord, len(records))
	for i, r := range records {
		recs[i] = domain.RawRecord{Key: r.Key, Data: slices.Clone(r.Data)}
	}
	s.collections[c] = recs
	return nil
}

func (s *recordStore) Upsert(ctx context.Context, c domain.CollectionName, record domain.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := domain.RawRecord{Key: record.Key, Data: slices.Clone(record.Data)}
	if i := s.index(c, record.Key); i >= 0 {
		s.collections[c][i] = rec
		return nil
	}
	s.collections[c] = append(s.collections[c], rec)
	return nil
}

func (s *recordStore) Insert(ctx context.Context, c domain.CollectionName, record domain.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(c, record.Key) >= 0 {
		return domain.ErrDuplicateKey
	}
	s.collections[c] = append(s.collections[c], domain.RawRecord{Key: record.Key, Data: slices.Clone(record.Data)})
	return nil
}

// index must be called with the lock held.
func (s *recordStore) index(c domain.CollectionName, key string) int {
	return slices.IndexFunc(s.collections[c], func(r domain.RawRecord) bool { return r.Key == key })
}

// blobMap backs both the value and the file store.
type blobMap struct {
	mu *sync.RWMutex
	m  map[string][]byte
}

func (b *blobMap) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.m[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return slices.Clone(data), nil
}

func (b *blobMap) Set(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.m[key] = slices.Clone(data)
	return nil
}

func (b *blobMap) Save(ctx context.Context, key string, data []byte) error {
	return b.Set(ctx, key, data)
}

func (b *blobMap) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.m, key)
	return nil
}
