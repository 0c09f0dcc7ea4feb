// Package store provides the typed collections the services read and write.
// Records are JSON encoded and validated before they reach a backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/msomdec/job-board/internal/domain"
)

// Store implements domain.Store over a record store and a value store.
type Store struct {
	users        *Collection[domain.User]
	jobs         *Collection[domain.Job]
	applications *Collection[domain.Application]
	values       domain.ValueStore
	files        domain.FileStore
}

// New builds a Store on top of the given backend.
func New(db domain.Database) *Store {
	records := db.Records()
	return &Store{
		users:        NewCollection[domain.User](records, domain.CollectionUsers),
		jobs:         NewCollection[domain.Job](records, domain.CollectionJobs),
		applications: NewCollection[domain.Application](records, domain.CollectionApplications),
		values:       db.Values(),
		files:        db.Files(),
	}
}

func (s *Store) Users() domain.Collection[domain.User]               { return s.users }
func (s *Store) Jobs() domain.Collection[domain.Job]                 { return s.jobs }
func (s *Store) Applications() domain.Collection[domain.Application] { return s.applications }
func (s *Store) Values() domain.ValueStore                           { return s.values }
func (s *Store) Files() domain.FileStore                             { return s.files }

// Collection is a typed, validated view of one record collection.
type Collection[T domain.Record] struct {
	records domain.RecordStore
	name    domain.CollectionName
}

// NewCollection returns the typed collection c backed by records.
func NewCollection[T domain.Record](records domain.RecordStore, c domain.CollectionName) *Collection[T] {
	return &Collection[T]{records: records, name: c}
}

// All returns every record in insertion order. It never returns nil.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	raws, err := c.records.List(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		rec, err := c.decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Find returns the record stored under key, or domain.ErrNotFound.
func (c *Collection[T]) Find(ctx context.Context, key string) (T, error) {
	var zero T
	raw, err := c.records.Get(ctx, c.name, key)
	if err != nil {
		return zero, fmt.Errorf("find %s %q: %w", c.name, key, err)
	}
	return c.decode(raw)
}

// Put overwrites the collection with records, keeping their order.
func (c *Collection[T]) Put(ctx context.Context, records []T) error {
	raws := make([]domain.RawRecord, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		raw, err := c.encode(rec)
		if err != nil {
			return err
		}
		if seen[raw.Key] {
			return fmt.Errorf("put %s: %w: %q", c.name, domain.ErrDuplicateKey, raw.Key)
		}
		seen[raw.Key] = true
		raws = append(raws, raw)
	}
	if err := c.records.Replace(ctx, c.name, raws); err != nil {
		return fmt.Errorf("put %s: %w", c.name, err)
	}
	return nil
}

// Upsert replaces the record with the same key in place or appends it.
func (c *Collection[T]) Upsert(ctx context.Context, record T) error {
	raw, err := c.encode(record)
	if err != nil {
		return err
	}
	if err := c.records.Upsert(ctx, c.name, raw); err != nil {
		return fmt.Errorf("upsert %s %q: %w", c.name, raw.Key, err)
	}
	return nil
}

// Append adds a new record. It fails with domain.ErrDuplicateKey if a
// record with the same key already exists.
func (c *Collection[T]) Append(ctx context.Context, record T) error {
	raw, err := c.encode(record)
	if err != nil {
		return err
	}
	if err := c.records.Insert(ctx, c.name, raw); err != nil {
		return fmt.Errorf("append %s %q: %w", c.name, raw.Key, err)
	}
	return nil
}

func (c *Collection[T]) encode(record T) (domain.RawRecord, error) {
	if err := record.Validate(); err != nil {
		return domain.RawRecord{}, err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return domain.RawRecord{}, fmt.Errorf("encode %s record: %w", c.name, err)
	}
	return domain.RawRecord{Key: record.RecordKey(), Data: data}, nil
}

func (c *Collection[T]) decode(raw domain.RawRecord) (T, error) {
	var rec T
	if err := json.Unmarshal(raw.Data, &rec); err != nil {
		return rec, fmt.Errorf("%w: decode %s record %q: %v", domain.ErrStorageUnavailable, c.name, raw.Key, err)
	}
	return rec, nil
}

// GetJSON decodes the value stored under key into dst.
func GetJSON(ctx context.Context, values domain.ValueStore, key string, dst any) error {
	data, err := values.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: decode value %q: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, values domain.ValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value %q: %w", key, err)
	}
	return values.Set(ctx, key, data)
}
