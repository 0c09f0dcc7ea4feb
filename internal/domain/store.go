package domain

import "context"

// CollectionName names one of the persisted record collections.
type CollectionName string

const (
	CollectionUsers        CollectionName = "users"
	CollectionJobs         CollectionName = "jobs"
	CollectionApplications CollectionName = "applications"
)

// Collections lists every collection the store manages, in display order.
var Collections = []CollectionName{CollectionUsers, CollectionJobs, CollectionApplications}

// RawRecord is an encoded record together with its key within a collection.
type RawRecord struct {
	Key  string
	Data []byte
}

// RecordStore persists keyed records as insertion-ordered collections.
// Implementations write one record per statement so concurrent writers
// to different keys never overwrite each other.
type RecordStore interface {
	// List returns the records of a collection in insertion order.
	// A collection that was never written is empty, not an error.
	List(ctx context.Context, c CollectionName) ([]RawRecord, error)
	Get(ctx context.Context, c CollectionName, key string) (RawRecord, error)
	// Replace overwrites the whole collection atomically.
	Replace(ctx context.Context, c CollectionName, records []RawRecord) error
	// Upsert replaces the record with the same key in place, or appends it.
	Upsert(ctx context.Context, c CollectionName, record RawRecord) error
	// Insert appends a record and fails with ErrDuplicateKey if the key exists.
	Insert(ctx context.Context, c CollectionName, record RawRecord) error
}

// ValueStore holds single values outside the collections, such as
// per-user CV metadata.
type ValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// FileStore abstracts raw file byte storage.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Record is a typed value that lives in a collection.
type Record interface {
	RecordKey() string
	Validate() error
}

// Collection is the typed view of one record collection.
type Collection[T Record] interface {
	All(ctx context.Context) ([]T, error)
	Find(ctx context.Context, key string) (T, error)
	Put(ctx context.Context, records []T) error
	Upsert(ctx context.Context, record T) error
	Append(ctx context.Context, record T) error
}

// Store is the single injected persistence boundary used by services.
type Store interface {
	Users() Collection[User]
	Jobs() Collection[Job]
	Applications() Collection[Application]
	Values() ValueStore
	Files() FileStore
}
