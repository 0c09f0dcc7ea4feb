package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each backend (SQLite, Postgres, memory) owns its own migrations and
// exposes the record, value and file stores built on top of it.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
	Records() RecordStore
	Values() ValueStore
	Files() FileStore
}
