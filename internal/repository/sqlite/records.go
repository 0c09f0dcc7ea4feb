package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/msomdec/job-board/internal/domain"
)

type recordStore struct {
	db *sql.DB
}

func (s *recordStore) List(ctx context.Context, c domain.CollectionName) ([]domain.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record_key, data FROM records WHERE collection = ? ORDER BY id`, string(c))
	if err != nil {
		return nil, storageError("list records", err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	for rows.Next() {
		var r domain.RawRecord
		if err := rows.Scan(&r.Key, &r.Data); err != nil {
			return nil, storageError("scan record", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate records", err)
	}
	return records, nil
}

func (s *recordStore) Get(ctx context.Context, c domain.CollectionName, key string) (domain.RawRecord, error) {
	r := domain.RawRecord{Key: key}
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE collection = ? AND record_key = ?`, string(c), key,
	).Scan(&r.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RawRecord{}, domain.ErrNotFound
		}
		return domain.RawRecord{}, storageError("get record", err)
	}
	return r, nil
}

func (s *recordStore) Replace(ctx context.Context, c domain.CollectionName, records []domain.RawRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE collection = ?`, string(c)); err != nil {
		return storageError("clear collection", err)
	}
	for _, r := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (collection, record_key, data) VALUES (?, ?, ?)`,
			string(c), r.Key, r.Data,
		); err != nil {
			if isUniqueConstraintError(err) {
				return domain.ErrDuplicateKey
			}
			return storageError("insert record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("commit", err)
	}
	return nil
}

// Upsert keeps the row id on conflict, so the record keeps its position.
func (s *recordStore) Upsert(ctx context.Context, c domain.CollectionName, record domain.RawRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (collection, record_key, data) VALUES (?, ?, ?)
		 ON CONFLICT (collection, record_key)
		 DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(c), record.Key, record.Data,
	)
	if err != nil {
		return storageError("upsert record", err)
	}
	return nil
}

func (s *recordStore) Insert(ctx context.Context, c domain.CollectionName, record domain.RawRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (collection, record_key, data) VALUES (?, ?, ?)`,
		string(c), record.Key, record.Data,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateKey
		}
		return storageError("insert record", err)
	}
	return nil
}
