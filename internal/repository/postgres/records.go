package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/msomdec/job-board/internal/domain"
)

type recordRow struct {
	Key  string `db:"record_key"`
	Data []byte `db:"data"`
}

type recordStore struct {
	db *sqlx.DB
}

func (s *recordStore) List(ctx context.Context, c domain.CollectionName) ([]domain.RawRecord, error) {
	var rows []recordRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT record_key, data FROM records WHERE collection = $1 ORDER BY id`, string(c),
	); err != nil {
		return nil, storageError("list records", err)
	}
	records := make([]domain.RawRecord, len(rows))
	for i, r := range rows {
		records[i] = domain.RawRecord{Key: r.Key, Data: r.Data}
	}
	return records, nil
}

func (s *recordStore) Get(ctx context.Context, c domain.CollectionName, key string) (domain.RawRecord, error) {
	var row recordRow
	err := s.db.GetContext(ctx, &row,
		`SELECT record_key, data FROM records WHERE collection = $1 AND record_key = $2`, string(c), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RawRecord{}, domain.ErrNotFound
		}
		return domain.RawRecord{}, storageError("get record", err)
	}
	return domain.RawRecord{Key: row.Key, Data: row.Data}, nil
}

func (s *recordStore) Replace(ctx context.Context, c domain.CollectionName, records []domain.RawRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE collection = $1`, string(c)); err != nil {
		return storageError("clear collection", err)
	}
	for _, r := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (collection, record_key, data) VALUES ($1, $2, $3)`,
			string(c), r.Key, r.Data,
		); err != nil {
			if isUniqueViolation(err) {
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
		`INSERT INTO records (collection, record_key, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, record_key)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		string(c), record.Key, record.Data,
	)
	if err != nil {
		return storageError("upsert record", err)
	}
	return nil
}

func (s *recordStore) Insert(ctx context.Context, c domain.CollectionName, record domain.RawRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (collection, record_key, data) VALUES ($1, $2, $3)`,
		string(c), record.Key, record.Data,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		return storageError("insert record", err)
	}
	return nil
}
