package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/msomdec/job-board/internal/domain"
)

type valueStore struct {
	db *sql.DB
}

func (s *valueStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM kv_values WHERE value_key = ?", key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("get value", err)
	}
	return data, nil
}

func (s *valueStore) Set(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_values (value_key, data) VALUES (?, ?)
		 ON CONFLICT (value_key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, data,
	)
	if err != nil {
		return storageError("set value", err)
	}
	return nil
}

func (s *valueStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_values WHERE value_key = ?", key); err != nil {
		return storageError("delete value", err)
	}
	return nil
}
