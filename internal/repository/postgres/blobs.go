package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/msomdec/job-board/internal/domain"
)

// blobTable stores byte values by key. It backs both kv_values and
// file_blobs, which share the same shape.
type blobTable struct {
	db    *sqlx.DB
	table string
	key   string
}

func (b *blobTable) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := b.db.GetContext(ctx, &data,
		fmt.Sprintf(`SELECT data FROM %s WHERE %s = $1`, b.table, b.key), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("get "+b.table, err)
	}
	return data, nil
}

func (b *blobTable) Set(ctx context.Context, key string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %[1]s (%[2]s, data) VALUES ($1, $2)
		 ON CONFLICT (%[2]s) DO UPDATE SET data = EXCLUDED.data`, b.table, b.key),
		key, data,
	)
	if err != nil {
		return storageError("set "+b.table, err)
	}
	return nil
}

func (b *blobTable) Save(ctx context.Context, key string, data []byte) error {
	return b.Set(ctx, key, data)
}

func (b *blobTable) Delete(ctx context.Context, key string) error {
	if _, err := b.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, b.table, b.key), key,
	); err != nil {
		return storageError("delete "+b.table, err)
	}
	return nil
}
