package sqlite

import (
	"context"
	"database/sql"
	"time"
)

type blobsRepo struct {
	db *sql.DB
}

func (r *blobsRepo) GetBlob(ctx context.Context, scope, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM blobs WHERE scope = ? AND key = ?`,
		scope, key,
	).Scan(&value)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return value, nil
}

func (r *blobsRepo) PutBlob(ctx context.Context, scope, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blobs (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		scope, key, value, toMillis(time.Now()),
	)
	return err
}
