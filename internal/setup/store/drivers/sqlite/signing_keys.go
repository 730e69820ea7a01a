package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
)

type signingKeysRepo struct {
	db *sql.DB
}

func (r *signingKeysRepo) CreateSigningKey(ctx context.Context, key domain.SigningKey) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO signing_keys (kid, algorithm, private_key, created_at) VALUES (?, ?, ?, ?)`,
		key.Kid, key.Algorithm, key.PrivateKey, toMillis(key.CreatedAt),
	)
	return err
}

func (r *signingKeysRepo) ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kid, algorithm, private_key, created_at FROM signing_keys ORDER BY created_at, kid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.SigningKey
	for rows.Next() {
		var k domain.SigningKey
		var created int64
		if err := rows.Scan(&k.Kid, &k.Algorithm, &k.PrivateKey, &created); err != nil {
			return nil, err
		}
		k.CreatedAt = fromMillis(created)
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
