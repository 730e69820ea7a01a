package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
)

type devicesRepo struct {
	s *Store
}

func (r *devicesRepo) CreateDevice(ctx context.Context, d domain.Device) error {
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO devices (id, created_at, last_seen_at) VALUES (?, ?, ?)`,
		d.ID, toMillis(d.CreatedAt), toMillis(d.LastSeenAt),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *devicesRepo) GetDevice(ctx context.Context, id string) (domain.Device, error) {
	var created, seen int64
	err := r.s.db.QueryRowContext(ctx,
		`SELECT created_at, last_seen_at FROM devices WHERE id = ?`, id,
	).Scan(&created, &seen)
	if err != nil {
		return domain.Device{}, mapNotFound(err)
	}
	return domain.Device{ID: id, CreatedAt: fromMillis(created), LastSeenAt: fromMillis(seen)}, nil
}

func (r *devicesRepo) TouchDevice(ctx context.Context, id string, at time.Time) error {
	res, err := r.s.db.ExecContext(ctx,
		`UPDATE devices SET last_seen_at = ? WHERE id = ?`, toMillis(at), id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *devicesRepo) DeleteDevicesNotSeenSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		ms := toMillis(cutoff)
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM blobs WHERE scope IN (SELECT id FROM devices WHERE last_seen_at < ?)`, ms,
		); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM devices WHERE last_seen_at < ?`, ms)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}
