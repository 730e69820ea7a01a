// Package memory is an in-process store used in ephemeral mode and tests.
// Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
)

type blobKey struct{ scope, key string }

type Store struct {
	mu      sync.RWMutex
	blobs   map[blobKey][]byte
	devices map[string]domain.Device
	keys    []domain.SigningKey
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		blobs:   make(map[blobKey][]byte),
		devices: make(map[string]domain.Device),
	}
}

func (s *Store) Blobs() store.Blobs             { return (*blobsRepo)(s) }
func (s *Store) Devices() store.Devices         { return (*devicesRepo)(s) }
func (s *Store) SigningKeys() store.SigningKeys { return (*signingKeysRepo)(s) }

func (s *Store) ApplyMigrations() error         { return nil }
func (s *Store) Close() error                   { return nil }
func (s *Store) Ping(ctx context.Context) error { return nil }

type blobsRepo Store

func (r *blobsRepo) GetBlob(ctx context.Context, scope, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.blobs[blobKey{scope, key}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (r *blobsRepo) PutBlob(ctx context.Context, scope, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if value == nil {
		value = []byte{}
	}
	r.blobs[blobKey{scope, key}] = slices.Clone(value)
	return nil
}

type devicesRepo Store

func (r *devicesRepo) CreateDevice(ctx context.Context, d domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[d.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.devices[d.ID] = d
	return nil
}

func (r *devicesRepo) GetDevice(ctx context.Context, id string) (domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[id]
	if !ok {
		return domain.Device{}, store.ErrNotFound
	}
	return d, nil
}

func (r *devicesRepo) TouchDevice(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[id]
	if !ok {
		return store.ErrNotFound
	}
	d.LastSeenAt = at
	r.devices[id] = d
	return nil
}

func (r *devicesRepo) DeleteDevicesNotSeenSince(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, d := range r.devices {
		if !d.LastSeenAt.Before(cutoff) {
			continue
		}
		delete(r.devices, id)
		for k := range r.blobs {
			if k.scope == id {
				delete(r.blobs, k)
			}
		}
		removed++
	}
	return removed, nil
}

type signingKeysRepo Store

func (r *signingKeysRepo) CreateSigningKey(ctx context.Context, key domain.SigningKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range r.keys {
		if k.Kid == key.Kid {
			return store.ErrAlreadyExists
		}
	}
	r.keys = append(r.keys, key)
	return nil
}

func (r *signingKeysRepo) ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.keys), nil
}
