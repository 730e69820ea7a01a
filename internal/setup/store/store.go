package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, memory)
// implement this and expose sub-repositories to keep concerns tidy.
type Store interface {
	Blobs() Blobs
	Devices() Devices
	SigningKeys() SigningKeys

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is still reachable.
	Ping(ctx context.Context) error
}

// Blobs is a device-scoped key-value store. Values are opaque bytes; the
// caller owns their encoding.
type Blobs interface {
	// GetBlob returns ErrNotFound when nothing was ever written under key.
	GetBlob(ctx context.Context, scope, key string) ([]byte, error)

	// PutBlob creates or replaces the value under key.
	PutBlob(ctx context.Context, scope, key string, value []byte) error
}

type Devices interface {
	// CreateDevice inserts a new device (id is provided by the app via ULID).
	CreateDevice(ctx context.Context, d domain.Device) error

	GetDevice(ctx context.Context, id string) (domain.Device, error)

	// TouchDevice bumps last_seen_at.
	TouchDevice(ctx context.Context, id string, at time.Time) error

	// DeleteDevicesNotSeenSince removes stale devices and their blobs,
	// returning how many devices were removed.
	DeleteDevicesNotSeenSince(ctx context.Context, cutoff time.Time) (int64, error)
}

type SigningKeys interface {
	CreateSigningKey(ctx context.Context, key domain.SigningKey) error

	// ListSigningKeys returns every key ordered oldest first.
	ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error)
}
