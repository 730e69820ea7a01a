package store

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
)

// KeySealer protects private key material at rest.
type KeySealer interface {
	Seal(plain []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// KeyStoreAdapter adapts the store.Store interface to the jwtx.KeyStore
// interface so jwtx never imports the domain package.
type KeyStoreAdapter struct {
	store  Store
	sealer KeySealer
}

var _ jwtx.KeyStore = (*KeyStoreAdapter)(nil)

type AdapterOption func(*KeyStoreAdapter)

// WithSealer encrypts private keys before they are written and decrypts them
// on read. Without it keys are stored as plain PEM.
func WithSealer(s KeySealer) AdapterOption {
	return func(a *KeyStoreAdapter) { a.sealer = s }
}

func NewKeyStoreAdapter(store Store, opts ...AdapterOption) *KeyStoreAdapter {
	a := &KeyStoreAdapter{store: store}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *KeyStoreAdapter) ListSigningKeys(ctx context.Context) ([]jwtx.SigningKeyRecord, error) {
	keys, err := a.store.SigningKeys().ListSigningKeys(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]jwtx.SigningKeyRecord, len(keys))
	for i, key := range keys {
		pemKey := key.PrivateKey
		if a.sealer != nil {
			if pemKey, err = a.sealer.Open(key.PrivateKey); err != nil {
				return nil, fmt.Errorf("open signing key %s: %w", key.Kid, err)
			}
		}
		records[i] = jwtx.SigningKeyRecord{
			Kid:           key.Kid,
			Algorithm:     key.Algorithm,
			PrivateKeyPEM: pemKey,
			CreatedAt:     key.CreatedAt,
		}
	}
	return records, nil
}

func (a *KeyStoreAdapter) CreateSigningKey(ctx context.Context, key jwtx.SigningKeyRecord) error {
	stored := key.PrivateKeyPEM
	if a.sealer != nil {
		var err error
		if stored, err = a.sealer.Seal(key.PrivateKeyPEM); err != nil {
			return fmt.Errorf("seal signing key %s: %w", key.Kid, err)
		}
	}
	return a.store.SigningKeys().CreateSigningKey(ctx, domain.SigningKey{
		Kid:        key.Kid,
		Algorithm:  key.Algorithm,
		PrivateKey: stored,
		CreatedAt:  key.CreatedAt,
	})
}
