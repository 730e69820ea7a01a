package jwtx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type memKeyStore struct {
	records []jwtx.SigningKeyRecord
	failOn  error
}

func (m *memKeyStore) ListSigningKeys(ctx context.Context) ([]jwtx.SigningKeyRecord, error) {
	return m.records, nil
}

func (m *memKeyStore) CreateSigningKey(ctx context.Context, key jwtx.SigningKeyRecord) error {
	if m.failOn != nil {
		return m.failOn
	}
	m.records = append(m.records, key)
	return nil
}

func TestNewKeyManager(t *testing.T) {
	ctx := context.Background()

	t.Run("requires issuer", func(t *testing.T) {
		_, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{})
		require.Error(t, err)
	})

	t.Run("ephemeral", func(t *testing.T) {
		km, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer})
		require.NoError(t, err)
		require.True(t, km.IsReady())
		require.Contains(t, km.Signer.KID(), "werewolf-")

		token, err := km.Signer.Sign(jwtx.NewDeviceClaims("d1", nil, time.Minute, exampleIssuer, time.Now()))
		require.NoError(t, err)

		claims, err := km.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "d1", claims.Subject)
	})

	t.Run("persisted key survives restart", func(t *testing.T) {
		store := &memKeyStore{}

		first, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer, Store: store})
		require.NoError(t, err)
		require.Len(t, store.records, 1)

		token, err := first.Signer.Sign(jwtx.NewDeviceClaims("d1", nil, time.Minute, exampleIssuer, time.Now()))
		require.NoError(t, err)

		second, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer, Store: store})
		require.NoError(t, err)
		require.Len(t, store.records, 1)
		require.Equal(t, first.Signer.KID(), second.Signer.KID())

		_, err = second.Verifier.Verify(token)
		require.NoError(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &memKeyStore{failOn: errors.New("disk full")}
		_, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer, Store: store})
		require.Error(t, err)
	})
}
