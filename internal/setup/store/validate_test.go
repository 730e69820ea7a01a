package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
	"github.com/aussiebroadwan/werewolf/internal/setup/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

const alpha = `{"role":"Alpha","description":"x","team":"evil","isTypeOfWerewolf":false,"custom":true,"saved":true}`

func TestValidateRecords(t *testing.T) {
	keys := []string{"a", "b"}

	t.Run("exact key set", func(t *testing.T) {
		recs, err := store.ValidateRecords([]byte(`[{"a":1,"b":2},{"b":3,"a":4}]`), keys)
		require.NoError(t, err)
		require.Len(t, recs, 2)
	})

	t.Run("empty sequence", func(t *testing.T) {
		recs, err := store.ValidateRecords([]byte(`[]`), keys)
		require.NoError(t, err)
		require.Empty(t, recs)
	})

	bad := map[string]string{
		"malformed":      `[{"a":1`,
		"not sequence":   `{"a":1,"b":2}`,
		"null":           `null`,
		"scalar":         `42`,
		"missing key":    `[{"a":1}]`,
		"extra key":      `[{"a":1,"b":2,"c":3}]`,
		"element null":   `[null]`,
		"element array":  `[[1,2]]`,
		"one bad of two": `[{"a":1,"b":2},{"a":1}]`,
	}
	for name, raw := range bad {
		t.Run(name, func(t *testing.T) {
			recs, err := store.ValidateRecords([]byte(raw), keys)
			require.ErrorIs(t, err, store.ErrCorrupt)
			require.Nil(t, recs)
		})
	}
}

func TestDecodeCustomRoles(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		recs, err := store.DecodeCustomRoles([]byte(`[` + alpha + `]`))
		require.NoError(t, err)
		require.Equal(t, []domain.CustomRoleRecord{{
			Role: "Alpha", Description: "x", Team: domain.TeamEvil, Custom: true, Saved: true,
		}}, recs)
	})

	bad := map[string]string{
		"missing saved": `[{"role":"Alpha","description":"x","team":"evil","isTypeOfWerewolf":false,"custom":true}]`,
		"wrong type":    `[{"role":"Alpha","description":"x","team":"evil","isTypeOfWerewolf":false,"custom":true,"saved":"yes"}]`,
		"null value":    `[{"role":null,"description":"x","team":"evil","isTypeOfWerewolf":false,"custom":true,"saved":true}]`,
		"unknown team":  `[{"role":"Alpha","description":"x","team":"neutral","isTypeOfWerewolf":false,"custom":true,"saved":true}]`,
	}
	for name, raw := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := store.DecodeCustomRoles([]byte(raw))
			require.ErrorIs(t, err, store.ErrCorrupt)
		})
	}
}

func TestEncodeCustomRolesEmptyIsArray(t *testing.T) {
	raw, err := store.EncodeCustomRoles(nil)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))

	recs, err := store.DecodeCustomRoles(raw)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestCustomRolesRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewStore().Blobs()

	in := []domain.CustomRoleRecord{
		{Role: "Alpha", Description: "x", Team: domain.TeamEvil, Custom: true, Saved: true},
		{Role: "Beta", Description: "friendly \"quoted\"", Team: domain.TeamGood, IsTypeOfWerewolf: true, Custom: true, Saved: true},
	}
	require.NoError(t, store.CustomRoleWriter{Blobs: blobs}.Save(ctx, "dev-1", in))

	out := store.CustomRoleReader{Blobs: blobs}.Load(ctx, "dev-1")
	require.Equal(t, in, out)

	// Other devices see nothing.
	require.Nil(t, store.CustomRoleReader{Blobs: blobs}.Load(ctx, "dev-2"))
}

type failingBlobs struct{}

func (failingBlobs) GetBlob(ctx context.Context, scope, key string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingBlobs) PutBlob(ctx context.Context, scope, key string, value []byte) error {
	return errors.New("disk on fire")
}

func TestCustomRoleReaderNeverFails(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		require.Nil(t, store.CustomRoleReader{Blobs: memory.NewStore().Blobs()}.Load(ctx, "dev-1"))
	})

	t.Run("corrupt blob", func(t *testing.T) {
		blobs := memory.NewStore().Blobs()
		require.NoError(t, blobs.PutBlob(ctx, "dev-1", store.CustomRolesKey, []byte(`[{"role":"Alpha"}]`)))
		require.Nil(t, store.CustomRoleReader{Blobs: blobs}.Load(ctx, "dev-1"))
	})

	t.Run("read error", func(t *testing.T) {
		require.Nil(t, store.CustomRoleReader{Blobs: failingBlobs{}}.Load(ctx, "dev-1"))
	})

	t.Run("write error surfaces", func(t *testing.T) {
		err := store.CustomRoleWriter{Blobs: failingBlobs{}}.Save(ctx, "dev-1", nil)
		require.ErrorContains(t, err, "disk on fire")
	})
}
