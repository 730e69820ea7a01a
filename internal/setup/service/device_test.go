package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/internal/setup/store/drivers/memory"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestDeviceRegister(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	km, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: "werewolf-setup"})
	require.NoError(t, err)

	svc := &service.DeviceService{
		Store:    st,
		Signer:   km.Signer,
		Issuer:   "werewolf-setup",
		TokenTTL: jwtx.DefaultDeviceTokenTTL,
	}

	dev, err := svc.Register(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, dev.DeviceID)
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultDeviceTokenTTL), dev.ExpiresAt, time.Minute)

	t.Run("token carries device and scope", func(t *testing.T) {
		claims, err := km.Verifier.Verify(dev.Token)
		require.NoError(t, err)
		require.Equal(t, dev.DeviceID, claims.Subject)
		require.True(t, claims.HasScope(jwtx.ScopeSetupWrite))
		require.False(t, claims.HasScope(jwtx.ScopeGameHost))
	})

	t.Run("device is stored", func(t *testing.T) {
		got, err := st.Devices().GetDevice(ctx, dev.DeviceID)
		require.NoError(t, err)
		require.Equal(t, dev.DeviceID, got.ID)
	})

	t.Run("registered device has a setup", func(t *testing.T) {
		reg := service.NewSetupRegistry(st, deck.NewAssembler())
		s, err := reg.Get(ctx, dev.DeviceID)
		require.NoError(t, err)
		require.Equal(t, dev.DeviceID, s.DeviceID())
	})

	t.Run("ids are unique", func(t *testing.T) {
		other, err := svc.Register(ctx)
		require.NoError(t, err)
		require.NotEqual(t, dev.DeviceID, other.DeviceID)
	})
}
