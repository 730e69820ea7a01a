package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
	"github.com/aussiebroadwan/werewolf/pkg/idx"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

// DeviceService registers anonymous devices and mints their bearer tokens.
type DeviceService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// RegisteredDevice is returned once, at registration.
type RegisteredDevice struct {
	DeviceID  string
	Token     string
	ExpiresAt time.Time
}

func (s *DeviceService) Register(ctx context.Context) (RegisteredDevice, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	deviceID := idx.New().String()
	err := s.Store.Devices().CreateDevice(ctx, domain.Device{
		ID:         deviceID,
		CreatedAt:  now,
		LastSeenAt: now,
	})
	if err != nil {
		l.Error("failed to create device", "error", err)
		return RegisteredDevice{}, err
	}

	claims := jwtx.NewDeviceClaims(deviceID, []string{jwtx.ScopeSetupWrite}, s.TokenTTL, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign device token", "error", err)
		return RegisteredDevice{}, err
	}

	l.Info("device registered", "device_id", deviceID)
	return RegisteredDevice{
		DeviceID:  deviceID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
