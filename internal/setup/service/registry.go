package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

var ErrUnknownDevice = errors.New("unknown device")

// CustomRoleLoader reads a device's stored custom roles, returning nil for
// anything it cannot trust.
type CustomRoleLoader interface {
	Load(ctx context.Context, deviceID string) []domain.CustomRoleRecord
}

// SetupRegistry owns one Setup per device, seeding each lazily on first use.
type SetupRegistry struct {
	Devices   store.Devices
	Loader    CustomRoleLoader
	Writer    CustomRoleWriter
	Assembler *deck.Assembler

	mu     sync.Mutex
	setups map[string]*Setup
}

func NewSetupRegistry(s store.Store, a *deck.Assembler) *SetupRegistry {
	return &SetupRegistry{
		Devices:   s.Devices(),
		Loader:    store.CustomRoleReader{Blobs: s.Blobs()},
		Writer:    store.CustomRoleWriter{Blobs: s.Blobs()},
		Assembler: a,
		setups:    make(map[string]*Setup),
	}
}

// Get returns the device's Setup, seeding it from storage if needed. Every
// call marks the device as seen so housekeeping never purges an active one.
// Devices that were never registered (or were purged) get ErrUnknownDevice.
func (r *SetupRegistry) Get(ctx context.Context, deviceID string) (*Setup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.Devices.TouchDevice(ctx, deviceID, time.Now().UTC()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			delete(r.setups, deviceID)
			return nil, ErrUnknownDevice
		}
		return nil, fmt.Errorf("touch device: %w", err)
	}

	if s, ok := r.setups[deviceID]; ok {
		return s, nil
	}

	stored := r.Loader.Load(ctx, deviceID)
	s := NewSetup(ctx, deviceID, stored, r.Writer, r.Assembler)
	r.setups[deviceID] = s

	slogx.FromContext(ctx).Debug("setup seeded", "device_id", deviceID, "custom_roles", len(stored))
	return s, nil
}

// EvictIdle drops every Setup not used since cutoff and returns how many
// went. Saved custom roles are reloaded on next use; quantities and unsaved
// roles are lost.
func (r *SetupRegistry) EvictIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.setups {
		if s.LastUsed().Before(cutoff) {
			delete(r.setups, id)
			evicted++
		}
	}
	return evicted
}

func (r *SetupRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.setups)
}
