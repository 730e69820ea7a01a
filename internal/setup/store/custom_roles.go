package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

// CustomRoleReader loads a device's stored custom roles.
type CustomRoleReader struct {
	Blobs Blobs
}

// Load returns the device's validated custom roles, or nil when nothing is
// stored or the stored collection cannot be trusted. It never fails.
func (r CustomRoleReader) Load(ctx context.Context, deviceID string) []domain.CustomRoleRecord {
	log := slogx.FromContext(ctx)

	raw, err := r.Blobs.GetBlob(ctx, deviceID, CustomRolesKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Error("failed to read custom roles", "device_id", deviceID, "error", err)
		return nil
	}

	records, err := DecodeCustomRoles(raw)
	if err != nil {
		log.Warn("discarding stored custom roles", "device_id", deviceID, "error", err)
		return nil
	}
	return records
}

// CustomRoleWriter writes a device's full custom-role collection back.
type CustomRoleWriter struct {
	Blobs Blobs
}

// Save replaces the stored collection with records.
func (w CustomRoleWriter) Save(ctx context.Context, deviceID string, records []domain.CustomRoleRecord) error {
	raw, err := EncodeCustomRoles(records)
	if err != nil {
		return fmt.Errorf("encode custom roles: %w", err)
	}
	if err := w.Blobs.PutBlob(ctx, deviceID, CustomRolesKey, raw); err != nil {
		return fmt.Errorf("write custom roles: %w", err)
	}
	return nil
}
