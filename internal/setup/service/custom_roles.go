package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aussiebroadwan/werewolf/internal/setup/catalog"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

var (
	ErrNotCustom    = errors.New("role is not a custom role")
	ErrNotConfirmed = errors.New("delete requires confirmation")

	// ErrPersist wraps a failed write of the stored collection. The
	// in-memory change it accompanies has already been applied.
	ErrPersist = errors.New("failed to persist custom roles")
)

// CustomRoleWriter replaces a device's stored custom-role collection.
type CustomRoleWriter interface {
	Save(ctx context.Context, deviceID string, records []domain.CustomRoleRecord) error
}

// RoleFields are the editable fields of a custom role. Nil leaves a field as is.
type RoleFields struct {
	Team             *domain.Team
	Description      *string
	IsTypeOfWerewolf *bool
	Saved            *bool
}

// CustomRoleManager creates, edits and deletes custom roles and keeps the
// stored collection in step with the saved ones. It works on the trusted
// copy loaded at seed time and writes the whole collection back at most
// once per operation.
type CustomRoleManager struct {
	DeviceID string
	Catalog  *catalog.Catalog
	Writer   CustomRoleWriter

	persisted []domain.CustomRoleRecord
	// dirty is set while persisted holds changes the store has not accepted.
	dirty bool
}

func NewCustomRoleManager(deviceID string, c *catalog.Catalog, w CustomRoleWriter, persisted []domain.CustomRoleRecord) *CustomRoleManager {
	return &CustomRoleManager{
		DeviceID:  deviceID,
		Catalog:   c,
		Writer:    w,
		persisted: slices.Clone(persisted),
	}
}

// Persisted returns a copy of the collection as last written, or as intended
// when the last write failed.
func (m *CustomRoleManager) Persisted() []domain.CustomRoleRecord {
	return slices.Clone(m.persisted)
}

// Create adds candidate to the catalog as a custom role with quantity 0.
// Saved roles are appended to the stored collection.
func (m *CustomRoleManager) Create(ctx context.Context, candidate domain.Role) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	candidate.Custom = true
	candidate.Quantity = 0
	if m.Catalog.Exists(candidate.Name) {
		return domain.Role{}, catalog.ErrDuplicateName
	}
	if err := m.Catalog.Add(candidate); err != nil {
		return domain.Role{}, err
	}
	role, err := m.Catalog.Get(candidate.Name)
	if err != nil {
		return domain.Role{}, err
	}
	log.Info("custom role created", "role", role.Name, "saved", role.Saved)

	if !role.Saved {
		return role, m.flush(ctx)
	}
	m.persisted = append(m.persisted, role.Record())
	return role, m.save(ctx)
}

// Update edits the named custom role in place and reconciles the stored
// collection: saved roles are upserted by name, unsaved ones removed.
// Nothing is written when the stored collection would not change.
func (m *CustomRoleManager) Update(ctx context.Context, name string, fields RoleFields) (domain.Role, error) {
	current, err := m.Catalog.Get(name)
	if err != nil {
		return domain.Role{}, err
	}
	if !current.Custom {
		return domain.Role{}, ErrNotCustom
	}
	if fields.Team != nil && !fields.Team.Valid() {
		return domain.Role{}, catalog.ErrInvalidRole
	}

	_ = m.Catalog.Update(name, func(r *domain.Role) {
		if fields.Team != nil {
			r.Team = *fields.Team
		}
		if fields.Description != nil {
			r.Description = *fields.Description
		}
		if fields.IsTypeOfWerewolf != nil {
			r.IsTypeOfWerewolf = *fields.IsTypeOfWerewolf
		}
		if fields.Saved != nil {
			r.Saved = *fields.Saved
		}
	})
	role, _ := m.Catalog.Get(name)

	next := slices.Clone(m.persisted)
	at := indexRecord(next, role.Name)
	switch {
	case role.Saved && at >= 0:
		next[at] = role.Record()
	case role.Saved:
		next = append(next, role.Record())
	default:
		next = removeRecords(next, role.Name)
	}

	if slices.Equal(next, m.persisted) {
		return role, m.flush(ctx)
	}
	m.persisted = next
	return role, m.save(ctx)
}

// Delete removes every catalog entry with this name and any stored record.
// It refuses to act unless confirmed is true.
func (m *CustomRoleManager) Delete(ctx context.Context, name string, confirmed bool) (int, error) {
	if !confirmed {
		return 0, ErrNotConfirmed
	}
	role, err := m.Catalog.Get(name)
	if err != nil {
		return 0, err
	}
	if !role.Custom {
		return 0, ErrNotCustom
	}

	removed := m.Catalog.Remove(role.Name)
	slogx.FromContext(ctx).Info("custom role deleted", "role", role.Name, "removed", removed)

	next := removeRecords(slices.Clone(m.persisted), role.Name)
	if len(next) == len(m.persisted) {
		return removed, m.flush(ctx)
	}
	m.persisted = next
	return removed, m.save(ctx)
}

// flush retries a write that failed earlier. It is a no-op when the store
// already holds the collection.
func (m *CustomRoleManager) flush(ctx context.Context) error {
	if !m.dirty {
		return nil
	}
	return m.save(ctx)
}

func (m *CustomRoleManager) save(ctx context.Context) error {
	if err := m.Writer.Save(ctx, m.DeviceID, m.persisted); err != nil {
		m.dirty = true
		slogx.FromContext(ctx).Error("failed to persist custom roles", "device_id", m.DeviceID, "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	m.dirty = false
	return nil
}

func indexRecord(records []domain.CustomRoleRecord, name string) int {
	return slices.IndexFunc(records, func(r domain.CustomRoleRecord) bool {
		return domain.SameName(r.Role, name)
	})
}

func removeRecords(records []domain.CustomRoleRecord, name string) []domain.CustomRoleRecord {
	out := slices.DeleteFunc(records, func(r domain.CustomRoleRecord) bool {
		return domain.SameName(r.Role, name)
	})
	if out == nil {
		out = []domain.CustomRoleRecord{}
	}
	return out
}
