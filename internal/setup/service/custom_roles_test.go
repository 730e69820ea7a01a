package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/werewolf/internal/setup/catalog"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomRole(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate of built-in in any case", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w)
		for _, r := range []string{"Villager", "villager", "VILLAGER"} {
			_, _, _ = s.Increment("Villager")
			before := s.Roles(service.RoleFilter{})

			_, err := s.CreateRole(ctx, domain.Role{Name: r, Team: domain.TeamGood, Saved: true})
			require.ErrorIs(t, err, catalog.ErrDuplicateName)
			require.Equal(t, before, s.Roles(service.RoleFilter{}))
		}
		require.Zero(t, w.count())
	})

	t.Run("saved role is persisted", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w)

		role, err := s.CreateRole(ctx, alphaRole())
		require.NoError(t, err)
		require.True(t, role.Custom)
		require.Zero(t, role.Quantity)

		require.Len(t, s.Roles(service.RoleFilter{CustomOnly: true}).Roles, 1)
		require.Equal(t, []domain.CustomRoleRecord{alphaRecord()}, w.last())
	})

	t.Run("unsaved role is not persisted", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w)

		r := alphaRole()
		r.Saved = false
		_, err := s.CreateRole(ctx, r)
		require.NoError(t, err)
		require.Zero(t, w.count())
	})

	t.Run("appends to existing stored collection", func(t *testing.T) {
		w := &recordingWriter{}
		beta := domain.CustomRoleRecord{Role: "Beta", Team: domain.TeamGood, Custom: true, Saved: true}
		s := newSetup(t, w, beta)

		_, err := s.CreateRole(ctx, alphaRole())
		require.NoError(t, err)
		require.Equal(t, []domain.CustomRoleRecord{beta, alphaRecord()}, w.last())
	})

	t.Run("write failure keeps in-memory role", func(t *testing.T) {
		w := &recordingWriter{fail: errDiskFull}
		s := newSetup(t, w)

		_, err := s.CreateRole(ctx, alphaRole())
		require.ErrorIs(t, err, service.ErrPersist)
		require.ErrorIs(t, err, errDiskFull)
		require.Len(t, s.Roles(service.RoleFilter{CustomOnly: true}).Roles, 1)

		// The next successful write carries it.
		w.fail = nil
		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Description: ptr("y")})
		require.NoError(t, err)
		require.Len(t, w.last(), 1)
		require.Equal(t, "y", w.last()[0].Description)
	})

	t.Run("invalid team", func(t *testing.T) {
		s := newSetup(t, nil)
		_, err := s.CreateRole(ctx, domain.Role{Name: "Gamma", Team: "neutral"})
		require.ErrorIs(t, err, catalog.ErrInvalidRole)
	})
}

func TestUpdateCustomRole(t *testing.T) {
	ctx := context.Background()

	t.Run("unsave removes record and is idempotent", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w, alphaRecord())

		fields := service.RoleFields{Saved: ptr(false)}
		role, err := s.UpdateRole(ctx, "Alpha", fields)
		require.NoError(t, err)
		require.False(t, role.Saved)
		require.Equal(t, 1, w.count())
		require.Equal(t, []domain.CustomRoleRecord{}, w.last())

		_, err = s.UpdateRole(ctx, "Alpha", fields)
		require.NoError(t, err)
		require.Equal(t, 1, w.count(), "identical update must not write")
		require.Empty(t, s.PersistedRoles())
	})

	t.Run("save upserts by name", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w)
		r := alphaRole()
		r.Saved = false
		_, err := s.CreateRole(ctx, r)
		require.NoError(t, err)

		_, err = s.UpdateRole(ctx, "alpha", service.RoleFields{Saved: ptr(true)})
		require.NoError(t, err)
		require.Equal(t, []domain.CustomRoleRecord{alphaRecord()}, w.last())

		team := domain.TeamGood
		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Team: &team, IsTypeOfWerewolf: ptr(true)})
		require.NoError(t, err)
		require.Len(t, w.last(), 1)
		require.Equal(t, domain.TeamGood, w.last()[0].Team)
		require.True(t, w.last()[0].IsTypeOfWerewolf)

		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Team: &team, IsTypeOfWerewolf: ptr(true)})
		require.NoError(t, err)
		require.Equal(t, 2, w.count(), "identical update must not write")
	})

	t.Run("quantity survives edit", func(t *testing.T) {
		s := newSetup(t, nil, alphaRecord())
		_, _, err := s.Increment("Alpha")
		require.NoError(t, err)

		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Description: ptr("new")})
		require.NoError(t, err)
		require.Equal(t, 1, quantityOf(t, s, "Alpha"))
	})

	t.Run("errors", func(t *testing.T) {
		s := newSetup(t, nil, alphaRecord())

		_, err := s.UpdateRole(ctx, "Nobody", service.RoleFields{})
		require.ErrorIs(t, err, catalog.ErrRoleNotFound)

		_, err = s.UpdateRole(ctx, "Seer", service.RoleFields{Description: ptr("hacked")})
		require.ErrorIs(t, err, service.ErrNotCustom)

		bad := domain.Team("neutral")
		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Team: &bad})
		require.ErrorIs(t, err, catalog.ErrInvalidRole)
	})
}

func TestDeleteCustomRole(t *testing.T) {
	ctx := context.Background()

	t.Run("requires confirmation", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w, alphaRecord())

		_, err := s.DeleteRole(ctx, "Alpha", false)
		require.ErrorIs(t, err, service.ErrNotConfirmed)
		require.Len(t, s.Roles(service.RoleFilter{CustomOnly: true}).Roles, 1)
		require.Zero(t, w.count())
	})

	t.Run("last stored role leaves empty collection", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w, alphaRecord())
		_, _, _ = s.Increment("Alpha")

		n, err := s.DeleteRole(ctx, "alpha", true)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Empty(t, s.Roles(service.RoleFilter{CustomOnly: true}).Roles)
		require.Zero(t, s.Quantities().Total)

		require.Equal(t, 1, w.count())
		require.NotNil(t, w.last())
		require.Empty(t, w.last())
	})

	t.Run("unsaved role deletes without writing", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w)
		r := alphaRole()
		r.Saved = false
		_, err := s.CreateRole(ctx, r)
		require.NoError(t, err)

		n, err := s.DeleteRole(ctx, "Alpha", true)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Zero(t, w.count())
	})

	t.Run("built-in and unknown", func(t *testing.T) {
		s := newSetup(t, nil)
		_, err := s.DeleteRole(ctx, "Seer", true)
		require.ErrorIs(t, err, service.ErrNotCustom)
		_, err = s.DeleteRole(ctx, "Nobody", true)
		require.ErrorIs(t, err, catalog.ErrRoleNotFound)
	})

	t.Run("write failure keeps deletion", func(t *testing.T) {
		w := &recordingWriter{fail: errDiskFull}
		s := newSetup(t, w, alphaRecord())

		_, err := s.DeleteRole(ctx, "Alpha", true)
		require.ErrorIs(t, err, service.ErrPersist)
		require.Empty(t, s.Roles(service.RoleFilter{CustomOnly: true}).Roles)
		require.Empty(t, s.PersistedRoles())
	})
}

func TestFailedWriteIsRetried(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated update after failure writes once", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w, alphaRecord())

		w.fail = errDiskFull
		_, err := s.UpdateRole(ctx, "Alpha", service.RoleFields{Saved: ptr(false)})
		require.ErrorIs(t, err, service.ErrPersist)
		require.Zero(t, w.count())

		w.fail = nil
		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Saved: ptr(false)})
		require.NoError(t, err)
		require.Equal(t, 1, w.count())
		require.Equal(t, []domain.CustomRoleRecord{}, w.last())

		// Stored and in-memory agree now, so a third call writes nothing.
		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Saved: ptr(false)})
		require.NoError(t, err)
		require.Equal(t, 1, w.count())
	})

	t.Run("failure surfaces until a write succeeds", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w, alphaRecord())

		w.fail = errDiskFull
		_, err := s.UpdateRole(ctx, "Alpha", service.RoleFields{Saved: ptr(false)})
		require.ErrorIs(t, err, service.ErrPersist)
		_, err = s.UpdateRole(ctx, "Alpha", service.RoleFields{Saved: ptr(false)})
		require.ErrorIs(t, err, service.ErrPersist)
	})

	t.Run("delete of unsaved role flushes pending write", func(t *testing.T) {
		w := &recordingWriter{}
		s := newSetup(t, w, alphaRecord())

		r := alphaRole()
		r.Name = "Gamma"
		r.Saved = false
		_, err := s.CreateRole(ctx, r)
		require.NoError(t, err)

		w.fail = errDiskFull
		_, err = s.DeleteRole(ctx, "Alpha", true)
		require.ErrorIs(t, err, service.ErrPersist)

		w.fail = nil
		removed, err := s.DeleteRole(ctx, "Gamma", true)
		require.NoError(t, err)
		require.Equal(t, 1, removed)
		require.Equal(t, 1, w.count())
		require.Equal(t, []domain.CustomRoleRecord{}, w.last())
	})
}

func TestStoredRecordsTheCatalogRejected(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{}
	s := newSetup(t, w,
		domain.CustomRoleRecord{Role: "villager", Team: domain.TeamGood, Custom: true, Saved: true},
		domain.CustomRoleRecord{Role: "Beta", Team: domain.TeamGood, Custom: false, Saved: true},
	)

	require.Equal(t, []domain.CustomRoleRecord{
		{Role: "Beta", Team: domain.TeamGood, Custom: true, Saved: true},
	}, s.PersistedRoles())

	_, err := s.DeleteRole(ctx, "villager", true)
	require.ErrorIs(t, err, service.ErrNotCustom)

	removed, err := s.DeleteRole(ctx, "Beta", true)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	require.Equal(t, []domain.CustomRoleRecord{}, w.last())
}
