package service_test

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// recordingWriter keeps every collection written and can be made to fail.
type recordingWriter struct {
	mu     sync.Mutex
	writes [][]domain.CustomRoleRecord
	fail   error
}

func (w *recordingWriter) Save(ctx context.Context, deviceID string, records []domain.CustomRoleRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail != nil {
		return w.fail
	}
	w.writes = append(w.writes, slices.Clone(records))
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.writes)
}

func (w *recordingWriter) last() []domain.CustomRoleRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.writes) == 0 {
		return nil
	}
	return w.writes[len(w.writes)-1]
}

var errDiskFull = errors.New("disk full")

func newSetup(t *testing.T, w service.CustomRoleWriter, stored ...domain.CustomRoleRecord) *service.Setup {
	t.Helper()
	if w == nil {
		w = &recordingWriter{}
	}
	return service.NewSetup(context.Background(), "device-1", stored, w, deck.NewAssembler())
}

func ptr[T any](v T) *T { return &v }

func alphaRole() domain.Role {
	return domain.Role{Name: "Alpha", Team: domain.TeamEvil, Description: "x", IsTypeOfWerewolf: false, Saved: true}
}

func alphaRecord() domain.CustomRoleRecord {
	return domain.CustomRoleRecord{Role: "Alpha", Team: domain.TeamEvil, Description: "x", Custom: true, Saved: true}
}

func quantityOf(t *testing.T, s *service.Setup, name string) int {
	t.Helper()
	for _, r := range s.Roles(service.RoleFilter{}).Roles {
		if domain.SameName(r.Name, name) {
			return r.Quantity
		}
	}
	require.FailNow(t, "role not found", name)
	return 0
}

func discardLogger() *slog.Logger { return slogx.Discard() }
