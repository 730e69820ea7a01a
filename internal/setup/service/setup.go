package service

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/catalog"
	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
)

// RoleFilter narrows a role listing. Zero value lists everything.
type RoleFilter struct {
	Team       domain.Team
	CustomOnly bool
}

// RolesView is the ordered catalog with the selection state.
type RolesView struct {
	Roles                 []domain.Role
	Total                 int
	HasAtLeastOneSelected bool
}

// QuantitiesView is the ledger state.
type QuantitiesView struct {
	Quantities            []catalog.Quantity
	Total                 int
	HasAtLeastOneSelected bool
}

// Setup is one device's game setup: its catalog, ledger and custom roles.
// Every method holds the controller lock so operations on one device run
// one at a time.
type Setup struct {
	mu sync.Mutex

	deviceID  string
	catalog   *catalog.Catalog
	ledger    *catalog.Ledger
	roles     *CustomRoleManager
	assembler *deck.Assembler
	lastUsed  time.Time
}

// NewSetup seeds a catalog with the built-ins and the device's stored custom roles.
func NewSetup(ctx context.Context, deviceID string, stored []domain.CustomRoleRecord, w CustomRoleWriter, a *deck.Assembler) *Setup {
	c := catalog.New()
	accepted := c.Seed(ctx, domain.BuiltinRoles(), stored)

	return &Setup{
		deviceID:  deviceID,
		catalog:   c,
		ledger:    catalog.NewLedger(c),
		roles:     NewCustomRoleManager(deviceID, c, w, accepted),
		assembler: a,
		lastUsed:  time.Now(),
	}
}

func (s *Setup) DeviceID() string { return s.deviceID }

// LastUsed reports when any method last ran.
func (s *Setup) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Setup) lock() func() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	return s.mu.Unlock
}

func (s *Setup) Roles(f RoleFilter) RolesView {
	defer s.lock()()

	all := s.catalog.All()
	roles := make([]domain.Role, 0, len(all))
	for _, r := range all {
		if f.Team != "" && r.Team != f.Team {
			continue
		}
		if f.CustomOnly && !r.Custom {
			continue
		}
		roles = append(roles, r)
	}
	return RolesView{
		Roles:                 roles,
		Total:                 s.ledger.Total(),
		HasAtLeastOneSelected: s.ledger.HasAtLeastOneSelected(),
	}
}

func (s *Setup) CreateRole(ctx context.Context, candidate domain.Role) (domain.Role, error) {
	defer s.lock()()
	return s.roles.Create(ctx, candidate)
}

func (s *Setup) UpdateRole(ctx context.Context, name string, fields RoleFields) (domain.Role, error) {
	defer s.lock()()
	return s.roles.Update(ctx, name, fields)
}

func (s *Setup) DeleteRole(ctx context.Context, name string, confirmed bool) (int, error) {
	defer s.lock()()
	return s.roles.Delete(ctx, name, confirmed)
}

// PersistedRoles returns the stored collection as the manager last wrote it.
func (s *Setup) PersistedRoles() []domain.CustomRoleRecord {
	defer s.lock()()
	return s.roles.Persisted()
}

// Increment returns the role's new quantity with the updated ledger.
func (s *Setup) Increment(name string) (int, QuantitiesView, error) {
	defer s.lock()()
	q, err := s.ledger.Increment(name)
	return q, s.quantities(), err
}

func (s *Setup) Decrement(name string) (int, QuantitiesView, error) {
	defer s.lock()()
	q, err := s.ledger.Decrement(name)
	return q, s.quantities(), err
}

func (s *Setup) Quantities() QuantitiesView {
	defer s.lock()()
	return s.quantities()
}

func (s *Setup) Reset() QuantitiesView {
	defer s.lock()()
	s.ledger.Reset()
	return s.quantities()
}

func (s *Setup) quantities() QuantitiesView {
	return QuantitiesView{
		Quantities:            s.ledger.Quantities(),
		Total:                 s.ledger.Total(),
		HasAtLeastOneSelected: s.ledger.HasAtLeastOneSelected(),
	}
}

// AssembleDeck expands the current selection into cards. The deck length
// always equals the returned total.
func (s *Setup) AssembleDeck() ([]domain.CardInstance, int) {
	defer s.lock()()
	return s.assembler.Assemble(s.catalog.All()), s.ledger.Total()
}
