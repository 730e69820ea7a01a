// Package catalog holds the roles a host can put in a deck and the
// per-role quantities selected for the next game.
package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

var (
	ErrDuplicateName = errors.New("catalog: duplicate role name")
	ErrRoleNotFound  = errors.New("catalog: role not found")
	ErrInvalidRole   = errors.New("catalog: invalid role")
)

// Catalog is an ordered set of roles keyed by case-insensitive name. It is
// not safe for concurrent use; callers serialise access.
type Catalog struct {
	roles []domain.Role
}

func New() *Catalog {
	return &Catalog{}
}

// Seed resets the catalog to the built-ins followed by the stored custom
// roles. A custom role whose name is already taken is skipped. The records
// that made it into the catalog are returned, marked custom.
func (c *Catalog) Seed(ctx context.Context, builtins []domain.Role, custom []domain.CustomRoleRecord) []domain.CustomRoleRecord {
	log := slogx.FromContext(ctx)

	c.roles = c.roles[:0]
	for _, r := range builtins {
		if err := c.Add(r); err != nil {
			log.Warn("skipping built-in role", "role", r.Name, "error", err)
		}
	}
	accepted := make([]domain.CustomRoleRecord, 0, len(custom))
	for _, rec := range custom {
		if err := c.Add(rec.ToRole()); err != nil {
			log.Warn("skipping stored custom role", "role", rec.Role, "error", err)
			continue
		}
		rec.Custom = true
		accepted = append(accepted, rec)
	}
	return accepted
}

// Exists reports whether a role with this name exists, ignoring case.
func (c *Catalog) Exists(name string) bool {
	return c.index(name) >= 0
}

// All returns a copy of every role sorted by case-insensitive name.
func (c *Catalog) All() []domain.Role {
	return slices.Clone(c.roles)
}

// Custom returns the user-defined roles in catalog order.
func (c *Catalog) Custom() []domain.Role {
	var out []domain.Role
	for _, r := range c.roles {
		if r.Custom {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) Get(name string) (domain.Role, error) {
	i := c.index(name)
	if i < 0 {
		return domain.Role{}, ErrRoleNotFound
	}
	return c.roles[i], nil
}

// Add inserts r keeping catalog order. The quantity is clamped into range.
func (c *Catalog) Add(r domain.Role) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || !r.Team.Valid() {
		return ErrInvalidRole
	}
	if c.Exists(r.Name) {
		return ErrDuplicateName
	}
	r.Quantity = clamp(r.Quantity)

	at, _ := slices.BinarySearchFunc(c.roles, r, compareRoles)
	// Land after any equal keys so insertion stays stable.
	for at < len(c.roles) && compareRoles(c.roles[at], r) == 0 {
		at++
	}
	c.roles = slices.Insert(c.roles, at, r)
	return nil
}

// Remove deletes every role matching name and returns how many went.
func (c *Catalog) Remove(name string) int {
	before := len(c.roles)
	c.roles = slices.DeleteFunc(c.roles, func(r domain.Role) bool {
		return domain.SameName(r.Name, name)
	})
	return before - len(c.roles)
}

// Update applies fn to the named role in place. fn must not rename the role.
func (c *Catalog) Update(name string, fn func(r *domain.Role)) error {
	i := c.index(name)
	if i < 0 {
		return ErrRoleNotFound
	}
	original := c.roles[i].Name
	fn(&c.roles[i])
	c.roles[i].Name = original
	c.roles[i].Quantity = clamp(c.roles[i].Quantity)
	return nil
}

func (c *Catalog) index(name string) int {
	name = strings.TrimSpace(name)
	return slices.IndexFunc(c.roles, func(r domain.Role) bool {
		return domain.SameName(r.Name, name)
	})
}

func compareRoles(a, b domain.Role) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

func clamp(q int) int {
	return min(max(q, 0), domain.MaxQuantity)
}
