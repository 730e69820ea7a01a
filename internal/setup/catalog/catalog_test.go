package catalog_test

import (
	"context"
	"strings"
	"testing"
	"testing/quick"

	"github.com/aussiebroadwan/werewolf/internal/setup/catalog"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, custom ...domain.CustomRoleRecord) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	c.Seed(context.Background(), domain.BuiltinRoles(), custom)
	return c
}

func names(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.Name
	}
	return out
}

func TestSeed(t *testing.T) {
	t.Run("built-ins then custom", func(t *testing.T) {
		c := seeded(t, domain.CustomRoleRecord{Role: "alpha", Team: domain.TeamEvil, Custom: true, Saved: true})

		require.Len(t, c.All(), len(domain.BuiltinRoles())+1)
		require.Equal(t, []string{"alpha"}, names(c.Custom()))
	})

	t.Run("colliding custom role is skipped", func(t *testing.T) {
		c := seeded(t,
			domain.CustomRoleRecord{Role: "SEER", Team: domain.TeamEvil, Custom: true, Saved: true},
			domain.CustomRoleRecord{Role: "Alpha", Team: domain.TeamGood, Custom: true, Saved: true},
			domain.CustomRoleRecord{Role: "alpha", Team: domain.TeamEvil, Custom: true, Saved: true},
		)

		seer, err := c.Get("Seer")
		require.NoError(t, err)
		require.False(t, seer.Custom)
		require.Equal(t, []string{"Alpha"}, names(c.Custom()))
	})

	t.Run("returns only accepted records, marked custom", func(t *testing.T) {
		c := catalog.New()
		accepted := c.Seed(context.Background(), domain.BuiltinRoles(), []domain.CustomRoleRecord{
			{Role: "villager", Team: domain.TeamGood, Custom: true, Saved: true},
			{Role: "Beta", Team: domain.TeamGood, Custom: false, Saved: true},
		})

		require.Equal(t, []domain.CustomRoleRecord{
			{Role: "Beta", Team: domain.TeamGood, Custom: true, Saved: true},
		}, accepted)
		beta, err := c.Get("Beta")
		require.NoError(t, err)
		require.True(t, beta.Custom)
	})

	t.Run("reseed replaces", func(t *testing.T) {
		c := seeded(t, domain.CustomRoleRecord{Role: "Alpha", Team: domain.TeamGood, Custom: true})
		c.Seed(context.Background(), domain.BuiltinRoles(), nil)
		require.False(t, c.Exists("Alpha"))
	})
}

func TestAllIsSortedCaseInsensitively(t *testing.T) {
	c := seeded(t)
	require.NoError(t, c.Add(domain.Role{Name: "alpha", Team: domain.TeamGood, Custom: true}))
	require.NoError(t, c.Add(domain.Role{Name: "Zed", Team: domain.TeamEvil, Custom: true}))
	require.NoError(t, c.Add(domain.Role{Name: "mystic", Team: domain.TeamGood, Custom: true}))

	got := names(c.All())
	require.Equal(t, []string{
		"alpha", "Dream Wolf", "Hunter", "Mason", "Minion", "mystic",
		"Seer", "Shadow", "Sorcerer", "Villager", "Werewolf", "Zed",
	}, got)

	// The returned slice is a copy.
	all := c.All()
	all[0].Name = "mutated"
	require.True(t, c.Exists("alpha"))
}

func TestExistsAndDuplicates(t *testing.T) {
	c := seeded(t)

	for _, name := range []string{"Villager", "villager", "VILLAGER", "  Villager "} {
		require.True(t, c.Exists(name), name)
	}
	require.False(t, c.Exists("Villagers"))

	before := c.All()
	err := c.Add(domain.Role{Name: "vIlLaGeR", Team: domain.TeamGood, Custom: true})
	require.ErrorIs(t, err, catalog.ErrDuplicateName)
	require.Equal(t, before, c.All())
}

func TestDuplicateRejectionProperty(t *testing.T) {
	c := seeded(t)
	existing := names(c.All())

	f := func(pick uint8, mask uint16) bool {
		name := []rune(existing[int(pick)%len(existing)])
		for i := range name {
			if mask&(1<<(i%16)) != 0 {
				name[i] = []rune(strings.ToUpper(string(name[i])))[0]
			} else {
				name[i] = []rune(strings.ToLower(string(name[i])))[0]
			}
		}
		before := len(c.All())
		err := c.Add(domain.Role{Name: string(name), Team: domain.TeamGood, Custom: true})
		return c.Exists(string(name)) && err == catalog.ErrDuplicateName && len(c.All()) == before
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestAddRejectsInvalid(t *testing.T) {
	c := catalog.New()
	require.ErrorIs(t, c.Add(domain.Role{Name: "  ", Team: domain.TeamGood}), catalog.ErrInvalidRole)
	require.ErrorIs(t, c.Add(domain.Role{Name: "Alpha", Team: "neutral"}), catalog.ErrInvalidRole)
	require.Empty(t, c.All())
}

func TestRemove(t *testing.T) {
	c := seeded(t)
	require.Equal(t, 1, c.Remove("seer"))
	require.False(t, c.Exists("Seer"))
	require.Equal(t, 0, c.Remove("Seer"))
}

func TestUpdateKeepsName(t *testing.T) {
	c := seeded(t)
	err := c.Update("hunter", func(r *domain.Role) {
		r.Name = "Renamed"
		r.Description = "changed"
	})
	require.NoError(t, err)

	r, err := c.Get("Hunter")
	require.NoError(t, err)
	require.Equal(t, "Hunter", r.Name)
	require.Equal(t, "changed", r.Description)

	require.ErrorIs(t, c.Update("nobody", func(*domain.Role) {}), catalog.ErrRoleNotFound)
}
