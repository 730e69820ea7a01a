package deck_test

import (
	"testing"

	"github.com/aussiebroadwan/werewolf/internal/setup/catalog"
	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestAssembleThreeAlphas(t *testing.T) {
	c := catalog.New()
	c.Seed(t.Context(), domain.BuiltinRoles(), nil)
	require.NoError(t, c.Add(domain.Role{Name: "Alpha", Team: domain.TeamEvil, Description: "x", Custom: true, Saved: true}))

	l := catalog.NewLedger(c)
	for range 3 {
		_, err := l.Increment("Alpha")
		require.NoError(t, err)
	}

	cards := deck.NewAssembler().Assemble(c.All())
	require.Len(t, cards, 3)

	seen := map[idx.ID]bool{}
	for _, card := range cards {
		require.Equal(t, "Alpha", card.Role)
		require.Equal(t, domain.TeamEvil, card.Team)
		require.Equal(t, "x", card.Description)
		require.True(t, card.Custom)
		require.False(t, seen[card.ID])
		seen[card.ID] = true
	}
}

func TestAssembleOrderAndSize(t *testing.T) {
	roles := []domain.Role{
		{Name: "Seer", Team: domain.TeamGood, Quantity: 1},
		{Name: "Villager", Team: domain.TeamGood, Quantity: 0},
		{Name: "Werewolf", Team: domain.TeamEvil, Quantity: 2},
	}

	cards := deck.NewAssembler().Assemble(roles)
	require.Len(t, cards, 3)
	require.Equal(t, []string{"Seer", "Werewolf", "Werewolf"}, []string{cards[0].Role, cards[1].Role, cards[2].Role})

	// Ids from one generator are ordered by assembly.
	require.Negative(t, idx.Compare(cards[0].ID, cards[1].ID))
	require.Negative(t, idx.Compare(cards[1].ID, cards[2].ID))
}

func TestIDsNeverRepeatAcrossAssemblies(t *testing.T) {
	a := &deck.Assembler{IDs: idx.NewGenerator()}
	roles := []domain.Role{{Name: "Villager", Team: domain.TeamGood, Quantity: domain.MaxQuantity}}

	seen := map[idx.ID]bool{}
	for range 20 {
		for _, card := range a.Assemble(roles) {
			require.False(t, seen[card.ID], "id %s reused", card.ID)
			seen[card.ID] = true
		}
	}
	require.Len(t, seen, 20*domain.MaxQuantity)
}

func TestEmptyDeck(t *testing.T) {
	cards := deck.NewAssembler().Assemble([]domain.Role{{Name: "Seer", Team: domain.TeamGood}})
	require.NotNil(t, cards)
	require.Empty(t, cards)
}

func TestHasRole(t *testing.T) {
	cards := deck.NewAssembler().Assemble([]domain.Role{
		{Name: domain.DreamWolf, Team: domain.TeamEvil, Quantity: 1},
	})
	require.True(t, deck.HasRole(cards, domain.DreamWolf))
	require.False(t, deck.HasRole(cards, "Seer"))
	require.False(t, deck.HasRole(nil, domain.DreamWolf))
}
