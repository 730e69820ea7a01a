// Package deck expands selected quantities into dealt cards.
package deck

import (
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/pkg/idx"
)

// Assembler turns roles with quantities into card instances. Ids come from
// Source so cards from separate assemblies never collide.
type Assembler struct {
	IDs idx.Source
}

// NewAssembler returns an Assembler backed by the process-wide monotonic
// generator.
func NewAssembler() *Assembler {
	return &Assembler{IDs: idx.Default()}
}

// Assemble emits Quantity cards per role, in the order roles are given and
// then in instance order. No shuffling happens here.
func (a *Assembler) Assemble(roles []domain.Role) []domain.CardInstance {
	size := 0
	for _, r := range roles {
		size += max(r.Quantity, 0)
	}

	cards := make([]domain.CardInstance, 0, size)
	for _, r := range roles {
		for range r.Quantity {
			cards = append(cards, domain.NewCardInstance(a.IDs.New(), r))
		}
	}
	return cards
}

// HasRole reports whether any card in the deck is the named role.
func HasRole(cards []domain.CardInstance, name string) bool {
	for _, c := range cards {
		if c.Role == name {
			return true
		}
	}
	return false
}
