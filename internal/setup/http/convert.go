package http

import (
	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
)

func toRole(r domain.Role) setupsdk.Role {
	return setupsdk.Role{
		Role:             r.Name,
		Team:             string(r.Team),
		Description:      r.Description,
		IsTypeOfWerewolf: r.IsTypeOfWerewolf,
		Custom:           r.Custom,
		Saved:            r.Saved,
		Quantity:         r.Quantity,
	}
}

func toRoles(rs []domain.Role) []setupsdk.Role {
	out := make([]setupsdk.Role, len(rs))
	for i, r := range rs {
		out[i] = toRole(r)
	}
	return out
}

func toCards(cs []domain.CardInstance) []setupsdk.Card {
	out := make([]setupsdk.Card, len(cs))
	for i, c := range cs {
		out[i] = setupsdk.Card{
			ID:               c.ID.String(),
			Role:             c.Role,
			Team:             string(c.Team),
			Description:      c.Description,
			IsTypeOfWerewolf: c.IsTypeOfWerewolf,
			Custom:           c.Custom,
			Saved:            c.Saved,
		}
	}
	return out
}

func toQuantities(v service.QuantitiesView) setupsdk.QuantitiesResponse {
	qs := make([]setupsdk.Quantity, len(v.Quantities))
	for i, q := range v.Quantities {
		qs[i] = setupsdk.Quantity{Role: q.Name, Quantity: q.Quantity}
	}
	return setupsdk.QuantitiesResponse{
		Quantities:            qs,
		Total:                 v.Total,
		HasAtLeastOneSelected: v.HasAtLeastOneSelected,
	}
}
