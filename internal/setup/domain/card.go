package domain

import "github.com/aussiebroadwan/werewolf/pkg/idx"

// CardInstance is one dealt card. It copies every field of the role it was
// assembled from and carries an id that is never reused.
type CardInstance struct {
	ID               idx.ID `json:"id"`
	Role             string `json:"role"`
	Team             Team   `json:"team"`
	Description      string `json:"description"`
	IsTypeOfWerewolf bool   `json:"isTypeOfWerewolf"`
	Custom           bool   `json:"custom"`
	Saved            bool   `json:"saved"`
}

// NewCardInstance copies r into a card with the given id.
func NewCardInstance(id idx.ID, r Role) CardInstance {
	return CardInstance{
		ID:               id,
		Role:             r.Name,
		Team:             r.Team,
		Description:      r.Description,
		IsTypeOfWerewolf: r.IsTypeOfWerewolf,
		Custom:           r.Custom,
		Saved:            r.Saved,
	}
}
