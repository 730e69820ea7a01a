package http

import (
	"net/http"

	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
)

type QuantitiesHandler struct {
	Registry *service.SetupRegistry
}

// HandleGet handles GET /v1/quantities
//
//	@Summary		Get Quantities
//	@Description	Returns every role's quantity, the total, and whether any role is selected.
//	@Tags			Quantities
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	setupsdk.QuantitiesResponse	"quantities, total, hasAtLeastOneSelected"
//	@Router			/v1/quantities [get].
func (h *QuantitiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toQuantities(s.Quantities()))
}

// HandleReset handles POST /v1/quantities/reset
//
//	@Summary		Reset Quantities
//	@Description	Sets every quantity back to zero.
//	@Tags			Quantities
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	setupsdk.QuantitiesResponse	"quantities, total, hasAtLeastOneSelected"
//	@Router			/v1/quantities/reset [post].
func (h *QuantitiesHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toQuantities(s.Reset()))
}
