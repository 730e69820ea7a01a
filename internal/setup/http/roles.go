package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
)

// RolesHandler serves the device's role catalog and per-role quantities.
type RolesHandler struct {
	Registry *service.SetupRegistry
}

// HandleList handles GET /v1/roles
//
//	@Summary		List Roles
//	@Description	Returns the catalog in case-insensitive name order with each role's quantity and the running total.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			team	query		string						false	"Only roles on this team"	Enums(good, evil)
//	@Param			custom	query		bool						false	"Only custom roles"
//	@Success		200		{object}	setupsdk.ListRolesResponse	"roles, total, hasAtLeastOneSelected"
//	@Failure		400		{object}	setupsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	setupsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var f service.RoleFilter

	q := r.URL.Query()
	if team := q.Get("team"); team != "" {
		f.Team = domain.Team(team)
		if !f.Team.Valid() {
			writeBadRequest(w, "team must be good or evil")
			return
		}
	}
	if custom := q.Get("custom"); custom != "" {
		v, err := strconv.ParseBool(custom)
		if err != nil {
			writeBadRequest(w, "custom must be true or false")
			return
		}
		f.CustomOnly = v
	}

	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	view := s.Roles(f)
	httpx.WriteJSON(w, http.StatusOK, setupsdk.ListRolesResponse{
		Roles:                 toRoles(view.Roles),
		Total:                 view.Total,
		HasAtLeastOneSelected: view.HasAtLeastOneSelected,
	})
}

// HandleCreate handles POST /v1/roles
//
//	@Summary		Create Custom Role
//	@Description	Adds a custom role with quantity 0. Saved roles are also stored for the device.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		setupsdk.CreateRoleRequest	true	"Role fields"
//	@Success		201		{object}	setupsdk.RoleResponse		"role, warning when it could not be stored"
//	@Failure		400		{object}	setupsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	setupsdk.ErrorResponse		"duplicate_name"
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req setupsdk.CreateRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	role, err := s.CreateRole(r.Context(), domain.Role{
		Name:             req.Role,
		Team:             domain.Team(req.Team),
		Description:      req.Description,
		IsTypeOfWerewolf: req.IsTypeOfWerewolf,
		Saved:            req.Saved,
	})
	warning, err := warningFor(err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, setupsdk.RoleResponse{Role: toRole(role), Warning: warning})
}

// HandleUpdate handles PATCH /v1/roles/{name}
//
//	@Summary		Update Custom Role
//	@Description	Edits a custom role's team, description, werewolf flag or saved flag. The name cannot change.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string						true	"Role name"
//	@Param			request	body		setupsdk.UpdateRoleRequest	true	"Fields to change"
//	@Success		200		{object}	setupsdk.RoleResponse		"role, warning when it could not be stored"
//	@Failure		400		{object}	setupsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	setupsdk.ErrorResponse		"role_not_found"
//	@Failure		409		{object}	setupsdk.ErrorResponse		"not_custom"
//	@Router			/v1/roles/{name} [patch].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req setupsdk.UpdateRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	fields := service.RoleFields{
		Description:      req.Description,
		IsTypeOfWerewolf: req.IsTypeOfWerewolf,
		Saved:            req.Saved,
	}
	if req.Team != nil {
		team := domain.Team(*req.Team)
		fields.Team = &team
	}

	role, err := s.UpdateRole(r.Context(), r.PathValue("name"), fields)
	warning, err := warningFor(err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, setupsdk.RoleResponse{Role: toRole(role), Warning: warning})
}

// HandleDelete handles DELETE /v1/roles/{name}
//
//	@Summary		Delete Custom Role
//	@Description	Removes a custom role from the catalog and from storage. Requires confirm=true.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string						true	"Role name"
//	@Param			confirm	query		bool						true	"Must be true"
//	@Success		200		{object}	setupsdk.DeleteRoleResponse	"removed, warning when it could not be stored"
//	@Failure		400		{object}	setupsdk.ErrorResponse		"confirmation_required"
//	@Failure		404		{object}	setupsdk.ErrorResponse		"role_not_found"
//	@Router			/v1/roles/{name} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	removed, err := s.DeleteRole(r.Context(), r.PathValue("name"), confirmed)
	warning, err := warningFor(err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, setupsdk.DeleteRoleResponse{Removed: removed, Warning: warning})
}

// HandleIncrement handles POST /v1/roles/{name}/increment
//
//	@Summary		Increment Quantity
//	@Description	Adds one copy of the role to the deck. Quantities stop at 25.
//	@Tags			Quantities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string							true	"Role name"
//	@Success		200		{object}	setupsdk.QuantityChangeResponse	"role, quantity, total"
//	@Failure		404		{object}	setupsdk.ErrorResponse			"role_not_found"
//	@Router			/v1/roles/{name}/increment [post].
func (h *RolesHandler) HandleIncrement(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, (*service.Setup).Increment)
}

// HandleDecrement handles POST /v1/roles/{name}/decrement
//
//	@Summary		Decrement Quantity
//	@Description	Removes one copy of the role from the deck. Quantities stop at 0.
//	@Tags			Quantities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string							true	"Role name"
//	@Success		200		{object}	setupsdk.QuantityChangeResponse	"role, quantity, total"
//	@Failure		404		{object}	setupsdk.ErrorResponse			"role_not_found"
//	@Router			/v1/roles/{name}/decrement [post].
func (h *RolesHandler) HandleDecrement(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, (*service.Setup).Decrement)
}

func (h *RolesHandler) changeQuantity(
	w http.ResponseWriter,
	r *http.Request,
	change func(*service.Setup, string) (int, service.QuantitiesView, error),
) {
	s, ok := setupFor(w, r, h.Registry)
	if !ok {
		return
	}

	name := r.PathValue("name")
	q, view, err := change(s, name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	for _, e := range view.Quantities {
		if domain.SameName(e.Name, name) {
			name = e.Name
			break
		}
	}
	httpx.WriteJSON(w, http.StatusOK, setupsdk.QuantityChangeResponse{
		Role:                  name,
		Quantity:              q,
		Total:                 view.Total,
		HasAtLeastOneSelected: view.HasAtLeastOneSelected,
	})
}
