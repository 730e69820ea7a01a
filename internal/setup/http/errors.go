package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/werewolf/internal/setup/catalog"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

// persistWarning is returned alongside a successful change that could not be stored.
const persistWarning = "change applied but could not be saved on this device"

func writeError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, setupsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	writeError(w, http.StatusBadRequest, setupsdk.ErrorCodeInvalidRequest, desc)
}

// writeServiceError maps a service or catalog error onto the HTTP surface.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, setupsdk.ErrorResponse{
			Error:            setupsdk.ErrorCodeValidation,
			ErrorDescription: "invalid game",
			Details:          verr.Fields,
		})
	case errors.Is(err, catalog.ErrDuplicateName):
		writeError(w, http.StatusConflict, setupsdk.ErrorCodeDuplicateName, "a role with this name already exists")
	case errors.Is(err, catalog.ErrRoleNotFound):
		writeError(w, http.StatusNotFound, setupsdk.ErrorCodeRoleNotFound, "role not found")
	case errors.Is(err, catalog.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, setupsdk.ErrorCodeInvalidRole, "role needs a name and a team of good or evil")
	case errors.Is(err, service.ErrNotCustom):
		writeError(w, http.StatusConflict, setupsdk.ErrorCodeNotCustom, "built-in roles cannot be edited or deleted")
	case errors.Is(err, service.ErrNotConfirmed):
		writeError(w, http.StatusBadRequest, setupsdk.ErrorCodeConfirmationRequired, "pass confirm=true to delete")
	case errors.Is(err, service.ErrUnknownDevice):
		writeError(w, http.StatusUnauthorized, setupsdk.ErrorCodeUnknownDevice, "device is not registered")
	case errors.Is(err, service.ErrSessionUnavailable):
		writeError(w, http.StatusBadGateway, setupsdk.ErrorCodeSessionUnavailable, "game server did not accept the game")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, setupsdk.ErrorCodeServerError, "internal server error")
	}
}

// warningFor turns ErrPersist into a response warning. Any other error is
// returned for the caller to write.
func warningFor(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if errors.Is(err, service.ErrPersist) {
		return persistWarning, nil
	}
	return "", err
}

// setupFor resolves the authenticated device's setup, writing the error
// response itself when it cannot.
func setupFor(w http.ResponseWriter, r *http.Request, reg *service.SetupRegistry) (*service.Setup, bool) {
	s, err := reg.Get(r.Context(), httpx.DeviceIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}
	return s, true
}
