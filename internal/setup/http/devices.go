package http

import (
	"net/http"

	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
)

// DevicesHandler registers anonymous devices.
type DevicesHandler struct {
	DeviceService *service.DeviceService
}

// ServeHTTP handles POST /v1/devices
//
//	@Summary		Register Device
//	@Description	Registers an anonymous device and returns its bearer token. The token is shown only once.
//	@Tags			Devices
//	@Produce		json
//	@Success		201	{object}	setupsdk.RegisterDeviceResponse	"device_id, token, expires_at"
//	@Failure		429	{object}	setupsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	setupsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/devices [post].
func (h *DevicesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dev, err := h.DeviceService.Register(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, setupsdk.RegisterDeviceResponse{
		DeviceID:  dev.DeviceID,
		Token:     dev.Token,
		TokenType: "Bearer",
		ExpiresAt: dev.ExpiresAt,
	})
}
