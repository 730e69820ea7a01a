package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
)

const readyzPingTimeout = 2 * time.Second

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe: the store answers a ping and a signing key is loaded. Also reports how many device setups are held in memory.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	setupsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	setupsdk.HealthResponse	"one or more checks failed"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet, reg *service.SetupRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &setupsdk.HealthChecks{Database: "ok", Signer: "ok", ActiveSetups: reg.Len()}
		status, code := "ok", http.StatusOK

		ctx, cancel := context.WithTimeout(r.Context(), readyzPingTimeout)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if !keys.IsReady() {
			checks.Signer = "error: no signing key loaded"
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, setupsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
