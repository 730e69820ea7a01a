package http

import (
	"net/http"

	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/setupsdk"
)

// JWKSHandler exposes the public keys for device and host tokens.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify device and host tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	setupsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, setupsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
