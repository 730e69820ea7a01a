package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and puts the device id, scopes
// and claims on the request context. Failures are 401 with a
// WWW-Authenticate challenge and an invalid_token JSON body.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeInvalidToken(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err == nil {
				err = claims.ValidateExpiry()
			}
			if err != nil {
				slogx.FromContext(r.Context()).Warn("device token rejected", "error", err)
				writeInvalidToken(w, describeTokenError(err))
				return
			}

			ctx := contextWithAuth(r.Context(), claims)
			ctx = slogx.WithDevice(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func describeTokenError(err error) string {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return "token expired"
	case errors.Is(err, jwtx.ErrIssuer):
		return "token was issued by someone else"
	default:
		return "token verification failed"
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyDeviceID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyScopes, c.Scopes)
	return context.WithValue(ctx, CtxKeyClaims, c)
}

func writeInvalidToken(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer error="invalid_token", error_description=%q`, desc))
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
