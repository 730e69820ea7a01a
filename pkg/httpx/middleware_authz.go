package httpx

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// RequireAnyScope lets the request through when the token carries at least
// one of required. Otherwise it answers 403 insufficient_scope.
func RequireAnyScope(required ...string) Middleware {
	challenge := fmt.Sprintf(`Bearer error="insufficient_scope", scope=%q`, strings.Join(required, " "))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			granted := scopesFromCtx(r.Context())
			if slices.ContainsFunc(required, func(s string) bool { return slices.Contains(granted, s) }) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("WWW-Authenticate", challenge)
			WriteError(w, http.StatusForbidden, "insufficient_scope", "token lacks scope "+strings.Join(required, " or "))
		})
	}
}
