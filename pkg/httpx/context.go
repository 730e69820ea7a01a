package httpx

import "context"

type ctxKey string

const (
	CtxKeyDeviceID ctxKey = "device_id"
	CtxKeyScopes   ctxKey = "scopes"
	CtxKeyClaims   ctxKey = "claims"
)

// DeviceIDFromContext returns the authenticated device, or "" when the
// request never passed AuthnMiddleware.
func DeviceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyDeviceID).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
