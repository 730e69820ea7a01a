package httpx

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/werewolf/pkg/slogx"
	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket: RequestsPerWindow refill over Window,
// with up to Burst spent at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

func (c RateLimitConfig) perSecond() rate.Limit {
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// Profiles by endpoint cost. Each one can be overridden with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and
// RATELIMIT_<NAME>_BURST, read once at startup.
var (
	// StrictLimit guards device registration, which mints a long lived token.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit guards game creation; every call opens a game server session.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit covers catalog and quantity edits, roughly one per tap.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// PublicLimit covers jwks and join QR codes.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

type rateLimitEnv struct {
	Requests  int `env:"REQUESTS"`
	WindowSec int `env:"WINDOW_SEC"`
	Burst     int `env:"BURST"`
}

// ParseRateLimitFromEnv applies RATELIMIT_<name>_* overrides to def.
// Unparseable input leaves def untouched; non-positive values are ignored.
func ParseRateLimitFromEnv(name string, def RateLimitConfig) RateLimitConfig {
	var raw rateLimitEnv
	if err := env.ParseWithOptions(&raw, env.Options{Prefix: "RATELIMIT_" + name + "_"}); err != nil {
		return def
	}

	cfg := def
	if raw.Requests > 0 {
		cfg.RequestsPerWindow = raw.Requests
	}
	if raw.WindowSec > 0 {
		cfg.Window = time.Duration(raw.WindowSec) * time.Second
	}
	if raw.Burst > 0 {
		cfg.Burst = raw.Burst
	}
	return cfg
}

// KeyExtractor decides which bucket a request draws from. An empty key
// means the request is not limited.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the first X-Forwarded-For hop, then X-Real-IP, then
// the connection's remote address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// DeviceKeyExtractor returns the authenticated device, or "".
func DeviceKeyExtractor(r *http.Request) string {
	return DeviceIDFromContext(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of each extractor with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets holds one limiter per key. Keys idle for longer than idleAfter are
// swept on the next lookup after sweepEvery has passed.
type buckets struct {
	cfg        RateLimitConfig
	idleAfter  time.Duration
	sweepEvery time.Duration

	mu        sync.Mutex
	byKey     map[string]*bucket
	lastSweep time.Time
}

func newBuckets(cfg RateLimitConfig) *buckets {
	// A bucket idle for a full window plus margin has refilled completely,
	// so dropping it loses nothing.
	idle := 2 * cfg.Window
	return &buckets{
		cfg:        cfg,
		idleAfter:  idle,
		sweepEvery: max(idle, time.Minute),
		byKey:      make(map[string]*bucket),
		lastSweep:  time.Now(),
	}
}

func (b *buckets) get(key string, now time.Time) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()

	if now.Sub(b.lastSweep) >= b.sweepEvery {
		for k, v := range b.byKey {
			if now.Sub(v.lastSeen) > b.idleAfter {
				delete(b.byKey, k)
			}
		}
		b.lastSweep = now
	}

	bk, ok := b.byKey[key]
	if !ok {
		bk = &bucket{limiter: rate.NewLimiter(b.cfg.perSecond(), b.cfg.Burst)}
		b.byKey[key] = bk
	}
	bk.lastSeen = now
	return bk.limiter
}

// RateLimitMiddleware rejects requests with 429 once the caller's bucket is
// empty. Retry-After carries the wait until the next token.
func RateLimitMiddleware(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	b := newBuckets(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyOf(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key for request, letting it through")
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			res := b.get(key, now).ReserveN(now, 1)
			delay := res.DelayFrom(now)
			if delay == 0 {
				next.ServeHTTP(w, r)
				return
			}

			// Hand the token back; the request is refused, not queued.
			res.CancelAt(now)
			retryAfter := max(int(delay.Seconds()), 1)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", key,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Too many requests. Please try again later.")
		})
	}
}

func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByDevice keys on device and IP together, so one device cannot
// starve another behind the same NAT.
func RateLimitByDevice(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", DeviceKeyExtractor, IPKeyExtractor))
}
