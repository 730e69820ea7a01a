package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
	"github.com/aussiebroadwan/werewolf/pkg/httpx"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"

	_ "github.com/aussiebroadwan/werewolf/api/setup" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	Registry      *service.SetupRegistry
	DeviceService *service.DeviceService
	GameService   *service.GameService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerDevices()
	r.registerRoles()
	r.registerQuantities()
	r.registerGames()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Werewolf Game Setup API
//	@version		0.1.0
//	@description	Per-device role catalog, quantity selection and deck assembly for werewolf games.
//	@description
//	@description				Devices register anonymously and receive an EdDSA-signed bearer token, verifiable via the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/werewolf
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Device token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// device wraps a per-device handler with bearer auth, the setup:write scope
// and a per-device rate limit.
func (r *Router) device(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(jwtx.ScopeSetupWrite),
		httpx.RateLimitByDevice(limit),
	)
}

func (r *Router) registerDevices() {
	h := &DevicesHandler{DeviceService: r.DeviceService}

	// POST /v1/devices - strict rate limit by IP (mints long-lived tokens)
	r.Mux.Handle("POST /v1/devices",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{Registry: r.Registry}

	r.Mux.Handle("GET /v1/roles", r.device(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/roles", r.device(h.HandleCreate, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/roles/{name}", r.device(h.HandleUpdate, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/roles/{name}", r.device(h.HandleDelete, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/roles/{name}/increment", r.device(h.HandleIncrement, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/roles/{name}/decrement", r.device(h.HandleDecrement, httpx.LenientLimit))
}

func (r *Router) registerQuantities() {
	h := &QuantitiesHandler{Registry: r.Registry}

	r.Mux.Handle("GET /v1/quantities", r.device(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/quantities/reset", r.device(h.HandleReset, httpx.LenientLimit))
}

func (r *Router) registerGames() {
	h := &GamesHandler{Registry: r.Registry, GameService: r.GameService}

	r.Mux.Handle("POST /v1/deck", r.device(h.HandleDeck, httpx.LenientLimit))

	// POST /v1/games - moderate rate limit (each call opens a game server session)
	r.Mux.Handle("POST /v1/games", r.device(h.HandleCreate, httpx.ModerateLimit))

	// GET /v1/games/{code}/qr - public, players scan it from the host's screen
	r.Mux.Handle("GET /v1/games/{code}/qr",
		httpx.Chain(http.HandlerFunc(h.HandleQR),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, r.Registry),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
