// Package http wires the staffgate HTTP surface: the JSON auth API, the
// guarded dashboard pages and the health probes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/internal/service"
	"github.com/adityarahman/staffgate/internal/store"
	"github.com/adityarahman/staffgate/pkg/httpx"
	"github.com/adityarahman/staffgate/pkg/jwtx"
	"github.com/adityarahman/staffgate/pkg/slogx"
	"github.com/adityarahman/staffgate/web"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec         *jwtx.Codec
	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	store         store.Store
	secureCookies bool

	AuthService    *service.AuthService
	SessionService *service.SessionService
}

func NewRouter(
	codec *jwtx.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	secureCookies bool,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		codec:         codec,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		store:         st,
		secureCookies: secureCookies,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAPI()
	r.registerPages()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAPI() {
	r.Mux.Handle("POST /api/register", &RegisterHandler{
		AuthService: r.AuthService,
	})

	r.Mux.Handle("POST /api/login", &LoginHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
		SecureCookies:  r.secureCookies,
	})

	r.Mux.Handle("POST /api/logout", &LogoutHandler{
		SecureCookies: r.secureCookies,
	})
}

func (r *Router) registerPages() {
	// The two dashboards run the full guard: authenticate, then role
	// check. Their exact patterns win over the static catch-all below.
	r.Mux.Handle("GET /pages/admin/dashboard.html",
		httpx.Chain(PageHandler("pages/admin/dashboard.html"),
			httpx.Authenticate(r.codec, r.secureCookies),
			httpx.RequireRole(domain.RoleAdmin),
		),
	)

	r.Mux.Handle("GET /pages/pegawai/dashboard.html",
		httpx.Chain(PageHandler("pages/pegawai/dashboard.html"),
			httpx.Authenticate(r.codec, r.secureCookies),
			httpx.RequireRole(domain.RoleStaff, domain.RoleAdmin),
		),
	)

	// Root does its own session check instead of the guard: an invalid
	// or missing session serves the login page rather than redirecting.
	r.Mux.Handle("GET /{$}", &RootHandler{
		Codec:         r.codec,
		SecureCookies: r.secureCookies,
	})

	// Everything else (login page, client scripts, styling) is static.
	r.Mux.Handle("GET /", http.FileServerFS(web.Assets()))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
