package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/service"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/pkg/httpx"
	"github.com/intlakaa/backoffice/pkg/jwtx"
	"github.com/intlakaa/backoffice/pkg/slogx"

	_ "github.com/intlakaa/backoffice/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	InviteService  *service.InviteService
	AdminService   *service.AdminService
	RequestService *service.RequestService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAdmins()
	r.registerRequests()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Intlakaa Back-Office API
//	@version		0.1.0
//	@description	Administrative backend for Intlakaa: email/password admin authentication with JWT
//	@description	sessions, a single-use admin invitation workflow, and public consultation request intake.
//
//	@contact.name				Intlakaa Team
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService}
	me := &MeHandler{AuthService: r.AuthService}
	send := &InviteSendHandler{InviteService: r.InviteService}
	verify := &InviteVerifyHandler{InviteService: r.InviteService}
	accept := &InviteAcceptHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /api/auth/login", login)
	r.Mux.Handle("POST /api/auth/send-invite", send)
	r.Mux.Handle("GET /api/auth/verify-invite", verify)
	r.Mux.Handle("POST /api/auth/accept-invite", accept)

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerAdmins() {
	h := &AdminsHandler{
		AdminService:  r.AdminService,
		InviteService: r.InviteService,
	}

	// All admin management is owner-only.
	ownerOnly := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleOwner)),
		)
	}

	r.Mux.Handle("POST /api/admins/invite", ownerOnly(http.HandlerFunc(h.HandleInvite)))
	r.Mux.Handle("GET /api/admins", ownerOnly(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("PUT /api/admins/{id}", ownerOnly(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("PUT /api/admins/{id}/role", ownerOnly(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/admins/{id}", ownerOnly(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerRequests() {
	h := &RequestsHandler{RequestService: r.RequestService}

	// Public intake endpoint.
	r.Mux.Handle("POST /api/requests", http.HandlerFunc(h.HandleCreate))

	// Reading and deleting requests needs a session.
	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
		)
	}

	r.Mux.Handle("GET /api/requests", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/requests/{id}", secured(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("DELETE /api/requests/{id}", secured(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
