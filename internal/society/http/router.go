package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/jwtx"
	"github.com/strataworks/societyd/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec         *jwtx.Codec
	sessionTTL    time.Duration
	secureCookies bool
	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger

	store              store.Store
	ProvisionService   *service.ProvisionService
	AuthService        *service.AuthService
	ReservationService *service.ReservationService
	PoolService        *service.PoolService
	NoticeService      *service.NoticeService
	PollService        *service.PollService
	EventService       *service.EventService
	AmenityService     *service.AmenityService
	BookingService     *service.BookingService
	ComplaintService   *service.ComplaintService
}

func NewRouter(
	codec *jwtx.Codec,
	sessionTTL time.Duration,
	secureCookies bool,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		codec:         codec,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		logger:        logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEmergency()
	r.registerNotices()
	r.registerPolls()
	r.registerEvents()
	r.registerAmenities()
	r.registerBookings()
	r.registerComplaints()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps a handler with cookie authentication and a per-user rate
// limit; roles narrows it further when given.
func (r *Router) authed(h http.Handler, limit httpx.RateLimitConfig, roles ...string) http.Handler {
	chain := []httpx.Middleware{
		httpx.AuthnMiddleware(r.codec),
	}
	if len(roles) > 0 {
		chain = append(chain, httpx.RequireRole(roles...))
	}
	chain = append(chain, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, chain...)
}

func (r *Router) registerAuth() {
	register := &RegisterHandler{ProvisionService: r.ProvisionService}
	auth := &AuthHandler{
		AuthService:   r.AuthService,
		SessionTTL:    r.sessionTTL,
		SecureCookies: r.secureCookies,
	}

	// Public signup and login endpoints are brute-force targets; strict
	// limits by IP.
	r.Mux.Handle("POST /v1/auth/register/owner",
		httpx.Chain(http.HandlerFunc(register.HandleOwner),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register/resident",
		httpx.Chain(http.HandlerFunc(register.HandleResident),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register/staff",
		httpx.Chain(http.HandlerFunc(register.HandleStaff),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(auth.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(auth.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/auth/me", r.authed(http.HandlerFunc(auth.HandleMe), httpx.LenientLimit))
}

func (r *Router) registerEmergency() {
	pools := &PoolsHandler{PoolService: r.PoolService}
	reservations := &ReservationsHandler{ReservationService: r.ReservationService}

	// Pool management is owner-only; reading pool state is open to any
	// authenticated member.
	r.Mux.Handle("POST /v1/emergency/pools",
		r.authed(http.HandlerFunc(pools.HandleCreate), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("DELETE /v1/emergency/pools/{id}",
		r.authed(http.HandlerFunc(pools.HandleDelete), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("GET /v1/emergency/pools",
		r.authed(http.HandlerFunc(pools.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/emergency/pools/{id}",
		r.authed(http.HandlerFunc(pools.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/emergency/pools/{id}/reservations",
		r.authed(http.HandlerFunc(pools.HandleListReservations), httpx.LenientLimit, domain.RoleOwner, domain.RoleStaff))

	r.Mux.Handle("POST /v1/emergency/reservations",
		r.authed(http.HandlerFunc(reservations.HandleReserve), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/emergency/reservations/{id}",
		r.authed(http.HandlerFunc(reservations.HandleRelease), httpx.ModerateLimit))
}

func (r *Router) registerNotices() {
	h := &NoticesHandler{NoticeService: r.NoticeService}

	r.Mux.Handle("POST /v1/notices",
		r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, domain.RoleOwner, domain.RoleStaff))
	r.Mux.Handle("PUT /v1/notices/{id}",
		r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, domain.RoleOwner, domain.RoleStaff))
	r.Mux.Handle("DELETE /v1/notices/{id}",
		r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, domain.RoleOwner, domain.RoleStaff))
	r.Mux.Handle("GET /v1/notices",
		r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
}

func (r *Router) registerPolls() {
	h := &PollsHandler{PollService: r.PollService}

	r.Mux.Handle("POST /v1/polls",
		r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("PUT /v1/polls/{id}",
		r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("DELETE /v1/polls/{id}",
		r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("GET /v1/polls",
		r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService, AuthService: r.AuthService}

	r.Mux.Handle("POST /v1/events",
		r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, domain.RoleOwner, domain.RoleStaff))
	r.Mux.Handle("DELETE /v1/events/{id}",
		r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, domain.RoleOwner, domain.RoleStaff))
	r.Mux.Handle("GET /v1/events",
		r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
}

func (r *Router) registerAmenities() {
	h := &AmenitiesHandler{AmenityService: r.AmenityService}

	r.Mux.Handle("POST /v1/amenities",
		r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("PUT /v1/amenities/{id}",
		r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("DELETE /v1/amenities/{id}",
		r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("GET /v1/amenities",
		r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
}

func (r *Router) registerBookings() {
	h := &BookingsHandler{BookingService: r.BookingService}

	r.Mux.Handle("POST /v1/bookings",
		r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/bookings",
		r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/bookings/{id}",
		r.authed(http.HandlerFunc(h.HandleReschedule), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/bookings/{id}",
		r.authed(http.HandlerFunc(h.HandleCancel), httpx.ModerateLimit))
}

func (r *Router) registerComplaints() {
	h := &ComplaintsHandler{ComplaintService: r.ComplaintService}

	r.Mux.Handle("POST /v1/complaints",
		r.authed(http.HandlerFunc(h.HandleFile), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/complaints",
		r.authed(http.HandlerFunc(h.HandleListMine), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/complaints/assigned",
		r.authed(http.HandlerFunc(h.HandleListAssigned), httpx.LenientLimit, domain.RoleStaff))
	r.Mux.Handle("GET /v1/complaints/all",
		r.authed(http.HandlerFunc(h.HandleListAll), httpx.LenientLimit, domain.RoleOwner, domain.RoleStaff))
	r.Mux.Handle("POST /v1/complaints/{id}/assign",
		r.authed(http.HandlerFunc(h.HandleAssign), httpx.ModerateLimit, domain.RoleOwner))
	r.Mux.Handle("POST /v1/complaints/{id}/status",
		r.authed(http.HandlerFunc(h.HandleUpdateStatus), httpx.ModerateLimit, domain.RoleOwner, domain.RoleStaff))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
