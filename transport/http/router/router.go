package router

import (
	"flightbook/infras/metrics"
	"flightbook/internal/handlers/admin"
	"flightbook/internal/handlers/auth"
	"flightbook/internal/handlers/booking"
	"flightbook/internal/handlers/flight"
	"flightbook/internal/handlers/health"
	"flightbook/internal/handlers/ticket"
	"flightbook/internal/handlers/user"
	"flightbook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Flight  flight.Handler
	Booking booking.Handler
	Ticket  ticket.Handler
	Admin   admin.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	authRole       middleware.AuthRole
	metrics        *metrics.Metrics
}

// SetupRoutes mounts the probes at the root and the business API under /api.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	router.Handle("/metrics", r.metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(
			r.app.Tracing,
			r.app.Metrics,
			r.app.RateLimit(),
			r.authRole.Auth,
			r.authRole.RBAC,
		)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Flight.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Ticket.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole, metrics *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
		metrics:        metrics,
	}
}
