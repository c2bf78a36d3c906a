package router

import (
	"inn/internal/handlers/auth"
	"inn/internal/handlers/booking"
	"inn/internal/handlers/health"
	"inn/internal/handlers/hotel"
	"inn/internal/handlers/notification"
	"inn/internal/handlers/plan"
	"inn/internal/handlers/property"
	"inn/internal/handlers/room"
	"inn/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	User         user.Handler
	Hotel        hotel.Handler
	Room         room.Handler
	Booking      booking.Handler
	Property     property.Handler
	Plan         plan.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Plan.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
