package router

import (
	"hotelmanager/internal/handlers/auth"
	"hotelmanager/internal/handlers/booking"
	"hotelmanager/internal/handlers/dashboard"
	"hotelmanager/internal/handlers/room"
	"hotelmanager/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Room      room.Handler
	Booking   booking.Handler
	User      user.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			r.DomainHandlers.Dashboard.AdminRouter(adminGroup)
			r.DomainHandlers.Room.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.User.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
