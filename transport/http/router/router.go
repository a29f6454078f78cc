package router

import (
	"tripdesk/internal/handlers/auth"
	"tripdesk/internal/handlers/car"
	"tripdesk/internal/handlers/flight"
	"tripdesk/internal/handlers/hotel"
	"tripdesk/internal/handlers/room"
	"tripdesk/internal/handlers/tour"
	"tripdesk/internal/handlers/user"
	"tripdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth   auth.Handler
	Flight flight.Handler
	Tour   tour.Handler
	Hotel  hotel.Handler
	Room   room.Handler
	Car    car.Handler
	User   user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthRole.APIKey)
			protected.Use(r.AuthRole.Auth)
			protected.Use(r.AuthRole.RBAC)

			r.DomainHandlers.Auth.ProtectedRouter(protected)
			r.DomainHandlers.Flight.Router(protected)
			r.DomainHandlers.Tour.Router(protected)
			r.DomainHandlers.Hotel.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Car.Router(protected)
			r.DomainHandlers.User.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
