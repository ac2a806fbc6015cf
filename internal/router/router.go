package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-room-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/hotel-room-reservation/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication
// and are not part of the versioned API.  Currently that is only the
// health check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated guest-facing API: room
// browsing and search, booking, and reservation lookup by guest name.
// Guests identify themselves by name only, matching the booking model
// where no account exists.  Middleware passed here wraps only these
// routes; the response cache belongs on this group and must never wrap
// the admin group, whose responses depend on who is asking.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, reservations *handler.ReservationHandler, mws ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mws...)
	// Full inventory, including rooms that are already booked.
	g.GET("/rooms", rooms.ListRooms)
	// Available rooms of an exact category (case-insensitive).
	g.GET("/rooms/search", rooms.SearchRooms)
	// Single room by id; 404 for unknown ids.
	g.GET("/rooms/:id", rooms.GetRoom)
	// Book a room and settle payment in one request.
	g.POST("/reservations", reservations.CreateReservation)
	// All reservations recorded for a guest name.
	g.GET("/reservations", reservations.ListByGuest)
}

// RegisterAuth registers the admin login endpoint and the protected
// admin group.  Login lives under /v1/auth and requires no token; the
// admin endpoints require a valid access token with the ADMIN role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, admin *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)

	// Protected group: every route below runs JWTAuth and then the role
	// check before the handler is invoked.
	ag := e.Group("/v1/admin")
	ag.Use(middleware.JWTAuth(jwtSecret))
	ag.Use(middleware.RequireRole("ADMIN"))
	ag.GET("/me", a.Me)
	ag.PATCH("/rooms/:id/availability", admin.UpdateAvailability)
	ag.GET("/reservations", admin.ListReservations)
}
