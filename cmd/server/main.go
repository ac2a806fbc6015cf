package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-reservation/internal/booking"
	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/handler"
	"github.com/iliyamo/hotel-room-reservation/internal/middleware"
	"github.com/iliyamo/hotel-room-reservation/internal/payment"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/router"
	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// In-memory state: seeded room inventory and an empty ledger.  Both
	// live and die with the process.
	rooms := store.NewRoomStore(store.DefaultRooms())
	ledger := store.NewReservationStore()
	svc := booking.New(rooms, ledger)
	gateway := payment.New()

	authHandler, err := handler.NewAuthHandler(cfg)
	if err != nil {
		log.Fatalf("admin credentials: %v", err)
	}
	roomHandler := handler.NewRoomHandler(rooms)
	reservationHandler := handler.NewReservationHandler(svc, rooms, gateway)
	adminHandler := handler.NewAdminHandler(rooms, ledger)

	e := echo.New()

	// Redis is optional; when it is unreachable both middlewares become
	// pass-throughs and the API keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	// The response cache wraps only the public read API.  Admin
	// responses vary by identity and must always pass through auth.
	router.RegisterPublic(e, roomHandler, reservationHandler,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterAuth(e, authHandler, adminHandler, cfg.JWTSecret)

	// Background consumer writing confirmations to logs/reservation.log.
	go queue.StartReservationConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
