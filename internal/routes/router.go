package routes

import (
	"net/http"
	"time"

	"campus-connect/eventhub/internal/api"
	"campus-connect/eventhub/internal/db"
	"campus-connect/eventhub/internal/logging"
	"campus-connect/eventhub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes builds the chi router: global middleware, CORS tuned
// for the credentialed frontend, the health check, and the /api tree.
func RegisterRoutes(deps *api.Dependencies, rdb *redis.Client, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	// The session rides in a cookie, so the allowed origin must be the
	// exact frontend origin and credentials must be allowed.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, rdb, upSince))

	RegisterAPIRoutes(r, deps)

	return r
}
