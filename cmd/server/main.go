package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-connect/eventhub/internal/api"
	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/config"
	"campus-connect/eventhub/internal/db"
	"campus-connect/eventhub/internal/logging"
	"campus-connect/eventhub/internal/metrics"
	"campus-connect/eventhub/internal/providers"
	"campus-connect/eventhub/internal/routes"
)

// @title EventHub API
// @version 1.0
// @description Backend for the campus event management portal.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	config.LoadEnv()
	cfg := config.Load()

	if err := logging.Init(cfg.Env); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("EventHub starting up",
		"environment", cfg.Env,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(cfg); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDatabase)
	if _, err := db.InitPostgresORM(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	rdb := common.NewRedisClient(cfg)
	sessions := common.NewRedisSessionStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)

	mailer := common.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	gateway := providers.NewRazorpayProvider(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, "https://api.razorpay.com/v1")

	metricsReg := metrics.NewMetricsRegistry()

	deps, err := api.InitDependencies(cfg, sessions, mailer, gateway, metricsReg)
	if err != nil {
		logging.Error("Failed to initialize dependencies", "error", err.Error())
		log.Fatalf("❌ Failed to initialize dependencies: %v", err)
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, rdb, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.HTTPPort
	logging.Info("Server starting",
		"port", cfg.HTTPPort,
		"environment", cfg.Env,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
