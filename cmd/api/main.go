package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clinicbot/internal/api/router"
	"clinicbot/internal/app/bootstrap"
	"clinicbot/internal/appointments"
	"clinicbot/internal/booking"
	"clinicbot/internal/chat"
	appconfig "clinicbot/internal/config"
	"clinicbot/internal/http/handlers"
	"clinicbot/internal/observability/metrics"
	"clinicbot/internal/slots"
	"clinicbot/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinicbot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	chatMetrics := metrics.NewChatMetrics(registry)

	// Appointment store
	var apptService *appointments.Service
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		apptService = appointments.NewService(appointments.NewRepository(pool), logger, chatMetrics)
	} else {
		logger.Warn("DATABASE_URL not set, appointment reads disabled")
	}

	// Chat history (optional, degrades to no transcripts)
	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient != nil {
		defer redisClient.Close()
	}
	historyStore := bootstrap.BuildHistoryStore(redisClient, cfg, logger)

	// Core services
	parser := booking.NewParser()
	chatService := chat.NewService(parser, historyStore, logger, chatMetrics)
	generator := slots.NewGenerator()

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(generator, apptService, logger, cfg.DatesAhead)
	appointmentsHandler := handlers.NewAppointmentsHandler(apptService, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:              logger,
		ChatHandler:         chatHandler,
		AvailabilityHandler: availabilityHandler,
		AppointmentsHandler: appointmentsHandler,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  splitOrigins(cfg.CORSAllowedOrigins),
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
