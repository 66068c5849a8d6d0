/*
main.go - Application entry point

PURPOSE:
  Starts the paid-leave calculation API.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env file, environment, flags)
  2. Configure logging
  3. Load the collective agreement
  4. Create API handler and router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr       Listen address (overrides APP_ADDR)
  -agreement  Agreement file (overrides AGREEMENT_FILE)

ENVIRONMENT:
  See config/config.go. LOG_LEVEL and LOG_FORMAT (text|json) drive logging.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Defaults
  ./server

  # Custom agreement on another port
  ./server -addr=:3000 -agreement=./agreement.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - factory/agreement.go: Agreement file format
*/
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/warp/paid-leave/api"
	"github.com/warp/paid-leave/config"
	"github.com/warp/paid-leave/factory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Flags
	addr := flag.String("addr", cfg.AppAddr, "HTTP listen address")
	agreementPath := flag.String("agreement", cfg.AgreementFile, "Collective agreement file (YAML or JSON)")
	flag.Parse()

	logger := newLogger(cfg)

	agreement, err := factory.LoadAgreement(*agreementPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load agreement")
	}
	logger.WithFields(logrus.Fields{
		"days_per_month":         agreement.DaysPerMonth.String(),
		"working_days_per_month": agreement.WorkingDaysPerMonth.String(),
		"salary_floor":           agreement.SalaryFloor.String(),
		"salary_ceiling":         agreement.SalaryCeiling.String(),
	}).Info("Agreement loaded")

	handler := api.NewHandler(agreement, logger)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RequestTimeout:     cfg.AppRequestTimeout,
		Production:         cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("addr", *addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
