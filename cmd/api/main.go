package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/lionswap/reservation-service/internal/domain/port/client"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/domain/usecase/expiration"
	reservationUseCase "github.com/lionswap/reservation-service/internal/domain/usecase/reservation"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/handler"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/routes"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/catalog"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/database"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/identity"
	appLogger "github.com/lionswap/reservation-service/internal/infrastructure/adapter/logger"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/notifier"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/lionswap/reservation-service/internal/infrastructure/adapter/time"
	"github.com/lionswap/reservation-service/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := appLogger.NewZapLogger(cfg.Environment == config.Production)
	logger.SetLevel(appLogger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = logger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Database
	dbManager := database.NewManager(&database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}, logger, tp)

	if _, err := dbManager.Connect(); err != nil {
		logger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		logger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// External collaborators
	catalogClient := catalog.NewHTTPClient(catalog.Options{
		BaseURL:         cfg.Catalog.BaseURL,
		RequestTimeout:  cfg.Catalog.RequestTimeout,
		BreakerMaxFails: cfg.Catalog.BreakerMaxFails,
		BreakerTimeout:  cfg.Catalog.BreakerTimeout,
	}, logger)

	identityClient := identity.NewHTTPClient(cfg.Identity.BaseURL, cfg.Identity.RequestTimeout, logger)
	tokenVerifier := identity.NewTokenVerifier(cfg.Identity.JWTSecret)

	var reservedNotifier client.ReservationNotifier
	if cfg.Notifier.Enabled {
		kafkaNotifier := notifier.NewKafkaNotifier(cfg.Notifier.Brokers, cfg.Notifier.Topic, logger)
		defer kafkaNotifier.Close()
		reservedNotifier = kafkaNotifier
	}

	// Repositories and use cases
	reservationRepo := repository.NewReservationRepository(dbManager.DB(), tp, logger)

	reservationService := reservationUseCase.NewService(
		reservationRepo,
		catalogClient,
		identityClient,
		reservedNotifier,
		tp,
		logger,
		cfg.Reservation.HoldTTL,
	)

	expirationEngine := expiration.NewEngine(
		reservationRepo,
		reservationService,
		tp,
		logger,
		cfg.Reservation.SweepWorkers,
		coreport.Duration(cfg.Reservation.SweepCallTimeout),
	)

	// Periodic sweep runs until shutdown; the HTTP trigger shares the engine
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	scheduler := expiration.NewScheduler(expirationEngine, logger, coreport.Duration(cfg.Reservation.SweepInterval))
	go scheduler.Run(schedulerCtx)

	// HTTP layer
	reservationHandler := handler.NewReservationHandler(reservationService, expirationEngine, logger)
	healthHandler := handler.NewHealthHandler(dbManager)

	router := gin.New()
	routes.SetupMiddlewares(router, logger)
	routes.SetupRoutes(router, reservationHandler, healthHandler, tokenVerifier, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// Each in-flight transition is atomic, but draining the sweep avoids
	// spurious catalog errors from half-finished worker calls.
	expirationEngine.Wait()

	logger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or RS_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or RS_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or RS_DB_NAME environment variable)")
	}
	if cfg.Catalog.BaseURL == "" {
		missing = append(missing, "catalog.baseUrl (or RS_CATALOG_URL environment variable)")
	}
	if cfg.Identity.BaseURL == "" {
		missing = append(missing, "identity.baseUrl (or RS_IDENTITY_URL environment variable)")
	}
	if cfg.Identity.JWTSecret == "" {
		missing = append(missing, "identity.jwtSecret (or RS_JWT_SECRET environment variable)")
	}
	if cfg.Reservation.HoldTTL == 0 {
		missing = append(missing, "reservation.holdTtl")
	}
	if cfg.Reservation.SweepWorkers == 0 {
		missing = append(missing, "reservation.sweepWorkers")
	}
	if cfg.Notifier.Enabled && len(cfg.Notifier.Brokers) == 0 {
		missing = append(missing, "notifier.brokers (or RS_KAFKA_BROKERS environment variable)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}
