package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/adapters/events"
	portsevents "github.com/SscSPs/money_tracker_app/internal/core/ports/events"
	"github.com/SscSPs/money_tracker_app/internal/core/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/handlers"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/SscSPs/money_tracker_app/internal/platform/config"
	"github.com/SscSPs/money_tracker_app/internal/platform/migrations"
	"github.com/SscSPs/money_tracker_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/money_tracker_app/internal/utils"
	"github.com/SscSPs/money_tracker_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title Money Tracker API
// @version 1.0
// @description Personal finance tracker: transactions, categories, filters and monthly summaries.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	if cfg.RunMigrations {
		if err := migrations.Run(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	} else {
		logger.Info("Skipping database migrations (RUN_MIGRATIONS=false)")
	}

	publisher, closePublisher := newEventPublisher(cfg, logger)
	defer closePublisher()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	dto.RegisterValidators()
	serviceContainer := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool), publisher)

	r, err := newRouter(cfg, logger, posthogClient)
	if err != nil {
		return err
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newRouter builds the gin engine with the global middleware chain.
func newRouter(cfg *config.Config, logger *slog.Logger, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	if cfg.RateLimit != "" {
		ipLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(ipLimiter))
	}

	r.Use(middleware.PosthogMiddleware(posthogClient))
	return r, nil
}

// newEventPublisher connects to AMQP when configured. Failing to connect is not
// fatal: the server runs without change notifications.
func newEventPublisher(cfg *config.Config, logger *slog.Logger) (portsevents.TransactionEventPublisher, func()) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, transaction events disabled.")
		return events.NoopPublisher{}, func() {}
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP, transaction events disabled", slog.String("error", err.Error()))
		return events.NoopPublisher{}, func() {}
	}
	logger.Info("AMQP publisher ready",
		slog.String("exchange", cfg.AMQPExchange),
		slog.String("queue", cfg.AMQPQueue))

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}
}
