// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/courtbook-dev/courtbook/internal/admin"
	"github.com/courtbook-dev/courtbook/internal/auth"
	"github.com/courtbook-dev/courtbook/internal/config"
	"github.com/courtbook-dev/courtbook/internal/core"
	"github.com/courtbook-dev/courtbook/internal/court"
	"github.com/courtbook-dev/courtbook/internal/health"
	"github.com/courtbook-dev/courtbook/internal/middleware"
	"github.com/courtbook-dev/courtbook/internal/payment"
	"github.com/courtbook-dev/courtbook/internal/reservation"
	"github.com/courtbook-dev/courtbook/internal/role"
	"github.com/courtbook-dev/courtbook/internal/schedule"
	"github.com/courtbook-dev/courtbook/internal/server"
	"github.com/courtbook-dev/courtbook/internal/sport"
	"github.com/courtbook-dev/courtbook/internal/user"
	"github.com/courtbook-dev/courtbook/migrations"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	genKeys := flag.Bool("genkeys", false, "generate a JWT key pair and exit")
	flag.Parse()

	if *genKeys {
		if err := generateKeys(*configPath); err != nil {
			slog.Error("key generation error", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.Migrate {
		if err := db.Migrate(ctx, migrations.FS); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	roleRepo := role.NewRepository(db.DB)
	roleSvc := role.NewService(roleRepo)
	roleHandler := role.NewHandler(roleSvc)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo, roleSvc, jwtManager, logger)
	userHandler := user.NewHandler(userSvc)

	sportRepo := sport.NewRepository(db.DB)
	sportSvc := sport.NewService(sportRepo)
	sportHandler := sport.NewHandler(sportSvc)

	courtRepo := court.NewRepository(db.DB)
	courtSvc := court.NewService(courtRepo, sportSvc)
	courtHandler := court.NewHandler(courtSvc)

	scheduleRepo := schedule.NewRepository(db.DB)
	scheduleSvc := schedule.NewService(scheduleRepo, courtSvc)
	scheduleHandler := schedule.NewHandler(scheduleSvc)

	reservationRepo := reservation.NewRepository(db.DB)
	reservationSvc := reservation.NewService(reservationRepo, userSvc, logger)
	reservationHandler := reservation.NewHandler(reservationSvc)

	paymentRepo := payment.NewRepository(db.DB)
	paymentSvc := payment.NewService(paymentRepo, reservationSvc, logger)
	paymentHandler := payment.NewHandler(paymentSvc)

	healthHandler := health.NewHandler(
		health.Probe{Name: "database", Checker: db},
		health.Probe{Name: "redis", Checker: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DB:         db.DB,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		roleHandler.RegisterRoutes(r, authenticator, adminOnly)
		userHandler.RegisterRoutes(r, authenticator, adminOnly)
		sportHandler.RegisterRoutes(r, authenticator, adminOnly)
		courtHandler.RegisterRoutes(r, authenticator, adminOnly)
		scheduleHandler.RegisterRoutes(r, authenticator, adminOnly)
		reservationHandler.RegisterRoutes(r, authenticator, adminOnly)
		paymentHandler.RegisterRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func generateKeys(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := auth.GenerateKeyPair(
		cfg.JWT.PrivateKeyPath,
		cfg.JWT.PublicKeyPath,
	); err != nil {
		return err
	}

	slog.Info("JWT key pair written",
		"private", cfg.JWT.PrivateKeyPath,
		"public", cfg.JWT.PublicKeyPath,
	)
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
