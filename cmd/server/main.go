package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/alimenta/backend/internal/application/catalog"
	charityapp "github.com/alimenta/backend/internal/application/charity"
	donationapp "github.com/alimenta/backend/internal/application/donation"
	identityapp "github.com/alimenta/backend/internal/application/identity"
	reportapp "github.com/alimenta/backend/internal/application/report"
	"github.com/alimenta/backend/internal/infrastructure/auth"
	"github.com/alimenta/backend/internal/infrastructure/config"
	"github.com/alimenta/backend/internal/infrastructure/logger"
	"github.com/alimenta/backend/internal/infrastructure/persistence"
	"github.com/alimenta/backend/internal/infrastructure/telemetry"
	"github.com/alimenta/backend/internal/interfaces/http/handler"
	"github.com/alimenta/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Alimenta backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	orgRepo := persistence.NewGormOrganizationRepository(db.DB)
	categoryRepo := persistence.NewGormFoodCategoryRepository(db.DB)
	foodRepo := persistence.NewGormFoodRepository(db.DB)
	needRepo := persistence.NewGormNeedRepository(db.DB)
	donationRepo := persistence.NewGormDonationRepository(db.DB)
	statsRepo := persistence.NewGormStatsRepository(db.DB)
	registrationScope := persistence.NewGormRegistrationScope(db.DB)
	fulfillmentScope := persistence.NewGormFulfillmentScope(db.DB)

	// Token infrastructure. The blacklist falls back to an in-process store
	// when Redis is disabled; revocations then don't survive restarts.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewMemoryTokenBlacklist()
		log.Warn("Redis disabled, using in-memory token blacklist")
	}

	// Application services
	authService := identityapp.NewAuthService(registrationScope, userRepo, orgRepo, jwtService, blacklist, log)
	needService := charityapp.NewNeedService(needRepo, orgRepo, foodRepo, log)
	orgService := charityapp.NewOrganizationService(orgRepo, needService, log)
	catalogService := catalogapp.NewCatalogService(categoryRepo, foodRepo, log)
	donationService := donationapp.NewDonationService(fulfillmentScope, donationRepo, needRepo, orgRepo, foodRepo, userRepo, log)
	reportService := reportapp.NewReportService(statsRepo, donationRepo, userRepo, cfg.App.Name, log)

	// HTTP surface
	engine := router.New(router.Config{
		AppConfig:      cfg,
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Handlers: router.Handlers{
			Auth:         handler.NewAuthHandler(authService),
			Donor:        handler.NewDonorHandler(needService, orgService, donationService),
			Organization: handler.NewOrganizationHandler(orgService, needService, donationService),
			Catalog:      handler.NewCatalogHandler(catalogService),
			Admin:        handler.NewAdminHandler(reportService),
			System:       handler.NewSystemHandler(reportService),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
