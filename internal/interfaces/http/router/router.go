package router

import (
	"time"

	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/infrastructure/auth"
	"github.com/alimenta/backend/internal/infrastructure/config"
	"github.com/alimenta/backend/internal/infrastructure/logger"
	"github.com/alimenta/backend/internal/interfaces/http/handler"
	"github.com/alimenta/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the router wires up
type Handlers struct {
	Auth         *handler.AuthHandler
	Donor        *handler.DonorHandler
	Organization *handler.OrganizationHandler
	Catalog      *handler.CatalogHandler
	Admin        *handler.AdminHandler
	System       *handler.SystemHandler
}

// Config holds everything needed to assemble the HTTP engine
type Config struct {
	AppConfig      *config.Config
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Handlers       Handlers
}

// New assembles the gin engine: the middleware stack, then the route table.
// Middleware order matters: request ID first so every later stage can log it,
// recovery before anything that can panic, auth last so rejected requests
// still carry headers and logs.
func New(cfg Config) *gin.Engine {
	if cfg.AppConfig.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.AppConfig.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.AppConfig.HTTP.TrustedProxies); err != nil {
			cfg.Logger.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AppConfig.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.AppConfig.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.AppConfig.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.AppConfig.HTTP.MaxBodySize))
	if cfg.AppConfig.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.AppConfig.Telemetry.ServiceName))
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.TokenBlacklist,
		SkipPaths: []string{
			"/health",
			"/api/status",
			"/auth/register",
			"/auth/login",
			"/auth/refresh",
		},
		Logger: cfg.Logger,
	}))

	registerRoutes(engine, cfg.Handlers)

	return engine
}

func registerRoutes(engine *gin.Engine, h Handlers) {
	// Public
	engine.GET("/health", h.System.Health)
	engine.GET("/api/status", h.System.Status)
	engine.POST("/auth/register", h.Auth.Register)
	engine.POST("/auth/login", h.Auth.Login)
	engine.POST("/auth/refresh", h.Auth.Refresh)

	// Any authenticated role
	engine.POST("/auth/logout", h.Auth.Logout)
	engine.GET("/auth/me", h.Auth.Me)
	engine.POST("/auth/password", h.Auth.ChangePassword)
	engine.GET("/organizations", h.Organization.ListOrganizations)
	engine.GET("/organizations/:id", h.Organization.PublicProfile)
	engine.GET("/catalog/categories", h.Catalog.ListCategories)
	engine.GET("/catalog/foods", h.Catalog.ListFoods)

	// Donor pages
	donor := engine.Group("/", middleware.RequireRole(identity.RoleDonor))
	donor.GET("/dashboard/donor", h.Donor.Dashboard)
	donor.GET("/donate/:id", h.Donor.NeedDetails)
	donor.POST("/donate/:id", h.Donor.Donate)
	donor.GET("/my-donations", h.Donor.MyDonations)
	donor.GET("/my-donations/:id", h.Donor.MyDonation)
	donor.POST("/my-donations/:id/cancel", h.Donor.CancelDonation)

	// Organization pages
	org := engine.Group("/", middleware.RequireRole(identity.RoleOrganization))
	org.GET("/dashboard/organization", h.Organization.Dashboard)
	org.GET("/organization/needs", h.Organization.ListNeeds)
	org.POST("/organization/needs", h.Organization.CreateNeed)
	org.POST("/organization/needs/:id", h.Organization.UpdateNeed)
	org.POST("/organization/needs/:id/deactivate", h.Organization.DeactivateNeed)
	org.GET("/organization/donations", h.Organization.ListDonations)
	org.POST("/organization/donations/:id/status", h.Organization.ChangeDonationStatus)
	org.GET("/organization/profile", h.Organization.Profile)
	org.POST("/organization/profile", h.Organization.UpdateProfile)

	// Admin pages
	admin := engine.Group("/", middleware.RequireRole(identity.RoleAdmin))
	admin.GET("/dashboard/admin", h.Admin.Dashboard)
	admin.POST("/admin/categories", h.Catalog.CreateCategory)
	admin.POST("/admin/foods", h.Catalog.CreateFood)
	admin.POST("/admin/foods/:id", h.Catalog.UpdateFood)
}
