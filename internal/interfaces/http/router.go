// Package http wires repositories, services, handlers, and middleware into
// the Gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogapp "github.com/vendordesk-io/vendordesk/internal/application/catalog"
	vendorapp "github.com/vendordesk-io/vendordesk/internal/application/vendormgmt"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/auth"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/cache"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/config"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/email"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/repository"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/handlers"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/middleware"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/routes"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// Router holds the Gin engine and the handlers wired into it.
type Router struct {
	engine          *gin.Engine
	vendorHandler   *handlers.VendorHandler
	settingsHandler *handlers.VendorSettingsHandler
	catalogHandler  *handlers.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
	cfg             *config.Config
	logger          logger.Interface
}

// NewRouter builds the full dependency graph on top of the database handle.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	vendorRepo := repository.NewVendorRepository(gdb, log)
	settingsRepo := repository.NewVendorSettingsRepository(gdb, log)
	membershipRepo := repository.NewMembershipRepository(gdb, log)
	credentialRepo := repository.NewCredentialRepository(gdb, log)
	contactRepo := repository.NewContactRepository(gdb, log)
	serviceRepo := repository.NewServiceRepository(gdb, log)
	languagePairRepo := repository.NewLanguagePairRepository(gdb, log)
	specializationRepo := repository.NewSpecializationRepository(gdb, log)

	txManager := db.NewTransactionManager(gdb)

	var settingsCache cache.SettingsCache = cache.NewNoopSettingsCache()
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warnw("redis unavailable, settings cache disabled", "error", err)
		} else {
			settingsCache = cache.NewRedisSettingsCache(client, log)
		}
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	vendorService := vendorapp.NewService(
		vendorRepo, settingsRepo, membershipRepo, credentialRepo, contactRepo,
		txManager, settingsCache, hasher, cfg.Server.BaseURL, log,
	)

	if cfg.Email.SMTPHost != "" {
		vendorService.SetEmailSender(email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		}))
	}

	catalogService := catalogapp.NewService(serviceRepo, languagePairRepo, specializationRepo, log)

	return &Router{
		engine:          engine,
		vendorHandler:   handlers.NewVendorHandler(vendorService),
		settingsHandler: handlers.NewVendorSettingsHandler(vendorService),
		catalogHandler:  handlers.NewCatalogHandler(catalogService),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		cfg:             cfg,
		logger:          log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupVendorRoutes(r.engine, &routes.VendorRouteConfig{
		VendorHandler:   r.vendorHandler,
		SettingsHandler: r.settingsHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
