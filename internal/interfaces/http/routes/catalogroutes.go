package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/handlers"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures catalog routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	catalog := engine.Group("/api/catalog")
	catalog.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		catalog.POST("/services", cfg.CatalogHandler.CreateService)
		catalog.GET("/services", cfg.CatalogHandler.ListServices)
		catalog.DELETE("/services/:id", cfg.CatalogHandler.DeleteService)

		catalog.POST("/language-pairs", cfg.CatalogHandler.CreateLanguagePair)
		catalog.GET("/language-pairs", cfg.CatalogHandler.ListLanguagePairs)
		catalog.DELETE("/language-pairs/:id", cfg.CatalogHandler.DeleteLanguagePair)

		catalog.POST("/specializations", cfg.CatalogHandler.CreateSpecialization)
		catalog.GET("/specializations", cfg.CatalogHandler.ListSpecializations)
		catalog.DELETE("/specializations/:id", cfg.CatalogHandler.DeleteSpecialization)
	}
}
