package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/handlers"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/middleware"
)

// VendorRouteConfig holds dependencies for vendor routes.
type VendorRouteConfig struct {
	VendorHandler   *handlers.VendorHandler
	SettingsHandler *handlers.VendorSettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupVendorRoutes configures vendor routes.
func SetupVendorRoutes(engine *gin.Engine, cfg *VendorRouteConfig) {
	// Public endpoint, reached from the activation email
	engine.POST("/portal/activate", cfg.VendorHandler.ActivateVendor)

	vendors := engine.Group("/api/vendors")
	vendors.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		vendors.POST("", cfg.VendorHandler.CreateVendor)
		vendors.GET("", cfg.VendorHandler.ListVendors)
		vendors.GET("/:id", cfg.VendorHandler.GetVendor)
		// Updates are partial merges either way; PUT and PATCH are aliases.
		vendors.PUT("/:id", cfg.VendorHandler.UpdateVendor)
		vendors.PATCH("/:id", cfg.VendorHandler.UpdateVendor)
		vendors.DELETE("/:id", cfg.VendorHandler.DeleteVendor)

		vendors.GET("/:id/settings", cfg.SettingsHandler.GetSettings)
		vendors.PUT("/:id/settings", cfg.SettingsHandler.UpdateSettings)
		vendors.PATCH("/:id/settings", cfg.SettingsHandler.UpdateSettings)

		vendors.POST("/:id/scopes/:scope", cfg.SettingsHandler.AddMembership)
		vendors.GET("/:id/scopes/:scope", cfg.SettingsHandler.ListMembership)
		vendors.DELETE("/:id/scopes/:scope/:entity_id", cfg.SettingsHandler.RemoveMembership)
	}
}
