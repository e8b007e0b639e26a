package routes

import (
	"github.com/gin-gonic/gin"

	"veil/internal/interfaces/http/handlers"
	"veil/internal/interfaces/http/middleware"
)

// SettingsRouteConfig holds dependencies for settings routes.
type SettingsRouteConfig struct {
	SettingsHandler *handlers.SettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupSettingsRoutes configures the settings document routes. Reads need
// an authenticated admin; writes need sudo.
func SetupSettingsRoutes(engine *gin.Engine, cfg *SettingsRouteConfig) {
	group := engine.Group("/api/settings")
	group.Use(cfg.AuthMiddleware.RequireAuth())
	{
		group.GET("", cfg.SettingsHandler.GetSettings)
		group.PUT("", cfg.AuthMiddleware.RequireSudo(), cfg.SettingsHandler.ModifySettings)
	}
}
