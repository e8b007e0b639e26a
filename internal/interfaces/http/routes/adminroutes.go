package routes

import (
	"github.com/gin-gonic/gin"

	"veil/internal/infrastructure/ratelimit"
	"veil/internal/interfaces/http/handlers"
	"veil/internal/interfaces/http/middleware"
	"veil/internal/shared/logger"
)

// AdminRouteConfig holds dependencies for admin account routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    ratelimit.RateLimiter
	Logger         logger.Interface
}

// SetupAdminRoutes configures token issuance and admin management routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	loginLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	}

	group := engine.Group("/api/admin")
	{
		group.POST("/token", middleware.LoginRateLimit(cfg.RateLimiter, loginLimit, cfg.Logger), cfg.AdminHandler.Token)
	}

	admins := engine.Group("/api/admins")
	admins.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireSudo())
	{
		admins.GET("", cfg.AdminHandler.ListAdmins)
		admins.POST("", cfg.AdminHandler.CreateAdmin)
	}
}
