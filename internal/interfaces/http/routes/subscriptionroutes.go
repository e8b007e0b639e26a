package routes

import (
	"github.com/gin-gonic/gin"

	"veil/internal/interfaces/http/handlers"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
}

// SetupSubscriptionRoutes configures the public subscription endpoint.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	engine.GET("/sub/:token", cfg.SubscriptionHandler.GetSubscription)
}
