package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "veil/internal/application/admin/usecases"
	settingsApp "veil/internal/application/settings"
	"veil/internal/application/subscription"
	"veil/internal/infrastructure/auth"
	"veil/internal/infrastructure/config"
	"veil/internal/infrastructure/notifier"
	"veil/internal/infrastructure/ratelimit"
	"veil/internal/infrastructure/repository"
	"veil/internal/interfaces/http/handlers"
	"veil/internal/interfaces/http/middleware"
	"veil/internal/interfaces/http/routes"
	"veil/internal/shared/logger"
)

// Router wires repositories, services and handlers into a gin engine. The
// notifier manager and the subscription renderer are subscribed to the
// settings service so every committed settings write refreshes them before
// the write call returns.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	settingsService     *settingsApp.Service
	notifierManager     *notifier.Manager
	subscriptionService *subscription.Service

	settingsHandler     *handlers.SettingsHandler
	adminHandler        *handlers.AdminHandler
	subscriptionHandler *handlers.SubscriptionHandler

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter
}

// NewRouter creates the router and builds the full dependency graph.
func NewRouter(ctx context.Context, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	settingsRepo := repository.NewSettingsRepository(db, log)
	adminRepo := repository.NewAdminRepository(db, log)

	settingsService := settingsApp.NewService(settingsRepo, log)

	notifierManager, err := notifier.NewManager(ctx, settingsService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build notifier manager: %w", err)
	}
	settingsService.Subscribe(notifierManager)

	subscriptionService, err := subscription.NewService(ctx, settingsService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription service: %w", err)
	}
	settingsService.Subscribe(subscriptionService)

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	authenticateUC := adminUsecases.NewAuthenticateUseCase(adminRepo, hasher, jwtService, cfg.Auth.JWT.AccessExpMinutes, log)
	createAdminUC := adminUsecases.NewCreateAdminUseCase(adminRepo, hasher, log)
	listAdminsUC := adminUsecases.NewListAdminsUseCase(adminRepo, log)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		logger:              log,
		settingsService:     settingsService,
		notifierManager:     notifierManager,
		subscriptionService: subscriptionService,
		settingsHandler:     handlers.NewSettingsHandler(settingsService, log),
		adminHandler:        handlers.NewAdminHandler(authenticateUC, createAdminUC, listAdminsUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(subscriptionService, log),
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:         ratelimit.NewRedisRateLimiter(redisClient),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupSettingsRoutes(r.engine, &routes.SettingsRouteConfig{
		SettingsHandler: r.settingsHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
		Logger:         r.logger,
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SettingsService returns the settings application service.
func (r *Router) SettingsService() *settingsApp.Service {
	return r.settingsService
}

// NotifierManager returns the cached notification client manager.
func (r *Router) NotifierManager() *notifier.Manager {
	return r.notifierManager
}
