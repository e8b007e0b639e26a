package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"veil/internal/infrastructure/auth"
	"veil/internal/shared/logger"
	"veil/internal/shared/utils"
)

const (
	ContextKeyUsername = "admin_username"
	ContextKeyIsSudo   = "admin_is_sudo"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyIsSudo, claims.IsSudo)

		c.Next()
	}
}

// RequireSudo must run after RequireAuth; it rejects non-sudo admins.
func (m *AuthMiddleware) RequireSudo() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextKeyIsSudo) {
			utils.ErrorResponse(c, http.StatusForbidden, "sudo privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}
