package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"veil/internal/application/subscription"
	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
	"veil/internal/shared/utils"
)

// SubscriptionHandler serves client subscription profiles. The served
// format is resolved from the client user agent through the configured
// rules; an explicit format request is honored only when the matching
// manual toggle is enabled.
type SubscriptionHandler struct {
	service *subscription.Service
	logger  logger.Interface
}

func NewSubscriptionHandler(service *subscription.Service, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		logger:  logger,
	}
}

// GetSubscription answers GET /sub/:token.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing subscription token")
		return
	}

	format := h.service.ResolveFormat(c.Request.Header.Get("User-Agent"))

	if requested := c.Query("format"); requested != "" {
		f := settings.ClientFormat(requested)
		if !settings.IsValidClientFormat(f) {
			utils.ErrorResponse(c, http.StatusBadRequest, "unknown subscription format")
			return
		}
		if !h.service.AllowsManual(f) {
			utils.ErrorResponse(c, http.StatusForbidden, "requested format is disabled")
			return
		}
		format = f
	}

	profile := h.service.Profile()
	if profile.UpdateInterval > 0 {
		c.Header("Profile-Update-Interval", fmt.Sprintf("%d", profile.UpdateInterval))
	}
	if profile.SupportURL != "" {
		c.Header("Support-Url", profile.SupportURL)
	}
	if profile.ProfileTitle != "" {
		c.Header("Profile-Title", profile.ProfileTitle)
	}
	h.logger.Debugw("serving subscription profile",
		"format", string(format),
		"client_ip", c.ClientIP(),
	)

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"format": string(format),
		"link":   h.service.BuildLink(token),
	})
}
