package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingsApp "veil/internal/application/settings"
	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
	"veil/internal/shared/utils"
)

// SettingsHandler serves the versioned settings document. Writes go through
// the merge-validate-persist-refresh pipeline; a validation failure leaves
// the stored document untouched.
type SettingsHandler struct {
	service *settingsApp.Service
	logger  logger.Interface
}

func NewSettingsHandler(service *settingsApp.Service, logger logger.Interface) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger,
	}
}

// GetSettings returns the current settings document with defaults filled in.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	doc, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", doc)
}

// ModifySettings applies a partial update. Omitted sections keep their
// stored value, sections set to null are cleared back to defaults, and
// present sections replace the stored section wholesale.
func (h *SettingsHandler) ModifySettings(c *gin.Context) {
	var patch settings.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warnw("invalid request body for modify settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.service.ModifySettings(c.Request.Context(), &patch)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", doc)
}
