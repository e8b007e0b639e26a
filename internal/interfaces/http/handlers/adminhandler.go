package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"veil/internal/application/admin/dto"
	"veil/internal/application/admin/usecases"
	"veil/internal/shared/logger"
	"veil/internal/shared/utils"
)

// AdminHandler exposes admin account management and token issuance.
type AdminHandler struct {
	authenticateUseCase *usecases.AuthenticateUseCase
	createAdminUseCase  *usecases.CreateAdminUseCase
	listAdminsUseCase   *usecases.ListAdminsUseCase
	logger              logger.Interface
}

func NewAdminHandler(
	authenticateUseCase *usecases.AuthenticateUseCase,
	createAdminUseCase *usecases.CreateAdminUseCase,
	listAdminsUseCase *usecases.ListAdminsUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		authenticateUseCase: authenticateUseCase,
		createAdminUseCase:  createAdminUseCase,
		listAdminsUseCase:   listAdminsUseCase,
		logger:              logger,
	}
}

// Token exchanges admin credentials for an access token.
func (h *AdminHandler) Token(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for token", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authenticateUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAdmin registers a new admin account. Sudo only.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create admin", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAdminUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Admin created successfully")
}

// ListAdmins returns every admin account. Sudo only.
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	result, err := h.listAdminsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
