package handlers

import (
	"net/http"

	"orderly/middleware"
	"orderly/services/provider"
	"orderly/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider account management over HTTP.
type ProviderHandler struct {
	Service provider.ProviderService
}

// NewProviderHandler builds the handler around the provider service.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// RegisterProviderHandler handles POST /providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var in provider.RegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.Service.RegisterProvider(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.Success(result))
}

// AuthenticateProviderHandler handles POST /providers/login.
func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.Service.AuthenticateProvider(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(result))
}

// GetProviderHandler handles GET /providers/me.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	prov, err := h.Service.GetProviderByID(c.Request.Context(), middleware.CallerProviderID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(prov))
}

// RevokeProviderTokenHandler handles DELETE /providers/revoke.
func (h *ProviderHandler) RevokeProviderTokenHandler(c *gin.Context) {
	if err := h.Service.RevokeProviderToken(c.Request.Context(), middleware.CallerProviderID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"revoked": true}))
}

// DeleteProviderHandler handles DELETE /providers/delete.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	if err := h.Service.DeleteProvider(c.Request.Context(), middleware.CallerProviderID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"deleted": true}))
}
