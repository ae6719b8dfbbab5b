package handlers

import (
	"net/http"

	"orderly/middleware"
	"orderly/services/user"
	"orderly/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes client account management over HTTP.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler builds the handler around the user service.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.Service.RegisterUser(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.Success(result))
}

// AuthenticateUserHandler handles POST /users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.Service.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(result))
}

// GetUserHandler handles GET /users/me.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	usr, err := h.Service.GetUserByID(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(usr))
}

// DeleteUserHandler handles DELETE /users/delete.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(c.Request.Context(), middleware.CallerUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"deleted": true}))
}
