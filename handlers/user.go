// File: handlers/user.go
package handlers

import (
	"net/http"

	"praxia/models"
	"praxia/services/user"
	"praxia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration, login and profile endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		utils.GetLogger().Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req models.AuthUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	usr, err := h.Service.GetUserByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /users (admin).
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// RevokeAuthTokenHandler handles DELETE /users/revoke.
func (h *UserHandler) RevokeAuthTokenHandler(c *gin.Context) {
	if err := h.Service.RevokeAuthToken(c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
