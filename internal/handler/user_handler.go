package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/service"
)

// UserHandler ties the registration and login endpoints to the UserService.
type UserHandler struct {
	Users *service.UserService
}

// RegisterRoutes registers:
//
//	POST /users/register
//	POST /users/login
func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/users/register", h.Register)
	r.POST("/users/login", h.Login)
}

// CredentialsDTO is the JSON payload for both register and login.
type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req CredentialsDTO
	_ = c.ShouldBindJSON(&req)

	err := h.Users.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username and password required"})
	case errors.Is(err, repository.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User registered"})
	}
}

// POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsDTO
	_ = c.ShouldBindJSON(&req)

	if err := h.Users.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "username": req.Username})
}
