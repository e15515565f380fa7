package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	handlerLog := log.With("handler", "AuthHandler")
	return &AuthHandler{log: handlerLog, authService: authService}
}

// POST /api/register
func (ah *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ah.log, apierr.BadRequest("invalid request body"))
		return
	}
	view, err := ah.authService.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// POST /api/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ah.log, apierr.BadRequest("invalid request body"))
		return
	}
	token, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_token": token})
}

// POST /api/users/set_password
func (ah *AuthHandler) SetPassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ah.log, apierr.BadRequest("invalid request body"))
		return
	}
	if err := ah.authService.SetPassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
