package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	handlerLog := log.With("handler", "UserHandler")
	return &UserHandler{log: handlerLog, userService: userService}
}

// GET /api/users/me
func (uh *UserHandler) GetMe(c *gin.Context) {
	view, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/users/:id
func (uh *UserHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, uh.log, apierr.NotFound("user not found"))
		return
	}
	view, err := uh.userService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/users
func (uh *UserHandler) List(c *gin.Context) {
	views, err := uh.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
