package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/services"
)

type SubscriptionHandler struct {
	log                 *logger.Logger
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(log *logger.Logger, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	handlerLog := log.With("handler", "SubscriptionHandler")
	return &SubscriptionHandler{log: handlerLog, subscriptionService: subscriptionService}
}

// recipesLimit caps the recipe preview embedded in subscription views; zero
// means all of the author's recipes.
func recipesLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// POST /api/users/:id/subscribe
func (sh *SubscriptionHandler) Subscribe(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, sh.log, apierr.NotFound("user not found"))
		return
	}
	view, err := sh.subscriptionService.Subscribe(c.Request.Context(), authorID, recipesLimit(c))
	if err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// DELETE /api/users/:id/subscribe
func (sh *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, sh.log, apierr.NotFound("user not found"))
		return
	}
	if err := sh.subscriptionService.Unsubscribe(c.Request.Context(), authorID); err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/users/subscriptions
func (sh *SubscriptionHandler) List(c *gin.Context) {
	views, err := sh.subscriptionService.List(c.Request.Context(), recipesLimit(c))
	if err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
