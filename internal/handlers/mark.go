package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/services"
	"github.com/sic15/foodgram-project-react/internal/types"
)

// MarkHandler serves the favorite and shopping-cart toggles plus the shopping
// list download.
type MarkHandler struct {
	log                 *logger.Logger
	markService         services.MarkService
	shoppingListService services.ShoppingListService
}

func NewMarkHandler(log *logger.Logger, markService services.MarkService, shoppingListService services.ShoppingListService) *MarkHandler {
	handlerLog := log.With("handler", "MarkHandler")
	return &MarkHandler{log: handlerLog, markService: markService, shoppingListService: shoppingListService}
}

// POST /api/recipes/:id/favorite
func (mh *MarkHandler) AddFavorite(c *gin.Context) {
	mh.add(c, types.MarkFavorite)
}

// DELETE /api/recipes/:id/favorite
func (mh *MarkHandler) RemoveFavorite(c *gin.Context) {
	mh.remove(c, types.MarkFavorite)
}

// POST /api/recipes/:id/shopping_cart
func (mh *MarkHandler) AddToCart(c *gin.Context) {
	mh.add(c, types.MarkCart)
}

// DELETE /api/recipes/:id/shopping_cart
func (mh *MarkHandler) RemoveFromCart(c *gin.Context) {
	mh.remove(c, types.MarkCart)
}

// GET /api/recipes/download_shopping_cart
func (mh *MarkHandler) DownloadShoppingCart(c *gin.Context) {
	content, err := mh.shoppingListService.Export(c.Request.Context())
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", services.ShoppingListFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

func (mh *MarkHandler) add(c *gin.Context, kind types.MarkKind) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, mh.log, apierr.BadRequest("recipe not found"))
		return
	}
	view, err := mh.markService.Add(c.Request.Context(), recipeID, kind)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (mh *MarkHandler) remove(c *gin.Context, kind types.MarkKind) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, mh.log, apierr.NotFound("recipe not found"))
		return
	}
	if err := mh.markService.Remove(c.Request.Context(), recipeID, kind); err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
