package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/services"
)

type IngredientHandler struct {
	log               *logger.Logger
	ingredientService services.IngredientService
}

func NewIngredientHandler(log *logger.Logger, ingredientService services.IngredientService) *IngredientHandler {
	handlerLog := log.With("handler", "IngredientHandler")
	return &IngredientHandler{log: handlerLog, ingredientService: ingredientService}
}

// GET /api/ingredients?name=<substring>
func (ih *IngredientHandler) List(c *gin.Context) {
	ingredients, err := ih.ingredientService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, ih.log, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GET /api/ingredients/:id
func (ih *IngredientHandler) Get(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, ih.log, apierr.NotFound("ingredient not found"))
		return
	}
	ingredient, err := ih.ingredientService.Get(c.Request.Context(), ingredientID)
	if err != nil {
		respondError(c, ih.log, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
