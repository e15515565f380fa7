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

const defaultRecipePageSize = 6

type RecipeHandler struct {
	log           *logger.Logger
	recipeService services.RecipeService
}

func NewRecipeHandler(log *logger.Logger, recipeService services.RecipeService) *RecipeHandler {
	handlerLog := log.With("handler", "RecipeHandler")
	return &RecipeHandler{log: handlerLog, recipeService: recipeService}
}

// GET /api/recipes
func (rh *RecipeHandler) List(c *gin.Context) {
	filter := services.RecipeListFilter{
		TagSlugs: c.QueryArray("tags"),
		Limit:    defaultRecipePageSize,
	}
	if author := c.Query("author"); author != "" {
		authorID, err := uuid.Parse(author)
		if err != nil {
			respondError(c, rh.log, apierr.Validation("author", "author must be a valid id"))
			return
		}
		filter.AuthorID = authorID
	}
	filter.IsFavorited = boolQuery(c, "is_favorited")
	filter.IsInShoppingCart = boolQuery(c, "is_in_shopping_cart")
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	views, err := rh.recipeService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/recipes/:id
func (rh *RecipeHandler) Get(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, rh.log, apierr.NotFound("recipe not found"))
		return
	}
	view, err := rh.recipeService.Get(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/recipes
func (rh *RecipeHandler) Create(c *gin.Context) {
	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, rh.log, apierr.BadRequest("invalid request body"))
		return
	}
	view, err := rh.recipeService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// PATCH /api/recipes/:id
func (rh *RecipeHandler) Update(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, rh.log, apierr.NotFound("recipe not found"))
		return
	}
	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, rh.log, apierr.BadRequest("invalid request body"))
		return
	}
	view, err := rh.recipeService.Update(c.Request.Context(), recipeID, input)
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/recipes/:id
func (rh *RecipeHandler) Delete(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, rh.log, apierr.NotFound("recipe not found"))
		return
	}
	if err := rh.recipeService.Delete(c.Request.Context(), recipeID); err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func boolQuery(c *gin.Context, name string) bool {
	switch c.Query(name) {
	case "1", "true", "True":
		return true
	}
	return false
}
