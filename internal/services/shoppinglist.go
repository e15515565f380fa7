package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/requestdata"
)

const (
	ShoppingListHeader   = "Shopping list:"
	ShoppingListFilename = "shopping_cart.txt"
)

// ShoppingListService renders the text export of a user's cart: every
// ingredient amount row of every carted recipe, summed per ingredient.
type ShoppingListService interface {
	Export(ctx context.Context) (string, error)
}

type shoppingListService struct {
	db                   *gorm.DB
	log                  *logger.Logger
	recipeIngredientRepo repos.RecipeIngredientRepo
}

func NewShoppingListService(db *gorm.DB, log *logger.Logger, recipeIngredientRepo repos.RecipeIngredientRepo) ShoppingListService {
	serviceLog := log.With("service", "ShoppingListService")
	return &shoppingListService{db: db, log: serviceLog, recipeIngredientRepo: recipeIngredientRepo}
}

func (ss *shoppingListService) Export(ctx context.Context) (string, error) {
	userID := requestdata.ViewerID(ctx)
	if userID == uuid.Nil {
		return "", apierr.Unauthorized("authentication required")
	}

	rows, err := ss.recipeIngredientRepo.SumForCart(ctx, nil, userID)
	if err != nil {
		return "", fmt.Errorf("aggregating cart: %w", err)
	}

	var b strings.Builder
	b.WriteString(ShoppingListHeader)
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s - %d %s.", row.Name, row.TotalAmount, row.MeasurementUnit))
	}
	return b.String(), nil
}
