package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/types"
)

// IngredientService is a read-only catalog with substring search.
type IngredientService interface {
	Get(ctx context.Context, ingredientID uuid.UUID) (*types.Ingredient, error)
	List(ctx context.Context, nameSubstring string) ([]*types.Ingredient, error)
}

type ingredientService struct {
	db             *gorm.DB
	log            *logger.Logger
	ingredientRepo repos.IngredientRepo
}

func NewIngredientService(db *gorm.DB, log *logger.Logger, ingredientRepo repos.IngredientRepo) IngredientService {
	serviceLog := log.With("service", "IngredientService")
	return &ingredientService{db: db, log: serviceLog, ingredientRepo: ingredientRepo}
}

func (is *ingredientService) Get(ctx context.Context, ingredientID uuid.UUID) (*types.Ingredient, error) {
	ingredient, err := is.ingredientRepo.GetByID(ctx, nil, ingredientID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierr.NotFound("ingredient not found")
		}
		return nil, fmt.Errorf("fetching ingredient: %w", err)
	}
	return ingredient, nil
}

func (is *ingredientService) List(ctx context.Context, nameSubstring string) ([]*types.Ingredient, error) {
	ingredients, err := is.ingredientRepo.List(ctx, nil, nameSubstring)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	return ingredients, nil
}
