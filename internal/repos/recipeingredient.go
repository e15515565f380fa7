package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/types"
)

// ShoppingListRow is one aggregated line of a user's shopping list: a catalog
// ingredient with its amount summed across every recipe in the cart.
type ShoppingListRow struct {
	IngredientID    uuid.UUID `gorm:"column:ingredient_id"`
	Name            string    `gorm:"column:name"`
	MeasurementUnit string    `gorm:"column:measurement_unit"`
	TotalAmount     int       `gorm:"column:total_amount"`
}

type RecipeIngredientRepo interface {
	ReplaceForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, rows []*types.RecipeIngredient) error
	DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
	SumForCart(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]ShoppingListRow, error)
}

type recipeIngredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	repoLog := baseLog.With("repo", "RecipeIngredientRepo")
	return &recipeIngredientRepo{db: db, log: repoLog}
}

// ReplaceForRecipe drops every amount row of the recipe and bulk-inserts the
// new set. Callers run it inside the recipe write transaction so the swap is
// atomic.
func (rir *recipeIngredientRepo) ReplaceForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, rows []*types.RecipeIngredient) error {
	transaction := tx
	if transaction == nil {
		transaction = rir.db
	}
	if err := transaction.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&types.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		row.RecipeID = recipeID
	}
	return transaction.WithContext(ctx).Create(&rows).Error
}

func (rir *recipeIngredientRepo) DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rir.db
	}
	return transaction.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&types.RecipeIngredient{}).Error
}

// SumForCart groups by ingredient identity, not name: two ingredients that
// share a name but differ in unit keep separate rows.
func (rir *recipeIngredientRepo) SumForCart(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]ShoppingListRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = rir.db
	}
	var results []ShoppingListRow
	if err := transaction.WithContext(ctx).
		Model(&types.RecipeIngredient{}).
		Select("ingredient.id AS ingredient_id, ingredient.name AS name, ingredient.measurement_unit AS measurement_unit, SUM(recipe_ingredient.amount) AS total_amount").
		Joins("JOIN ingredient ON ingredient.id = recipe_ingredient.ingredient_id").
		Joins("JOIN user_recipe_mark ON user_recipe_mark.recipe_id = recipe_ingredient.recipe_id").
		Where("user_recipe_mark.user_id = ? AND user_recipe_mark.kind = ?", userID, types.MarkCart).
		Group("ingredient.id, ingredient.name, ingredient.measurement_unit").
		Order("ingredient.name").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
