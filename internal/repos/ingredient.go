package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/types"
)

type IngredientRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, ingredients []*types.Ingredient) error
	GetByID(ctx context.Context, tx *gorm.DB, ingredientID uuid.UUID) (*types.Ingredient, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ingredientIDs []uuid.UUID) ([]*types.Ingredient, error)
	List(ctx context.Context, tx *gorm.DB, nameSubstring string) ([]*types.Ingredient, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	repoLog := baseLog.With("repo", "IngredientRepo")
	return &ingredientRepo{db: db, log: repoLog}
}

// Upsert writes seeded reference ingredients, keyed by (name, unit).
func (ir *ingredientRepo) Upsert(ctx context.Context, tx *gorm.DB, ingredients []*types.Ingredient) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if len(ingredients) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
			DoNothing: true,
		}).
		Create(&ingredients).Error
}

func (ir *ingredientRepo) GetByID(ctx context.Context, tx *gorm.DB, ingredientID uuid.UUID) (*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var result types.Ingredient
	if err := transaction.WithContext(ctx).
		Where("id = ?", ingredientID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ir *ingredientRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ingredientIDs []uuid.UUID) ([]*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.Ingredient
	if len(ingredientIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ingredientIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// List returns the catalog ordered by name, optionally narrowed by a
// case-insensitive substring match.
func (ir *ingredientRepo) List(ctx context.Context, tx *gorm.DB, nameSubstring string) ([]*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	query := transaction.WithContext(ctx).Order("name")
	if s := strings.TrimSpace(nameSubstring); s != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var results []*types.Ingredient
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
