package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/types"
)

// RecipeFilter narrows List. Zero values mean "no constraint". FavoritedBy
// and InCartOf are viewer ids and are ignored when uuid.Nil.
type RecipeFilter struct {
	AuthorID    uuid.UUID
	TagSlugs    []string
	FavoritedBy uuid.UUID
	InCartOf    uuid.UUID
	Limit       int
	Offset      int
}

type RecipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) (*types.Recipe, error)
	Update(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error
	GetByID(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) (*types.Recipe, error)
	List(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*types.Recipe, error)
	ListByAuthor(ctx context.Context, tx *gorm.DB, authorID uuid.UUID, limit int) ([]*types.Recipe, error)
	CountByAuthor(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) (int64, error)
	ReplaceTags(ctx context.Context, tx *gorm.DB, recipe *types.Recipe, tags []*types.Tag) error
	Delete(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	repoLog := baseLog.With("repo", "RecipeRepo")
	return &recipeRepo{db: db, log: repoLog}
}

func (rr *recipeRepo) Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) (*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	// Associations are written explicitly via ReplaceTags and the
	// RecipeIngredientRepo, not through gorm's auto-save.
	if err := transaction.WithContext(ctx).
		Omit("Tags", "Ingredients", "Author").
		Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (rr *recipeRepo) Update(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
		}).Error
}

func (rr *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) (*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.Recipe
	if err := transaction.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Where("id = ?", recipeID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *recipeRepo) List(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	query := transaction.WithContext(ctx).
		Model(&types.Recipe{}).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		// id tiebreak keeps pagination stable for rows created in the same
		// timestamp tick.
		Order("created_at DESC, id")

	if filter.AuthorID != uuid.Nil {
		query = query.Where("recipe.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.Where(
			"recipe.id IN (?)",
			transaction.Model(&types.Tag{}).
				Select("recipe_tag.recipe_id").
				Joins("JOIN recipe_tag ON recipe_tag.tag_id = tag.id").
				Where("tag.slug IN ?", filter.TagSlugs),
		)
	}
	if filter.FavoritedBy != uuid.Nil {
		query = query.Where(
			"recipe.id IN (?)",
			transaction.Model(&types.UserRecipeMark{}).
				Select("recipe_id").
				Where("user_id = ? AND kind = ?", filter.FavoritedBy, types.MarkFavorite),
		)
	}
	if filter.InCartOf != uuid.Nil {
		query = query.Where(
			"recipe.id IN (?)",
			transaction.Model(&types.UserRecipeMark{}).
				Select("recipe_id").
				Where("user_id = ? AND kind = ?", filter.InCartOf, types.MarkCart),
		)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var results []*types.Recipe
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recipeRepo) ListByAuthor(ctx context.Context, tx *gorm.DB, authorID uuid.UUID, limit int) ([]*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	query := transaction.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var results []*types.Recipe
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recipeRepo) CountByAuthor(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceTags swaps the recipe's tag set wholesale.
func (rr *recipeRepo) ReplaceTags(ctx context.Context, tx *gorm.DB, recipe *types.Recipe, tags []*types.Tag) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(recipe).
		Association("Tags").
		Replace(tags)
}

func (rr *recipeRepo) Delete(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Select("Tags").
		Delete(&types.Recipe{ID: recipeID}).Error
}
