package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/types"
)

type MarkRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mark *types.UserRecipeMark) error
	// Delete reports how many rows were removed so callers can reject the
	// removal of a mark that never existed.
	Delete(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID, kind types.MarkKind) (int64, error)
	DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID, kind types.MarkKind) (bool, error)
}

type markRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMarkRepo(db *gorm.DB, baseLog *logger.Logger) MarkRepo {
	repoLog := baseLog.With("repo", "MarkRepo")
	return &markRepo{db: db, log: repoLog}
}

func (mr *markRepo) Create(ctx context.Context, tx *gorm.DB, mark *types.UserRecipeMark) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).Create(mark).Error
}

func (mr *markRepo) Delete(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID, kind types.MarkKind) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	result := transaction.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Delete(&types.UserRecipeMark{})
	return result.RowsAffected, result.Error
}

func (mr *markRepo) DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&types.UserRecipeMark{}).Error
}

func (mr *markRepo) Exists(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID, kind types.MarkKind) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.UserRecipeMark{}).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
