package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/types"
)

type SubscriptionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sub *types.Subscription) error
	Delete(ctx context.Context, tx *gorm.DB, followerID, authorID uuid.UUID) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, followerID, authorID uuid.UUID) (bool, error)
	ListAuthors(ctx context.Context, tx *gorm.DB, followerID uuid.UUID) ([]*types.User, error)
}

type subscriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
	repoLog := baseLog.With("repo", "SubscriptionRepo")
	return &subscriptionRepo{db: db, log: repoLog}
}

func (sr *subscriptionRepo) Create(ctx context.Context, tx *gorm.DB, sub *types.Subscription) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(sub).Error
}

func (sr *subscriptionRepo) Delete(ctx context.Context, tx *gorm.DB, followerID, authorID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	result := transaction.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&types.Subscription{})
	return result.RowsAffected, result.Error
}

func (sr *subscriptionRepo) Exists(ctx context.Context, tx *gorm.DB, followerID, authorID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAuthors returns the users the follower is subscribed to, oldest
// subscription first.
func (sr *subscriptionRepo) ListAuthors(ctx context.Context, tx *gorm.DB, followerID uuid.UUID) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.User
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Joins(`JOIN subscription ON subscription.author_id = "user".id`).
		Where("subscription.follower_id = ?", followerID).
		Order("subscription.created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
