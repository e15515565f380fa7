package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/requestdata"
	"github.com/sic15/foodgram-project-react/internal/types"
)

// MarkService handles the favorite and shopping-cart toggles. Both are the
// same unique-pair relation, only the kind differs.
type MarkService interface {
	Add(ctx context.Context, recipeID uuid.UUID, kind types.MarkKind) (*types.RecipeMinimalView, error)
	Remove(ctx context.Context, recipeID uuid.UUID, kind types.MarkKind) error
}

type markService struct {
	db         *gorm.DB
	log        *logger.Logger
	recipeRepo repos.RecipeRepo
	markRepo   repos.MarkRepo
}

func NewMarkService(db *gorm.DB, log *logger.Logger, recipeRepo repos.RecipeRepo, markRepo repos.MarkRepo) MarkService {
	serviceLog := log.With("service", "MarkService")
	return &markService{db: db, log: serviceLog, recipeRepo: recipeRepo, markRepo: markRepo}
}

func markKindNoun(kind types.MarkKind) string {
	if kind == types.MarkCart {
		return "shopping cart"
	}
	return "favorites"
}

func (ms *markService) Add(ctx context.Context, recipeID uuid.UUID, kind types.MarkKind) (*types.RecipeMinimalView, error) {
	userID := requestdata.ViewerID(ctx)
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("authentication required")
	}

	var view types.RecipeMinimalView
	err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := ms.recipeRepo.GetByID(ctx, tx, recipeID)
		if err != nil {
			if isNotFound(err) {
				return apierr.BadRequest("recipe not found")
			}
			return fmt.Errorf("fetching recipe: %w", err)
		}
		mark := &types.UserRecipeMark{UserID: userID, RecipeID: recipeID, Kind: kind}
		if err := ms.markRepo.Create(ctx, tx, mark); err != nil {
			if isUniqueViolation(err) {
				return apierr.AlreadyExists(fmt.Sprintf("recipe already in %s", markKindNoun(kind)))
			}
			return fmt.Errorf("creating mark: %w", err)
		}
		view = recipe.MinimalView()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (ms *markService) Remove(ctx context.Context, recipeID uuid.UUID, kind types.MarkKind) error {
	userID := requestdata.ViewerID(ctx)
	if userID == uuid.Nil {
		return apierr.Unauthorized("authentication required")
	}

	return ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ms.recipeRepo.GetByID(ctx, tx, recipeID); err != nil {
			if isNotFound(err) {
				return apierr.NotFound("recipe not found")
			}
			return fmt.Errorf("fetching recipe: %w", err)
		}
		// A removal of a mark that never existed is rejected, not no-oped.
		removed, err := ms.markRepo.Delete(ctx, tx, userID, recipeID, kind)
		if err != nil {
			return fmt.Errorf("deleting mark: %w", err)
		}
		if removed == 0 {
			return apierr.BadRequest(fmt.Sprintf("recipe was not in %s", markKindNoun(kind)))
		}
		return nil
	})
}
