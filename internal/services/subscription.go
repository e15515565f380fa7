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

type SubscriptionService interface {
	// Subscribe creates the follower->author pair and returns the author's
	// subscription view. recipesLimit caps the embedded recipe preview;
	// zero means all.
	Subscribe(ctx context.Context, authorID uuid.UUID, recipesLimit int) (*types.SubscriptionView, error)
	Unsubscribe(ctx context.Context, authorID uuid.UUID) error
	List(ctx context.Context, recipesLimit int) ([]*types.SubscriptionView, error)
}

type subscriptionService struct {
	db               *gorm.DB
	log              *logger.Logger
	userRepo         repos.UserRepo
	recipeRepo       repos.RecipeRepo
	subscriptionRepo repos.SubscriptionRepo
}

func NewSubscriptionService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	recipeRepo repos.RecipeRepo,
	subscriptionRepo repos.SubscriptionRepo,
) SubscriptionService {
	serviceLog := log.With("service", "SubscriptionService")
	return &subscriptionService{
		db:               db,
		log:              serviceLog,
		userRepo:         userRepo,
		recipeRepo:       recipeRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (ss *subscriptionService) Subscribe(ctx context.Context, authorID uuid.UUID, recipesLimit int) (*types.SubscriptionView, error) {
	followerID := requestdata.ViewerID(ctx)
	if followerID == uuid.Nil {
		return nil, apierr.Unauthorized("authentication required")
	}
	if followerID == authorID {
		return nil, apierr.SelfSubscription()
	}

	var view *types.SubscriptionView
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		author, err := ss.userRepo.GetByID(ctx, tx, authorID)
		if err != nil {
			if isNotFound(err) {
				return apierr.NotFound("user not found")
			}
			return fmt.Errorf("fetching author: %w", err)
		}
		sub := &types.Subscription{FollowerID: followerID, AuthorID: authorID}
		if err := ss.subscriptionRepo.Create(ctx, tx, sub); err != nil {
			if isUniqueViolation(err) {
				return apierr.AlreadyExists("subscription already exists")
			}
			return fmt.Errorf("creating subscription: %w", err)
		}
		v, err := ss.buildView(ctx, tx, author, recipesLimit)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	ss.log.Info("Subscribed", "follower_id", followerID, "author_id", authorID)
	return view, nil
}

func (ss *subscriptionService) Unsubscribe(ctx context.Context, authorID uuid.UUID) error {
	followerID := requestdata.ViewerID(ctx)
	if followerID == uuid.Nil {
		return apierr.Unauthorized("authentication required")
	}

	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ss.userRepo.GetByID(ctx, tx, authorID); err != nil {
			if isNotFound(err) {
				return apierr.NotFound("user not found")
			}
			return fmt.Errorf("fetching author: %w", err)
		}
		removed, err := ss.subscriptionRepo.Delete(ctx, tx, followerID, authorID)
		if err != nil {
			return fmt.Errorf("deleting subscription: %w", err)
		}
		if removed == 0 {
			return apierr.BadRequest("subscription does not exist")
		}
		return nil
	})
}

func (ss *subscriptionService) List(ctx context.Context, recipesLimit int) ([]*types.SubscriptionView, error) {
	followerID := requestdata.ViewerID(ctx)
	if followerID == uuid.Nil {
		return nil, apierr.Unauthorized("authentication required")
	}

	authors, err := ss.subscriptionRepo.ListAuthors(ctx, nil, followerID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	views := make([]*types.SubscriptionView, 0, len(authors))
	for _, author := range authors {
		view, err := ss.buildView(ctx, nil, author, recipesLimit)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// buildView renders one followed author: profile fields, a recent-recipes
// preview and the author's total recipe count. is_subscribed is always true
// here, the caller follows the author by construction.
func (ss *subscriptionService) buildView(ctx context.Context, tx *gorm.DB, author *types.User, recipesLimit int) (*types.SubscriptionView, error) {
	recipes, err := ss.recipeRepo.ListByAuthor(ctx, tx, author.ID, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("listing author recipes: %w", err)
	}
	count, err := ss.recipeRepo.CountByAuthor(ctx, tx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("counting author recipes: %w", err)
	}
	view := &types.SubscriptionView{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      make([]types.RecipeMinimalView, 0, len(recipes)),
		RecipesCount: count,
	}
	for _, recipe := range recipes {
		view.Recipes = append(view.Recipes, recipe.MinimalView())
	}
	return view, nil
}
