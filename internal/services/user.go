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

type UserService interface {
	GetMe(ctx context.Context) (*types.UserView, error)
	Get(ctx context.Context, userID uuid.UUID) (*types.UserView, error)
	List(ctx context.Context) ([]*types.UserView, error)
}

type userService struct {
	db               *gorm.DB
	log              *logger.Logger
	userRepo         repos.UserRepo
	subscriptionRepo repos.SubscriptionRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, subscriptionRepo repos.SubscriptionRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo, subscriptionRepo: subscriptionRepo}
}

func (us *userService) GetMe(ctx context.Context) (*types.UserView, error) {
	userID := requestdata.ViewerID(ctx)
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("authentication required")
	}
	return us.Get(ctx, userID)
}

func (us *userService) Get(ctx context.Context, userID uuid.UUID) (*types.UserView, error) {
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierr.NotFound("user not found")
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	isSubscribed := false
	if viewerID := requestdata.ViewerID(ctx); viewerID != uuid.Nil && viewerID != user.ID {
		isSubscribed, err = us.subscriptionRepo.Exists(ctx, nil, viewerID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("checking subscription: %w", err)
		}
	}
	view := user.View(isSubscribed)
	return &view, nil
}

func (us *userService) List(ctx context.Context) ([]*types.UserView, error) {
	users, err := us.userRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	viewerID := requestdata.ViewerID(ctx)
	views := make([]*types.UserView, 0, len(users))
	for _, user := range users {
		isSubscribed := false
		if viewerID != uuid.Nil && viewerID != user.ID {
			isSubscribed, err = us.subscriptionRepo.Exists(ctx, nil, viewerID, user.ID)
			if err != nil {
				return nil, fmt.Errorf("checking subscription: %w", err)
			}
		}
		view := user.View(isSubscribed)
		views = append(views, &view)
	}
	return views, nil
}
