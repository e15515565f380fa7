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

// TagService is a read-only catalog; writes happen through seeding only.
type TagService interface {
	Get(ctx context.Context, tagID uuid.UUID) (*types.TagView, error)
	List(ctx context.Context) ([]types.TagView, error)
}

type tagService struct {
	db      *gorm.DB
	log     *logger.Logger
	tagRepo repos.TagRepo
}

func NewTagService(db *gorm.DB, log *logger.Logger, tagRepo repos.TagRepo) TagService {
	serviceLog := log.With("service", "TagService")
	return &tagService{db: db, log: serviceLog, tagRepo: tagRepo}
}

func (ts *tagService) Get(ctx context.Context, tagID uuid.UUID) (*types.TagView, error) {
	tag, err := ts.tagRepo.GetByID(ctx, nil, tagID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierr.NotFound("tag not found")
		}
		return nil, fmt.Errorf("fetching tag: %w", err)
	}
	view := tag.View()
	return &view, nil
}

func (ts *tagService) List(ctx context.Context) ([]types.TagView, error) {
	tags, err := ts.tagRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	views := make([]types.TagView, 0, len(tags))
	for _, tag := range tags {
		views = append(views, tag.View())
	}
	return views, nil
}
