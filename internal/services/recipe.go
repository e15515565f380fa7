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

// IngredientAmountInput is one {id, amount} entry of a write payload.
type IngredientAmountInput struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
}

// RecipeInput is the write payload for create and update.
type RecipeInput struct {
	Name        string                  `json:"name"`
	Text        string                  `json:"text"`
	CookingTime int                     `json:"cooking_time"`
	Image       string                  `json:"image"`
	TagIDs      []uuid.UUID             `json:"tags"`
	Ingredients []IngredientAmountInput `json:"ingredients"`
}

// RecipeListFilter mirrors the list query parameters.
type RecipeListFilter struct {
	AuthorID         uuid.UUID
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
	Limit            int
	Offset           int
}

type RecipeService interface {
	Create(ctx context.Context, input RecipeInput) (*types.RecipeView, error)
	Update(ctx context.Context, recipeID uuid.UUID, input RecipeInput) (*types.RecipeView, error)
	Get(ctx context.Context, recipeID uuid.UUID) (*types.RecipeView, error)
	List(ctx context.Context, filter RecipeListFilter) ([]*types.RecipeView, error)
	Delete(ctx context.Context, recipeID uuid.UUID) error
}

type recipeService struct {
	db                   *gorm.DB
	log                  *logger.Logger
	recipeRepo           repos.RecipeRepo
	recipeIngredientRepo repos.RecipeIngredientRepo
	tagRepo              repos.TagRepo
	ingredientRepo       repos.IngredientRepo
	markRepo             repos.MarkRepo
	subscriptionRepo     repos.SubscriptionRepo
}

func NewRecipeService(
	db *gorm.DB,
	log *logger.Logger,
	recipeRepo repos.RecipeRepo,
	recipeIngredientRepo repos.RecipeIngredientRepo,
	tagRepo repos.TagRepo,
	ingredientRepo repos.IngredientRepo,
	markRepo repos.MarkRepo,
	subscriptionRepo repos.SubscriptionRepo,
) RecipeService {
	serviceLog := log.With("service", "RecipeService")
	return &recipeService{
		db:                   db,
		log:                  serviceLog,
		recipeRepo:           recipeRepo,
		recipeIngredientRepo: recipeIngredientRepo,
		tagRepo:              tagRepo,
		ingredientRepo:       ingredientRepo,
		markRepo:             markRepo,
		subscriptionRepo:     subscriptionRepo,
	}
}

// validateInput checks the payload in a fixed order, before anything is
// persisted. An image is always required; Update backfills the stored one
// before validating when the payload omits it.
func (rs *recipeService) validateInput(ctx context.Context, tx *gorm.DB, input RecipeInput) error {
	if input.CookingTime < types.MinCookingTime || input.CookingTime > types.MaxCookingTime {
		return apierr.Validation("cooking_time",
			fmt.Sprintf("cooking time must be between %d and %d", types.MinCookingTime, types.MaxCookingTime))
	}
	if input.Image == "" {
		return apierr.Validation("image", "image is required")
	}

	if len(input.TagIDs) == 0 {
		return apierr.Validation("tags", "add at least one tag")
	}
	seenTags := make(map[uuid.UUID]struct{}, len(input.TagIDs))
	for _, tagID := range input.TagIDs {
		if _, dup := seenTags[tagID]; dup {
			return apierr.Validation("tags", "tags must not repeat")
		}
		seenTags[tagID] = struct{}{}
	}
	tags, err := rs.tagRepo.GetByIDs(ctx, tx, input.TagIDs)
	if err != nil {
		return fmt.Errorf("fetching tags: %w", err)
	}
	if len(tags) != len(input.TagIDs) {
		return apierr.Validation("tags", "tag not found")
	}

	if len(input.Ingredients) == 0 {
		return apierr.Validation("ingredients", "add at least one ingredient")
	}
	seenIngredients := make(map[uuid.UUID]struct{}, len(input.Ingredients))
	for _, entry := range input.Ingredients {
		seenIngredients[entry.ID] = struct{}{}
	}
	ingredientIDs := make([]uuid.UUID, 0, len(seenIngredients))
	for ingredientID := range seenIngredients {
		ingredientIDs = append(ingredientIDs, ingredientID)
	}
	found, err := rs.ingredientRepo.GetByIDs(ctx, tx, ingredientIDs)
	if err != nil {
		return fmt.Errorf("fetching ingredients: %w", err)
	}
	if len(found) != len(ingredientIDs) {
		return apierr.Validation("ingredients", "ingredient not found")
	}
	if len(seenIngredients) != len(input.Ingredients) {
		return apierr.Validation("ingredients", "ingredients must not repeat")
	}
	for _, entry := range input.Ingredients {
		if entry.Amount <= 0 {
			return apierr.Validation("amount", "amount must be greater than 0")
		}
	}
	return nil
}

func (rs *recipeService) Create(ctx context.Context, input RecipeInput) (*types.RecipeView, error) {
	authorID := requestdata.ViewerID(ctx)
	if authorID == uuid.Nil {
		return nil, apierr.Unauthorized("authentication required")
	}

	var view *types.RecipeView
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rs.validateInput(ctx, tx, input); err != nil {
			return err
		}
		recipe := &types.Recipe{
			AuthorID:    authorID,
			Name:        input.Name,
			Text:        input.Text,
			CookingTime: input.CookingTime,
			Image:       input.Image,
		}
		if _, err := rs.recipeRepo.Create(ctx, tx, recipe); err != nil {
			return fmt.Errorf("creating recipe: %w", err)
		}
		if err := rs.writeAssociations(ctx, tx, recipe, input); err != nil {
			return err
		}
		v, err := rs.projectByID(ctx, tx, recipe.ID, authorID)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	rs.log.Info("Recipe created", "recipe_id", view.ID, "author_id", authorID)
	return view, nil
}

func (rs *recipeService) Update(ctx context.Context, recipeID uuid.UUID, input RecipeInput) (*types.RecipeView, error) {
	viewerID := requestdata.ViewerID(ctx)
	if viewerID == uuid.Nil {
		return nil, apierr.Unauthorized("authentication required")
	}

	var view *types.RecipeView
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := rs.recipeRepo.GetByID(ctx, tx, recipeID)
		if err != nil {
			if isNotFound(err) {
				return apierr.NotFound("recipe not found")
			}
			return fmt.Errorf("fetching recipe: %w", err)
		}
		if existing.AuthorID != viewerID {
			return apierr.Forbidden("only the author can change a recipe")
		}
		if input.Image == "" {
			input.Image = existing.Image
		}
		if err := rs.validateInput(ctx, tx, input); err != nil {
			return err
		}
		existing.Name = input.Name
		existing.Text = input.Text
		existing.CookingTime = input.CookingTime
		existing.Image = input.Image
		if err := rs.recipeRepo.Update(ctx, tx, existing); err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}
		if err := rs.writeAssociations(ctx, tx, existing, input); err != nil {
			return err
		}
		v, err := rs.projectByID(ctx, tx, existing.ID, viewerID)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	rs.log.Info("Recipe updated", "recipe_id", recipeID, "author_id", viewerID)
	return view, nil
}

// writeAssociations replaces the tag set and the ingredient amount rows
// wholesale. Runs inside the write transaction.
func (rs *recipeService) writeAssociations(ctx context.Context, tx *gorm.DB, recipe *types.Recipe, input RecipeInput) error {
	tags, err := rs.tagRepo.GetByIDs(ctx, tx, input.TagIDs)
	if err != nil {
		return fmt.Errorf("fetching tags: %w", err)
	}
	if err := rs.recipeRepo.ReplaceTags(ctx, tx, recipe, tags); err != nil {
		return fmt.Errorf("replacing tags: %w", err)
	}
	rows := make([]*types.RecipeIngredient, 0, len(input.Ingredients))
	for _, entry := range input.Ingredients {
		rows = append(rows, &types.RecipeIngredient{
			IngredientID: entry.ID,
			Amount:       entry.Amount,
		})
	}
	if err := rs.recipeIngredientRepo.ReplaceForRecipe(ctx, tx, recipe.ID, rows); err != nil {
		return fmt.Errorf("replacing ingredients: %w", err)
	}
	return nil
}

func (rs *recipeService) Get(ctx context.Context, recipeID uuid.UUID) (*types.RecipeView, error) {
	viewerID := requestdata.ViewerID(ctx)
	view, err := rs.projectByID(ctx, nil, recipeID, viewerID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierr.NotFound("recipe not found")
		}
		return nil, err
	}
	return view, nil
}

func (rs *recipeService) List(ctx context.Context, filter RecipeListFilter) ([]*types.RecipeView, error) {
	viewerID := requestdata.ViewerID(ctx)
	repoFilter := repos.RecipeFilter{
		AuthorID: filter.AuthorID,
		TagSlugs: filter.TagSlugs,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}
	// Favorite/cart filters only make sense for an authenticated viewer.
	if viewerID != uuid.Nil {
		if filter.IsFavorited {
			repoFilter.FavoritedBy = viewerID
		}
		if filter.IsInShoppingCart {
			repoFilter.InCartOf = viewerID
		}
	}
	recipes, err := rs.recipeRepo.List(ctx, nil, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	views := make([]*types.RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		view, err := rs.project(ctx, nil, recipe, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (rs *recipeService) Delete(ctx context.Context, recipeID uuid.UUID) error {
	viewerID := requestdata.ViewerID(ctx)
	if viewerID == uuid.Nil {
		return apierr.Unauthorized("authentication required")
	}
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := rs.recipeRepo.GetByID(ctx, tx, recipeID)
		if err != nil {
			if isNotFound(err) {
				return apierr.NotFound("recipe not found")
			}
			return fmt.Errorf("fetching recipe: %w", err)
		}
		if existing.AuthorID != viewerID {
			return apierr.Forbidden("only the author can delete a recipe")
		}
		if err := rs.recipeIngredientRepo.DeleteForRecipe(ctx, tx, recipeID); err != nil {
			return fmt.Errorf("deleting ingredient rows: %w", err)
		}
		if err := rs.markRepo.DeleteForRecipe(ctx, tx, recipeID); err != nil {
			return fmt.Errorf("deleting marks: %w", err)
		}
		if err := rs.recipeRepo.Delete(ctx, tx, recipeID); err != nil {
			return fmt.Errorf("deleting recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	rs.log.Info("Recipe deleted", "recipe_id", recipeID, "author_id", viewerID)
	return nil
}

func (rs *recipeService) projectByID(ctx context.Context, tx *gorm.DB, recipeID, viewerID uuid.UUID) (*types.RecipeView, error) {
	recipe, err := rs.recipeRepo.GetByID(ctx, tx, recipeID)
	if err != nil {
		return nil, err
	}
	return rs.project(ctx, tx, recipe, viewerID)
}

// project assembles the denormalized read view for one recipe. All three
// flags stay false for an anonymous viewer.
func (rs *recipeService) project(ctx context.Context, tx *gorm.DB, recipe *types.Recipe, viewerID uuid.UUID) (*types.RecipeView, error) {
	view := &types.RecipeView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		Image:       recipe.Image,
		Tags:        make([]types.TagView, 0, len(recipe.Tags)),
		Ingredients: make([]types.IngredientAmountView, 0, len(recipe.Ingredients)),
	}
	for _, tag := range recipe.Tags {
		view.Tags = append(view.Tags, tag.View())
	}
	for _, row := range recipe.Ingredients {
		if row.Ingredient == nil {
			return nil, fmt.Errorf("ingredient %s not loaded for recipe %s", row.IngredientID, recipe.ID)
		}
		view.Ingredients = append(view.Ingredients, types.IngredientAmountView{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	isSubscribed := false
	if viewerID != uuid.Nil {
		var err error
		isSubscribed, err = rs.subscriptionRepo.Exists(ctx, tx, viewerID, recipe.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("checking subscription: %w", err)
		}
		view.IsFavorited, err = rs.markRepo.Exists(ctx, tx, viewerID, recipe.ID, types.MarkFavorite)
		if err != nil {
			return nil, fmt.Errorf("checking favorite: %w", err)
		}
		view.IsInShoppingCart, err = rs.markRepo.Exists(ctx, tx, viewerID, recipe.ID, types.MarkCart)
		if err != nil {
			return nil, fmt.Errorf("checking cart: %w", err)
		}
	}
	if recipe.Author != nil {
		view.Author = recipe.Author.View(isSubscribed)
	} else {
		view.Author = types.UserView{ID: recipe.AuthorID, IsSubscribed: isSubscribed}
	}
	return view, nil
}
