package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/db"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/platform/slugify"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/requestdata"
	"github.com/sic15/foodgram-project-react/internal/types"
)

// testEnv wires every service against one in-memory sqlite database.
type testEnv struct {
	db            *gorm.DB
	recipes       RecipeService
	marks         MarkService
	shoppingList  ShoppingListService
	subscriptions SubscriptionService
	users         UserService
	tags          TagService
	ingredients   IngredientService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrapping sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return gdb
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := newTestDB(t)
	log := logger.NewNop()

	userRepo := repos.NewUserRepo(gdb, log)
	tagRepo := repos.NewTagRepo(gdb, log)
	ingredientRepo := repos.NewIngredientRepo(gdb, log)
	recipeRepo := repos.NewRecipeRepo(gdb, log)
	recipeIngredientRepo := repos.NewRecipeIngredientRepo(gdb, log)
	markRepo := repos.NewMarkRepo(gdb, log)
	subscriptionRepo := repos.NewSubscriptionRepo(gdb, log)

	return &testEnv{
		db:            gdb,
		recipes:       NewRecipeService(gdb, log, recipeRepo, recipeIngredientRepo, tagRepo, ingredientRepo, markRepo, subscriptionRepo),
		marks:         NewMarkService(gdb, log, recipeRepo, markRepo),
		shoppingList:  NewShoppingListService(gdb, log, recipeIngredientRepo),
		subscriptions: NewSubscriptionService(gdb, log, userRepo, recipeRepo, subscriptionRepo),
		users:         NewUserService(gdb, log, userRepo, subscriptionRepo),
		tags:          NewTagService(gdb, log, tagRepo),
		ingredients:   NewIngredientService(gdb, log, ingredientRepo),
	}
}

func ctxAs(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

func (te *testEnv) seedUser(t *testing.T, username string) *types.User {
	t.Helper()
	user := &types.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		Password: "x",
	}
	if err := te.db.Create(user).Error; err != nil {
		t.Fatalf("seeding user %q: %v", username, err)
	}
	return user
}

func (te *testEnv) seedTag(t *testing.T, name string) *types.Tag {
	t.Helper()
	tag := &types.Tag{Name: name, Color: "#49B64E", Slug: slugify.Slug(name)}
	if err := te.db.Create(tag).Error; err != nil {
		t.Fatalf("seeding tag %q: %v", name, err)
	}
	return tag
}

func (te *testEnv) seedIngredient(t *testing.T, name, unit string) *types.Ingredient {
	t.Helper()
	ingredient := &types.Ingredient{Name: name, MeasurementUnit: unit}
	if err := te.db.Create(ingredient).Error; err != nil {
		t.Fatalf("seeding ingredient %q: %v", name, err)
	}
	return ingredient
}

// validInput builds a create payload referencing the given tag and the given
// ingredient amounts.
func validInput(tag *types.Tag, amounts map[*types.Ingredient]int) RecipeInput {
	input := RecipeInput{
		Name:        "borscht",
		Text:        "chop and simmer",
		CookingTime: 90,
		Image:       "recipes/borscht.png",
		TagIDs:      []uuid.UUID{tag.ID},
	}
	for ingredient, amount := range amounts {
		input.Ingredients = append(input.Ingredients, IngredientAmountInput{ID: ingredient.ID, Amount: amount})
	}
	return input
}
