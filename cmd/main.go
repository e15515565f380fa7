package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sic15/foodgram-project-react/internal/db"
	"github.com/sic15/foodgram-project-react/internal/handlers"
	"github.com/sic15/foodgram-project-react/internal/middleware"
	"github.com/sic15/foodgram-project-react/internal/platform/envutil"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/seed"
	"github.com/sic15/foodgram-project-react/internal/server"
	"github.com/sic15/foodgram-project-react/internal/services"
)

func main() {
	// Logger
	logMode := envutil.Get("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	httpAddr := envutil.Get("HTTP_ADDR", ":8080")
	jwtSecretKey := envutil.Get("JWT_SECRET_KEY", "defaultsecret")
	accessTokenTTL := envutil.Int("ACCESS_TOKEN_TTL", 86400)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	tagRepo := repos.NewTagRepo(thePG, log)
	ingredientRepo := repos.NewIngredientRepo(thePG, log)
	recipeRepo := repos.NewRecipeRepo(thePG, log)
	recipeIngredientRepo := repos.NewRecipeIngredientRepo(thePG, log)
	markRepo := repos.NewMarkRepo(thePG, log)
	subscriptionRepo := repos.NewSubscriptionRepo(thePG, log)

	// Reference data
	seeder := seed.NewSeeder(thePG, log, ingredientRepo, tagRepo)
	if path := envutil.Get("SEED_INGREDIENTS_CSV", ""); path != "" {
		if err := seeder.LoadIngredientsCSV(context.Background(), path); err != nil {
			log.Fatal("Ingredient seeding failed", "error", err)
		}
	}
	if path := envutil.Get("SEED_TAGS_YAML", ""); path != "" {
		if err := seeder.LoadTagsYAML(context.Background(), path); err != nil {
			log.Fatal("Tag seeding failed", "error", err)
		}
	}

	// Services
	log.Info("Setting up services...")
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo, subscriptionRepo)
	tagService := services.NewTagService(thePG, log, tagRepo)
	ingredientService := services.NewIngredientService(thePG, log, ingredientRepo)
	recipeService := services.NewRecipeService(thePG, log, recipeRepo, recipeIngredientRepo, tagRepo, ingredientRepo, markRepo, subscriptionRepo)
	markService := services.NewMarkService(thePG, log, recipeRepo, markRepo)
	shoppingListService := services.NewShoppingListService(thePG, log, recipeIngredientRepo)
	subscriptionService := services.NewSubscriptionService(thePG, log, userRepo, recipeRepo, subscriptionRepo)

	// Handlers
	authMiddleware := middleware.NewAuthMiddleware(log, authService)
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:      authMiddleware,
		AuthHandler:         handlers.NewAuthHandler(log, authService),
		UserHandler:         handlers.NewUserHandler(log, userService),
		RecipeHandler:       handlers.NewRecipeHandler(log, recipeService),
		MarkHandler:         handlers.NewMarkHandler(log, markService, shoppingListService),
		TagHandler:          handlers.NewTagHandler(log, tagService),
		IngredientHandler:   handlers.NewIngredientHandler(log, ingredientService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(log, subscriptionService),
	})

	log.Info("Starting HTTP server", "addr", httpAddr)
	if err := router.Run(httpAddr); err != nil {
		log.Fatal("HTTP server stopped", "error", err)
	}
}
