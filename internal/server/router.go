package server

import (
	"github.com/gin-gonic/gin"

	"github.com/sic15/foodgram-project-react/internal/handlers"
	"github.com/sic15/foodgram-project-react/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	RecipeHandler       *handlers.RecipeHandler
	MarkHandler         *handlers.MarkHandler
	TagHandler          *handlers.TagHandler
	IngredientHandler   *handlers.IngredientHandler
	SubscriptionHandler *handlers.SubscriptionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/healthcheck", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// Catalogs and recipe reads are public; the per-viewer flags resolve
	// when a token is sent anyway.
	public := api.Group("/")
	{
		public.Use(cfg.AuthMiddleware.OptionalAuth())
		public.GET("/tags", cfg.TagHandler.List)
		public.GET("/tags/:id", cfg.TagHandler.Get)
		public.GET("/ingredients", cfg.IngredientHandler.List)
		public.GET("/ingredients/:id", cfg.IngredientHandler.Get)
		public.GET("/recipes", cfg.RecipeHandler.List)
		public.GET("/recipes/:id", cfg.RecipeHandler.Get)
		public.GET("/users", cfg.UserHandler.List)
		public.GET("/users/:id", cfg.UserHandler.Get)
	}

	protected := api.Group("/")
	{
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		// Users
		protected.GET("/users/me", cfg.UserHandler.GetMe)
		protected.POST("/users/set_password", cfg.AuthHandler.SetPassword)
		// Recipes
		protected.POST("/recipes", cfg.RecipeHandler.Create)
		protected.PATCH("/recipes/:id", cfg.RecipeHandler.Update)
		protected.DELETE("/recipes/:id", cfg.RecipeHandler.Delete)
		// Favorite / shopping cart
		protected.POST("/recipes/:id/favorite", cfg.MarkHandler.AddFavorite)
		protected.DELETE("/recipes/:id/favorite", cfg.MarkHandler.RemoveFavorite)
		protected.POST("/recipes/:id/shopping_cart", cfg.MarkHandler.AddToCart)
		protected.DELETE("/recipes/:id/shopping_cart", cfg.MarkHandler.RemoveFromCart)
		protected.GET("/recipes/download_shopping_cart", cfg.MarkHandler.DownloadShoppingCart)
		// Subscriptions
		protected.GET("/users/subscriptions", cfg.SubscriptionHandler.List)
		protected.POST("/users/:id/subscribe", cfg.SubscriptionHandler.Subscribe)
		protected.DELETE("/users/:id/subscribe", cfg.SubscriptionHandler.Unsubscribe)
	}

	return r
}
