// Package server assembles the HTTP router from the domain packages.
package server

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodgram/internal/config"
	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/interaction"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shoppinglist"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	jwtsvc "foodgram/internal/pkg/jwt"
)

// Deps are the long-lived resources the router is built on. Redis may be nil.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(d.Logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	requireAuth := middleware.JWTAuth(jwt)
	optionalAuth := middleware.OptionalAuth(jwt)

	// repositories
	userRepo := user.NewRepository(d.DB)
	recipeRepo := recipe.NewRepository(d.DB)

	// services
	subscriptionService := subscription.NewService(subscription.NewRepository(d.DB), userRepo, recipeRepo)
	userService := user.NewService(userRepo, subscriptionService)
	interactionService := interaction.NewService(interaction.NewRepository(d.DB), recipeRepo)
	recipeService := recipe.NewService(recipeRepo, userService, interactionService)
	ingredientService := ingredient.NewService(
		ingredient.NewRepository(d.DB),
		ingredient.NewCache(d.Redis, cfg.IngredientCacheTTL),
	)
	shoppingService := shoppinglist.NewService(shoppinglist.NewRepository(d.DB))
	authService := auth.NewService(userService, jwt)

	// handlers
	recipeHandler := recipe.NewHandler(recipeService, cfg.PublicBaseURL)

	api := r.Group("/api")
	{
		auth.NewHandler(authService).RegisterPublicRoutes(api)
		user.RegisterRoutes(api, user.NewHandler(userService), requireAuth, optionalAuth)
		subscription.RegisterRoutes(api, subscription.NewHandler(subscriptionService), requireAuth)
		ingredient.RegisterRoutes(api, ingredient.NewHandler(ingredientService))

		recipes := recipe.RegisterRoutes(api, recipeHandler, requireAuth, optionalAuth)
		interaction.RegisterRoutes(recipes, interaction.NewHandler(interactionService), requireAuth)
		shoppinglist.RegisterRoutes(recipes, shoppinglist.NewHandler(shoppingService), requireAuth)
	}
	recipe.RegisterShortLinkRoutes(r, recipeHandler)

	return r
}
