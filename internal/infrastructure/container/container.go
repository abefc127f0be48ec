// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	aiapp "github.com/mealforge/v1/internal/application/ai"
	favoritesapp "github.com/mealforge/v1/internal/application/favorites"
	mealplanapp "github.com/mealforge/v1/internal/application/mealplan"
	nutritionapp "github.com/mealforge/v1/internal/application/nutrition"
	shoppingapp "github.com/mealforge/v1/internal/application/shopping"
	"github.com/mealforge/v1/internal/infrastructure/ai/openrouter"
	"github.com/mealforge/v1/internal/infrastructure/config"
	"github.com/mealforge/v1/internal/infrastructure/http/apiserver"
	"github.com/mealforge/v1/internal/infrastructure/http/handlers"
	"github.com/mealforge/v1/internal/infrastructure/persistence/file"
	"github.com/mealforge/v1/internal/infrastructure/persistence/memory"
	"github.com/mealforge/v1/internal/infrastructure/persistence/redis"
	"github.com/mealforge/v1/internal/infrastructure/persistence/sqlite"
	"github.com/mealforge/v1/internal/infrastructure/recipes"
	"github.com/mealforge/v1/internal/infrastructure/recipes/mealdb"
	"github.com/mealforge/v1/internal/infrastructure/recipes/spoonacular"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/healthcheck"
	"github.com/mealforge/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	StorageModule,
	CacheModule,

	// External collaborator modules
	RecipeSourceModule,
	AIModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// StorageModule provides the key-value store backing every collection. The
// driver is selected by configuration: file (default), sqlite or memory.
var StorageModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.KeyValueStore, error) {
		switch cfg.Storage.Driver {
		case "file", "":
			store, err := file.NewStore(cfg.Storage.Path, log)
			if err != nil {
				return nil, fmt.Errorf("file storage: %w", err)
			}
			log.Info("Using file storage", zap.String("dir", cfg.Storage.Path))
			return store, nil

		case "sqlite":
			store, err := sqlite.NewStore(cfg.Storage.Path)
			if err != nil {
				return nil, fmt.Errorf("sqlite storage: %w", err)
			}
			log.Info("Using SQLite storage", zap.String("path", cfg.Storage.Path))
			return store, nil

		case "memory":
			log.Info("Using in-memory storage")
			return memory.NewStore(), nil
		}

		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	},
)

// CacheModule provides the recipe cache
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Cache.Driver == "redis" {
			cache, err := redis.NewCacheRepository(redis.Options{
				Addr:     cfg.Cache.Addr,
				Password: cfg.Cache.Password,
				DB:       cfg.Cache.DB,
			}, log)
			if err != nil {
				return nil, fmt.Errorf("redis cache: %w", err)
			}
			log.Info("Using Redis cache", zap.String("addr", cfg.Cache.Addr))
			return cache, nil
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RecipeSourceModule provides the external recipe source: Spoonacular when
// an API key is configured, TheMealDB as fallback, read-through cached.
var RecipeSourceModule = fx.Provide(
	func(cfg *config.Config, cache outbound.CacheRepository, log *zap.Logger) outbound.RecipeSource {
		var primary outbound.RecipeSource = spoonacular.NewClient(spoonacular.Options{
			APIKey:  cfg.Recipes.APIKey,
			BaseURL: cfg.Recipes.BaseURL,
			Timeout: cfg.Recipes.Timeout,
		}, log)

		var secondary outbound.RecipeSource
		if cfg.Recipes.FallbackBaseURL != "" {
			secondary = mealdb.NewClient(cfg.Recipes.FallbackBaseURL, log)
		}
		if cfg.Recipes.APIKey == "" {
			if secondary == nil {
				secondary = mealdb.NewClient("", log)
			}
			log.Warn("No recipe API key configured, relying on fallback source")
		}

		source := recipes.NewFallbackSource(primary, secondary, log)
		return recipes.NewCachedSource(source, cache, cfg.Cache.TTL, log)
	},
)

// AIModule provides the language-model proxy client
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		return openrouter.NewClient(openrouter.Options{
			APIKey:            cfg.AI.APIKey,
			BaseURL:           cfg.AI.BaseURL,
			Model:             cfg.AI.Model,
			Temperature:       cfg.AI.Temperature,
			MaxTokens:         cfg.AI.MaxTokens,
			Timeout:           cfg.AI.Timeout,
			RequestsPerMinute: cfg.AI.RequestsPerMinute,
		}, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	mealplanapp.NewService,
	favoritesapp.NewService,
	shoppingapp.NewService,
	func(plans inbound.PlanService, cfg *config.Config, log *zap.Logger) inbound.NutritionService {
		return nutritionapp.NewService(plans, cfg.Nutrition.DailyCalorieTarget, log)
	},
	aiapp.NewService,
)

// HTTPModule provides the HTTP server, handlers and health checks
var HTTPModule = fx.Provide(
	handlers.NewPlanHandler,
	handlers.NewShoppingHandler,
	handlers.NewNutritionHandler,
	handlers.NewFavoritesHandler,
	handlers.NewRecipesHandler,
	handlers.NewAIHandler,

	func(
		cfg *config.Config,
		log *zap.Logger,
		kv outbound.KeyValueStore,
		cache outbound.CacheRepository,
	) *healthcheck.HealthCheck {
		health := healthcheck.New(cfg.App.Version, log)
		if pinger, ok := kv.(healthcheck.Pinger); ok {
			health.Register("storage", healthcheck.NewPingChecker(pinger))
		}
		if pinger, ok := cache.(healthcheck.Pinger); ok {
			health.Register("cache", healthcheck.NewPingChecker(pinger))
		}
		return health
	},

	func(
		cfg *config.Config,
		log *zap.Logger,
		plan *handlers.PlanHandler,
		shopping *handlers.ShoppingHandler,
		nutrition *handlers.NutritionHandler,
		favorites *handlers.FavoritesHandler,
		recipesHandler *handlers.RecipesHandler,
		ai *handlers.AIHandler,
		health *healthcheck.HealthCheck,
	) *apiserver.Server {
		return apiserver.NewServer(cfg, log, apiserver.Handlers{
			Plan:      plan,
			Shopping:  shopping,
			Nutrition: nutrition,
			Favorites: favorites,
			Recipes:   recipesHandler,
			AI:        ai,
		}, health)
	},
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting MealForge",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down MealForge")

			if err := server.Stop(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}
