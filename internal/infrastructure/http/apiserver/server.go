// Package apiserver wires the REST API: router, middleware and lifecycle.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/infrastructure/config"
	"github.com/mealforge/v1/internal/infrastructure/http/handlers"
	"github.com/mealforge/v1/internal/infrastructure/http/middleware"
	"github.com/mealforge/v1/pkg/healthcheck"
)

// Handlers bundles the route handlers the server mounts.
type Handlers struct {
	Plan      *handlers.PlanHandler
	Shopping  *handlers.ShoppingHandler
	Nutrition *handlers.NutritionHandler
	Favorites *handlers.FavoritesHandler
	Recipes   *handlers.RecipesHandler
	AI        *handlers.AIHandler
}

// Server is the HTTP server hosting the REST API
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a configured HTTP server
func NewServer(cfg *config.Config, logger *zap.Logger, h Handlers, health *healthcheck.HealthCheck) *Server {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(60 * time.Second))
	router.Use(middleware.Metrics())
	if cfg.Server.EnableCORS {
		router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	router.Get("/health", health.Handler())
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())

		r.Route("/plan", func(r chi.Router) {
			r.Post("/", h.Plan.Create)
			r.Get("/", h.Plan.List)
			r.Get("/export", h.Plan.Export)
			r.Patch("/{id}", h.Plan.Update)
			r.Delete("/{id}", h.Plan.Delete)
			r.Post("/{id}/move", h.Plan.Move)
		})

		r.Route("/shopping-lists", func(r chi.Router) {
			r.Post("/", h.Shopping.Generate)
			r.Get("/", h.Shopping.List)
			r.Get("/{id}", h.Shopping.Get)
			r.Delete("/{id}", h.Shopping.Delete)
			r.Get("/{id}/export", h.Shopping.Export)
			r.Post("/{id}/items/{itemID}/toggle", h.Shopping.ToggleItem)
		})

		r.Route("/nutrition", func(r chi.Router) {
			r.Get("/summary", h.Nutrition.Summary)
			r.Get("/weekly", h.Nutrition.Weekly)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.Favorites.List)
			r.Put("/{recipeID}", h.Favorites.Add)
			r.Delete("/{recipeID}", h.Favorites.Remove)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/search", h.Recipes.Search)
			r.Get("/{id}", h.Recipes.GetByID)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/recommendations", h.AI.Recommendations)
			r.Post("/meal-plan", h.AI.MealPlan)
			r.Post("/modify-recipe", h.AI.ModifyRecipe)
			r.Post("/optimize-shopping", h.AI.OptimizeShopping)
		})
	})

	return &Server{
		config: cfg,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Start begins serving requests. It blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down within the configured timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
