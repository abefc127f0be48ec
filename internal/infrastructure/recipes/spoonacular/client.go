// Package spoonacular provides the Spoonacular-shaped recipe source client.
// Results are mapped into the domain recipe snapshot; the engine treats them
// as read-only input.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/outbound"
)

const defaultBaseURL = "https://api.spoonacular.com/recipes"

// Client implements the recipe source port against the Spoonacular API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// Options configures the client.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new Spoonacular client
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: opts.Timeout},
		logger:  logger.Named("spoonacular"),
	}
}

// Wire types for the Spoonacular responses we consume.

type searchResponse struct {
	Results []recipePayload `json:"results"`
}

type recipePayload struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Image          string              `json:"image"`
	ReadyInMinutes int                 `json:"readyInMinutes"`
	Servings       int                 `json:"servings"`
	Cuisines       []string            `json:"cuisines"`
	Diets          []string            `json:"diets"`
	Ingredients    []ingredientPayload `json:"extendedIngredients"`
	Nutrition      *nutritionPayload   `json:"nutrition"`
}

type ingredientPayload struct {
	Aisle     string  `json:"aisle"`
	Name      string  `json:"name"`
	NameClean string  `json:"nameClean"`
	Original  string  `json:"original"`
	Amount    float64 `json:"amount"`
	Unit      string  `json:"unit"`
}

type nutritionPayload struct {
	Nutrients []nutrientPayload `json:"nutrients"`
}

type nutrientPayload struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Search queries the complexSearch endpoint with ingredient fill and recipe
// information enabled.
func (c *Client) Search(ctx context.Context, filters outbound.SearchFilters) ([]recipe.Recipe, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 12
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("query", filters.Query)
	params.Set("number", strconv.Itoa(limit))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	if filters.Diet != "" {
		params.Set("diet", filters.Diet)
	}
	if filters.Intolerances != "" {
		params.Set("intolerances", filters.Intolerances)
	}
	if filters.Cuisine != "" {
		params.Set("cuisine", filters.Cuisine)
	}
	if filters.DishType != "" {
		params.Set("type", filters.DishType)
	}
	if filters.MaxReadyTime > 0 {
		params.Set("maxReadyTime", strconv.Itoa(filters.MaxReadyTime))
	}
	if filters.Sort != "" {
		params.Set("sort", filters.Sort)
	}

	var payload searchResponse
	if err := c.get(ctx, fmt.Sprintf("%s/complexSearch?%s", c.baseURL, params.Encode()), &payload); err != nil {
		return nil, err
	}

	recipes := make([]recipe.Recipe, 0, len(payload.Results))
	for _, p := range payload.Results {
		recipes = append(recipes, mapRecipe(p))
	}
	return recipes, nil
}

// GetByID fetches one recipe with nutrition included.
func (c *Client) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("includeNutrition", "true")

	var payload recipePayload
	url := fmt.Sprintf("%s/%d/information?%s", c.baseURL, id, params.Encode())
	if err := c.get(ctx, url, &payload); err != nil {
		return recipe.Recipe{}, err
	}
	return mapRecipe(payload), nil
}

// Ping verifies the API answers at all; a 402 (quota) still counts as
// reachable.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("query", "ping")
	params.Set("number", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/complexSearch?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("recipe API returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("recipe API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Recipe API request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("url", url),
		)
		return fmt.Errorf("recipe API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode recipe API response: %w", err)
	}
	return nil
}

func mapRecipe(p recipePayload) recipe.Recipe {
	rec := recipe.Recipe{
		ID:             p.ID,
		Title:          p.Title,
		ImageURL:       p.Image,
		ReadyInMinutes: p.ReadyInMinutes,
		Servings:       p.Servings,
		Cuisines:       p.Cuisines,
		Diets:          p.Diets,
	}
	for _, ing := range p.Ingredients {
		rec.Ingredients = append(rec.Ingredients, recipe.Ingredient{
			Name:      ing.Name,
			CleanName: ing.NameClean,
			Original:  ing.Original,
			Amount:    ing.Amount,
			Unit:      ing.Unit,
			Aisle:     ing.Aisle,
		})
	}
	if p.Nutrition != nil {
		for _, n := range p.Nutrition.Nutrients {
			rec.Nutrients = append(rec.Nutrients, recipe.Nutrient{
				Name:   n.Name,
				Amount: n.Amount,
				Unit:   n.Unit,
			})
		}
	}
	return rec
}
