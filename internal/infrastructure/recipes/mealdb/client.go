// Package mealdb provides the TheMealDB fallback recipe source. The free
// API carries no amounts or nutrition, so mapped recipes use placeholder
// figures the way the application always has: amount 1 per ingredient line,
// 30 minutes prep, 4 servings.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/outbound"
)

const defaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

const (
	placeholderMinutes  = 30
	placeholderServings = 4
	ingredientSlots     = 20
)

// Client implements the recipe source port against TheMealDB.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new TheMealDB client
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger.Named("mealdb"),
	}
}

type mealsResponse struct {
	Meals []map[string]interface{} `json:"meals"`
}

// Search queries search.php by name. Filter fields beyond the query have no
// MealDB equivalent and are ignored.
func (c *Client) Search(ctx context.Context, filters outbound.SearchFilters) ([]recipe.Recipe, error) {
	endpoint := fmt.Sprintf("%s/search.php?s=%s", c.baseURL, url.QueryEscape(filters.Query))
	payload, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	recipes := make([]recipe.Recipe, 0, len(payload.Meals))
	for _, meal := range payload.Meals {
		recipes = append(recipes, mapMeal(meal))
	}
	if filters.Limit > 0 && len(recipes) > filters.Limit {
		recipes = recipes[:filters.Limit]
	}
	return recipes, nil
}

// GetByID fetches one meal via lookup.php.
func (c *Client) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	endpoint := fmt.Sprintf("%s/lookup.php?i=%d", c.baseURL, id)
	payload, err := c.get(ctx, endpoint)
	if err != nil {
		return recipe.Recipe{}, err
	}
	if len(payload.Meals) == 0 {
		return recipe.Recipe{}, fmt.Errorf("meal %d not found", id)
	}
	return mapMeal(payload.Meals[0]), nil
}

func (c *Client) get(ctx context.Context, endpoint string) (mealsResponse, error) {
	var payload mealsResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return payload, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return payload, fmt.Errorf("mealdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return payload, fmt.Errorf("mealdb returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode mealdb response: %w", err)
	}
	return payload, nil
}

func mapMeal(meal map[string]interface{}) recipe.Recipe {
	id, _ := strconv.ParseInt(field(meal, "idMeal"), 10, 64)

	rec := recipe.Recipe{
		ID:             id,
		Title:          field(meal, "strMeal"),
		ImageURL:       field(meal, "strMealThumb"),
		ReadyInMinutes: placeholderMinutes,
		Servings:       placeholderServings,
	}
	if area := field(meal, "strArea"); area != "" {
		rec.Cuisines = []string{area}
	}

	for i := 1; i <= ingredientSlots; i++ {
		name := strings.TrimSpace(field(meal, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(field(meal, fmt.Sprintf("strMeasure%d", i)))
		rec.Ingredients = append(rec.Ingredients, recipe.Ingredient{
			Name:      name,
			CleanName: name,
			Original:  strings.TrimSpace(measure + " " + name),
			Amount:    1,
			Unit:      measure,
		})
	}
	return rec
}

func field(meal map[string]interface{}, key string) string {
	if v, ok := meal[key].(string); ok {
		return v
	}
	return ""
}
