// Package nutrition provides the read-side nutrition projection over the
// meal plan store. Nothing is persisted; every call recomputes from the
// store's current assignments.
package nutrition

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/nutrition"
	"github.com/mealforge/v1/internal/ports/inbound"
)

// Service implements the nutrition use cases.
type Service struct {
	plans         inbound.PlanService
	calorieTarget float64
	logger        *zap.Logger
}

// NewService creates a new nutrition service
func NewService(plans inbound.PlanService, calorieTarget float64, logger *zap.Logger) inbound.NutritionService {
	if calorieTarget <= 0 {
		calorieTarget = nutrition.DefaultCalorieTarget
	}
	return &Service{
		plans:         plans,
		calorieTarget: calorieTarget,
		logger:        logger.Named("nutrition-service"),
	}
}

// Summary estimates totals and daily averages over the entire plan.
func (s *Service) Summary(ctx context.Context) nutrition.Summary {
	return nutrition.Estimate(s.plans.ListAll(ctx))
}

// Breakdown returns the macro percentage split over the entire plan.
func (s *Service) Breakdown(ctx context.Context) nutrition.Breakdown {
	return nutrition.Estimate(s.plans.ListAll(ctx)).MacroBreakdown()
}

// Weekly returns the calorie series for the Monday-start week containing
// now. Unlike Summary, this only sees assignments inside that week.
func (s *Service) Weekly(ctx context.Context, now time.Time) []nutrition.DayCalories {
	if now.IsZero() {
		now = time.Now()
	}
	return nutrition.WeeklySeries(s.plans.ListAll(ctx), now, s.calorieTarget)
}
