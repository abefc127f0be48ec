// Package mealplan provides the application layer for the meal plan store:
// the authoritative collection of meal assignments, persisted through an
// injected key-value capability.
package mealplan

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/errors"
)

// storageKey scopes the persisted plan collection in the key-value store.
const storageKey = "mealforge:meal-plans"

// Service implements the meal plan use cases. Every mutation loads the
// collection, applies the change and saves; a failed save leaves the
// previously persisted state untouched. Load failures degrade to an empty
// collection so the store keeps working in memory.
type Service struct {
	kv     outbound.KeyValueStore
	logger *zap.Logger
}

// NewService creates a new meal plan service
func NewService(kv outbound.KeyValueStore, logger *zap.Logger) inbound.PlanService {
	return &Service{
		kv:     kv,
		logger: logger.Named("mealplan-service"),
	}
}

// Create places a recipe on a date and slot with a requested serving count
// and returns the new assignment's id.
func (s *Service) Create(ctx context.Context, cmd inbound.CreateAssignmentCommand) (string, error) {
	date, err := mealplan.ParseDate(cmd.Date)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	slot, err := mealplan.ParseSlot(cmd.Slot)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}

	assignment, err := mealplan.NewAssignment(cmd.Recipe, date, slot, cmd.Servings, cmd.Notes)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}

	plans := s.load(ctx)
	plans = append(plans, assignment)
	if err := s.save(ctx, plans); err != nil {
		return "", err
	}

	s.logger.Info("Meal assignment created",
		zap.String("assignment_id", assignment.ID),
		zap.String("date", assignment.Date.String()),
		zap.String("slot", string(assignment.Slot)),
		zap.String("recipe", assignment.Recipe.Title),
	)
	return assignment.ID, nil
}

// Update applies a partial patch to one assignment. Patching an unknown id
// is a reported no-op.
func (s *Service) Update(ctx context.Context, id string, patch mealplan.Patch) error {
	plans := s.load(ctx)
	for i := range plans {
		if plans[i].ID != id {
			continue
		}
		if err := plans[i].Apply(patch); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return s.save(ctx, plans)
	}

	s.logger.Debug("Update of unknown assignment ignored", zap.String("assignment_id", id))
	return nil
}

// Remove deletes one assignment. Removing an unknown id is a no-op, so the
// operation is idempotent.
func (s *Service) Remove(ctx context.Context, id string) error {
	plans := s.load(ctx)
	kept := plans[:0:0]
	for _, a := range plans {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(plans) {
		return nil
	}
	return s.save(ctx, kept)
}

// Move reassigns an assignment to a new date and slot. This is the
// drag-and-drop target operation and is Update restricted to those fields.
func (s *Service) Move(ctx context.Context, id string, date, slot string) error {
	d, err := mealplan.ParseDate(date)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	sl, err := mealplan.ParseSlot(slot)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	return s.Update(ctx, id, mealplan.MovePatch(d, sl))
}

// ListAll returns every assignment in insertion order.
func (s *Service) ListAll(ctx context.Context) []mealplan.Assignment {
	return s.load(ctx)
}

// ListRange returns the assignments dated inside [start, end], bounds
// inclusive, in insertion order.
func (s *Service) ListRange(ctx context.Context, start, end string) ([]mealplan.Assignment, error) {
	from, err := mealplan.ParseDate(start)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	to, err := mealplan.ParseDate(end)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if from > to {
		return nil, errors.NewValidationError(mealplan.ErrInvalidRange.Error())
	}
	return mealplan.FilterRange(s.load(ctx), from, to), nil
}

// ExportText renders the whole plan as day-separated text blocks.
func (s *Service) ExportText(ctx context.Context) string {
	return mealplan.ExportText(s.load(ctx))
}

// load reads the persisted collection, degrading to an empty one on any
// storage or decode failure.
func (s *Service) load(ctx context.Context) []mealplan.Assignment {
	raw, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if err != outbound.ErrKeyNotFound {
			s.logger.Error("Failed to load meal plans, continuing with empty collection", zap.Error(err))
		}
		return nil
	}

	var plans []mealplan.Assignment
	if err := json.Unmarshal(raw, &plans); err != nil {
		s.logger.Error("Malformed stored meal plans, continuing with empty collection", zap.Error(err))
		return nil
	}
	return plans
}

func (s *Service) save(ctx context.Context, plans []mealplan.Assignment) error {
	raw, err := json.Marshal(plans)
	if err != nil {
		return errors.NewStorageError("encode meal plans", err)
	}
	if err := s.kv.Put(ctx, storageKey, raw); err != nil {
		s.logger.Error("Failed to save meal plans", zap.Error(err))
		return errors.NewStorageError("save meal plans", err)
	}
	return nil
}
