// Package shopping provides the application layer for shopping lists:
// generation from the current meal plan plus the persisted copies the user
// checks items off on.
package shopping

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/shopping"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/errors"
)

const storageKey = "mealforge:shopping-lists"

// Service implements the shopping list use cases. Lists are derived from
// the plan service's assignments; the generated copy is persisted eagerly so
// checked state survives between sessions, but regeneration always starts
// from a clean, unchecked list.
type Service struct {
	plans  inbound.PlanService
	kv     outbound.KeyValueStore
	logger *zap.Logger
}

// NewService creates a new shopping list service
func NewService(plans inbound.PlanService, kv outbound.KeyValueStore, logger *zap.Logger) inbound.ShoppingService {
	return &Service{
		plans:  plans,
		kv:     kv,
		logger: logger.Named("shopping-service"),
	}
}

// Generate builds a named list from the plan's assignments, optionally
// scoped to a date range, and persists it alongside earlier lists.
func (s *Service) Generate(ctx context.Context, cmd inbound.GenerateListCommand) (shopping.List, error) {
	var assignments []mealplan.Assignment
	if cmd.Start != "" || cmd.End != "" {
		var err error
		assignments, err = s.plans.ListRange(ctx, cmd.Start, cmd.End)
		if err != nil {
			return shopping.List{}, err
		}
	} else {
		assignments = s.plans.ListAll(ctx)
	}

	list := shopping.BuildList(cmd.Name, assignments)
	lists := append(s.load(ctx), list)
	if err := s.save(ctx, lists); err != nil {
		return shopping.List{}, err
	}

	s.logger.Info("Shopping list generated",
		zap.String("list_id", list.ID),
		zap.String("name", list.Name),
		zap.Int("items", len(list.Items)),
		zap.Int("assignments", len(assignments)),
	)
	return list, nil
}

// List returns every stored shopping list.
func (s *Service) List(ctx context.Context) []shopping.List {
	return s.load(ctx)
}

// Get returns one stored list by id.
func (s *Service) Get(ctx context.Context, id string) (shopping.List, bool) {
	for _, l := range s.load(ctx) {
		if l.ID == id {
			return l, true
		}
	}
	return shopping.List{}, false
}

// Delete removes a stored list. Unknown ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	lists := s.load(ctx)
	kept := lists[:0:0]
	for _, l := range lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lists) {
		return nil
	}
	return s.save(ctx, kept)
}

// ToggleItem flips the checked state of one item on a stored list.
func (s *Service) ToggleItem(ctx context.Context, listID, itemID string) error {
	lists := s.load(ctx)
	for i := range lists {
		if lists[i].ID != listID {
			continue
		}
		lists[i].ToggleItem(itemID)
		return s.save(ctx, lists)
	}
	return errors.NewShoppingListNotFoundError(listID)
}

// Export renders a stored list as download or share text.
func (s *Service) Export(ctx context.Context, listID string, groupBy shopping.GroupBy, filter shopping.Filter, share bool) (string, error) {
	list, ok := s.Get(ctx, listID)
	if !ok {
		return "", errors.NewShoppingListNotFoundError(listID)
	}
	if share {
		return list.ShareText(groupBy, filter), nil
	}
	return list.ExportText(groupBy, filter), nil
}

func (s *Service) load(ctx context.Context) []shopping.List {
	raw, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if err != outbound.ErrKeyNotFound {
			s.logger.Error("Failed to load shopping lists, continuing with empty collection", zap.Error(err))
		}
		return nil
	}

	var lists []shopping.List
	if err := json.Unmarshal(raw, &lists); err != nil {
		s.logger.Error("Malformed stored shopping lists, continuing with empty collection", zap.Error(err))
		return nil
	}
	return lists
}

func (s *Service) save(ctx context.Context, lists []shopping.List) error {
	raw, err := json.Marshal(lists)
	if err != nil {
		return errors.NewStorageError("encode shopping lists", err)
	}
	if err := s.kv.Put(ctx, storageKey, raw); err != nil {
		s.logger.Error("Failed to save shopping lists", zap.Error(err))
		return errors.NewStorageError("save shopping lists", err)
	}
	return nil
}
