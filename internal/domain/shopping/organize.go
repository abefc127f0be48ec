package shopping

import (
	"fmt"
	"sort"
	"strings"
)

// GroupBy selects the presentation grouping for a list. Grouping is a
// read-time step; nothing about it is stored on the list.
type GroupBy string

const (
	GroupByAisle  GroupBy = "aisle"
	GroupByRecipe GroupBy = "recipe"
	GroupByName   GroupBy = "name"
)

// Filter selects which items a read-time view includes.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterChecked   Filter = "checked"
	FilterUnchecked Filter = "unchecked"
)

// fallbackGroup labels items with no aisle or contributing recipe.
const fallbackGroup = "Other"

// Group is one presentation bucket of a list.
type Group struct {
	Label string
	Items []Item
}

// ParseGroupBy validates a raw grouping key, defaulting to aisle.
func ParseGroupBy(raw string) (GroupBy, error) {
	switch GroupBy(raw) {
	case "":
		return GroupByAisle, nil
	case GroupByAisle, GroupByRecipe, GroupByName:
		return GroupBy(raw), nil
	}
	return "", fmt.Errorf("unknown grouping %q", raw)
}

// ParseFilter validates a raw filter key, defaulting to all.
func ParseFilter(raw string) (Filter, error) {
	switch Filter(raw) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterChecked, FilterUnchecked:
		return Filter(raw), nil
	}
	return "", fmt.Errorf("unknown filter %q", raw)
}

// Organize applies the filter, buckets the remaining items by the grouping
// key and sorts each bucket alphabetically by ingredient name. Group labels
// are sorted as well so exports are deterministic; callers must not rely on
// any particular cross-group order.
func (l List) Organize(groupBy GroupBy, filter Filter) []Group {
	buckets := make(map[string][]Item)

	for _, item := range l.Items {
		switch filter {
		case FilterChecked:
			if !item.Checked {
				continue
			}
		case FilterUnchecked:
			if item.Checked {
				continue
			}
		}

		label := fallbackGroup
		switch groupBy {
		case GroupByRecipe:
			if len(item.Recipes) > 0 && item.Recipes[0] != "" {
				label = item.Recipes[0]
			}
		case GroupByName:
			if item.Ingredient != "" {
				label = strings.ToUpper(item.Ingredient[:1])
			}
		default:
			if item.Aisle != "" {
				label = item.Aisle
			}
		}
		buckets[label] = append(buckets[label], item)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	groups := make([]Group, 0, len(labels))
	for _, label := range labels {
		items := buckets[label]
		sort.Slice(items, func(i, j int) bool {
			return items[i].Ingredient < items[j].Ingredient
		})
		groups = append(groups, Group{Label: label, Items: items})
	}
	return groups
}
