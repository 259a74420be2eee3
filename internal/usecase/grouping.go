package usecase

import (
	"sort"

	"github.com/menucraft/backend/internal/domain"
)

// The grouped view is derived from the working set on every read and
// holds no state of its own; it never mutates the items it is given.

// TypeFilterAll disables type filtering in the grouped view
const TypeFilterAll = "all"

// IndexedItem pairs a working-set item with its original position so
// that edit, delete and select operations issued from the grouped
// view still target the right working-set index after filtering.
type IndexedItem struct {
	Item  domain.CandidateItem `json:"item"`
	Index int                  `json:"index"`
}

// CategoryGroup is one category with its member items in working-set order
type CategoryGroup struct {
	Name  string        `json:"name"`
	Items []IndexedItem `json:"items"`
}

// IndexItems tags each item with its working-set position
func IndexItems(items []domain.CandidateItem) []IndexedItem {
	indexed := make([]IndexedItem, len(items))
	for i, item := range items {
		indexed[i] = IndexedItem{Item: item, Index: i}
	}
	return indexed
}

// FilterByType keeps only items of the given type. TypeFilterAll (or
// an empty filter) is the identity. Original indices are preserved.
func FilterByType(items []IndexedItem, itemType string) []IndexedItem {
	if itemType == "" || itemType == TypeFilterAll {
		return items
	}

	filtered := make([]IndexedItem, 0, len(items))
	for _, it := range items {
		if string(it.Item.Type) == itemType {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// GroupByCategory partitions items into category groups. Groups are
// ordered by the type priority of each category's first member
// (wine, then beverage, then food, then anything else) and
// case-sensitively by name within a priority band. Items keep
// working-set order inside their group. The ordering is deterministic:
// two calls over the same input produce identical output.
func GroupByCategory(items []IndexedItem) []CategoryGroup {
	byName := make(map[string]*CategoryGroup)
	var order []string

	for _, it := range items {
		group, ok := byName[it.Item.Category]
		if !ok {
			group = &CategoryGroup{Name: it.Item.Category}
			byName[it.Item.Category] = group
			order = append(order, it.Item.Category)
		}
		group.Items = append(group.Items, it)
	}

	sort.SliceStable(order, func(i, j int) bool {
		pi := byName[order[i]].Items[0].Item.Type.Priority()
		pj := byName[order[j]].Items[0].Item.Type.Priority()
		if pi != pj {
			return pi < pj
		}
		return order[i] < order[j]
	})

	groups := make([]CategoryGroup, len(order))
	for i, name := range order {
		groups[i] = *byName[name]
	}
	return groups
}

// GroupWorkingSet is the full read path: index, filter, group
func GroupWorkingSet(items []domain.CandidateItem, typeFilter string) []CategoryGroup {
	return GroupByCategory(FilterByType(IndexItems(items), typeFilter))
}
