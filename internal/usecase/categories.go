package usecase

import (
	"strings"

	"github.com/menucraft/backend/internal/domain"
)

// Category operations rewrite the category field across the working
// set as a batch. Categories are implicit: there is no category
// entity, so rename/merge/delete are all field rewrites and the
// working set stays the single source of truth for membership.

// RenameCategory sets category = newName on every working-set item
// currently carrying oldName, and carries the expanded/collapsed UI
// state over to the new name. Renaming a category to itself is a
// no-op; a blank target is rejected.
func RenameCategory(state *domain.EditorState, oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return domain.ErrBlankCategory
	}
	if newName == oldName {
		return nil
	}

	for i := range state.WorkingSet {
		if state.WorkingSet[i].Category == oldName {
			state.WorkingSet[i].Category = newName
		}
	}

	if state.ExpandedCategories[oldName] {
		state.ExpandedCategories[newName] = true
	}
	delete(state.ExpandedCategories, oldName)

	return nil
}

// MergeCategories moves every item in source into target. After the
// merge the source category no longer exists. Merging a category into
// itself is rejected; sequencing of chained merges is the caller's
// responsibility.
func MergeCategories(state *domain.EditorState, source, target string) error {
	if source == target {
		return domain.ErrSelfMerge
	}
	return RenameCategory(state, source, target)
}

// DeleteCategory removes every item carrying the category from the
// working set, remaps the selection for the removed indices, and
// drops the category from the expanded set. Returns the number of
// items removed. Irreversible within the session; confirmation is the
// caller's job.
func DeleteCategory(state *domain.EditorState, name string) int {
	removed := make(map[int]bool)
	kept := state.WorkingSet[:0:0]
	for i, item := range state.WorkingSet {
		if item.Category == name {
			removed[i] = true
			continue
		}
		kept = append(kept, item)
	}
	if len(removed) == 0 {
		return 0
	}

	state.WorkingSet = kept
	state.Selection = remapAfterRemoval(state.Selection, removed)
	delete(state.ExpandedCategories, name)

	return len(removed)
}

// CreateCategory adds a new category to the working set. Because
// categories only exist through items, creation either recategorizes
// the current selection (moveSelected) or appends a single
// placeholder item so the empty category has a row to edit or delete.
// An exact-match existing name is rejected with no mutation.
func CreateCategory(state *domain.EditorState, name string, moveSelected bool) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrBlankCategory
	}
	for _, item := range state.WorkingSet {
		if item.Category == name {
			return domain.ErrCategoryExists
		}
	}

	if moveSelected && len(state.Selection) > 0 {
		for idx := range state.Selection {
			if idx >= 0 && idx < len(state.WorkingSet) {
				state.WorkingSet[idx].Category = name
			}
		}
		state.Selection = make(map[int]bool)
	} else {
		state.WorkingSet = append(state.WorkingSet, placeholderItem(state, name))
	}

	state.ExpandedCategories[name] = true
	return nil
}

// placeholderItem builds the stub row appended when a category is
// created empty. The item type follows the first (lowest-index)
// selected item so the new row lands near its siblings in the grouped
// view, defaulting to food.
func placeholderItem(state *domain.EditorState, category string) domain.CandidateItem {
	itemType := domain.ItemTypeFood
	first := -1
	for idx := range state.Selection {
		if first == -1 || idx < first {
			first = idx
		}
	}
	if first >= 0 && first < len(state.WorkingSet) {
		itemType = state.WorkingSet[first].Type
	}

	return domain.CandidateItem{
		Name:         "New item",
		Category:     category,
		Type:         itemType,
		Confidence:   100,
		OriginalText: "Manually added item",
	}
}

// remapAfterRemoval rebuilds a selection after the given working-set
// indices were removed. Removed indices are pruned; each survivor
// shifts down by the number of removed indices below it, so it keeps
// pointing at the same logical item.
func remapAfterRemoval(selection map[int]bool, removed map[int]bool) map[int]bool {
	remapped := make(map[int]bool)
	for p := range selection {
		if removed[p] {
			continue
		}
		shift := 0
		for r := range removed {
			if r < p {
				shift++
			}
		}
		remapped[p-shift] = true
	}
	return remapped
}
