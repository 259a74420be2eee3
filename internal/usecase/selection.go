package usecase

import (
	"sort"

	"github.com/menucraft/backend/internal/domain"
)

// Selection management. The invariant enforced here is that every
// selected position is a valid index into the current working set and
// keeps pointing at the same logical item across structural edits.

// ToggleSelection flips membership of index in the selection
func ToggleSelection(state *domain.EditorState, index int) error {
	if index < 0 || index >= len(state.WorkingSet) {
		return domain.ErrIndexOutOfRange
	}
	if state.Selection[index] {
		delete(state.Selection, index)
	} else {
		state.Selection[index] = true
	}
	return nil
}

// SelectAll marks every current working-set index as selected
func SelectAll(state *domain.EditorState) {
	state.Selection = make(map[int]bool, len(state.WorkingSet))
	for i := range state.WorkingSet {
		state.Selection[i] = true
	}
}

// ClearSelection empties the selection without touching the working set
func ClearSelection(state *domain.EditorState) {
	state.Selection = make(map[int]bool)
}

// DeleteItem removes the item at index from the working set and remaps
// the selection: index itself is dropped, every selected position
// above it shifts down by one, positions below are untouched.
func DeleteItem(state *domain.EditorState, index int) error {
	if index < 0 || index >= len(state.WorkingSet) {
		return domain.ErrIndexOutOfRange
	}

	state.WorkingSet = append(state.WorkingSet[:index], state.WorkingSet[index+1:]...)

	remapped := make(map[int]bool)
	for p := range state.Selection {
		switch {
		case p == index:
			// dropped with the item
		case p > index:
			remapped[p-1] = true
		default:
			remapped[p] = true
		}
	}
	state.Selection = remapped

	return nil
}

// DeleteSelected removes every selected item from the working set and
// clears the selection. Deletion runs in descending index order so
// earlier removals cannot shift the positions still pending. An empty
// selection is a no-op, not an error. Returns the number of items
// removed.
func DeleteSelected(state *domain.EditorState) int {
	if len(state.Selection) == 0 {
		return 0
	}

	indices := state.SelectedIndices()
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	removed := 0
	for _, idx := range indices {
		if idx < 0 || idx >= len(state.WorkingSet) {
			continue
		}
		state.WorkingSet = append(state.WorkingSet[:idx], state.WorkingSet[idx+1:]...)
		removed++
	}

	state.Selection = make(map[int]bool)
	return removed
}
