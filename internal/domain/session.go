package domain

import "time"

// EditorState is the mutable editing state attached to a session.
// The working set is the single source of truth for category
// membership: a category exists iff at least one item references it.
type EditorState struct {
	// WorkingSet is the session-local copy of the parse result items
	// under active editing
	WorkingSet []CandidateItem `json:"workingSet"`

	// Selection holds working-set indices marked for bulk action.
	// Every key must be a valid index into WorkingSet; any mutation
	// that shifts indices remaps or prunes this set in the same
	// operation.
	Selection map[int]bool `json:"selection"`

	// ExpandedCategories is a presentation cache of open category
	// groups. Never validated against the working set; stale entries
	// are harmless.
	ExpandedCategories map[string]bool `json:"expandedCategories"`

	EditMode bool `json:"editMode"`
}

// SelectedIndices returns the selection as a sorted-free slice of
// indices. Order is unspecified; callers that care must sort.
func (s *EditorState) SelectedIndices() []int {
	indices := make([]int, 0, len(s.Selection))
	for idx := range s.Selection {
		indices = append(indices, idx)
	}
	return indices
}

// Session is one upload-to-import editing session. A session owns
// exactly one parse result at a time; a new upload replaces it.
type Session struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	Result       *ParseResult `json:"result,omitempty"`
	State        EditorState  `json:"state"`

	// Menus caches the existing-menus list for import targeting
	Menus []MenuSummary `json:"menus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
