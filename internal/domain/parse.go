package domain

// ParseResult is one extraction response from the menu extraction
// service. It is immutable once stored on a session; editing happens
// on the session's working set and is promoted back on save.
type ParseResult struct {
	MenuName        string          `json:"menuName"`
	Items           []CandidateItem `json:"items"`
	TotalItemsFound int             `json:"totalItemsFound"`
	ProcessingNotes []string        `json:"processingNotes,omitempty"`
}

// MenuSummary identifies a stored menu available as an import target
type MenuSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImportMode selects whether an import creates a new menu or appends
// to an existing one
type ImportMode string

const (
	ImportModeNew      ImportMode = "new"
	ImportModeExisting ImportMode = "existing"
)

// ImportRequest is the payload sent to the import-commit collaborator
type ImportRequest struct {
	CleanResult  ParseResult `json:"cleanResult"`
	RestaurantID string      `json:"restaurantId"`
	TargetMenuID string      `json:"targetMenuId,omitempty"`
	MenuName     string      `json:"menuName,omitempty"`
}

// ImportResult reports a successful commit
type ImportResult struct {
	ImportedItems int    `json:"importedItems"`
	MenuName      string `json:"menuName"`
}
