package domain

import (
	"context"
	"io"
)

// SessionRepository defines the interface for session state storage
type SessionRepository interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// ExtractionClient defines the interface for the menu extraction service
type ExtractionClient interface {
	ExtractMenu(ctx context.Context, file io.Reader, filename, restaurantID string) (*ParseResult, error)
}

// MenuClient defines the interface for the menu-storage collaborator:
// listing menus available as import targets and committing an edited
// item set into one of them
type MenuClient interface {
	ListMenus(ctx context.Context, restaurantID string) ([]MenuSummary, error)
	CommitImport(ctx context.Context, req *ImportRequest) (*ImportResult, error)
}
