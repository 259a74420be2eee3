package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/menucraft/backend/internal/domain"
)

// ImportTarget selects where the edited item set is committed
type ImportTarget struct {
	Mode         domain.ImportMode `json:"mode"`
	MenuName     string            `json:"menuName,omitempty"`
	TargetMenuID string            `json:"targetMenuId,omitempty"`
}

// ImportService commits the edited working set to the menu-storage
// collaborator. Preconditions are checked against the session state
// as it is at call time, never against anything captured earlier, so
// a stale caller cannot commit a session that has since moved on.
type ImportService struct {
	sessions domain.SessionRepository
	menus    domain.MenuClient
}

// NewImportService creates an import service with its dependencies
func NewImportService(sessions domain.SessionRepository, menus domain.MenuClient) *ImportService {
	return &ImportService{
		sessions: sessions,
		menus:    menus,
	}
}

// ListMenus returns the menus available as import targets for a restaurant
func (s *ImportService) ListMenus(ctx context.Context, restaurantID string) ([]domain.MenuSummary, error) {
	return s.menus.ListMenus(ctx, restaurantID)
}

// Import validates the target, issues the commit call, and on success
// resets the session to its pre-upload state and refreshes its menus
// list. On any failure the session is left untouched so the user can
// retry without re-uploading or re-editing. An empty working set is
// permitted and commits as a no-op.
func (s *ImportService) Import(ctx context.Context, sessionID string, target ImportTarget) (*domain.ImportResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Result == nil {
		return nil, domain.ErrNoParseResult
	}

	menuName := session.Result.MenuName
	switch target.Mode {
	case domain.ImportModeNew:
		if strings.TrimSpace(target.MenuName) == "" {
			return nil, domain.ErrMenuNameRequired
		}
		menuName = target.MenuName
	case domain.ImportModeExisting:
		if strings.TrimSpace(target.TargetMenuID) == "" {
			return nil, domain.ErrTargetMenuRequired
		}
	default:
		return nil, domain.ErrInvalidImportMode
	}

	req := &domain.ImportRequest{
		CleanResult: domain.ParseResult{
			MenuName:        menuName,
			Items:           copyItems(session.State.WorkingSet),
			TotalItemsFound: len(session.State.WorkingSet),
			ProcessingNotes: session.Result.ProcessingNotes,
		},
		RestaurantID: session.RestaurantID,
		TargetMenuID: target.TargetMenuID,
		MenuName:     target.MenuName,
	}

	result, err := s.menus.CommitImport(ctx, req)
	if err != nil {
		log.Printf("[IMPORT] Session %s: commit failed: %v", sessionID, err)
		return nil, err
	}

	// Commit succeeded: the editor returns to its pre-upload state
	session.Result = nil
	session.State = newEditorState(nil)

	// Refresh the menus list so a follow-up import can target the
	// menu that was just created. A refresh failure is logged but
	// does not undo the successful import.
	menus, err := s.menus.ListMenus(ctx, session.RestaurantID)
	if err != nil {
		log.Printf("[IMPORT] Session %s: menus refresh failed: %v", sessionID, err)
	} else {
		session.Menus = menus
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[IMPORT] Session %s: imported %d items into %q",
		sessionID, result.ImportedItems, result.MenuName)
	return result, nil
}
