package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/menucraft/backend/internal/domain"
)

// EditorService drives one upload-to-import editing session: it sends
// the uploaded document to the extraction service, stores the parse
// result, and applies the category/selection/item operations to the
// session's working set. All mutations are synchronous in-memory
// transformations; only the extraction call goes over the network.
type EditorService struct {
	sessions   domain.SessionRepository
	extraction domain.ExtractionClient
}

// NewEditorService creates an editor service with its dependencies
func NewEditorService(sessions domain.SessionRepository, extraction domain.ExtractionClient) *EditorService {
	return &EditorService{
		sessions:   sessions,
		extraction: extraction,
	}
}

// StartSession validates the uploaded file, runs extraction, and
// creates a fresh session holding the parse result. The working set
// is initialized from the result items; a failed extraction creates
// no session at all. A non-blank menuName overrides whatever name the
// extraction service inferred from the document.
func (s *EditorService) StartSession(
	ctx context.Context,
	restaurantID, menuName string,
	file io.Reader,
	filename, contentType string,
	size int64,
) (*domain.Session, error) {
	if err := ValidateUpload(filename, contentType, size); err != nil {
		return nil, err
	}

	result, err := s.extraction.ExtractMenu(ctx, file, filename, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailure, err)
	}
	if strings.TrimSpace(menuName) != "" {
		result.MenuName = menuName
	}

	session := &domain.Session{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Result:       result,
		State:        newEditorState(result.Items),
		CreatedAt:    time.Now(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[EDITOR] Session %s started: %d items extracted from %q",
		session.ID, len(result.Items), filename)
	return session, nil
}

// GetSession returns the session for the given ID
func (s *EditorService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.Get(ctx, id)
}

// EnterEdit switches the session into edit mode with a working copy
// taken from the stored parse result
func (s *EditorService) EnterEdit(ctx context.Context, id string) (*domain.Session, error) {
	return s.withSession(ctx, id, false, func(session *domain.Session) error {
		if session.Result == nil {
			return domain.ErrNoParseResult
		}
		session.State = newEditorState(session.Result.Items)
		session.State.EditMode = true
		return nil
	})
}

// CancelEdit discards the working copy and reverts to the stored
// parse result
func (s *EditorService) CancelEdit(ctx context.Context, id string) (*domain.Session, error) {
	return s.withSession(ctx, id, false, func(session *domain.Session) error {
		if session.Result == nil {
			return domain.ErrNoParseResult
		}
		session.State = newEditorState(session.Result.Items)
		return nil
	})
}

// SaveEdit promotes the working copy into the parse result and leaves
// edit mode. TotalItemsFound is kept equal to the saved item count.
func (s *EditorService) SaveEdit(ctx context.Context, id string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		session.Result.Items = copyItems(session.State.WorkingSet)
		session.Result.TotalItemsFound = len(session.Result.Items)
		session.State.EditMode = false
		session.State.Selection = make(map[int]bool)
		return nil
	})
}

// UpdateItem replaces the working-set item at index with the edited
// one. OriginalText is immutable audit data and is carried over from
// the stored item regardless of what the caller sends.
func (s *EditorService) UpdateItem(ctx context.Context, id string, index int, item domain.CandidateItem) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		if index < 0 || index >= len(session.State.WorkingSet) {
			return domain.ErrIndexOutOfRange
		}
		item.OriginalText = session.State.WorkingSet[index].OriginalText
		session.State.WorkingSet[index] = item
		return nil
	})
}

// DeleteItem removes one working-set item and remaps the selection
func (s *EditorService) DeleteItem(ctx context.Context, id string, index int) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		return DeleteItem(&session.State, index)
	})
}

// ToggleSelection flips selection membership for one index
func (s *EditorService) ToggleSelection(ctx context.Context, id string, index int) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		return ToggleSelection(&session.State, index)
	})
}

// SelectAll selects every working-set index
func (s *EditorService) SelectAll(ctx context.Context, id string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		SelectAll(&session.State)
		return nil
	})
}

// ClearSelection empties the selection
func (s *EditorService) ClearSelection(ctx context.Context, id string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		ClearSelection(&session.State)
		return nil
	})
}

// DeleteSelected bulk-deletes the selected items. An empty selection
// is tolerated as a no-op.
func (s *EditorService) DeleteSelected(ctx context.Context, id string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		removed := DeleteSelected(&session.State)
		if removed > 0 {
			log.Printf("[EDITOR] Session %s: bulk-deleted %d items", id, removed)
		}
		return nil
	})
}

// RenameCategory renames a category across the working set
func (s *EditorService) RenameCategory(ctx context.Context, id, oldName, newName string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		return RenameCategory(&session.State, oldName, newName)
	})
}

// MergeCategories merges the source category into the target
func (s *EditorService) MergeCategories(ctx context.Context, id, source, target string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		return MergeCategories(&session.State, source, target)
	})
}

// DeleteCategory removes every item in the category from the working set
func (s *EditorService) DeleteCategory(ctx context.Context, id, name string) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		removed := DeleteCategory(&session.State, name)
		log.Printf("[EDITOR] Session %s: deleted category %q (%d items)", id, name, removed)
		return nil
	})
}

// CreateCategory creates a new category, either by recategorizing the
// selection or by appending a placeholder item
func (s *EditorService) CreateCategory(ctx context.Context, id, name string, moveSelected bool) (*domain.Session, error) {
	return s.withSession(ctx, id, true, func(session *domain.Session) error {
		return CreateCategory(&session.State, name, moveSelected)
	})
}

// SetCategoryExpanded records a category group as open or collapsed
// in the grouped view. Pure presentation state; the name is not
// checked against the working set.
func (s *EditorService) SetCategoryExpanded(ctx context.Context, id, name string, expanded bool) (*domain.Session, error) {
	return s.withSession(ctx, id, false, func(session *domain.Session) error {
		if expanded {
			session.State.ExpandedCategories[name] = true
		} else {
			delete(session.State.ExpandedCategories, name)
		}
		return nil
	})
}

// Groups returns the grouped, optionally type-filtered view of the
// working set. Read-only; recomputed on every call.
func (s *EditorService) Groups(ctx context.Context, id, typeFilter string) ([]CategoryGroup, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return GroupWorkingSet(session.State.WorkingSet, typeFilter), nil
}

// Stats returns per-category counts and confidence over the working set
func (s *EditorService) Stats(ctx context.Context, id string) ([]CategoryStats, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ComputeStats(session.State.WorkingSet), nil
}

// EndSession discards the session entirely (new upload or navigation away)
func (s *EditorService) EndSession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// withSession loads the session, applies fn, and persists the session
// if fn succeeded. When requireEdit is set the operation is rejected
// outside edit mode, so a failed precondition can never leave a
// partial mutation behind.
func (s *EditorService) withSession(
	ctx context.Context,
	id string,
	requireEdit bool,
	fn func(*domain.Session) error,
) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if requireEdit && !session.State.EditMode {
		return nil, domain.ErrNotEditing
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// newEditorState builds a fresh editing state over a copy of items
func newEditorState(items []domain.CandidateItem) domain.EditorState {
	return domain.EditorState{
		WorkingSet:         copyItems(items),
		Selection:          make(map[int]bool),
		ExpandedCategories: make(map[string]bool),
	}
}

// copyItems clones an item slice so the working set and the stored
// parse result never alias each other
func copyItems(items []domain.CandidateItem) []domain.CandidateItem {
	cloned := make([]domain.CandidateItem, len(items))
	copy(cloned, items)
	return cloned
}
