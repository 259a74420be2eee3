package usecase

import (
	"context"
	"io"

	"github.com/menucraft/backend/internal/domain"
)

// fakeSessionRepo is an in-memory SessionRepository for tests
type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

// fakeExtractionClient returns a canned parse result or error
type fakeExtractionClient struct {
	result *domain.ParseResult
	err    error
	calls  int
}

func (c *fakeExtractionClient) ExtractMenu(ctx context.Context, file io.Reader, filename, restaurantID string) (*domain.ParseResult, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

// fakeMenuClient records commit calls and serves a canned menu list
type fakeMenuClient struct {
	menus       []domain.MenuSummary
	listErr     error
	commitErr   error
	commitCalls int
	lastRequest *domain.ImportRequest
}

func (c *fakeMenuClient) ListMenus(ctx context.Context, restaurantID string) ([]domain.MenuSummary, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.menus, nil
}

func (c *fakeMenuClient) CommitImport(ctx context.Context, req *domain.ImportRequest) (*domain.ImportResult, error) {
	c.commitCalls++
	c.lastRequest = req
	if c.commitErr != nil {
		return nil, c.commitErr
	}
	return &domain.ImportResult{
		ImportedItems: len(req.CleanResult.Items),
		MenuName:      req.CleanResult.MenuName,
	}, nil
}

// newTestState builds an editing state over the given items with
// edit mode on
func newTestState(items ...domain.CandidateItem) *domain.EditorState {
	cloned := make([]domain.CandidateItem, len(items))
	copy(cloned, items)
	return &domain.EditorState{
		WorkingSet:         cloned,
		Selection:          make(map[int]bool),
		ExpandedCategories: make(map[string]bool),
		EditMode:           true,
	}
}

// foodItem is a minimal food candidate for tests
func foodItem(name, category string) domain.CandidateItem {
	return domain.CandidateItem{
		Name:       name,
		Category:   category,
		Type:       domain.ItemTypeFood,
		Confidence: 90,
	}
}

// wineItem is a minimal wine candidate for tests
func wineItem(name, category string) domain.CandidateItem {
	return domain.CandidateItem{
		Name:       name,
		Category:   category,
		Type:       domain.ItemTypeWine,
		Confidence: 85,
	}
}

// beverageItem is a minimal beverage candidate for tests
func beverageItem(name, category string) domain.CandidateItem {
	return domain.CandidateItem{
		Name:       name,
		Category:   category,
		Type:       domain.ItemTypeBeverage,
		Confidence: 80,
	}
}

// workingSetNames lists the working-set item names in order
func workingSetNames(state *domain.EditorState) []string {
	names := make([]string, len(state.WorkingSet))
	for i, item := range state.WorkingSet {
		names[i] = item.Name
	}
	return names
}
