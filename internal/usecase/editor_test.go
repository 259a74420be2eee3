package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/menucraft/backend/internal/domain"
)

func testParseResult() *domain.ParseResult {
	return &domain.ParseResult{
		MenuName: "Dinner",
		Items: []domain.CandidateItem{
			foodItem("Soup", "Starters"),
			foodItem("Salad", "Starters"),
			wineItem("Merlot", "Reds"),
		},
		TotalItemsFound: 3,
		ProcessingNotes: []string{"3 items extracted"},
	}
}

func newTestEditor(result *domain.ParseResult, extractErr error) (*EditorService, *fakeSessionRepo, *fakeExtractionClient) {
	repo := newFakeSessionRepo()
	client := &fakeExtractionClient{result: result, err: extractErr}
	return NewEditorService(repo, client), repo, client
}

func startTestSession(t *testing.T, svc *EditorService) *domain.Session {
	t.Helper()
	session, err := svc.StartSession(
		context.Background(),
		"rest-1",
		"",
		strings.NewReader("menu bytes"),
		"menu.pdf",
		"application/pdf",
		2<<20,
	)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return session
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a session holding the parse result", func(t *testing.T) {
		svc, repo, _ := newTestEditor(testParseResult(), nil)

		session := startTestSession(t, svc)
		if session.ID == "" {
			t.Error("session has no ID")
		}
		if session.RestaurantID != "rest-1" {
			t.Errorf("RestaurantID = %q, want rest-1", session.RestaurantID)
		}
		if len(session.State.WorkingSet) != 3 {
			t.Errorf("working set length = %d, want 3", len(session.State.WorkingSet))
		}
		if session.State.EditMode {
			t.Error("new session starts in edit mode")
		}
		if _, err := repo.Get(ctx, session.ID); err != nil {
			t.Errorf("session not persisted: %v", err)
		}
	})

	t.Run("explicit menu name overrides the extracted one", func(t *testing.T) {
		svc, _, _ := newTestEditor(testParseResult(), nil)

		session, err := svc.StartSession(ctx, "rest-1", "Summer Menu", strings.NewReader("x"), "menu.pdf", "application/pdf", 1024)
		if err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		if session.Result.MenuName != "Summer Menu" {
			t.Errorf("MenuName = %q, want Summer Menu", session.Result.MenuName)
		}
	})

	t.Run("rejects a bad file before calling extraction", func(t *testing.T) {
		svc, _, client := newTestEditor(testParseResult(), nil)

		_, err := svc.StartSession(ctx, "rest-1", "", strings.NewReader("x"), "menu.png", "image/png", 1024)
		if !errors.Is(err, domain.ErrFileTypeNotAllowed) {
			t.Errorf("error = %v, want ErrFileTypeNotAllowed", err)
		}
		if client.calls != 0 {
			t.Errorf("extraction called %d times, want 0", client.calls)
		}
	})

	t.Run("extraction failure creates no session", func(t *testing.T) {
		svc, repo, _ := newTestEditor(nil, errors.New("service down"))

		_, err := svc.StartSession(ctx, "rest-1", "", strings.NewReader("x"), "menu.pdf", "application/pdf", 1024)
		if !errors.Is(err, domain.ErrExtractionFailure) {
			t.Errorf("error = %v, want ErrExtractionFailure", err)
		}
		if len(repo.sessions) != 0 {
			t.Errorf("sessions stored = %d, want 0", len(repo.sessions))
		}
	})
}

func TestEditLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("enter edit copies the result items", func(t *testing.T) {
		svc, _, _ := newTestEditor(testParseResult(), nil)
		session := startTestSession(t, svc)

		session, err := svc.EnterEdit(ctx, session.ID)
		if err != nil {
			t.Fatalf("EnterEdit: %v", err)
		}
		if !session.State.EditMode {
			t.Error("edit mode not set")
		}

		// Mutating the working set must not touch the stored result
		session.State.WorkingSet[0].Name = "Changed"
		if session.Result.Items[0].Name != "Soup" {
			t.Error("working set aliases the parse result")
		}
	})

	t.Run("cancel reverts the working set", func(t *testing.T) {
		svc, _, _ := newTestEditor(testParseResult(), nil)
		session := startTestSession(t, svc)

		if _, err := svc.EnterEdit(ctx, session.ID); err != nil {
			t.Fatalf("EnterEdit: %v", err)
		}
		if _, err := svc.DeleteItem(ctx, session.ID, 0); err != nil {
			t.Fatalf("DeleteItem: %v", err)
		}

		session, err := svc.CancelEdit(ctx, session.ID)
		if err != nil {
			t.Fatalf("CancelEdit: %v", err)
		}
		if len(session.State.WorkingSet) != 3 {
			t.Errorf("working set length = %d, want 3 after cancel", len(session.State.WorkingSet))
		}
		if session.State.EditMode {
			t.Error("still in edit mode after cancel")
		}
	})

	t.Run("save promotes the working set into the result", func(t *testing.T) {
		svc, _, _ := newTestEditor(testParseResult(), nil)
		session := startTestSession(t, svc)

		if _, err := svc.EnterEdit(ctx, session.ID); err != nil {
			t.Fatalf("EnterEdit: %v", err)
		}
		if _, err := svc.DeleteItem(ctx, session.ID, 0); err != nil {
			t.Fatalf("DeleteItem: %v", err)
		}

		session, err := svc.SaveEdit(ctx, session.ID)
		if err != nil {
			t.Fatalf("SaveEdit: %v", err)
		}
		if len(session.Result.Items) != 2 {
			t.Errorf("result items = %d, want 2", len(session.Result.Items))
		}
		if session.Result.TotalItemsFound != 2 {
			t.Errorf("TotalItemsFound = %d, want 2", session.Result.TotalItemsFound)
		}
		if session.State.EditMode {
			t.Error("still in edit mode after save")
		}
	})

	t.Run("mutations outside edit mode are rejected", func(t *testing.T) {
		svc, _, _ := newTestEditor(testParseResult(), nil)
		session := startTestSession(t, svc)

		if _, err := svc.DeleteItem(ctx, session.ID, 0); !errors.Is(err, domain.ErrNotEditing) {
			t.Errorf("DeleteItem error = %v, want ErrNotEditing", err)
		}
		if _, err := svc.RenameCategory(ctx, session.ID, "Starters", "Apps"); !errors.Is(err, domain.ErrNotEditing) {
			t.Errorf("RenameCategory error = %v, want ErrNotEditing", err)
		}
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the item but keeps original text", func(t *testing.T) {
		result := testParseResult()
		result.Items[0].OriginalText = "SOUP OF THE DAY....7"
		svc, _, _ := newTestEditor(result, nil)
		session := startTestSession(t, svc)

		if _, err := svc.EnterEdit(ctx, session.ID); err != nil {
			t.Fatalf("EnterEdit: %v", err)
		}

		edited := foodItem("Soup du Jour", "Starters")
		edited.OriginalText = "tampered"
		session, err := svc.UpdateItem(ctx, session.ID, 0, edited)
		if err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}

		got := session.State.WorkingSet[0]
		if got.Name != "Soup du Jour" {
			t.Errorf("Name = %q, want Soup du Jour", got.Name)
		}
		if got.OriginalText != "SOUP OF THE DAY....7" {
			t.Errorf("OriginalText = %q, want the stored snippet", got.OriginalText)
		}
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		svc, _, _ := newTestEditor(testParseResult(), nil)
		session := startTestSession(t, svc)

		if _, err := svc.EnterEdit(ctx, session.ID); err != nil {
			t.Fatalf("EnterEdit: %v", err)
		}
		if _, err := svc.UpdateItem(ctx, session.ID, 9, foodItem("X", "Y")); !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Errorf("error = %v, want ErrIndexOutOfRange", err)
		}
	})
}

func TestEditorSessionErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestEditor(testParseResult(), nil)

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("GetSession error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.EnterEdit(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("EnterEdit error = %v, want ErrSessionNotFound", err)
	}
}
