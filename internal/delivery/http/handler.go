package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/menucraft/backend/internal/domain"
	"github.com/menucraft/backend/internal/usecase"
)

// sessionHeader carries the editing-session ID on all session routes
const sessionHeader = "X-Session-ID"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	editor   *usecase.EditorService
	importer *usecase.ImportService
}

// NewHandler creates a new HTTP handler
func NewHandler(editor *usecase.EditorService, importer *usecase.ImportService) *Handler {
	return &Handler{
		editor:   editor,
		importer: importer,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "menucraft-backend",
		"version": "1.0.0",
	})
}

// ParseMenu accepts one menu document, runs extraction, and opens a
// new editing session holding the result
func (h *Handler) ParseMenu(c *gin.Context) {
	restaurantID := c.PostForm("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId is required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	files := form.File["menu_file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	if len(files) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMultipleFiles.Error()})
		return
	}

	header := files[0]
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	session, err := h.editor.StartSession(
		c.Request.Context(),
		restaurantID,
		c.PostForm("menuName"),
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"result":    session.Result,
	})
}

// GetSession returns the session's parse result and editing state
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.editor.GetSession(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// EndSession discards the session entirely
func (h *Handler) EndSession(c *gin.Context) {
	if err := h.editor.EndSession(c.Request.Context(), c.GetHeader(sessionHeader)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Groups returns the grouped, optionally type-filtered view
func (h *Handler) Groups(c *gin.Context) {
	typeFilter := c.DefaultQuery("type", usecase.TypeFilterAll)
	groups, err := h.editor.Groups(c.Request.Context(), c.GetHeader(sessionHeader), typeFilter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// Stats returns per-category statistics over the working set
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.editor.Stats(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// EnterEdit switches the session into edit mode
func (h *Handler) EnterEdit(c *gin.Context) {
	h.sessionOp(c, h.editor.EnterEdit)
}

// CancelEdit discards the working copy
func (h *Handler) CancelEdit(c *gin.Context) {
	h.sessionOp(c, h.editor.CancelEdit)
}

// SaveEdit promotes the working copy into the parse result
func (h *Handler) SaveEdit(c *gin.Context) {
	h.sessionOp(c, h.editor.SaveEdit)
}

// UpdateItem replaces one working-set item with the edited version
func (h *Handler) UpdateItem(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}

	var item domain.CandidateItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item payload: " + err.Error()})
		return
	}

	session, err := h.editor.UpdateItem(c.Request.Context(), c.GetHeader(sessionHeader), index, item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// DeleteItem removes one working-set item
func (h *Handler) DeleteItem(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}

	session, err := h.editor.DeleteItem(c.Request.Context(), c.GetHeader(sessionHeader), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// ToggleSelection flips selection membership for one index
func (h *Handler) ToggleSelection(c *gin.Context) {
	var req struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
		return
	}

	session, err := h.editor.ToggleSelection(c.Request.Context(), c.GetHeader(sessionHeader), *req.Index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// SelectAll selects every working-set index
func (h *Handler) SelectAll(c *gin.Context) {
	h.sessionOp(c, h.editor.SelectAll)
}

// ClearSelection empties the selection
func (h *Handler) ClearSelection(c *gin.Context) {
	h.sessionOp(c, h.editor.ClearSelection)
}

// DeleteSelected bulk-deletes the selected items
func (h *Handler) DeleteSelected(c *gin.Context) {
	h.sessionOp(c, h.editor.DeleteSelected)
}

// RenameCategory renames a category across the working set
func (h *Handler) RenameCategory(c *gin.Context) {
	var req struct {
		OldName string `json:"oldName" binding:"required"`
		NewName string `json:"newName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "oldName is required"})
		return
	}

	session, err := h.editor.RenameCategory(c.Request.Context(), c.GetHeader(sessionHeader), req.OldName, req.NewName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// MergeCategories merges the source category into the target
func (h *Handler) MergeCategories(c *gin.Context) {
	var req struct {
		Source string `json:"source" binding:"required"`
		Target string `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source and target are required"})
		return
	}

	session, err := h.editor.MergeCategories(c.Request.Context(), c.GetHeader(sessionHeader), req.Source, req.Target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// DeleteCategory removes a category and all its items
func (h *Handler) DeleteCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	session, err := h.editor.DeleteCategory(c.Request.Context(), c.GetHeader(sessionHeader), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// CreateCategory creates a new category
func (h *Handler) CreateCategory(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		MoveSelected bool   `json:"moveSelected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	session, err := h.editor.CreateCategory(c.Request.Context(), c.GetHeader(sessionHeader), req.Name, req.MoveSelected)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// ExpandCategory records a category group as open or collapsed
func (h *Handler) ExpandCategory(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Expanded *bool  `json:"expanded" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and expanded are required"})
		return
	}

	session, err := h.editor.SetCategoryExpanded(c.Request.Context(), c.GetHeader(sessionHeader), req.Name, *req.Expanded)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// ListMenus returns the menus available as import targets
func (h *Handler) ListMenus(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId is required"})
		return
	}

	menus, err := h.importer.ListMenus(c.Request.Context(), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// Import commits the edited working set into a new or existing menu
func (h *Handler) Import(c *gin.Context) {
	var target usecase.ImportTarget
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import payload: " + err.Error()})
		return
	}

	result, err := h.importer.Import(c.Request.Context(), c.GetHeader(sessionHeader), target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// sessionOp runs an editor operation that needs nothing beyond the
// session ID and returns the resulting state
func (h *Handler) sessionOp(c *gin.Context, op func(ctx context.Context, id string) (*domain.Session, error)) {
	session, err := op(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State})
}

// pathIndex parses the :index path parameter, responding 400 itself
// on a malformed value
func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return 0, false
	}
	return index, true
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrFileTypeNotAllowed),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrMultipleFiles),
		errors.Is(err, domain.ErrBlankCategory),
		errors.Is(err, domain.ErrSelfMerge),
		errors.Is(err, domain.ErrIndexOutOfRange),
		errors.Is(err, domain.ErrMenuNameRequired),
		errors.Is(err, domain.ErrTargetMenuRequired),
		errors.Is(err, domain.ErrInvalidImportMode),
		errors.Is(err, domain.ErrNoParseResult):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrCategoryExists),
		errors.Is(err, domain.ErrNotEditing):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrExtractionFailure),
		errors.Is(err, domain.ErrMenuAPIFailure),
		errors.Is(err, domain.ErrImportFailure):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
