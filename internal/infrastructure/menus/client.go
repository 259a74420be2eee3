package menus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/menucraft/backend/internal/domain"
)

// Client handles communication with the menu-storage service: listing
// menus available as import targets and committing edited item sets
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a new menu-storage client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// ListMenus returns the menus of a restaurant as {id, name} summaries
func (c *Client) ListMenus(ctx context.Context, restaurantID string) ([]domain.MenuSummary, error) {
	reqURL := fmt.Sprintf("%s/v1/restaurants/%s/menus", c.baseURL, url.PathEscape(restaurantID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMenuAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrMenuAPIFailure, resp.StatusCode, string(body))
	}

	var listResp struct {
		Menus []domain.MenuSummary `json:"menus"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Printf("[MENUS] Listed %d menus for restaurant %s", len(listResp.Menus), restaurantID)
	return listResp.Menus, nil
}

// CommitImport sends the edited item set to the import endpoint.
// The response carries either {success: true, data: {...}} or an
// error message; a non-success body maps to ErrImportFailure with the
// service's message attached.
func (c *Client) CommitImport(ctx context.Context, importReq *domain.ImportRequest) (*domain.ImportResult, error) {
	body, err := json.Marshal(importReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/menus/import", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMenuAPIFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var commitResp struct {
		Success bool                `json:"success"`
		Data    domain.ImportResult `json:"data"`
		Error   string              `json:"error"`
	}
	if err := json.Unmarshal(respBody, &commitResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !commitResp.Success {
		msg := commitResp.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		log.Printf("[MENUS] Import commit failed: %s", msg)
		return nil, fmt.Errorf("%w: %s", domain.ErrImportFailure, msg)
	}

	log.Printf("[MENUS] Imported %d items into %q", commitResp.Data.ImportedItems, commitResp.Data.MenuName)
	return &commitResp.Data, nil
}

// setHeaders applies the common auth and agent headers
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "MenuCraft/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
