package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/menucraft/backend/internal/domain"
)

// Client handles communication with the menu extraction service
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new extraction service client. Extraction runs
// OCR and model inference on the far side, so the request timeout is
// generous and calls are rate limited to 1/sec with a small burst.
func NewClient(apiKey, baseURL string) *Client {
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// ExtractMenu submits one menu document for extraction and returns
// the parsed candidate items. Exactly one file per call; the caller
// has already validated type and size.
func (c *Client) ExtractMenu(
	ctx context.Context,
	file io.Reader,
	filename, restaurantID string,
) (*domain.ParseResult, error) {
	log.Printf("[EXTRACT] ExtractMenu called for %q (restaurant %s)", filename, restaurantID)

	body, contentType, err := buildMultipartBody(file, filename, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/menus/extract", c.baseURL)

	// Retry up to 3 times for transient failures. The body is
	// buffered so each attempt can resend it.
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL, contentType, body)
		if err != nil {
			log.Printf("[EXTRACT] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[EXTRACT] API error (attempt %d) - Status: %d, Body: %s",
				attempt, resp.StatusCode, string(respBody))
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Client errors will not heal on retry
				return nil, fmt.Errorf("%w: %s", domain.ErrExtractionFailure, extractionErrorMessage(respBody))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrExtractionFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var wireResp parseResponse
		if err := json.Unmarshal(respBody, &wireResp); err != nil {
			log.Printf("[EXTRACT] JSON decode error: %v", err)
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		result := MapToParseResult(&wireResp)
		log.Printf("[EXTRACT] Extracted %d items from %q", len(result.Items), filename)
		return result, nil
	}

	log.Printf("[EXTRACT] All retries failed for %q", filename)
	return nil, lastErr
}

// doRequest executes a multipart POST with auth headers
func (c *Client) doRequest(ctx context.Context, reqURL, contentType string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "MenuCraft/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailure, err)
	}
	return resp, nil
}

// buildMultipartBody assembles the file and restaurant context into a
// multipart form, returning the encoded body and its content type
func buildMultipartBody(file io.Reader, filename, restaurantID string) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("menu_file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("restaurant_id", restaurantID); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// extractionErrorMessage pulls the human-readable message out of an
// error response body, falling back to the raw body
func extractionErrorMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	return string(body)
}
