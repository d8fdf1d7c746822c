package geoedge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// APIError is a domain-level rejection: the remote API answered but
// declined the request. It is never retried by the transport layer
// (other than 429, which is retried before this error is produced).
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Code
	}
	if detail == "" {
		detail = "unknown API response"
	}
	return fmt.Sprintf("api error (http %d): %s", e.HTTPStatus, detail)
}

// Config holds scan-project API client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the remote scan-project API. It is stateless between
// calls apart from the underlying connection pool, and safe for
// concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new scan-project API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "geoedge"),
	}
}

// GetConfig fetches the current scan schedule of a project.
func (c *Client) GetConfig(ctx context.Context, projectID string) (domain.ScanConfig, error) {
	body, status, err := c.doWithRetry(ctx, http.MethodGet, c.baseURL+"/projects/"+url.PathEscape(projectID), nil)
	if err != nil {
		return domain.ScanConfig{}, err
	}

	var resp getResponse
	if decodeErr := json.Unmarshal(body, &resp); decodeErr != nil {
		if status >= 400 {
			return domain.ScanConfig{}, fmt.Errorf("unexpected status: %d", status)
		}
		return domain.ScanConfig{}, fmt.Errorf("decode response: %w", decodeErr)
	}

	if status >= 400 {
		// Non-2xx with a parsable status payload is a domain error; keep
		// the API's own message.
		return domain.ScanConfig{}, &APIError{
			HTTPStatus: status,
			Code:       string(resp.Status.Code),
			Message:    resp.Status.Message,
		}
	}

	return resp.Response.Project.scanConfig(), nil
}

// SetConfig updates a project's scan schedule. A disable sends only
// auto_scan=0: the API rejects times_per_day alongside a disable flag.
// An enable sends both fields. A non-success status envelope is returned
// as *APIError; it is the caller's job to classify it.
func (c *Client) SetConfig(ctx context.Context, projectID string, desired domain.ScanConfig) error {
	form := url.Values{}
	if desired.AutoScan {
		form.Set("auto_scan", "1")
		form.Set("times_per_day", strconv.Itoa(desired.ScansPerDay))
	} else {
		form.Set("auto_scan", "0")
	}

	body, status, err := c.doWithRetry(ctx, http.MethodPut, c.baseURL+"/projects/"+url.PathEscape(projectID), form)
	if err != nil {
		return err
	}

	var resp updateResponse
	if decodeErr := json.Unmarshal(body, &resp); decodeErr != nil {
		if status >= 400 {
			return fmt.Errorf("unexpected status: %d", status)
		}
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if status >= 400 || !resp.Status.Success() {
		return &APIError{
			HTTPStatus: status,
			Code:       string(resp.Status.Code),
			Message:    resp.Status.Message,
		}
	}

	return nil
}

// List returns one page of the project listing plus the cursor for the
// next page. An empty cursor starts from the beginning; an empty next
// cursor means the listing is exhausted. Cursors are the absolute
// next_page URLs the API hands back.
func (c *Client) List(ctx context.Context, cursor string) ([]RemoteProject, string, error) {
	reqURL := cursor
	if reqURL == "" {
		reqURL = fmt.Sprintf("%s/projects?offset=0&limit=%d", c.baseURL, c.pageSize)
	}

	body, status, err := c.doWithRetry(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", err
	}
	if status >= 400 {
		return nil, "", fmt.Errorf("unexpected status: %d", status)
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("decode response: %w", err)
	}

	items := make([]RemoteProject, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		items = append(items, RemoteProject{
			ID:     string(p.ID),
			Name:   p.Name,
			Config: p.scanConfig(),
		})
	}

	return items, resp.NextPage, nil
}

// doWithRetry performs the request with exponential backoff on transient
// failures: transport errors and HTTP 429/500/502/503/504. Any other
// status is returned to the caller on the first attempt.
func (c *Client) doWithRetry(ctx context.Context, method, reqURL string, form url.Values) ([]byte, int, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, status, err := c.doRequest(ctx, method, reqURL, form)
		if err == nil && !retryableStatus(status) {
			return body, status, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("transient status: %d", status)
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"url", reqURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", lastErr,
		)

		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, 0, fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, method, reqURL string, form url.Values) ([]byte, int, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
