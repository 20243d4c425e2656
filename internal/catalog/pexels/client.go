package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stockpick/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "stockpick/1.0"

	listPath = "/api/pexels/list"
)

// Client implements domain.Catalog against the stock-media list endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog client
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// ListAssets fetches one page of catalog results
func (c *Client) ListAssets(ctx context.Context, req domain.ListRequest) (*domain.AssetPage, error) {
	query := url.Values{}
	query.Set("kind", string(req.Kind))
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("perPage", strconv.Itoa(req.PerPage))
	if req.Query != "" {
		query.Set("query", req.Query)
	}

	body, status, err := c.doRequest(ctx, listPath, query)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.logger.Error("list parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse list response: %w", err)
	}

	if !env.OK || env.Data == nil {
		if env.Error != "" {
			return nil, fmt.Errorf("list request failed: %s", env.Error)
		}
		return nil, fmt.Errorf("list request failed: HTTP %d", status)
	}

	return mapPage(env.Data), nil
}

// doRequest performs an authenticated GET against the provider proxy
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, 0, domain.ErrProviderOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, resp.StatusCode, domain.ErrAuthFailed
	}

	// Non-200 bodies may still carry an error envelope; hand them to the caller
	return body, resp.StatusCode, nil
}
