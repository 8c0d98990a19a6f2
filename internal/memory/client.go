// Package memory talks to the memory collaborator service over HTTP. The
// collaborator is optional: every failure path degrades to an empty result so
// the prediction engine keeps working from its local state.
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

const (
	recallPath   = "/api/v1/memory/recall"
	rememberPath = "/api/v1/memory/remember"

	defaultTimeout = 10 * time.Second
)

// Client is an HTTP client for the memory collaborator.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client for the collaborator at baseURL. A non-positive
// timeout falls back to 10 seconds. A nil logger uses slog's default.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type recallRequest struct {
	Query  string       `json:"query"`
	Limit  int          `json:"limit"`
	Filter recallFilter `json:"filter"`
}

type recallFilter struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// The collaborator returns the recalled list under a "results" key.
type recallResponse struct {
	Results []models.Memory `json:"results"`
}

type rememberRequest struct {
	Content  string                `json:"content"`
	Metadata models.MemoryMetadata `json:"metadata"`
}

// Recall fetches past task memories matching the query for a user. It never
// returns an error to the caller: an unreachable or unhappy collaborator is
// logged and reported as no memories.
func (c *Client) Recall(ctx context.Context, query, userID string, limit int) []models.Memory {
	body := recallRequest{
		Query: query,
		Limit: limit,
		Filter: recallFilter{
			Type:   "task",
			UserID: userID,
		},
	}

	var result recallResponse
	if err := c.post(ctx, recallPath, body, &result); err != nil {
		c.logger.Warn("memory recall failed, continuing without memories",
			"user_id", userID, "error", err)
		return nil
	}
	return result.Results
}

// Remember stores one interaction with the collaborator. Failures are logged
// and swallowed; observing must never block or fail because storage did.
func (c *Client) Remember(ctx context.Context, content string, metadata models.MemoryMetadata) {
	body := rememberRequest{Content: content, Metadata: metadata}
	if err := c.post(ctx, rememberPath, body, nil); err != nil {
		c.logger.Warn("memory remember failed", "error", err)
	}
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}

	if result == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
