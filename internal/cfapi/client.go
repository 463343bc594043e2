// Package cfapi is a minimal client for the Cloudflare Pages endpoints
// of the v4 API. Each call is a single authenticated GET with a fixed
// timeout; there are no retries.
package cfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// APIError is an HTTP-level failure from the API. Message holds the
// first entry of the response envelope's errors list when the body was
// parseable JSON; otherwise the status code and reason phrase are all
// we have.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API Error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, e.Reason)
}

// Client calls the Cloudflare API with bearer-token auth.
type Client struct {
	baseURL    string
	apiToken   string
	accountID  string
	httpClient *http.Client
}

// NewClient creates a client for the public Cloudflare API.
// CLOUDFLARE_API_BASE overrides the base URL when set.
func NewClient(apiToken, accountID string) *Client {
	base := APIBase
	if override := os.Getenv(EnvAPIBase); override != "" {
		base = override
	}

	return &Client{
		baseURL:    base,
		apiToken:   apiToken,
		accountID:  accountID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API base URL (used by tests)
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// ListDeployments fetches the deployments of a Pages project.
func (c *Client) ListDeployments(ctx context.Context, project string) (*DeploymentsResponse, error) {
	var resp DeploymentsResponse
	if err := c.get(ctx, fmt.Sprintf(deploymentsPath, c.accountID, project), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeploymentLogs fetches the build log history of one deployment.
func (c *Client) DeploymentLogs(ctx context.Context, project, deploymentID string) (*LogsResponse, error) {
	var resp LogsResponse
	if err := c.get(ctx, fmt.Sprintf(deploymentLogsPath, c.accountID, project, deploymentID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get issues one authenticated GET and decodes the body into out.
// Bodies with an error status become *APIError; everything else that
// goes wrong is a plain wrapped error.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("cloudflare request")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	return nil
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Reason:     strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))),
	}

	var envelope struct {
		Errors []APIMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		apiErr.Message = envelope.Errors[0].Message
	}

	return apiErr
}
