// Package scanclient is a thin client for the third-party security-scanning
// API. It owns the API credential server-side; the browser only ever talks
// to our proxy endpoints.
package scanclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"trustgate/cmd/api/httpclient"
	"trustgate/models"
)

var (
	ErrNotFound     = errors.New("assessment not found")
	ErrUnconfigured = errors.New("scan api credential not configured")
)

type Client struct {
	base   *httpclient.BaseClient
	apiKey string
}

// New builds a client for the given base URL, reading the credential from
// SCAN_API_KEY. An empty key leaves the client constructible (health checks
// report it) but every call fails with ErrUnconfigured.
func New(baseURL string) *Client {
	return &Client{
		base:   httpclient.NewBaseClient(baseURL),
		apiKey: os.Getenv("SCAN_API_KEY"),
	}
}

// NewWithClient injects an http.Client and key. Tests use this.
func NewWithClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		base:   httpclient.NewBaseClientWithClient(httpClient, baseURL),
		apiKey: apiKey,
	}
}

// Configured reports whether an API key is present, for the health endpoint.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CreateScanInput starts an assessment for an organization's domain.
type CreateScanInput struct {
	OrganizationName string `json:"organizationName"`
	Domain           string `json:"domain"`
	ClientCategory   string `json:"clientCategory,omitempty"`
	ClientStatus     string `json:"clientStatus,omitempty"`
}

// CreateScan initiates an asynchronous scan. The upstream returns
// immediately, typically with scanStatus not_started or in_progress.
func (c *Client) CreateScan(ctx context.Context, in CreateScanInput) (models.Assessment, error) {
	var out models.Assessment
	body, err := json.Marshal(in)
	if err != nil {
		return out, err
	}
	err = c.doJSON(ctx, http.MethodPost, "/external-scans", body, &out)
	return out, err
}

// GetAssessment is the point-in-time read used for polling.
func (c *Client) GetAssessment(ctx context.Context, id string) (models.Assessment, error) {
	var out models.Assessment
	err := c.doJSON(ctx, http.MethodGet, "/external-scans/"+id, nil, &out)
	return out, err
}

// GetFindings fetches the detailed findings payload once a scan completes.
// The shape is upstream-owned, so it is relayed as raw JSON.
func (c *Client) GetFindings(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, http.MethodGet, "/external-scans/"+id+"/findings", nil, &out)
	return out, err
}

// GetBreachData fetches known-breach records for the assessed domain.
func (c *Client) GetBreachData(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, http.MethodGet, "/external-scans/"+id+"/breaches", nil, &out)
	return out, err
}

// GetFindingDetails fetches a single finding of an assessment.
func (c *Client) GetFindingDetails(ctx context.Context, id, findingID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, http.MethodGet, "/external-scans/"+id+"/findings/"+findingID, nil, &out)
	return out, err
}

// GetReportURL resolves the downloadable report location for an assessment.
func (c *Client) GetReportURL(ctx context.Context, id string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/external-scans/"+id+"/report-url", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *Client) doJSON(ctx context.Context, method, relPath string, body []byte, out any) error {
	if c.apiKey == "" {
		return ErrUnconfigured
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := c.base.NewRequest(ctx, method, relPath, nil, reader)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return fmt.Errorf("scan api unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("scan api %s %s: status=%d body=%s", method, relPath, resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
