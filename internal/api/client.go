// Package api is the HTTP client for the TrustLens backend.
// Every endpoint returns a JSON array or document; any non-2xx response or
// undecodable body surfaces as a LoadError naming the affected feed.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request to the backend.
const DefaultTimeout = 10 * time.Second

// maxErrorBody limits how much of an error response body is kept for messages.
const maxErrorBody = 512

// Client talks to a TrustLens API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DataSources fetches the monitored sources.
func (c *Client) DataSources(ctx context.Context) ([]Source, error) {
	var sources []Source
	if err := c.get(ctx, "/data-sources", nil, &sources); err != nil {
		return nil, &LoadError{Feed: FeedSources, Cause: err}
	}
	return sources, nil
}

// Alerts fetches up to limit recent alerts.
func (c *Client) Alerts(ctx context.Context, limit int) ([]Alert, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var alerts []Alert
	if err := c.get(ctx, "/alerts", query, &alerts); err != nil {
		return nil, &LoadError{Feed: FeedAlerts, Cause: err}
	}
	return alerts, nil
}

// NullRateTrend fetches the null-rate/freshness time series for the given
// window (e.g. "30min").
func (c *Client) NullRateTrend(ctx context.Context, window string) ([]TrendPoint, error) {
	query := url.Values{}
	if window != "" {
		query.Set("window", window)
	}

	var points []TrendPoint
	if err := c.get(ctx, "/metrics/null-rate", query, &points); err != nil {
		return nil, &LoadError{Feed: FeedTrend, Cause: err}
	}
	return points, nil
}

// Health probes the backend liveness endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// get issues a GET request and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
