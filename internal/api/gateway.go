// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ramolabs/ramo-tui/internal/credentials"
)

// DefaultBaseURL is the backend base URL used when no configuration exists.
const DefaultBaseURL = "http://localhost:8000"

// MaxResponseSize caps response bodies to prevent memory exhaustion from a
// misbehaving backend.
const MaxResponseSize = 10 * 1024 * 1024 // 10MB

// =============================================================================
// API ERROR
// =============================================================================

// APIError is the single normalized error type for every failed request.
//
// Message is human-readable: the backend's "detail" field when the error body
// carries one, otherwise a synthesized "Request failed (<status>)". Status is
// the HTTP status code (0 for transport and parse failures). Body holds the
// parsed error body so callers can branch on structured failure details.
type APIError struct {
	Message string
	Status  int
	Body    any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}

// transportError wraps a failure that happened before any HTTP status was
// available (dial failure, cancelled context, unreadable body).
func transportError(err error) *APIError {
	return &APIError{Message: err.Error()}
}

// =============================================================================
// REQUEST GATEWAY
// =============================================================================

// Client is the request gateway for the RAMO backend.
//
// It is safe for concurrent use. The base URL is guarded because the config
// watcher may swap it while TUI commands are in flight.
type Client struct {
	mu      sync.RWMutex
	baseURL string

	httpClient *http.Client
	creds      *credentials.Store
	userAgent  string
	verbose    bool
}

// New creates a gateway for the given base URL, reading the bearer token from
// creds. The underlying HTTP client carries no timeout: request lifetimes are
// bounded by the caller's context, never internally.
func New(baseURL string, creds *credentials.Store) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		creds:      creds,
		userAgent:  "ramo-tui/" + Version,
	}
}

// Version is the client version reported in the User-Agent header.
// Overridden at build time alongside the main package version.
var Version = "0.1.0"

// WithHTTPClient replaces the underlying HTTP client. Used by tests and by
// callers that need custom transport settings.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithVerbose enables request/response logging. Bodies and credentials are
// never logged.
func (c *Client) WithVerbose(verbose bool) *Client {
	c.verbose = verbose
	return c
}

// BaseURL returns the current backend base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL swaps the backend base URL. In-flight requests keep the URL they
// were built with.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// Credentials exposes the credential store backing this gateway.
func (c *Client) Credentials() *credentials.Store {
	return c.creds
}

// =============================================================================
// CALL
// =============================================================================

// call performs one request and decodes a success body into out.
//
// Rules, in order:
//   - body (if non-nil) is marshalled as JSON with Content-Type application/json
//   - the bearer header is attached only when auth is true AND a token is
//     stored; with no token the request proceeds bare and the backend rejects it
//   - non-2xx: the response body is parsed and wrapped in *APIError
//   - 2xx: an empty body leaves out untouched; a JSON body is decoded into
//     out; a non-JSON body is passed through literally when out is *string
//
// There are no retries and no internal timeout.
func (c *Client) call(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return transportError(fmt.Errorf("failed to marshal request: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.BaseURL() + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return transportError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if auth {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logRequest(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return transportError(err)
	}

	c.logResponse(resp, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, raw)
	}

	if len(raw) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// Tolerate non-JSON success bodies: pass the literal text through
		// when the caller asked for a string.
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		return transportError(fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

// readBody reads the response body with a size limit.
func readBody(resp *http.Response) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(raw)) > MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return raw, nil
}

// errorFromResponse builds the normalized error for a non-2xx response.
func errorFromResponse(status int, raw []byte) *APIError {
	body := parseBodySafe(raw)

	message := fmt.Sprintf("Request failed (%d)", status)
	if obj, ok := body.(map[string]any); ok {
		if detail, ok := obj["detail"]; ok {
			message = fmt.Sprint(detail)
		}
	}

	return &APIError{Message: message, Status: status, Body: body}
}

// parseBodySafe parses raw as JSON, falling back to the literal string.
// An empty body parses to nil.
func parseBodySafe(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw)
	}
	return body
}

// =============================================================================
// LOGGING (no bodies, no credentials)
// =============================================================================

func (c *Client) logRequest(req *http.Request) {
	if !c.verbose {
		return
	}
	// Path only: query strings carry the API key.
	log.Printf("api request: %s %s", req.Method, req.URL.Path)
}

func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	if !c.verbose {
		return
	}
	log.Printf("api response: %d (%v)", resp.StatusCode, duration)
}

// =============================================================================
// HEALTH PROBE
// =============================================================================

// Ping hits the backend root. The response body is opaque; only
// reachability matters.
func (c *Client) Ping(ctx context.Context) error {
	var body string
	return c.call(ctx, http.MethodGet, "/", nil, false, &body)
}
