package wisherr

// Package wisherr is the single outbound gateway to the Wisherr backend
// REST API. Every request is fire-once: no retry, no backoff, no client
// timeout, so mutating calls are never silently duplicated. Transport and
// HTTP errors propagate to the caller unchanged as *APIError.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wisherr/wisherr-ui/internal/ports"
)

// Compile-time checks that the client covers every backend port.
var (
	_ ports.TokenAuthenticator = (*Client)(nil)
	_ ports.IdentityResolver   = (*Client)(nil)
	_ ports.AccountRegistrar   = (*Client)(nil)
	_ ports.SSOTokenExchanger  = (*Client)(nil)
	_ ports.ProfileAPI         = (*Client)(nil)
	_ ports.WishlistAPI        = (*Client)(nil)
	_ ports.ItemAPI            = (*Client)(nil)
	_ ports.ShareAPI           = (*Client)(nil)
	_ ports.GroupAPI           = (*Client)(nil)
	_ ports.NotificationAPI    = (*Client)(nil)
	_ ports.AdminAPI           = (*Client)(nil)
	_ ports.SiteInfoAPI        = (*Client)(nil)
)

// Config captures the client construction options.
type Config struct {
	// BaseURL is the backend API root, normally ending in "/api".
	BaseURL string
	// Client overrides the underlying http.Client (tests).
	Client *http.Client
}

// Client is the HTTP client adapter for the backend API. The bearer token
// is supplied per call and never cached inside the client: a just-cleared
// token is never sent.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a backend API client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{}
	}

	return &Client{baseURL: base, client: hc}, nil
}

// APIError is a non-2xx backend response. Callers interpret status and
// detail; the client never translates them.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsAuthError reports whether err is a 401 or 403 backend rejection.
func IsAuthError(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// requestParams groups the per-call inputs for do.
type requestParams struct {
	Method string
	Path   string
	Token  string
	Body   any
}

// do issues one request and decodes a JSON response into out (when non-nil).
// The token is attached fresh on this request only.
func (c *Client) do(ctx context.Context, p requestParams, out any) error {
	var payload io.Reader
	if p.Body != nil {
		raw, err := json.Marshal(p.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, c.baseURL+p.Path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if p.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s %s: %w", p.Method, p.Path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return fmt.Errorf("decode response for %s %s: %w", p.Method, p.Path, decodeErr)
	}
	return nil
}

// readDetail extracts a human-readable message from an error payload.
// The backend answers {"detail": "..."}; anything else falls back to the
// raw body, truncated.
func readDetail(body io.Reader) string {
	const maxDetail = 512

	raw, err := io.ReadAll(io.LimitReader(body, maxDetail))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, requestParams{Method: http.MethodGet, Path: path, Token: token}, out)
}

func (c *Client) post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, requestParams{Method: http.MethodPost, Path: path, Token: token, Body: body}, out)
}

func (c *Client) put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, requestParams{Method: http.MethodPut, Path: path, Token: token, Body: body}, out)
}

func (c *Client) delete(ctx context.Context, token, path string) error {
	return c.do(ctx, requestParams{Method: http.MethodDelete, Path: path, Token: token}, nil)
}
