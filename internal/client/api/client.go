// Package api is the single gateway to the directory backend. Every HTTP
// call the client makes goes through Client, which attaches the bearer
// credential, decodes error bodies into a tagged *Error and logs failures
// centrally. It never retries and never logs the caller out; session
// decisions belong to the auth service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

// TokenSource yields the current bearer credential, if one is stored.
// The session store satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

// Client wraps http.Client against the backend's base origin.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New builds a gateway for the given base origin. The token source is read
// at request time, so a login performed after construction is picked up
// automatically.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// PhotoURL resolves a photo reference (a bare filename) against the
// backend's uploads path. Returns "" for an empty reference.
func (c *Client) PhotoURL(ref string) string {
	if ref == "" {
		return ""
	}
	return c.baseURL + "/uploads/" + ref
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do dispatches the request, decodes error responses and unmarshals a
// successful JSON body into out (which may be nil).
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(req.Context(), "request failed",
			"method", req.Method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(req.Context(), "read response failed",
			"method", req.Method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp.StatusCode, body)
		c.log.Error(req.Context(), "api error",
			"method", req.Method, "path", req.URL.Path,
			"status", resp.StatusCode, "body", string(body))
		return apiErr
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, nil, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}
