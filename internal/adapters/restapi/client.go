package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"training-reels/internal/config"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"
)

const maxErrorBody = 4 << 10

// StaticToken is a TokenProvider for service accounts configured with API_TOKEN
type StaticToken string

// AccessToken returns the token itself
func (t StaticToken) AccessToken() string {
	return string(t)
}

// HTTPError is returned for every non-2xx answer
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
}

// StatusText is the HTTP reason phrase, e.g. "Bad Gateway"
func (e *HTTPError) StatusText() string {
	return e.Status
}

// Is maps well known status codes onto domain errors
func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == domain.ErrUnauthorized
	case http.StatusNotFound:
		return target == domain.ErrNotFound
	default:
		return false
	}
}

// Client talks to the video platform REST API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     port.TokenProvider
	logger     *slog.Logger
}

// NewClient builds a Client. tokens may be nil for anonymous calls.
func NewClient(cfg config.APIConfig, tokens port.TokenProvider, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid api base url: %q", cfg.BaseURL)
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// SetTokenProvider swaps the credential source, used once a session exists
func (c *Client) SetTokenProvider(tokens port.TokenProvider) {
	c.tokens = tokens
}

func (c *Client) resolve(path string) string {
	ref, err := url.Parse(path)
	if err != nil || ref.IsAbs() {
		return path
	}
	// relative to baseURL so that a base path prefix is kept
	ref.Path = strings.TrimLeft(ref.Path, "/")
	ref.RawPath = strings.TrimLeft(ref.RawPath, "/")
	return c.baseURL.ResolveReference(ref).String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		status := http.StatusText(resp.StatusCode)
		if status == "" {
			status = resp.Status
		}
		c.logger.Debug("api call failed", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return &HTTPError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Status:     status,
			Body:       string(body),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}
