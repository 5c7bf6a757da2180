// Package rest implements the outbound HTTP layer: a thin client wrapper
// around net/http plus one gateway per backend resource. The wrapper owns
// the base URL, the request deadline, bearer-token injection, and the
// global 401 interception that forces deauthentication.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/api/metrics"
	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the current bearer token, or "" when anonymous.
type TokenSource func() string

// UnauthorizedHook is invoked once per 401 response, before the error is
// returned to the caller. It must be idempotent: any number of concurrent
// in-flight requests may observe a 401 for the same expired token.
type UnauthorizedHook func()

// Client wraps net/http with the conventions of the clothing supply API:
// JSON bodies, bearer auth, an {items,total} list envelope, and a
// {"detail": ...} error envelope.
type Client struct {
	baseURL        string
	http           *http.Client
	token          TokenSource
	onUnauthorized UnauthorizedHook
	log            zerolog.Logger
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithTokenSource installs the bearer-token source.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) { c.token = src }
}

// WithUnauthorizedHook installs the global 401 hook.
func WithUnauthorizedHook(hook UnauthorizedHook) Option {
	return func(c *Client) { c.onUnauthorized = hook }
}

// WithHTTPClient replaces the underlying http.Client (tests, transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client for the given base URL. A timeout <= 0 falls
// back to the default request deadline.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorEnvelope covers both error body shapes the backend emits.
type errorEnvelope struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// APIError is a non-2xx response decoded into its status and detail.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

// ServerDetail satisfies domain.Detailer.
func (e *APIError) ServerDetail() string { return e.Detail }

// Unwrap maps well-known statuses onto domain sentinels so callers can use
// errors.Is without importing this package.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == status
}

// do performs one JSON request. endpoint is the logical name used for
// metrics and logs; out, when non-nil, receives the decoded response body.
func (c *Client) do(ctx context.Context, method, endpoint, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("rest: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, method, "error").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.UnauthorizedTotal.Inc()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, keeping the
// server-supplied detail when the body carries one.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var env errorEnvelope
	if json.Unmarshal(raw, &env) == nil {
		if env.Detail != "" {
			apiErr.Detail = env.Detail
		} else if env.Error != "" {
			apiErr.Detail = env.Error
		}
	}
	return apiErr
}
