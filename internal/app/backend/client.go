// Package backend is the HTTP client for the REST API that owns students,
// cohorts, faculties, courses and results. Each resource gets a thin service
// value (Students, Cohorts, ...) hanging off a shared Client.
package backend

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIPrefix is where the backend mounts its resources.
const APIPrefix = "/api/v1"

// DefaultTimeout bounds a single backend call when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// RequestIDHeader is sent on every backend call so log lines on both sides
// can be correlated.
const RequestIDHeader = "X-Request-ID"

// Config configures a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. http://localhost:8080.
	BaseURL string
	// Timeout applies to the underlying http.Client. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the transport (tests). Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	base *url.URL
	hc   *http.Client
	log  *zap.Logger

	Students  Students
	Cohorts   Cohorts
	Faculties Faculties
	Courses   Courses
	Results   Results
}

// New builds a Client for the backend at cfg.BaseURL.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend url %q must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("backend url %q has no host", cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{base: base, hc: hc, log: logger}
	c.Students = Students{c: c}
	c.Cohorts = Cohorts{c: c}
	c.Faculties = Faculties{c: c}
	c.Courses = Courses{c: c}
	c.Results = Results{c: c}
	return c, nil
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// resourcePath joins APIPrefix, the resource name and any further segments.
func resourcePath(resource string, segments ...string) string {
	var b strings.Builder
	b.WriteString(APIPrefix)
	b.WriteString("/")
	b.WriteString(resource)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(s)
	}
	return b.String()
}

// do performs one request. body (if non-nil) is sent as JSON; out (if
// non-nil) receives the decoded JSON response. An empty 2xx body leaves out
// untouched. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	c.log.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("query", u.RawQuery),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
		zap.String("request_id", reqID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw, reqID)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
