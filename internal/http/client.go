// Package http implements the request dispatch layer: it builds
// authenticated requests from {method, path, query, body}, performs the
// call, and transparently recovers rate-limited reads.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/pluralsight/trello-helper/internal/auth"
	"github.com/pluralsight/trello-helper/internal/constants"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one logical API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the response envelope returned by Do.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client dispatches requests against the Trello API. It is safe for
// concurrent use; each in-flight call's retry chain is independent.
type Client struct {
	baseURL     string
	credentials auth.CredentialsProvider
	httpClient  *retryablehttp.Client
	logger      Logger
	debug       bool
	userAgent   string
	timeout     time.Duration
	retryDelay  time.Duration
	retryMax    int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout sets the per-attempt HTTP timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRateLimitPolicy sets the fixed delay between rate-limited read
// attempts and the retry ceiling. maxRetries zero means no ceiling.
func WithRateLimitPolicy(delay time.Duration, maxRetries int) Option {
	return func(c *Client) {
		c.retryDelay = delay
		c.retryMax = maxRetries
	}
}

// NewClient creates a new API client.
func NewClient(baseURL string, credentials auth.CredentialsProvider, opts ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		userAgent:   constants.DefaultUserAgent,
		timeout:     constants.DefaultHTTPTimeout,
		retryDelay:  constants.DefaultRetryDelay,
		retryMax:    constants.UnboundedRetries,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.newRetryClient()

	return client
}

// newRetryClient builds the underlying transport. Retry is confined to
// exactly one case: a GET answered with 429. Everything else, including
// 429 on writes, network failures, and 5xx responses, is surfaced on the
// first attempt.
func (c *Client) newRetryClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{Timeout: c.timeout}
	retryClient.Logger = nil
	retryClient.RetryWaitMin = c.retryDelay
	retryClient.RetryWaitMax = c.retryDelay

	retryClient.RetryMax = c.retryMax
	if c.retryMax <= 0 {
		// No ceiling: the service's rate limiting is transient and the
		// retry loop is trusted to drain eventually.
		retryClient.RetryMax = math.MaxInt32
	}

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if err != nil || resp == nil {
			return false, err
		}

		if resp.StatusCode != constants.RateLimitStatusCode {
			return false, nil
		}

		return resp.Request != nil && resp.Request.Method == http.MethodGet, nil
	}

	retryClient.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
		return c.retryDelay
	}

	// Return the last response when the ceiling is exhausted so the
	// final 429 reaches the caller unchanged.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return retryClient
}

// Do executes a request and returns the response envelope. Non-2xx
// responses yield both the envelope and a *trello.APIError carrying the
// upstream status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Path == "" {
		return nil, trello.ErrPathRequired
	}

	fullURL, err := c.buildURL(ctx, req)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"status": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, trello.ParseAPIError(httpResp.StatusCode, body)
	}

	return resp, nil
}

// buildURL assembles the full request URL with caller parameters and
// credentials merged into the query string. Credentials always win over
// colliding caller-supplied keys.
func (c *Client) buildURL(ctx context.Context, req *Request) (string, error) {
	query := url.Values{}
	for key, values := range req.Query {
		query[key] = append([]string(nil), values...)
	}

	if c.credentials != nil {
		creds, err := c.credentials.Credentials(ctx)
		if err != nil {
			return "", fmt.Errorf("getting credentials: %w", err)
		}

		query.Set("key", creds.Key)
		query.Set("token", creds.Token)
	}

	fullURL := c.baseURL + req.Path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL, nil
}

// Get performs a GET request. Query parameters may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request. The body may be nil.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request. The body may be nil.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request. Query parameters may be nil; no body
// is sent.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
		Query:  query,
	})
}
