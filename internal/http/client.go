// Package http is the transport that sends rendered request descriptors.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/openai-client/internal/auth"
	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger is the logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends requests to a single API root.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       Logger
	debug        bool
	userAgent    string
	headers      map[string]string
	metrics      *Metrics
}

// Request is a fully rendered HTTP request relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    *openai.Body
}

// Response is the raw HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
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

// WithHeader adds a header sent with every request. Empty values are ignored.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if value != "" {
			c.headers[name] = value
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithMetrics records every exchange on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a transport for baseURL. tokenManager may be nil.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
		headers:      make(map[string]string),
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRequest
	retryClient.ResponseLogHook = client.logResponse

	return client
}

// neverRetry makes every call a single attempt. A done context is still
// reported so that cancellation surfaces as the context error.
func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send renders a descriptor and executes it.
func (c *Client) Send(ctx context.Context, descriptor openai.Request) (*openai.Response, error) {
	body, err := descriptor.Body()
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, &Request{
		Method: descriptor.Method(),
		Path:   descriptor.Path(),
		Query:  descriptor.Query(),
		Body:   body,
	})
	if resp == nil {
		return nil, err
	}

	return &openai.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Headers,
		Body:       resp.Body,
	}, err
}

// Do executes a request. A non-2xx status returns the response together with
// an *openai.RequestError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// The passthrough handler hands back the response, if any, with the error.
		if resp != nil {
			_ = resp.Body.Close()
		}

		c.metrics.observe(req.Method, "error", time.Since(start))

		return nil, &openai.TransportError{Method: req.Method, Path: req.Path, Err: unwrapURLError(err)}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(req.Method, "error", time.Since(start))

		return nil, &openai.TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.metrics.observe(req.Method, statusClass(resp.StatusCode), time.Since(start))

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, openai.NewRequestError(resp.StatusCode, respBody)
	}

	return response, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		rawBody     interface{}
		contentType string
	)

	if req.Body != nil {
		switch req.Body.Type {
		case openai.BodyJSON:
			data, err := json.Marshal(req.Body.JSON)
			if err != nil {
				return nil, fmt.Errorf("marshaling request body: %w", err)
			}

			rawBody = bytes.NewReader(data)
			contentType = constants.ContentTypeJSON
		case openai.BodyMultipart:
			rawBody, contentType = multipartBody(req.Body.Fields)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)

	if contentType != "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)
	}

	for name, value := range c.headers {
		httpReq.Header.Set(name, value)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
		}
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	return httpReq, nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":       req.Method,
		"url":          req.URL.String(),
		"content_type": req.Header.Get(constants.HeaderContentType),
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":       resp.StatusCode,
		"url":          resp.Request.URL.String(),
		"request_id":   resp.Header.Get("X-Request-Id"),
		"content_type": resp.Header.Get(constants.HeaderContentType),
	})
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the
// method and URL already carried by TransportError.
func unwrapURLError(err error) error {
	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
