package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/version"
	"go.uber.org/zap"
)

// Caller executes requests for endpoint functions. It is implemented by *Client and
// *AuthenticatedClient.
type Caller interface {
	// Execute sends req and reads the whole response. Transport failures are returned as-is.
	Execute(ctx context.Context, req *Request) (*RawResponse, error)
	// RaiseOnUnexpectedStatus reports whether undocumented status codes are errors.
	RaiseOnUnexpectedStatus() bool
}

var (
	_ Caller = (*Client)(nil)
	_ Caller = (*AuthenticatedClient)(nil)
)

// core is the state shared by both client kinds. The executor is built lazily and cached until
// the client is replaced by a builder.
type core struct {
	settings settings

	mu       sync.Mutex
	executor *http.Client
}

// Client is an anonymous client for endpoints that do not need an access token.
type Client struct {
	core
}

// New creates an anonymous client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	s, err := newSettings(baseURL, opts)
	if err != nil {
		return nil, err
	}

	return &Client{core: core{settings: s}}, nil
}

// Execute sends req without credentials.
func (c *Client) Execute(ctx context.Context, req *Request) (*RawResponse, error) {
	return c.execute(ctx, req, nil)
}

// WithHeaders returns a copy of the client with headers merged into its default headers.
func (c *Client) WithHeaders(headers map[string]string) *Client {
	s := c.settings.clone()
	maps.Copy(s.headers, headers)
	return &Client{core: core{settings: s}}
}

// WithCookies returns a copy of the client with cookies merged into its default cookies.
func (c *Client) WithCookies(cookies map[string]string) *Client {
	s := c.settings.clone()
	maps.Copy(s.cookies, cookies)
	return &Client{core: core{settings: s}}
}

// WithTimeout returns a copy of the client with a different request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	s := c.settings.clone()
	s.timeout = d
	return &Client{core: core{settings: s}}
}

// AuthenticatedClient is a client that sends an access token with every request. Endpoints that
// require a user or application token only accept this type.
type AuthenticatedClient struct {
	core
	token string
}

// NewAuthenticated creates a client that authenticates with token, sent by default as
// "Authorization: Bearer <token>".
func NewAuthenticated(baseURL, token string, opts ...Option) (*AuthenticatedClient, error) {
	if token == "" {
		return nil, errors.ErrMissingToken
	}

	s, err := newSettings(baseURL, opts)
	if err != nil {
		return nil, err
	}

	return &AuthenticatedClient{core: core{settings: s}, token: token}, nil
}

// Execute sends req with the client's credentials.
func (c *AuthenticatedClient) Execute(ctx context.Context, req *Request) (*RawResponse, error) {
	return c.execute(ctx, req, c.authorize)
}

func (c *AuthenticatedClient) authorize(h http.Header) {
	value := c.token
	if c.settings.authPrefix != "" {
		value = c.settings.authPrefix + " " + c.token
	}
	h.Set(c.settings.authHeaderName, value)
}

// WithHeaders returns a copy of the client with headers merged into its default headers.
// A default header with the auth header's name replaces the credentials.
func (c *AuthenticatedClient) WithHeaders(headers map[string]string) *AuthenticatedClient {
	s := c.settings.clone()
	maps.Copy(s.headers, headers)
	return c.derive(s)
}

// WithCookies returns a copy of the client with cookies merged into its default cookies.
func (c *AuthenticatedClient) WithCookies(cookies map[string]string) *AuthenticatedClient {
	s := c.settings.clone()
	maps.Copy(s.cookies, cookies)
	return c.derive(s)
}

// WithTimeout returns a copy of the client with a different request timeout.
func (c *AuthenticatedClient) WithTimeout(d time.Duration) *AuthenticatedClient {
	s := c.settings.clone()
	s.timeout = d
	return c.derive(s)
}

// WithAuthHeader returns a copy of the client that sends its token in header name, preceded by
// prefix. An empty prefix sends the bare token and an empty name keeps the Authorization header.
func (c *AuthenticatedClient) WithAuthHeader(name, prefix string) *AuthenticatedClient {
	if name == "" {
		name = defaultAuthHeaderName
	}

	s := c.settings.clone()
	s.authHeaderName = name
	s.authPrefix = prefix
	return c.derive(s)
}

// Anonymous returns a client with the same settings that sends no credentials.
func (c *AuthenticatedClient) Anonymous() *Client {
	return &Client{core: core{settings: c.settings.clone()}}
}

func (c *AuthenticatedClient) derive(s settings) *AuthenticatedClient {
	return &AuthenticatedClient{core: core{settings: s}, token: c.token}
}

// BaseURL returns the server URL requests are sent to.
func (c *core) BaseURL() string {
	return c.settings.baseURL.String()
}

// Timeout returns the request timeout, zero meaning none.
func (c *core) Timeout() time.Duration {
	return c.settings.timeout
}

// RaiseOnUnexpectedStatus reports whether undocumented status codes are errors.
func (c *core) RaiseOnUnexpectedStatus() bool {
	return c.settings.raiseOnUnexpectedStatus
}

// HTTPClient returns the executor requests are sent with, building and caching it on first use.
func (c *core) HTTPClient() *http.Client {
	if c.settings.httpClient != nil {
		return c.settings.httpClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.executor == nil {
		c.executor = c.settings.newHTTPClient()
	}

	return c.executor
}

func (s settings) newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if s.insecureSkipVerify || s.rootCAs != nil {
		transport.TLSClientConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			RootCAs:            s.rootCAs,
			InsecureSkipVerify: s.insecureSkipVerify, //nolint:gosec
		}
	}

	hc := &http.Client{
		Transport: transport,
		Timeout:   s.timeout,
	}
	if !s.followRedirects {
		hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return hc
}

func (c *core) execute(ctx context.Context, req *Request, authorize func(http.Header)) (*RawResponse, error) {
	httpReq, err := c.newHTTPRequest(ctx, req, authorize)
	if err != nil {
		return nil, err
	}

	logger := c.settings.logger.With(
		zap.String("operation", req.OperationID),
		zap.String("method", req.Method),
		zap.String("path", req.Path),
	)

	start := time.Now()
	resp, err := c.HTTPClient().Do(httpReq)
	if err != nil {
		logger.Debug("request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug("reading response failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, err
	}

	logger.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Content:    content,
		Headers:    resp.Header,
	}, nil
}

// requestURL appends the escaped path to the base URL's path as is. Dot segments are not
// resolved.
func (c *core) requestURL(escapedPath string) (*url.URL, error) {
	u := *c.settings.baseURL
	raw := strings.TrimSuffix(u.EscapedPath(), "/") + "/" + strings.TrimPrefix(escapedPath, "/")

	p, err := url.PathUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", escapedPath, err)
	}

	u.Path, u.RawPath = p, raw
	u.RawQuery, u.Fragment = "", ""
	return &u, nil
}

func (c *core) newHTTPRequest(ctx context.Context, req *Request, authorize func(http.Header)) (*http.Request, error) {
	u, err := c.requestURL(req.Path)
	if err != nil {
		return nil, err
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	var contentType string
	if req.Body != nil {
		body, contentType, err = req.Body.encode()
		if err != nil {
			return nil, fmt.Errorf("encoding %s request body: %w", req.OperationID, err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, err
	}

	h := make(http.Header)
	if authorize != nil {
		authorize(h)
	}
	for name, value := range c.settings.headers {
		h.Set(name, value)
	}
	if h.Get("User-Agent") == "" {
		h.Set("User-Agent", version.UserAgent())
	}
	if len(c.settings.languages) > 0 && h.Get("Accept-Language") == "" {
		h.Set("Accept-Language", c.acceptLanguage())
	}
	for name, vals := range req.Header {
		h[http.CanonicalHeaderKey(name)] = slices.Clone(vals)
	}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	httpReq.Header = h

	for _, name := range slices.Sorted(maps.Keys(c.settings.cookies)) {
		httpReq.AddCookie(&http.Cookie{Name: name, Value: c.settings.cookies[name]})
	}

	return httpReq, nil
}

// acceptLanguage lists the configured languages with descending quality values.
func (c *core) acceptLanguage() string {
	parts := make([]string, 0, len(c.settings.languages))
	for i, tag := range c.settings.languages {
		if i == 0 {
			parts = append(parts, tag.String())
			continue
		}

		q := max(10-i, 1)
		parts = append(parts, fmt.Sprintf("%s;q=0.%d", tag.String(), q))
	}

	return strings.Join(parts, ", ")
}
