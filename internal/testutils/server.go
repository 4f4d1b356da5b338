// Package testutils provides an HTTP test server that records every request it receives.
package testutils

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
)

// Token is the access token NewAuthenticatedClient authenticates with.
const Token = "test-token"

// RecordedRequest is a copy of a request received by a Server.
type RecordedRequest struct {
	Method string
	Path   string
	// EscapedPath is the path as it was sent, before percent-decoding.
	EscapedPath string
	RawQuery    string
	Query       url.Values
	Header      http.Header
	Cookies     []*http.Cookie
	Body        []byte
}

// Server is an httptest.Server that records requests before handing them to its handler.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewServer starts a plain HTTP server that is closed when the test finishes.
func NewServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewServer(s.record(handler))
	t.Cleanup(s.Close)

	return s
}

// NewTLSServer starts an HTTPS server with a self-signed certificate that is closed when the test finishes.
func NewTLSServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewTLSServer(s.record(handler))
	t.Cleanup(s.Close)

	return s
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Query:       r.URL.Query(),
			Header:      r.Header.Clone(),
			Cookies:     r.Cookies(),
			Body:        body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// Requests returns the requests received so far, in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, failing the test if there was none.
func (s *Server) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests were recorded")
	}

	return reqs[len(reqs)-1]
}

// NewClient returns an anonymous client pointed at the server.
func (s *Server) NewClient(t *testing.T, opts ...client.Option) *client.Client {
	t.Helper()

	c, err := client.New(s.URL, opts...)
	require.NoError(t, err)
	return c
}

// NewAuthenticatedClient returns a client pointed at the server that authenticates with Token.
func (s *Server) NewAuthenticatedClient(t *testing.T, opts ...client.Option) *client.AuthenticatedClient {
	t.Helper()

	c, err := client.NewAuthenticated(s.URL, Token, opts...)
	require.NoError(t, err)
	return c
}

// Respond returns a handler that always answers with status, content type and body.
// An empty content type sends no Content-Type header.
func Respond(status int, contentType, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// RespondJSON returns a handler that always answers with status and a JSON body.
func RespondJSON(status int, body string) http.Handler {
	return Respond(status, "application/json", body)
}
