package client

import (
	"net/http"
)

// RawResponse is what the executor read off the wire.
type RawResponse struct {
	StatusCode int
	Content    []byte
	Headers    http.Header
}

// Response pairs a raw response with its parsed value.
//
// Parsed is nil when the status code is not documented for the endpoint and the client does not
// raise on unexpected statuses. For a documented status it is a result whose fields record which
// variant the body decoded as; a documented empty body yields a result with no variant set.
type Response[T any] struct {
	StatusCode int
	Content    []byte
	Headers    http.Header
	Parsed     *T
}

// IsParsed reports whether the status code was dispatched to a decoder.
func (r *Response[T]) IsParsed() bool {
	return r != nil && r.Parsed != nil
}

// Link returns the Link header used for pagination, unparsed.
func (r *Response[T]) Link() string {
	if r == nil {
		return ""
	}

	return r.Headers.Get("Link")
}
