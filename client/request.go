package client

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
)

// IdempotencyKeyHeader deduplicates status creation on the server for about an hour.
const IdempotencyKeyHeader = "Idempotency-Key"

// Request describes a single HTTP call, relative to a client's base URL.
type Request struct {
	// OperationID identifies the endpoint in logs and decode errors.
	OperationID string
	Method      string
	// Path is already escaped, see FormatPath.
	Path   string
	Query  url.Values
	Header http.Header
	Body   Body
}

// NewRequest creates a request with empty query and headers.
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}
}

// Body is a request body. Use JSONBody, MultipartBody or FormBody to create one.
type Body interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

// JSONBody sends v encoded as JSON.
func JSONBody(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewReader(data), "application/json", nil
}

type multipartBody struct {
	parts []marshaller.Part
}

// MultipartBody sends parts as multipart/form-data.
func MultipartBody(parts []marshaller.Part) Body {
	return multipartBody{parts: parts}
}

func (b multipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	contentType, err := marshaller.WriteMultipart(&buf, b.parts)
	if err != nil {
		return nil, "", err
	}

	return &buf, contentType, nil
}

type formBody struct {
	values url.Values
}

// FormBody sends values as application/x-www-form-urlencoded.
func FormBody(values url.Values) Body {
	return formBody{values: values}
}

func (b formBody) encode() (io.Reader, string, error) {
	return strings.NewReader(b.values.Encode()), "application/x-www-form-urlencoded", nil
}

// FormatPath substitutes args, in order, for the {placeholder} segments of template. Each
// argument is formatted like a query value and path-escaped; the dot segments "." and ".." are
// percent-encoded so they stay literal.
func FormatPath(template string, args ...any) (string, error) {
	var sb strings.Builder
	rest := template

	for _, arg := range args {
		start := strings.IndexByte(rest, '{')
		end := strings.IndexByte(rest, '}')
		if start < 0 || end < start {
			break
		}

		value, err := marshaller.FormatValue(arg)
		if err != nil {
			return "", err
		}

		sb.WriteString(rest[:start])
		sb.WriteString(escapePathValue(value))
		rest = rest[end+1:]
	}

	sb.WriteString(rest)
	return sb.String(), nil
}

func escapePathValue(v string) string {
	switch v {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return url.PathEscape(v)
}

// NewIdempotencyKey returns a random key for the Idempotency-Key header.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
