package client

import (
	"context"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
)

// Decoder decodes the body of one documented status into result.
type Decoder[T any] func(content []byte, result *T) error

// Responses maps each documented status code of an endpoint to its decoder.
type Responses[T any] map[int]Decoder[T]

// Operation is a request together with the decoders for the statuses its endpoint documents.
type Operation[T any] struct {
	ID        string
	Request   *Request
	Responses Responses[T]
}

// JSON returns a decoder that decodes the body as V and stores it in the field selected by field.
func JSON[T any, V any](field func(*T) *V) Decoder[T] {
	return func(content []byte, result *T) error {
		var v V
		if err := json.Unmarshal(content, &v); err != nil {
			return err
		}

		*field(result) = v
		return nil
	}
}

// Text returns a decoder that stores the body as a string.
func Text[T any](field func(*T) **string) Decoder[T] {
	return func(content []byte, result *T) error {
		s := string(content)
		*field(result) = &s
		return nil
	}
}

// Empty returns a decoder for a documented status whose body carries nothing.
func Empty[T any]() Decoder[T] {
	return func([]byte, *T) error {
		return nil
	}
}

// Parse dispatches raw to the decoder for its status code.
func (op *Operation[T]) Parse(raw *RawResponse, raiseOnUnexpectedStatus bool) (*T, error) {
	decode, ok := op.Responses[raw.StatusCode]
	if !ok {
		if raiseOnUnexpectedStatus {
			return nil, &errors.UnexpectedStatusError{StatusCode: raw.StatusCode, Content: raw.Content}
		}
		return nil, nil
	}

	result := new(T)
	if err := decode(raw.Content, result); err != nil {
		return nil, &errors.DecodeError{Operation: op.ID, StatusCode: raw.StatusCode, Err: err}
	}

	return result, nil
}

// Do executes op with c and returns the full response.
func Do[T any](ctx context.Context, c Caller, op *Operation[T]) (*Response[T], error) {
	req := *op.Request
	req.OperationID = op.ID

	raw, err := c.Execute(ctx, &req)
	if err != nil {
		return nil, err
	}

	parsed, err := op.Parse(raw, c.RaiseOnUnexpectedStatus())
	if err != nil {
		return nil, err
	}

	return &Response[T]{
		StatusCode: raw.StatusCode,
		Content:    raw.Content,
		Headers:    raw.Headers,
		Parsed:     parsed,
	}, nil
}

// Parsed executes op with c and returns only the parsed value.
func Parsed[T any](ctx context.Context, c Caller, op *Operation[T]) (*T, error) {
	resp, err := Do(ctx, c, op)
	if err != nil {
		return nil, err
	}

	return resp.Parsed, nil
}

// DoAsync executes op in the background. Cancelling ctx aborts the request.
func DoAsync[T any](ctx context.Context, c Caller, op *Operation[T]) *Future[*Response[T]] {
	return Go(ctx, func(ctx context.Context) (*Response[T], error) {
		return Do(ctx, c, op)
	})
}

// ParsedAsync executes op in the background and resolves to the parsed value.
func ParsedAsync[T any](ctx context.Context, c Caller, op *Operation[T]) *Future[*T] {
	return Go(ctx, func(ctx context.Context) (*T, error) {
		return Parsed(ctx, c, op)
	})
}
