// Package streaming reaches the REST side of the streaming API. It checks the streaming
// server's health and opens event streams by plain request; reading the events is left to the
// caller.
package streaming

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// GetStreamingHealthResponse holds the body of GET /api/v1/streaming/health, "OK" when the
// streaming server is up.
type GetStreamingHealthResponse struct {
	Text *string
}

func getStreamingHealthOperation() *client.Operation[GetStreamingHealthResponse] {
	return &client.Operation[GetStreamingHealthResponse]{
		ID:      "getStreamingHealth",
		Request: client.NewRequest(http.MethodGet, "/api/v1/streaming/health"),
		Responses: client.Responses[GetStreamingHealthResponse]{
			http.StatusOK: client.Text(func(r *GetStreamingHealthResponse) **string { return &r.Text }),
		},
	}
}

// GetStreamingHealthDetailed checks whether the streaming server is up. It needs no credentials.
func GetStreamingHealthDetailed(ctx context.Context, c client.Caller) (*client.Response[GetStreamingHealthResponse], error) {
	return client.Do(ctx, c, getStreamingHealthOperation())
}

// GetStreamingHealth is GetStreamingHealthDetailed without the response envelope.
func GetStreamingHealth(ctx context.Context, c client.Caller) (*GetStreamingHealthResponse, error) {
	resp, err := GetStreamingHealthDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetStreamingHealthDetailedAsync runs GetStreamingHealthDetailed in the background.
func GetStreamingHealthDetailedAsync(ctx context.Context, c client.Caller) *client.Future[*client.Response[GetStreamingHealthResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetStreamingHealthResponse], error) {
		return GetStreamingHealthDetailed(ctx, c)
	})
}

// GetStreamingHealthAsync runs GetStreamingHealth in the background.
func GetStreamingHealthAsync(ctx context.Context, c client.Caller) *client.Future[*GetStreamingHealthResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetStreamingHealthResponse, error) {
		return GetStreamingHealth(ctx, c)
	})
}

// GetUserStreamResponse holds the parsed body of GET /api/v1/streaming/user. An opened stream
// sets no field.
type GetUserStreamResponse struct {
	Error *models.Error
}

func getUserStreamOperation() *client.Operation[GetUserStreamResponse] {
	return &client.Operation[GetUserStreamResponse]{
		ID:      "getUserStream",
		Request: client.NewRequest(http.MethodGet, "/api/v1/streaming/user"),
		Responses: client.Responses[GetUserStreamResponse]{
			http.StatusOK:           client.Empty[GetUserStreamResponse](),
			http.StatusUnauthorized: client.JSON(func(r *GetUserStreamResponse) **models.Error { return &r.Error }),
		},
	}
}

// GetUserStreamDetailed opens the stream of the authenticated user's home timeline and
// notifications.
func GetUserStreamDetailed(ctx context.Context, c *client.AuthenticatedClient) (*client.Response[GetUserStreamResponse], error) {
	return client.Do(ctx, c, getUserStreamOperation())
}

// GetUserStream is GetUserStreamDetailed without the response envelope.
func GetUserStream(ctx context.Context, c *client.AuthenticatedClient) (*GetUserStreamResponse, error) {
	resp, err := GetUserStreamDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetUserStreamDetailedAsync runs GetUserStreamDetailed in the background.
func GetUserStreamDetailedAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*client.Response[GetUserStreamResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetUserStreamResponse], error) {
		return GetUserStreamDetailed(ctx, c)
	})
}

// GetUserStreamAsync runs GetUserStream in the background.
func GetUserStreamAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*GetUserStreamResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetUserStreamResponse, error) {
		return GetUserStream(ctx, c)
	})
}

// GetPublicStreamParams filters the public stream.
type GetPublicStreamParams struct {
	OnlyMedia *bool
}

// GetPublicStreamResponse holds the parsed body of GET /api/v1/streaming/public.
type GetPublicStreamResponse struct {
	Error *models.Error
}

func getPublicStreamOperation(params GetPublicStreamParams) (*client.Operation[GetPublicStreamResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v1/streaming/public")
	if err := client.AddParam(req.Query, "only_media", params.OnlyMedia); err != nil {
		return nil, err
	}

	return &client.Operation[GetPublicStreamResponse]{
		ID:      "getPublicStream",
		Request: req,
		Responses: client.Responses[GetPublicStreamResponse]{
			http.StatusOK:           client.Empty[GetPublicStreamResponse](),
			http.StatusUnauthorized: client.JSON(func(r *GetPublicStreamResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// GetPublicStreamDetailed opens the stream of public statuses.
func GetPublicStreamDetailed(ctx context.Context, c client.Caller, params GetPublicStreamParams) (*client.Response[GetPublicStreamResponse], error) {
	op, err := getPublicStreamOperation(params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetPublicStream is GetPublicStreamDetailed without the response envelope.
func GetPublicStream(ctx context.Context, c client.Caller, params GetPublicStreamParams) (*GetPublicStreamResponse, error) {
	resp, err := GetPublicStreamDetailed(ctx, c, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetPublicStreamDetailedAsync runs GetPublicStreamDetailed in the background.
func GetPublicStreamDetailedAsync(ctx context.Context, c client.Caller, params GetPublicStreamParams) *client.Future[*client.Response[GetPublicStreamResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetPublicStreamResponse], error) {
		return GetPublicStreamDetailed(ctx, c, params)
	})
}

// GetPublicStreamAsync runs GetPublicStream in the background.
func GetPublicStreamAsync(ctx context.Context, c client.Caller, params GetPublicStreamParams) *client.Future[*GetPublicStreamResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetPublicStreamResponse, error) {
		return GetPublicStream(ctx, c, params)
	})
}
