// Package timelines reads the home and public timelines.
package timelines

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// GetHomeTimelineResponse holds the parsed body of GET /api/v1/timelines/home. While the home
// feed is being regenerated the server answers 206 and no field is set.
type GetHomeTimelineResponse struct {
	Statuses []models.Status
	Error    *models.Error
}

func getHomeTimelineOperation(params api.Pagination) (*client.Operation[GetHomeTimelineResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v1/timelines/home")
	if err := params.Apply(req.Query); err != nil {
		return nil, err
	}

	return &client.Operation[GetHomeTimelineResponse]{
		ID:      "getHomeTimeline",
		Request: req,
		Responses: client.Responses[GetHomeTimelineResponse]{
			http.StatusOK:             client.JSON(func(r *GetHomeTimelineResponse) *[]models.Status { return &r.Statuses }),
			http.StatusPartialContent: client.Empty[GetHomeTimelineResponse](),
			http.StatusUnauthorized:   client.JSON(func(r *GetHomeTimelineResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// GetHomeTimelineDetailed lists statuses from followed accounts and hashtags.
func GetHomeTimelineDetailed(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) (*client.Response[GetHomeTimelineResponse], error) {
	op, err := getHomeTimelineOperation(params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetHomeTimeline is GetHomeTimelineDetailed without the response envelope.
func GetHomeTimeline(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) (*GetHomeTimelineResponse, error) {
	resp, err := GetHomeTimelineDetailed(ctx, c, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetHomeTimelineDetailedAsync runs GetHomeTimelineDetailed in the background.
func GetHomeTimelineDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) *client.Future[*client.Response[GetHomeTimelineResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetHomeTimelineResponse], error) {
		return GetHomeTimelineDetailed(ctx, c, params)
	})
}

// GetHomeTimelineAsync runs GetHomeTimeline in the background.
func GetHomeTimelineAsync(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) *client.Future[*GetHomeTimelineResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetHomeTimelineResponse, error) {
		return GetHomeTimeline(ctx, c, params)
	})
}

// GetPublicTimelineParams filters GET /api/v1/timelines/public.
type GetPublicTimelineParams struct {
	api.Pagination
	// Local only returns statuses from this server.
	Local *bool
	// Remote only returns statuses from other servers.
	Remote    *bool
	OnlyMedia *bool
}

func (p GetPublicTimelineParams) apply(req *client.Request) error {
	if err := p.Pagination.Apply(req.Query); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "local", p.Local); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "remote", p.Remote); err != nil {
		return err
	}
	return client.AddParam(req.Query, "only_media", p.OnlyMedia)
}

// GetPublicTimelineResponse holds the parsed body of GET /api/v1/timelines/public.
type GetPublicTimelineResponse struct {
	Statuses        []models.Status
	Error           *models.Error
	ValidationError *models.ValidationError
}

func getPublicTimelineOperation(params GetPublicTimelineParams) (*client.Operation[GetPublicTimelineResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v1/timelines/public")
	if err := params.apply(req); err != nil {
		return nil, err
	}

	return &client.Operation[GetPublicTimelineResponse]{
		ID:      "getPublicTimeline",
		Request: req,
		Responses: client.Responses[GetPublicTimelineResponse]{
			http.StatusOK:           client.JSON(func(r *GetPublicTimelineResponse) *[]models.Status { return &r.Statuses }),
			http.StatusUnauthorized: client.JSON(func(r *GetPublicTimelineResponse) **models.Error { return &r.Error }),
			http.StatusUnprocessableEntity: client.JSON(func(r *GetPublicTimelineResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}, nil
}

// GetPublicTimelineDetailed lists public statuses. Servers may require authentication for it.
func GetPublicTimelineDetailed(ctx context.Context, c client.Caller, params GetPublicTimelineParams) (*client.Response[GetPublicTimelineResponse], error) {
	op, err := getPublicTimelineOperation(params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetPublicTimeline is GetPublicTimelineDetailed without the response envelope.
func GetPublicTimeline(ctx context.Context, c client.Caller, params GetPublicTimelineParams) (*GetPublicTimelineResponse, error) {
	resp, err := GetPublicTimelineDetailed(ctx, c, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetPublicTimelineDetailedAsync runs GetPublicTimelineDetailed in the background.
func GetPublicTimelineDetailedAsync(ctx context.Context, c client.Caller, params GetPublicTimelineParams) *client.Future[*client.Response[GetPublicTimelineResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetPublicTimelineResponse], error) {
		return GetPublicTimelineDetailed(ctx, c, params)
	})
}

// GetPublicTimelineAsync runs GetPublicTimeline in the background.
func GetPublicTimelineAsync(ctx context.Context, c client.Caller, params GetPublicTimelineParams) *client.Future[*GetPublicTimelineResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetPublicTimelineResponse, error) {
		return GetPublicTimeline(ctx, c, params)
	})
}
