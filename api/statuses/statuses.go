// Package statuses publishes, reads and deletes statuses.
package statuses

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// CreateStatusParams are the header parameters of POST /api/v1/statuses.
type CreateStatusParams struct {
	// IdempotencyKey makes retries of the same post safe. The server remembers it for about an
	// hour. See client.NewIdempotencyKey.
	IdempotencyKey *string
}

// CreateStatusResponse holds the parsed body of POST /api/v1/statuses. A post with a
// scheduled_at time answers with a ScheduledStatus instead of a Status.
type CreateStatusResponse struct {
	Status          *models.Status
	ScheduledStatus *models.ScheduledStatus
	Error           *models.Error
	ValidationError *models.ValidationError
}

func createStatusOperation(body models.CreateStatusBody, params CreateStatusParams) *client.Operation[CreateStatusResponse] {
	req := client.NewRequest(http.MethodPost, "/api/v1/statuses")
	req.Body = client.JSONBody(body)
	if params.IdempotencyKey != nil {
		req.Header.Set(client.IdempotencyKeyHeader, *params.IdempotencyKey)
	}

	errorBody := client.JSON(func(r *CreateStatusResponse) **models.Error { return &r.Error })
	return &client.Operation[CreateStatusResponse]{
		ID:      "createStatus",
		Request: req,
		Responses: client.Responses[CreateStatusResponse]{
			http.StatusOK: func(content []byte, r *CreateStatusResponse) error {
				_, err := values.DecodeOneOf(content, &r.Status, &r.ScheduledStatus)
				return err
			},
			http.StatusUnauthorized: errorBody,
			http.StatusUnprocessableEntity: client.JSON(func(r *CreateStatusResponse) **models.ValidationError {
				return &r.ValidationError
			}),
			http.StatusTooManyRequests: errorBody,
		},
	}
}

// CreateStatusDetailed publishes a status, or schedules it when the body sets ScheduledAt.
func CreateStatusDetailed(ctx context.Context, c *client.AuthenticatedClient, body models.CreateStatusBody, params CreateStatusParams) (*client.Response[CreateStatusResponse], error) {
	return client.Do(ctx, c, createStatusOperation(body, params))
}

// CreateStatus is CreateStatusDetailed without the response envelope.
func CreateStatus(ctx context.Context, c *client.AuthenticatedClient, body models.CreateStatusBody, params CreateStatusParams) (*CreateStatusResponse, error) {
	resp, err := CreateStatusDetailed(ctx, c, body, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// CreateStatusDetailedAsync runs CreateStatusDetailed in the background.
func CreateStatusDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateStatusBody, params CreateStatusParams) *client.Future[*client.Response[CreateStatusResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateStatusResponse], error) {
		return CreateStatusDetailed(ctx, c, body, params)
	})
}

// CreateStatusAsync runs CreateStatus in the background.
func CreateStatusAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateStatusBody, params CreateStatusParams) *client.Future[*CreateStatusResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateStatusResponse, error) {
		return CreateStatus(ctx, c, body, params)
	})
}

// GetStatusResponse holds the parsed body of GET /api/v1/statuses/{id}. A status whose author
// is suspended answers 410 and sets no field.
type GetStatusResponse struct {
	Status *models.Status
	Error  *models.Error
}

func getStatusOperation(id string) (*client.Operation[GetStatusResponse], error) {
	path, err := client.FormatPath("/api/v1/statuses/{id}", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetStatusResponse) **models.Error { return &r.Error })
	return &client.Operation[GetStatusResponse]{
		ID:      "getStatus",
		Request: client.NewRequest(http.MethodGet, path),
		Responses: client.Responses[GetStatusResponse]{
			http.StatusOK:           client.JSON(func(r *GetStatusResponse) **models.Status { return &r.Status }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
			http.StatusGone:         client.Empty[GetStatusResponse](),
		},
	}, nil
}

// GetStatusDetailed views a single status.
func GetStatusDetailed(ctx context.Context, c client.Caller, id string) (*client.Response[GetStatusResponse], error) {
	op, err := getStatusOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetStatus is GetStatusDetailed without the response envelope.
func GetStatus(ctx context.Context, c client.Caller, id string) (*GetStatusResponse, error) {
	resp, err := GetStatusDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetStatusDetailedAsync runs GetStatusDetailed in the background.
func GetStatusDetailedAsync(ctx context.Context, c client.Caller, id string) *client.Future[*client.Response[GetStatusResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetStatusResponse], error) {
		return GetStatusDetailed(ctx, c, id)
	})
}

// GetStatusAsync runs GetStatus in the background.
func GetStatusAsync(ctx context.Context, c client.Caller, id string) *client.Future[*GetStatusResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetStatusResponse, error) {
		return GetStatus(ctx, c, id)
	})
}

// DeleteStatusParams are the query parameters of DELETE /api/v1/statuses/{id}.
type DeleteStatusParams struct {
	// DeleteMedia deletes the attachments immediately instead of keeping them for a redraft.
	DeleteMedia *bool
}

// DeleteStatusResponse holds the parsed body of DELETE /api/v1/statuses/{id}. The deleted status
// is returned with its source text for redrafting.
type DeleteStatusResponse struct {
	Status *models.Status
	Error  *models.Error
}

func deleteStatusOperation(id string, params DeleteStatusParams) (*client.Operation[DeleteStatusResponse], error) {
	path, err := client.FormatPath("/api/v1/statuses/{id}", id)
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodDelete, path)
	if err := client.AddParam(req.Query, "delete_media", params.DeleteMedia); err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *DeleteStatusResponse) **models.Error { return &r.Error })
	return &client.Operation[DeleteStatusResponse]{
		ID:      "deleteStatus",
		Request: req,
		Responses: client.Responses[DeleteStatusResponse]{
			http.StatusOK:           client.JSON(func(r *DeleteStatusResponse) **models.Status { return &r.Status }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
		},
	}, nil
}

// DeleteStatusDetailed deletes one of the user's own statuses.
func DeleteStatusDetailed(ctx context.Context, c *client.AuthenticatedClient, id string, params DeleteStatusParams) (*client.Response[DeleteStatusResponse], error) {
	op, err := deleteStatusOperation(id, params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// DeleteStatus is DeleteStatusDetailed without the response envelope.
func DeleteStatus(ctx context.Context, c *client.AuthenticatedClient, id string, params DeleteStatusParams) (*DeleteStatusResponse, error) {
	resp, err := DeleteStatusDetailed(ctx, c, id, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// DeleteStatusDetailedAsync runs DeleteStatusDetailed in the background.
func DeleteStatusDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string, params DeleteStatusParams) *client.Future[*client.Response[DeleteStatusResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[DeleteStatusResponse], error) {
		return DeleteStatusDetailed(ctx, c, id, params)
	})
}

// DeleteStatusAsync runs DeleteStatus in the background.
func DeleteStatusAsync(ctx context.Context, c *client.AuthenticatedClient, id string, params DeleteStatusParams) *client.Future[*DeleteStatusResponse] {
	return client.Go(ctx, func(ctx context.Context) (*DeleteStatusResponse, error) {
		return DeleteStatus(ctx, c, id, params)
	})
}

// GetStatusContextResponse holds the parsed body of GET /api/v1/statuses/{id}/context.
type GetStatusContextResponse struct {
	Context *models.Context
	Error   *models.Error
}

func getStatusContextOperation(id string) (*client.Operation[GetStatusContextResponse], error) {
	path, err := client.FormatPath("/api/v1/statuses/{id}/context", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetStatusContextResponse) **models.Error { return &r.Error })
	return &client.Operation[GetStatusContextResponse]{
		ID:      "getStatusContext",
		Request: client.NewRequest(http.MethodGet, path),
		Responses: client.Responses[GetStatusContextResponse]{
			http.StatusOK:           client.JSON(func(r *GetStatusContextResponse) **models.Context { return &r.Context }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
		},
	}, nil
}

// GetStatusContextDetailed returns the ancestors and descendants of a status in its thread.
func GetStatusContextDetailed(ctx context.Context, c client.Caller, id string) (*client.Response[GetStatusContextResponse], error) {
	op, err := getStatusContextOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetStatusContext is GetStatusContextDetailed without the response envelope.
func GetStatusContext(ctx context.Context, c client.Caller, id string) (*GetStatusContextResponse, error) {
	resp, err := GetStatusContextDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetStatusContextDetailedAsync runs GetStatusContextDetailed in the background.
func GetStatusContextDetailedAsync(ctx context.Context, c client.Caller, id string) *client.Future[*client.Response[GetStatusContextResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetStatusContextResponse], error) {
		return GetStatusContextDetailed(ctx, c, id)
	})
}

// GetStatusContextAsync runs GetStatusContext in the background.
func GetStatusContextAsync(ctx context.Context, c client.Caller, id string) *client.Future[*GetStatusContextResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetStatusContextResponse, error) {
		return GetStatusContext(ctx, c, id)
	})
}
