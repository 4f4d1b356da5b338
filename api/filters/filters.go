// Package filters manages the authenticated user's content filters.
package filters

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// GetFiltersResponse holds the parsed body of GET /api/v2/filters.
type GetFiltersResponse struct {
	Filters []models.Filter
	Error   *models.Error
}

func getFiltersOperation() *client.Operation[GetFiltersResponse] {
	return &client.Operation[GetFiltersResponse]{
		ID:      "getFilters",
		Request: client.NewRequest(http.MethodGet, "/api/v2/filters"),
		Responses: client.Responses[GetFiltersResponse]{
			http.StatusOK:           client.JSON(func(r *GetFiltersResponse) *[]models.Filter { return &r.Filters }),
			http.StatusUnauthorized: client.JSON(func(r *GetFiltersResponse) **models.Error { return &r.Error }),
		},
	}
}

// GetFiltersDetailed lists every filter of the user with its keywords and statuses.
func GetFiltersDetailed(ctx context.Context, c *client.AuthenticatedClient) (*client.Response[GetFiltersResponse], error) {
	return client.Do(ctx, c, getFiltersOperation())
}

// GetFilters is GetFiltersDetailed without the response envelope.
func GetFilters(ctx context.Context, c *client.AuthenticatedClient) (*GetFiltersResponse, error) {
	resp, err := GetFiltersDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetFiltersDetailedAsync runs GetFiltersDetailed in the background.
func GetFiltersDetailedAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*client.Response[GetFiltersResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetFiltersResponse], error) {
		return GetFiltersDetailed(ctx, c)
	})
}

// GetFiltersAsync runs GetFilters in the background.
func GetFiltersAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*GetFiltersResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetFiltersResponse, error) {
		return GetFilters(ctx, c)
	})
}

// CreateFilterResponse holds the parsed body of POST /api/v2/filters.
type CreateFilterResponse struct {
	Filter          *models.Filter
	Error           *models.Error
	ValidationError *models.ValidationError
}

func createFilterOperation(body models.CreateFilterBody) *client.Operation[CreateFilterResponse] {
	req := client.NewRequest(http.MethodPost, "/api/v2/filters")
	req.Body = client.JSONBody(body)

	return &client.Operation[CreateFilterResponse]{
		ID:      "createFilter",
		Request: req,
		Responses: client.Responses[CreateFilterResponse]{
			http.StatusOK:           client.JSON(func(r *CreateFilterResponse) **models.Filter { return &r.Filter }),
			http.StatusUnauthorized: client.JSON(func(r *CreateFilterResponse) **models.Error { return &r.Error }),
			http.StatusUnprocessableEntity: client.JSON(func(r *CreateFilterResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}
}

// CreateFilterDetailed creates a filter, together with its keywords when KeywordsAttributes is
// set.
func CreateFilterDetailed(ctx context.Context, c *client.AuthenticatedClient, body models.CreateFilterBody) (*client.Response[CreateFilterResponse], error) {
	return client.Do(ctx, c, createFilterOperation(body))
}

// CreateFilter is CreateFilterDetailed without the response envelope.
func CreateFilter(ctx context.Context, c *client.AuthenticatedClient, body models.CreateFilterBody) (*CreateFilterResponse, error) {
	resp, err := CreateFilterDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// CreateFilterDetailedAsync runs CreateFilterDetailed in the background.
func CreateFilterDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateFilterBody) *client.Future[*client.Response[CreateFilterResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateFilterResponse], error) {
		return CreateFilterDetailed(ctx, c, body)
	})
}

// CreateFilterAsync runs CreateFilter in the background.
func CreateFilterAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateFilterBody) *client.Future[*CreateFilterResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateFilterResponse, error) {
		return CreateFilter(ctx, c, body)
	})
}

// DeleteFilterResponse holds the parsed body of DELETE /api/v2/filters/{id}. A deleted filter
// sets no field.
type DeleteFilterResponse struct {
	Error *models.Error
}

func deleteFilterOperation(id string) (*client.Operation[DeleteFilterResponse], error) {
	path, err := client.FormatPath("/api/v2/filters/{id}", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *DeleteFilterResponse) **models.Error { return &r.Error })
	return &client.Operation[DeleteFilterResponse]{
		ID:      "deleteFilter",
		Request: client.NewRequest(http.MethodDelete, path),
		Responses: client.Responses[DeleteFilterResponse]{
			http.StatusOK:           client.Empty[DeleteFilterResponse](),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
		},
	}, nil
}

// DeleteFilterDetailed deletes a filter group along with its keywords and statuses.
func DeleteFilterDetailed(ctx context.Context, c *client.AuthenticatedClient, id string) (*client.Response[DeleteFilterResponse], error) {
	op, err := deleteFilterOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// DeleteFilter is DeleteFilterDetailed without the response envelope.
func DeleteFilter(ctx context.Context, c *client.AuthenticatedClient, id string) (*DeleteFilterResponse, error) {
	resp, err := DeleteFilterDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// DeleteFilterDetailedAsync runs DeleteFilterDetailed in the background.
func DeleteFilterDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*client.Response[DeleteFilterResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[DeleteFilterResponse], error) {
		return DeleteFilterDetailed(ctx, c, id)
	})
}

// DeleteFilterAsync runs DeleteFilter in the background.
func DeleteFilterAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*DeleteFilterResponse] {
	return client.Go(ctx, func(ctx context.Context) (*DeleteFilterResponse, error) {
		return DeleteFilter(ctx, c, id)
	})
}
