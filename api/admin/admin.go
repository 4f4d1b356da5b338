// Package admin moderates federation with other servers. Every endpoint needs a token with
// admin scopes belonging to a user with the matching role permissions.
package admin

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// GetDomainBlocksResponse holds the parsed body of GET /api/v1/admin/domain_blocks.
type GetDomainBlocksResponse struct {
	DomainBlocks []models.AdminDomainBlock
	Error        *models.Error
}

func getDomainBlocksOperation(params api.Pagination) (*client.Operation[GetDomainBlocksResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v1/admin/domain_blocks")
	if err := params.Apply(req.Query); err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetDomainBlocksResponse) **models.Error { return &r.Error })
	return &client.Operation[GetDomainBlocksResponse]{
		ID:      "getDomainBlocks",
		Request: req,
		Responses: client.Responses[GetDomainBlocksResponse]{
			http.StatusOK: client.JSON(func(r *GetDomainBlocksResponse) *[]models.AdminDomainBlock {
				return &r.DomainBlocks
			}),
			http.StatusUnauthorized: errorBody,
			http.StatusForbidden:    errorBody,
		},
	}, nil
}

// GetDomainBlocksDetailed lists the domains the server blocks.
func GetDomainBlocksDetailed(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) (*client.Response[GetDomainBlocksResponse], error) {
	op, err := getDomainBlocksOperation(params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetDomainBlocks is GetDomainBlocksDetailed without the response envelope.
func GetDomainBlocks(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) (*GetDomainBlocksResponse, error) {
	resp, err := GetDomainBlocksDetailed(ctx, c, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetDomainBlocksDetailedAsync runs GetDomainBlocksDetailed in the background.
func GetDomainBlocksDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) *client.Future[*client.Response[GetDomainBlocksResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetDomainBlocksResponse], error) {
		return GetDomainBlocksDetailed(ctx, c, params)
	})
}

// GetDomainBlocksAsync runs GetDomainBlocks in the background.
func GetDomainBlocksAsync(ctx context.Context, c *client.AuthenticatedClient, params api.Pagination) *client.Future[*GetDomainBlocksResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetDomainBlocksResponse, error) {
		return GetDomainBlocks(ctx, c, params)
	})
}

// CreateDomainBlockResponse holds the parsed body of POST /api/v1/admin/domain_blocks.
type CreateDomainBlockResponse struct {
	DomainBlock     *models.AdminDomainBlock
	Error           *models.Error
	ValidationError *models.ValidationError
}

func createDomainBlockOperation(body models.CreateDomainBlockBody) *client.Operation[CreateDomainBlockResponse] {
	req := client.NewRequest(http.MethodPost, "/api/v1/admin/domain_blocks")
	req.Body = client.JSONBody(body)

	errorBody := client.JSON(func(r *CreateDomainBlockResponse) **models.Error { return &r.Error })
	return &client.Operation[CreateDomainBlockResponse]{
		ID:      "createDomainBlock",
		Request: req,
		Responses: client.Responses[CreateDomainBlockResponse]{
			http.StatusOK: client.JSON(func(r *CreateDomainBlockResponse) **models.AdminDomainBlock {
				return &r.DomainBlock
			}),
			http.StatusUnauthorized: errorBody,
			http.StatusForbidden:    errorBody,
			http.StatusUnprocessableEntity: client.JSON(func(r *CreateDomainBlockResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}
}

// CreateDomainBlockDetailed blocks a domain. Blocking a domain that already has a stricter
// block answers 422.
func CreateDomainBlockDetailed(ctx context.Context, c *client.AuthenticatedClient, body models.CreateDomainBlockBody) (*client.Response[CreateDomainBlockResponse], error) {
	return client.Do(ctx, c, createDomainBlockOperation(body))
}

// CreateDomainBlock is CreateDomainBlockDetailed without the response envelope.
func CreateDomainBlock(ctx context.Context, c *client.AuthenticatedClient, body models.CreateDomainBlockBody) (*CreateDomainBlockResponse, error) {
	resp, err := CreateDomainBlockDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// CreateDomainBlockDetailedAsync runs CreateDomainBlockDetailed in the background.
func CreateDomainBlockDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateDomainBlockBody) *client.Future[*client.Response[CreateDomainBlockResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateDomainBlockResponse], error) {
		return CreateDomainBlockDetailed(ctx, c, body)
	})
}

// CreateDomainBlockAsync runs CreateDomainBlock in the background.
func CreateDomainBlockAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateDomainBlockBody) *client.Future[*CreateDomainBlockResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateDomainBlockResponse, error) {
		return CreateDomainBlock(ctx, c, body)
	})
}

// DeleteDomainBlockResponse holds the parsed body of DELETE /api/v1/admin/domain_blocks/{id}.
// A lifted block sets no field.
type DeleteDomainBlockResponse struct {
	Error *models.Error
}

func deleteDomainBlockOperation(id string) (*client.Operation[DeleteDomainBlockResponse], error) {
	path, err := client.FormatPath("/api/v1/admin/domain_blocks/{id}", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *DeleteDomainBlockResponse) **models.Error { return &r.Error })
	return &client.Operation[DeleteDomainBlockResponse]{
		ID:      "deleteDomainBlock",
		Request: client.NewRequest(http.MethodDelete, path),
		Responses: client.Responses[DeleteDomainBlockResponse]{
			http.StatusOK:           client.Empty[DeleteDomainBlockResponse](),
			http.StatusUnauthorized: errorBody,
			http.StatusForbidden:    errorBody,
			http.StatusNotFound:     errorBody,
		},
	}, nil
}

// DeleteDomainBlockDetailed lifts a domain block.
func DeleteDomainBlockDetailed(ctx context.Context, c *client.AuthenticatedClient, id string) (*client.Response[DeleteDomainBlockResponse], error) {
	op, err := deleteDomainBlockOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// DeleteDomainBlock is DeleteDomainBlockDetailed without the response envelope.
func DeleteDomainBlock(ctx context.Context, c *client.AuthenticatedClient, id string) (*DeleteDomainBlockResponse, error) {
	resp, err := DeleteDomainBlockDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// DeleteDomainBlockDetailedAsync runs DeleteDomainBlockDetailed in the background.
func DeleteDomainBlockDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*client.Response[DeleteDomainBlockResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[DeleteDomainBlockResponse], error) {
		return DeleteDomainBlockDetailed(ctx, c, id)
	})
}

// DeleteDomainBlockAsync runs DeleteDomainBlock in the background.
func DeleteDomainBlockAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*DeleteDomainBlockResponse] {
	return client.Go(ctx, func(ctx context.Context) (*DeleteDomainBlockResponse, error) {
		return DeleteDomainBlock(ctx, c, id)
	})
}
