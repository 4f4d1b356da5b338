// Package media uploads and updates media attachments.
package media

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// CreateMediaResponse holds the parsed body of POST /api/v2/media. Large files are processed
// asynchronously: the server answers 202 and the attachment's URL stays null until
// processing is done, see GetMedia.
type CreateMediaResponse struct {
	MediaAttachment *models.MediaAttachment
	Error           *models.Error
	ValidationError *models.ValidationError
}

func createMediaOperation(id, path string, body models.CreateMediaBody, statuses ...int) (*client.Operation[CreateMediaResponse], error) {
	parts, err := body.Parts()
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodPost, path)
	req.Body = client.MultipartBody(parts)

	responses := client.Responses[CreateMediaResponse]{
		http.StatusUnauthorized: client.JSON(func(r *CreateMediaResponse) **models.Error { return &r.Error }),
		http.StatusUnprocessableEntity: client.JSON(func(r *CreateMediaResponse) **models.ValidationError {
			return &r.ValidationError
		}),
	}
	for _, status := range statuses {
		responses[status] = client.JSON(func(r *CreateMediaResponse) **models.MediaAttachment { return &r.MediaAttachment })
	}

	return &client.Operation[CreateMediaResponse]{
		ID:        id,
		Request:   req,
		Responses: responses,
	}, nil
}

// CreateMediaDetailed uploads a file to attach to a status later.
func CreateMediaDetailed(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) (*client.Response[CreateMediaResponse], error) {
	op, err := createMediaOperation("createMedia", "/api/v2/media", body, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// CreateMedia is CreateMediaDetailed without the response envelope.
func CreateMedia(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) (*CreateMediaResponse, error) {
	resp, err := CreateMediaDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// CreateMediaDetailedAsync runs CreateMediaDetailed in the background.
func CreateMediaDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) *client.Future[*client.Response[CreateMediaResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateMediaResponse], error) {
		return CreateMediaDetailed(ctx, c, body)
	})
}

// CreateMediaAsync runs CreateMedia in the background.
func CreateMediaAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) *client.Future[*CreateMediaResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateMediaResponse, error) {
		return CreateMedia(ctx, c, body)
	})
}

// CreateMediaV1Detailed uploads a file through the deprecated synchronous endpoint.
//
// Deprecated: use CreateMediaDetailed.
func CreateMediaV1Detailed(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) (*client.Response[CreateMediaResponse], error) {
	op, err := createMediaOperation("createMediaV1", "/api/v1/media", body, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// Deprecated: use CreateMedia.
func CreateMediaV1(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) (*CreateMediaResponse, error) {
	resp, err := CreateMediaV1Detailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// Deprecated: use CreateMediaDetailedAsync.
func CreateMediaV1DetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) *client.Future[*client.Response[CreateMediaResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateMediaResponse], error) {
		return CreateMediaV1Detailed(ctx, c, body)
	})
}

// Deprecated: use CreateMediaAsync.
func CreateMediaV1Async(ctx context.Context, c *client.AuthenticatedClient, body models.CreateMediaBody) *client.Future[*CreateMediaResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateMediaResponse, error) {
		return CreateMediaV1(ctx, c, body)
	})
}

// GetMediaResponse holds the parsed body of GET /api/v1/media/{id}. While the attachment is
// still being processed the server answers 206 and no field is set.
type GetMediaResponse struct {
	MediaAttachment *models.MediaAttachment
	Error           *models.Error
}

func getMediaOperation(id string) (*client.Operation[GetMediaResponse], error) {
	path, err := client.FormatPath("/api/v1/media/{id}", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetMediaResponse) **models.Error { return &r.Error })
	return &client.Operation[GetMediaResponse]{
		ID:      "getMedia",
		Request: client.NewRequest(http.MethodGet, path),
		Responses: client.Responses[GetMediaResponse]{
			http.StatusOK:             client.JSON(func(r *GetMediaResponse) **models.MediaAttachment { return &r.MediaAttachment }),
			http.StatusPartialContent: client.Empty[GetMediaResponse](),
			http.StatusUnauthorized:   errorBody,
			http.StatusNotFound:       errorBody,
		},
	}, nil
}

// GetMediaDetailed returns an attachment, or 206 while it is still being processed.
func GetMediaDetailed(ctx context.Context, c *client.AuthenticatedClient, id string) (*client.Response[GetMediaResponse], error) {
	op, err := getMediaOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetMedia is GetMediaDetailed without the response envelope.
func GetMedia(ctx context.Context, c *client.AuthenticatedClient, id string) (*GetMediaResponse, error) {
	resp, err := GetMediaDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetMediaDetailedAsync runs GetMediaDetailed in the background.
func GetMediaDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*client.Response[GetMediaResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetMediaResponse], error) {
		return GetMediaDetailed(ctx, c, id)
	})
}

// GetMediaAsync runs GetMedia in the background.
func GetMediaAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*GetMediaResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetMediaResponse, error) {
		return GetMedia(ctx, c, id)
	})
}

// UpdateMediaResponse holds the parsed body of PUT /api/v1/media/{id}.
type UpdateMediaResponse struct {
	MediaAttachment *models.MediaAttachment
	Error           *models.Error
	ValidationError *models.ValidationError
}

func updateMediaOperation(id string, body models.UpdateMediaBody) (*client.Operation[UpdateMediaResponse], error) {
	path, err := client.FormatPath("/api/v1/media/{id}", id)
	if err != nil {
		return nil, err
	}

	parts, err := body.Parts()
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodPut, path)
	req.Body = client.MultipartBody(parts)

	errorBody := client.JSON(func(r *UpdateMediaResponse) **models.Error { return &r.Error })
	return &client.Operation[UpdateMediaResponse]{
		ID:      "updateMedia",
		Request: req,
		Responses: client.Responses[UpdateMediaResponse]{
			http.StatusOK:           client.JSON(func(r *UpdateMediaResponse) **models.MediaAttachment { return &r.MediaAttachment }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
			http.StatusUnprocessableEntity: client.JSON(func(r *UpdateMediaResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}, nil
}

// UpdateMediaDetailed changes the description, focus or thumbnail of an attachment that is not
// yet attached to a status.
func UpdateMediaDetailed(ctx context.Context, c *client.AuthenticatedClient, id string, body models.UpdateMediaBody) (*client.Response[UpdateMediaResponse], error) {
	op, err := updateMediaOperation(id, body)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// UpdateMedia is UpdateMediaDetailed without the response envelope.
func UpdateMedia(ctx context.Context, c *client.AuthenticatedClient, id string, body models.UpdateMediaBody) (*UpdateMediaResponse, error) {
	resp, err := UpdateMediaDetailed(ctx, c, id, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// UpdateMediaDetailedAsync runs UpdateMediaDetailed in the background.
func UpdateMediaDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string, body models.UpdateMediaBody) *client.Future[*client.Response[UpdateMediaResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[UpdateMediaResponse], error) {
		return UpdateMediaDetailed(ctx, c, id, body)
	})
}

// UpdateMediaAsync runs UpdateMedia in the background.
func UpdateMediaAsync(ctx context.Context, c *client.AuthenticatedClient, id string, body models.UpdateMediaBody) *client.Future[*UpdateMediaResponse] {
	return client.Go(ctx, func(ctx context.Context) (*UpdateMediaResponse, error) {
		return UpdateMedia(ctx, c, id, body)
	})
}
