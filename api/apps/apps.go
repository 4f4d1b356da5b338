// Package apps registers client applications and checks their credentials.
package apps

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// CreateAppResponse holds the parsed body of POST /api/v1/apps.
type CreateAppResponse struct {
	CredentialApplication *models.CredentialApplication
	ValidationError       *models.ValidationError
	Error                 *models.Error
}

func createAppOperation(body models.CreateAppBody) *client.Operation[CreateAppResponse] {
	req := client.NewRequest(http.MethodPost, "/api/v1/apps")
	req.Body = client.JSONBody(body)

	return &client.Operation[CreateAppResponse]{
		ID:      "createApp",
		Request: req,
		Responses: client.Responses[CreateAppResponse]{
			http.StatusOK: client.JSON(func(r *CreateAppResponse) **models.CredentialApplication {
				return &r.CredentialApplication
			}),
			http.StatusUnprocessableEntity: client.JSON(func(r *CreateAppResponse) **models.ValidationError {
				return &r.ValidationError
			}),
			http.StatusTooManyRequests: client.JSON(func(r *CreateAppResponse) **models.Error { return &r.Error }),
		},
	}
}

// CreateAppDetailed registers a client application and returns the full response.
func CreateAppDetailed(ctx context.Context, c client.Caller, body models.CreateAppBody) (*client.Response[CreateAppResponse], error) {
	return client.Do(ctx, c, createAppOperation(body))
}

// CreateApp registers a client application. The returned credentials are only shown once.
func CreateApp(ctx context.Context, c client.Caller, body models.CreateAppBody) (*CreateAppResponse, error) {
	resp, err := CreateAppDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// CreateAppDetailedAsync runs CreateAppDetailed in the background.
func CreateAppDetailedAsync(ctx context.Context, c client.Caller, body models.CreateAppBody) *client.Future[*client.Response[CreateAppResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateAppResponse], error) {
		return CreateAppDetailed(ctx, c, body)
	})
}

// CreateAppAsync runs CreateApp in the background.
func CreateAppAsync(ctx context.Context, c client.Caller, body models.CreateAppBody) *client.Future[*CreateAppResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateAppResponse, error) {
		return CreateApp(ctx, c, body)
	})
}

// VerifyAppCredentialsResponse holds the parsed body of GET /api/v1/apps/verify_credentials.
type VerifyAppCredentialsResponse struct {
	Application *models.Application
	Error       *models.Error
}

func verifyAppCredentialsOperation() *client.Operation[VerifyAppCredentialsResponse] {
	return &client.Operation[VerifyAppCredentialsResponse]{
		ID:      "verifyAppCredentials",
		Request: client.NewRequest(http.MethodGet, "/api/v1/apps/verify_credentials"),
		Responses: client.Responses[VerifyAppCredentialsResponse]{
			http.StatusOK:           client.JSON(func(r *VerifyAppCredentialsResponse) **models.Application { return &r.Application }),
			http.StatusUnauthorized: client.JSON(func(r *VerifyAppCredentialsResponse) **models.Error { return &r.Error }),
		},
	}
}

// VerifyAppCredentialsDetailed confirms the client's token is valid for an application.
func VerifyAppCredentialsDetailed(ctx context.Context, c *client.AuthenticatedClient) (*client.Response[VerifyAppCredentialsResponse], error) {
	return client.Do(ctx, c, verifyAppCredentialsOperation())
}

// VerifyAppCredentials is VerifyAppCredentialsDetailed without the response envelope.
func VerifyAppCredentials(ctx context.Context, c *client.AuthenticatedClient) (*VerifyAppCredentialsResponse, error) {
	resp, err := VerifyAppCredentialsDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// VerifyAppCredentialsDetailedAsync runs VerifyAppCredentialsDetailed in the background.
func VerifyAppCredentialsDetailedAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*client.Response[VerifyAppCredentialsResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[VerifyAppCredentialsResponse], error) {
		return VerifyAppCredentialsDetailed(ctx, c)
	})
}

// VerifyAppCredentialsAsync runs VerifyAppCredentials in the background.
func VerifyAppCredentialsAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*VerifyAppCredentialsResponse] {
	return client.Go(ctx, func(ctx context.Context) (*VerifyAppCredentialsResponse, error) {
		return VerifyAppCredentials(ctx, c)
	})
}
