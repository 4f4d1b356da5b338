// Package reports files reports against accounts for moderators to review.
package reports

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// CreateReportResponse holds the parsed body of POST /api/v1/reports.
type CreateReportResponse struct {
	Report          *models.Report
	Error           *models.Error
	ValidationError *models.ValidationError
}

func createReportOperation(body models.CreateReportBody) *client.Operation[CreateReportResponse] {
	req := client.NewRequest(http.MethodPost, "/api/v1/reports")
	req.Body = client.JSONBody(body)

	errorBody := client.JSON(func(r *CreateReportResponse) **models.Error { return &r.Error })
	return &client.Operation[CreateReportResponse]{
		ID:      "createReport",
		Request: req,
		Responses: client.Responses[CreateReportResponse]{
			http.StatusOK:           client.JSON(func(r *CreateReportResponse) **models.Report { return &r.Report }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
			http.StatusUnprocessableEntity: client.JSON(func(r *CreateReportResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}
}

// CreateReportDetailed reports an account, optionally citing statuses and broken rules. With
// Forward set, a remote account's server receives an anonymized copy.
func CreateReportDetailed(ctx context.Context, c *client.AuthenticatedClient, body models.CreateReportBody) (*client.Response[CreateReportResponse], error) {
	return client.Do(ctx, c, createReportOperation(body))
}

// CreateReport is CreateReportDetailed without the response envelope.
func CreateReport(ctx context.Context, c *client.AuthenticatedClient, body models.CreateReportBody) (*CreateReportResponse, error) {
	resp, err := CreateReportDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// CreateReportDetailedAsync runs CreateReportDetailed in the background.
func CreateReportDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateReportBody) *client.Future[*client.Response[CreateReportResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[CreateReportResponse], error) {
		return CreateReportDetailed(ctx, c, body)
	})
}

// CreateReportAsync runs CreateReport in the background.
func CreateReportAsync(ctx context.Context, c *client.AuthenticatedClient, body models.CreateReportBody) *client.Future[*CreateReportResponse] {
	return client.Go(ctx, func(ctx context.Context) (*CreateReportResponse, error) {
		return CreateReport(ctx, c, body)
	})
}
